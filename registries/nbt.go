package registries

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/BaukeWestendorp/keisteen/nbt"
)

// Tag converts the entry's raw JSON into an NBT tag tree, preserving object
// key order, for embedding in a Registry Data packet. Integers that fit in
// 32 bits become Int; wider ones become Long. There is no unsigned-integer
// path here because JSON numbers have no sign-width distinction to lose.
func (e Entry) Tag() (nbt.Tag, error) {
	dec := json.NewDecoder(bytes.NewReader(e.Raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("registries: decode %s: %w", e.ID, err)
	}
	tag, err := jsonTokenToTag(dec, tok)
	if err != nil {
		return nil, fmt.Errorf("registries: decode %s: %w", e.ID, err)
	}
	return tag, nil
}

func jsonValueToTag(dec *json.Decoder) (nbt.Tag, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonTokenToTag(dec, tok)
}

func jsonTokenToTag(dec *json.Decoder, tok json.Token) (nbt.Tag, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			c := nbt.NewCompound()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				child, err := jsonValueToTag(dec)
				if err != nil {
					return nil, err
				}
				c.Set(key, child)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return c, nil
		case '[':
			var elems []nbt.Tag
			for dec.More() {
				elem, err := jsonValueToTag(dec)
				if err != nil {
					return nil, err
				}
				elems = append(elems, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			elemType := byte(nbt.TagEnd)
			if len(elems) > 0 {
				elemType = elems[0].ID()
			}
			return nbt.List{ElementType: elemType, Elements: elems}, nil
		default:
			return nil, fmt.Errorf("unexpected JSON delimiter %v", v)
		}
	case string:
		return nbt.String(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return nbt.Int(int32(i)), nil
			}
			return nbt.Long(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %s: %w", v.String(), err)
		}
		return nbt.Double(f), nil
	case bool:
		if v {
			return nbt.Byte(1), nil
		}
		return nbt.Byte(0), nil
	case nil:
		return nbt.Compound{}, nil
	default:
		return nil, fmt.Errorf("unsupported JSON token %v (%T)", tok, tok)
	}
}
