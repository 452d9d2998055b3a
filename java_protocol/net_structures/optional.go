package net_structures

import (
	"fmt"
	"io"
)

// PrefixedOptional is a boolean presence flag followed by a byte array when
// present, used by the cookie request/response family of packets.
type PrefixedOptional struct {
	Present bool
	Value   ByteArray
}

// Encode writes the presence flag, followed by the value when present.
func (v PrefixedOptional) Encode(w io.Writer) error {
	if err := Boolean(v.Present).Encode(w); err != nil {
		return fmt.Errorf("failed to write presence flag: %w", err)
	}
	if !v.Present {
		return nil
	}
	return (&PacketBuffer{writer: w}).WriteByteArray(v.Value)
}

// DecodePrefixedOptional reads a presence flag, followed by the value when present.
func DecodePrefixedOptional(r io.Reader, maxLen int) (PrefixedOptional, error) {
	present, err := DecodeBoolean(r)
	if err != nil {
		return PrefixedOptional{}, fmt.Errorf("failed to read presence flag: %w", err)
	}
	if !present {
		return PrefixedOptional{Present: false}, nil
	}
	value, err := (&PacketBuffer{reader: r}).ReadByteArray(maxLen)
	if err != nil {
		return PrefixedOptional{}, err
	}
	return PrefixedOptional{Present: true, Value: value}, nil
}
