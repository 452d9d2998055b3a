// Package textcomponent implements Minecraft chat text components and their
// NBT-encoded wire representation, used for disconnect reasons and system
// chat messages in protocol 772/773 (these fields are NBT, not JSON, unlike
// older protocol versions).
package textcomponent

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/Tnze/go-mc/nbt"
)

// Component is a Minecraft chat/text component. Only the fields this server
// actually produces (plain disconnect/status text, optionally colored) are
// modeled; other fields are not kept when a component is decoded.
type Component struct {
	Text  string      `nbt:"text"`
	Color string      `nbt:"color,omitempty"`
	Bold  bool        `nbt:"bold,omitempty"`
	Extra []Component `nbt:"extra,omitempty"`
}

// Of builds a plain-text component, the common case for disconnect reasons
// and status descriptions.
func Of(text string) Component {
	return Component{Text: text}
}

// PlainText flattens a component tree into its visible text.
func (c Component) PlainText() string {
	var b strings.Builder
	b.WriteString(c.Text)
	for _, e := range c.Extra {
		b.WriteString(e.PlainText())
	}
	return b.String()
}

// EncodeNetworkNBT renders the component as network-format (headerless) NBT,
// the wire shape used inside packet payloads.
func (c Component) EncodeNetworkNBT() ([]byte, error) {
	var buf bytes.Buffer
	enc := nbt.NewEncoder(&buf)
	enc.NetworkFormat(true)
	if err := enc.Encode(c, ""); err != nil {
		return nil, fmt.Errorf("textcomponent: encode nbt: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeNetworkNBT parses a component from its network-format NBT
// representation, returning the component and the number of bytes consumed.
func DecodeNetworkNBT(data []byte) (Component, int, error) {
	r := bytes.NewReader(data)
	dec := nbt.NewDecoder(r)
	dec.NetworkFormat(true)
	var c Component
	if _, err := dec.Decode(&c); err != nil {
		return Component{}, 0, fmt.Errorf("textcomponent: decode nbt: %w", err)
	}
	return c, len(data) - r.Len(), nil
}

// WriteNetworkNBT writes the component as network-format NBT directly to a
// packet stream instead of returning a byte slice; like EncodeNetworkNBT it
// writes no length prefix.
func (c Component) WriteNetworkNBT(w io.Writer) error {
	enc := nbt.NewEncoder(w)
	enc.NetworkFormat(true)
	if err := enc.Encode(c, ""); err != nil {
		return fmt.Errorf("textcomponent: encode nbt: %w", err)
	}
	return nil
}

// ReadNetworkNBT reads a component as network-format NBT directly from a
// packet stream, consuming exactly the bytes the tag occupies.
func ReadNetworkNBT(r io.Reader) (Component, error) {
	dec := nbt.NewDecoder(r)
	dec.NetworkFormat(true)
	var c Component
	if _, err := dec.Decode(&c); err != nil {
		return Component{}, fmt.Errorf("textcomponent: decode nbt: %w", err)
	}
	return c, nil
}
