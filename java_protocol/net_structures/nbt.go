package net_structures

import (
	"fmt"
	"io"

	"github.com/BaukeWestendorp/keisteen/nbt"
)

// NBT is an opaque, network-format (headerless) NBT tag embedded directly in
// a packet payload, such as a Custom Click Action's free-form data. The tag
// is round-tripped without interpreting its contents.
type NBT struct {
	Tag nbt.Tag
}

// Encode writes the tag in network format (no name, no outer End marker).
func (v NBT) Encode(w io.Writer) error {
	if v.Tag == nil {
		v.Tag = nbt.End{}
	}
	nw := nbt.NewWriterTo(w)
	return nw.WriteTag(v.Tag, "", true)
}

// DecodeNBT reads a network-format NBT tag from r.
func DecodeNBT(r io.Reader) (NBT, error) {
	nr := nbt.NewReaderFrom(r)
	tag, _, err := nr.ReadTag(true)
	if err != nil {
		return NBT{}, fmt.Errorf("failed to read nbt tag: %w", err)
	}
	return NBT{Tag: tag}, nil
}
