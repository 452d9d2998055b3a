package java_protocol_test

import (
	"bytes"
	"errors"
	"testing"

	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
)

func TestReadWirePacketFromRejectsOversizeLength(t *testing.T) {
	var buf bytes.Buffer
	if err := ns.VarInt(jp.MaxPacketLength + 1).Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	_, err := jp.ReadWirePacketFrom(&buf, -1)
	if !errors.Is(err, jp.ErrPacketTooLarge) {
		t.Fatalf("ReadWirePacketFrom() error = %v, want ErrPacketTooLarge", err)
	}
}

func TestReadWirePacketFromAcceptsMaxLength(t *testing.T) {
	var buf bytes.Buffer
	payload := make([]byte, jp.MaxPacketLength-1)
	if err := ns.VarInt(jp.MaxPacketLength).Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := ns.VarInt(0x00).Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	buf.Write(payload)

	wire, err := jp.ReadWirePacketFrom(&buf, -1)
	if err != nil {
		t.Fatalf("ReadWirePacketFrom() error = %v", err)
	}
	if wire.PacketID != 0x00 {
		t.Errorf("PacketID = %d, want 0", wire.PacketID)
	}
}
