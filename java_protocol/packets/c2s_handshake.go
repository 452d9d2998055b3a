package packets

import (
	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
)

const (
	IntentStatus ns.VarInt = iota + 1
	IntentLogin
	IntentTransfer
)

// C2SIntentionPacket represents "Handshake" (serverbound/handshake).
// > This packet causes the server to switch into the target state.
// It should be sent right after opening the TCP connection to prevent the server from disconnecting.
//
// We don't handle Legacy Server List Ping, as it's not part of the modern
// protocol this server implements.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Handshake
type C2SIntentionPacket struct {
	ProtocolVersion ns.VarInt
	ServerAddress   ns.String
	ServerPort      ns.Uint16
	Intent          ns.VarInt
}

func (p *C2SIntentionPacket) ID() ns.VarInt  { return 0x00 }
func (p *C2SIntentionPacket) State() jp.State { return jp.StateHandshake }
func (p *C2SIntentionPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SIntentionPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ProtocolVersion, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ServerAddress, err = buf.ReadString(255); err != nil {
		return err
	}
	if p.ServerPort, err = buf.ReadUint16(); err != nil {
		return err
	}
	if p.Intent, err = buf.ReadVarInt(); err != nil {
		return err
	}
	return nil
}

func (p *C2SIntentionPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ProtocolVersion); err != nil {
		return err
	}
	if err := buf.WriteString(p.ServerAddress); err != nil {
		return err
	}
	if err := buf.WriteUint16(p.ServerPort); err != nil {
		return err
	}
	return buf.WriteVarInt(p.Intent)
}
