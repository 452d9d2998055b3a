package packets

import (
	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
)

// S2CStatusResponsePacket represents "Status Response" (clientbound/status).
// The response is a JSON string.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Status_Response
type S2CStatusResponsePacket struct {
	JSON ns.String
}

func (p *S2CStatusResponsePacket) ID() ns.VarInt   { return 0x00 }
func (p *S2CStatusResponsePacket) State() jp.State { return jp.StateStatus }
func (p *S2CStatusResponsePacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CStatusResponsePacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.JSON, err = buf.ReadString(32767)
	return err
}

func (p *S2CStatusResponsePacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.JSON)
}

// S2CPongResponseStatusPacket represents "Pong Response (status)" (clientbound/status)
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Pong_Response_(status)
type S2CPongResponseStatusPacket struct {
	Payload ns.Int64
}

func (p *S2CPongResponseStatusPacket) ID() ns.VarInt   { return 0x01 }
func (p *S2CPongResponseStatusPacket) State() jp.State { return jp.StateStatus }
func (p *S2CPongResponseStatusPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CPongResponseStatusPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Payload, err = buf.ReadInt64()
	return err
}

func (p *S2CPongResponseStatusPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}
