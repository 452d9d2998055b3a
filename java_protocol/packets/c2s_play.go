package packets

import (
	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
)

// C2SKeepAlivePlayPacket represents "Serverbound Keep Alive (play)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Keep_Alive_(play)
type C2SKeepAlivePlayPacket struct {
	KeepAliveID ns.Int64
}

func (p *C2SKeepAlivePlayPacket) ID() ns.VarInt   { return 0x1B }
func (p *C2SKeepAlivePlayPacket) State() jp.State { return jp.StatePlay }
func (p *C2SKeepAlivePlayPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SKeepAlivePlayPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *C2SKeepAlivePlayPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// C2SPingRequestPlayPacket represents "Ping Request (play)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_Request_(play)
type C2SPingRequestPlayPacket struct {
	ID_ ns.Int32
}

func (p *C2SPingRequestPlayPacket) ID() ns.VarInt   { return 0x18 }
func (p *C2SPingRequestPlayPacket) State() jp.State { return jp.StatePlay }
func (p *C2SPingRequestPlayPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SPingRequestPlayPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.ID_, err = buf.ReadInt32()
	return err
}

func (p *C2SPingRequestPlayPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.ID_)
}

// C2SChatMessagePacket represents an unsigned "Chat Message" (serverbound/play).
// The signing chain is out of scope; only the raw content is exposed.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Chat_Message
type C2SChatMessagePacket struct {
	Message ns.String
}

func (p *C2SChatMessagePacket) ID() ns.VarInt   { return 0x03 }
func (p *C2SChatMessagePacket) State() jp.State { return jp.StatePlay }
func (p *C2SChatMessagePacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SChatMessagePacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Message, err = buf.ReadString(256)
	return err
}

func (p *C2SChatMessagePacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Message)
}

// C2STeleportConfirmPacket represents "Teleport Confirm" (serverbound/play).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Teleport_Confirm
type C2STeleportConfirmPacket struct {
	TeleportID ns.VarInt
}

func (p *C2STeleportConfirmPacket) ID() ns.VarInt   { return 0x00 }
func (p *C2STeleportConfirmPacket) State() jp.State { return jp.StatePlay }
func (p *C2STeleportConfirmPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2STeleportConfirmPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.TeleportID, err = buf.ReadVarInt()
	return err
}

func (p *C2STeleportConfirmPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.TeleportID)
}
