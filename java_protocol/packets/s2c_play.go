package packets

import (
	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
	"github.com/BaukeWestendorp/keisteen/textcomponent"
)

// S2CLoginPlayPacket represents "Login (play)", the first packet sent upon
// entering the Play phase. It establishes the player's entity id, the
// dimension set and current dimension, and world-level constants.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_(play)
type S2CLoginPlayPacket struct {
	EntityID            ns.Int32
	IsHardcore          ns.Boolean
	DimensionNames      []ns.Identifier
	MaxPlayers          ns.VarInt
	ViewDistance        ns.VarInt
	SimulationDistance  ns.VarInt
	ReducedDebugInfo    ns.Boolean
	EnableRespawnScreen ns.Boolean
	DoLimitedCrafting   ns.Boolean
	DimensionType       ns.VarInt
	DimensionName       ns.Identifier
	HashedSeed          ns.Int64
	GameMode            ns.Uint8
	PreviousGameMode    ns.Int8
	IsDebug             ns.Boolean
	IsFlat              ns.Boolean
	HasDeathLocation    ns.Boolean
	DeathDimension      ns.Identifier
	DeathLocation       ns.Position
	PortalCooldown      ns.VarInt
	SeaLevel            ns.VarInt
	EnforcesSecureChat  ns.Boolean
}

func (p *S2CLoginPlayPacket) ID() ns.VarInt   { return 0x2B }
func (p *S2CLoginPlayPacket) State() jp.State { return jp.StatePlay }
func (p *S2CLoginPlayPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CLoginPlayPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.EntityID, err = buf.ReadInt32(); err != nil {
		return err
	}
	if p.IsHardcore, err = buf.ReadBool(); err != nil {
		return err
	}
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.DimensionNames = make([]ns.Identifier, count)
	for i := range p.DimensionNames {
		if p.DimensionNames[i], err = buf.ReadIdentifier(); err != nil {
			return err
		}
	}
	if p.MaxPlayers, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ViewDistance, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.SimulationDistance, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ReducedDebugInfo, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.EnableRespawnScreen, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.DoLimitedCrafting, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.DimensionType, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.DimensionName, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	if p.HashedSeed, err = buf.ReadInt64(); err != nil {
		return err
	}
	if p.GameMode, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.PreviousGameMode, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.IsDebug, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.IsFlat, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.HasDeathLocation, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.HasDeathLocation {
		if p.DeathDimension, err = buf.ReadIdentifier(); err != nil {
			return err
		}
		if p.DeathLocation, err = buf.ReadPosition(); err != nil {
			return err
		}
	}
	if p.PortalCooldown, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.SeaLevel, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.EnforcesSecureChat, err = buf.ReadBool()
	return err
}

func (p *S2CLoginPlayPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsHardcore); err != nil {
		return err
	}
	if err := buf.WriteVarInt(ns.VarInt(len(p.DimensionNames))); err != nil {
		return err
	}
	for _, name := range p.DimensionNames {
		if err := buf.WriteIdentifier(name); err != nil {
			return err
		}
	}
	if err := buf.WriteVarInt(p.MaxPlayers); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.SimulationDistance); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ReducedDebugInfo); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableRespawnScreen); err != nil {
		return err
	}
	if err := buf.WriteBool(p.DoLimitedCrafting); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.DimensionType); err != nil {
		return err
	}
	if err := buf.WriteIdentifier(p.DimensionName); err != nil {
		return err
	}
	if err := buf.WriteInt64(p.HashedSeed); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.GameMode); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.PreviousGameMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsDebug); err != nil {
		return err
	}
	if err := buf.WriteBool(p.IsFlat); err != nil {
		return err
	}
	if err := buf.WriteBool(p.HasDeathLocation); err != nil {
		return err
	}
	if p.HasDeathLocation {
		if err := buf.WriteIdentifier(p.DeathDimension); err != nil {
			return err
		}
		if err := buf.WritePosition(p.DeathLocation); err != nil {
			return err
		}
	}
	if err := buf.WriteVarInt(p.PortalCooldown); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.SeaLevel); err != nil {
		return err
	}
	return buf.WriteBool(p.EnforcesSecureChat)
}

// S2CKeepAlivePlayPacket represents "Clientbound Keep Alive (play)".
//
// > The server will frequently send out a keep-alive, each containing a random ID.
// The client must respond with the same payload. If the client does not respond within 15
// seconds, the server kicks it; if the server does not send any keep-alives for 20 seconds, the
// client disconnects with a "Timed out" error.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Keep_Alive_(play)
type S2CKeepAlivePlayPacket struct {
	KeepAliveID ns.Int64
}

func (p *S2CKeepAlivePlayPacket) ID() ns.VarInt   { return 0x26 }
func (p *S2CKeepAlivePlayPacket) State() jp.State { return jp.StatePlay }
func (p *S2CKeepAlivePlayPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CKeepAlivePlayPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *S2CKeepAlivePlayPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// S2CSystemChatMessagePacket represents "System Chat Message". Content is an
// NBT text component.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#System_Chat_Message
type S2CSystemChatMessagePacket struct {
	Content textcomponent.Component
	Overlay ns.Boolean
}

func (p *S2CSystemChatMessagePacket) ID() ns.VarInt   { return 0x62 }
func (p *S2CSystemChatMessagePacket) State() jp.State { return jp.StatePlay }
func (p *S2CSystemChatMessagePacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CSystemChatMessagePacket) Read(buf *ns.PacketBuffer) error {
	c, err := textcomponent.ReadNetworkNBT(buf.Reader())
	if err != nil {
		return err
	}
	p.Content = c
	p.Overlay, err = buf.ReadBool()
	return err
}

func (p *S2CSystemChatMessagePacket) Write(buf *ns.PacketBuffer) error {
	if err := p.Content.WriteNetworkNBT(buf.Writer()); err != nil {
		return err
	}
	return buf.WriteBool(p.Overlay)
}

// S2CPingPlayPacket represents "Ping (play)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_(play)
type S2CPingPlayPacket struct {
	ID_ ns.Int32
}

func (p *S2CPingPlayPacket) ID() ns.VarInt   { return 0x33 }
func (p *S2CPingPlayPacket) State() jp.State { return jp.StatePlay }
func (p *S2CPingPlayPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CPingPlayPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.ID_, err = buf.ReadInt32()
	return err
}

func (p *S2CPingPlayPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.ID_)
}
