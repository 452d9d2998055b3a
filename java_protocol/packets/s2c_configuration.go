package packets

import (
	"fmt"
	"io"

	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
	"github.com/BaukeWestendorp/keisteen/textcomponent"
)

// S2CCustomPayloadConfigurationPacket represents "Clientbound Plugin Message (configuration)".
// The server uses this to announce its brand on channel `minecraft:brand`.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Plugin_Message_(configuration)
type S2CCustomPayloadConfigurationPacket struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (p *S2CCustomPayloadConfigurationPacket) ID() ns.VarInt   { return 0x01 }
func (p *S2CCustomPayloadConfigurationPacket) State() jp.State { return jp.StateConfiguration }
func (p *S2CCustomPayloadConfigurationPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CCustomPayloadConfigurationPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	data, err := io.ReadAll(buf.Reader())
	if err != nil {
		return fmt.Errorf("failed to read plugin message data: %w", err)
	}
	p.Data = data
	return nil
}

func (p *S2CCustomPayloadConfigurationPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Data)
}

// S2CDisconnectConfigurationPacket represents "Disconnect (configuration)".
// The reason is an NBT text component.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Disconnect_(configuration)
type S2CDisconnectConfigurationPacket struct {
	Reason textcomponent.Component
}

func (p *S2CDisconnectConfigurationPacket) ID() ns.VarInt   { return 0x02 }
func (p *S2CDisconnectConfigurationPacket) State() jp.State { return jp.StateConfiguration }
func (p *S2CDisconnectConfigurationPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CDisconnectConfigurationPacket) Read(buf *ns.PacketBuffer) error {
	c, err := textcomponent.ReadNetworkNBT(buf.Reader())
	if err != nil {
		return fmt.Errorf("failed to read disconnect reason: %w", err)
	}
	p.Reason = c
	return nil
}

func (p *S2CDisconnectConfigurationPacket) Write(buf *ns.PacketBuffer) error {
	return p.Reason.WriteNetworkNBT(buf.Writer())
}

// S2CFinishConfigurationPacket represents "Finish Configuration". Has no data.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Finish_Configuration
type S2CFinishConfigurationPacket struct{}

func (p *S2CFinishConfigurationPacket) ID() ns.VarInt                    { return 0x03 }
func (p *S2CFinishConfigurationPacket) State() jp.State                  { return jp.StateConfiguration }
func (p *S2CFinishConfigurationPacket) Bound() jp.Bound                  { return jp.S2C }
func (p *S2CFinishConfigurationPacket) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *S2CFinishConfigurationPacket) Write(buf *ns.PacketBuffer) error { return nil }

// S2CKeepAliveConfigurationPacket represents "Clientbound Keep Alive (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Keep_Alive_(configuration)
type S2CKeepAliveConfigurationPacket struct {
	ID_ ns.Int64
}

func (p *S2CKeepAliveConfigurationPacket) ID() ns.VarInt   { return 0x04 }
func (p *S2CKeepAliveConfigurationPacket) State() jp.State { return jp.StateConfiguration }
func (p *S2CKeepAliveConfigurationPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CKeepAliveConfigurationPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.ID_, err = buf.ReadInt64()
	return err
}

func (p *S2CKeepAliveConfigurationPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.ID_)
}

// S2CPingConfigurationPacket represents "Ping (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Ping_(configuration)
type S2CPingConfigurationPacket struct {
	ID_ ns.Int32
}

func (p *S2CPingConfigurationPacket) ID() ns.VarInt   { return 0x05 }
func (p *S2CPingConfigurationPacket) State() jp.State { return jp.StateConfiguration }
func (p *S2CPingConfigurationPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CPingConfigurationPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.ID_, err = buf.ReadInt32()
	return err
}

func (p *S2CPingConfigurationPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.ID_)
}

// RegistryEntry is a single named entry within a Registry Data packet. When
// Present is false the entry carries no data and the client falls back to
// its own built-in definition.
type RegistryEntry struct {
	EntryID ns.Identifier
	Present ns.Boolean
	Data    ns.NBT
}

// S2CRegistryDataPacket represents "Registry Data". One instance is sent per
// registry table, each carrying every entry of that table NBT-encoded via
// the network-mode encoder.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Registry_Data
type S2CRegistryDataPacket struct {
	RegistryID ns.Identifier
	Entries    []RegistryEntry
}

func (p *S2CRegistryDataPacket) ID() ns.VarInt   { return 0x07 }
func (p *S2CRegistryDataPacket) State() jp.State { return jp.StateConfiguration }
func (p *S2CRegistryDataPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CRegistryDataPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.RegistryID, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Entries = make([]RegistryEntry, count)
	for i := range p.Entries {
		var e RegistryEntry
		if e.EntryID, err = buf.ReadIdentifier(); err != nil {
			return err
		}
		if e.Present, err = buf.ReadBool(); err != nil {
			return err
		}
		if e.Present {
			if e.Data, err = ns.DecodeNBT(buf.Reader()); err != nil {
				return err
			}
		}
		p.Entries[i] = e
	}
	return nil
}

func (p *S2CRegistryDataPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.RegistryID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(ns.VarInt(len(p.Entries))); err != nil {
		return err
	}
	for _, e := range p.Entries {
		if err := buf.WriteIdentifier(e.EntryID); err != nil {
			return err
		}
		if err := buf.WriteBool(e.Present); err != nil {
			return err
		}
		if e.Present {
			if err := e.Data.Encode(buf.Writer()); err != nil {
				return err
			}
		}
	}
	return nil
}

// S2CSelectKnownPacksPacket represents "Clientbound Known Packs".
//
// > Informs the client of which data packs are present in the server.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Clientbound_Known_Packs
type S2CSelectKnownPacksPacket struct {
	KnownPacks []KnownPack
}

func (p *S2CSelectKnownPacksPacket) ID() ns.VarInt   { return 0x0E }
func (p *S2CSelectKnownPacksPacket) State() jp.State { return jp.StateConfiguration }
func (p *S2CSelectKnownPacksPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CSelectKnownPacksPacket) Read(buf *ns.PacketBuffer) error {
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.KnownPacks = make([]KnownPack, count)
	for i := range p.KnownPacks {
		if p.KnownPacks[i], err = readKnownPack(buf); err != nil {
			return err
		}
	}
	return nil
}

func (p *S2CSelectKnownPacksPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(ns.VarInt(len(p.KnownPacks))); err != nil {
		return err
	}
	for _, kp := range p.KnownPacks {
		if err := writeKnownPack(buf, kp); err != nil {
			return err
		}
	}
	return nil
}
