package packets

import (
	"fmt"
	"io"

	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
)

// C2SClientInformationPacket represents "Client Information" (serverbound/configuration).
//
// > Sent when the player connects, or when settings are changed.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Client_Information_(configuration)
type C2SClientInformationPacket struct {
	// e. g. `en_GB`
	Locale ns.String
	// Client-side render distance, in chunks.
	ViewDistance ns.Int8
	// 0: enabled, 1: commands only, 2: hidden, see [ChatMode]
	ChatMode ns.VarInt
	// "Colors" multiplayer setting. The vanilla server stores this value but does nothing with it
	// (see [MC-64867](https://bugs.mojang.com/browse/MC/issues/MC-64867)).
	ChatColors ns.Boolean
	// Bit mask, see [DisplayedSkinParts]
	DisplayedSkinParts ns.Uint8
	// 0: Left, 1: Right, see [MainHand]
	MainHand ns.VarInt
	// Enables filtering of text on signs and written book titles.
	EnableTextFiltering ns.Boolean
	// Servers usually list online players, this option should let you not show up in that list.
	AllowServerListings ns.Boolean
	// 0: all, 1: decreased, 2: minimal, see [ParticleStatus]
	ParticleStatus ns.VarInt
}

func (p *C2SClientInformationPacket) ID() ns.VarInt   { return 0x00 }
func (p *C2SClientInformationPacket) State() jp.State { return jp.StateConfiguration }
func (p *C2SClientInformationPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SClientInformationPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Locale, err = buf.ReadString(16); err != nil {
		return err
	}
	if p.ViewDistance, err = buf.ReadInt8(); err != nil {
		return err
	}
	if p.ChatMode, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.ChatColors, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.DisplayedSkinParts, err = buf.ReadUint8(); err != nil {
		return err
	}
	if p.MainHand, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.EnableTextFiltering, err = buf.ReadBool(); err != nil {
		return err
	}
	if p.AllowServerListings, err = buf.ReadBool(); err != nil {
		return err
	}
	p.ParticleStatus, err = buf.ReadVarInt()
	return err
}

func (p *C2SClientInformationPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Locale); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ChatMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ChatColors); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.DisplayedSkinParts); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MainHand); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableTextFiltering); err != nil {
		return err
	}
	if err := buf.WriteBool(p.AllowServerListings); err != nil {
		return err
	}
	return buf.WriteVarInt(p.ParticleStatus)
}

type ChatMode ns.VarInt

const (
	ChatModeEnabled ChatMode = iota
	ChatModeCommandsOnly
	ChatModeHidden
)

// DisplayedSkinParts decodes the bit mask carried by Client Information.
type DisplayedSkinParts struct {
	Cape          byte // 0x01
	Jacket        byte // 0x02
	LeftSleeve    byte // 0x04
	RightSleeve   byte // 0x08
	LeftPantsLeg  byte // 0x10
	RightPantsLeg byte // 0x20
	Hat           byte // 0x40
	// bit 7 (0x80) is unused.
}

func (d *DisplayedSkinParts) FromByte(b byte) {
	d.Cape = b & 0x01
	d.Jacket = b & 0x02
	d.LeftSleeve = b & 0x04
	d.RightSleeve = b & 0x08
	d.LeftPantsLeg = b & 0x10
	d.RightPantsLeg = b & 0x20
	d.Hat = b & 0x40
}

func (d *DisplayedSkinParts) ToByte() byte {
	return d.Cape | d.Jacket | d.LeftSleeve | d.RightSleeve |
		d.LeftPantsLeg | d.RightPantsLeg | d.Hat
}

type MainHand ns.VarInt

const (
	MainHandLeft MainHand = iota
	MainHandRight
)

type ParticleStatus ns.VarInt

const (
	ParticleStatusAll ParticleStatus = iota
	ParticleStatusDecreased
	ParticleStatusMinimal
)

// C2SCookieResponseConfigurationPacket represents "Cookie Response (configuration)".
//
// > Response to a Cookie Request (configuration) from the server.
// The vanilla server only accepts responses of up to 5 kiB in size.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Cookie_Response_(configuration)
type C2SCookieResponseConfigurationPacket struct {
	Key     ns.Identifier
	Payload ns.PrefixedOptional
}

func (p *C2SCookieResponseConfigurationPacket) ID() ns.VarInt   { return 0x01 }
func (p *C2SCookieResponseConfigurationPacket) State() jp.State { return jp.StateConfiguration }
func (p *C2SCookieResponseConfigurationPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SCookieResponseConfigurationPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Key, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Payload, err = ns.DecodePrefixedOptional(buf.Reader(), 5*1024)
	return err
}

func (p *C2SCookieResponseConfigurationPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return err
	}
	return p.Payload.Encode(buf.Writer())
}

// C2SCustomPayloadPacket represents "Serverbound Plugin Message (configuration)".
//
// > Mods and plugins can use this to send their data. Minecraft itself uses some plugin channels.
// These internal channels are in the minecraft namespace.
//
// > Note that the length of Data is known only from the packet length, since the packet has no
// length field of any kind. In vanilla server, the maximum data length is 32767 bytes.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Plugin_Message_(configuration)
type C2SCustomPayloadPacket struct {
	// Name of the plugin channel used to send the data.
	Channel ns.Identifier
	// Any data, depending on the channel. Length is inferred from the packet length.
	Data ns.ByteArray
}

func (p *C2SCustomPayloadPacket) ID() ns.VarInt   { return 0x02 }
func (p *C2SCustomPayloadPacket) State() jp.State { return jp.StateConfiguration }
func (p *C2SCustomPayloadPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SCustomPayloadPacket) Read(buf *ns.PacketBuffer) error {
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

func (p *C2SCustomPayloadPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Data)
}

// C2SFinishConfigurationPacket represents "Acknowledge Finish Configuration".
//
// > Sent by the client to notify the server that the configuration process has finished.
// This packet switches the connection state to play.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Acknowledge_Finish_Configuration
type C2SFinishConfigurationPacket struct{}

func (p *C2SFinishConfigurationPacket) ID() ns.VarInt                    { return 0x03 }
func (p *C2SFinishConfigurationPacket) State() jp.State                  { return jp.StateConfiguration }
func (p *C2SFinishConfigurationPacket) Bound() jp.Bound                  { return jp.C2S }
func (p *C2SFinishConfigurationPacket) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *C2SFinishConfigurationPacket) Write(buf *ns.PacketBuffer) error { return nil }

// C2SKeepAliveConfigurationPacket represents "Serverbound Keep Alive (configuration)".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Keep_Alive_(configuration)
type C2SKeepAliveConfigurationPacket struct {
	KeepAliveID ns.Int64
}

func (p *C2SKeepAliveConfigurationPacket) ID() ns.VarInt   { return 0x04 }
func (p *C2SKeepAliveConfigurationPacket) State() jp.State { return jp.StateConfiguration }
func (p *C2SKeepAliveConfigurationPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SKeepAliveConfigurationPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.KeepAliveID, err = buf.ReadInt64()
	return err
}

func (p *C2SKeepAliveConfigurationPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.KeepAliveID)
}

// C2SPongConfigurationPacket represents "Pong (configuration)".
//
// > Response to the clientbound packet (Ping) with the same id.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Pong_(configuration)
type C2SPongConfigurationPacket struct {
	ID_ ns.Int32
}

func (p *C2SPongConfigurationPacket) ID() ns.VarInt   { return 0x05 }
func (p *C2SPongConfigurationPacket) State() jp.State { return jp.StateConfiguration }
func (p *C2SPongConfigurationPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SPongConfigurationPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.ID_, err = buf.ReadInt32()
	return err
}

func (p *C2SPongConfigurationPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt32(p.ID_)
}

// C2SResourcePackConfigurationPacket represents "Resource Pack Response (Configuration)".
//
// > Sent by the client to the server to indicate how it handled a resource pack request.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Resource_Pack_Response_(Configuration)
type C2SResourcePackConfigurationPacket struct {
	// The unique identifier of the resource pack received in the "Add Resource Pack" request.
	UUID ns.UUID
	// Result ID, see [ResourcePackStatus]
	Result ns.VarInt
}

func (p *C2SResourcePackConfigurationPacket) ID() ns.VarInt   { return 0x06 }
func (p *C2SResourcePackConfigurationPacket) State() jp.State { return jp.StateConfiguration }
func (p *C2SResourcePackConfigurationPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SResourcePackConfigurationPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return err
	}
	p.Result, err = buf.ReadVarInt()
	return err
}

func (p *C2SResourcePackConfigurationPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return err
	}
	return buf.WriteVarInt(p.Result)
}

type ResourcePackStatus ns.VarInt

const (
	ResourcePackStatusSuccessfullyDownloaded ResourcePackStatus = iota
	ResourcePackStatusDeclined
	ResourcePackStatusFailedToDownload
	ResourcePackStatusAccepted
	ResourcePackStatusDownloaded
	ResourcePackStatusInvalidURL
	ResourcePackStatusFailedToReload
	ResourcePackStatusDiscarded
)

// KnownPack identifies a data pack by namespace/id/version.
type KnownPack struct {
	Namespace ns.String
	ID        ns.String
	Version   ns.String
}

func readKnownPack(buf *ns.PacketBuffer) (KnownPack, error) {
	var kp KnownPack
	var err error
	if kp.Namespace, err = buf.ReadString(32767); err != nil {
		return kp, err
	}
	if kp.ID, err = buf.ReadString(32767); err != nil {
		return kp, err
	}
	kp.Version, err = buf.ReadString(32767)
	return kp, err
}

func writeKnownPack(buf *ns.PacketBuffer, kp KnownPack) error {
	if err := buf.WriteString(kp.Namespace); err != nil {
		return err
	}
	if err := buf.WriteString(kp.ID); err != nil {
		return err
	}
	return buf.WriteString(kp.Version)
}

// C2SSelectKnownPacksPacket represents "Serverbound Known Packs" (serverbound/configuration).
//
// > Informs the server of which data packs are present on the client.
// The client sends this in response to Clientbound Known Packs.
//
// > If the client specifies a pack in this packet, the server should omit its contained data from
// the Registry Data packet.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Serverbound_Known_Packs
type C2SSelectKnownPacksPacket struct {
	KnownPacks []KnownPack
}

func (p *C2SSelectKnownPacksPacket) ID() ns.VarInt   { return 0x07 }
func (p *C2SSelectKnownPacksPacket) State() jp.State { return jp.StateConfiguration }
func (p *C2SSelectKnownPacksPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SSelectKnownPacksPacket) Read(buf *ns.PacketBuffer) error {
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

func (p *C2SSelectKnownPacksPacket) Write(buf *ns.PacketBuffer) error {
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

// C2SCustomClickActionPacket represents "Custom Click Action (configuration)".
//
// > Sent when the client clicks a Text Component with the `minecraft:custom` click action.
// This is meant as an alternative to running a command, but will not have any effect on vanilla
// servers.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Custom_Click_Action_(configuration)
type C2SCustomClickActionPacket struct {
	// The identifier for the click action.
	ActionID ns.Identifier
	// The data to send with the click action. May be a `TAG_END` (0).
	Payload ns.NBT
}

func (p *C2SCustomClickActionPacket) ID() ns.VarInt   { return 0x08 }
func (p *C2SCustomClickActionPacket) State() jp.State { return jp.StateConfiguration }
func (p *C2SCustomClickActionPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SCustomClickActionPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ActionID, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Payload, err = ns.DecodeNBT(buf.Reader())
	return err
}

func (p *C2SCustomClickActionPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.ActionID); err != nil {
		return err
	}
	return p.Payload.Encode(buf.Writer())
}
