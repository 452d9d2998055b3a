package packets

import (
	"fmt"
	"io"

	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
	"github.com/BaukeWestendorp/keisteen/textcomponent"
)

// S2CDisconnectLoginPacket represents "Disconnect (login)". The reason is an
// NBT text component (not JSON, unlike older protocol versions).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Disconnect_(login)
type S2CDisconnectLoginPacket struct {
	Reason textcomponent.Component
}

func (p *S2CDisconnectLoginPacket) ID() ns.VarInt   { return 0x00 }
func (p *S2CDisconnectLoginPacket) State() jp.State { return jp.StateLogin }
func (p *S2CDisconnectLoginPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CDisconnectLoginPacket) Read(buf *ns.PacketBuffer) error {
	c, err := textcomponent.ReadNetworkNBT(buf.Reader())
	if err != nil {
		return fmt.Errorf("failed to read disconnect reason: %w", err)
	}
	p.Reason = c
	return nil
}

func (p *S2CDisconnectLoginPacket) Write(buf *ns.PacketBuffer) error {
	return p.Reason.WriteNetworkNBT(buf.Writer())
}

// S2CEncryptionRequestPacket represents "Encryption Request".
//
// PublicKey is the server's DER-SPKI-encoded public key; VerifyToken is a
// randomly generated per-session token the client must echo back encrypted.
// ShouldAuthenticate tells the client whether to verify with the session
// server.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Encryption_Request
// https://minecraft.wiki/w/Protocol_encryption
type S2CEncryptionRequestPacket struct {
	ServerID           ns.String
	PublicKey          ns.ByteArray
	VerifyToken        ns.ByteArray
	ShouldAuthenticate ns.Boolean
}

func (p *S2CEncryptionRequestPacket) ID() ns.VarInt   { return 0x01 }
func (p *S2CEncryptionRequestPacket) State() jp.State { return jp.StateLogin }
func (p *S2CEncryptionRequestPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CEncryptionRequestPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.ServerID, err = buf.ReadString(20); err != nil {
		return err
	}
	if p.PublicKey, err = buf.ReadByteArray(512); err != nil {
		return err
	}
	if p.VerifyToken, err = buf.ReadByteArray(128); err != nil {
		return err
	}
	p.ShouldAuthenticate, err = buf.ReadBool()
	return err
}

func (p *S2CEncryptionRequestPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.ServerID); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.VerifyToken); err != nil {
		return err
	}
	return buf.WriteBool(p.ShouldAuthenticate)
}

// GameProfileProperty is a single signed profile property (e.g. "textures"),
// as carried by Login Success.
type GameProfileProperty struct {
	Name      ns.String
	Value     ns.String
	Signature ns.PrefixedOptional
}

// S2CLoginSuccessPacket represents "Login Success".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Success
type S2CLoginSuccessPacket struct {
	UUID       ns.UUID
	Username   ns.String
	Properties []GameProfileProperty
}

func (p *S2CLoginSuccessPacket) ID() ns.VarInt   { return 0x02 }
func (p *S2CLoginSuccessPacket) State() jp.State { return jp.StateLogin }
func (p *S2CLoginSuccessPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CLoginSuccessPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.UUID, err = buf.ReadUUID(); err != nil {
		return err
	}
	if p.Username, err = buf.ReadString(16); err != nil {
		return err
	}
	count, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Properties = make([]GameProfileProperty, count)
	for i := range p.Properties {
		var prop GameProfileProperty
		if prop.Name, err = buf.ReadString(32767); err != nil {
			return err
		}
		if prop.Value, err = buf.ReadString(32767); err != nil {
			return err
		}
		if prop.Signature, err = ns.DecodePrefixedOptional(buf.Reader(), 8192); err != nil {
			return err
		}
		p.Properties[i] = prop
	}
	return nil
}

func (p *S2CLoginSuccessPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return err
	}
	if err := buf.WriteString(p.Username); err != nil {
		return err
	}
	if err := buf.WriteVarInt(ns.VarInt(len(p.Properties))); err != nil {
		return err
	}
	for _, prop := range p.Properties {
		if err := buf.WriteString(prop.Name); err != nil {
			return err
		}
		if err := buf.WriteString(prop.Value); err != nil {
			return err
		}
		if err := prop.Signature.Encode(buf.Writer()); err != nil {
			return err
		}
	}
	return nil
}

// S2CSetCompressionPacket represents "Set Compression".
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Set_Compression
type S2CSetCompressionPacket struct {
	Threshold ns.VarInt
}

func (p *S2CSetCompressionPacket) ID() ns.VarInt   { return 0x03 }
func (p *S2CSetCompressionPacket) State() jp.State { return jp.StateLogin }
func (p *S2CSetCompressionPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CSetCompressionPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	p.Threshold, err = buf.ReadVarInt()
	return err
}

func (p *S2CSetCompressionPacket) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.Threshold)
}

// S2CLoginPluginRequestPacket represents "Login Plugin Request". Reserved;
// this server does not currently send it.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Plugin_Request
type S2CLoginPluginRequestPacket struct {
	MessageID ns.VarInt
	Channel   ns.Identifier
	Data      ns.ByteArray
}

func (p *S2CLoginPluginRequestPacket) ID() ns.VarInt   { return 0x04 }
func (p *S2CLoginPluginRequestPacket) State() jp.State { return jp.StateLogin }
func (p *S2CLoginPluginRequestPacket) Bound() jp.Bound { return jp.S2C }

func (p *S2CLoginPluginRequestPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.MessageID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	if p.Channel, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	data, err := io.ReadAll(buf.Reader())
	if err != nil {
		return fmt.Errorf("failed to read plugin request data: %w", err)
	}
	p.Data = data
	return nil
}

func (p *S2CLoginPluginRequestPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return err
	}
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteFixedByteArray(p.Data)
}
