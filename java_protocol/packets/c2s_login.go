// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login
package packets

import (
	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
)

// C2SHelloPacket represents "Login Start" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Hello
type C2SHelloPacket struct {
	// Player's Username.
	Name ns.String
	// The UUID of the player logging in. Unused by the vanilla server.
	PlayerUUID ns.UUID
}

func (p *C2SHelloPacket) ID() ns.VarInt   { return 0x00 }
func (p *C2SHelloPacket) State() jp.State { return jp.StateLogin }
func (p *C2SHelloPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SHelloPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Name, err = buf.ReadString(16); err != nil {
		return err
	}
	p.PlayerUUID, err = buf.ReadUUID()
	return err
}

func (p *C2SHelloPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Name); err != nil {
		return err
	}
	return buf.WriteUUID(p.PlayerUUID)
}

// C2SKeyPacket represents "Encryption Response" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Encryption_Response
// https://minecraft.wiki/w/Protocol_encryption
type C2SKeyPacket struct {
	// Shared Secret value, encrypted with the server's public key.
	SharedSecret ns.ByteArray
	// Verify Token value, encrypted with the same public key as the shared secret.
	VerifyToken ns.ByteArray
}

func (p *C2SKeyPacket) ID() ns.VarInt   { return 0x01 }
func (p *C2SKeyPacket) State() jp.State { return jp.StateLogin }
func (p *C2SKeyPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SKeyPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.SharedSecret, err = buf.ReadByteArray(128); err != nil {
		return err
	}
	p.VerifyToken, err = buf.ReadByteArray(128)
	return err
}

func (p *C2SKeyPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteByteArray(p.SharedSecret); err != nil {
		return err
	}
	return buf.WriteByteArray(p.VerifyToken)
}

// C2SCustomQueryAnswerPacket represents "Login Plugin Response" (serverbound/login).
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Plugin_Response
type C2SCustomQueryAnswerPacket struct {
	// Should match ID from server.
	MessageID ns.VarInt
	// Any data, depending on the channel. Only present if the client understood the request.
	Data ns.PrefixedOptional
}

func (p *C2SCustomQueryAnswerPacket) ID() ns.VarInt   { return 0x02 }
func (p *C2SCustomQueryAnswerPacket) State() jp.State { return jp.StateLogin }
func (p *C2SCustomQueryAnswerPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SCustomQueryAnswerPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.MessageID, err = buf.ReadVarInt(); err != nil {
		return err
	}
	p.Data, err = ns.DecodePrefixedOptional(buf.Reader(), 1048576)
	return err
}

func (p *C2SCustomQueryAnswerPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return err
	}
	return p.Data.Encode(buf.Writer())
}

// C2SLoginAcknowledgedPacket represents "Login Acknowledged" (serverbound/login). Has no fields.
//
// > Acknowledgement to the Login Success packet sent by the server.
// This packet switches the connection state to configuration.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Login_Acknowledged
type C2SLoginAcknowledgedPacket struct{}

func (p *C2SLoginAcknowledgedPacket) ID() ns.VarInt                     { return 0x03 }
func (p *C2SLoginAcknowledgedPacket) State() jp.State                   { return jp.StateLogin }
func (p *C2SLoginAcknowledgedPacket) Bound() jp.Bound                   { return jp.C2S }
func (p *C2SLoginAcknowledgedPacket) Read(buf *ns.PacketBuffer) error  { return nil }
func (p *C2SLoginAcknowledgedPacket) Write(buf *ns.PacketBuffer) error { return nil }

// C2SCookieResponseLoginPacket represents "Cookie Response (login)" (serverbound/login).
//
// > Response to a Cookie Request (login) from the server.
// The vanilla server only accepts responses of up to 5 kiB in size.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Packets#Cookie_Response_(login)
type C2SCookieResponseLoginPacket struct {
	// The identifier of the cookie.
	Key ns.Identifier
	// The data of the cookie.
	Payload ns.PrefixedOptional
}

func (p *C2SCookieResponseLoginPacket) ID() ns.VarInt   { return 0x04 }
func (p *C2SCookieResponseLoginPacket) State() jp.State { return jp.StateLogin }
func (p *C2SCookieResponseLoginPacket) Bound() jp.Bound { return jp.C2S }

func (p *C2SCookieResponseLoginPacket) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.Key, err = buf.ReadIdentifier(); err != nil {
		return err
	}
	p.Payload, err = ns.DecodePrefixedOptional(buf.Reader(), 5*1024)
	return err
}

func (p *C2SCookieResponseLoginPacket) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Key); err != nil {
		return err
	}
	return p.Payload.Encode(buf.Writer())
}
