package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"

	"go.uber.org/zap"

	"github.com/BaukeWestendorp/keisteen/crypto"
	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
	"github.com/BaukeWestendorp/keisteen/java_protocol/packets"
	"github.com/BaukeWestendorp/keisteen/playerlist"
	"github.com/BaukeWestendorp/keisteen/registries"
	"github.com/BaukeWestendorp/keisteen/serverctx"
	"github.com/BaukeWestendorp/keisteen/textcomponent"
)

// serverBrand is the channel payload announced on minecraft:brand.
const serverBrand = "keisteen"

// errGracefulClose signals that a handler wants the read loop to stop
// without being logged as a failure; the handler has already sent whatever
// packet explains why (a Pong, a Disconnect).
var errGracefulClose = errors.New("connection closed by handler")

// Connection is a single accepted client's protocol state machine: current
// phase, the in-progress or admitted profile, and the per-connection
// compression setting negotiated during Login.
type Connection struct {
	conn  *jp.Conn
	state jp.State
	log   *zap.Logger
	ctx   *serverctx.Context

	compressionThreshold int // -1 disables compression

	username    string
	profileUUID ns.UUID
	verifyToken []byte
	admitted    bool
}

// NewConnection wraps an accepted net.Conn for service by Serve.
func NewConnection(netConn net.Conn, ctx *serverctx.Context, log *zap.Logger) *Connection {
	return &Connection{
		conn:                 jp.NewConn(netConn),
		state:                jp.StateHandshake,
		log:                  log.With(zap.String("remote", netConn.RemoteAddr().String())),
		ctx:                  ctx,
		compressionThreshold: -1,
	}
}

// Serve runs the connection's read loop until the client disconnects or a
// protocol violation ends the session. It always closes the socket before
// returning and evicts the profile from the player list if one was admitted.
func (c *Connection) Serve() {
	if tc, ok := c.conn.NetConn().(*net.TCPConn); ok {
		_ = tc.SetNoDelay(true)
	}

	defer c.cleanup()

	for {
		wire, err := jp.ReadWirePacketFrom(c.conn, c.compressionThreshold)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.log.Debug("read failed", zap.Error(err))
			}
			return
		}

		if err := c.dispatch(wire); err != nil {
			if !errors.Is(err, errGracefulClose) {
				c.log.Warn("dispatch failed", zap.Error(err))
			}
			return
		}
	}
}

func (c *Connection) cleanup() {
	if c.admitted {
		c.ctx.Update(func(v *serverctx.View) {
			v.Players().Remove(c.profileUUID)
		})
	}
	_ = c.conn.Close()
}

func (c *Connection) dispatch(wire *jp.WirePacket) error {
	switch c.state {
	case jp.StateHandshake:
		return c.dispatchHandshake(wire)
	case jp.StateStatus:
		return c.dispatchStatus(wire)
	case jp.StateLogin:
		return c.dispatchLogin(wire)
	case jp.StateConfiguration:
		return c.dispatchConfiguration(wire)
	case jp.StatePlay:
		c.log.Debug("ignoring play packet", zap.Int64("id", int64(wire.PacketID)))
		return nil
	default:
		return fmt.Errorf("unknown connection state %d", c.state)
	}
}

func (c *Connection) send(p jp.Packet) error {
	wire, err := jp.ToWire(p)
	if err != nil {
		return err
	}
	return wire.WriteTo(c.conn, c.compressionThreshold)
}

func (c *Connection) dispatchHandshake(wire *jp.WirePacket) error {
	if wire.PacketID != 0x00 {
		c.log.Warn("unknown handshake packet", zap.Int64("id", int64(wire.PacketID)))
		return nil
	}
	p, err := jp.ReadPacket[packets.C2SIntentionPacket](wire)
	if err != nil {
		return err
	}

	var expected int32
	c.ctx.Read(func(v *serverctx.View) { expected = v.Config().ProtocolNumber })
	if int32(p.ProtocolVersion) != expected {
		c.log.Warn("protocol version mismatch",
			zap.Int32("expected", expected), zap.Int64("got", int64(p.ProtocolVersion)))
	}

	switch p.Intent {
	case packets.IntentStatus:
		c.state = jp.StateStatus
	case packets.IntentLogin, packets.IntentTransfer:
		c.state = jp.StateLogin
	default:
		return fmt.Errorf("unknown handshake intent %d", p.Intent)
	}
	return nil
}

func (c *Connection) dispatchStatus(wire *jp.WirePacket) error {
	switch wire.PacketID {
	case 0x00:
		if _, err := jp.ReadPacket[packets.C2SStatusRequestPacket](wire); err != nil {
			return err
		}
		var cfg serverctx.Config
		var online []playerlist.Player
		c.ctx.Read(func(v *serverctx.View) {
			cfg = v.Config()
			online = v.Players().Players()
		})
		json, err := buildStatusJSON(cfg, online)
		if err != nil {
			return fmt.Errorf("failed to build status response: %w", err)
		}
		return c.send(&packets.S2CStatusResponsePacket{JSON: json})
	case 0x01:
		p, err := jp.ReadPacket[packets.C2SPingRequestPacket](wire)
		if err != nil {
			return err
		}
		if err := c.send(&packets.S2CPongResponseStatusPacket{Payload: p.Timestamp}); err != nil {
			return err
		}
		return errGracefulClose
	default:
		c.log.Warn("unknown status packet", zap.Int64("id", int64(wire.PacketID)))
		return nil
	}
}

func (c *Connection) dispatchLogin(wire *jp.WirePacket) error {
	switch wire.PacketID {
	case 0x00:
		return c.handleHello(wire)
	case 0x01:
		return c.handleEncryptionResponse(wire)
	case 0x02, 0x04:
		c.log.Debug("ignoring login packet", zap.Int64("id", int64(wire.PacketID)))
		return nil
	case 0x03:
		return c.handleLoginAcknowledged(wire)
	default:
		c.log.Warn("unknown login packet", zap.Int64("id", int64(wire.PacketID)))
		return nil
	}
}

func (c *Connection) handleHello(wire *jp.WirePacket) error {
	p, err := jp.ReadPacket[packets.C2SHelloPacket](wire)
	if err != nil {
		return err
	}

	c.username = string(p.Name)
	c.profileUUID = ns.OfflineUUID(c.username)

	token, err := crypto.IssueVerifyToken()
	if err != nil {
		return err
	}
	c.verifyToken = token

	var pubKey []byte
	c.ctx.Read(func(v *serverctx.View) { pubKey = v.Crypto().PublicKeyDER() })

	return c.send(&packets.S2CEncryptionRequestPacket{
		ServerID:    "",
		PublicKey:   pubKey,
		VerifyToken: token,
	})
}

func (c *Connection) handleEncryptionResponse(wire *jp.WirePacket) error {
	p, err := jp.ReadPacket[packets.C2SKeyPacket](wire)
	if err != nil {
		return err
	}

	var sharedSecret []byte
	var tokenOK bool
	var decryptErr error
	c.ctx.Read(func(v *serverctx.View) {
		sharedSecret, decryptErr = v.Crypto().DecryptRSA(p.SharedSecret)
		if decryptErr != nil {
			return
		}
		tokenOK, decryptErr = v.Crypto().VerifyToken(c.verifyToken, p.VerifyToken)
	})
	if decryptErr != nil {
		return fmt.Errorf("encryption response: %w", decryptErr)
	}
	if !tokenOK {
		return fmt.Errorf("encryption response: verify token mismatch")
	}

	c.conn.Encryption().SetSharedSecret(sharedSecret)
	if err := c.conn.Encryption().EnableEncryption(); err != nil {
		return fmt.Errorf("failed to enable encryption: %w", err)
	}

	var threshold int
	c.ctx.Read(func(v *serverctx.View) { threshold = v.Config().CompressionThreshold })
	if threshold >= 0 {
		if err := c.send(&packets.S2CSetCompressionPacket{Threshold: ns.VarInt(threshold)}); err != nil {
			return err
		}
		c.compressionThreshold = threshold
	}

	return c.send(&packets.S2CLoginSuccessPacket{
		UUID:     c.profileUUID,
		Username: ns.String(c.username),
	})
}

func (c *Connection) handleLoginAcknowledged(wire *jp.WirePacket) error {
	if _, err := jp.ReadPacket[packets.C2SLoginAcknowledgedPacket](wire); err != nil {
		return err
	}
	c.state = jp.StateConfiguration

	brandBuf := ns.NewWriter()
	if err := ns.String(serverBrand).Encode(brandBuf.Writer()); err != nil {
		return err
	}
	if err := c.send(&packets.S2CCustomPayloadConfigurationPacket{
		Channel: "minecraft:brand",
		Data:    brandBuf.Bytes(),
	}); err != nil {
		return err
	}

	var version string
	c.ctx.Read(func(v *serverctx.View) { version = v.Config().ServerVersion })
	return c.send(&packets.S2CSelectKnownPacksPacket{
		KnownPacks: []packets.KnownPack{
			{Namespace: "minecraft", ID: "core", Version: ns.String(version)},
		},
	})
}

func (c *Connection) dispatchConfiguration(wire *jp.WirePacket) error {
	switch wire.PacketID {
	case 0x00:
		_, err := jp.ReadPacket[packets.C2SClientInformationPacket](wire)
		return err
	case 0x01, 0x04, 0x05, 0x06, 0x08:
		c.log.Debug("ignoring configuration packet", zap.Int64("id", int64(wire.PacketID)))
		return nil
	case 0x02:
		p, err := jp.ReadPacket[packets.C2SCustomPayloadPacket](wire)
		if err != nil {
			return err
		}
		if p.Channel == "minecraft:brand" {
			c.log.Info("client brand", zap.String("brand", decodeBrand(p.Data)))
		} else {
			c.log.Debug("plugin message", zap.String("channel", string(p.Channel)))
		}
		return nil
	case 0x03:
		return c.handleFinishConfiguration(wire)
	case 0x07:
		return c.handleKnownPacks(wire)
	default:
		c.log.Warn("unknown configuration packet", zap.Int64("id", int64(wire.PacketID)))
		return nil
	}
}

func decodeBrand(data []byte) string {
	s, err := ns.DecodeString(bytes.NewReader(data), 32767)
	if err != nil {
		return ""
	}
	return string(s)
}

func (c *Connection) handleFinishConfiguration(wire *jp.WirePacket) error {
	if _, err := jp.ReadPacket[packets.C2SFinishConfigurationPacket](wire); err != nil {
		return err
	}

	var rejectReason string
	var entityID int32
	c.ctx.Update(func(v *serverctx.View) {
		players := v.Players()
		switch {
		case players.Contains(c.profileUUID):
			rejectReason = "You are already logged in."
		case players.Len() >= players.Capacity():
			rejectReason = "The server is full."
		default:
			entityID = v.AllocateEntityID()
			_ = players.Insert(playerlist.Player{
				UUID:     c.profileUUID,
				Username: c.username,
				EntityID: entityID,
			})
		}
	})

	if rejectReason != "" {
		if err := c.send(&packets.S2CDisconnectConfigurationPacket{
			Reason: textcomponent.Of(rejectReason),
		}); err != nil {
			return err
		}
		return errGracefulClose
	}
	c.admitted = true

	var dimensionNames []ns.Identifier
	c.ctx.Read(func(v *serverctx.View) {
		for _, e := range v.Registries().Table(registries.KindDimensionType).Entries() {
			dimensionNames = append(dimensionNames, e.ID)
		}
	})
	if len(dimensionNames) == 0 {
		dimensionNames = []ns.Identifier{"minecraft:overworld"}
	}

	var maxPlayers int
	var viewDistance int32
	var secureChat bool
	c.ctx.Read(func(v *serverctx.View) {
		maxPlayers = v.Config().MaxPlayers
		viewDistance = v.Config().ViewDistance
		secureChat = v.Config().EnforcesSecureChat
	})

	c.state = jp.StatePlay
	return c.send(&packets.S2CLoginPlayPacket{
		EntityID:            entityID,
		IsHardcore:          false,
		DimensionNames:      dimensionNames,
		MaxPlayers:          ns.VarInt(maxPlayers),
		ViewDistance:        ns.VarInt(viewDistance),
		SimulationDistance:  ns.VarInt(viewDistance),
		ReducedDebugInfo:    false,
		EnableRespawnScreen: true,
		DoLimitedCrafting:   false,
		DimensionType:       0,
		DimensionName:       dimensionNames[0],
		HashedSeed:          0,
		GameMode:            0,
		PreviousGameMode:    -1,
		IsDebug:             false,
		IsFlat:              false,
		HasDeathLocation:    false,
		PortalCooldown:      0,
		SeaLevel:            64,
		EnforcesSecureChat:  secureChat,
	})
}

func (c *Connection) handleKnownPacks(wire *jp.WirePacket) error {
	if _, err := jp.ReadPacket[packets.C2SSelectKnownPacksPacket](wire); err != nil {
		return err
	}

	var kinds []registries.Kind
	tables := map[registries.Kind][]registries.Entry{}
	c.ctx.Read(func(v *serverctx.View) {
		kinds = v.Registries().Kinds()
		for _, k := range kinds {
			tables[k] = v.Registries().Table(k).Entries()
		}
	})

	for _, kind := range kinds {
		registryID, err := ns.NewIdentifier("minecraft", string(kind))
		if err != nil {
			return err
		}
		entries := make([]packets.RegistryEntry, 0, len(tables[kind]))
		for _, e := range tables[kind] {
			tag, err := e.Tag()
			if err != nil {
				return fmt.Errorf("registry %s entry %s: %w", kind, e.ID, err)
			}
			entries = append(entries, packets.RegistryEntry{
				EntryID: e.ID,
				Present: true,
				Data:    ns.NBT{Tag: tag},
			})
		}
		if err := c.send(&packets.S2CRegistryDataPacket{RegistryID: registryID, Entries: entries}); err != nil {
			return err
		}
	}

	return c.send(&packets.S2CFinishConfigurationPacket{})
}
