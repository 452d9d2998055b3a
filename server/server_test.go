package server_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"io"
	"net"
	"testing"

	"go.uber.org/zap"

	"github.com/BaukeWestendorp/keisteen/crypto"
	jp "github.com/BaukeWestendorp/keisteen/java_protocol"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
	"github.com/BaukeWestendorp/keisteen/java_protocol/packets"
	"github.com/BaukeWestendorp/keisteen/registries"
	"github.com/BaukeWestendorp/keisteen/server"
	"github.com/BaukeWestendorp/keisteen/serverctx"
)

func newTestContext(t *testing.T, maxPlayers int) *serverctx.Context {
	t.Helper()

	cryptoCtx, err := crypto.NewServerContext()
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	catalog, err := registries.Load(t.TempDir())
	if err != nil {
		t.Fatalf("registries.Load() error = %v", err)
	}
	return serverctx.New(cryptoCtx, catalog, serverctx.Config{
		MOTD:                 "test server",
		MaxPlayers:           maxPlayers,
		ServerVersion:        "1.21.8",
		ProtocolNumber:       772,
		ViewDistance:         10,
		OnlineMode:           false,
		EnforcesSecureChat:   false,
		CompressionThreshold: -1,
	})
}

func sendPacket(t *testing.T, conn *jp.Conn, p jp.Packet) {
	t.Helper()
	wire, err := jp.ToWire(p)
	if err != nil {
		t.Fatalf("ToWire() error = %v", err)
	}
	if err := wire.WriteTo(conn, -1); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
}

func readPacket[T any, PT interface {
	*T
	jp.Packet
}](t *testing.T, conn *jp.Conn) PT {
	t.Helper()
	wire, err := jp.ReadWirePacketFrom(conn, -1)
	if err != nil {
		t.Fatalf("ReadWirePacketFrom() error = %v", err)
	}
	p, err := jp.ReadPacket[T, PT](wire)
	if err != nil {
		t.Fatalf("ReadPacket() error = %v", err)
	}
	return p
}

func TestStatusRequestThenPingClosesConnection(t *testing.T) {
	clientRaw, serverRaw := net.Pipe()
	defer func() { _ = clientRaw.Close() }()

	ctx := newTestContext(t, 20)
	go server.NewConnection(serverRaw, ctx, zap.NewNop()).Serve()

	client := jp.NewConn(clientRaw)
	sendPacket(t, client, &packets.C2SIntentionPacket{
		ProtocolVersion: 772,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		Intent:          packets.IntentStatus,
	})
	sendPacket(t, client, &packets.C2SStatusRequestPacket{})

	resp := readPacket[packets.S2CStatusResponsePacket](t, client)
	var doc struct {
		Version struct {
			Name     string `json:"name"`
			Protocol int32  `json:"protocol"`
		} `json:"version"`
		Description struct {
			Text string `json:"text"`
		} `json:"description"`
	}
	if err := json.Unmarshal([]byte(resp.JSON), &doc); err != nil {
		t.Fatalf("failed to unmarshal status JSON: %v", err)
	}
	if doc.Version.Protocol != 772 {
		t.Errorf("Protocol = %d, want 772", doc.Version.Protocol)
	}
	if doc.Description.Text != "test server" {
		t.Errorf("Description.Text = %q, want %q", doc.Description.Text, "test server")
	}

	sendPacket(t, client, &packets.C2SPingRequestPacket{Timestamp: 123456})
	pong := readPacket[packets.S2CPongResponseStatusPacket](t, client)
	if pong.Payload != 123456 {
		t.Errorf("Payload = %d, want 123456", pong.Payload)
	}

	if _, err := jp.ReadWirePacketFrom(client, -1); err == nil {
		t.Error("expected connection to be closed after Pong Response, got a further packet")
	}
}

func TestHandshakeUnknownIntentClosesConnection(t *testing.T) {
	clientRaw, serverRaw := net.Pipe()
	defer func() { _ = clientRaw.Close() }()

	ctx := newTestContext(t, 20)
	go server.NewConnection(serverRaw, ctx, zap.NewNop()).Serve()

	client := jp.NewConn(clientRaw)
	sendPacket(t, client, &packets.C2SIntentionPacket{
		ProtocolVersion: 772,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		Intent:          99,
	})

	if _, err := jp.ReadWirePacketFrom(client, -1); err == nil {
		t.Error("expected connection to be closed after unknown handshake intent")
	}
}

// loginToConfiguration drives a connection through Handshake and Login,
// returning the client-side Conn with encryption already enabled to match
// the server's state, positioned right after Login Acknowledged.
func loginToConfiguration(t *testing.T, ctx *serverctx.Context, username string) *jp.Conn {
	t.Helper()

	clientRaw, serverRaw := net.Pipe()
	go server.NewConnection(serverRaw, ctx, zap.NewNop()).Serve()

	client := jp.NewConn(clientRaw)
	sendPacket(t, client, &packets.C2SIntentionPacket{
		ProtocolVersion: 772,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		Intent:          packets.IntentLogin,
	})
	sendPacket(t, client, &packets.C2SHelloPacket{Name: ns.String(username)})

	encReq := readPacket[packets.S2CEncryptionRequestPacket](t, client)

	pub, err := x509.ParsePKIXPublicKey(encReq.PublicKey)
	if err != nil {
		t.Fatalf("ParsePKIXPublicKey() error = %v", err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		t.Fatalf("public key is not RSA")
	}

	sharedSecret := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, sharedSecret); err != nil {
		t.Fatalf("failed to generate shared secret: %v", err)
	}
	encSecret, err := rsa.EncryptPKCS1v15(rand.Reader, rsaPub, sharedSecret)
	if err != nil {
		t.Fatalf("EncryptPKCS1v15(secret) error = %v", err)
	}
	encToken, err := rsa.EncryptPKCS1v15(rand.Reader, rsaPub, encReq.VerifyToken)
	if err != nil {
		t.Fatalf("EncryptPKCS1v15(token) error = %v", err)
	}

	sendPacket(t, client, &packets.C2SKeyPacket{SharedSecret: encSecret, VerifyToken: encToken})

	client.Encryption().SetSharedSecret(sharedSecret)
	if err := client.Encryption().EnableEncryption(); err != nil {
		t.Fatalf("EnableEncryption() error = %v", err)
	}

	_ = readPacket[packets.S2CLoginSuccessPacket](t, client)

	sendPacket(t, client, &packets.C2SLoginAcknowledgedPacket{})
	_ = readPacket[packets.S2CCustomPayloadConfigurationPacket](t, client)
	_ = readPacket[packets.S2CSelectKnownPacksPacket](t, client)

	return client
}

func TestLoginFlowAdmitsPlayerAndStreamsRegistries(t *testing.T) {
	ctx := newTestContext(t, 20)
	client := loginToConfiguration(t, ctx, "Steve")
	defer func() { _ = client.Close() }()

	sendPacket(t, client, &packets.C2SSelectKnownPacksPacket{})
	for range registries.Kinds {
		_ = readPacket[packets.S2CRegistryDataPacket](t, client)
	}
	_ = readPacket[packets.S2CFinishConfigurationPacket](t, client)

	sendPacket(t, client, &packets.C2SFinishConfigurationPacket{})
	login := readPacket[packets.S2CLoginPlayPacket](t, client)

	if login.EntityID != 1 {
		t.Errorf("EntityID = %d, want 1", login.EntityID)
	}
	if login.DimensionName != "minecraft:overworld" {
		t.Errorf("DimensionName = %q, want minecraft:overworld", login.DimensionName)
	}

	var playerCount int
	ctx.Read(func(v *serverctx.View) { playerCount = v.Players().Len() })
	if playerCount != 1 {
		t.Errorf("player count = %d, want 1", playerCount)
	}
}

func TestDuplicateLoginIsRejected(t *testing.T) {
	ctx := newTestContext(t, 20)

	first := loginToConfiguration(t, ctx, "Alex")
	defer func() { _ = first.Close() }()
	sendPacket(t, first, &packets.C2SSelectKnownPacksPacket{})
	for range registries.Kinds {
		_ = readPacket[packets.S2CRegistryDataPacket](t, first)
	}
	_ = readPacket[packets.S2CFinishConfigurationPacket](t, first)
	sendPacket(t, first, &packets.C2SFinishConfigurationPacket{})
	_ = readPacket[packets.S2CLoginPlayPacket](t, first)

	second := loginToConfiguration(t, ctx, "Alex")
	defer func() { _ = second.Close() }()
	sendPacket(t, second, &packets.C2SFinishConfigurationPacket{})
	_ = readPacket[packets.S2CDisconnectConfigurationPacket](t, second)

	if _, err := jp.ReadWirePacketFrom(second, -1); err == nil {
		t.Error("expected connection to be closed after duplicate-login rejection")
	}
}

func TestFullServerCapacityIsRejected(t *testing.T) {
	ctx := newTestContext(t, 1)

	first := loginToConfiguration(t, ctx, "One")
	defer func() { _ = first.Close() }()
	sendPacket(t, first, &packets.C2SSelectKnownPacksPacket{})
	for range registries.Kinds {
		_ = readPacket[packets.S2CRegistryDataPacket](t, first)
	}
	_ = readPacket[packets.S2CFinishConfigurationPacket](t, first)
	sendPacket(t, first, &packets.C2SFinishConfigurationPacket{})
	_ = readPacket[packets.S2CLoginPlayPacket](t, first)

	second := loginToConfiguration(t, ctx, "Two")
	defer func() { _ = second.Close() }()
	sendPacket(t, second, &packets.C2SFinishConfigurationPacket{})
	reject := readPacket[packets.S2CDisconnectConfigurationPacket](t, second)
	if reject.Reason.PlainText() != "The server is full." {
		t.Errorf("disconnect reason = %q, want %q", reject.Reason.PlainText(), "The server is full.")
	}
}
