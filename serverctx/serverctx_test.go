package serverctx_test

import (
	"testing"

	"github.com/BaukeWestendorp/keisteen/crypto"
	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
	"github.com/BaukeWestendorp/keisteen/playerlist"
	"github.com/BaukeWestendorp/keisteen/registries"
	"github.com/BaukeWestendorp/keisteen/serverctx"
)

func newTestContext(t *testing.T) *serverctx.Context {
	t.Helper()
	cryptoCtx, err := crypto.NewServerContext()
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	catalog, err := registries.Load("testdata-missing")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return serverctx.New(cryptoCtx, catalog, serverctx.Config{MaxPlayers: 2})
}

func TestAllocateEntityIDIsMonotonic(t *testing.T) {
	ctx := newTestContext(t)

	var a, b int32
	ctx.Update(func(v *serverctx.View) { a = v.AllocateEntityID() })
	ctx.Update(func(v *serverctx.View) { b = v.AllocateEntityID() })

	if a != 1 || b != 2 {
		t.Errorf("AllocateEntityID() sequence = (%d, %d), want (1, 2)", a, b)
	}
}

func TestReadExposesPlayersAndRegistries(t *testing.T) {
	ctx := newTestContext(t)

	ctx.Update(func(v *serverctx.View) {
		if err := v.Players().Insert(playerlist.Player{UUID: ns.UUID{0x01}}); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	})

	ctx.Read(func(v *serverctx.View) {
		if v.Players().Len() != 1 {
			t.Errorf("Players().Len() = %d, want 1", v.Players().Len())
		}
		if v.Registries().Table(registries.KindDimensionType) == nil {
			t.Errorf("Registries() missing dimension_type table")
		}
	})
}
