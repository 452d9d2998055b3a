// Package serverctx holds the state shared across every connection: the
// server's crypto context, its loaded registries, the player list, and
// static configuration. Access goes through read/update critical sections
// rather than exposing the guarded fields directly.
package serverctx

import (
	"sync"

	"github.com/BaukeWestendorp/keisteen/crypto"
	"github.com/BaukeWestendorp/keisteen/playerlist"
	"github.com/BaukeWestendorp/keisteen/registries"
)

// Config is the static, load-time configuration a Context is built from.
type Config struct {
	MOTD                 string
	MaxPlayers           int
	ServerVersion        string
	ProtocolNumber       int32
	ViewDistance         int32
	OnlineMode           bool
	EnforcesSecureChat   bool
	CompressionThreshold int
}

// Context is the shared, mutex-guarded server state. The zero value is not
// usable; build one with New.
type Context struct {
	mu sync.RWMutex

	crypto     *crypto.ServerContext
	registries *registries.Catalog
	players    *playerlist.List
	config     Config

	nextEntityID int32
}

// New builds a Context from already-loaded components.
func New(cryptoCtx *crypto.ServerContext, catalog *registries.Catalog, cfg Config) *Context {
	return &Context{
		crypto:       cryptoCtx,
		registries:   catalog,
		players:      playerlist.New(cfg.MaxPlayers),
		config:       cfg,
		nextEntityID: 1,
	}
}

// Read runs fn under a read lock. fn MUST NOT perform blocking I/O; per
// critical-section discipline, snapshot whatever's needed and return.
func (c *Context) Read(fn func(view *View)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(&View{ctx: c})
}

// Update runs fn under a write lock. fn MUST NOT perform blocking I/O.
func (c *Context) Update(fn func(view *View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&View{ctx: c})
}

// View is the handle passed into a Read/Update critical section. It is only
// valid for the duration of that call.
type View struct {
	ctx *Context
}

// Crypto returns the server's crypto context.
func (v *View) Crypto() *crypto.ServerContext { return v.ctx.crypto }

// Registries returns the loaded registry catalog.
func (v *View) Registries() *registries.Catalog { return v.ctx.registries }

// Players returns the player list. Callers running under Read must treat it
// as read-only even though the type itself doesn't enforce that.
func (v *View) Players() *playerlist.List { return v.ctx.players }

// Config returns the static server configuration.
func (v *View) Config() Config { return v.ctx.config }

// AllocateEntityID returns the next monotonically increasing entity id. Only
// meaningful inside an Update call.
func (v *View) AllocateEntityID() int32 {
	id := v.ctx.nextEntityID
	v.ctx.nextEntityID++
	return id
}
