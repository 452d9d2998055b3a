// Package server implements the per-connection protocol state machine and
// the TCP accept loop that feeds it: one goroutine per connection, talking
// to a shared serverctx.Context.
package server

import (
	"errors"
	"net"

	"go.uber.org/zap"

	"github.com/BaukeWestendorp/keisteen/serverctx"
)

// Server accepts TCP connections and spins up a Connection for each.
type Server struct {
	ctx *serverctx.Context
	log *zap.Logger
}

// New builds a Server around an already-constructed shared context.
func New(ctx *serverctx.Context, log *zap.Logger) *Server {
	return &Server{ctx: ctx, log: log}
}

// ListenAndServe binds address and serves connections until the listener is
// closed or Serve returns an error.
func (s *Server) ListenAndServe(address string) error {
	l, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	s.log.Info("listening", zap.String("address", address))
	return s.Serve(l)
}

// Serve runs the accept loop over an already-bound listener. It returns nil
// when the listener is closed deliberately (net.ErrClosed), and a non-nil
// error for any other Accept failure.
func (s *Server) Serve(l net.Listener) error {
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go NewConnection(conn, s.ctx, s.log).Serve()
	}
}
