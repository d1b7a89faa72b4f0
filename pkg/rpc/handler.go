// Package rpc exposes a calculator session over JSON-RPC 2.0.
package rpc

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"

	"github.com/vito/calc/pkg/calc"
	"github.com/vito/calc/pkg/ioctx"
)

// Service serves one calculator session. jrpc2 may run handlers
// concurrently, so presses are serialised here.
type Service struct {
	mu      sync.Mutex
	session *calc.Session
}

func NewService(session *calc.Session) *Service {
	return &Service{session: session}
}

// Methods returns the method table to hand to jrpc2.NewServer.
func (s *Service) Methods() handler.Map {
	return handler.Map{
		"calc.press":   s.handlePress,
		"calc.state":   s.handleState,
		"calc.history": s.handleHistory,
		"calc.reset":   s.handleReset,
	}
}

// ServerOptions returns jrpc2 options that route request contexts and
// server diagnostics through the logger carried by ctx.
func ServerOptions(ctx context.Context) *jrpc2.ServerOptions {
	logger := ioctx.LoggerFromContext(ctx)
	return &jrpc2.ServerOptions{
		Logger:     func(text string) { logger.Debug(text) },
		NewContext: func() context.Context { return ctx },
	}
}

// Serve answers newline-delimited JSON-RPC requests from r on w until the
// input ends or ctx is cancelled.
func Serve(ctx context.Context, svc *Service, r io.Reader, w io.WriteCloser) error {
	logger := ioctx.LoggerFromContext(ctx)

	srv := jrpc2.NewServer(svc.Methods(), ServerOptions(ctx))
	srv.Start(channel.Line(r, w))

	stop := context.AfterFunc(ctx, srv.Stop)
	defer stop()

	err := srv.Wait()
	logger.InfoContext(ctx, "rpc server closed", "error", err)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	return ioctx.LoggerFromContext(ctx)
}
