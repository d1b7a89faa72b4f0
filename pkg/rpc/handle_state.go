package rpc

import (
	"context"

	"github.com/creachadair/jrpc2"
)

func (s *Service) handleState(ctx context.Context, req *jrpc2.Request) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewStateView(s.session.State()), nil
}

func (s *Service) handleHistory(ctx context.Context, req *jrpc2.Request) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return historyView(s.session.State().History), nil
}

func (s *Service) handleReset(ctx context.Context, req *jrpc2.Request) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger(ctx).InfoContext(ctx, "session reset")
	return NewStateView(s.session.Reset()), nil
}
