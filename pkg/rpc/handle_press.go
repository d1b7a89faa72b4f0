package rpc

import (
	"context"

	"github.com/creachadair/jrpc2"

	"github.com/vito/calc/pkg/calc"
)

func (s *Service) handlePress(ctx context.Context, req *jrpc2.Request) (any, error) {
	if !req.HasParams() {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "missing parameters")
	}

	var params PressParams
	if err := req.UnmarshalParams(&params); err != nil {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "%v", err)
	}

	buttons := params.Buttons
	if params.Tape != "" {
		tape, err := calc.ParseTape(params.Tape)
		if err != nil {
			return nil, jrpc2.Errorf(jrpc2.InvalidParams, "%v", err)
		}
		buttons = append(buttons, tape...)
	}
	if len(buttons) == 0 {
		return nil, jrpc2.Errorf(jrpc2.InvalidParams, "no buttons to press")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.session.PressAll(buttons)
	s.logger(ctx).DebugContext(ctx, "pressed", "count", len(buttons), "display", state.Display)
	return NewStateView(state), nil
}
