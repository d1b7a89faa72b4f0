package calc

import "log/slog"

// Session owns the state of one calculator. It is not safe for concurrent
// use; front ends serialise presses themselves.
type Session struct {
	machine *Machine
	state   State
	logger  *slog.Logger
}

func NewSession(machine *Machine, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		machine: machine,
		state:   NewState(),
		logger:  logger,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Press applies a single button and returns the resulting state.
func (s *Session) Press(b Button) State {
	s.state = s.machine.Next(s.state, b)
	if s.state.Notice != "" {
		s.logger.Info("press rejected", "button", b.String(), "notice", s.state.Notice)
	} else {
		s.logger.Debug("press",
			"button", b.String(),
			"display", s.state.Display,
			"expression", s.state.Expression,
			"operator", s.state.Operator.String())
	}
	return s.state
}

// PressAll applies buttons in order and returns the final state.
func (s *Session) PressAll(buttons []Button) State {
	for _, b := range buttons {
		s.Press(b)
	}
	return s.state
}

// Reset discards everything, memory and history included.
func (s *Session) Reset() State {
	s.state = NewState()
	return s.state
}

// SetHistory turns the history log on or off. Turning it off drops any
// recorded entries.
func (s *Session) SetHistory(enabled bool) {
	s.machine.History = enabled
	if !enabled {
		s.state.History = nil
	}
}
