package rpc

import "github.com/vito/calc/pkg/calc"

// PressParams is the argument to calc.press. Buttons and Tape may be
// combined; Buttons are pressed first.
type PressParams struct {
	Buttons []calc.Button `json:"buttons,omitempty"`
	Tape    string        `json:"tape,omitempty"`
}

// StateView is the state returned by calc.press, calc.state and
// calc.reset. Every field is always present so a client decoding into
// the same value never keeps stale entries.
type StateView struct {
	Display    string              `json:"display"`
	Expression string              `json:"expression"`
	Previous   *float64            `json:"previous"`
	Operator   calc.Operator       `json:"operator"`
	Memory     float64             `json:"memory"`
	Notice     string              `json:"notice"`
	History    []calc.HistoryEntry `json:"history"`
}

func NewStateView(s calc.State) StateView {
	return StateView{
		Display:    s.Display,
		Expression: s.Expression,
		Previous:   s.Previous,
		Operator:   s.Operator,
		Memory:     s.Memory,
		Notice:     s.Notice,
		History:    historyView(s.History),
	}
}

func historyView(history []calc.HistoryEntry) []calc.HistoryEntry {
	if history == nil {
		return []calc.HistoryEntry{}
	}
	return history
}
