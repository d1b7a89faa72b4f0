package calc

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// Machine is the calculator's transition function along with the
// settings that shape it.
type Machine struct {
	// History enables recording completed calculations.
	History bool
	// NewID generates history entry identifiers.
	NewID func() string
}

// NewMachine returns a Machine configured from cfg.
func NewMachine(cfg Config) *Machine {
	return &Machine{
		History: cfg.HistoryEnabled(),
		NewID:   uuid.NewString,
	}
}

// Next returns the state after pressing b in s.
//
// A press that fails (division by zero, square root of a negative, a
// result out of range) leaves s as it was apart from Notice.
func (m *Machine) Next(s State, b Button) State {
	s.Notice = ""
	next, err := m.apply(s, b)
	if err != nil {
		s.Notice = Notice(err)
		return s
	}
	return next
}

func (m *Machine) apply(s State, b Button) (State, error) {
	if d, ok := b.Digit(); ok {
		return enterDigit(s, d)
	}
	if op := b.Operator(); op != None {
		return pressOperator(s, op)
	}

	switch b {
	case KeyDecimal:
		return enterDecimal(s), nil
	case KeyEquals:
		return m.equals(s)
	case KeyClear:
		return State{Display: "0", Memory: s.Memory, History: s.History}, nil
	case KeyClearEntry:
		s.Display = "0"
		s.ResetPending = false
		s.Entered = true
		return s, nil
	case KeyBackspace:
		return backspace(s), nil
	case KeyPercent:
		return transform(s, func(v float64) (float64, error) {
			return v / 100, nil
		})
	case KeyReciprocal:
		return transform(s, func(v float64) (float64, error) {
			if v == 0 {
				return 0, ErrDivideByZero
			}
			return 1 / v, nil
		})
	case KeySquare:
		return transform(s, func(v float64) (float64, error) {
			return v * v, nil
		})
	case KeySquareRoot:
		return transform(s, func(v float64) (float64, error) {
			if v < 0 {
				return 0, ErrInvalidInput
			}
			return math.Sqrt(v), nil
		})
	case KeyNegate:
		return negate(s), nil
	case KeyMemoryClear:
		s.Memory = 0
		return s, nil
	case KeyMemoryRecall:
		s.Display = FormatNumber(s.Memory)
		s.ResetPending = true
		s.Entered = true
		return s, nil
	case KeyMemoryAdd:
		return storeMemory(s, s.Memory+s.Value())
	case KeyMemorySubtract:
		return storeMemory(s, s.Memory-s.Value())
	case KeyMemoryStore:
		return storeMemory(s, s.Value())
	case KeyClearHistory:
		s.History = nil
		return s, nil
	}
	return s, nil
}

func enterDigit(s State, digit string) (State, error) {
	var display string
	switch {
	case s.ResetPending, s.Display == "0":
		display = digit
	case s.Display == "-0":
		display = "-" + digit
	default:
		display = s.Display + digit
	}
	if _, err := ParseDisplay(display); err != nil {
		return s, err
	}
	s.Display = display
	s.ResetPending = false
	s.Entered = true
	return s, nil
}

func enterDecimal(s State) State {
	switch {
	case s.ResetPending:
		s.Display = "0."
		s.ResetPending = false
	case strings.ContainsAny(s.Display, ".e"):
		return s
	default:
		s.Display += "."
	}
	s.Entered = true
	return s
}

func pressOperator(s State, op Operator) (State, error) {
	current := s.Value()
	switch {
	case s.Previous == nil:
		s.Previous = float(current)
	case s.Operator != None && s.Entered:
		result, err := Evaluate(*s.Previous, current, s.Operator)
		if err != nil {
			return s, err
		}
		s.Display = FormatNumber(result)
		s.Previous = float(result)
	default:
		// operator pressed again before a new operand: switch operators
		s.Previous = float(current)
	}
	s.Operator = op
	s.ResetPending = true
	s.Entered = false
	s.LastOperand, s.LastOperator = 0, None
	s.Expression = FormatNumber(*s.Previous) + " " + op.Symbol()
	return s, nil
}

func (m *Machine) equals(s State) (State, error) {
	var left, right float64
	var op Operator
	switch {
	case s.Repeating():
		left, right, op = s.Value(), s.LastOperand, s.LastOperator
	case s.Pending():
		left, op = *s.Previous, s.Operator
		right = left
		if s.Entered {
			right = s.Value()
		}
	default:
		return s, nil
	}

	result, err := Evaluate(left, right, op)
	if err != nil {
		return s, err
	}

	s.Display = FormatNumber(result)
	s.Expression = FormatNumber(left) + " " + op.Symbol() + " " + FormatNumber(right) + " ="
	s.Previous, s.Operator = nil, None
	s.LastOperand, s.LastOperator = right, op
	s.ResetPending = true
	s.Entered = false
	if m.History {
		s.History = m.record(s.History, s.Expression, s.Display)
	}
	return s, nil
}

func (m *Machine) record(history []HistoryEntry, calculation, result string) []HistoryEntry {
	newID := m.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	next := make([]HistoryEntry, 0, HistoryLimit+1)
	next = append(next, HistoryEntry{
		ID:          newID(),
		Calculation: calculation,
		Result:      result,
	})
	next = append(next, history...)
	if len(next) > HistoryLimit {
		next = next[:HistoryLimit]
	}
	return next
}

func transform(s State, fn func(float64) (float64, error)) (State, error) {
	result, err := fn(s.Value())
	if err != nil {
		return s, err
	}
	if !finite(result) {
		return s, ErrOverflow
	}
	s.Display = FormatNumber(result)
	s.ResetPending = true
	s.Entered = true
	return s, nil
}

func negate(s State) State {
	switch {
	case s.Display == "0":
	case strings.HasPrefix(s.Display, "-"):
		s.Display = s.Display[1:]
	default:
		s.Display = "-" + s.Display
	}
	s.Entered = true
	return s
}

func backspace(s State) State {
	if s.ResetPending {
		return s
	}
	display := s.Display[:len(s.Display)-1]
	if display == "" || display == "-" {
		display = "0"
	}
	s.Display = display
	return s
}

func storeMemory(s State, v float64) (State, error) {
	if !finite(v) {
		return s, ErrOverflow
	}
	s.Memory = v
	s.ResetPending = true
	return s, nil
}
