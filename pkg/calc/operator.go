package calc

import (
	"math"

	"github.com/pkg/errors"
)

// Operator is a binary operation awaiting its right operand.
type Operator int

const (
	None Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

var operatorNames = [...]string{
	None:     "none",
	Add:      "add",
	Subtract: "subtract",
	Multiply: "multiply",
	Divide:   "divide",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return "unknown"
	}
	return operatorNames[op]
}

// Symbol returns the keypad symbol shown in expressions.
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return ""
	}
}

func (op Operator) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

func (op *Operator) UnmarshalText(text []byte) error {
	for i, name := range operatorNames {
		if name == string(text) {
			*op = Operator(i)
			return nil
		}
	}
	return errors.Errorf("unknown operator %q", text)
}

// Evaluate applies op to prev and cur.
//
// A zero divisor yields 0 along with ErrDivideByZero, and results outside
// the finite float64 range yield ErrOverflow. None returns cur unchanged.
func Evaluate(prev, cur float64, op Operator) (float64, error) {
	var result float64
	switch op {
	case Add:
		result = prev + cur
	case Subtract:
		result = prev - cur
	case Multiply:
		result = prev * cur
	case Divide:
		if cur == 0 {
			return 0, ErrDivideByZero
		}
		result = prev / cur
	default:
		return cur, nil
	}
	if !finite(result) {
		return result, ErrOverflow
	}
	return result, nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
