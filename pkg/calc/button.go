package calc

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// Button is a single key on the calculator: the whole input surface is a
// stream of these.
type Button int

const (
	Key0 Button = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyDecimal
	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyEquals
	KeyClear
	KeyClearEntry
	KeyBackspace
	KeyPercent
	KeyReciprocal
	KeySquare
	KeySquareRoot
	KeyNegate
	KeyMemoryClear
	KeyMemoryRecall
	KeyMemoryAdd
	KeyMemorySubtract
	KeyMemoryStore
	KeyClearHistory

	numButtons
)

type buttonInfo struct {
	// name is the kebab-case symbolic name.
	name string
	// labels are accepted spellings; the first one is printed on the key.
	labels []string
}

var buttonTable = [numButtons]buttonInfo{
	Key0:              {"0", []string{"0"}},
	Key1:              {"1", []string{"1"}},
	Key2:              {"2", []string{"2"}},
	Key3:              {"3", []string{"3"}},
	Key4:              {"4", []string{"4"}},
	Key5:              {"5", []string{"5"}},
	Key6:              {"6", []string{"6"}},
	Key7:              {"7", []string{"7"}},
	Key8:              {"8", []string{"8"}},
	Key9:              {"9", []string{"9"}},
	KeyDecimal:        {"decimal", []string{"."}},
	KeyAdd:            {"add", []string{"+"}},
	KeySubtract:       {"subtract", []string{"-", "−"}},
	KeyMultiply:       {"multiply", []string{"×", "*"}},
	KeyDivide:         {"divide", []string{"÷", "/"}},
	KeyEquals:         {"equals", []string{"="}},
	KeyClear:          {"clear", []string{"C"}},
	KeyClearEntry:     {"clear-entry", []string{"CE"}},
	KeyBackspace:      {"backspace", []string{"⌫", "BS"}},
	KeyPercent:        {"percent", []string{"%"}},
	KeyReciprocal:     {"reciprocal", []string{"1/x"}},
	KeySquare:         {"square", []string{"x²", "x^2"}},
	KeySquareRoot:     {"square-root", []string{"√x", "√", "sqrt"}},
	KeyNegate:         {"negate", []string{"±", "+/-"}},
	KeyMemoryClear:    {"memory-clear", []string{"MC"}},
	KeyMemoryRecall:   {"memory-recall", []string{"MR"}},
	KeyMemoryAdd:      {"memory-add", []string{"M+"}},
	KeyMemorySubtract: {"memory-subtract", []string{"M-"}},
	KeyMemoryStore:    {"memory-store", []string{"MS"}},
	KeyClearHistory:   {"clear-history", []string{"CH"}},
}

// Buttons returns every button in keypad order.
func Buttons() []Button {
	all := make([]Button, numButtons)
	for i := range all {
		all[i] = Button(i)
	}
	return all
}

func (b Button) valid() bool {
	return b >= 0 && b < numButtons
}

// String returns the symbolic name, e.g. "memory-add".
func (b Button) String() string {
	if !b.valid() {
		return "unknown"
	}
	return buttonTable[b].name
}

// Label returns the text printed on the key, e.g. "M+".
func (b Button) Label() string {
	if !b.valid() {
		return "?"
	}
	return buttonTable[b].labels[0]
}

// Digit reports the digit a number key enters.
func (b Button) Digit() (string, bool) {
	if b < Key0 || b > Key9 {
		return "", false
	}
	return buttonTable[b].name, true
}

// Operator returns the binary operator behind an operator key, or None.
func (b Button) Operator() Operator {
	switch b {
	case KeyAdd:
		return Add
	case KeySubtract:
		return Subtract
	case KeyMultiply:
		return Multiply
	case KeyDivide:
		return Divide
	default:
		return None
	}
}

func (b Button) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Button) UnmarshalText(text []byte) error {
	parsed, err := ParseButton(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseButton resolves a key label ("M+", "÷", "CE") or a symbolic name in
// any case style ("memory-add", "MemoryAdd", "square_root").
func ParseButton(token string) (Button, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty button")
	}
	for i, info := range buttonTable {
		for _, label := range info.labels {
			if strings.EqualFold(label, token) {
				return Button(i), nil
			}
		}
	}
	name := strcase.ToKebab(token)
	for i, info := range buttonTable {
		if info.name == name {
			return Button(i), nil
		}
	}
	return 0, errors.Errorf("unknown button %q", token)
}

// ParseTape splits whitespace-separated tokens into buttons. A run of
// digits and decimal points such as "12.5" expands to one press per
// character.
func ParseTape(tape string) ([]Button, error) {
	var buttons []Button
	for _, token := range strings.Fields(tape) {
		if b, err := ParseButton(token); err == nil {
			buttons = append(buttons, b)
			continue
		}
		if !isNumberRun(token) {
			return nil, errors.Errorf("unknown button %q", token)
		}
		for _, c := range token {
			b, err := ParseButton(string(c))
			if err != nil {
				return nil, err
			}
			buttons = append(buttons, b)
		}
	}
	return buttons, nil
}

func isNumberRun(token string) bool {
	for _, c := range token {
		if (c < '0' || c > '9') && c != '.' {
			return false
		}
	}
	return true
}
