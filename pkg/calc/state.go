package calc

// HistoryLimit caps the number of completed calculations kept.
const HistoryLimit = 5

// State is the complete calculator state. It is a plain value: Machine.Next
// never modifies the State it is given, so states can be kept and compared
// freely.
type State struct {
	// Display is the number being entered or just computed.
	Display string `json:"display"`
	// Expression is the secondary line above the display, e.g. "7 +".
	Expression string `json:"expression,omitempty"`

	// Previous is the left operand of the pending operation.
	Previous *float64 `json:"previous,omitempty"`
	// Operator is the pending operation.
	Operator Operator `json:"operator,omitempty"`
	// ResetPending means the next digit starts a new number.
	ResetPending bool `json:"resetPending,omitempty"`
	// Entered means the display holds an operand supplied since the last
	// operator or equals press.
	Entered bool `json:"entered,omitempty"`

	// LastOperand and LastOperator drive repeated "=".
	LastOperand  float64  `json:"lastOperand,omitempty"`
	LastOperator Operator `json:"lastOperator,omitempty"`

	Memory float64 `json:"memory"`

	// Notice is set when the last press was rejected.
	Notice string `json:"notice,omitempty"`

	// History holds completed calculations, newest first.
	History []HistoryEntry `json:"history,omitempty"`
}

// HistoryEntry is one completed calculation.
type HistoryEntry struct {
	ID          string `json:"id"`
	Calculation string `json:"calculation"`
	Result      string `json:"result"`
}

// NewState returns a cleared calculator.
func NewState() State {
	return State{Display: "0"}
}

// Value is the display parsed as a number.
func (s State) Value() float64 {
	v, _ := ParseDisplay(s.Display)
	return v
}

// Pending reports whether a binary operation awaits its right operand.
func (s State) Pending() bool {
	return s.Previous != nil && s.Operator != None
}

// Repeating reports whether "=" will re-apply the last operation.
func (s State) Repeating() bool {
	return s.LastOperator != None
}

func float(v float64) *float64 {
	return &v
}
