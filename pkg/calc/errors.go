package calc

import "github.com/pkg/errors"

// Domain errors. A press that hits one of these is rejected: the state is
// left as it was and a notice is shown instead.
var (
	ErrDivideByZero = errors.New("cannot divide by zero")
	ErrInvalidInput = errors.New("invalid input for square root")
	ErrOverflow     = errors.New("result out of range")
)

// Notice returns the user-facing text for a rejected press.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDivideByZero):
		return "Cannot divide by zero"
	case errors.Is(err, ErrInvalidInput):
		return "Invalid input for square root"
	case errors.Is(err, ErrOverflow):
		return "Overflow"
	default:
		return err.Error()
	}
}
