package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FormatNumber renders a computed value for the display: the shortest
// digits that round-trip, switching to exponent form below 1e-6 and at or
// above 1e21. Negative zero renders as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseDisplay reads a display string back into a number. Values that do
// not fit in a finite float64 report ErrOverflow.
func ParseDisplay(display string) (float64, error) {
	v, err := strconv.ParseFloat(display, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, ErrOverflow
		}
		return 0, errors.Wrapf(err, "display %q", display)
	}
	if !finite(v) {
		return v, ErrOverflow
	}
	return v, nil
}
