package dateranger

import (
	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/dateranger/dates"
)

// ErrDeltaNotHonored is returned by the Try setters when the bounds are too narrow for the
// configured minimum gap. It is advisory: the range has already been updated.
var ErrDeltaNotHonored = errors.New("min delta not honored")

// ErrBoundsTooNarrow marks a delta error caused by MaxDate - MinDate being shorter than
// MinDelta. It always comes together with ErrDeltaNotHonored.
var ErrBoundsTooNarrow = errors.New("bounds narrower than min delta")

func newDeltaError(span dates.Interval, delta int) error {
	return errors.Wrapf(ErrDeltaNotHonored, "range %s spans %d days, want at least %d", span, span.Days(), delta)
}
