package stats

import (
	"errors"
	"fmt"
)

// ErrInsufficientData signals that an operation needs more matches than the
// snapshot holds. Callers must be able to tell "zero games" apart from a
// computation failure, so this is a sentinel rather than an empty result.
var ErrInsufficientData = errors.New("insufficient data")

func insufficient(op string, need, have int) error {
	return fmt.Errorf("%s: need at least %d matches, have %d: %w", op, need, have, ErrInsufficientData)
}
