package normalize

import "time"

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithClock overrides the wall clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

// WithSessionGapHours sets the inactivity gap used when continuing the most
// recent session at write time.
func WithSessionGapHours(hours float64) Option {
	return func(n *Normalizer) {
		if hours > 0 {
			n.gapHours = hours
		}
	}
}
