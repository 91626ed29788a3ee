package session

// Option applies a configuration option to the Segmenter.
type Option func(*Segmenter)

// WithGapHours sets the inactivity gap that closes a session.
func WithGapHours(hours float64) Option {
	return func(s *Segmenter) {
		if hours > 0 {
			s.gapHours = hours
		}
	}
}
