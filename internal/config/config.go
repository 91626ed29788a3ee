// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer file and env overrides in Load.
// - External errors must be wrapped via this package's sentinel errors.
package config

// Default aggregation thresholds. These mirror the minimum-sample policy of
// the aggregation engine: groups below the minimum are excluded from
// best/worst rankings to avoid small-sample noise.
const (
	defaultWindowSize         = 20
	defaultMaxTimelineMatches = 2000
	defaultSessionGapHours    = 4.0
	defaultMinMatchupGames    = 3
	defaultMinStageGames      = 2
	defaultMinIdentityGames   = 5
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the SQLite database file. Empty selects the in-memory store.
	DBPath string `koanf:"db_path"`

	// PlayerA and PlayerB name the two fixed identities.
	PlayerA string `koanf:"player_a"`
	PlayerB string `koanf:"player_b"`

	// SessionGapHours is the inactivity gap that closes a play session.
	SessionGapHours float64 `koanf:"session_gap_hours"`

	// Timezone is the single reference timezone for display timestamps,
	// heatmap bucketing and month grouping.
	Timezone string `koanf:"timezone"`

	// WindowSize is the number of matches per trailing win-rate window.
	WindowSize int `koanf:"window_size"`

	// MaxTimelineMatches bounds the history consumed by the timeline.
	MaxTimelineMatches int `koanf:"max_timeline_matches"`

	// Minimum sample sizes for ranked breakdowns.
	MinMatchupGames  int `koanf:"min_matchup_games"`
	MinStageGames    int `koanf:"min_stage_games"`
	MinIdentityGames int `koanf:"min_identity_games"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		DBPath:             "smashlog.db",
		PlayerA:            "Shayne",
		PlayerB:            "Matt",
		SessionGapHours:    defaultSessionGapHours,
		Timezone:           "America/New_York",
		WindowSize:         defaultWindowSize,
		MaxTimelineMatches: defaultMaxTimelineMatches,
		MinMatchupGames:    defaultMinMatchupGames,
		MinStageGames:      defaultMinStageGames,
		MinIdentityGames:   defaultMinIdentityGames,
	}
}
