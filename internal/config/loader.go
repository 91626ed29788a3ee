package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SMASHLOG_CONFIG is set
//  3. env (prefix SMASHLOG_)
func Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SMASHLOG_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SMASHLOG_ADDR, SMASHLOG_SESSION_GAP_HOURS, ...
	// Keys map onto the koanf struct tags with underscores preserved.
	envProvider := env.Provider("SMASHLOG_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "smashlog_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.PlayerA) == "" || strings.TrimSpace(c.PlayerB) == "":
		return fmt.Errorf("%w: both player identities must be set", ErrInvalidConfig)
	case c.PlayerA == c.PlayerB:
		return fmt.Errorf("%w: player identities must differ", ErrInvalidConfig)
	case c.SessionGapHours <= 0:
		return fmt.Errorf("%w: session_gap_hours must be positive", ErrInvalidConfig)
	case c.WindowSize <= 0:
		return fmt.Errorf("%w: window_size must be positive", ErrInvalidConfig)
	case c.MaxTimelineMatches < c.WindowSize:
		return fmt.Errorf("%w: max_timeline_matches must be at least window_size", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q: %w", ErrInvalidConfig, c.Timezone, err)
	}
	return nil
}

// Location resolves the configured reference timezone. Validation at load
// time guarantees this cannot fail for a Config produced by Load.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
