// Package seedmatches seeds a running service with generated match data and
// verifies the resulting statistics reconcile.
package seedmatches

import (
	"context"
	"fmt"
	"time"

	"github.com/halvard/smashlog/pkg/logger"
)

// identityResponse mirrors the players field of GET /api/head-to-head.
type identityResponse struct {
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
}

// Run executes the complete seeding flow: health check, identity discovery,
// generation, concurrent submission, and verification against /api/stats.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting match seeding run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("matches", config.NumMatches),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
	)

	client := newHTTPClient(config.Timeout)

	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// The service decides who the two identities are; ask rather than guess.
	var ids identityResponse
	if err := client.getJSON(ctx, config.BaseURL+"/api/head-to-head", &ids); err != nil {
		return fmt.Errorf("identity discovery failed: %w", err)
	}

	var before OverallStats
	if err := client.getJSON(ctx, config.BaseURL+"/api/stats", &before); err != nil {
		return fmt.Errorf("baseline stats fetch failed: %w", err)
	}

	matches, err := generateMatches(ctx, config, ids.PlayerA, ids.PlayerB, stats)
	if err != nil {
		return fmt.Errorf("match generation failed: %w", err)
	}

	if err := submitMatches(ctx, config, matches, stats); err != nil {
		return fmt.Errorf("match submission failed: %w", err)
	}

	if err := verifyResults(ctx, client, config, before, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "seeding run completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != statusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// verifyResults checks that the service's totals grew by exactly the number
// of logged matches and that the win split still reconciles.
func verifyResults(ctx context.Context, client *HTTPClient, config *Config, before OverallStats, stats *Stats) error {
	logger.Get().Info(ctx, "verifying results")

	var after OverallStats
	if err := client.getJSON(ctx, config.BaseURL+"/api/stats", &after); err != nil {
		return fmt.Errorf("stats fetch failed: %w", err)
	}

	gained := after.TotalGames - before.TotalGames
	if gained != stats.MatchesLogged {
		return fmt.Errorf("total games grew by %d but %d matches were logged", gained, stats.MatchesLogged)
	}
	if after.WinsA+after.WinsB != after.TotalGames {
		return fmt.Errorf("win split does not reconcile: %d + %d != %d", after.WinsA, after.WinsB, after.TotalGames)
	}

	logger.Get().Info(ctx, "verification passed",
		logger.Int("totalGames", after.TotalGames),
		logger.Int("winsA", after.WinsA),
		logger.Int("winsB", after.WinsB),
	)
	return nil
}

// displayFinalStats prints the final seeding statistics.
func displayFinalStats(stats *Stats) {
	var successRate, matchesPerSecond float64
	if stats.MatchesSubmitted > 0 {
		successRate = float64(stats.MatchesLogged) / float64(stats.MatchesSubmitted) * 100
	}
	if stats.Duration > 0 {
		matchesPerSecond = float64(stats.MatchesSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("matchesGenerated", stats.MatchesGenerated),
		logger.Int("matchesSubmitted", stats.MatchesSubmitted),
		logger.Int("matchesLogged", stats.MatchesLogged),
		logger.Int("matchesRejected", stats.MatchesRejected),
		logger.Int("matchesFailed", stats.MatchesFailed),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("matchesPerSecond", matchesPerSecond),
	)
}
