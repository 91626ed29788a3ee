package seedmatches

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/halvard/smashlog/internal/domain/roster"
	"github.com/halvard/smashlog/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Stock outcome distribution cases.
const (
	caseOneStock     = 0
	caseTwoStock     = 1
	caseThreeStock   = 2
	caseUnknownStock = 3
	stockCaseCount   = 4
)

// stages is the pool of legal venues for generated matches.
var stages = []string{
	"Battlefield",
	"Final Destination",
	"Small Battlefield",
	"Pokemon Stadium 2",
	"Smashville",
	"Town and City",
	"Kalos Pokemon League",
	"Hollow Bastion",
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// pick returns a random element of pool.
func pick(pool []string) string {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	return pool[n.Int64()]
}

// generateMatches creates the requested number of random match submissions.
// Character picks come from the stock roster so the seeded data looks like
// real play rather than placeholder strings.
func generateMatches(ctx context.Context, config *Config, playerA, playerB string, stats *Stats) ([]Match, error) {
	logger.Get().Info(ctx, "generating matches",
		logger.Int("numMatches", config.NumMatches),
		logger.Float64("winBiasA", config.WinBiasA),
	)

	characters := roster.Default().Names()
	matches := make([]Match, config.NumMatches)
	for i := range matches {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		matches[i] = generateSingleMatch(characters, playerA, playerB, config.WinBiasA)
	}

	stats.MatchesGenerated = len(matches)
	logger.Get().Info(ctx, "generated matches successfully", logger.Int("count", len(matches)))
	return matches, nil
}

// generateSingleMatch creates one random match submission.
func generateSingleMatch(characters []string, playerA, playerB string, winBiasA float64) Match {
	winner := playerB
	if getRandomFloat() < winBiasA {
		winner = playerA
	}
	m := Match{
		PlayerACharacter: pick(characters),
		PlayerBCharacter: pick(characters),
		Winner:           winner,
		Stage:            pick(stages),
	}

	stockCase, _ := rand.Int(rand.Reader, big.NewInt(stockCaseCount))
	switch stockCase.Int64() {
	case caseOneStock:
		one := 1
		m.StocksRemaining = &one
	case caseTwoStock:
		two := 2
		m.StocksRemaining = &two
	case caseThreeStock:
		three := 3
		m.StocksRemaining = &three
	case caseUnknownStock:
		// Stocks left unreported, as happens with hand-logged games.
	}
	return m
}
