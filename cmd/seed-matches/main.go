package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/halvard/smashlog/internal/seedmatches"
)

// Default configuration constants.
const (
	defaultNumMatches = 500
	defaultWorkers    = 4
	defaultWinBiasA   = 0.5
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numMatches = flag.Int("matches", defaultNumMatches, "Number of matches to generate and submit")
		workers    = flag.Int("workers", defaultWorkers, "Number of concurrent workers")
		winBias    = flag.Float64("bias", defaultWinBiasA, "Probability that the first player wins a generated match")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile    = flag.String("log", "", "Log file for run output (default: seed_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seedmatches.ShowHelp()
		return
	}

	if err := seedmatches.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seedmatches.Config{
		BaseURL:    *baseURL,
		NumMatches: *numMatches,
		Workers:    *workers,
		Timeout:    *timeout,
		WinBiasA:   *winBias,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	if err := seedmatches.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seeding failed: " + err.Error() + "\n")
		return
	}
}
