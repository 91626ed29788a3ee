package seedmatches

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/halvard/smashlog/pkg/logger"
)

// HTTP status code constants.
const (
	statusOK      = 200
	statusCreated = 201
)

// Worker configuration constants.
const (
	workerChannelMultiplier = 2
)

// HTTPClient wraps http.Client with a timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// getJSON performs a GET and decodes the JSON response into v.
func (c *HTTPClient) getJSON(ctx context.Context, url string, v any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != statusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	return json.Unmarshal(body, v)
}

// submitMatches posts the generated matches concurrently.
func submitMatches(ctx context.Context, config *Config, matches []Match, stats *Stats) error {
	logger.Get().Info(ctx, "submitting matches",
		logger.Int("count", len(matches)),
		logger.Int("workers", config.Workers),
	)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/api/matches"

	var (
		logged    int64
		rejected  int64
		failed    int64
		submitted int64
	)

	matchChan := make(chan Match, config.Workers*workerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range matchChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				atomic.AddInt64(&submitted, 1)
				switch submitSingleMatch(ctx, client, url, m) {
				case "logged":
					atomic.AddInt64(&logged, 1)
				case "rejected":
					atomic.AddInt64(&rejected, 1)
				default:
					atomic.AddInt64(&failed, 1)
				}
			}
		}()
	}

	go func() {
		defer close(matchChan)
		for _, m := range matches {
			select {
			case <-ctx.Done():
				return
			case matchChan <- m:
			}
		}
	}()

	wg.Wait()

	stats.MatchesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.MatchesLogged = int(atomic.LoadInt64(&logged))
	stats.MatchesRejected = int(atomic.LoadInt64(&rejected))
	stats.MatchesFailed = int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "match submission completed",
		logger.Int("logged", stats.MatchesLogged),
		logger.Int("rejected", stats.MatchesRejected),
		logger.Int("failed", stats.MatchesFailed),
	)
	return nil
}

// submitSingleMatch submits one match and classifies the outcome.
func submitSingleMatch(ctx context.Context, client *HTTPClient, url string, m Match) string {
	resp, err := client.Post(ctx, url, m)
	if err != nil {
		return "failed"
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == statusCreated:
		return "logged"
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return "rejected"
	default:
		return "failed"
	}
}
