package seedmatches

import "time"

// Config holds configuration for the match seeding run.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumMatches int           // Number of matches to generate
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	WinBiasA   float64       // Probability that player A wins a generated match
	LogFile    string        // Log file for run output
	Verbose    bool          // Enable verbose logging
}

// Match mirrors the submission shape accepted by POST /api/matches.
type Match struct {
	PlayerACharacter string `json:"player_a_character"`
	PlayerBCharacter string `json:"player_b_character"`
	Winner           string `json:"winner"`
	StocksRemaining  *int   `json:"stocks_remaining,omitempty"`
	Stage            string `json:"stage"`
}

// LoggedResponse represents the response from match submission.
type LoggedResponse struct {
	Status string `json:"status"`
}

// OverallStats mirrors the fields of GET /api/stats the verifier needs.
type OverallStats struct {
	TotalGames int `json:"total_games"`
	WinsA      int `json:"wins_a"`
	WinsB      int `json:"wins_b"`
}

// Stats holds seeding run statistics.
type Stats struct {
	MatchesGenerated int
	MatchesSubmitted int
	MatchesLogged    int
	MatchesRejected  int
	MatchesFailed    int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
