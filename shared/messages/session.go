package messages

import (
	"encoding/json"
	"fmt"
)

// PlayerEntry is one leaderboard row.
type PlayerEntry struct {
	Username          string `json:"username"`
	CaughtButterflies int    `json:"caught_butterflies"`
}

// SaveSessionRequest is posted when the cage is opened.
type SaveSessionRequest struct {
	Username          string `json:"username"`
	CaughtButterflies int    `json:"caught_butterflies"`
}

// SaveSessionResponse carries the stored session id and the refreshed board.
type SaveSessionResponse struct {
	ID          string        `json:"id,omitempty"`
	Leaderboard []PlayerEntry `json:"leaderboard"`
}

// LeaderboardResponse is the body of GET /.
type LeaderboardResponse struct {
	Message string        `json:"message,omitempty"`
	Data    []PlayerEntry `json:"data"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is returned with every 4xx/5xx from the leaderboard service.
type ErrorResponse struct {
	Message string `json:"message"`
}

// StatusHealthy is the only status value that counts as connected.
const StatusHealthy = "healthy"

// DecodeLeaderboard accepts both the wrapped {"data": [...]} form and a bare
// array of entries.
func DecodeLeaderboard(body []byte) ([]PlayerEntry, error) {
	var wrapped LeaderboardResponse
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Data, nil
	}

	var bare []PlayerEntry
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	return bare, nil
}
