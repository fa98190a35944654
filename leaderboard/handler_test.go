package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/automoto/playmates/shared/messages"
)

func newTestServer(t *testing.T) (*httptest.Server, *Board) {
	t.Helper()
	board := NewBoard(0)
	ts := httptest.NewServer(NewServer(board, "http://localhost:3000", 10).Routes())
	t.Cleanup(ts.Close)
	return ts, board
}

func TestSaveSessionThenList(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/save-session", "application/json",
		strings.NewReader(`{"username":"ana","caught_butterflies":4}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("CORS origin = %q", got)
	}

	var saved messages.SaveSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if saved.ID == "" {
		t.Error("missing session id")
	}
	if len(saved.Leaderboard) != 1 || saved.Leaderboard[0].CaughtButterflies != 4 {
		t.Errorf("leaderboard = %+v", saved.Leaderboard)
	}

	list, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer list.Body.Close()

	var body messages.LeaderboardResponse
	if err := json.NewDecoder(list.Body).Decode(&body); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Username != "ana" {
		t.Errorf("data = %+v", body.Data)
	}
}

func TestSaveSessionRejects(t *testing.T) {
	ts, board := newTestServer(t)

	cases := map[string]string{
		"bad json":  `{"username":`,
		"no name":   `{"username":"","caught_butterflies":3}`,
		"zero":      `{"username":"ana","caught_butterflies":0}`,
		"long name": `{"username":"abcdefghijklmnopqrstu","caught_butterflies":1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/save-session", "application/json", strings.NewReader(body))
			if err != nil {
				t.Fatalf("post: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			var e messages.ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Message == "" {
				t.Errorf("expected error message, got %+v (%v)", e, err)
			}
		})
	}
	if board.Sessions() != 0 {
		t.Errorf("Sessions = %d, want 0", board.Sessions())
	}
}

func TestHealthAndPreflight(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var h messages.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil || h.Status != messages.StatusHealthy {
		t.Fatalf("health = %+v (%v)", h, err)
	}

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/save-session", nil)
	pre, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	defer pre.Body.Close()
	if pre.StatusCode != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", pre.StatusCode)
	}
	if pre.Header.Get("Access-Control-Allow-Methods") == "" {
		t.Error("preflight missing allow-methods")
	}
}
