package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/automoto/playmates/shared/messages"
)

// ErrNoAPIBase is returned when the client has no leaderboard URL configured.
var ErrNoAPIBase = errors.New("leaderboard api base not configured")

const maxResponseBody = 1 << 20

type ConnState int

const (
	StateUnknown ConnState = iota
	StateHealthy
	StateUnhealthy
)

func (s ConnState) String() string {
	switch s {
	case StateHealthy:
		return "healthy"
	case StateUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// SaveResult is delivered once per SaveSession call.
type SaveResult struct {
	Submission  messages.SaveSessionRequest
	Leaderboard []messages.PlayerEntry
	Err         error
}

// Client talks to the leaderboard service. Requests run on goroutines and
// results are handed to the frame loop over channels; shared fields are
// protected by mu.
type Client struct {
	mu sync.RWMutex

	base       string
	http       *http.Client
	timeout    time.Duration
	retryDelay time.Duration

	state     ConnState
	lastError error
	fetching  bool

	ctx    context.Context
	cancel context.CancelFunc

	boardCh chan []messages.PlayerEntry // size-1 buffered; latest wins
	saveCh  chan SaveResult
}

func NewClient(base string, timeout, retryDelay time.Duration) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		base:       strings.TrimRight(base, "/"),
		http:       &http.Client{},
		timeout:    timeout,
		retryDelay: retryDelay,
		ctx:        ctx,
		cancel:     cancel,
		boardCh:    make(chan []messages.PlayerEntry, 1),
		saveCh:     make(chan SaveResult, 4),
	}
}

// Close cancels in-flight requests and pending retries.
func (c *Client) Close() {
	c.cancel()
}

func (c *Client) State() ConnState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Leaderboard fetches the current top players.
func (c *Client) Leaderboard(ctx context.Context) ([]messages.PlayerEntry, error) {
	body, err := c.do(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return nil, err
	}
	return messages.DecodeLeaderboard(body)
}

// Save posts a finished session and returns the refreshed leaderboard.
func (c *Client) Save(ctx context.Context, req messages.SaveSessionRequest) ([]messages.PlayerEntry, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, "/save-session", payload)
	if err != nil {
		return nil, err
	}
	var resp messages.SaveSessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode save response: %w", err)
	}
	return resp.Leaderboard, nil
}

// Health reports whether the service answers with a healthy status.
func (c *Client) Health(ctx context.Context) (bool, error) {
	body, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return false, err
	}
	var resp messages.HealthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("decode health: %w", err)
	}
	return resp.Status == messages.StatusHealthy, nil
}

// FetchLeaderboard loads the board in the background. Failures are retried
// after the retry delay until one succeeds or the client is closed.
func (c *Client) FetchLeaderboard() {
	c.mu.Lock()
	if c.fetching {
		c.mu.Unlock()
		return
	}
	c.fetching = true
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			c.fetching = false
			c.mu.Unlock()
		}()

		for {
			ctx, cancel := context.WithTimeout(c.ctx, c.timeout)
			entries, err := c.Leaderboard(ctx)
			cancel()

			if err == nil {
				c.setState(StateHealthy, nil)
				select { // drain stale, push latest
				case <-c.boardCh:
				default:
				}
				c.boardCh <- entries
				return
			}

			if errors.Is(err, ErrNoAPIBase) {
				c.setState(StateUnhealthy, err)
				return
			}

			log.Printf("[leaderboard] fetch failed, retrying in %s: %v", c.retryDelay, err)
			c.setState(StateUnhealthy, err)

			select {
			case <-c.ctx.Done():
				return
			case <-time.After(c.retryDelay):
			}
		}
	}()
}

// CheckHealth probes /health in the background and updates State.
func (c *Client) CheckHealth() {
	go func() {
		ctx, cancel := context.WithTimeout(c.ctx, c.timeout)
		defer cancel()

		ok, err := c.Health(ctx)
		switch {
		case err != nil:
			c.setState(StateUnhealthy, err)
		case !ok:
			c.setState(StateUnhealthy, fmt.Errorf("service reported unhealthy"))
		default:
			c.setState(StateHealthy, nil)
		}
	}()
}

// SaveSession posts a session in the background; the outcome is delivered
// through DrainSaveResults.
func (c *Client) SaveSession(req messages.SaveSessionRequest) {
	go func() {
		ctx, cancel := context.WithTimeout(c.ctx, c.timeout)
		defer cancel()

		board, err := c.Save(ctx, req)
		if err != nil {
			log.Printf("[leaderboard] save failed: %v", err)
			c.setState(StateUnhealthy, err)
		} else {
			c.setState(StateHealthy, nil)
		}

		select {
		case c.saveCh <- SaveResult{Submission: req, Leaderboard: board, Err: err}:
		case <-c.ctx.Done():
		}
	}()
}

// LatestLeaderboard returns the most recent fetched board. Non-blocking.
func (c *Client) LatestLeaderboard() ([]messages.PlayerEntry, bool) {
	select {
	case entries := <-c.boardCh:
		return entries, true
	default:
		return nil, false
	}
}

// DrainSaveResults returns all pending save results, non-blocking.
func (c *Client) DrainSaveResults() []SaveResult {
	return drainChan(c.saveCh)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	if c.base == "" {
		return nil, ErrNoAPIBase
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e messages.ErrorResponse
		if json.Unmarshal(data, &e) == nil && e.Message != "" {
			return nil, fmt.Errorf("%s %s: %s (status %d)", method, path, e.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	return data, nil
}

func (c *Client) setState(s ConnState, err error) {
	c.mu.Lock()
	c.state = s
	c.lastError = err
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
