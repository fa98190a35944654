package main

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/automoto/playmates/shared/messages"
	"github.com/google/uuid"
)

// MaxNameLength is the longest accepted username, in runes.
const MaxNameLength = 20

var (
	ErrInvalidName  = errors.New("username must be 1-20 characters")
	ErrInvalidScore = errors.New("caught_butterflies must be greater than 0")
)

// sessionRecord is a stored save-session submission.
type sessionRecord struct {
	ID        string
	Username  string
	Caught    int
	CreatedAt time.Time
}

// Board is an in-memory leaderboard keeping each player's best session.
type Board struct {
	mu      sync.RWMutex
	best    map[string]*sessionRecord // keyed by username
	total   int
	maxName int
	now     func() time.Time
}

func NewBoard(maxName int) *Board {
	if maxName <= 0 {
		maxName = MaxNameLength
	}
	return &Board{
		best:    make(map[string]*sessionRecord),
		maxName: maxName,
		now:     time.Now,
	}
}

// Validate trims the username and checks both fields.
func (b *Board) Validate(username string, caught int) (string, error) {
	name := strings.TrimSpace(username)
	if n := utf8.RuneCountInString(name); n == 0 || n > b.maxName {
		return "", ErrInvalidName
	}
	if caught <= 0 {
		return "", ErrInvalidScore
	}
	return name, nil
}

// Save stores a session and returns its id. Only a strictly better score
// replaces a player's existing row, so ties keep the earlier submission.
func (b *Board) Save(username string, caught int) (string, error) {
	name, err := b.Validate(username, caught)
	if err != nil {
		return "", err
	}

	rec := &sessionRecord{
		ID:        uuid.NewString(),
		Username:  name,
		Caught:    caught,
		CreatedAt: b.now(),
	}

	b.mu.Lock()
	b.total++
	if cur, ok := b.best[name]; !ok || caught > cur.Caught {
		b.best[name] = rec
	}
	b.mu.Unlock()

	return rec.ID, nil
}

// Top returns up to n rows ordered by caught count, then by earliest submission.
func (b *Board) Top(n int) []messages.PlayerEntry {
	b.mu.RLock()
	recs := make([]*sessionRecord, 0, len(b.best))
	for _, rec := range b.best {
		recs = append(recs, rec)
	}
	b.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Caught != recs[j].Caught {
			return recs[i].Caught > recs[j].Caught
		}
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.Before(recs[j].CreatedAt)
		}
		return recs[i].Username < recs[j].Username
	})

	if n > 0 && len(recs) > n {
		recs = recs[:n]
	}

	result := make([]messages.PlayerEntry, len(recs))
	for i, rec := range recs {
		result[i] = messages.PlayerEntry{Username: rec.Username, CaughtButterflies: rec.Caught}
	}
	return result
}

// Sessions returns the number of accepted submissions.
func (b *Board) Sessions() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.total
}
