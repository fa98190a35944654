package main

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeClock advances one second per call so submission order is explicit.
func fakeClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestBoardOrdering(t *testing.T) {
	b := NewBoard(0)
	b.now = fakeClock()

	mustSave(t, b, "ana", 3)
	mustSave(t, b, "bo", 7)
	mustSave(t, b, "cy", 3)

	top := b.Top(10)
	want := []string{"bo", "ana", "cy"}
	if len(top) != len(want) {
		t.Fatalf("got %d rows, want %d", len(top), len(want))
	}
	for i, name := range want {
		if top[i].Username != name {
			t.Errorf("row %d = %q, want %q", i, top[i].Username, name)
		}
	}
}

func TestBoardKeepsBestPerPlayer(t *testing.T) {
	b := NewBoard(0)
	b.now = fakeClock()

	mustSave(t, b, "ana", 5)
	mustSave(t, b, "ana", 2)
	mustSave(t, b, "ana", 9)

	top := b.Top(10)
	if len(top) != 1 || top[0].CaughtButterflies != 9 {
		t.Fatalf("top = %+v, want single row with 9", top)
	}
	if b.Sessions() != 3 {
		t.Errorf("Sessions = %d, want 3", b.Sessions())
	}
}

func TestBoardTopLimit(t *testing.T) {
	b := NewBoard(0)
	b.now = fakeClock()
	for i := 1; i <= 15; i++ {
		mustSave(t, b, strings.Repeat("p", i), i)
	}
	top := b.Top(10)
	if len(top) != 10 {
		t.Fatalf("got %d rows, want 10", len(top))
	}
	if top[0].CaughtButterflies != 15 || top[9].CaughtButterflies != 6 {
		t.Errorf("unexpected range %d..%d", top[0].CaughtButterflies, top[9].CaughtButterflies)
	}
}

func TestBoardValidation(t *testing.T) {
	b := NewBoard(0)
	cases := []struct {
		name   string
		user   string
		caught int
		want   error
	}{
		{"empty", "", 1, ErrInvalidName},
		{"blank", "   ", 1, ErrInvalidName},
		{"too long", strings.Repeat("x", 21), 1, ErrInvalidName},
		{"zero", "ana", 0, ErrInvalidScore},
		{"negative", "ana", -2, ErrInvalidScore},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := b.Save(tc.user, tc.caught); !errors.Is(err, tc.want) {
				t.Fatalf("Save(%q, %d) err = %v, want %v", tc.user, tc.caught, err, tc.want)
			}
		})
	}
	if len(b.Top(10)) != 0 {
		t.Error("invalid submissions must not be stored")
	}
}

func TestBoardTrimsAndCountsRunes(t *testing.T) {
	b := NewBoard(0)
	mustSave(t, b, "  ana  ", 1)
	// 20 multi-byte runes fit
	mustSave(t, b, strings.Repeat("é", 20), 1)

	for _, row := range b.Top(10) {
		if row.Username == "  ana  " {
			t.Errorf("username was not trimmed: %q", row.Username)
		}
	}
}

func mustSave(t *testing.T, b *Board, name string, caught int) {
	t.Helper()
	if _, err := b.Save(name, caught); err != nil {
		t.Fatalf("Save(%q, %d): %v", name, caught, err)
	}
}
