// Package session holds the catch counter, the "gotcha" popup window and the
// player name. It is the debounce layer between the net and the score.
package session

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Defaults used by the game.
const (
	DefaultPopupFrames = 120 // 2 seconds at 60 TPS
	MaxNameLength      = 20
)

// SlotState is the lifecycle of the catchable butterfly slot.
type SlotState int

const (
	SlotIdle SlotState = iota
	SlotSpawned
	SlotCaught
)

func (s SlotState) String() string {
	switch s {
	case SlotSpawned:
		return "spawned"
	case SlotCaught:
		return "caught"
	default:
		return "idle"
	}
}

// Submission is the score sent to the leaderboard when the cage is opened.
type Submission struct {
	Name   string
	Caught int
}

// Session tracks one player's run.
type Session struct {
	Caught      int
	PopupFrames int
	Slot        SlotState
	// Key identifies the current prey butterfly; it changes on every respawn.
	Key uint64

	name       string
	popupTimer int
}

// New returns an idle session.
func New(popupFrames int) *Session {
	if popupFrames <= 0 {
		popupFrames = DefaultPopupFrames
	}
	return &Session{PopupFrames: popupFrames}
}

// Spawned records that a fresh prey butterfly is on screen.
func (s *Session) Spawned() uint64 {
	s.Key++
	s.Slot = SlotSpawned
	return s.Key
}

// PopupVisible reports whether the catch popup is showing.
func (s *Session) PopupVisible() bool {
	return s.popupTimer > 0
}

// PopupProgress returns how far the popup is through its window, 0 when hidden.
func (s *Session) PopupProgress() float64 {
	if s.popupTimer <= 0 {
		return 0
	}
	return 1 - float64(s.popupTimer)/float64(s.PopupFrames)
}

// Catch registers a catch unless the popup from the previous one is still up.
func (s *Session) Catch() bool {
	if s.PopupVisible() {
		return false
	}
	s.Caught++
	s.Slot = SlotCaught
	s.popupTimer = s.PopupFrames
	return true
}

// Tick advances the popup by one frame. It returns true on the frame the popup
// closes, which is when the caught butterfly should be replaced.
func (s *Session) Tick() bool {
	if s.popupTimer <= 0 {
		return false
	}
	s.popupTimer--
	return s.popupTimer == 0
}

// Release empties the cage. ok is false when there is nothing to release.
// The submission is only meaningful when the player has a name.
func (s *Session) Release() (count int, sub Submission, ok bool) {
	if s.Caught == 0 {
		return 0, Submission{}, false
	}
	count = s.Caught
	sub = Submission{Name: s.name, Caught: count}
	s.Caught = 0
	return count, sub, true
}

// Pending returns what Release would submit, without emptying the cage.
func (s *Session) Pending() Submission {
	return Submission{Name: s.name, Caught: s.Caught}
}

// Name returns the player's name.
func (s *Session) Name() string {
	return s.name
}

// SetName stores a trimmed name capped at MaxNameLength runes.
func (s *Session) SetName(name string) {
	s.name = NormalizeName(name)
}

// NormalizeName trims whitespace and caps the name length.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	return strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
}

// ClampName drops control characters and cuts a draft to MaxNameLength
// runes. Unlike NormalizeName it keeps surrounding spaces so typing a space
// between words works.
func ClampName(draft string) string {
	out := make([]rune, 0, MaxNameLength)
	for _, r := range draft {
		if len(out) == MaxNameLength {
			break
		}
		if unicode.IsControl(r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Submittable reports whether a release should be sent to the leaderboard.
func (sub Submission) Submittable() bool {
	return sub.Name != "" && sub.Caught > 0
}
