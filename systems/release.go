package systems

import (
	"log"

	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/automoto/playmates/shared/messages"
	"github.com/automoto/playmates/systems/factory"
	"github.com/automoto/playmates/tags"
	"github.com/yohamta/donburi/ecs"
)

// CageRect returns the cage's on-screen rectangle.
func CageRect(e *ecs.ECS) (gamemath.Rect, bool) {
	entry, ok := tags.Cage.First(e.World)
	if !ok {
		return gamemath.Rect{}, false
	}
	obj := components.Object.Get(entry)
	return gamemath.RectAt(gamemath.Point{X: obj.X, Y: obj.Y}, gamemath.Size{W: obj.W, H: obj.H}), true
}

// UpdateRelease opens the cage on a click or the release key. Named players
// have their score saved first and the celebration waits for the result,
// so a failed save keeps the butterflies caged.
func UpdateRelease(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	if s.Saving {
		return
	}
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	requested := !settings.EditingName && GetAction(input, cfg.ActionRelease).JustPressed
	if rect, ok := CageRect(e); ok && Clicked(&input.Pointer, rect) {
		requested = true
	}
	if !requested || s.Caught == 0 {
		return
	}

	sub := s.Pending()
	client := leaderboardClient(e)
	if !sub.Submittable() || client == nil {
		releaseCage(e)
		return
	}
	s.Saving = true
	client.SaveSession(messages.SaveSessionRequest{Username: sub.Name, CaughtButterflies: sub.Caught})
}

// finishSave is called by the leaderboard system when a save result arrives.
func finishSave(e *ecs.ECS, err error) {
	s := GetOrCreateSession(e)
	s.Saving = false
	if err != nil {
		log.Printf("Warning: Could not save session, cage stays closed: %v", err)
		return
	}
	releaseCage(e)
}

// releaseCage empties the cage into a burst of free butterflies with confetti.
func releaseCage(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	count, _, ok := s.Release()
	if !ok {
		return
	}

	rect, found := CageRect(e)
	if !found {
		return
	}

	if cfg.Release.ReplacePrevious {
		ClearReleased(e)
	}
	factory.ClearConfetti(e)
	factory.SpawnConfetti(e, Viewport(), rng)
	PlaySFX(e, cfg.SoundCelebrate)
	factory.CreateReleaseBurst(e, Viewport(), rect.Center(), count, rng)
}
