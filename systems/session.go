package systems

import (
	"log"

	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/session"
	"github.com/automoto/playmates/systems/factory"
	"github.com/automoto/playmates/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton session, seeded with the saved name.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
		s := session.New(cfg.Session.PopupFrames)
		s.SetName(globalPlayerName)
		components.Session.SetValue(entry, components.SessionData{Session: s})
	}
	return components.Session.Get(entry)
}

// OnCatch is the net's catch callback. Catches while the popup is up are
// dropped; the prey keeps flying until the popup closes.
func OnCatch(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	if !s.Catch() {
		return
	}
	PlaySFX(e, cfg.SoundCoin)
	factory.SpawnPopup(e)
}

// SpawnPrey fills the prey slot with a fresh butterfly under a new key.
func SpawnPrey(e *ecs.ECS) *donburi.Entry {
	s := GetOrCreateSession(e)
	key := s.Spawned()
	return factory.CreatePrey(e, Viewport(), key, rng)
}

// UpdateSession runs the popup countdown. When it closes the caught prey is
// torn down and replaced.
func UpdateSession(e *ecs.ECS) {
	s := GetOrCreateSession(e)
	if !s.Tick() {
		return
	}

	var toDestroy []*donburi.Entry
	tags.Prey.Each(e.World, func(entry *donburi.Entry) {
		components.Butterfly.Get(entry).Body.Kill()
		toDestroy = append(toDestroy, entry)
	})
	tags.Popup.Each(e.World, func(entry *donburi.Entry) {
		toDestroy = append(toDestroy, entry)
	})
	for _, entry := range toDestroy {
		factory.Destroy(e, entry)
	}

	if cfg.Debug.Overlay {
		log.Printf("[session] respawning prey (caught=%d)", s.Caught)
	}
	SpawnPrey(e)
}
