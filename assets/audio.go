package assets

import (
	"fmt"

	"github.com/automoto/playmates/assets/synth"
	"github.com/automoto/playmates/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	def, ok := config.Sound.Defs[id]
	if !ok {
		return fmt.Errorf("no sound definition for id %d", id)
	}

	l.sfxCache[id] = synth.Render(def, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}
