package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// NameEditor is the text field shown over the name label while the player
// edits their name.
type NameEditor interface {
	Open(name string)
	Close()
	Text() string
	// Submitted returns the text committed with Enter since the last call.
	Submitted() (string, bool)
	Update()
	Draw(screen *ebiten.Image)
}

// SettingsData stores player preferences and the name editor state
type SettingsData struct {
	Debug bool
	Muted bool

	EditingName bool
	Editor      NameEditor
}

// Settings is the component type for player settings
var Settings = donburi.NewComponentType[SettingsData]()
