package systems

import (
	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNameEntry runs the name editor. Clicking the name label or pressing
// the edit key opens it; Enter or a press outside the field saves, Escape
// cancels. The editor widget only sees input while it is open.
func UpdateNameEntry(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if settings.Editor == nil {
		return
	}
	input := getOrCreateInput(e)
	s := GetOrCreateSession(e)

	if !settings.EditingName {
		if Clicked(&input.Pointer, NameLabelRect()) || GetAction(input, cfg.ActionEditName).JustPressed {
			settings.EditingName = true
			settings.Editor.Open(s.Name())
		}
		// The key that opened the editor must not be typed into it.
		return
	}

	settings.Editor.Update()

	p := &input.Pointer
	switch {
	case GetAction(input, cfg.ActionCancel).JustPressed:
		closeNameEditor(settings)
	case p.JustPressed && !NameLabelRect().Contains(p.Position):
		// The press only closes the editor; it must not grab the net.
		p.Claim()
		commitName(e, settings.Editor.Text())
	default:
		if name, ok := settings.Editor.Submitted(); ok {
			commitName(e, name)
		}
	}
}

func commitName(e *ecs.ECS, name string) {
	settings := GetOrCreateSettings(e)
	closeNameEditor(settings)
	GetOrCreateSession(e).SetName(name)
	SaveCurrentSettings(e)
}

func closeNameEditor(settings *components.SettingsData) {
	settings.EditingName = false
	settings.Editor.Close()
}

// DrawNameEditor renders the open name field over the label.
func DrawNameEditor(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.EditingName || settings.Editor == nil {
		return
	}
	settings.Editor.Draw(screen)
}
