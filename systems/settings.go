package systems

import (
	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the current config and saved preferences if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
			Muted: globalMuted,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the global hotkeys. They are ignored while the name
// editor owns the keyboard.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if settings.EditingName {
		return
	}
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}

	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(ecs)
	}
}

// ToggleMute flips the mute flag and persists it.
func ToggleMute(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	settings.Muted = !settings.Muted
	SetMuted(ecs, settings.Muted)
	if !settings.Muted {
		PlaySFX(ecs, cfg.SoundToggle)
	}
	SaveCurrentSettings(ecs)
}
