package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/playmates/components"
	"github.com/automoto/playmates/shared/session"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the preferences stored on disk
type SavedSettings struct {
	Name  string `json:"name"`
	Muted bool   `json:"muted"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// globalPlayerName seeds new sessions with the saved name
var globalPlayerName string

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "playmates",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	settings.Name = session.NormalizeName(settings.Name)

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the player's name and mute flag
func SaveCurrentSettings(e *ecs.ECS) {
	saved := &SavedSettings{
		Muted: GetOrCreateSettings(e).Muted,
	}
	if entry, ok := components.Session.First(e.World); ok {
		saved.Name = components.Session.Get(entry).Name()
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalMuted = saved.Muted
	globalPlayerName = saved.Name
}
