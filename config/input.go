package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRelease
	ActionMute
	ActionEditName
	ActionConfirm
	ActionCancel
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[string]ActionID{
	"release":   ActionRelease,
	"mute":      ActionMute,
	"edit_name": ActionEditName,
	"confirm":   ActionConfirm,
	"cancel":    ActionCancel,
	"debug":     ActionDebug,
}

// ActionByName resolves the action names used in override files.
func ActionByName(name string) (ActionID, bool) {
	id, ok := actionNames[name]
	return id, ok
}

// InputBinding lists the keys bound to an action by ebiten key name
// (e.g. "R", "Enter", "Escape"). Names are resolved by the input system.
type InputBinding struct {
	Keys []string
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Pixels a press may travel before it stops counting as a click
	ClickSlop float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		ClickSlop: 6,
		Bindings: map[ActionID]InputBinding{
			ActionRelease:  {Keys: []string{"R"}},
			ActionMute:     {Keys: []string{"M"}},
			ActionEditName: {Keys: []string{"N"}},
			ActionConfirm:  {Keys: []string{"Enter", "NumpadEnter"}},
			ActionCancel:   {Keys: []string{"Escape"}},
			ActionDebug:    {Keys: []string{"F3"}},
		},
	}
}
