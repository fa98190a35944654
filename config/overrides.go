package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Overrides is the shape of the optional playmates.yaml file. Every field is
// optional; absent fields keep the built-in defaults.
type Overrides struct {
	Window *struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`

	Leaderboard *struct {
		APIBase        string        `yaml:"api_base"`
		RetryDelay     time.Duration `yaml:"retry_delay"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
		Rows           int           `yaml:"rows"`
	} `yaml:"leaderboard"`

	Butterfly *struct {
		JitterChance     *float64 `yaml:"jitter_chance"`
		FlutterDecay     *float64 `yaml:"flutter_decay"`
		FlutterAmplitude *float64 `yaml:"flutter_amplitude"`
	} `yaml:"butterfly"`

	Session *struct {
		PopupFrames int `yaml:"popup_frames"`
	} `yaml:"session"`

	Release *struct {
		CatchableReleased *bool `yaml:"catchable_released"`
	} `yaml:"release"`

	Volume *float64 `yaml:"volume"`
	Debug  *bool    `yaml:"debug"`

	// Bindings maps action names (release, mute, ...) to key names.
	Bindings map[string][]string `yaml:"bindings"`
}

// LoadOverrides reads and applies an override file. A missing file is not an
// error.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides parses YAML override data and applies it to the globals.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return o.Apply()
}

// Apply copies every set field onto the global configuration.
func (o *Overrides) Apply() error {
	if o.Window != nil {
		if o.Window.Width > 0 {
			C.Width = o.Window.Width
		}
		if o.Window.Height > 0 {
			C.Height = o.Window.Height
		}
	}

	if lb := o.Leaderboard; lb != nil {
		if lb.APIBase != "" {
			Leaderboard.APIBase = lb.APIBase
		}
		if lb.RetryDelay > 0 {
			Leaderboard.RetryDelay = lb.RetryDelay
		}
		if lb.RequestTimeout > 0 {
			Leaderboard.RequestTimeout = lb.RequestTimeout
		}
		if lb.Rows > 0 {
			Leaderboard.Rows = lb.Rows
		}
	}

	if b := o.Butterfly; b != nil {
		if b.JitterChance != nil {
			if *b.JitterChance < 0 || *b.JitterChance > 1 {
				return fmt.Errorf("butterfly.jitter_chance must be within [0, 1], got %v", *b.JitterChance)
			}
			Butterfly.JitterChance = *b.JitterChance
		}
		// The phase must shrink and alternate so it gets reseeded.
		if b.FlutterDecay != nil {
			if *b.FlutterDecay <= -1 || *b.FlutterDecay >= 0 {
				return fmt.Errorf("butterfly.flutter_decay must be within (-1, 0), got %v", *b.FlutterDecay)
			}
			Butterfly.FlutterDecay = *b.FlutterDecay
		}
		// ScaleY = 1 + phase*amplitude must stay positive.
		if b.FlutterAmplitude != nil {
			if *b.FlutterAmplitude <= 0 || *b.FlutterAmplitude >= 1 {
				return fmt.Errorf("butterfly.flutter_amplitude must be within (0, 1), got %v", *b.FlutterAmplitude)
			}
			Butterfly.FlutterAmplitude = *b.FlutterAmplitude
		}
	}

	if o.Session != nil && o.Session.PopupFrames > 0 {
		Session.PopupFrames = o.Session.PopupFrames
	}

	if o.Release != nil && o.Release.CatchableReleased != nil {
		Release.CatchableReleased = *o.Release.CatchableReleased
	}

	if o.Volume != nil {
		if *o.Volume < 0 || *o.Volume > 1 {
			return fmt.Errorf("volume must be within [0, 1], got %v", *o.Volume)
		}
		Audio.DefaultSFXVol = *o.Volume
	}

	if o.Debug != nil {
		Debug.Overlay = *o.Debug
	}

	for name, keys := range o.Bindings {
		id, ok := ActionByName(name)
		if !ok {
			return fmt.Errorf("unknown action %q in bindings", name)
		}
		Input.Bindings[id] = InputBinding{Keys: keys}
	}

	return nil
}
