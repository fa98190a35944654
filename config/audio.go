package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCoin
	SoundCelebrate
	SoundToggle
)

// Waveform selects the oscillator used by a synthesized note
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
	WaveTriangle
)

// Note is one synthesized tone
type Note struct {
	Freq     float64 // Hz, 0 = rest
	Duration float64 // seconds
}

// SoundDef describes a synthesized sound effect
type SoundDef struct {
	Wave   Waveform
	Notes  []Note
	Volume float64 // 0.0 - 1.0 before the global SFX volume
	Decay  float64 // per-note exponential decay rate (1/s)
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synthesis recipes
type SoundConfig struct {
	Defs map[SoundID]SoundDef
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		Defs: map[SoundID]SoundDef{
			// Two-step coin chime: B5 then a ringing E6
			SoundCoin: {
				Wave:   WaveSquare,
				Volume: 0.25,
				Decay:  6,
				Notes: []Note{
					{Freq: 987.77, Duration: 0.08},
					{Freq: 1318.51, Duration: 0.4},
				},
			},
			// Rising major arpeggio for opening the cage
			SoundCelebrate: {
				Wave:   WaveTriangle,
				Volume: 0.5,
				Decay:  3,
				Notes: []Note{
					{Freq: 523.25, Duration: 0.12},
					{Freq: 659.25, Duration: 0.12},
					{Freq: 783.99, Duration: 0.12},
					{Freq: 1046.50, Duration: 0.5},
				},
			},
			SoundToggle: {
				Wave:   WaveSine,
				Volume: 0.4,
				Decay:  20,
				Notes: []Note{
					{Freq: 660, Duration: 0.06},
				},
			},
		},
	}
}
