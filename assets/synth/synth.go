// Package synth renders the game's sound effects to 16-bit stereo PCM.
package synth

import (
	"encoding/binary"
	"math"

	"github.com/automoto/playmates/config"
)

// attack is the fade-in length that keeps note onsets from clicking.
const attack = 0.004

// Render synthesizes def at the given sample rate as little-endian signed
// 16-bit stereo frames.
func Render(def config.SoundDef, sampleRate int) []byte {
	var total int
	for _, n := range def.Notes {
		total += int(n.Duration * float64(sampleRate))
	}

	out := make([]byte, 0, total*4)
	for _, n := range def.Notes {
		count := int(n.Duration * float64(sampleRate))
		for i := 0; i < count; i++ {
			t := float64(i) / float64(sampleRate)
			v := 0.0
			if n.Freq > 0 {
				v = oscillator(def.Wave, n.Freq*t) * envelope(t, def.Decay) * def.Volume
			}
			s := int16(clamp(v) * math.MaxInt16)
			out = binary.LittleEndian.AppendUint16(out, uint16(s))
			out = binary.LittleEndian.AppendUint16(out, uint16(s))
		}
	}
	return out
}

// oscillator returns one sample of the waveform at the given phase in cycles.
func oscillator(w config.Waveform, phase float64) float64 {
	_, frac := math.Modf(phase)
	switch w {
	case config.WaveSine:
		return math.Sin(2 * math.Pi * frac)
	case config.WaveTriangle:
		return 1 - 4*math.Abs(frac-0.5)
	default:
		if frac < 0.5 {
			return 1
		}
		return -1
	}
}

func envelope(t, decay float64) float64 {
	e := math.Exp(-decay * t)
	if t < attack {
		e *= t / attack
	}
	return e
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
