package synth

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/playmates/config"
)

func TestRenderLength(t *testing.T) {
	def := config.SoundDef{
		Wave:   config.WaveSquare,
		Volume: 0.5,
		Notes:  []config.Note{{Freq: 440, Duration: 0.5}, {Freq: 0, Duration: 0.25}},
	}
	pcm := Render(def, 1000)
	// 750 frames, 2 channels, 2 bytes each
	if len(pcm) != 750*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 750*4)
	}

	// the rest is silent
	for i := 500 * 4; i < len(pcm); i += 2 {
		if s := int16(binary.LittleEndian.Uint16(pcm[i:])); s != 0 {
			t.Fatalf("sample at byte %d = %d, want silence", i, s)
		}
	}
}

func TestRenderStaysInRange(t *testing.T) {
	for id, def := range config.Sound.Defs {
		pcm := Render(def, config.Audio.SampleRate)
		if len(pcm) == 0 {
			t.Fatalf("sound %d rendered empty", id)
		}
		peak := 0
		for i := 0; i < len(pcm); i += 2 {
			s := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
			if s < 0 {
				s = -s
			}
			peak = max(peak, s)
		}
		if peak == 0 {
			t.Errorf("sound %d is silent", id)
		}
	}
}

func TestOscillatorShapes(t *testing.T) {
	if oscillator(config.WaveSquare, 0.25) != 1 || oscillator(config.WaveSquare, 0.75) != -1 {
		t.Error("square wave halves wrong")
	}
	if got := oscillator(config.WaveTriangle, 0.5); got != 1 {
		t.Errorf("triangle peak = %v, want 1", got)
	}
	if got := oscillator(config.WaveTriangle, 0); got != -1 {
		t.Errorf("triangle trough = %v, want -1", got)
	}
}
