package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // simulation frames per second
}

// ViewportConfig holds the responsive breakpoints
type ViewportConfig struct {
	// Butterflies use the small tuning at or below this width
	SmallButterflyWidth float64
}

// ButterflyConfig contains butterfly motion and sprite configuration
type ButterflyConfig struct {
	// Sprite
	DesktopWidth float64 // rendered width on large viewports
	MobileWidth  float64 // rendered width on small viewports
	Aspect       float64 // height = width * Aspect
	Variants     int

	// Motion
	JitterChance      float64 // per-axis chance of a velocity redraw each frame
	JitterSpanDesktop float64
	JitterSpanMobile  float64

	// Flutter
	FlutterDecay     float64
	FlutterFloor     float64
	FlutterAmplitude float64

	// Wing frames
	WingFrames     int
	WingFrameSpeed float32 // ticks per wing frame
}

// NetConfig contains the visual configuration of the net
type NetConfig struct {
	HoopColor   color.RGBA
	MeshColor   color.RGBA
	HandleColor color.RGBA
	GrabCursor  bool // switch to a grab cursor while hovering the net
}

// ReleaseConfig contains cage and release burst configuration
type ReleaseConfig struct {
	CageSize          float64
	CageMargin        float64
	CatchableReleased bool // released butterflies can be caught again
	ReplacePrevious   bool // a new release removes the previous burst
}

// SessionConfig contains catch popup configuration
type SessionConfig struct {
	PopupFrames       int     // frames the popup stays up (and catches are ignored)
	PopupTweenSeconds float32 // pop-in duration
	PopupStartScale   float32
}

// ConfettiConfig contains the release celebration configuration
type ConfettiConfig struct {
	ParticleCount int
	SpreadDegrees float64
	OriginY       float64 // fraction of viewport height
	StartSpeed    float64
	Gravity       float64
	Drag          float64 // velocity multiplier per frame
	LifetimeTicks int
	ParticleSize  float64
	Colors        []color.RGBA
}

// LeaderboardConfig contains leaderboard client configuration
type LeaderboardConfig struct {
	APIBase        string
	RetryDelay     time.Duration
	RequestTimeout time.Duration
	Rows           int
}

// UIConfig contains HUD layout and colors
type UIConfig struct {
	Background     color.RGBA
	Grass          color.RGBA
	TextColor      color.RGBA
	MutedTextColor color.RGBA
	ErrorColor     color.RGBA
	PanelColor     color.RGBA
	Margin         float64
	LineHeight     float64
	Title          string
	Subtitle       string
	PopupText      string
	SavingText     string
	NamePrompt     string
	EmptyBoard     string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // draw collision boxes and velocity vectors
}

// AnimationDef describes a frame range in a sprite strip
type AnimationDef struct {
	First    int
	Last     int
	Step     int
	Speed    float32
	PingPong bool
}

// Global configuration instances
var C *Config
var Viewport ViewportConfig
var Butterfly ButterflyConfig
var Net NetConfig
var Release ReleaseConfig
var Session SessionConfig
var Confetti ConfettiConfig
var Leaderboard LeaderboardConfig
var UI UIConfig
var Debug DebugConfig

// WingBeat is the butterfly sprite strip animation
var WingBeat AnimationDef

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Wood      = color.RGBA{R: 139, G: 94, B: 60, A: 255}
	Overlay   = color.RGBA{R: 0, G: 0, B: 0, A: 120}
	SoftWhite = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

// VariantTints colors each butterfly variant (index 0 = variant 1)
var VariantTints = []color.RGBA{
	{R: 255, G: 140, B: 0, A: 255},   // monarch
	{R: 70, G: 130, B: 255, A: 255},  // blue morpho
	{R: 255, G: 230, B: 60, A: 255},  // brimstone
	{R: 240, G: 90, B: 170, A: 255},  // pink
	{R: 120, G: 220, B: 120, A: 255}, // green
	{R: 170, G: 110, B: 240, A: 255}, // purple emperor
	{R: 250, G: 250, B: 250, A: 255}, // cabbage white
	{R: 230, G: 60, B: 60, A: 255},   // red admiral
	{R: 90, G: 220, B: 230, A: 255},  // turquoise
	{R: 200, G: 160, B: 90, A: 255},  // ringlet
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Auliria's Playmates",
		TPS:    60,
	}

	Viewport = ViewportConfig{
		SmallButterflyWidth: 768,
	}

	Butterfly = ButterflyConfig{
		DesktopWidth: 100,
		MobileWidth:  60,
		Aspect:       0.8,
		Variants:     10,

		JitterChance:      0.02,
		JitterSpanDesktop: 4,
		JitterSpanMobile:  3,

		FlutterDecay:     -0.95,
		FlutterFloor:     0.1,
		FlutterAmplitude: 0.1,

		WingFrames:     4,
		WingFrameSpeed: 4,
	}

	WingBeat = AnimationDef{First: 0, Last: Butterfly.WingFrames - 1, Step: 1, Speed: Butterfly.WingFrameSpeed, PingPong: true}

	Net = NetConfig{
		HoopColor:   color.RGBA{R: 90, G: 60, B: 30, A: 255},
		MeshColor:   color.RGBA{R: 255, G: 255, B: 255, A: 150},
		HandleColor: Wood,
		GrabCursor:  true,
	}

	Release = ReleaseConfig{
		CageSize:          64,
		CageMargin:        20,
		CatchableReleased: false,
		ReplacePrevious:   true,
	}

	Session = SessionConfig{
		PopupFrames:       120, // 2 seconds at 60 TPS
		PopupTweenSeconds: 0.35,
		PopupStartScale:   0.2,
	}

	Confetti = ConfettiConfig{
		ParticleCount: 150,
		SpreadDegrees: 70,
		OriginY:       0.6,
		StartSpeed:    14,
		Gravity:       0.3,
		Drag:          0.96,
		LifetimeTicks: 200,
		ParticleSize:  7,
		Colors: []color.RGBA{
			Red, Green, Blue, Yellow, Magenta, Cyan,
		},
	}

	Leaderboard = LeaderboardConfig{
		APIBase:        "http://localhost:8000",
		RetryDelay:     5 * time.Second,
		RequestTimeout: 10 * time.Second,
		Rows:           10,
	}

	UI = UIConfig{
		Background:     color.RGBA{R: 170, G: 220, B: 255, A: 255},
		Grass:          color.RGBA{R: 120, G: 190, B: 90, A: 255},
		TextColor:      color.RGBA{R: 40, G: 40, B: 60, A: 255},
		MutedTextColor: color.RGBA{R: 90, G: 90, B: 110, A: 255},
		ErrorColor:     LightRed,
		PanelColor:     color.RGBA{R: 255, G: 255, B: 255, A: 170},
		Margin:         16,
		LineHeight:     18,
		Title:          "Auliria's Playmates",
		Subtitle:       "Top 10 butterfly catchers!",
		PopupText:      "Gotcha!",
		SavingText:     "Saving...",
		NamePrompt:     "Click to add your name",
		EmptyBoard:     "No players yet. Be the first!",
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}

// ButterflyWidth returns the rendered butterfly width for a viewport width.
func ButterflyWidth(viewportWidth float64) float64 {
	if viewportWidth <= Viewport.SmallButterflyWidth {
		return Butterfly.MobileWidth
	}
	return Butterfly.DesktopWidth
}

// JitterSpan returns the velocity redraw range for a viewport width.
func JitterSpan(viewportWidth float64) float64 {
	if viewportWidth <= Viewport.SmallButterflyWidth {
		return Butterfly.JitterSpanMobile
	}
	return Butterfly.JitterSpanDesktop
}
