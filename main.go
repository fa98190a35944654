package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/playmates/assets"
	"github.com/automoto/playmates/config"
	"github.com/automoto/playmates/fonts"
	"github.com/automoto/playmates/network"
	"github.com/automoto/playmates/scenes"
	"github.com/automoto/playmates/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// apiBaseEnv overrides the leaderboard API base when -api is not given.
const apiBaseEnv = "PLAYMATES_API_BASE"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(client *network.Client) *Game {
	fonts.LoadDefaults()

	// Butterflies fall back to a color-scale tint without the shader
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	return &Game{scene: scenes.NewGardenScene(client)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the garden fills any size.
func (g *Game) Layout(width, height int) (int, int) {
	systems.SetViewport(width, height)
	return width, height
}

func main() {
	configPath := flag.String("config", "playmates.yaml", "optional YAML overrides file")
	apiBase := flag.String("api", "", "leaderboard API base URL (default from config or "+apiBaseEnv+")")
	debug := flag.Bool("debug", false, "draw collision boxes and velocity vectors")
	width := flag.Int("width", 0, "initial window width")
	height := flag.Int("height", 0, "initial window height")
	seed := flag.Uint64("seed", 0, "fixed random seed for reproducible flights (0 = time based)")
	flag.Parse()

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatalf("Failed to load config %s: %v", *configPath, err)
	}
	if err := systems.ResolveBindings(); err != nil {
		log.Printf("Warning: %v", err)
	}
	systems.ApplyAudioConfig()

	if *debug {
		config.Debug.Overlay = true
	}
	if *width > 0 {
		config.C.Width = *width
	}
	if *height > 0 {
		config.C.Height = *height
	}
	if *seed != 0 {
		systems.SeedRand(*seed)
	}

	base := config.Leaderboard.APIBase
	if env := os.Getenv(apiBaseEnv); env != "" {
		base = env
	}
	if *apiBase != "" {
		base = *apiBase
	}
	// Without a leaderboard, releases skip the save and run right away
	var client *network.Client
	if base != "" {
		client = network.NewClient(base, config.Leaderboard.RequestTimeout, config.Leaderboard.RetryDelay)
		defer client.Close()
	} else {
		log.Printf("Warning: No leaderboard API configured, scores will not be saved")
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	systems.SetViewport(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(client)); err != nil {
		log.Fatal(err)
	}
}
