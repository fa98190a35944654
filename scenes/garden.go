package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/playmates/archetypes"
	"github.com/automoto/playmates/assets"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/network"
	"github.com/automoto/playmates/systems"
	factory2 "github.com/automoto/playmates/systems/factory"
	"github.com/automoto/playmates/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The space must cover any window the player can resize to.
const (
	spaceWidth  = 4096
	spaceHeight = 4096
)

type GardenScene struct {
	ecs    *ecs.ECS
	client *network.Client
	once   sync.Once
}

// NewGardenScene creates the butterfly garden. client may be nil, in which
// case the leaderboard stays empty and releases skip the save.
func NewGardenScene(client *network.Client) *GardenScene {
	return &GardenScene{client: client}
}

func (gs *GardenScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GardenScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GardenScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	assets.PreloadSprites()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system runs first so sounds queued last frame play now
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateNameEntry)
	ecs.AddSystem(systems.UpdateViewport)

	ecs.AddSystem(systems.UpdateNet)
	ecs.AddSystem(systems.UpdateButterflies)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateRelease)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateLeaderboard)

	// Add renderers
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawGarden)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawCage)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawButterflies)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawNet)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawConfetti)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawNameEditor)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawPopup)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawDebug)

	gs.ecs = ecs

	// The space goes first so every object created below lands in it.
	factory2.CreateSpace(gs.ecs, spaceWidth, spaceHeight)

	viewport := systems.Viewport()
	factory2.CreateNet(gs.ecs, viewport, func() { systems.OnCatch(gs.ecs) })
	factory2.CreateCage(gs.ecs, viewport)

	label := systems.NameLabelRect()
	settings := systems.GetOrCreateSettings(gs.ecs)
	settings.Editor = ui.NewNameUI(int(label.Right-label.Left), int(label.Bottom-label.Top), int(cfg.UI.Margin))
	systems.GetOrCreateAudio(gs.ecs)
	systems.SpawnPrey(gs.ecs)
	systems.CreateLeaderboard(gs.ecs, gs.client)
}
