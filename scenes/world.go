package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/systems"
	"github.com/automoto/tilerun/systems/client"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSource describes the level a scene plays.
type LevelSource struct {
	Grid  *leveldata.Grid
	Name  string
	Path  string // File the level came from, empty when embedded
	Watch bool   // Reload Path when it changes on disk
}

type PlatformerScene struct {
	ecs    *ecs.ECS
	source LevelSource
	saved  *client.SavedSettings
	once   sync.Once
}

func NewPlatformerScene(source LevelSource, saved *client.SavedSettings) *PlatformerScene {
	return &PlatformerScene{source: source, saved: saved}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Close releases the level watcher.
func (ps *PlatformerScene) Close() {
	if ps.ecs != nil {
		systems.StopReload(ps.ecs.World)
	}
}

// system adapts a world system to the ECS scheduler.
func system(fn func(donburi.World)) ecs.System {
	return func(e *ecs.ECS) {
		fn(e.World)
	}
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input must be sampled before the simulation
	ecs.AddSystem(client.UpdateInput)
	for _, fn := range systems.Simulation {
		ecs.AddSystem(system(fn))
	}
	ecs.AddSystem(system(systems.UpdateLevelSave))
	ecs.AddSystem(client.UpdateSettings)

	ecs.AddRenderer(client.LayerWorld, client.DrawLevel)
	ecs.AddRenderer(client.LayerWorld, client.DrawActors)
	ecs.AddRenderer(client.LayerWorld, client.DrawDebug)
	ecs.AddRenderer(client.LayerOverlay, client.DrawFade)
	ecs.AddRenderer(client.LayerOverlay, client.DrawHUD)

	ps.ecs = ecs

	// Create the level first; the space and player are built from it.
	level := factory.CreateLevel(ecs.World, ps.source.Grid, ps.source.Name, ps.source.Path)
	world := components.Level.Get(level).World
	factory.CreateSpace(ecs.World, world)
	factory.CreateCamera(ecs.World)
	factory.CreatePlayer(ecs.World, world)

	settings := systems.GetOrCreateSettings(ecs.World)
	client.ApplySavedSettings(settings, ps.saved)
	settings.LastLevel = ps.source.Path
	client.SaveSettings(settings)

	if ps.source.Watch {
		if err := systems.StartReload(ecs.World); err != nil {
			log.Printf("Warning: Could not watch level file: %v", err)
		}
	}
}
