package factory

import (
	"log"

	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/sim"
	"github.com/yohamta/donburi"
)

// CreateLevel wraps grid in a sim.World and stores it on a new level entity.
func CreateLevel(w donburi.World, grid *leveldata.Grid, name, path string) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	world := sim.NewWorld(grid)
	components.Level.Set(level, &components.LevelData{
		World: world,
		Name:  name,
		Path:  path,
	})

	log.Printf("Loaded level %q: %dx%d tiles, %d blocks, spawn index %d",
		name, grid.Width, grid.Height, world.Index().Len(), world.SpawnIndex())
	return level
}

// DefaultGrid is the level used when none is given: open air over a floor.
func DefaultGrid() *leveldata.Grid {
	g, err := leveldata.NewFloorGrid(cfg.Level.DefaultWidth, cfg.Level.DefaultHeight)
	if err != nil {
		// Non-positive config sizes fall back to a small level.
		g, _ = leveldata.NewFloorGrid(20, 12)
	}
	return g
}
