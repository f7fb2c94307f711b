package systems

import (
	"log"

	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/yohamta/donburi"
)

// SyncSpace rebuilds the collision space mirror when the level's block index
// has moved to a new generation.
func SyncSpace(w donburi.World) {
	level, ok := GetLevel(w)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		factory.CreateSpace(w, level.World)
		return
	}
	space := components.Space.Get(spaceEntry)
	if space.Generation == level.World.Generation() {
		return
	}

	old := space.Generation
	factory.RebuildSpace(w, spaceEntry, level.World)
	log.Printf("Rebuilt collision space: generation %d -> %d, %d blocks",
		old, level.World.Generation(), level.World.Index().Len())
}
