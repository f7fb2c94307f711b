package components

import (
	"github.com/automoto/tilerun/shared/sim"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	World *sim.World
	Name  string
	Path  string // Source file, empty for generated or embedded levels
}

var Level = donburi.NewComponentType[LevelData]()
