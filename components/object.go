package components

import (
	"github.com/automoto/tilerun/shared/sim"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's presence in the collision space. Block is set for
// tile objects so overlaps can be traced back to the level.
type ObjectData struct {
	*resolv.Object
	Block sim.BlockRef
}

var Object = donburi.NewComponentType[ObjectData]()
