package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the resolv mirror of the level's blocks. Generation is the
// block index generation it was built from.
type SpaceData struct {
	*resolv.Space
	Generation uint64
}

var Space = donburi.NewComponentType[SpaceData]()
