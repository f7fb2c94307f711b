package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/shared/sim"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Resolv cell size for the mirror space: half a tile, as the actor is
// narrower than a tile.
const spaceCell = tiles.Size / 2

// CreateSpace builds the collision space mirror of world and a block entity
// for every tile in it.
func CreateSpace(w donburi.World, world *sim.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, &components.SpaceData{})
	RebuildSpace(w, space, world)
	return space
}

// RebuildSpace replaces the space contents with the blocks of world's
// current index. Block entities of the previous generation are removed;
// players are carried over into the new space.
func RebuildSpace(w donburi.World, spaceEntry *donburi.Entry, world *sim.World) {
	var stale []donburi.Entity
	tags.Block.Each(w, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, e := range stale {
		w.Remove(e)
	}

	idx := world.Index()
	space := resolv.NewSpace(int(world.PixelWidth()), int(world.PixelHeight()), spaceCell, spaceCell)
	idx.Each(func(b *sim.Block) {
		CreateBlock(w, space, idx, b)
	})
	tags.Player.Each(w, func(e *donburi.Entry) {
		space.Add(components.Object.Get(e).Object)
	})

	components.Space.SetValue(spaceEntry, components.SpaceData{
		Space:      space,
		Generation: idx.Generation(),
	})
}

// CreateBlock adds one tile block to space as a tagged rectangle.
func CreateBlock(w donburi.World, space *resolv.Space, idx *sim.BlockIndex, b *sim.Block) *donburi.Entry {
	block := archetypes.Block.Spawn(w)

	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, BlockTags(b)...)
	obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	obj.Data = block

	components.Object.SetValue(block, components.ObjectData{Object: obj, Block: idx.Ref(b)})
	space.Add(obj)
	return block
}

// BlockTags are the resolv tags describing a block's collision role.
func BlockTags(b *sim.Block) []string {
	switch {
	case b.Code == tiles.Spawn:
		return []string{tags.ResolvSpawn}
	case !b.Solid:
		return []string{tags.ResolvDecor}
	case b.Kind == tiles.KindSlopeFloor:
		return []string{tags.ResolvSolid, tags.ResolvRamp}
	case b.Kind == tiles.KindSlopeCeiling:
		return []string{tags.ResolvSolid, tags.ResolvCeiling}
	case tiles.IsIcy(b.Code):
		return []string{tags.ResolvSolid, tags.ResolvIcy}
	}
	return []string{tags.ResolvSolid}
}
