package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/sim"
	"github.com/automoto/tilerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the actor at the level's spawn point and adds its box
// to the collision space if one exists.
func CreatePlayer(w donburi.World, world *sim.World) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	actor := sim.NewActor(world, cfg.Sim)
	components.Actor.SetValue(player, components.ActorData{
		Actor: actor,
		State: actor.State(world.Index()),
	})

	obj := resolv.NewObject(actor.X, actor.Y, actor.W, actor.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, actor.W, actor.H))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
