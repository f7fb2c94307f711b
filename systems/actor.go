package systems

import (
	"log"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/sim"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
)

// UpdateActors advances every player one frame through sim.Step.
func UpdateActors(w donburi.World) {
	level, ok := GetLevel(w)
	if !ok {
		return
	}
	world := level.World

	tags.Player.Each(w, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		input := components.Input.Get(e)

		if input.JustPressed(cfg.ActionRestart) {
			actor.Respawn(world, cfg.Sim)
			onRespawn(w, actor, "restart")
		}

		res := sim.Step(actor.Actor, world, input.SimInput(), cfg.Sim)
		actor.Frames++
		if res.Respawned {
			onRespawn(w, actor, "fell out of level")
		}
		actor.State = actor.Actor.State(world.Index())
	})
}

func onRespawn(w donburi.World, actor *components.ActorData, reason string) {
	actor.Respawns++
	if cfg.Debug.LogRespawns {
		log.Printf("Respawned actor (%s) at %.0f,%.0f after %d frames, %d respawns",
			reason, actor.X, actor.Y, actor.Frames, actor.Respawns)
	}
	StartFade(w)
	SnapCamera(w)
}
