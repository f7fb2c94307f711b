package components

import (
	"github.com/automoto/tilerun/shared/sim"
	"github.com/yohamta/donburi"
)

// ActorData wraps the simulated actor with per-entity bookkeeping.
type ActorData struct {
	*sim.Actor
	State    sim.MoveState
	Respawns int
	Frames   int
}

var Actor = donburi.NewComponentType[ActorData]()
