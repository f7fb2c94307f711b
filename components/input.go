package components

import (
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/sim"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Advance moves the current state into Previous and installs next.
func (d *InputData) Advance(next [cfg.ActionCount]bool) {
	d.Previous = d.Current
	d.Current = next
}

func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

// SimInput is the movement input for this frame. Jump edges are detected by
// the actor itself, so the held state is passed through.
func (d *InputData) SimInput() sim.Input {
	return sim.Input{
		MoveLeft:  d.Current[cfg.ActionMoveLeft],
		MoveRight: d.Current[cfg.ActionMoveRight],
		Jump:      d.Current[cfg.ActionJump],
		Slide:     d.Current[cfg.ActionSlide],
	}
}

var Input = donburi.NewComponentType[InputData]()
