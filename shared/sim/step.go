package sim

import (
	"math"

	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/tiles"
)

// Input is the control state sampled for one frame.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Slide     bool
}

// StepResult reports discrete events from one Step.
type StepResult struct {
	Respawned bool
}

// Step advances the actor one frame against the world. The order is fixed:
// clamp to the level, integrate X, resolve X, integrate Y, resolve Y for
// slopes, then resolve Y for flats.
func Step(a *Actor, w *World, in Input, p Params) StepResult {
	idx := w.Index()

	clampToWorld(a, w)
	moveX(a, in, p, idx)

	r := p.radius()
	col, row := a.Tile()
	idx.neighborhood(col, row, r, func(b *Block) {
		collideX(a, b, idx)
	})

	if moveY(a, w, in, p) {
		return StepResult{Respawned: true}
	}

	res := &yResolver{a: a, idx: idx, p: p, slide: in.Slide}
	col, row = a.Tile()
	idx.neighborhood(col, row, r, func(b *Block) {
		if b.M != 0 {
			res.collide(b)
		}
	})
	idx.neighborhood(col, row, r, func(b *Block) {
		if b.M == 0 {
			res.collide(b)
		}
	})
	return StepResult{}
}

func clampToWorld(a *Actor, w *World) {
	maxX := w.PixelWidth() - tiles.Size/2
	if a.X < 0 {
		a.X = 0
		a.XVel = 0
	} else if a.X > maxX {
		a.X = maxX
		a.XVel = 0
	}
}

func moveX(a *Actor, in Input, p Params, idx *BlockIndex) {
	a.frame += math.Abs(a.XVel) / p.WalkCycleDivide
	a.costume = int(math.Floor(a.frame))%4 + 1
	if math.Abs(a.XVel) < 1 {
		a.costume = CostumeIdle
	}

	if a.Slide == SlideNone {
		switch {
		case in.MoveLeft && in.MoveRight:
			if a.Grounded {
				a.XVel = gamemath.ApplyFriction(a.XVel, a.Friction)
			}
		case in.MoveLeft && a.XVel > -a.MaxSpeed:
			a.Facing = -1
			a.XVel -= a.XAccel
		case in.MoveRight && a.XVel < a.MaxSpeed:
			a.Facing = 1
			a.XVel += a.XAccel
		default:
			if a.Grounded {
				a.XVel = gamemath.ApplyFriction(a.XVel, a.Friction)
			}
		}
		a.Friction = p.BaseFriction
		a.MaxSpeed = p.BaseMaxSpeed
	} else {
		slideX(a, p, idx)
	}

	a.X += a.XVel
}

// slideX accelerates along the slide and launches off the end of a ramp when
// travelling up its rise.
func slideX(a *Actor, p Params, idx *BlockIndex) {
	a.Friction = p.SlideFriction
	a.MaxSpeed = p.SlideMaxSpeed
	a.costume = CostumeSliding

	last := idx.Resolve(a.LastSurface)
	if a.XVel > 0 {
		a.Facing = 1
		if last != nil && last.M > 0 {
			a.YVel = -(math.Abs(last.M) * a.XVel) + p.RampLaunchBias
		}
	} else {
		a.Facing = -1
		if last != nil && last.M < 0 {
			a.YVel = -(last.M * a.XVel) + p.RampLaunchBias
		}
	}

	switch a.Slide {
	case SlideRight:
		if a.XVel < a.MaxSpeed {
			a.XVel += p.SlideAccel
		}
	case SlideLeft:
		if a.XVel > -a.MaxSpeed {
			a.XVel -= p.SlideAccel
		}
	}
}

// moveY applies jump and gravity and integrates Y. It reports true when the
// actor fell out of the world and was respawned, which ends the frame.
func moveY(a *Actor, w *World, in Input, p Params) bool {
	jumpPressed := in.Jump && !a.jumpWasHeld
	a.jumpWasHeld = in.Jump
	if jumpPressed && a.Grounded {
		a.YVel = -p.JumpSpeed
		a.Grounded = false
		a.StickOnSlope = false
	}

	if !a.Grounded && a.Slide == SlideNone {
		a.costume = CostumeAirborne
	}
	if a.YVel < 0 {
		a.StickOnSlope = false
	}

	if a.Y > w.PixelHeight()+a.H {
		a.Respawn(w, p)
		return true
	}

	a.YVel += p.Gravity
	a.Grounded = false
	a.Y += a.YVel
	a.Slide = SlideNone
	return false
}
