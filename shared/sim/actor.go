package sim

import (
	"math"

	"github.com/automoto/tilerun/shared/tiles"
)

// SlideDirection is the tri-state slide flag.
type SlideDirection int

const (
	SlideLeft  SlideDirection = -1
	SlideNone  SlideDirection = 0
	SlideRight SlideDirection = 1
)

func (s SlideDirection) String() string {
	switch s {
	case SlideLeft:
		return "left"
	case SlideRight:
		return "right"
	default:
		return "none"
	}
}

// MoveState is the locomotion state derived from actor fields.
type MoveState int

const (
	StateAirborne MoveState = iota
	StateGrounded
	StateGroundedIcy
	StateSlidingLeft
	StateSlidingRight
)

func (s MoveState) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateGroundedIcy:
		return "grounded_icy"
	case StateSlidingLeft:
		return "sliding_left"
	case StateSlidingRight:
		return "sliding_right"
	default:
		return "airborne"
	}
}

// Costume hints for the renderer. Walk frames are 1..4.
const (
	CostumeIdle     = 0
	CostumeAirborne = 5
	CostumeSliding  = 6
)

// Actor is an axis-aligned box moved by Step. X and Y are the top-left
// corner in pixels.
type Actor struct {
	X, Y       float64
	W, H       float64
	XVel, YVel float64

	XAccel   float64
	Friction float64
	MaxSpeed float64

	Grounded     bool
	StickOnSlope bool
	Slide        SlideDirection

	// LastSurface is the most recent block the actor rested on. It is only
	// compared against, never dereferenced without BlockIndex.Resolve.
	LastSurface BlockRef

	Facing int

	frame       float64
	costume     int
	jumpWasHeld bool
}

// NewActor places a fresh actor at the world's spawn.
func NewActor(w *World, p Params) *Actor {
	a := &Actor{
		W:        p.ActorWidth,
		H:        p.ActorHeight,
		XAccel:   p.Accel,
		Friction: p.BaseFriction,
		MaxSpeed: p.BaseMaxSpeed,
		Facing:   1,
	}
	a.X, a.Y = w.SpawnPosition(a.H, p)
	return a
}

// Respawn teleports to the spawn pixel and clears all motion.
func (a *Actor) Respawn(w *World, p Params) {
	a.X, a.Y = w.SpawnPosition(a.H, p)
	a.XVel, a.YVel = 0, 0
	a.Grounded = false
	a.StickOnSlope = false
	a.Slide = SlideNone
	a.LastSurface = BlockRef{}
}

// Bottom is the y of the actor's feet.
func (a *Actor) Bottom() float64 { return a.Y + a.H }

// Right is the x of the actor's right edge.
func (a *Actor) Right() float64 { return a.X + a.W }

// Tile returns the tile cell holding the actor's top-left corner.
func (a *Actor) Tile() (col, row int) {
	return int(math.Floor(a.X / tiles.Size)), int(math.Floor(a.Y / tiles.Size))
}

// Costume is the renderer's sprite hint from the last step.
func (a *Actor) Costume() int { return a.costume }

// State derives the locomotion state. idx resolves the last surface to tell
// icy ground apart.
func (a *Actor) State(idx *BlockIndex) MoveState {
	switch {
	case a.Slide == SlideLeft:
		return StateSlidingLeft
	case a.Slide == SlideRight:
		return StateSlidingRight
	case !a.Grounded:
		return StateAirborne
	}
	if idx != nil {
		if b := idx.Resolve(a.LastSurface); b != nil && tiles.IsIcy(b.Code) {
			return StateGroundedIcy
		}
	}
	return StateGrounded
}

// ActorView is the read-only snapshot handed to renderers.
type ActorView struct {
	X, Y, W, H float64
	XVel, YVel float64
	Grounded   bool
	Slide      SlideDirection
	Costume    int
	Facing     int
}

// View snapshots the actor.
func (a *Actor) View() ActorView {
	return ActorView{
		X: a.X, Y: a.Y, W: a.W, H: a.H,
		XVel: a.XVel, YVel: a.YVel,
		Grounded: a.Grounded,
		Slide:    a.Slide,
		Costume:  a.costume,
		Facing:   a.Facing,
	}
}
