package sim

import (
	"math"

	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/tiles"
)

// frameScratch carries the highest slope resting line found so far in the
// current frame. It lives for one Step only.
type frameScratch struct {
	restY   float64
	hasRest bool
}

func (s *frameScratch) higher(y float64) bool {
	return !s.hasRest || y < s.restY
}

func (s *frameScratch) set(y float64) {
	s.restY = y
	s.hasRest = true
}

// yResolver resolves vertical contacts for one frame.
type yResolver struct {
	a       *Actor
	idx     *BlockIndex
	p       Params
	slide   bool
	scratch frameScratch
}

func (r *yResolver) collide(b *Block) {
	if !b.Solid {
		return
	}
	switch {
	case b.M == 0:
		r.flat(b)
	case b.SlopeSurface():
		r.floorSlope(b)
	default:
		r.ceilingSlope(b)
	}
}

func (r *yResolver) bumpHead(b *Block) {
	r.a.Y = b.Bottom()
	r.a.YVel = -r.a.YVel
}

func (r *yResolver) flat(b *Block) {
	a := r.a
	if !b.overlaps(a) {
		return
	}
	if a.Bottom() > b.Bottom() && a.YVel < 0 {
		r.bumpHead(b)
		return
	}
	a.Y = b.Y - a.H
	a.YVel = 0
	if tiles.IsIcy(b.Code) {
		a.MaxSpeed = r.p.IcyMaxSpeed
		a.Friction = r.p.IcyFriction
	} else {
		a.Friction = r.p.BaseFriction
	}
	a.Grounded = true
	a.LastSurface = r.idx.Ref(b)
}

func (r *yResolver) floorSlope(b *Block) {
	a := r.a
	// The band extends one tile above the block so a fast descent still
	// finds the line.
	if !(a.Right() > b.X && a.X < b.Right() && a.Y < b.Bottom() && a.Bottom() > b.Y-b.H) {
		return
	}
	if a.Bottom() > b.Bottom() && a.YVel < 0 {
		r.bumpHead(b)
		return
	}

	// Leading edge: the right foot on a rising slope, the left foot on a
	// falling one.
	var edge float64
	var onFootprint bool
	if b.M > 0 {
		edge = a.Right()
		onFootprint = edge > b.X && edge <= b.Right()
	} else {
		edge = a.X
		onFootprint = edge >= b.X && edge < b.Right()
	}
	if !onFootprint {
		r.ledge(b)
		return
	}

	y := b.lineY(edge - b.X)
	if a.Bottom() > y {
		a.Grounded = true
		a.StickOnSlope = true
	} else if r.disconnected(b) {
		return
	}
	if !a.StickOnSlope || !r.scratch.higher(y) {
		return
	}

	if r.slide {
		if b.M > 0 {
			a.Slide = SlideLeft
		} else {
			a.Slide = SlideRight
		}
	}
	r.scratch.set(y)
	a.Grounded = true
	a.Y = y - a.H
	if a.Slide == SlideNone {
		a.YVel = math.Abs(a.XVel * b.M)
	} else {
		a.YVel = -(a.XVel * b.M)
	}
	a.LastSurface = r.idx.Ref(b)

	gentle := tiles.IsGentle(b.Code)
	if gentle {
		a.Friction = r.p.GentleFriction
	}
	climbing := (b.M > 0 && a.XVel > 0) || (b.M < 0 && a.XVel < 0)
	if climbing && gentle {
		a.MaxSpeed = r.p.BaseMaxSpeed
	} else {
		a.MaxSpeed = gamemath.SlopeMaxSpeed(r.p.BaseMaxSpeed, b.M, climbing)
	}
}

// disconnected is the seam guard: with the foot above the line, a slope that
// does not continue the last surface in the direction of travel is skipped.
func (r *yResolver) disconnected(b *Block) bool {
	a := r.a
	if a.LastSurface == r.idx.Ref(b) {
		return false
	}
	last := r.idx.Resolve(a.LastSurface)
	return (a.XVel <= 0 && !slopeConnected(b, last)) || (a.XVel >= 0 && !slopeConnected(last, b))
}

// ledge treats a floor slope's tall end as a flat step when the leading edge
// is past the slope's span.
func (r *yResolver) ledge(b *Block) {
	a := r.a
	var top float64
	if b.M > 0 {
		top = b.lineY(tiles.Size)
	} else {
		top = b.lineY(0)
	}
	if a.Bottom() <= top {
		return
	}
	r.scratch.set(top)
	a.Y = top - a.H
	if a.YVel >= 0 && a.Slide == SlideNone {
		a.Grounded = true
		a.StickOnSlope = true
		a.YVel = 0
	} else {
		a.Grounded = false
		a.StickOnSlope = false
	}
	a.LastSurface = r.idx.Ref(b)
}

func (r *yResolver) ceilingSlope(b *Block) {
	a := r.a
	if !b.overlaps(a) {
		return
	}
	if a.Y < b.Y && a.YVel > 0 {
		a.Y = b.Y - a.H
		a.YVel = 0
		a.Grounded = true
		return
	}

	push := math.Abs(b.M * a.XVel)
	if b.M > 0 {
		if a.X > b.X && a.X < b.Right() {
			if y := b.lineY(a.X - b.X); a.Y < y {
				r.scratch.set(y)
				a.Y = y
				a.YVel = push
			}
		} else if top := b.lineY(0); a.Y < top {
			a.Y = top
			a.YVel = push
		}
		return
	}

	if a.Right() > b.X && a.Right() < b.Right() {
		if y := b.lineY(a.Right() - b.X); a.Y < y {
			r.scratch.set(y)
			a.Y = y
			a.YVel = push
		}
	} else if top := b.Y + (-b.M*tiles.Size - (tiles.Size - b.B)); a.Y < top {
		a.Y = top
		a.YVel = push
	}
}
