package sim

import (
	"testing"

	"github.com/automoto/tilerun/shared/tiles"
)

func TestDropOntoFlatComesToRest(t *testing.T) {
	w := newTestWorld(t, 5, 6)
	a := newTestActor(40, 20)
	p := DefaultParams()

	floorTop := float64(5 * tiles.Size)
	drop := floorTop - a.Bottom()
	budget := int(drop/p.Gravity) + 1

	frames := stepUntil(t, a, w, Input{}, budget, func() bool {
		return a.Grounded && a.YVel == 0
	})
	if !near(a.Bottom(), floorTop) {
		t.Fatalf("rested with bottom %v, want %v", a.Bottom(), floorTop)
	}

	// Standing still must stay settled.
	for i := 0; i < 10; i++ {
		Step(a, w, Input{}, p)
		if !a.Grounded || a.YVel != 0 || !near(a.Bottom(), floorTop) {
			t.Fatalf("frame %d after landing: %+v", frames+i+1, a.View())
		}
	}
	if a.State(w.Index()) != StateGrounded {
		t.Fatalf("state = %v, want grounded", a.State(w.Index()))
	}
}

func TestLandingOnIcyFloor(t *testing.T) {
	w := newTestWorld(t, 5, 6, cell{1, 5, tiles.Icy})
	a := newTestActor(40, 116)
	p := DefaultParams()

	Step(a, w, Input{}, p)
	if !a.Grounded {
		t.Fatalf("expected to land: %+v", a.View())
	}
	if a.Friction != p.IcyFriction || a.MaxSpeed != p.IcyMaxSpeed {
		t.Fatalf("friction/max = %v/%v, want %v/%v", a.Friction, a.MaxSpeed, p.IcyFriction, p.IcyMaxSpeed)
	}
	if a.State(w.Index()) != StateGroundedIcy {
		t.Fatalf("state = %v, want grounded_icy", a.State(w.Index()))
	}
}

// Slope row: a half-gradient ramp (160 -> 144, then 144 -> 128) onto a
// plateau at 128.
func rampWorld(t *testing.T) *World {
	return newTestWorld(t, 8, 6,
		cell{3, 4, 11},
		cell{4, 4, 12},
		cell{5, 4, tiles.Ground},
		cell{6, 4, tiles.Ground},
		cell{7, 4, tiles.Ground},
	)
}

func TestWalkUpAscendingSlope(t *testing.T) {
	w := rampWorld(t)
	a := newTestActor(2, 116)
	p := DefaultParams()
	slope := w.Index().At(3, 4)
	right := Input{MoveRight: true}

	samples := 0
	for i := 0; i < 200 && a.X < 5*tiles.Size; i++ {
		Step(a, w, right, p)
		if a.Right() <= slope.X || a.Right() > slope.Right() {
			continue
		}
		if !a.Grounded || !a.StickOnSlope {
			t.Fatalf("frame %d: on slope footprint but grounded=%v stick=%v", i, a.Grounded, a.StickOnSlope)
		}
		relX := a.Right() - slope.X
		want := slope.Bottom() + (-slope.M * relX) - slope.B
		if !near(a.Bottom(), want) {
			t.Fatalf("frame %d: bottom %v, want %v at relX %v", i, a.Bottom(), want, relX)
		}
		if !near(a.MaxSpeed, p.BaseMaxSpeed/1.5) {
			t.Fatalf("frame %d: max speed %v while climbing", i, a.MaxSpeed)
		}
		samples++
	}
	if samples < 3 {
		t.Fatalf("only %d frames sampled on the slope", samples)
	}

	stepUntil(t, a, w, right, 200, func() bool { return a.X > 5*tiles.Size+8 })
	if !a.Grounded || !near(a.Bottom(), 4*tiles.Size) {
		t.Fatalf("expected to stand on the plateau: %+v", a.View())
	}
}

func TestGentleSlopeKeepsFlatSpeed(t *testing.T) {
	cases := []struct {
		name         string
		code         tiles.Code
		wantMax      float64
		wantFriction float64
	}{
		{"steep_half", 11, 5 / 1.5, 0.9},
		{"gentle_half", 27, 5, 0.99},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, 8, 6, cell{3, 4, c.code})
			slope := w.Index().At(3, 4)
			a := newTestActor(slope.X+10-20, 0)
			a.Y = slope.lineY(10) - a.H
			a.XVel = 1
			a.Grounded = true
			a.StickOnSlope = true
			a.LastSurface = w.Index().Ref(slope)

			res := &yResolver{a: a, idx: w.Index(), p: DefaultParams()}
			a.Y += 0.3
			res.collide(slope)

			if !near(a.MaxSpeed, c.wantMax) || a.Friction != c.wantFriction {
				t.Fatalf("max/friction = %v/%v, want %v/%v", a.MaxSpeed, a.Friction, c.wantMax, c.wantFriction)
			}
			if !near(a.YVel, 0.5) {
				t.Fatalf("yVel = %v, want |xVel*m| = 0.5", a.YVel)
			}
		})
	}
}

func TestSlopeSeamContinuity(t *testing.T) {
	cases := []struct {
		name         string
		next         tiles.Code
		wantGrounded bool
	}{
		// 11 then 12: 160->144 meets 144->128.
		{"connected", 12, true},
		// 11 then 11: 160->144 then a drop back to 160.
		{"broken", 11, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, 8, 6, cell{2, 4, 11}, cell{3, 4, c.next})
			a := newTestActor(2, 116)
			next := w.Index().At(3, 4)
			right := Input{MoveRight: true}

			stepUntil(t, a, w, right, 300, func() bool { return a.X >= next.X })

			if a.Grounded != c.wantGrounded {
				t.Fatalf("grounded = %v, want %v (%+v)", a.Grounded, c.wantGrounded, a.View())
			}
			line := next.lineY(a.Right() - next.X)
			if c.wantGrounded {
				if !near(a.Bottom(), line) {
					t.Fatalf("bottom %v not on line %v", a.Bottom(), line)
				}
				return
			}
			if a.Bottom() >= line-1 {
				t.Fatalf("snapped across a broken seam: bottom %v, line %v", a.Bottom(), line)
			}

			// It still lands once the fall reaches the line.
			stepUntil(t, a, w, right, 60, func() bool { return a.Grounded })
		})
	}
}

func TestRespawnOnFallingOut(t *testing.T) {
	g := newTestWorld(t, 3, 4).Grid()
	g.Tiles = make([]tiles.Code, len(g.Tiles))
	g.Set(1, 1, tiles.Spawn)
	w := NewWorld(g)
	p := DefaultParams()

	a := NewActor(w, p)
	spawnX, spawnY := w.SpawnPosition(a.H, p)
	if spawnX != 32 || spawnY != 32-(44-32)-2 {
		t.Fatalf("spawn = (%v,%v)", spawnX, spawnY)
	}
	if a.X != spawnX || a.Y != spawnY {
		t.Fatalf("NewActor placed at (%v,%v)", a.X, a.Y)
	}

	limit := w.PixelHeight() + a.H
	respawns := 0
	crossings := 0
	wasBelow := false
	for i := 0; i < 300; i++ {
		a.XVel = 1.5
		res := Step(a, w, Input{}, p)
		if res.Respawned {
			respawns++
			if a.X != spawnX || a.Y != spawnY || a.XVel != 0 || a.YVel != 0 {
				t.Fatalf("frame %d: respawn left actor at %+v", i, a.View())
			}
			if a.LastSurface != (BlockRef{}) {
				t.Fatalf("respawn kept last surface")
			}
		}
		below := a.Y > limit
		if below && !wasBelow {
			crossings++
		}
		wasBelow = below
	}
	// A crossing in the last frame has not been handled yet.
	if wasBelow {
		crossings--
	}
	if respawns == 0 || respawns != crossings {
		t.Fatalf("respawns = %d, crossings = %d", respawns, crossings)
	}
}

func TestRespawnWithoutMarkerUsesDefault(t *testing.T) {
	w := newTestWorld(t, 4, 4)
	p := DefaultParams()
	p.DefaultSpawnX, p.DefaultSpawnY = 48, 12
	if w.SpawnIndex() != -1 {
		t.Fatalf("SpawnIndex = %d", w.SpawnIndex())
	}
	a := NewActor(w, p)
	if a.X != 48 || a.Y != 12 {
		t.Fatalf("actor at (%v,%v), want default spawn", a.X, a.Y)
	}
}

func TestJumpNeedsFreshPress(t *testing.T) {
	w := newTestWorld(t, 5, 6)
	a := newTestActor(40, 116)
	p := DefaultParams()
	Step(a, w, Input{}, p)

	jumps := 0
	count := func(in Input, frames int) {
		for i := 0; i < frames; i++ {
			wasGrounded := a.Grounded
			Step(a, w, in, p)
			if wasGrounded && near(a.YVel, -p.JumpSpeed+p.Gravity) {
				jumps++
			}
		}
	}

	count(Input{Jump: true}, 120)
	if jumps != 1 {
		t.Fatalf("held jump produced %d jumps, want 1", jumps)
	}
	count(Input{}, 1)
	count(Input{Jump: true}, 1)
	if jumps != 2 {
		t.Fatalf("fresh press produced %d jumps total, want 2", jumps)
	}
}

func TestSlideOnSteepSlope(t *testing.T) {
	w := newTestWorld(t, 8, 6, cell{3, 4, 7})
	slope := w.Index().At(3, 4)
	a := newTestActor(90, 0)
	a.Y = slope.lineY(a.Right()-slope.X) - a.H
	p := DefaultParams()
	slide := Input{Slide: true}

	Step(a, w, slide, p)
	if a.Slide != SlideLeft || a.State(w.Index()) != StateSlidingLeft {
		t.Fatalf("slide = %v state = %v, want sliding left", a.Slide, a.State(w.Index()))
	}

	Step(a, w, slide, p)
	if a.XVel >= 0 {
		t.Fatalf("slide should accelerate left, xVel = %v", a.XVel)
	}
	if a.Costume() != CostumeSliding || a.Facing != -1 {
		t.Fatalf("costume/facing = %d/%d", a.Costume(), a.Facing)
	}
	// The slope overrides max speed for the descent; friction stays slippery.
	if a.Friction != p.SlideFriction || a.MaxSpeed != p.BaseMaxSpeed*2 {
		t.Fatalf("slide tuning not applied: %v/%v", a.Friction, a.MaxSpeed)
	}
}

func TestClampToWorld(t *testing.T) {
	w := newTestWorld(t, 8, 6)
	p := DefaultParams()

	a := newTestActor(-5, 116)
	a.XVel = -2
	Step(a, w, Input{}, p)
	if a.X != 0 || a.XVel != 0 {
		t.Fatalf("left clamp: x=%v xVel=%v", a.X, a.XVel)
	}

	a = newTestActor(250, 116)
	a.XVel = 2
	Step(a, w, Input{}, p)
	if a.X != 8*32-16 || a.XVel != 0 {
		t.Fatalf("right clamp: x=%v xVel=%v", a.X, a.XVel)
	}
}

func TestStepNearGridEdgesDoesNotPanic(t *testing.T) {
	w := newTestWorld(t, 2, 2)
	p := DefaultParams()
	for _, pos := range [][2]float64{{0, -300}, {16, -40}, {0, 70}, {20, 10}} {
		a := newTestActor(pos[0], pos[1])
		for i := 0; i < 5; i++ {
			Step(a, w, Input{MoveLeft: true, Jump: true}, p)
		}
	}
}

func TestCostumeHints(t *testing.T) {
	w := newTestWorld(t, 8, 6)
	a := newTestActor(40, 116)
	p := DefaultParams()

	Step(a, w, Input{}, p)
	if a.Costume() != CostumeAirborne {
		t.Fatalf("first frame from spawn should be airborne, got %d", a.Costume())
	}
	Step(a, w, Input{}, p)
	if a.Costume() != CostumeIdle {
		t.Fatalf("standing costume = %d, want idle", a.Costume())
	}
	stepUntil(t, a, w, Input{MoveRight: true}, 60, func() bool {
		c := a.Costume()
		return c >= 1 && c <= 4
	})
}

// Valley: a falling slope (code 10) meets a rising one (code 7) at x=128.
func valleyWorld(t *testing.T) *World {
	return newTestWorld(t, 8, 6, cell{3, 4, 10}, cell{4, 4, 7})
}

func TestValleyRestsOnHigherLine(t *testing.T) {
	w := valleyWorld(t)
	a := newTestActor(120, 94)
	p := DefaultParams()

	for i := 0; i < 60; i++ {
		Step(a, w, Input{}, p)
	}
	// Left foot on code 10 gives 152, right foot on code 7 gives 148.
	if !near(a.Bottom(), 148) || !a.Grounded || !a.StickOnSlope || a.YVel != 0 {
		t.Fatalf("valley rest: %+v stick=%v", a.View(), a.StickOnSlope)
	}
	if a.LastSurface != w.Index().Ref(w.Index().At(4, 4)) {
		t.Fatalf("last surface = %+v, want the rising slope", a.LastSurface)
	}
}

func TestSlopeCandidatesKeepHighestLine(t *testing.T) {
	cases := []struct {
		name  string
		order [][2]int
	}{
		{"falling_first", [][2]int{{3, 4}, {4, 4}}},
		{"rising_first", [][2]int{{4, 4}, {3, 4}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := valleyWorld(t)
			idx := w.Index()
			a := newTestActor(120, 155-44)
			a.StickOnSlope = true
			a.LastSurface = idx.Ref(idx.At(4, 4))

			res := &yResolver{a: a, idx: idx, p: DefaultParams()}
			for _, pos := range c.order {
				res.collide(idx.At(pos[0], pos[1]))
			}
			if !near(a.Bottom(), 148) {
				t.Fatalf("bottom = %v, want the higher line 148", a.Bottom())
			}
			if !res.scratch.hasRest || res.scratch.restY != 148 {
				t.Fatalf("scratch = %+v", res.scratch)
			}
		})
	}
}

func TestLedgeAtSlopeApex(t *testing.T) {
	w := newTestWorld(t, 8, 6, cell{3, 4, 7})
	apex := w.Index().At(3, 4)
	a := newTestActor(2, 116)
	p := DefaultParams()
	right := Input{MoveRight: true}

	rested, fell := false, false
	for i := 0; i < 120; i++ {
		Step(a, w, right, p)
		switch {
		case !rested:
			if a.X < apex.Right() && a.Right() > apex.Right() && a.Grounded && a.Bottom() == apex.Y {
				rested = true
			}
		case !fell:
			if !a.Grounded {
				fell = true
			}
		default:
			if a.Grounded {
				if !near(a.Bottom(), 5*tiles.Size) || a.X < apex.Right() {
					t.Fatalf("landed at %+v, want the floor past the apex", a.View())
				}
				return
			}
		}
	}
	t.Fatalf("rested=%v fell=%v, actor %+v", rested, fell, a.View())
}

func TestSlideLaunchOffRamp(t *testing.T) {
	cases := []struct {
		name     string
		code     tiles.Code
		xVel     float64
		slide    SlideDirection
		wantYVel float64
	}{
		{"up_steep_rise", 7, 3, SlideLeft, -2},
		{"up_steep_fall", 10, -3, SlideRight, -2},
		{"up_half_rise", 11, 4, SlideLeft, -1},
		{"down_the_rise", 7, -3, SlideLeft, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, 8, 6, cell{3, 4, c.code})
			p := DefaultParams()
			a := newTestActor(100, 80)
			a.XVel = c.xVel
			a.YVel = 0.5
			a.Slide = c.slide
			a.LastSurface = w.Index().Ref(w.Index().At(3, 4))

			slideX(a, p, w.Index())
			if !near(a.YVel, c.wantYVel) {
				t.Fatalf("yVel = %v, want %v", a.YVel, c.wantYVel)
			}
			if a.Friction != p.SlideFriction || a.MaxSpeed != p.SlideMaxSpeed {
				t.Fatalf("slide tuning = %v/%v", a.Friction, a.MaxSpeed)
			}
		})
	}
}

func TestFlatBeneathSlopeDoesNotPullDown(t *testing.T) {
	// The fall carries the foot past both the slope line and the floor top;
	// the slope pass settles it first and the floor no longer overlaps.
	w := newTestWorld(t, 8, 6, cell{3, 4, 11})
	slope := w.Index().At(3, 4)
	a := newTestActor(100, 115)
	a.XVel = 1
	a.YVel = 5

	Step(a, w, Input{}, DefaultParams())
	if a.X != 101 || !near(a.Bottom(), 147.5) {
		t.Fatalf("actor at x=%v bottom=%v, want 101 / 147.5", a.X, a.Bottom())
	}
	if !a.Grounded || !a.StickOnSlope || !near(a.YVel, 0.5) {
		t.Fatalf("slope contact lost: %+v", a.View())
	}
	if a.LastSurface != w.Index().Ref(slope) {
		t.Fatalf("last surface = %+v, want the slope", a.LastSurface)
	}
}
