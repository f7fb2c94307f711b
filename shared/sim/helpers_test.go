package sim

import (
	"math"
	"testing"

	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
)

type cell struct {
	col, row int
	code     tiles.Code
}

// newTestWorld builds a world with a ground row at the bottom plus the given
// cells.
func newTestWorld(t *testing.T, width, height int, cells ...cell) *World {
	t.Helper()
	g, err := leveldata.NewFloorGrid(width, height)
	if err != nil {
		t.Fatalf("NewFloorGrid: %v", err)
	}
	for _, c := range cells {
		if !g.Set(c.col, c.row, c.code) {
			t.Fatalf("cell %+v is off the grid", c)
		}
	}
	return NewWorld(g)
}

func newTestActor(x, y float64) *Actor {
	p := DefaultParams()
	return &Actor{
		X: x, Y: y,
		W: p.ActorWidth, H: p.ActorHeight,
		XAccel:   p.Accel,
		Friction: p.BaseFriction,
		MaxSpeed: p.BaseMaxSpeed,
		Facing:   1,
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// stepUntil steps with a fixed input until done reports true or the frame
// budget runs out. It returns the number of frames stepped.
func stepUntil(t *testing.T, a *Actor, w *World, in Input, budget int, done func() bool) int {
	t.Helper()
	p := DefaultParams()
	for i := 1; i <= budget; i++ {
		Step(a, w, in, p)
		if done() {
			return i
		}
	}
	t.Fatalf("condition not met within %d frames (actor %+v)", budget, a.View())
	return budget
}
