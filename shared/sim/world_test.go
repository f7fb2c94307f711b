package sim

import (
	"errors"
	"testing"

	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
)

func TestBuildIndex(t *testing.T) {
	w := newTestWorld(t, 4, 3, cell{1, 1, 7}, cell{2, 1, 40})
	idx := w.Index()

	if idx.Len() != 4+2 {
		t.Fatalf("Len = %d, want 6", idx.Len())
	}
	b := idx.At(1, 1)
	if b == nil || b.X != 32 || b.Y != 32 || b.M != 1 || b.B != 0 || !b.Solid || !b.SlopeSurface() {
		t.Fatalf("slope block = %+v", b)
	}
	if deco := idx.At(2, 1); deco == nil || deco.Solid {
		t.Fatalf("decoration block = %+v, want non-solid", deco)
	}
	for _, c := range [][2]int{{0, 0}, {-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		if idx.At(c[0], c[1]) != nil {
			t.Fatalf("At(%d,%d) should be nil", c[0], c[1])
		}
	}

	visited := 0
	idx.neighborhood(0, 0, 2, func(*Block) { visited++ })
	if visited != 5 {
		t.Fatalf("neighborhood of (0,0) visited %d blocks, want 5", visited)
	}
}

func TestBlockRefGeneration(t *testing.T) {
	w := newTestWorld(t, 4, 3)
	old := w.Index()
	b := old.At(1, 2)
	ref := old.Ref(b)

	if old.Resolve(ref) != b {
		t.Fatalf("fresh ref did not resolve")
	}
	if old.Resolve(BlockRef{}) != nil {
		t.Fatalf("zero ref resolved")
	}

	if !w.SetTile(0, 0, tiles.Ground) {
		t.Fatalf("SetTile failed")
	}
	if w.Generation() == old.Generation() {
		t.Fatalf("generation did not advance")
	}
	if w.Index().Resolve(ref) != nil {
		t.Fatalf("stale ref resolved against the rebuilt index")
	}
	if w.SetTile(9, 9, tiles.Ground) {
		t.Fatalf("SetTile off-grid should fail")
	}
}

func TestSlopeConnected(t *testing.T) {
	w := newTestWorld(t, 6, 3,
		cell{0, 1, 11}, cell{1, 1, 12}, cell{2, 1, 11}, cell{3, 1, 10}, cell{4, 1, 7},
	)
	idx := w.Index()
	cases := []struct {
		name        string
		left, right *Block
		want        bool
	}{
		{"half_low_into_half_high", idx.At(0, 1), idx.At(1, 1), true},
		{"half_high_into_half_low", idx.At(1, 1), idx.At(2, 1), false},
		{"peak", idx.At(4, 1), idx.At(3, 1), true},
		{"nil_left", nil, idx.At(0, 1), false},
		{"nil_right", idx.At(0, 1), nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := slopeConnected(c.left, c.right); got != c.want {
				t.Fatalf("slopeConnected = %v, want %v", got, c.want)
			}
		})
	}
}

func TestWorldLoadCodeKeepsGridOnError(t *testing.T) {
	w := newTestWorld(t, 4, 3)
	before := w.Grid()
	gen := w.Generation()

	err := w.LoadCode("1_4_3_b_")
	if err == nil {
		t.Fatalf("expected error")
	}
	var lfe *leveldata.LevelFormatError
	if !errors.As(err, &lfe) {
		t.Fatalf("error %v is not a LevelFormatError", err)
	}
	if w.Grid() != before || w.Generation() != gen {
		t.Fatalf("failed load replaced the grid")
	}

	code := "1_2_2_b49aa_"
	if err := w.LoadCode(code); err != nil {
		t.Fatalf("LoadCode: %v", err)
	}
	if w.Grid().Width != 2 || w.SpawnIndex() != 2 || w.Code() != code {
		t.Fatalf("loaded grid %+v spawn %d", w.Grid(), w.SpawnIndex())
	}
}

func TestWorldResize(t *testing.T) {
	w := newTestWorld(t, 4, 3)
	gen := w.Generation()
	if err := w.Resize(6, 5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if w.Generation() == gen || w.Index().Width() != 6 || w.Index().Height() != 5 {
		t.Fatalf("index not rebuilt after resize")
	}
	if w.PixelWidth() != 192 || w.PixelHeight() != 160 {
		t.Fatalf("pixel size %vx%v", w.PixelWidth(), w.PixelHeight())
	}
	if err := w.Resize(0, 5); err == nil {
		t.Fatalf("Resize(0,5) should fail")
	}
}

func TestCollideX(t *testing.T) {
	cases := []struct {
		name     string
		cells    []cell
		block    [2]int
		x, y     float64
		xVel     float64
		wantX    float64
		wantXVel float64
	}{
		{
			name:  "flat_after_rising_slope_lets_actor_through",
			cells: []cell{{3, 4, 12}, {4, 4, tiles.Ground}},
			block: [2]int{4, 4}, x: 110, y: 86, xVel: 3,
			wantX: 110, wantXVel: 3,
		},
		{
			name:  "flat_after_air_blocks_rightward",
			cells: []cell{{4, 4, tiles.Ground}},
			block: [2]int{4, 4}, x: 110, y: 86, xVel: 3,
			wantX: 108, wantXVel: 0,
		},
		{
			name:  "flat_before_falling_slope_lets_actor_through",
			cells: []cell{{4, 4, tiles.Ground}, {5, 4, 13}},
			block: [2]int{4, 4}, x: 150, y: 86, xVel: -3,
			wantX: 150, wantXVel: -3,
		},
		{
			name:  "flat_before_air_blocks_leftward",
			cells: []cell{{4, 4, tiles.Ground}},
			block: [2]int{4, 4}, x: 150, y: 86, xVel: -3,
			wantX: 160, wantXVel: 0,
		},
		{
			name:  "rising_slope_never_blocks_the_climb",
			cells: []cell{{4, 4, 7}},
			block: [2]int{4, 4}, x: 120, y: 106, xVel: 3,
			wantX: 120, wantXVel: 3,
		},
		{
			name:  "rising_slope_blocks_from_tall_side",
			cells: []cell{{4, 4, 7}},
			block: [2]int{4, 4}, x: 150, y: 106, xVel: -3,
			wantX: 160, wantXVel: 0,
		},
		{
			name:  "rising_slope_continued_by_falling_slope",
			cells: []cell{{4, 4, 7}, {5, 4, 10}},
			block: [2]int{4, 4}, x: 150, y: 106, xVel: -3,
			wantX: 150, wantXVel: -3,
		},
		{
			name:  "falling_slope_blocks_from_tall_side",
			cells: []cell{{4, 4, 10}},
			block: [2]int{4, 4}, x: 110, y: 106, xVel: 3,
			wantX: 108, wantXVel: 0,
		},
		{
			name:  "rising_ceiling_blocks_rightward",
			cells: []cell{{4, 4, 15}},
			block: [2]int{4, 4}, x: 110, y: 130, xVel: 3,
			wantX: 108, wantXVel: 0,
		},
		{
			name:  "non_solid_decoration_ignored",
			cells: []cell{{4, 4, 40}},
			block: [2]int{4, 4}, x: 110, y: 86, xVel: 3,
			wantX: 110, wantXVel: 3,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, 8, 6, c.cells...)
			a := newTestActor(c.x, c.y)
			a.XVel = c.xVel
			collideX(a, w.Index().At(c.block[0], c.block[1]), w.Index())
			if a.X != c.wantX || a.XVel != c.wantXVel {
				t.Fatalf("x/xVel = %v/%v, want %v/%v", a.X, a.XVel, c.wantX, c.wantXVel)
			}
		})
	}
}

func TestCeilingSlopePushesDown(t *testing.T) {
	// Rising ceiling over a gap: line from 160 at the left to 128 at the right.
	w := newTestWorld(t, 8, 8, cell{4, 4, 15})
	b := w.Index().At(4, 4)
	a := newTestActor(140, 140)
	a.XVel = 2
	a.YVel = -3

	res := &yResolver{a: a, idx: w.Index(), p: DefaultParams()}
	res.collide(b)

	want := b.lineY(a.X - b.X)
	if a.Y != want {
		t.Fatalf("head at %v, want pushed to %v", a.Y, want)
	}
	if a.YVel != 2 {
		t.Fatalf("yVel = %v, want |m*xVel| = 2", a.YVel)
	}
}

func TestMoveStateStrings(t *testing.T) {
	for s, want := range map[MoveState]string{
		StateAirborne:     "airborne",
		StateGrounded:     "grounded",
		StateGroundedIcy:  "grounded_icy",
		StateSlidingLeft:  "sliding_left",
		StateSlidingRight: "sliding_right",
	} {
		if s.String() != want {
			t.Fatalf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
