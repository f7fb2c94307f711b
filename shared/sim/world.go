package sim

import (
	"fmt"

	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
)

// World owns one level: its tile grid, the block index derived from it and
// the spawn marker position. Every grid mutation rebuilds the index under a
// new generation.
type World struct {
	grid       *leveldata.Grid
	index      *BlockIndex
	generation uint64
	spawnIndex int
}

// NewWorld takes ownership of g.
func NewWorld(g *leveldata.Grid) *World {
	w := &World{}
	w.replace(g)
	return w
}

func (w *World) replace(g *leveldata.Grid) {
	w.grid = g
	w.rebuild()
}

func (w *World) rebuild() {
	w.generation++
	w.index = BuildIndex(w.grid, w.generation)
	w.spawnIndex = w.grid.SpawnIndex()
}

// Grid returns the current grid. Callers must not mutate it directly; use
// SetTile or Resize so the index stays in sync.
func (w *World) Grid() *leveldata.Grid { return w.grid }

// Index returns the current block index.
func (w *World) Index() *BlockIndex { return w.index }

// Generation is the generation of the current index.
func (w *World) Generation() uint64 { return w.generation }

// SpawnIndex is the linear index of the spawn marker, or -1.
func (w *World) SpawnIndex() int { return w.spawnIndex }

// PixelWidth is the level width in pixels.
func (w *World) PixelWidth() float64 { return float64(w.grid.Width * tiles.Size) }

// PixelHeight is the level height in pixels.
func (w *World) PixelHeight() float64 { return float64(w.grid.Height * tiles.Size) }

// Load replaces the grid.
func (w *World) Load(g *leveldata.Grid) {
	w.replace(g)
}

// LoadCode decodes level text and replaces the grid. On error the current
// grid is kept.
func (w *World) LoadCode(text string) error {
	g, err := leveldata.Decode(text)
	if err != nil {
		return fmt.Errorf("load level code: %w", err)
	}
	w.replace(g)
	return nil
}

// Code encodes the current grid as level text.
func (w *World) Code() string {
	return leveldata.Encode(w.grid)
}

// SetTile writes one cell and rebuilds. It reports false for off-grid cells.
func (w *World) SetTile(col, row int, code tiles.Code) bool {
	if !w.grid.Set(col, row, code) {
		return false
	}
	w.rebuild()
	return true
}

// Resize changes the grid dimensions, keeping overlapping cells.
func (w *World) Resize(width, height int) error {
	g, err := w.grid.Resized(width, height)
	if err != nil {
		return fmt.Errorf("resize world: %w", err)
	}
	w.replace(g)
	return nil
}

// SpawnPosition returns the top-left pixel for an actor of height h: the
// actor stands on the spawn cell's floor with a 2px gap. Without a marker it
// falls back to the configured default.
func (w *World) SpawnPosition(h float64, p Params) (x, y float64) {
	if w.spawnIndex < 0 {
		return p.DefaultSpawnX, p.DefaultSpawnY
	}
	col := w.spawnIndex / w.grid.Height
	row := w.spawnIndex % w.grid.Height
	return float64(col * tiles.Size), float64(row*tiles.Size) - (h - tiles.Size) - 2
}
