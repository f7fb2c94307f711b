// Package leveldata holds the tile grid and its text and TMX encodings.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

import (
	"fmt"

	"github.com/automoto/tilerun/shared/tiles"
)

// Grid is a column-major array of tile codes: index = col*Height + row.
type Grid struct {
	Width  int
	Height int
	Tiles  []tiles.Code
}

// NewGrid returns an all-air grid. Width and height must be positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid size %dx%d: dimensions must be positive", width, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]tiles.Code, width*height),
	}, nil
}

// NewFloorGrid returns the default generated level: every column is air with
// a single ground tile on the bottom row.
func NewFloorGrid(width, height int) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for col := 0; col < width; col++ {
		g.Set(col, height-1, tiles.Ground)
	}
	return g, nil
}

// Index returns the linear index of a cell, or -1 when it is off the grid.
func (g *Grid) Index(col, row int) int {
	if col < 0 || row < 0 || col >= g.Width || row >= g.Height {
		return -1
	}
	return col*g.Height + row
}

// At returns the code at a cell. Off-grid cells read as air.
func (g *Grid) At(col, row int) tiles.Code {
	i := g.Index(col, row)
	if i < 0 {
		return tiles.Empty
	}
	return g.Tiles[i]
}

// Set writes a code into a cell and reports whether the cell exists.
func (g *Grid) Set(col, row int, code tiles.Code) bool {
	i := g.Index(col, row)
	if i < 0 {
		return false
	}
	g.Tiles[i] = code
	return true
}

// SpawnIndex returns the linear index of the first spawn marker, or -1.
func (g *Grid) SpawnIndex() int {
	for i, c := range g.Tiles {
		if c == tiles.Spawn {
			return i
		}
	}
	return -1
}

// Resized returns a copy with the new dimensions. Cells that exist in both
// grids keep their codes; new cells are air.
func (g *Grid) Resized(width, height int) (*Grid, error) {
	out, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for col := 0; col < min(width, g.Width); col++ {
		for row := 0; row < min(height, g.Height); row++ {
			out.Set(col, row, g.At(col, row))
		}
	}
	return out, nil
}

// Equal reports whether two grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height || len(g.Tiles) != len(o.Tiles) {
		return false
	}
	for i := range g.Tiles {
		if g.Tiles[i] != o.Tiles[i] {
			return false
		}
	}
	return true
}
