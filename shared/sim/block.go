package sim

import (
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
)

// Block is the collision geometry of one occupied cell. Blocks belong to the
// BlockIndex that built them and are replaced with it.
type Block struct {
	Col, Row   int
	X, Y, W, H float64
	Code       tiles.Code
	tiles.Geometry
}

// Bottom is the y of the block's lower edge.
func (b *Block) Bottom() float64 { return b.Y + b.H }

// Right is the x of the block's right edge.
func (b *Block) Right() float64 { return b.X + b.W }

// lineY is the surface line height at relX pixels from the left edge.
func (b *Block) lineY(relX float64) float64 {
	return gamemath.LineY(b.Bottom(), b.M, b.B, relX)
}

// overlaps is a strict rectangle intersection test.
func (b *Block) overlaps(a *Actor) bool {
	return b.Right() > a.X && b.X < a.X+a.W && b.Bottom() > a.Y && b.Y < a.Y+a.H
}

// BlockRef is a generation-checked handle to a block. The zero value refers
// to nothing.
type BlockRef struct {
	Index      int
	Generation uint64
}

// BlockIndex is the block array derived from a grid, in the grid's
// column-major order. Air cells hold nil.
type BlockIndex struct {
	width, height int
	generation    uint64
	blocks        []*Block
}

// BuildIndex derives blocks for every non-air cell. generation must be
// non-zero and distinct from earlier indexes of the same world so stale
// BlockRefs can be detected.
func BuildIndex(g *leveldata.Grid, generation uint64) *BlockIndex {
	idx := &BlockIndex{
		width:      g.Width,
		height:     g.Height,
		generation: generation,
		blocks:     make([]*Block, len(g.Tiles)),
	}
	for i, code := range g.Tiles {
		if code == tiles.Empty {
			continue
		}
		col, row := i/g.Height, i%g.Height
		idx.blocks[i] = &Block{
			Col:      col,
			Row:      row,
			X:        float64(col * tiles.Size),
			Y:        float64(row * tiles.Size),
			W:        tiles.Size,
			H:        tiles.Size,
			Code:     code,
			Geometry: tiles.Lookup(code),
		}
	}
	return idx
}

// Generation identifies this build.
func (idx *BlockIndex) Generation() uint64 { return idx.generation }

// Width is the grid width in tiles.
func (idx *BlockIndex) Width() int { return idx.width }

// Height is the grid height in tiles.
func (idx *BlockIndex) Height() int { return idx.height }

// At returns the block in a cell, or nil for air and off-grid cells.
func (idx *BlockIndex) At(col, row int) *Block {
	if col < 0 || row < 0 || col >= idx.width || row >= idx.height {
		return nil
	}
	return idx.blocks[col*idx.height+row]
}

// Ref returns a handle to b, which must come from this index.
func (idx *BlockIndex) Ref(b *Block) BlockRef {
	return BlockRef{Index: b.Col*idx.height + b.Row, Generation: idx.generation}
}

// Resolve returns the block a handle points at, or nil when the handle is
// empty or was issued by another build.
func (idx *BlockIndex) Resolve(ref BlockRef) *Block {
	if ref.Generation == 0 || ref.Generation != idx.generation {
		return nil
	}
	if ref.Index < 0 || ref.Index >= len(idx.blocks) {
		return nil
	}
	return idx.blocks[ref.Index]
}

// Each calls fn for every block in storage order.
func (idx *BlockIndex) Each(fn func(b *Block)) {
	for _, b := range idx.blocks {
		if b != nil {
			fn(b)
		}
	}
}

// Len counts the blocks.
func (idx *BlockIndex) Len() int {
	n := 0
	for _, b := range idx.blocks {
		if b != nil {
			n++
		}
	}
	return n
}

// neighborhood visits the cells within r tiles of (col, row), clamped to the
// grid, column outer and row inner.
func (idx *BlockIndex) neighborhood(col, row, r int, fn func(b *Block)) {
	c0, c1 := max(col-r, 0), min(col+r, idx.width-1)
	r0, r1 := max(row-r, 0), min(row+r, idx.height-1)
	for c := c0; c <= c1; c++ {
		for rr := r0; rr <= r1; rr++ {
			if b := idx.blocks[c*idx.height+rr]; b != nil {
				fn(b)
			}
		}
	}
}

// slopeConnected reports whether the line of left ends exactly where the line
// of right begins. Missing blocks are never connected.
func slopeConnected(left, right *Block) bool {
	if left == nil || right == nil {
		return false
	}
	return left.lineY(tiles.Size) == right.lineY(0)
}
