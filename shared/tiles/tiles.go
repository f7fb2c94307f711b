// Package tiles holds the static tile-code table shared by the level codec,
// the collision core and the renderer. Saved levels reference codes
// positionally, so the table below is part of the level format.
package tiles

// Size is the edge length of one tile in pixels.
const Size = 32

// Code identifies a tile type. Codes index a 16x16 tile sheet.
type Code int

// Well-known codes.
const (
	Empty  Code = 0
	Ground Code = 2  // plain floor used by generated levels
	Icy    Code = 25 // low friction, raised max speed
	Spawn  Code = 49 // player spawn marker, never drawn in play mode

	// SheetCodes is the number of codes addressable on the tile sheet.
	SheetCodes = 256
)

// Kind tags the collision geometry of a tile.
type Kind int

const (
	KindFlat Kind = iota
	KindSlopeFloor
	KindSlopeCeiling
)

func (k Kind) String() string {
	switch k {
	case KindSlopeFloor:
		return "slope_floor"
	case KindSlopeCeiling:
		return "slope_ceiling"
	default:
		return "flat"
	}
}

// Geometry is the collision shape of one tile: the local surface line is
// y = bottom - M*relX - B where relX is measured from the tile's left edge.
type Geometry struct {
	Kind  Kind
	M     float64
	B     float64
	Solid bool
}

// SlopeSurface reports whether the tile is walkable from above. Ceiling
// slopes are the only tiles that are not.
func (g Geometry) SlopeSurface() bool {
	return g.Kind != KindSlopeCeiling
}

// IsSlope reports whether the tile has a non-zero gradient.
func (g Geometry) IsSlope() bool {
	return g.Kind != KindFlat
}

type slopeFamily struct {
	floor   []Code
	ceiling []Code
	m, b    float64
}

// slopeFamilies lists every sloped code. Each family has a floor variant and
// a paired ceiling variant sharing the same line.
var slopeFamilies = []slopeFamily{
	{floor: []Code{7, 24}, ceiling: []Code{15, 35}, m: 1, b: 0},
	{floor: []Code{10, 26}, ceiling: []Code{16, 34}, m: -1, b: Size},
	{floor: []Code{11, 27}, ceiling: []Code{17, 36}, m: 0.5, b: 0},
	{floor: []Code{12, 28}, ceiling: []Code{18, 37}, m: 0.5, b: Size / 2},
	{floor: []Code{13, 29}, ceiling: []Code{19, 31}, m: -0.5, b: Size},
	{floor: []Code{14, 30}, ceiling: []Code{20, 32}, m: -0.5, b: Size / 2},
}

var (
	table [SheetCodes]Geometry

	nonSolid = map[Code]bool{}
	gentle   = map[Code]bool{24: true, 26: true, 27: true, 28: true, 29: true, 30: true}
)

func init() {
	nonSolid[Empty] = true
	for c := Code(38); c <= Spawn; c++ {
		nonSolid[c] = true
	}

	for i := range table {
		table[i] = Geometry{Kind: KindFlat, M: 0, B: Size, Solid: !nonSolid[Code(i)]}
	}
	for _, fam := range slopeFamilies {
		for _, c := range fam.floor {
			table[c] = Geometry{Kind: KindSlopeFloor, M: fam.m, B: fam.b, Solid: !nonSolid[c]}
		}
		for _, c := range fam.ceiling {
			table[c] = Geometry{Kind: KindSlopeCeiling, M: fam.m, B: fam.b, Solid: !nonSolid[c]}
		}
	}
}

// Lookup returns the geometry for a code. Codes outside the sheet behave like
// a plain solid block.
func Lookup(c Code) Geometry {
	if c < 0 || int(c) >= SheetCodes {
		return Geometry{Kind: KindFlat, M: 0, B: Size, Solid: true}
	}
	return table[c]
}

// IsGentle reports whether a slope code grants the flat speed bonus
// regardless of its steepness.
func IsGentle(c Code) bool {
	return gentle[c]
}

// IsIcy reports whether the code is the low-friction floor.
func IsIcy(c Code) bool {
	return c == Icy
}
