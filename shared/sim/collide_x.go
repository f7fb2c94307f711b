package sim

import "github.com/automoto/tilerun/shared/tiles"

// climbsToward reports whether a neighbour slope rises into the shared edge,
// which makes a flat block's wall on that side redundant. side is -1 for the
// left neighbour and +1 for the right one.
func climbsToward(n *Block, side int) bool {
	if n == nil || n.M == 0 {
		return false
	}
	if side < 0 {
		return (n.SlopeSurface() && n.M > 0) || (!n.SlopeSurface() && n.M < 0)
	}
	return (n.SlopeSurface() && n.M < 0) || (!n.SlopeSurface() && n.M > 0)
}

func pushRight(a *Actor, b *Block) {
	a.X = b.Right()
	a.XVel = 0
}

func pushLeft(a *Actor, b *Block) {
	a.X = b.X - a.W
	a.XVel = 0
}

// collideX resolves horizontal overlap with one block. Floor slopes only
// block from their tall side, and never when another slope continues them.
func collideX(a *Actor, b *Block, idx *BlockIndex) {
	if !b.Solid || !b.overlaps(a) {
		return
	}
	left := idx.At(b.Col-1, b.Row)
	right := idx.At(b.Col+1, b.Row)

	switch {
	case b.M == 0:
		if a.X > b.X {
			if !climbsToward(right, +1) {
				pushRight(a, b)
			}
		} else if !climbsToward(left, -1) {
			pushLeft(a, b)
		}

	case b.M > 0:
		if b.SlopeSurface() {
			if a.Bottom() > b.lineY(tiles.Size) && a.Right() > b.Right() && a.XVel < 0 {
				if right == nil || right.M >= 0 {
					pushRight(a, b)
				}
			}
		} else if a.Y < b.lineY(0) && a.X < b.X && a.XVel > 0 {
			pushLeft(a, b)
		}

	default:
		if b.SlopeSurface() {
			if a.Bottom() > b.lineY(0) && a.X < b.X && a.XVel > 0 {
				if left == nil || left.M <= 0 {
					pushLeft(a, b)
				}
			}
		} else if a.Y < b.lineY(tiles.Size) && a.Right() > b.Right() && a.XVel < 0 {
			pushRight(a, b)
		}
	}
}
