// Package tactics implements the local reading primitives layered on top
// of internal/board: self-atari judgment, the ladder reader, nakade shape
// classification, 1-/2-liberty move enumeration, the dragon (virtually
// connected group) walker, and seki detection (§4.2). IsBadSelfatari and
// IsLadder try candidate moves with board.QuickPlay/QuickUndo, IsSnapback on
// a Board.Copy; the other primitives only read the board.
package tactics

import "github.com/pasky/gogo/internal/board"

// IsBadSelfatari reports whether playing c at p is a self-atari not worth
// making: the resulting group would have exactly one liberty, it captured
// nothing of note, and -- the nuance spec.md's selfatari discussion calls
// out -- the group's other liberties (before this move, when it had three)
// are not adjacent to each other or to p in a way that would have made the
// group dead anyway. A self-atari that captures two or more stones, or
// that leaves a large group in atari deep in a fight, is not flagged here;
// callers layer their own capture-race judgment on top.
func IsBadSelfatari(b *board.Board, p board.Point, c board.Color) bool {
	if b.At(p) != board.Empty {
		return false
	}
	if err := b.Legal(p, c); err != nil {
		return false
	}

	before := otherLibsAdjacent(b, p, c)

	rec, res, err := b.QuickPlay(p, c)
	if err != nil {
		return false
	}
	defer b.QuickUndo(rec)

	g := b.GroupAt(p)
	libs := b.GroupLibs(g)
	if libs != 1 {
		return false
	}
	if res.Captured >= 2 {
		return false // a real capture, not a throwaway
	}
	if b.GroupSize(g) >= 4 {
		return false // sizable group sacrifices are a tactical choice, not noise
	}
	if IsSnapback(b, g, c) {
		return false // the throw-in can't actually be captured for free
	}
	// Three liberties where two are mutually adjacent effectively count as
	// two: the group was already weak, so filling the third is not
	// meaningfully worse than the position already was.
	return !before
}

// otherLibsAdjacent reports whether, before the move, any same-color group
// adjacent to p had exactly three liberties including p, two of which are
// adjacent to each other or to p (so the group's the effective liberty
// count is already reduced) -- the "other_libs_adj" nuance.
func otherLibsAdjacent(b *board.Board, p board.Point, c board.Color) bool {
	seen := map[board.GroupID]bool{}
	found := false
	for _, q := range neighbors(b, p) {
		if b.At(q) != stoneOf(c) {
			continue
		}
		g := b.GroupAt(q)
		if seen[g] || b.GroupLibs(g) != 3 {
			continue
		}
		seen[g] = true
		libs := b.GroupLiberties(g)
		for i := 0; i < len(libs); i++ {
			for j := i + 1; j < len(libs); j++ {
				if b.IsAdjacent(libs[i], libs[j]) {
					found = true
				}
			}
		}
	}
	return found
}

func stoneOf(c board.Color) board.Stone {
	if c == board.White {
		return board.StoneWhite
	}
	return board.StoneBlack
}

// neighbors returns the (up to 4) orthogonal board points around p.
func neighbors(b *board.Board, p board.Point) []board.Point {
	x, y := b.XY(p)
	out := make([]board.Point, 0, 4)
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		out = append(out, b.PointAt(x+d[0], y+d[1]))
	}
	return out
}
