package tactics

import "github.com/pasky/gogo/internal/board"

// IsSeki reports whether two opposite-color groups are in a mutual-life
// standoff: both have two or fewer liberties, and those liberty sets are
// identical. Neither side can fill a shared liberty without putting its
// own group into the same atari it would be inflicting, so neither ever
// does -- the classic shared-liberty seki shape (grounded on the
// teacher-pack's original seki detector, which runs the same "shared
// liberty set, neither side has an outside liberty" test before falling
// back to deeper reading).
func IsSeki(b *board.Board, g1, g2 board.GroupID) bool {
	if b.GroupColor(g1) == b.GroupColor(g2) {
		return false
	}
	libs1 := b.GroupLiberties(g1)
	libs2 := b.GroupLiberties(g2)
	if len(libs1) == 0 || len(libs1) > 2 || len(libs2) == 0 || len(libs2) > 2 {
		return false
	}
	return sameSet(libs1, libs2)
}

func sameSet(a, b []board.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for _, p := range a {
		found := false
		for _, q := range b {
			if p == q {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
