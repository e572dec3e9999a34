package tactics

import "github.com/pasky/gogo/internal/board"

// MaxNakadeSize is the largest enclosed empty region this package will
// attempt to classify as a killable (one-vital-point) nakade shape. Larger
// eye spaces are alive regardless of where the defender fills.
const MaxNakadeSize = 6

// NakadePoint classifies an enclosed empty region (as found by a caller's
// flood fill of a dead group's surrounding space) and returns the single
// point whose occupation, by the attacker, reduces it to dead shape, if
// the region has one. The classification is purely shape-based: how many
// other region points each point is orthogonally adjacent to.
//
//   - size 1: the point itself.
//   - size 2: no nakade -- two independent eyes, alive.
//   - size 3: the point adjacent to the other two ("straight/bent three").
//   - size 4: only the "bent four" shape (one point touching the other
//     three) has a vital point; a 2x2 square is unconditionally alive.
//   - size 5: "bulky five" (one point touching 3, one touching 1) or
//     "cross five" (one point touching all 4 others).
//   - size 6: "rabbity six" (one point touching 4, three touching 2 each).
//
// Anything else (including regions bigger than MaxNakadeSize) reports ok=false.
func NakadePoint(b *board.Board, region []board.Point) (vital board.Point, ok bool) {
	n := len(region)
	if n == 0 || n > MaxNakadeSize {
		return board.NoPoint, false
	}
	if n == 1 {
		return region[0], true
	}

	degree := make(map[board.Point]int, n)
	for _, p := range region {
		degree[p] = 0
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if b.IsAdjacent(region[i], region[j]) {
				degree[region[i]]++
				degree[region[j]]++
			}
		}
	}

	counts := make(map[int][]board.Point)
	for p, d := range degree {
		counts[d] = append(counts[d], p)
	}

	switch n {
	case 2:
		return board.NoPoint, false
	case 3:
		if len(counts[2]) == 1 {
			return counts[2][0], true
		}
	case 4:
		if len(counts[3]) == 1 {
			return counts[3][0], true
		}
	case 5:
		if len(counts[3]) == 1 && len(counts[1]) == 1 {
			return counts[3][0], true // bulky five
		}
		if len(counts[4]) == 1 {
			return counts[4][0], true // cross five
		}
	case 6:
		if len(counts[4]) == 1 && len(counts[2]) == 3 {
			return counts[4][0], true // rabbity six
		}
	}
	return board.NoPoint, false
}

// EnclosedRegion flood-fills the empty region containing p, stopping at
// any occupied point (the caller already knows the surrounding stones are
// the dead group's killing wall; this just enumerates the pocket).
func EnclosedRegion(b *board.Board, p board.Point) []board.Point {
	visited := map[board.Point]bool{p: true}
	stack := []board.Point{p}
	var region []board.Point
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, q)
		for _, nb := range neighbors(b, q) {
			if b.At(nb) == board.Empty && !visited[nb] {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return region
}

// NakadeDeadShape reports whether filling the enclosed region containing p
// with a single stone (at the vital point NakadePoint finds) leaves the
// region dead: true when the region classifies as a killable nakade shape
// at all, since the vital point, once taken, leaves no second eye.
func NakadeDeadShape(b *board.Board, p board.Point) bool {
	region := EnclosedRegion(b, p)
	_, ok := NakadePoint(b, region)
	return ok
}
