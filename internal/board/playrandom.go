package board

import "math/rand"

// isSimpleEye reports whether p is a likely single-point eye for c: every
// orthogonal neighbor is c's stone (or off-board), and of the on-board
// diagonal neighbors at most one is not c's stone (empty or opponent) in
// the middle of the board, and none on the edge or in a corner.
// This is the classic cheap false-eye test (§3 "single-point-eye
// avoidance"), not a full life-and-death judgment -- tactics.IsBadSelfatari
// and friends make the precise calls.
func (b *Board) isSimpleEye(p Point, c Color) bool {
	own := stoneOf(c)
	edge := 0
	ok := true
	b.forEachNeighbor(p, func(q Point) {
		s := b.points[q]
		if s == OffBoard {
			return
		}
		if s != own {
			ok = false
		}
	})
	if !ok {
		return false
	}
	bad := 0
	b.forEachDiagonal(p, func(q Point) {
		s := b.points[q]
		if s == OffBoard {
			edge++
			return
		}
		if s != own {
			bad++
		}
	})
	allow := 1
	if edge > 0 {
		allow = 0
	}
	return bad <= allow
}

// PlayRandom samples a uniformly random legal move for c from the current
// free-point vector, skipping points rejected by permit (if non-nil) or
// judged a simple eye, and commits it with Play. It returns PassPoint with
// a nil error if no free point is acceptable.
//
// Sampling swaps rejected candidates to the end of a shrinking window over
// a separate index slice into b.free, so b.free itself is never reordered;
// building that slice costs O(len(b.free)) per call, after which each
// rejected candidate costs O(1) rather than a full rescan.
func (b *Board) PlayRandom(c Color, permit func(Point) bool, rng *rand.Rand) (Point, MoveResult, error) {
	n := len(b.free)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	window := n
	for window > 0 {
		i := rng.Intn(window)
		p := b.free[order[i]]
		order[i], order[window-1] = order[window-1], order[i]
		window--

		if b.isSimpleEye(p, c) {
			continue
		}
		if permit != nil && !permit(p) {
			continue
		}
		if err := b.Legal(p, c); err != nil {
			continue
		}
		res, err := b.Play(p, c)
		if err != nil {
			continue
		}
		return p, res, nil
	}
	res, _ := b.Play(PassPoint, c)
	return PassPoint, res, nil
}
