// Package spatial implements the indexed, hashed dictionary of stone
// configurations in gridcular circles used by the pattern/prior engine.
// It owns the Zobrist tables used for spatial hashing and has no
// dependency on the board package: callers supply stone values through
// a small callback rather than a *board.Board.
package spatial

import "fmt"

// Stone is the occupancy of one point in a spatial pattern, using the same
// four-value alphabet as the board package (kept as a distinct type here
// so this package has zero dependency on it, per the component design).
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
	OffBoard
)

func (s Stone) String() string {
	switch s {
	case Empty:
		return "."
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return "#"
	}
}

// Invert swaps Black and White, leaving Empty/OffBoard unchanged. Records
// are normalized to black-to-play, so matching as white requires inverting
// the live neighborhood (or, equivalently, the stored record).
func (s Stone) Invert() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return s
	}
}

// MinRadius and MaxRadius bound the gridcular circle radii this dictionary
// indexes, per §4.3.
const (
	MinRadius = 2
	MaxRadius = 10
)

// Offset is a point relative to the pattern center.
type Offset struct{ DX, DY int }

// GridcularDistance is dx + dy + max(dx, dy), the metric that defines
// circular neighborhoods on the square grid (see GLOSSARY).
func GridcularDistance(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	m := dx
	if dy > m {
		m = dy
	}
	return dx + dy + m
}

// circleCache memoizes the canonical offset ordering per radius: all
// offsets at gridcular distance in [1, radius], sorted by (distance, dy, dx)
// for a stable, reproducible point order (matches the text file format's
// requirement that stone strings have a fixed per-radius point order).
var circleCache = map[int][]Offset{}

// Circle returns the canonical, sorted list of offsets within gridcular
// distance `radius` of the center (excluding the center itself). The slice
// is shared and must not be mutated by callers.
func Circle(radius int) []Offset {
	if c, ok := circleCache[radius]; ok {
		return c
	}
	var offs []Offset
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if d := GridcularDistance(dx, dy); d <= radius {
				offs = append(offs, Offset{dx, dy})
			}
		}
	}
	sortOffsets(offs)
	circleCache[radius] = offs
	return offs
}

func sortOffsets(offs []Offset) {
	// Simple insertion sort: the lists are small (<=100 for radius 10) and
	// this runs once per radius, memoized.
	for i := 1; i < len(offs); i++ {
		j := i
		for j > 0 && less(offs[j], offs[j-1]) {
			offs[j], offs[j-1] = offs[j-1], offs[j]
			j--
		}
	}
}

func less(a, b Offset) bool {
	da, db := GridcularDistance(a.DX, a.DY), GridcularDistance(b.DX, b.DY)
	if da != db {
		return da < db
	}
	if a.DY != b.DY {
		return a.DY < b.DY
	}
	return a.DX < b.DX
}

// PointCount returns the number of points in the radius-d circle, i.e. the
// length of a Record's Points slice for that radius.
func PointCount(radius int) int {
	return len(Circle(radius))
}

var circleIndexCache = map[int]map[Offset]int{}

// circleIndex returns the offset->index map for Circle(radius), memoized.
func circleIndex(radius int) map[Offset]int {
	if idx, ok := circleIndexCache[radius]; ok {
		return idx
	}
	offs := Circle(radius)
	idx := make(map[Offset]int, len(offs))
	for i, o := range offs {
		idx[o] = i
	}
	circleIndexCache[radius] = idx
	return idx
}

// symmetries is the dihedral group of the square (4 rotations x mirror),
// each entry a transform of (dx,dy) that preserves GridcularDistance.
var symmetries = [8]func(dx, dy int) (int, int){
	func(dx, dy int) (int, int) { return dx, dy },
	func(dx, dy int) (int, int) { return -dy, dx },
	func(dx, dy int) (int, int) { return -dx, -dy },
	func(dx, dy int) (int, int) { return dy, -dx },
	func(dx, dy int) (int, int) { return dx, -dy },
	func(dx, dy int) (int, int) { return -dy, -dx },
	func(dx, dy int) (int, int) { return -dx, dy },
	func(dx, dy int) (int, int) { return dy, dx },
}

// NumSymmetries is len(symmetries), exported for iteration by callers.
const NumSymmetries = 8

// Record is a stored spatial pattern: the stone configuration of the
// radius-d gridcular circle around some center, normalized to black to
// play. Two records are equivalent (and therefore share an ID) if one is
// obtained from the other by a symmetry and/or color inversion.
type Record struct {
	ID     uint32
	Radius int
	Points []Stone // len == PointCount(Radius), in Circle(Radius) order
}

func (r Record) String() string {
	b := make([]byte, len(r.Points))
	for i, s := range r.Points {
		b[i] = s.String()[0]
	}
	return fmt.Sprintf("%d %d %s", r.ID, r.Radius, b)
}

// canonicalBytes returns the byte encoding used to compare/order the 16
// symmetry x color-inversion variants of a point list when picking the
// canonical representative.
func canonicalBytes(points []Stone) []byte {
	b := make([]byte, len(points))
	for i, s := range points {
		b[i] = byte(s)
	}
	return b
}

// variants returns all 16 equivalent forms of a configuration: for each of
// the 8 geometric symmetries, the stone values re-read in the canonical
// offset order of that symmetry, times the 2 color assignments.
func variants(radius int, stoneAt func(dx, dy int) Stone) [16][]Stone {
	offs := Circle(radius)
	var out [16][]Stone
	for sym := 0; sym < NumSymmetries; sym++ {
		pts := make([]Stone, len(offs))
		for i, o := range offs {
			tx, ty := symmetries[sym](o.DX, o.DY)
			pts[i] = stoneAt(tx, ty)
		}
		out[sym] = pts
		inv := make([]Stone, len(pts))
		for i, s := range pts {
			inv[i] = s.Invert()
		}
		out[sym+8] = inv
	}
	return out
}

// canonicalForm picks the lexicographically smallest of the 16 equivalent
// variants, so that any symmetric/color-inverted reading of the same
// physical configuration normalizes to one record.
func canonicalForm(radius int, stoneAt func(dx, dy int) Stone) []Stone {
	vs := variants(radius, stoneAt)
	best := vs[0]
	bestBytes := canonicalBytes(best)
	for i := 1; i < len(vs); i++ {
		bb := canonicalBytes(vs[i])
		if lessBytes(bb, bestBytes) {
			best, bestBytes = vs[i], bb
		}
	}
	return best
}

func lessBytes(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
