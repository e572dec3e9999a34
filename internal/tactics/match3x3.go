package tactics

import "github.com/pasky/gogo/internal/board"

// shapeCell values used in a shapeTemplate: 'x' the side to move's stone,
// 'o' the opponent's stone, '.' empty, '#' off-board (edge of the grid),
// '?' don't-care.
type shapeTemplate struct {
	name  string
	cells [8]byte // N, E, S, W, NW, NE, SE, SW -- same order as board's Pattern3At
}

// shapeTemplates is a small fixed list of named tactical shapes a candidate
// move point can match, read relative to the side to move. These are
// simplified canonical forms of the classic named shapes the original
// engine's pattern/moggy tables carry (hane, cut, magari/bent, kosumi,
// side hane); not a transcription of its larger shape file, just enough to
// drive the same move-selection cascade.
var shapeTemplates = []shapeTemplate{
	{name: "hane", cells: [8]byte{'o', '.', '.', '.', '.', '.', 'x', '.'}},
	{name: "cut", cells: [8]byte{'.', '.', '.', '.', 'x', 'o', 'x', 'o'}},
	{name: "magari", cells: [8]byte{'o', '.', '.', '.', '.', 'o', '.', 'x'}},
	{name: "kosumi", cells: [8]byte{'.', '.', '.', '.', 'x', '.', '.', '.'}},
	{name: "sidehane", cells: [8]byte{'o', '.', '.', '#', '.', '.', 'x', '.'}},
}

// symOffsets mirrors the (dx,dy) order board.Pattern3At packs into its
// 16-bit code: 4 orthogonal neighbors then 4 diagonal, N E S W NW NE SE SW.
var symOffsets = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

// symTransforms is the dihedral group of the square, same construction as
// the spatial package's symmetry table, applied here to the 8-point ring
// instead of a gridcular circle.
var symTransforms = [8]func(dx, dy int) (int, int){
	func(dx, dy int) (int, int) { return dx, dy },
	func(dx, dy int) (int, int) { return -dy, dx },
	func(dx, dy int) (int, int) { return -dx, -dy },
	func(dx, dy int) (int, int) { return dy, -dx },
	func(dx, dy int) (int, int) { return -dx, dy },
	func(dx, dy int) (int, int) { return dy, dx },
	func(dx, dy int) (int, int) { return dx, -dy },
	func(dx, dy int) (int, int) { return -dy, -dx },
}

var symPerm [8][8]int

func init() {
	offIndex := make(map[[2]int]int, 8)
	for i, o := range symOffsets {
		offIndex[o] = i
	}
	for sym, f := range symTransforms {
		for i, o := range symOffsets {
			tx, ty := f(o[0], o[1])
			j, ok := offIndex[[2]int{tx, ty}]
			if !ok {
				panic("tactics: symmetry maps outside the 3x3 ring")
			}
			symPerm[sym][i] = j
		}
	}
}

// decode3x3 splits a board.Pattern3At code back into its 8 neighbor stones,
// in the same N,E,S,W,NW,NE,SE,SW order.
func decode3x3(code uint16) [8]board.Stone {
	var out [8]board.Stone
	for i := range out {
		out[i] = board.Stone((code >> uint(2*i)) & 3)
	}
	return out
}

func cellMatches(c byte, s board.Stone, mover, other board.Stone) bool {
	switch c {
	case 'x':
		return s == mover
	case 'o':
		return s == other
	case '.':
		return s == board.Empty
	case '#':
		return s == board.OffBoard
	default: // '?'
		return true
	}
}

// match3x3Table[code] is a bitmask: bit 0 set if some shape matches this
// neighborhood with black to move, bit 1 with white to move. Built once at
// package init by trying every shape under every symmetry against every
// possible 3x3 code -- the "precomputed 65536-entry lookup" of §4.4,
// populated from Go-coded shapes instead of a loaded text file.
var match3x3Table [65536]uint8

func init() {
	for code := 0; code < 65536; code++ {
		decoded := decode3x3(uint16(code))
		var mask uint8
		if matchesAnyShape(decoded, board.StoneBlack, board.StoneWhite) {
			mask |= 1
		}
		if matchesAnyShape(decoded, board.StoneWhite, board.StoneBlack) {
			mask |= 2
		}
		match3x3Table[code] = mask
	}
}

func matchesAnyShape(decoded [8]board.Stone, mover, other board.Stone) bool {
	for _, tmpl := range shapeTemplates {
		for sym := 0; sym < 8; sym++ {
			ok := true
			for i := 0; i < 8 && ok; i++ {
				ok = cellMatches(tmpl.cells[symPerm[sym][i]], decoded[i], mover, other)
			}
			if ok {
				return true
			}
		}
	}
	return false
}

// Match3x3 reports whether the empty point p, with c to move, matches one
// of the named tactical shapes -- the move-selection cascade's stage 4
// "local pattern match" (§4.5), its only caller outside tests.
func Match3x3(b *board.Board, p board.Point, c board.Color) bool {
	code := b.Pattern3At(p)
	mask := match3x3Table[code]
	if c == board.Black {
		return mask&1 != 0
	}
	return mask&2 != 0
}
