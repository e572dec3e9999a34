// Package board implements the stone/group representation described in
// spec.md §3-§4.1: a padded square grid, incremental group/liberty
// maintenance, move legality (suicide/ko/superko), a quick-play/undo
// shadow path for speculative moves, and the three board scorers.
//
// The board depends on internal/spatial only for its Zobrist hash keys
// (§2); it has no knowledge of tactics, patterns, or playouts.
package board

import (
	"log"

	"github.com/pasky/gogo/internal/spatial"
)

// Color is the side to move or the color of a stone/group.
type Color int8

const (
	Black Color = iota
	White
)

// Other returns the opposing color.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Stone is the occupancy of a single point, sharing the spatial package's
// four-value alphabet.
type Stone = spatial.Stone

const (
	Empty    = spatial.Empty
	StoneBlack = spatial.Black
	StoneWhite = spatial.White
	OffBoard = spatial.OffBoard
)

// stoneOf returns the Stone value for a color's own stones.
func stoneOf(c Color) Stone {
	if c == White {
		return StoneWhite
	}
	return StoneBlack
}

func colorOfStone(s Stone) Color {
	if s == StoneWhite {
		return White
	}
	return Black
}

// Point is an index into the padded grid. PassPoint and ResignPoint are
// sentinels distinct from any real grid index (which are always >= 0).
type Point int32

const (
	PassPoint   Point = -1
	ResignPoint Point = -2
	NoPoint     Point = -3 // "no such point" (e.g. no ko point currently set)
)

// GroupID names a group by an arena index. 0 means "no group" (used for
// empty or off-board points).
type GroupID int32

// Liberty bookkeeping constants (§3 "Group"): at most K known liberties are
// tracked per group; the list is recomputed from the board once it falls to
// R or fewer, so low-liberty groups (the ones tactics actually care about)
// are always exact.
const (
	K = 10
	R = 5
)

// group is the per-group record: color, the capped liberty list/count, the
// head of the group's circular next-stone list, and its stone count.
type group struct {
	color    Color
	libCount int
	libs     [K]Point
	head     Point // any stone in the group; iterate via Board.next
	stones   int
	inUse    bool
}

// Rules selects the scoring ruleset (§3 "Global board state").
type Rules int

const (
	Chinese Rules = iota
	Japanese
	NewZealand
	AGA
	Ing
)

// SuperkoMode selects whether positional superko is enforced or merely
// reported (§3 invariant: "engine-configurable whether a violation is
// forbidden or merely flagged").
type SuperkoMode int

const (
	SuperkoOff SuperkoMode = iota
	SuperkoForbid
	SuperkoFlag
)

// Config holds the per-board parameters a caller supplies: no CLI flags
// live in the core, so this struct is how callers configure a board.
type Config struct {
	Komi        float64
	Rules       Rules
	Superko     SuperkoMode
	SuperkoRing int // ring buffer length; 0 selects a sane default
}

// DefaultConfig returns the conventional Chinese-rules, positional-superko
// configuration.
func DefaultConfig() Config {
	return Config{Komi: 7.5, Rules: Chinese, Superko: SuperkoForbid, SuperkoRing: 512}
}

// Board is a square grid of side N surrounded by a one-point off-board
// margin (§3). Create with NewBoard; a Board is cheap to Copy for
// playouts/speculative lines and must be Copy'd, not shared, across
// goroutines (§5: each thread owns a private board).
type Board struct {
	size   int
	stride int // size + 2
	points []Stone
	gid    []GroupID
	next   []Point // circular next-stone list, valid at occupied points

	groups  []group
	freeIDs []GroupID

	neigh []neighCount // per-point neighbor counts by stone color

	pat3 []uint16 // incremental 3x3 code, meaningful at empty points

	free    []Point // free-point vector
	freeIdx []int32 // point -> index into `free`, -1 if not free

	koPoint Point
	koColor Color

	captures [2]int // captures[c] = stones of color c.Other() captured by c

	lastMove       Point
	lastColor      Color
	secondMove     Point
	secondColor    Color
	moveNum        int
	handicap       int

	hashKeys []uint64 // [point*2 + (0=black,1=white)]
	hash     uint64
	ring     []uint64
	ringLen  int
	ringPos  int

	cfg Config

	quickDepth int // >0 while a quick-play is outstanding (misuse guard)
}

type neighCount struct {
	black, white, off uint8
}

// NewBoard creates an empty board of the given side (<=19) with cfg
// applied. A zero Config means Chinese rules, zero komi and SuperkoOff (no
// superko check); callers that want the conventional defaults should pass
// DefaultConfig().
func NewBoard(size int, cfg Config) *Board {
	if size < 1 || size > 19 {
		log.Fatalf("board: unsupported size %d", size)
	}
	if cfg.SuperkoRing <= 0 {
		cfg.SuperkoRing = 512
	}
	stride := size + 2
	n := stride * stride
	b := &Board{
		size:     size,
		stride:   stride,
		points:   make([]Stone, n),
		gid:      make([]GroupID, n),
		next:     make([]Point, n),
		groups:   make([]group, 1, 64), // index 0 reserved ("no group")
		neigh:    make([]neighCount, n),
		pat3:     make([]uint16, n),
		free:     make([]Point, 0, size*size),
		freeIdx:  make([]int32, n),
		hashKeys: spatial.RandomKeys(0xB0A2DB0A2D000001, n*2),
		ring:     make([]uint64, cfg.SuperkoRing),
		cfg:      cfg,
	}
	b.Clear()
	return b
}

// Clear resets all points and counters, leaving size/config unchanged.
func (b *Board) Clear() {
	for i := range b.points {
		b.points[i] = Empty
		b.gid[i] = 0
	}
	for i := range b.neigh {
		b.neigh[i] = neighCount{}
	}
	for i := range b.pat3 {
		b.pat3[i] = 0
	}
	b.groups = b.groups[:1]
	b.freeIDs = b.freeIDs[:0]
	b.free = b.free[:0]
	for i := range b.freeIdx {
		b.freeIdx[i] = -1
	}
	b.koPoint = NoPoint
	b.captures = [2]int{}
	b.lastMove, b.secondMove = PassPoint, PassPoint
	b.moveNum = 0
	b.handicap = 0
	b.hash = 0
	b.ringLen = 0
	b.ringPos = 0
	b.quickDepth = 0

	for y := 0; y <= b.size+1; y++ {
		for x := 0; x <= b.size+1; x++ {
			p := b.index(x, y)
			if x == 0 || y == 0 || x == b.size+1 || y == b.size+1 {
				b.points[p] = OffBoard
			}
		}
	}
	b.recomputeNeighborCounts()
	b.recomputeFreeList()
	b.recomputeAllPattern3()
}

// Copy returns a deep copy, cheap enough to call once per playout/leaf (§3,
// §5 resource policy).
func (b *Board) Copy() *Board {
	nb := &Board{
		size:     b.size,
		stride:   b.stride,
		points:   append([]Stone(nil), b.points...),
		gid:      append([]GroupID(nil), b.gid...),
		next:     append([]Point(nil), b.next...),
		groups:   append([]group(nil), b.groups...),
		freeIDs:  append([]GroupID(nil), b.freeIDs...),
		neigh:    append([]neighCount(nil), b.neigh...),
		pat3:     append([]uint16(nil), b.pat3...),
		free:     append([]Point(nil), b.free...),
		freeIdx:  append([]int32(nil), b.freeIdx...),
		koPoint:  b.koPoint,
		koColor:  b.koColor,
		captures: b.captures,
		lastMove:    b.lastMove,
		lastColor:   b.lastColor,
		secondMove:  b.secondMove,
		secondColor: b.secondColor,
		moveNum:     b.moveNum,
		handicap:    b.handicap,
		hashKeys: b.hashKeys, // immutable, shared
		hash:     b.hash,
		ring:     append([]uint64(nil), b.ring...),
		ringLen:  b.ringLen,
		ringPos:  b.ringPos,
		cfg:      b.cfg,
	}
	return nb
}

// Size returns the board side N.
func (b *Board) Size() int { return b.size }

// Komi returns the configured komi.
func (b *Board) Komi() float64 { return b.cfg.Komi }

// SetKomi updates the komi.
func (b *Board) SetKomi(k float64) { b.cfg.Komi = k }

// Rules returns the configured ruleset.
func (b *Board) Rules() Rules { return b.cfg.Rules }

// Handicap returns the handicap stone count recorded via SetHandicap.
func (b *Board) Handicap() int { return b.handicap }

// SetHandicap records the handicap count (distinct from the move counter).
func (b *Board) SetHandicap(n int) { b.handicap = n }

// MoveNum returns the number of plays (including passes) made so far.
func (b *Board) MoveNum() int { return b.moveNum }

// LastMove and SecondLastMove return the last two plays made (PassPoint for
// a pass, and also PassPoint before any move has been made), used by ko
// handling and
// pattern distance features.
func (b *Board) LastMove() (Point, Color)       { return b.lastMove, b.lastColor }
func (b *Board) SecondLastMove() (Point, Color) { return b.secondMove, b.secondColor }

// KoPoint returns the current ko point and the color it is forbidden to,
// or (NoPoint, _) if there is none.
func (b *Board) KoPoint() (Point, Color) { return b.koPoint, b.koColor }

// Captures returns the number of opponent stones captured by c so far.
func (b *Board) Captures(c Color) int { return b.captures[c] }

// Hash returns the current position's Zobrist hash.
func (b *Board) Hash() uint64 { return b.hash }

// At returns the occupancy of a point.
func (b *Board) At(p Point) Stone { return b.points[p] }

// index maps (x,y) in [0,size+1] to a padded-grid Point.
func (b *Board) index(x, y int) Point { return Point(y*b.stride + x) }

// XY returns the (x,y) coordinate of a point, each in [1,size] for points
// on-board.
func (b *Board) XY(p Point) (int, int) {
	return int(p) % b.stride, int(p) / b.stride
}

// PointAt is the exported form of index, for callers (tactics, pattern,
// playout) that work in (x,y) coordinates.
func (b *Board) PointAt(x, y int) Point { return b.index(x, y) }

// neighOffsets are the four orthogonal neighbor deltas (§9 "Foreach-neighbor
// iteration": expressed as an inline loop over a fixed small array).
var neighOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// forEachNeighbor calls fn with each of the 4 orthogonal neighbors of p.
func (b *Board) forEachNeighbor(p Point, fn func(Point)) {
	x, y := b.XY(p)
	for _, d := range neighOffsets {
		fn(b.index(x+d[0], y+d[1]))
	}
}

// diagOffsets are the four diagonal neighbor deltas, used by the 3x3
// pattern code and by some tactics (nakade adjacency, dragon walker).
var diagOffsets = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func (b *Board) forEachDiagonal(p Point, fn func(Point)) {
	x, y := b.XY(p)
	for _, d := range diagOffsets {
		fn(b.index(x+d[0], y+d[1]))
	}
}

// IsAdjacent reports whether two points are orthogonal neighbors.
func (b *Board) IsAdjacent(p, q Point) bool {
	px, py := b.XY(p)
	qx, qy := b.XY(q)
	dx, dy := px-qx, py-qy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// GroupAt returns the id of the group occupying p, or 0 if p is empty or
// off-board.
func (b *Board) GroupAt(p Point) GroupID { return b.gid[p] }

// GroupColor, GroupLibs, GroupSize expose per-group queries to tactics and
// patterns (§4.1 "expose group/liberty queries").
func (b *Board) GroupColor(g GroupID) Color { return b.groups[g].color }
func (b *Board) GroupLibs(g GroupID) int    { return b.groups[g].libCount }
func (b *Board) GroupSize(g GroupID) int    { return b.groups[g].stones }

// GroupLiberties returns up to K known liberties of a group. If GroupLibs
// returns more than K, the remaining liberties are untracked (§3).
func (b *Board) GroupLiberties(g GroupID) []Point {
	gr := &b.groups[g]
	return append([]Point(nil), gr.libs[:gr.libCount]...)
}

// GroupStones iterates a group's stones via the circular next-stone list.
func (b *Board) GroupStones(g GroupID, fn func(Point)) {
	gr := &b.groups[g]
	if gr.stones == 0 {
		return
	}
	p := gr.head
	for {
		fn(p)
		p = b.next[p]
		if p == gr.head {
			break
		}
	}
}

// NeighborCount returns the number of orthogonal neighbors of p with the
// given stone color (§3 "Per-point aux state").
func (b *Board) NeighborCount(p Point, s Stone) int {
	nc := b.neigh[p]
	switch s {
	case StoneBlack:
		return int(nc.black)
	case StoneWhite:
		return int(nc.white)
	case OffBoard:
		return int(nc.off)
	default:
		return 4 - int(nc.black) - int(nc.white) - int(nc.off)
	}
}

func (b *Board) recomputeNeighborCounts() {
	for y := 1; y <= b.size; y++ {
		for x := 1; x <= b.size; x++ {
			p := b.index(x, y)
			b.recomputeNeighborCountAt(p)
		}
	}
	// Off-board margin points get no counts: nothing queries them, and
	// their outer neighbors lie outside the padded grid.
}

func (b *Board) recomputeNeighborCountAt(p Point) {
	var nc neighCount
	b.forEachNeighbor(p, func(q Point) {
		switch b.points[q] {
		case StoneBlack:
			nc.black++
		case StoneWhite:
			nc.white++
		case OffBoard:
			nc.off++
		}
	})
	b.neigh[p] = nc
}

func (b *Board) recomputeFreeList() {
	b.free = b.free[:0]
	for y := 1; y <= b.size; y++ {
		for x := 1; x <= b.size; x++ {
			p := b.index(x, y)
			if b.points[p] == Empty {
				b.freeIdx[p] = int32(len(b.free))
				b.free = append(b.free, p)
			} else {
				b.freeIdx[p] = -1
			}
		}
	}
}

// freeListAdd/Remove maintain the free-point vector + reverse index in O(1)
// (§3 "Free-point vector + reverse-map").
func (b *Board) freeListRemove(p Point) {
	idx := b.freeIdx[p]
	if idx < 0 {
		return
	}
	last := len(b.free) - 1
	moved := b.free[last]
	b.free[idx] = moved
	b.freeIdx[moved] = idx
	b.free = b.free[:last]
	b.freeIdx[p] = -1
}

func (b *Board) freeListAdd(p Point) {
	if b.freeIdx[p] >= 0 {
		return
	}
	b.freeIdx[p] = int32(len(b.free))
	b.free = append(b.free, p)
}

// FreePoints returns the current free-point vector. Shared slice: callers
// must not mutate it.
func (b *Board) FreePoints() []Point { return b.free }
