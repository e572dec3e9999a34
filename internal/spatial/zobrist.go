package spatial

// Zobrist hash tables for spatial pattern matching, precomputed per rotation
// so the hash of any symmetry of a live neighborhood can be read directly,
// without re-rotating the neighborhood at match time (§9 "Spatial hash
// rotations"). Same xorshift64* construction as the board package's
// position-hash keys, seeded for reproducibility.

type prng struct{ state uint64 }

func newPRNG(seed uint64) *prng {
	if seed == 0 {
		seed = 1
	}
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// hashSeed is the fixed PRNG seed for the spatial hash keys. Distinct from
// the board package's position-hash seed so the two hash spaces never
// collide by construction.
const hashSeed = 0xA17A17A17A17A17A

// rotationTable holds, for one radius, a [sym][pointIndex][stoneValue]
// table of independent hash contributions, where pointIndex runs over
// Circle(radius) in canonical order and sym runs over the 8 symmetries.
// rotHash[sym][i][s] is defined as baseHash[perm[sym][i]][s], i.e. the
// contribution for point i under symmetry sym is the base contribution of
// whatever canonical point that symmetry maps point i onto. Reading a live
// neighborhood in natural (unrotated) order through rotHash[sym] therefore
// yields the same hash as rotating the neighborhood by sym and reading it
// through rotHash[0] (=baseHash).
type rotationTable struct {
	radius int
	base   [][4]uint64   // [pointIndex][stoneValue] -> hash
	perm   [8][]int       // [sym][pointIndex] -> canonical pointIndex
}

func buildRotationTable(radius int, rng *prng) *rotationTable {
	offs := Circle(radius)
	index := circleIndex(radius)

	base := make([][4]uint64, len(offs))
	for i := range base {
		for s := 0; s < 4; s++ {
			base[i][s] = rng.next()
		}
	}

	var perm [8][]int
	for sym := 0; sym < NumSymmetries; sym++ {
		perm[sym] = make([]int, len(offs))
		for i, o := range offs {
			tx, ty := symmetries[sym](o.DX, o.DY)
			j, ok := index[Offset{tx, ty}]
			if !ok {
				// Symmetries preserve gridcular distance, so the
				// transformed offset is always in the same circle.
				panic("spatial: symmetry maps outside circle")
			}
			perm[sym][i] = j
		}
	}

	return &rotationTable{radius: radius, base: base, perm: perm}
}

// HashAll computes, for every one of the 8 geometric symmetries and both
// color assignments (16 values total), the hash of the live neighborhood
// given by stoneAt(dx,dy), as read in canonical Circle(radius) order.
func (t *rotationTable) HashAll(stoneAt func(dx, dy int) Stone) [16]uint64 {
	offs := Circle(t.radius)
	live := make([]Stone, len(offs))
	for i, o := range offs {
		live[i] = stoneAt(o.DX, o.DY)
	}

	var out [16]uint64
	for sym := 0; sym < NumSymmetries; sym++ {
		var h, hInv uint64
		perm := t.perm[sym]
		for i, s := range live {
			j := perm[i]
			h ^= t.base[j][s]
			hInv ^= t.base[j][s.Invert()]
		}
		out[sym] = h
		out[sym+8] = hInv
	}
	return out
}

// RandomKeys returns n independent 64-bit values from a fixed-seed PRNG.
// The board package uses this to build its own whole-board Zobrist table
// (one key per point per stone color) -- the one sense in which board
// "depends on spatial dictionary... for the hash tables" (§2): both packages
// hash stone configurations, and both want the same reproducible,
// collision-free construction, so board borrows the generator rather than
// inventing a second one. seed must differ from hashSeed so the two key
// spaces never collide.
func RandomKeys(seed uint64, n int) []uint64 {
	rng := newPRNG(seed)
	out := make([]uint64, n)
	for i := range out {
		out[i] = rng.next()
	}
	return out
}

// Hash returns the canonical (symmetry 0, no color inversion) hash of a
// point list already given in Circle(radius) order -- used when hashing a
// Record directly (e.g. on dictionary load) rather than a live board.
func (t *rotationTable) Hash(points []Stone) uint64 {
	var h uint64
	for i, s := range points {
		h ^= t.base[i][s]
	}
	return h
}
