package spatial

import "sync"

// Dictionary is the indexed, hashed store of stone configurations for
// radii MinRadius..MaxRadius. It is built once at startup and, per §5, is
// safe for concurrent read-only use by many threads afterwards; the
// mutex below only guards the (rare, startup-time) Add/Load path.
type Dictionary struct {
	mu      sync.RWMutex
	tables  map[int]*rotationTable   // radius -> rotation hash table
	byHash  map[int]map[uint64]*Record // radius -> canonical hash -> record
	nextID  uint32
}

// New creates an empty dictionary and precomputes the Zobrist rotation
// tables for every supported radius.
func New() *Dictionary {
	d := &Dictionary{
		tables: make(map[int]*rotationTable),
		byHash: make(map[int]map[uint64]*Record),
		nextID: 1, // index 0 is reserved, per §6
	}
	rng := newPRNG(hashSeed)
	for r := MinRadius; r <= MaxRadius; r++ {
		d.tables[r] = buildRotationTable(r, rng)
		d.byHash[r] = make(map[uint64]*Record)
	}
	return d
}

func (d *Dictionary) table(radius int) *rotationTable {
	t, ok := d.tables[radius]
	if !ok {
		panic("spatial: unsupported radius")
	}
	return t
}

// Lookup returns the record stored for (radius, hash), where hash is one of
// the 16 values returned by HashCandidate/HashAll for a live neighborhood.
func (d *Dictionary) Lookup(radius int, hash uint64) (Record, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r, ok := d.byHash[radius][hash]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// HashCandidate computes the 16 symmetry/color-inversion hashes of the live
// neighborhood around a point, for matching against the dictionary at the
// given radius. Callers normally try all 16 and keep the first hit.
func (d *Dictionary) HashCandidate(radius int, stoneAt func(dx, dy int) Stone) [16]uint64 {
	return d.table(radius).HashAll(stoneAt)
}

// Match looks up the live neighborhood against every symmetry/color
// variant and returns the stored record plus which variant index (0-15)
// matched, if any.
func (d *Dictionary) Match(radius int, stoneAt func(dx, dy int) Stone) (rec Record, variant int, ok bool) {
	hashes := d.HashCandidate(radius, stoneAt)
	for i, h := range hashes {
		if r, found := d.Lookup(radius, h); found {
			return r, i, true
		}
	}
	return Record{}, -1, false
}

// Add inserts a record, folding it against any existing equivalent record
// (by symmetry/color inversion) so that the same physical configuration
// always maps to one ID: "first ID encountered wins" (§4.3). Returns the
// (possibly pre-existing) ID.
func (d *Dictionary) Add(radius int, points []Stone) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := circleIndex(radius)
	canon := canonicalForm(radius, func(dx, dy int) Stone {
		if i, ok := idx[Offset{dx, dy}]; ok {
			return points[i]
		}
		return Empty
	})
	h := d.table(radius).Hash(canon)
	if r, ok := d.byHash[radius][h]; ok {
		return r.ID
	}
	rec := &Record{ID: d.nextID, Radius: radius, Points: canon}
	d.nextID++
	d.byHash[radius][h] = rec
	return rec.ID
}

// Len returns the number of distinct records stored for a radius.
func (d *Dictionary) Len(radius int) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byHash[radius])
}
