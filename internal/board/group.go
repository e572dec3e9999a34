package board

// This file implements the group/liberty machinery: the group arena with a
// free-list for reuse, the circular next-stone list, and the capped,
// lazily-exact liberty tracking described in §3 ("Group"): up to K
// liberties are kept in a small array; once the tracked count falls to R,
// a full recount over the group's stones refills the array and produces an
// exact count, which is then again maintained incrementally. Exact counts
// are therefore always available exactly when tactics need them (atari,
// two-liberty decisions), without paying for an exact scan on every move.

func (b *Board) allocGroup(c Color, head Point) GroupID {
	var id GroupID
	if n := len(b.freeIDs); n > 0 {
		id = b.freeIDs[n-1]
		b.freeIDs = b.freeIDs[:n-1]
	} else {
		id = GroupID(len(b.groups))
		b.groups = append(b.groups, group{})
	}
	b.groups[id] = group{color: c, head: head, stones: 1, inUse: true}
	return id
}

func (b *Board) freeGroup(id GroupID) {
	b.groups[id] = group{}
	b.freeIDs = append(b.freeIDs, id)
}

// libContains reports whether p is already in a group's tracked liberty
// list (the list is small enough that linear scan beats a set).
func libContains(gr *group, p Point) bool {
	for i := 0; i < gr.libCount && i < K; i++ {
		if gr.libs[i] == p {
			return true
		}
	}
	return false
}

// addLiberty records a newly-adjacent empty point as a liberty, if there is
// room left in the capped list; libCount itself is allowed to exceed the
// storage array. Once the list is full a recount replaces the increment,
// since p may already be one of the untracked liberties.
func (b *Board) addLiberty(id GroupID, p Point) {
	gr := &b.groups[id]
	if libContains(gr, p) {
		return
	}
	if gr.libCount >= K {
		b.recountLiberties(id)
		return
	}
	if gr.libCount < K {
		gr.libs[gr.libCount] = p
	}
	gr.libCount++
}

// removeLiberty drops p from a group's liberty list/count (p has just been
// played on). If the tracked count falls to R or below, the list is no
// longer a reliable sample of all liberties, so it is rebuilt exactly from
// the board.
func (b *Board) removeLiberty(id GroupID, p Point) {
	gr := &b.groups[id]
	removed := false
	for i := 0; i < gr.libCount && i < K; i++ {
		if gr.libs[i] == p {
			last := gr.libCount - 1
			if last < K {
				gr.libs[i] = gr.libs[last]
			} else {
				// libCount > K: the list is already missing some
				// liberties; shrink it but a recount is the only way
				// to know which one took p's place. Force one now.
				gr.libCount--
				b.recountLiberties(id)
				return
			}
			removed = true
			break
		}
	}
	if removed {
		gr.libCount--
	} else if gr.libCount > K {
		// p may have been one of the untracked liberties.
		b.recountLiberties(id)
		return
	}
	if gr.libCount <= R {
		b.recountLiberties(id)
	}
}

// recountLiberties walks every stone of a group and rebuilds its liberty
// list/count exactly, capping storage at K but keeping libCount exact even
// beyond that (mirrors the capped-list discipline of §3).
func (b *Board) recountLiberties(id GroupID) {
	gr := &b.groups[id]
	gr.libCount = 0
	seen := make([]Point, 0, K)
	b.GroupStones(id, func(p Point) {
		b.forEachNeighbor(p, func(q Point) {
			if b.points[q] != Empty {
				return
			}
			for _, s := range seen {
				if s == q {
					return
				}
			}
			seen = append(seen, q)
		})
	})
	gr.libCount = len(seen)
	copy(gr.libs[:], seen)
}

// mergeGroups absorbs src into dst (both must be the same color, already
// verified by the caller) by splicing their circular next-stone lists and
// folding liberty lists/counts; src's id is freed.
func (b *Board) mergeGroups(dst, src GroupID) {
	if dst == src {
		return
	}
	dstG, srcG := &b.groups[dst], &b.groups[src]

	// Splice the two circular lists: swap the successors of the two heads.
	b.next[dstG.head], b.next[srcG.head] = b.next[srcG.head], b.next[dstG.head]

	srcHead := srcG.head
	p := srcHead
	for {
		b.gid[p] = dst
		p = b.next[p]
		if p == srcHead {
			break
		}
	}

	dstG.stones += srcG.stones
	b.freeGroup(src)
	// The merged group's true liberty set can only be known exactly by
	// recounting (the two groups may have shared liberties, which must
	// not be double counted).
	b.recountLiberties(dst)
}

// removeGroup takes every stone of a group off the board (a capture),
// returns each freed stone's color and count for the caller to update
// neighbor counts/pattern3/free-list/hash, and frees the group id.
func (b *Board) removeGroup(id GroupID) []Point {
	gr := &b.groups[id]
	stones := make([]Point, 0, gr.stones)
	b.GroupStones(id, func(p Point) { stones = append(stones, p) })
	for _, p := range stones {
		b.points[p] = Empty
		b.gid[p] = 0
	}
	b.freeGroup(id)
	return stones
}
