package board

import "fmt"

// MoveResult summarizes the effect of a successful Play (§4).
type MoveResult struct {
	Captured int  // opponent stones removed
	KoPoint  Point // the new ko point, or NoPoint
	Superko  bool  // true if this move repeated an earlier position (flag mode)
}

func colorIdx(c Color) int { return int(c) }

func (b *Board) hashIndex(p Point, c Color) int { return int(p)*2 + colorIdx(c) }

func (b *Board) superkoContains(h uint64) bool {
	for i := 0; i < b.ringLen; i++ {
		if b.ring[i] == h {
			return true
		}
	}
	return false
}

func (b *Board) superkoPush(h uint64) {
	if len(b.ring) == 0 {
		return
	}
	if b.ringLen < len(b.ring) {
		b.ring[b.ringLen] = h
		b.ringLen++
		return
	}
	b.ring[b.ringPos] = h
	b.ringPos = (b.ringPos + 1) % len(b.ring)
}

// onBoard reports whether p lies within the playable (non-margin) area.
func (b *Board) onBoard(p Point) bool {
	x, y := b.XY(p)
	return x >= 1 && x <= b.size && y >= 1 && y <= b.size
}

// candidateCaptures collects, for a prospective move of color c at empty
// point p, the distinct opponent groups that would be captured (their only
// liberty is p) and reports whether the move has an immediate liberty of
// its own (an empty neighbor, or a friendly neighbor group with a liberty
// other than p).
func (b *Board) candidateCaptures(p Point, c Color) (captured []GroupID, hasLiberty bool) {
	opp := stoneOf(c.Other())
	own := stoneOf(c)
	seen := make(map[GroupID]bool, 4)
	b.forEachNeighbor(p, func(q Point) {
		switch b.points[q] {
		case Empty:
			hasLiberty = true
		case own:
			if g := b.gid[q]; b.groups[g].libCount > 1 {
				hasLiberty = true
			}
		case opp:
			g := b.gid[q]
			if b.groups[g].libCount == 1 && !seen[g] {
				seen[g] = true
				captured = append(captured, g)
				hasLiberty = true // a capture always supplies a liberty
			}
		}
	})
	return captured, hasLiberty
}

// prospectiveHash computes the Zobrist hash the board would have after
// playing (p,c) and removing the given captured groups, without mutating
// any state -- used to test positional superko before committing.
func (b *Board) prospectiveHash(p Point, c Color, captured []GroupID) uint64 {
	h := b.hash ^ b.hashKeys[b.hashIndex(p, c)]
	for _, g := range captured {
		b.GroupStones(g, func(cp Point) {
			h ^= b.hashKeys[b.hashIndex(cp, c.Other())]
		})
	}
	return h
}

// Legal reports whether color c may play at p (PassPoint is always legal),
// without mutating the board.
func (b *Board) Legal(p Point, c Color) error {
	if p == PassPoint {
		return nil
	}
	if !b.onBoard(p) {
		return fmt.Errorf("board: %w: point off board", ErrIllegal)
	}
	if b.points[p] != Empty {
		return fmt.Errorf("board: %w: point occupied", ErrOccupied)
	}
	if p == b.koPoint && c == b.koColor {
		return fmt.Errorf("board: %w: ko at %d", ErrKo, p)
	}
	captured, hasLiberty := b.candidateCaptures(p, c)
	if !hasLiberty {
		return fmt.Errorf("board: %w: suicide at %d", ErrSuicide, p)
	}
	if b.cfg.Superko == SuperkoForbid {
		h := b.prospectiveHash(p, c, captured)
		if b.superkoContains(h) {
			return fmt.Errorf("board: %w: superko at %d", ErrSuperko, p)
		}
	}
	return nil
}

// Play executes a move (or a pass, via PassPoint) for color c, fully
// maintaining groups, liberties, captures, ko, the free-point vector,
// neighbor counts, 3x3 pattern codes, and the position hash (§4).
func (b *Board) Play(p Point, c Color) (MoveResult, error) {
	if b.quickDepth > 0 {
		panic("board: Play called while a quick-play is outstanding")
	}
	if p == PassPoint {
		b.secondMove, b.secondColor = b.lastMove, b.lastColor
		b.lastMove, b.lastColor = PassPoint, c
		b.moveNum++
		b.koPoint = NoPoint
		return MoveResult{KoPoint: NoPoint}, nil
	}

	captured, hasLiberty := b.candidateCaptures(p, c)
	if !b.onBoard(p) {
		return MoveResult{}, fmt.Errorf("board: %w: point off board", ErrIllegal)
	}
	if b.points[p] != Empty {
		return MoveResult{}, fmt.Errorf("board: %w: point occupied", ErrOccupied)
	}
	if p == b.koPoint && c == b.koColor {
		return MoveResult{}, fmt.Errorf("board: %w: ko at %d", ErrKo, p)
	}
	if !hasLiberty {
		return MoveResult{}, fmt.Errorf("board: %w: suicide at %d", ErrSuicide, p)
	}
	superko := b.superkoContains(b.prospectiveHash(p, c, captured))
	if superko && b.cfg.Superko == SuperkoForbid {
		return MoveResult{}, fmt.Errorf("board: %w: superko at %d", ErrSuperko, p)
	}

	newGid, changed, total := b.commitMove(p, c, captured)

	if total == 1 && b.groups[newGid].stones == 1 && b.groups[newGid].libCount == 1 {
		b.koPoint = captured0Point2(changed)
		b.koColor = c.Other()
	} else {
		b.koPoint = NoPoint
	}

	b.captures[c] += total

	for _, cp := range changed {
		b.forEachNeighbor(cp, func(nq Point) {
			if b.points[nq] != OffBoard {
				b.recomputeNeighborCountAt(nq)
			}
		})
		b.updatePattern3Around(cp)
	}

	b.freeListRemove(p)
	for _, cp := range changed[1:] {
		b.freeListAdd(cp)
	}

	b.hash = b.prospectiveHash0(p, c, changed[1:])
	if b.cfg.Superko != SuperkoOff {
		b.superkoPush(b.hash)
	}

	b.secondMove, b.secondColor = b.lastMove, b.lastColor
	b.lastMove, b.lastColor = p, c
	b.moveNum++

	return MoveResult{Captured: total, KoPoint: b.koPoint, Superko: superko}, nil
}

// captured0Point2 returns the lone captured stone from a commitMove result,
// valid only when exactly one stone total was captured.
func captured0Point2(changed []Point) Point {
	if len(changed) < 2 {
		return NoPoint
	}
	return changed[1]
}

// commitMove places c's stone at p, merges it with adjacent friendly
// groups, removes the given (already-verified-capturable) opponent groups,
// and reopens liberties the captures expose. It mutates only the
// points/gid/next/groups/freeIDs arrays -- no pattern3, free-list,
// neighbor-count, hash, ko or move-counter bookkeeping, so both the full
// Play path and the lighter QuickPlay path can layer their own peripheral
// updates on top of it.
//
// changed[0] is always p; changed[1:] are the captured stones, in the
// order their groups were removed.
func (b *Board) commitMove(p Point, c Color, captured []GroupID) (newGid GroupID, changed []Point, total int) {
	changed = make([]Point, 0, 8)
	changed = append(changed, p)

	b.points[p] = stoneOf(c)
	newGid = b.allocGroup(c, p)
	b.next[p] = p
	b.gid[p] = newGid

	own := stoneOf(c)
	opp := stoneOf(c.Other())
	capSet := make(map[GroupID]bool, len(captured))
	for _, g := range captured {
		capSet[g] = true
	}

	b.forEachNeighbor(p, func(q Point) {
		switch b.points[q] {
		case Empty:
			b.addLiberty(newGid, q)
		case own:
			if g := b.gid[q]; g != newGid {
				b.mergeGroups(newGid, g)
			}
		case opp:
			g := b.gid[q]
			if !capSet[g] {
				b.removeLiberty(g, p)
			}
		}
	})

	for _, g := range captured {
		stones := b.removeGroup(g)
		total += len(stones)
		for _, cp := range stones {
			changed = append(changed, cp)
			b.forEachNeighbor(cp, func(nq Point) {
				if ng := b.gid[nq]; ng != 0 {
					b.addLiberty(ng, cp)
				}
			})
		}
	}
	return newGid, changed, total
}

// prospectiveHash0 recomputes the hash the same way prospectiveHash did,
// from the already-captured stone list, for use after commit (captured
// stones are gone from the board by this point so GroupStones can't be
// replayed against them).
func (b *Board) prospectiveHash0(p Point, c Color, capturedStones []Point) uint64 {
	h := b.hash ^ b.hashKeys[b.hashIndex(p, c)]
	for _, cp := range capturedStones {
		h ^= b.hashKeys[b.hashIndex(cp, c.Other())]
	}
	return h
}
