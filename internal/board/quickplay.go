package board

// QuickPlay/QuickUndo give tactics readers (ladder search, selfatari
// testing) a cheap speculative move they can always back out of exactly,
// without paying for the peripheral bookkeeping (3x3 pattern codes, the
// free-point vector, neighbor counts, the superko ring) that a real Play
// needs but a few plies of local reading never looks at. Nesting is not
// supported -- finish (QuickUndo) a quick-play before starting another;
// QuickPlay panics if one is already outstanding, matching Play's guard.
type UndoRecord struct {
	points  []Stone
	gid     []GroupID
	next    []Point
	groups  []group
	freeIDs []GroupID

	koPoint     Point
	koColor     Color
	hash        uint64
	lastMove    Point
	lastColor   Color
	secondMove  Point
	secondColor Color
	moveNum     int
	captures    [2]int
}

// QuickPlay plays a move exactly as Play would (same legality rules,
// captures, merges, ko), but skips pattern3/free-list/neighbor-count/
// superko-ring maintenance. Returns an UndoRecord that QuickUndo restores
// from, plus the same MoveResult Play would have returned; the board must
// not be used for a regular Play/another QuickPlay until it is undone.
func (b *Board) QuickPlay(p Point, c Color) (*UndoRecord, MoveResult, error) {
	if b.quickDepth > 0 {
		panic("board: nested QuickPlay is not supported")
	}
	if err := b.Legal(p, c); err != nil {
		return nil, MoveResult{}, err
	}

	rec := &UndoRecord{
		points:      append([]Stone(nil), b.points...),
		gid:         append([]GroupID(nil), b.gid...),
		next:        append([]Point(nil), b.next...),
		groups:      append([]group(nil), b.groups...),
		freeIDs:     append([]GroupID(nil), b.freeIDs...),
		koPoint:     b.koPoint,
		koColor:     b.koColor,
		hash:        b.hash,
		lastMove:    b.lastMove,
		lastColor:   b.lastColor,
		secondMove:  b.secondMove,
		secondColor: b.secondColor,
		moveNum:     b.moveNum,
		captures:    b.captures,
	}

	if p == PassPoint {
		b.secondMove, b.secondColor = b.lastMove, b.lastColor
		b.lastMove, b.lastColor = PassPoint, c
		b.moveNum++
		b.koPoint = NoPoint
		b.quickDepth++
		return rec, MoveResult{KoPoint: NoPoint}, nil
	}

	captured, _ := b.candidateCaptures(p, c)
	newGid, changed, total := b.commitMove(p, c, captured)

	if total == 1 && b.groups[newGid].stones == 1 && b.groups[newGid].libCount == 1 {
		b.koPoint = captured0Point2(changed)
		b.koColor = c.Other()
	} else {
		b.koPoint = NoPoint
	}
	b.captures[c] += total
	b.hash = b.prospectiveHash0(p, c, changed[1:])
	b.secondMove, b.secondColor = b.lastMove, b.lastColor
	b.lastMove, b.lastColor = p, c
	b.moveNum++

	b.quickDepth++
	return rec, MoveResult{Captured: total, KoPoint: b.koPoint}, nil
}

// QuickUndo restores the board to the state captured by rec. rec must be
// the most recent (and only) outstanding QuickPlay's record.
func (b *Board) QuickUndo(rec *UndoRecord) {
	if b.quickDepth == 0 {
		panic("board: QuickUndo with no outstanding QuickPlay")
	}
	copy(b.points, rec.points)
	copy(b.gid, rec.gid)
	copy(b.next, rec.next)
	b.groups = append(b.groups[:0], rec.groups...)
	b.freeIDs = append(b.freeIDs[:0], rec.freeIDs...)
	b.koPoint = rec.koPoint
	b.koColor = rec.koColor
	b.hash = rec.hash
	b.lastMove = rec.lastMove
	b.lastColor = rec.lastColor
	b.secondMove = rec.secondMove
	b.secondColor = rec.secondColor
	b.moveNum = rec.moveNum
	b.captures = rec.captures
	b.quickDepth--
}
