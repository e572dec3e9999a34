package board

// pat3Offsets is the fixed neighbor order used to build the 16-bit 3x3
// pattern code: 4 orthogonal then 4 diagonal, 2 bits each (§4.1). The
// tactics package's 3x3 matcher (decode3x3 in tactics/match3x3.go) unpacks
// the code in this same order, so the two must change together.
var pat3Offsets = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

func pat3Code(s Stone) uint16 {
	switch s {
	case StoneBlack:
		return 1
	case StoneWhite:
		return 2
	case OffBoard:
		return 3
	default:
		return 0
	}
}

// Pattern3At returns the incremental 3x3 neighborhood code around p, valid
// when p is empty (the only state tactics/pattern ever query it in).
func (b *Board) Pattern3At(p Point) uint16 { return b.pat3[p] }

func (b *Board) computePattern3(p Point) uint16 {
	x, y := b.XY(p)
	var code uint16
	for i, d := range pat3Offsets {
		q := b.index(x+d[0], y+d[1])
		code |= pat3Code(b.points[q]) << uint(2*i)
	}
	return code
}

func (b *Board) recomputeAllPattern3() {
	for y := 1; y <= b.size; y++ {
		for x := 1; x <= b.size; x++ {
			p := b.index(x, y)
			if b.points[p] == Empty {
				b.pat3[p] = b.computePattern3(p)
			}
		}
	}
}

// updatePattern3Around recomputes the 3x3 code at every empty point within
// a 3x3 square of p, called after p's occupancy changes (§4.1: "updated
// incrementally around every played/captured point").
func (b *Board) updatePattern3Around(p Point) {
	x, y := b.XY(p)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			q := b.index(x+dx, y+dy)
			if b.points[q] == Empty {
				b.pat3[q] = b.computePattern3(q)
			}
		}
	}
}
