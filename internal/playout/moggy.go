package playout

import (
	"math/rand"

	"github.com/pasky/gogo/internal/board"
	"github.com/pasky/gogo/internal/tactics"
)

// Moggy is the default Policy: the cascaded heuristic move chooser named
// in §4.5, grounded on the original engine's playout/moggy.c move-choice
// order. Each stage either commits a move and returns, or falls through to
// the next.
type Moggy struct {
	Config
}

// NewMoggy builds a Moggy policy from cfg.
func NewMoggy(cfg Config) *Moggy {
	return &Moggy{Config: cfg}
}

// permit is the move-selection cascade's shared legality/quality gate: it
// rejects illegal moves and, with probability SelfatariReject, bad
// self-ataris. It does not check for one-point eyes; only the final
// board.PlayRandom stage skips those, so the earlier stages can fill one.
func (m *Moggy) permit(b *board.Board, p board.Point, c board.Color, rng *rand.Rand) bool {
	if b.Legal(p, c) != nil {
		return false
	}
	if tactics.IsBadSelfatari(b, p, c) && rng.Float64() < m.SelfatariReject {
		return false
	}
	return true
}

// ChooseMove runs the seven-stage cascade (§4.5) and commits the first
// move a stage produces.
func (m *Moggy) ChooseMove(b *board.Board, c board.Color, rng *rand.Rand) (board.Point, error) {
	if p, ok := m.koFight(b, c, rng); ok {
		return commit(b, p, c)
	}
	if p, ok := m.localAtariResponse(b, c, rng); ok {
		return commit(b, p, c)
	}
	if p, ok := m.localTwoLibSetup(b, c, rng); ok {
		return commit(b, p, c)
	}
	if p, ok := m.localPatternMatch(b, c, rng); ok {
		return commit(b, p, c)
	}
	if p, ok := m.globalAtariResponse(b, c, rng); ok {
		return commit(b, p, c)
	}
	if p, ok := m.fillBoard(b, c, rng); ok {
		return commit(b, p, c)
	}
	p, _, err := b.PlayRandom(c, func(q board.Point) bool { return m.permit(b, q, c, rng) }, rng)
	return p, err
}

func commit(b *board.Board, p board.Point, c board.Color) (board.Point, error) {
	if _, err := b.Play(p, c); err != nil {
		return board.NoPoint, err
	}
	return p, nil
}

// koFight: if a ko was just taken within KoAge plies and the position
// still flags one, retake or extend locally with probability p_ko.
func (m *Moggy) koFight(b *board.Board, c board.Color, rng *rand.Rand) (board.Point, bool) {
	// Freshness is approximated by requiring the ko point to still be
	// flagged at all -- board clears it as soon as it's no longer a live
	// ko, so any live ko counts as "fresh" within this cascade.
	p, _ := b.KoPoint()
	if p == board.NoPoint {
		return board.NoPoint, false
	}
	if rng.Float64() >= m.KoFightProb {
		return board.NoPoint, false
	}
	if m.permit(b, p, c, rng) {
		return p, true
	}
	return board.NoPoint, false
}

// localAtariResponse: the opponent's last move put one of c's local
// groups in atari; extend that group at its single liberty, if permit
// allows it, rather than answering every group in atari. Capturing an
// adjacent attacker to save the group is not tried.
func (m *Moggy) localAtariResponse(b *board.Board, c board.Color, rng *rand.Rand) (board.Point, bool) {
	if rng.Float64() >= m.LocalAtariProb {
		return board.NoPoint, false
	}
	last, _ := b.LastMove()
	if last == board.NoPoint || last == board.PassPoint {
		return board.NoPoint, false
	}
	for _, q := range neighborsOf(b, last) {
		if b.At(q) != stoneOf(c) {
			continue
		}
		g := b.GroupAt(q)
		if b.GroupLibs(g) != 1 {
			continue
		}
		p := b.GroupLiberties(g)[0]
		if m.permit(b, p, c, rng) {
			return p, true
		}
	}
	return board.NoPoint, false
}

// localTwoLibSetup: a group adjacent to the last move has exactly two
// liberties; try reducing it to atari.
func (m *Moggy) localTwoLibSetup(b *board.Board, c board.Color, rng *rand.Rand) (board.Point, bool) {
	if rng.Float64() >= m.LocalTwoLibProb {
		return board.NoPoint, false
	}
	last, _ := b.LastMove()
	if last == board.NoPoint || last == board.PassPoint {
		return board.NoPoint, false
	}
	for _, q := range neighborsOf(b, last) {
		if b.At(q) != stoneOf(c.Other()) {
			continue
		}
		g := b.GroupAt(q)
		if b.GroupLibs(g) != 2 {
			continue
		}
		for _, p := range b.GroupLiberties(g) {
			if m.permit(b, p, c, rng) {
				return p, true
			}
		}
	}
	return board.NoPoint, false
}

// localPatternMatch: scan the 3x3 neighborhoods around the last two moves
// for a recognized tactical shape (tactics.Match3x3).
func (m *Moggy) localPatternMatch(b *board.Board, c board.Color, rng *rand.Rand) (board.Point, bool) {
	if rng.Float64() >= m.PatternProb {
		return board.NoPoint, false
	}
	last, _ := b.LastMove()
	secondLast, _ := b.SecondLastMove()
	for _, center := range []board.Point{last, secondLast} {
		if center == board.NoPoint || center == board.PassPoint {
			continue
		}
		for _, p := range neighborsAndDiagonalsOf(b, center) {
			if b.At(p) != board.Empty {
				continue
			}
			if !tactics.Match3x3(b, p, c) {
				continue
			}
			if m.permit(b, p, c, rng) {
				return p, true
			}
		}
	}
	return board.NoPoint, false
}

// globalAtariResponse: rare fallback scanning every group on the board in
// atari, not just ones local to the last move (§4.5: "rare but needed to
// avoid systematic losses").
func (m *Moggy) globalAtariResponse(b *board.Board, c board.Color, rng *rand.Rand) (board.Point, bool) {
	if rng.Float64() >= m.GlobalAtariProb {
		return board.NoPoint, false
	}
	for _, p := range tactics.OneLibMoves(b, c) {
		if m.permit(b, p, c, rng) {
			return p, true
		}
	}
	for _, p := range tactics.OneLibMoves(b, c.Other()) {
		if m.permit(b, p, c, rng) {
			return p, true
		}
	}
	return board.NoPoint, false
}

// fillBoard: up to FillBoardTries attempts, try a random empty point whose
// 8 neighbors are all empty -- useful for middle-game diversity (§4.5).
func (m *Moggy) fillBoard(b *board.Board, c board.Color, rng *rand.Rand) (board.Point, bool) {
	free := b.FreePoints()
	if len(free) == 0 {
		return board.NoPoint, false
	}
	for i := 0; i < m.FillBoardTries; i++ {
		p := free[rng.Intn(len(free))]
		if !allEmpty(b, neighborsAndDiagonalsOf(b, p)) {
			continue
		}
		if m.permit(b, p, c, rng) {
			return p, true
		}
	}
	return board.NoPoint, false
}

func allEmpty(b *board.Board, pts []board.Point) bool {
	for _, p := range pts {
		if b.At(p) != board.Empty {
			return false
		}
	}
	return true
}

func stoneOf(c board.Color) board.Stone {
	if c == board.White {
		return board.StoneWhite
	}
	return board.StoneBlack
}

func neighborsOf(b *board.Board, p board.Point) []board.Point {
	x, y := b.XY(p)
	out := make([]board.Point, 0, 4)
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		out = append(out, b.PointAt(x+d[0], y+d[1]))
	}
	return out
}

func neighborsAndDiagonalsOf(b *board.Board, p board.Point) []board.Point {
	x, y := b.XY(p)
	out := make([]board.Point, 0, 8)
	for _, d := range [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		out = append(out, b.PointAt(x+d[0], y+d[1]))
	}
	return out
}
