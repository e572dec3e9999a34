package tactics

import "github.com/pasky/gogo/internal/board"

// MaxLadderDepth bounds the recursive ladder search so a pathological
// chase (or a board-filling bug) can't run away; real ladders resolve
// well before this.
const MaxLadderDepth = 40

// IsLadder reports whether the group g, currently in atari, is caught in
// a ladder: attacker keeps reducing it to one liberty and defender keeps
// extending, with no escape, until either captured (true) or the chase
// runs past depth plies without resolving or defender escapes (false).
// Board state is restored exactly via QuickPlay/QuickUndo; g's GroupID may
// not survive a capture, so callers must not reuse it afterward.
func IsLadder(b *board.Board, g board.GroupID, attacker board.Color, depth int) bool {
	return isLadder(b, g, attacker, depth)
}

func isLadder(b *board.Board, g board.GroupID, attacker board.Color, depth int) bool {
	if depth <= 0 {
		return false
	}
	if b.GroupLibs(g) != 1 {
		return false
	}
	lib := b.GroupLiberties(g)[0]

	rec, res, err := b.QuickPlay(lib, attacker)
	if err != nil {
		return false // attacker cannot even approach: ladder fails
	}
	defer b.QuickUndo(rec)

	if res.Captured > 0 {
		return true // the atari move captured outright
	}

	if b.GroupLibs(g) != 1 {
		return false // defender now has room: escaped
	}
	escape := b.GroupLiberties(g)[0]
	defender := b.GroupColor(g)

	rec2, res2, err2 := b.QuickPlay(escape, defender)
	if err2 != nil {
		return true // defender has no legal extension: captured next move
	}
	defer b.QuickUndo(rec2)

	if res2.Captured > 0 {
		return false // defender captured its way out
	}

	g2 := b.GroupAt(escape)
	return isLadder(b, g2, attacker, depth-1)
}
