package tactics

import "github.com/pasky/gogo/internal/board"

// IsSnapback reports whether g -- a lone stone of color c currently in
// atari -- is a snapback: if the opponent captures it by playing its one
// remaining liberty, the recapturing stone itself ends up with only one
// liberty, walking straight back into atari. A group larger than one
// stone is never treated as a snapback candidate here.
//
// The recapture is simulated on a scratch copy of b (via Board.Copy), not
// QuickPlay/QuickUndo: callers of IsSnapback are themselves usually already
// inside an outstanding QuickPlay (examining the position right after their
// own candidate move), and QuickPlay does not support nesting.
func IsSnapback(b *board.Board, g board.GroupID, c board.Color) bool {
	if b.GroupLibs(g) != 1 || b.GroupSize(g) != 1 {
		return false
	}
	lib := b.GroupLiberties(g)[0]
	other := c.Other()

	scratch := b.Copy()
	if scratch.Legal(lib, other) != nil {
		return false
	}
	res, err := scratch.Play(lib, other)
	if err != nil {
		return false
	}
	if res.Captured == 0 {
		return false // didn't actually capture g: not a snapback
	}
	rg := scratch.GroupAt(lib)
	return scratch.GroupLibs(rg) == 1
}
