package tactics

import "github.com/pasky/gogo/internal/board"

// eachGroup walks every occupied point once and invokes fn with each
// distinct group encountered -- the board package has no group directory
// of its own (§3: groups live in an arena indexed by stones, not listed),
// so low-liberty move enumeration walks the grid instead.
func eachGroup(b *board.Board, fn func(board.GroupID)) {
	seen := make(map[board.GroupID]bool)
	for y := 1; y <= b.Size(); y++ {
		for x := 1; x <= b.Size(); x++ {
			p := b.PointAt(x, y)
			if b.At(p) == board.Empty || b.At(p) == board.OffBoard {
				continue
			}
			g := b.GroupAt(p)
			if !seen[g] {
				seen[g] = true
				fn(g)
			}
		}
	}
}

// OneLibMoves returns the single liberty of every group of color target
// that currently has exactly one: the points where the owner must extend
// or the opponent may capture (§4.2's "capture"/"aescape" feature pair).
func OneLibMoves(b *board.Board, target board.Color) []board.Point {
	var out []board.Point
	eachGroup(b, func(g board.GroupID) {
		if b.GroupColor(g) == target && b.GroupLibs(g) == 1 {
			out = append(out, b.GroupLiberties(g)[0])
		}
	})
	return out
}

// TwoLibMoves returns every liberty of groups of color target that
// currently have exactly two: playing one sets (or, for the owner,
// defuses) an atari next move.
func TwoLibMoves(b *board.Board, target board.Color) []board.Point {
	var out []board.Point
	eachGroup(b, func(g board.GroupID) {
		if b.GroupColor(g) == target && b.GroupLibs(g) == 2 {
			out = append(out, b.GroupLiberties(g)...)
		}
	})
	return out
}
