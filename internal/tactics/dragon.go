package tactics

import "github.com/pasky/gogo/internal/board"

// Dragon walks outward from a group along "virtual connections" -- shared
// liberties with other same-color groups -- and returns every group
// (including the start) reachable this way. It approximates the strategic
// notion of a dragon (one fight, one life-and-death unit) without a full
// connection-safety proof: two groups are linked here whenever they share
// at least one liberty, which covers bent and diagonal connections that a
// pure stone-adjacency union would miss. No code in this module calls it
// outside tests; IsSeki and the pattern features work on single chains.
func Dragon(b *board.Board, start board.GroupID) []board.GroupID {
	color := b.GroupColor(start)
	visited := map[board.GroupID]bool{start: true}
	queue := []board.GroupID{start}
	order := []board.GroupID{start}

	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]
		for _, lib := range b.GroupLiberties(g) {
			for _, q := range neighbors(b, lib) {
				if q == lib {
					continue
				}
				if b.At(q) != stoneOf(color) {
					continue
				}
				ng := b.GroupAt(q)
				if visited[ng] {
					continue
				}
				visited[ng] = true
				order = append(order, ng)
				queue = append(queue, ng)
			}
		}
	}
	return order
}
