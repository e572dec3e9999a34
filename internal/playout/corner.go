package playout

import "github.com/pasky/gogo/internal/board"
import "github.com/pasky/gogo/internal/tactics"

// cornerFixup guards against scoring a playout that ends with an unsettled
// corner bent-three or bent-four still on the board: a shape small enough
// that both sides passed without anyone bothering to resolve it, but which
// official scoring (and a human opponent) would not accept as dead as-is.
// Grounded on the original engine's moggy.c fillboard/"double ko" corner
// guard (ADD-4). Only empty regions of two or three points that touch a
// corner are examined; for three points the move returned is
// tactics.NakadePoint's vital point, while two-point regions get no move,
// because NakadePoint reports no vital point for them.
func cornerFixup(b *board.Board, c board.Color) (board.Point, bool) {
	size := b.Size()
	corners := []board.Point{
		b.PointAt(1, 1), b.PointAt(size, 1),
		b.PointAt(1, size), b.PointAt(size, size),
	}
	for _, corner := range corners {
		if b.At(corner) != board.Empty {
			continue
		}
		region := tactics.EnclosedRegion(b, corner)
		if len(region) < 2 || len(region) > 3 {
			continue
		}
		vital, ok := tactics.NakadePoint(b, region)
		if !ok {
			continue
		}
		if b.Legal(vital, c) == nil {
			return vital, true
		}
	}
	return board.NoPoint, false
}
