package tactics

import (
	"testing"

	"github.com/pasky/gogo/internal/board"
)

func TestIsBadSelfatariFlagsThrowawayStone(t *testing.T) {
	b := board.NewBoard(9, cfg())
	// Three black stones surround (5,5) on three sides, leaving one
	// liberty: white playing there is a pure throwaway self-atari.
	play(t, b, 4, 5, board.Black)
	play(t, b, 6, 5, board.Black)
	play(t, b, 5, 4, board.Black)

	if !IsBadSelfatari(b, b.PointAt(5, 5), board.White) {
		t.Fatalf("expected a lone stone dropped into atari to be flagged bad")
	}
}

func TestIsBadSelfatariAllowsRealCapture(t *testing.T) {
	b := board.NewBoard(9, cfg())
	// White group of two stones in atari at (5,5)-(5,6); black plays on
	// white's last liberty at (5,4) and captures both stones, which is not
	// a throwaway.
	play(t, b, 5, 5, board.White)
	play(t, b, 5, 6, board.White)
	play(t, b, 4, 5, board.Black)
	play(t, b, 6, 5, board.Black)
	play(t, b, 4, 6, board.Black)
	play(t, b, 6, 6, board.Black)
	play(t, b, 5, 7, board.Black)

	if IsBadSelfatari(b, b.PointAt(5, 4), board.Black) {
		t.Fatalf("a move capturing two or more stones should not be flagged bad")
	}
}

func TestIsBadSelfatariAllowsGenuineSnapback(t *testing.T) {
	b := board.NewBoard(9, cfg())
	// Three white stones wall in (5,5) on three sides, leaving (5,6) as the
	// lone liberty; black stones wall in (5,6)'s other three neighbors so
	// that white capturing at (5,6) leaves its own recapturing stone with
	// only the just-vacated (5,5) as a liberty -- a genuine snapback, not a
	// free throwaway.
	play(t, b, 4, 5, board.White)
	play(t, b, 6, 5, board.White)
	play(t, b, 5, 4, board.White)
	play(t, b, 4, 6, board.Black)
	play(t, b, 6, 6, board.Black)
	play(t, b, 5, 7, board.Black)

	if IsBadSelfatari(b, b.PointAt(5, 5), board.Black) {
		t.Fatalf("a genuine snapback throw-in should not be flagged bad")
	}
}

func TestIsBadSelfatariRejectsOccupiedPoint(t *testing.T) {
	b := board.NewBoard(9, cfg())
	play(t, b, 5, 5, board.Black)
	if IsBadSelfatari(b, b.PointAt(5, 5), board.White) {
		t.Fatalf("an occupied point can never be a selfatari candidate")
	}
}

func TestDragonMergesGroupsSharingALiberty(t *testing.T) {
	b := board.NewBoard(9, cfg())
	// Two separate black stones, diagonal to each other, sharing the
	// liberties (4,3) and (3,4): a virtual (diagonal) connection.
	play(t, b, 3, 3, board.Black)
	play(t, b, 4, 4, board.Black)

	g1 := b.GroupAt(b.PointAt(3, 3))
	g2 := b.GroupAt(b.PointAt(4, 4))
	if g1 == g2 {
		t.Fatalf("test setup expects two distinct single-stone groups")
	}

	members := Dragon(b, g1)
	found := false
	for _, g := range members {
		if g == g2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the dragon walk to reach the diagonally-connected group, got %v", members)
	}
}

func TestIsSekiRejectsGroupsWithOwnLiberties(t *testing.T) {
	b := board.NewBoard(9, cfg())
	// Two single-stone groups of opposite color, each with four liberties
	// of its own and none in common: far from the two-or-fewer shared
	// liberties a seki needs.
	play(t, b, 3, 3, board.Black)
	play(t, b, 3, 5, board.White)

	g1 := b.GroupAt(b.PointAt(3, 3))
	g2 := b.GroupAt(b.PointAt(3, 5))
	if IsSeki(b, g1, g2) {
		t.Fatalf("two groups with disjoint liberty sets are not seki")
	}
}

func TestIsSekiRejectsSameColorGroups(t *testing.T) {
	b := board.NewBoard(9, cfg())
	play(t, b, 3, 3, board.Black)
	play(t, b, 3, 5, board.Black)
	g1 := b.GroupAt(b.PointAt(3, 3))
	g2 := b.GroupAt(b.PointAt(3, 5))
	if IsSeki(b, g1, g2) {
		t.Fatalf("same-color groups can never be in seki with each other")
	}
}

func TestOneLibMovesFindsGroupInAtari(t *testing.T) {
	b := board.NewBoard(9, cfg())
	play(t, b, 5, 5, board.White)
	play(t, b, 4, 5, board.Black)
	play(t, b, 6, 5, board.Black)
	play(t, b, 5, 6, board.Black)

	libs := OneLibMoves(b, board.White)
	if len(libs) != 1 || libs[0] != b.PointAt(5, 4) {
		t.Fatalf("expected exactly one capturing liberty at (5,4), got %v", libs)
	}
}

func TestTwoLibMovesFindsBothLiberties(t *testing.T) {
	b := board.NewBoard(9, cfg())
	play(t, b, 5, 5, board.White)
	play(t, b, 4, 5, board.Black)
	play(t, b, 6, 5, board.Black)

	libs := TwoLibMoves(b, board.White)
	if len(libs) != 2 {
		t.Fatalf("expected 2 liberties, got %v", libs)
	}
}

func TestMatch3x3RecognizesHaneAndItsRotations(t *testing.T) {
	b := board.NewBoard(9, cfg())
	// An opponent stone directly north of the candidate point and a
	// friendly stone at the SE diagonal: the canonical hane template.
	play(t, b, 5, 4, board.White) // north of (5,5)
	play(t, b, 6, 6, board.Black) // SE diagonal of (5,5)

	if !Match3x3(b, b.PointAt(5, 5), board.Black) {
		t.Fatalf("expected the hane shape to match with black to move")
	}

	// The same shape turned a quarter turn: opponent stone to the east,
	// friendly stone at the SW diagonal.
	r := board.NewBoard(9, cfg())
	play(t, r, 6, 5, board.White) // east of (5,5)
	play(t, r, 4, 6, board.Black) // SW diagonal of (5,5)

	if !Match3x3(r, r.PointAt(5, 5), board.Black) {
		t.Fatalf("expected the rotated hane shape to match with black to move")
	}
}

func TestMatch3x3NoMatchOnEmptyNeighborhood(t *testing.T) {
	b := board.NewBoard(9, cfg())
	if Match3x3(b, b.PointAt(5, 5), board.Black) {
		t.Fatalf("an empty 3x3 neighborhood should not match any tactical shape")
	}
}
