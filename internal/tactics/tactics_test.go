package tactics

import (
	"testing"

	"github.com/pasky/gogo/internal/board"
)

func cfg() board.Config {
	return board.Config{Komi: 0, Rules: board.Chinese, Superko: board.SuperkoForbid, SuperkoRing: 64}
}

func play(t *testing.T, b *board.Board, x, y int, c board.Color) {
	t.Helper()
	if _, err := b.Play(b.PointAt(x, y), c); err != nil {
		t.Fatalf("Play(%d,%d,%v): %v", x, y, c, err)
	}
}

func TestLadderWithoutBreakerCaptures(t *testing.T) {
	b := board.NewBoard(9, cfg())
	// A lone black stone in the corner area, chased by white along the
	// edge with no breaker stones anywhere: the ladder must succeed.
	play(t, b, 2, 2, board.Black)
	play(t, b, 1, 2, board.White)
	play(t, b, 2, 1, board.White)
	// black now has two liberties (3,2) and (2,3); force atari first move
	play(t, b, 3, 2, board.White)

	g := b.GroupAt(b.PointAt(2, 2))
	if b.GroupLibs(g) != 1 {
		t.Fatalf("expected the chased stone to be in atari, got %d libs", b.GroupLibs(g))
	}
	if !IsLadder(b, g, board.White, MaxLadderDepth) {
		t.Fatalf("expected an unbroken ladder to capture the stone")
	}
}

func TestLadderRequiresAtari(t *testing.T) {
	b := board.NewBoard(9, cfg())
	play(t, b, 2, 2, board.Black)
	play(t, b, 1, 2, board.White)
	play(t, b, 2, 1, board.White)
	// Only two sides closed in: the black stone has two liberties, not one.
	g := b.GroupAt(b.PointAt(2, 2))
	if b.GroupLibs(g) != 2 {
		t.Fatalf("expected 2 liberties before atari, got %d", b.GroupLibs(g))
	}
	if IsLadder(b, g, board.White, MaxLadderDepth) {
		t.Fatalf("a group not in atari cannot be in a ladder")
	}
}

func TestLadderEscapesWithBreakerAdjacentToChase(t *testing.T) {
	b := board.NewBoard(9, cfg())
	play(t, b, 2, 2, board.Black)
	play(t, b, 1, 2, board.White)
	play(t, b, 2, 1, board.White)
	// A black breaker stone already sits on (2,3), the point the chased
	// stone would have to extend to, so it merges with the chased stone;
	// white's (3,2) then leaves the merged group three liberties.
	play(t, b, 2, 3, board.Black)
	play(t, b, 3, 2, board.White)

	g := b.GroupAt(b.PointAt(2, 2))
	// The two black stones merged into one group by the (2,3) placement;
	// it now has more than one liberty, so it is not even in atari.
	if b.GroupLibs(g) == 1 {
		t.Fatalf("expected the merged group to have escaped atari")
	}
	if IsLadder(b, g, board.White, MaxLadderDepth) {
		t.Fatalf("expected no ladder once the group merged out of atari")
	}
}

func TestNakadeCrossFive(t *testing.T) {
	b := board.NewBoard(9, cfg())
	// Cross-five dead shape: the center point touches all 4 other region
	// points.
	//   . X .
	//   X X X
	//   . X .
	// region points: center (3,3), up (3,4), down (3,2), left (2,3),
	// right (4,3).
	region := []board.Point{
		b.PointAt(3, 3), b.PointAt(3, 4), b.PointAt(3, 2), b.PointAt(2, 3), b.PointAt(4, 3),
	}
	vital, ok := NakadePoint(b, region)
	if !ok {
		t.Fatalf("expected cross-five to classify as nakade")
	}
	if vital != b.PointAt(3, 3) {
		t.Fatalf("expected vital point (3,3), got %v", vital)
	}
}

func TestNakadeTwoSpaceIsAlive(t *testing.T) {
	b := board.NewBoard(9, cfg())
	region := []board.Point{b.PointAt(3, 3), b.PointAt(4, 3)}
	if _, ok := NakadePoint(b, region); ok {
		t.Fatalf("a two-point eye space must not classify as nakade")
	}
}
