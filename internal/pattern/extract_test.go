package pattern

import (
	"testing"

	"github.com/pasky/gogo/internal/board"
)

func testConfig() board.Config {
	return board.Config{Komi: 0, Rules: board.Chinese, Superko: board.SuperkoForbid, SuperkoRing: 64}
}

func play(t *testing.T, b *board.Board, x, y int, c board.Color) {
	t.Helper()
	if _, err := b.Play(b.PointAt(x, y), c); err != nil {
		t.Fatalf("Play(%d,%d,%v): %v", x, y, c, err)
	}
}

func hasFamily(v Vector, fam Family) (Feature, bool) {
	for _, f := range v {
		if f.Family == fam {
			return f, true
		}
	}
	return Feature{}, false
}

func TestExtractCaptureFeature(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	// A lone white stone at (5,5) surrounded on 3 sides by black, one
	// liberty left at (5,4): black playing there captures it.
	play(t, b, 5, 5, board.White)
	play(t, b, 4, 5, board.Black)
	play(t, b, 6, 5, board.Black)
	play(t, b, 5, 6, board.Black)

	e := NewExtractor(nil)
	v := e.Extract(b, b.PointAt(5, 4), board.Black)
	f, ok := hasFamily(v, FamilyCapture)
	if !ok {
		t.Fatalf("expected a capture feature, got %v", v)
	}
	if f.Payload == "" {
		t.Fatalf("expected a non-empty capture payload")
	}
}

func TestExtractSelfatariFeature(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	// Surround (5,5) on three sides with black so a white play there
	// would leave the new stone with one liberty: a bad selfatari.
	play(t, b, 4, 5, board.Black)
	play(t, b, 6, 5, board.Black)
	play(t, b, 5, 4, board.Black)

	e := NewExtractor(nil)
	v := e.Extract(b, b.PointAt(5, 5), board.White)
	if _, ok := hasFamily(v, FamilySelfatari); !ok {
		t.Fatalf("expected a selfatari feature, got %v", v)
	}
}

func TestExtractBorderFeatureAtCorner(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	e := NewExtractor(nil)
	v := e.Extract(b, b.PointAt(1, 1), board.Black)
	f, ok := hasFamily(v, FamilyBorder)
	if !ok {
		t.Fatalf("expected a border feature, got %v", v)
	}
	if f.Payload != "0" {
		t.Fatalf("expected corner border bucket 0, got %s", f.Payload)
	}
}

func TestExtractDistanceFeatureAfterAMove(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	play(t, b, 5, 5, board.Black)

	e := NewExtractor(nil)
	v := e.Extract(b, b.PointAt(5, 6), board.White)
	if _, ok := hasFamily(v, FamilyDistance); !ok {
		t.Fatalf("expected a distance feature once a last move exists, got %v", v)
	}
}

func TestExtractNoDistanceDropsDistanceFamilies(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	play(t, b, 5, 5, board.Black)

	e := NewExtractor(nil)
	v := e.ExtractNoDistance(b, b.PointAt(5, 6), board.White)
	if _, ok := hasFamily(v, FamilyDistance); ok {
		t.Fatalf("expected distance feature to be stripped, got %v", v)
	}
	if _, ok := hasFamily(v, FamilyDistance2); ok {
		t.Fatalf("expected distance2 feature to be stripped, got %v", v)
	}
}

func TestExtractNetFeatureTrapsTwoLibGroup(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	// A lone white stone at (5,5) with exactly two liberties, (5,4) and
	// (5,6); every other neighbor of either liberty is black, so extending
	// either way leaves white in atari with no room. Black's diagonal play
	// at (4,4) is the net move.
	play(t, b, 5, 5, board.White)
	play(t, b, 4, 5, board.Black)
	play(t, b, 6, 5, board.Black)
	play(t, b, 6, 4, board.Black)
	play(t, b, 5, 3, board.Black)
	play(t, b, 4, 6, board.Black)
	play(t, b, 6, 6, board.Black)
	play(t, b, 5, 7, board.Black)

	e := NewExtractor(nil)
	v := e.Extract(b, b.PointAt(4, 4), board.Black)
	if _, ok := hasFamily(v, FamilyNet); !ok {
		t.Fatalf("expected a net feature, got %v", v)
	}
}

func TestExtractNetFeatureMissesWhenGroupCanEscape(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	// Same diagonal shape, but (5,4)'s far side is left open: extending
	// there gives white real room, so this isn't a net.
	play(t, b, 5, 5, board.White)
	play(t, b, 4, 5, board.Black)
	play(t, b, 6, 5, board.Black)

	e := NewExtractor(nil)
	v := e.Extract(b, b.PointAt(4, 4), board.Black)
	if _, ok := hasFamily(v, FamilyNet); ok {
		t.Fatalf("expected no net feature when the group can still escape, got %v", v)
	}
}

func TestExtractDefenceFeatureReinforcesSecondLineGroup(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	// A lone white stone on the second line at (2,5) with two black
	// neighbors and two liberties; white reinforcing at one of those
	// liberties, (2,4), is the defence shape.
	play(t, b, 2, 5, board.White)
	play(t, b, 1, 5, board.Black)
	play(t, b, 3, 5, board.Black)

	e := NewExtractor(nil)
	v := e.Extract(b, b.PointAt(2, 4), board.White)
	if _, ok := hasFamily(v, FamilyDefence); !ok {
		t.Fatalf("expected a defence feature, got %v", v)
	}
}

func TestExtractWedgeFeatureBetweenTwoOpponentStones(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	// Black wedges at the third-line point (3,5), between a lone weak
	// white stone at (4,5) (down to 3 liberties) and white at (3,4), with
	// a friendly black stone at (2,5) behind it.
	play(t, b, 2, 5, board.Black)
	play(t, b, 4, 5, board.White)
	play(t, b, 3, 4, board.White)
	play(t, b, 4, 4, board.Black)

	e := NewExtractor(nil)
	v := e.Extract(b, b.PointAt(3, 5), board.Black)
	if _, ok := hasFamily(v, FamilyWedge); !ok {
		t.Fatalf("expected a wedge feature, got %v", v)
	}
}

func TestExtractNoDistanceBeforeAnyMove(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	e := NewExtractor(nil)
	v := e.Extract(b, b.PointAt(5, 5), board.Black)
	if _, ok := hasFamily(v, FamilyDistance); ok {
		t.Fatalf("expected no distance feature before any move has been played")
	}
}
