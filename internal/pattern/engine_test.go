package pattern

import (
	"testing"

	"github.com/pasky/gogo/internal/board"
	"github.com/pasky/gogo/internal/playout"
	"github.com/pasky/gogo/internal/spatial"
)

func TestDistributionSumsToOne(t *testing.T) {
	b := board.NewBoard(5, testConfig())
	play(t, b, 3, 3, board.Black)

	e := NewEngine(NewGammaDict(), spatial.New(), nil)
	dist := e.Distribution(b, board.White)
	if len(dist) == 0 {
		t.Fatalf("expected at least one candidate move")
	}
	sum := 0.0
	for _, p := range dist {
		sum += p
	}
	if sum < 0.99 || sum > 1.01 {
		t.Fatalf("expected probabilities to sum to ~1, got %g", sum)
	}
}

func TestDistributionEmptyWhenNoLegalMoves(t *testing.T) {
	e := NewEngine(NewGammaDict(), spatial.New(), nil)
	// The only point of a 1x1 board has no liberty, so playing it is suicide.
	b := board.NewBoard(1, testConfig())
	dist := e.Distribution(b, board.White)
	if len(dist) != 0 {
		t.Fatalf("expected no legal moves on a 1x1 board, got %v", dist)
	}
}

func TestTopKReturnsHighestGammaFirst(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	play(t, b, 5, 5, board.White)
	play(t, b, 4, 5, board.Black)
	play(t, b, 6, 5, board.Black)
	play(t, b, 5, 6, board.Black)

	gamma := NewGammaDict()
	if err := gamma.Add(Feature{Family: FamilyCapture, Payload: "ladder"}, 1000.0); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	e := NewEngine(gamma, nil, nil)

	top := e.TopK(b, board.Black, 1)
	if len(top) != 1 {
		t.Fatalf("expected exactly 1 move, got %d", len(top))
	}
	if top[0] != b.PointAt(5, 4) {
		t.Fatalf("expected the capturing move (5,4) to rank first, got %v", top[0])
	}
}

func TestTopKZeroReturnsNil(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	e := NewEngine(NewGammaDict(), nil, nil)
	if got := e.TopK(b, board.Black, 0); got != nil {
		t.Fatalf("expected nil for k=0, got %v", got)
	}
}

func TestPrepareOwnerMapPopulatesExtractorAndCache(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenOwnerCache(dir)
	if err != nil {
		t.Fatalf("OpenOwnerCache: %v", err)
	}
	defer cache.Close()

	b := board.NewBoard(5, testConfig())
	play(t, b, 3, 3, board.Black)

	e := NewEngine(NewGammaDict(), nil, cache)
	if e.Extractor.Owner != nil {
		t.Fatalf("expected no ownermap before PrepareOwnerMap")
	}

	policy := playout.NewMoggy(playout.DefaultConfig())
	if err := e.PrepareOwnerMap(b, board.Black, policy, playout.DefaultConfig(), 12, 4); err != nil {
		t.Fatalf("PrepareOwnerMap: %v", err)
	}
	if e.Extractor.Owner == nil {
		t.Fatalf("expected PrepareOwnerMap to populate e.Extractor.Owner")
	}

	// A fresh Engine over the same hash should pick up the cached map
	// rather than resampling: a differing m has no effect on a cache hit.
	e2 := NewEngine(NewGammaDict(), nil, cache)
	if err := e2.PrepareOwnerMap(b, board.Black, policy, playout.DefaultConfig(), 999, 4); err != nil {
		t.Fatalf("PrepareOwnerMap (cached): %v", err)
	}
	if e2.Extractor.Owner.samples != e.Extractor.Owner.samples {
		t.Fatalf("expected cached ownermap sample count %d, got %d", e.Extractor.Owner.samples, e2.Extractor.Owner.samples)
	}
}
