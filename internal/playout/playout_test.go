package playout

import (
	"math/rand"
	"testing"

	"github.com/pasky/gogo/internal/board"
)

func testConfig() board.Config {
	return board.Config{Komi: 7.5, Rules: board.Chinese, Superko: board.SuperkoForbid, SuperkoRing: 64}
}

func TestMoggyRunTerminates(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	policy := NewMoggy(DefaultConfig())
	rng := rand.New(rand.NewSource(1))

	res := Run(b, board.Black, policy, DefaultConfig(), rng)
	if res.Moves == 0 {
		t.Fatalf("expected a playout with at least one move")
	}
	if res.Winner != board.Black && res.Winner != board.White {
		t.Fatalf("expected a definite winner, got %v", res.Winner)
	}
}

func TestMoggyNeverPlaysOnOccupiedPoint(t *testing.T) {
	b := board.NewBoard(5, testConfig())
	policy := NewMoggy(DefaultConfig())
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		c := board.Black
		if i%2 == 1 {
			c = board.White
		}
		before := b.MoveNum()
		if _, err := policy.ChooseMove(b, c, rng); err != nil {
			t.Fatalf("ChooseMove failed: %v", err)
		}
		if b.MoveNum() != before+1 {
			t.Fatalf("expected exactly one move to be committed")
		}
	}
}

func TestRunManyProducesAllSamples(t *testing.T) {
	b := board.NewBoard(7, testConfig())
	policy := NewMoggy(DefaultConfig())

	results := RunMany(b, board.Black, policy, DefaultConfig(), PoolConfig{Samples: 12, Workers: 4, Seed: 7})
	if len(results) != 12 {
		t.Fatalf("expected 12 results, got %d", len(results))
	}
}

func TestMercyRuleEndsPlayoutEarly(t *testing.T) {
	b := board.NewBoard(9, testConfig())
	policy := NewMoggy(DefaultConfig())
	rng := rand.New(rand.NewSource(3))

	cfg := DefaultConfig()
	cfg.MercyThreshold = 0.01 // trips as soon as komi alone decides it
	res := Run(b, board.Black, policy, cfg, rng)
	if res.Moves >= cfg.MaxMoves*2 {
		t.Fatalf("expected the mercy rule to end the playout well before the move budget")
	}
}
