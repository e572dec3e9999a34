// Package playout implements the "moggy" playout policy (§4.5): given a
// board and a side to move, pick one legal move using a cascaded set of
// heuristics, and given termination, score the result. It is the one
// package in this module that runs whole games to completion rather than
// reading a handful of moves ahead.
package playout

import (
	"math/rand"

	"github.com/pasky/gogo/internal/board"
)

// Policy chooses and commits the next move during a playout. Implementations
// must be safe to call from a single goroutine at a time; Run gives each
// concurrent playout its own board and its own *rand.Rand, so a Policy
// implementation only needs to be stateless or hold state local to one
// playout (see Moggy, which carries neither -- all state lives on the
// Board it's handed).
//
// ChooseMove plays c's move directly on b (via b.Play or b.PlayRandom) and
// returns the point played -- board.PassPoint if c passed. This mirrors
// board.PlayRandom's own commit-and-report shape rather than separating
// "pick" from "play", since every cascade stage ends by committing a move
// it has already legality-checked.
type Policy interface {
	ChooseMove(b *board.Board, c board.Color, rng *rand.Rand) (board.Point, error)
}

// Config bundles the move-choice cascade's probabilities and the playout's
// termination parameters (§4.5, §7: "no CLI and no environment variables
// of its own" -- callers build one of these and pass it in explicitly).
type Config struct {
	// Move-choice cascade probabilities, tried in this order; the first
	// stage that produces a move wins.
	KoFightProb    float64 // p_ko
	LocalAtariProb float64 // p_lcap
	LocalTwoLibProb float64 // p_atari
	PatternProb    float64 // p_pat
	GlobalAtariProb float64 // p_cap
	FillBoardTries int     // p_fill, expressed as a bounded attempt count

	// SelfatariReject is the permit predicate's selfatari rejection rate
	// (p_sa); 1.0 always rejects a flagged bad selfatari.
	SelfatariReject float64

	// KoAge is how many of the most recent plies count as "a ko was just
	// taken" for the ko-fight stage.
	KoAge int

	// MercyThreshold ends the playout early once one side's score lead
	// (in points) exceeds this, skipping the rest of a hopeless game. Zero
	// disables the mercy rule.
	MercyThreshold float64

	// MaxMoves bounds the playout length (per side, i.e. total plies is
	// roughly 2*MaxMoves); reaching it without two passes forces scoring
	// of whatever position exists.
	MaxMoves int
}

// DefaultConfig returns the moggy policy's default cascade probabilities,
// matching the values spec.md §4.5 cites as defaults.
func DefaultConfig() Config {
	return Config{
		KoFightProb:     0.5,
		LocalAtariProb:  0.5,
		LocalTwoLibProb: 0.5,
		PatternProb:     0.95,
		GlobalAtariProb: 0.1,
		FillBoardTries:  5,
		SelfatariReject: 1.0,
		KoAge:           3,
		MercyThreshold:  0,
		MaxMoves:        500,
	}
}

// Result is the outcome of one playout.
type Result struct {
	// Winner is the color with the higher score; board.NoPoint's zero
	// value for Color (Black) is never ambiguous here since a playout
	// always finishes with FastScore computing a (possibly zero) margin.
	Winner color
	// Margin is the signed point difference, Black minus White, scaled
	// ×2 per §4.5 ("the signed point difference scaled ×2"); a >0 outcome
	// favors black.
	Margin int
	// Moves is the number of plies played before termination, passes
	// and corner fix-up moves included.
	Moves int
}

type color = board.Color

// Run plays one game to completion on b (which is mutated in place --
// callers that need the original position untouched should pass b.Copy())
// starting with c to move, using policy to choose every move, and returns
// the outcome. Termination is two consecutive passes, the mercy rule, or
// MaxMoves being reached.
func Run(b *board.Board, c board.Color, policy Policy, cfg Config, rng *rand.Rand) Result {
	passes := 0
	moves := 0
	for moves < cfg.MaxMoves*2 {
		if cfg.MercyThreshold > 0 {
			if margin := b.FastScore(); margin >= cfg.MercyThreshold || margin <= -cfg.MercyThreshold {
				break
			}
		}

		p, err := policy.ChooseMove(b, c, rng)
		if err != nil {
			// The policy is expected to always find at least a legal
			// pass; a failure degrades to an explicit pass rather than
			// aborting the whole playout.
			p = board.PassPoint
			b.Play(board.PassPoint, c)
		}
		moves++
		if p == board.PassPoint {
			passes++
			if passes >= 2 {
				if fix, ok := cornerFixup(b, c.Other()); ok {
					b.Play(fix, c.Other())
					moves++
					passes = 0
					c = c.Other()
					continue
				}
				break
			}
		} else {
			passes = 0
		}
		c = c.Other()
	}

	margin := b.FastScore()
	winner := board.Black
	if margin < 0 {
		winner = board.White
	}
	scaled := int(margin * 2)
	return Result{Winner: winner, Margin: scaled, Moves: moves}
}
