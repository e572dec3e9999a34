// Command gobench is a caller-side benchmark harness for the engine core
// (ADD-6): it loads a gamma dictionary (when given), builds a board, runs N
// playouts with the default moggy policy, and reports playouts/sec, the
// total number of moves played and black's win rate. No spatial dictionary
// is loaded (an empty one is built). It is a thin driver, not part of the
// core -- the core itself has no CLI of its own (§6).
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pasky/gogo/internal/board"
	"github.com/pasky/gogo/internal/pattern"
	"github.com/pasky/gogo/internal/playout"
	"github.com/pasky/gogo/internal/spatial"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	boardSize  = flag.Int("size", 9, "board size")
	samples    = flag.Int("samples", 1000, "number of playouts to run")
	workers    = flag.Int("workers", 4, "number of concurrent playout workers")
	komi       = flag.Float64("komi", 7.5, "komi")
	gammaFile  = flag.String("gammas", "", "path to a gamma dictionary text file (optional)")
	seed       = flag.Uint64("seed", 1, "RNG seed")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	dict := spatial.New()
	gammas := pattern.NewGammaDict()
	if *gammaFile != "" {
		f, err := os.Open(*gammaFile)
		if err != nil {
			log.Fatalf("gobench: could not open gamma file: %v", err)
		}
		defer f.Close()
		if err := gammas.Load(f); err != nil {
			log.Fatalf("gobench: could not load gamma file: %v", err)
		}
		log.Printf("gobench: loaded %d gammas from %s", gammas.Len(), *gammaFile)
	} else {
		log.Printf("gobench: no gamma file given, running with default gammas")
	}
	_ = pattern.NewEngine(gammas, dict, nil) // built for parity with a real caller; unused by the raw playout benchmark below

	cfg := board.Config{Komi: *komi, Rules: board.Chinese, Superko: board.SuperkoForbid, SuperkoRing: 512}
	b := board.NewBoard(*boardSize, cfg)
	policy := playout.NewMoggy(playout.DefaultConfig())

	log.Printf("gobench: running %d playouts on a %dx%d board across %d workers", *samples, *boardSize, *boardSize, *workers)

	start := time.Now()
	results := playout.RunMany(b, board.Black, policy, playout.DefaultConfig(), playout.PoolConfig{
		Samples: *samples,
		Workers: *workers,
		Seed:    *seed,
	})
	elapsed := time.Since(start)

	var totalMoves int
	var blackWins int
	for _, r := range results {
		totalMoves += r.Moves
		if r.Winner == board.Black {
			blackWins++
		}
	}

	rate := float64(len(results)) / elapsed.Seconds()
	log.Printf("gobench: %d playouts in %s (%.1f playouts/sec, %s total moves)",
		len(results), elapsed, rate, humanize.Comma(int64(totalMoves)))
	log.Printf("gobench: black won %d/%d (%.1f%%)", blackWins, len(results), 100*float64(blackWins)/float64(len(results)))
}
