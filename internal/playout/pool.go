package playout

import (
	"math/rand"
	"sync"

	"github.com/pasky/gogo/internal/board"
)

// PoolConfig bundles a RunMany call's resource shape: how many playouts to
// run in total and how many goroutines to spread them across.
type PoolConfig struct {
	Samples int
	Workers int
	Seed    uint64
}

// RunMany runs pool.Samples independent playouts from b, split across
// pool.Workers goroutines, and returns every result: a result channel sized
// for the expected total, one goroutine per worker, a sync.WaitGroup plus
// a done channel closed once all workers finish. §5 requires "each thread
// owns a private board", so every worker gets its own b.Copy() before it
// ever touches a board.
func RunMany(b *board.Board, c board.Color, policy Policy, cfg Config, pool PoolConfig) []Result {
	if pool.Workers < 1 {
		pool.Workers = 1
	}
	if pool.Samples < 1 {
		return nil
	}

	resultCh := make(chan Result, pool.Samples)
	var wg sync.WaitGroup

	perWorker := pool.Samples / pool.Workers
	remainder := pool.Samples % pool.Workers

	seed := pool.Seed
	if seed == 0 {
		seed = 1
	}

	for w := 0; w < pool.Workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		if n == 0 {
			continue
		}
		wg.Add(1)
		go runWorker(w, b, c, policy, cfg, n, seed+uint64(w)*0x9E3779B97F4A7C15, resultCh, &wg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(resultCh)
		close(done)
	}()

	results := make([]Result, 0, pool.Samples)
	for {
		select {
		case r, ok := <-resultCh:
			if !ok {
				return results
			}
			results = append(results, r)
		case <-done:
			// resultCh is closed by now; collect whatever is still buffered.
			for r := range resultCh {
				results = append(results, r)
			}
			return results
		}
	}
}

// runWorker runs n playouts, each from its own fresh copy of the starting
// board so playouts never observe each other's mutations.
func runWorker(id int, start *board.Board, c board.Color, policy Policy, cfg Config, n int, seed uint64, resultCh chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()
	rng := rand.New(rand.NewSource(int64(seed)))
	for i := 0; i < n; i++ {
		scratch := start.Copy()
		resultCh <- Run(scratch, c, policy, cfg, rng)
	}
}
