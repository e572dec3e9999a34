package pattern

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/pasky/gogo/internal/board"
	"github.com/pasky/gogo/internal/playout"
)

// OwnerMap accumulates, over M light playouts from one position, how many
// times each intersection ended up owned by each color (§4.4's mcowner
// feature). Counts are plain uint32s guarded by atomic adds so many
// playout workers can report into the same map concurrently.
type OwnerMap struct {
	size    int
	samples int
	counts  []ownerCount // len == (size+2)*(size+2), indexed by board.Point; margin entries stay zero
}

type ownerCount struct {
	Black uint32 `json:"b"`
	White uint32 `json:"w"`
}

// NewOwnerMap allocates an empty map sized for a board of the given size.
func NewOwnerMap(size int) *OwnerMap {
	return &OwnerMap{size: size, counts: make([]ownerCount, (size+2)*(size+2))}
}

// Sample runs M light playouts from b (each from its own copy, spread over
// its own pool of workers goroutines) using policy, and accumulates final-board
// ownership into the map. M is accuracy-mode-sized by the caller (§4.4:
// "M ~= 500 in accuracy mode, ~= 100 in speed mode").
//
// If cache is non-nil, Sample first checks it for a saved map keyed by hash
// (typically b.Hash()) and, on a hit, adopts the cached counts instead of
// re-sampling; on a miss it samples as usual and then saves the result back
// to cache under hash. cache may be nil to skip caching entirely.
func (om *OwnerMap) Sample(b *board.Board, c board.Color, policy playout.Policy, cfg playout.Config, m, workers int, cache *OwnerCache, hash uint64) error {
	if cache != nil {
		if cached, ok, err := cache.Load(hash, om.size); err != nil {
			return err
		} else if ok {
			om.samples = cached.samples
			copy(om.counts, cached.counts)
			return nil
		}
	}

	if workers < 1 {
		workers = 1
	}
	var mu sync.Mutex
	counted := func(scratch *board.Board) {
		owners, _, _ := scratch.FullScore()
		mu.Lock()
		om.samples++
		for p, owner := range owners {
			switch owner {
			case board.OwnerBlack:
				atomic.AddUint32(&om.counts[p].Black, 1)
			case board.OwnerWhite:
				atomic.AddUint32(&om.counts[p].White, 1)
			}
		}
		mu.Unlock()
	}

	var wg sync.WaitGroup
	perWorker := m / workers
	remainder := m % workers
	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		if n == 0 {
			continue
		}
		wg.Add(1)
		go func(n int, seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < n; i++ {
				scratch := b.Copy()
				playout.Run(scratch, c, policy, cfg, rng)
				counted(scratch)
			}
		}(n, int64(w)*0x9E3779B1+1)
	}
	wg.Wait()

	if cache != nil {
		return cache.Save(hash, om)
	}
	return nil
}

// Bucket returns the mcowner feature's bucketed frequency for p being
// owned by c at the end of the sampled playouts: min(8, count*8/samples).
func (om *OwnerMap) Bucket(p board.Point, c board.Color) int {
	if om.samples == 0 {
		return 0
	}
	cnt := om.counts[p]
	var n uint32
	if c == board.Black {
		n = cnt.Black
	} else {
		n = cnt.White
	}
	bucket := int(n) * 8 / om.samples
	if bucket > 8 {
		bucket = 8
	}
	return bucket
}

// ApproxScore gives a quick "B+n.n (approx)"-style signed score estimate
// from whatever samples have accumulated so far, without waiting for a
// full batch -- ADD-4, grounded on the original engine's ownermap.c
// approximate-score helper. It is a convenience, not a replacement for
// internal/board's official scorer.
func (om *OwnerMap) ApproxScore(komi float64) float64 {
	if om.samples == 0 {
		return -komi
	}
	var black, white float64
	for _, cnt := range om.counts {
		black += float64(cnt.Black) / float64(om.samples)
		white += float64(cnt.White) / float64(om.samples)
	}
	return black - white - komi
}
