package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// defaultGamma is used for any feature the dictionary has no entry for
// (an unseen spatial ID, for instance): neutral weight, neither boosting
// nor suppressing the move.
const defaultGamma = 1.0

// GammaDict maps a (family, payload) feature to its learned gamma,
// loaded once at startup from a text file and read-only afterwards
// (§5: safe for concurrent read-only use once built, the same contract
// as internal/spatial.Dictionary).
type GammaDict struct {
	values map[uint64]float64
}

// NewGammaDict returns an empty dictionary; entries are added with Add or
// Load.
func NewGammaDict() *GammaDict {
	return &GammaDict{values: make(map[uint64]float64)}
}

func gammaKey(f Feature) uint64 {
	return xxhash.Sum64String(f.key())
}

// Add inserts the gamma for a feature. Re-adding the same value is a
// no-op; a duplicate definition of the same key with a different value is
// rejected with an error and the stored value is kept, per §4.4's
// "completeness check" -- the load-time table is expected to name each
// singleton pattern exactly once.
func (d *GammaDict) Add(f Feature, gamma float64) error {
	k := gammaKey(f)
	if existing, ok := d.values[k]; ok && existing != gamma {
		return fmt.Errorf("pattern: conflicting gamma for %s: %g vs %g", f, existing, gamma)
	}
	d.values[k] = gamma
	return nil
}

// Gamma returns the learned gamma for f, or defaultGamma if unseen.
func (d *GammaDict) Gamma(f Feature) float64 {
	if g, ok := d.values[gammaKey(f)]; ok {
		return g
	}
	return defaultGamma
}

// Len returns the number of distinct features with a learned gamma.
func (d *GammaDict) Len() int { return len(d.values) }

// Load reads the gamma dictionary text format: one "<family> <payload>
// <gamma>" triple per line, '#'-prefixed lines and blanks ignored. A
// payload of "-" is stored as the empty payload; Gamma does not fall back
// to that entry for other payloads of the same family.
func (d *GammaDict) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("pattern: malformed gamma line %q", line)
		}
		payload := fields[1]
		if payload == "-" {
			payload = ""
		}
		gamma, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return fmt.Errorf("pattern: bad gamma %q: %w", fields[2], err)
		}
		if err := d.Add(Feature{Family: Family(fields[0]), Payload: payload}, gamma); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ProductGamma multiplies the per-feature gammas of v, the move's overall
// weight before normalization (§4.4: "the gamma of an extracted feature
// vector is the product of per-feature gammas").
func (d *GammaDict) ProductGamma(v Vector) float64 {
	g := 1.0
	for _, f := range v {
		g *= d.Gamma(f)
	}
	return g
}
