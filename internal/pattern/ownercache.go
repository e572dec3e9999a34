package pattern

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// ownerRecord is the JSON payload stored per cached position: one sample
// count plus per-point counts, keyed by board Zobrist hash.
type ownerRecord struct {
	Samples int          `json:"samples"`
	Counts  []ownerCount `json:"counts"`
}

// OwnerCache persists accumulated OwnerMap counters across process
// restarts of a long-running session, keyed by board hash -- the one
// mcowner feature that legitimately benefits from durable caching (ADD-3):
// an embedded badger.DB with an Update/View-with-JSON-payload shape.
type OwnerCache struct {
	db *badger.DB
}

// OpenOwnerCache opens (creating if absent) a badger database at dir for
// ownermap caching.
func OpenOwnerCache(dir string) (*OwnerCache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &OwnerCache{db: db}, nil
}

// Close closes the underlying database.
func (c *OwnerCache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func ownerCacheKey(hash uint64) []byte {
	return []byte(fmt.Sprintf("ownermap:%016x", hash))
}

// Load fetches a previously-saved OwnerMap for the given board hash and
// size, returning ok=false on a cache miss.
func (c *OwnerCache) Load(hash uint64, size int) (*OwnerMap, bool, error) {
	var rec ownerRecord
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(ownerCacheKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, false, err
	}
	if rec.Counts == nil {
		return nil, false, nil
	}
	om := NewOwnerMap(size)
	om.samples = rec.Samples
	copy(om.counts, rec.Counts)
	return om, true, nil
}

// Save persists om under the given board hash.
func (c *OwnerCache) Save(hash uint64, om *OwnerMap) error {
	rec := ownerRecord{Samples: om.samples, Counts: om.counts}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(ownerCacheKey(hash), data)
	})
}
