package bolt

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/boltdb/bolt"
)

var counterKey = []byte("last_id")

// Allocator mints ids from the persistent counter bucket. Read, increment
// and persist happen in one write transaction, so ids are unique even with
// concurrent callers. A missing key reads as zero, making the first id 1.
type Allocator struct {
	db *bolt.DB
}

func NewAllocator(s *Store) *Allocator {
	return &Allocator{db: s.db}
}

func (a *Allocator) Next(_ context.Context) (uint64, error) {
	var id uint64
	err := a.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(counterBucket))
		if v := b.Get(counterKey); v != nil {
			id = binary.BigEndian.Uint64(v)
		}
		id++
		return b.Put(counterKey, itob(id))
	})
	if err != nil {
		return 0, fmt.Errorf("increment id counter: %w", err)
	}
	return id, nil
}
