// Package bolt persists timber and sale records in a single BoltDB file.
//
// Each record kind lives in its own bucket keyed by big-endian u64 id, so
// cursor iteration yields records in ascending id order. Values are JSON
// encoded and bounded at maxRecordSize bytes. The id counter occupies a
// third bucket, independent of both record buckets, and the bucket names
// must stay stable across restarts for persisted data to remain reachable.
package bolt

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/JosephThuku/timberyard/internal/domain"
)

const (
	counterBucket = "id_counter"
	timberBucket  = "timbers"
	saleBucket    = "sales"
)

// maxRecordSize bounds the encoded size of a single stored record.
const maxRecordSize = 1024

// ErrRecordTooLarge is returned when an encoded record exceeds maxRecordSize.
var ErrRecordTooLarge = errors.New("encoded record exceeds size bound")

// Store wraps the database file shared by the repositories and the id
// allocator.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path and ensures all buckets
// exist. Bucket creation is idempotent, so Open is safe on every startup.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{counterBucket, timberBucket, saleBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

func itob(id uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], id)
	return b[:]
}

// table provides the ordered u64-keyed map operations for one record kind.
// kind names the record in not-found errors.
type table[T any] struct {
	db     *bolt.DB
	bucket []byte
	kind   string
}

func (t *table[T]) get(id uint64) (T, error) {
	var rec T
	err := t.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(t.bucket).Get(itob(id))
		if v == nil {
			return &domain.NotFoundError{Kind: t.kind, ID: id}
		}
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("decode %s id=%d: %w", t.kind, id, err)
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (t *table[T]) put(tx *bolt.Tx, id uint64, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s id=%d: %w", t.kind, id, err)
	}
	if len(data) > maxRecordSize {
		return fmt.Errorf("%s id=%d: %w", t.kind, id, ErrRecordTooLarge)
	}
	return tx.Bucket(t.bucket).Put(itob(id), data)
}

// insert upserts: an existing record under the same id is silently
// overwritten.
func (t *table[T]) insert(id uint64, rec T) error {
	return t.db.Update(func(tx *bolt.Tx) error {
		return t.put(tx, id, rec)
	})
}

// update applies mutate to the stored record and writes the result back,
// all inside one write transaction so concurrent updates cannot interleave.
func (t *table[T]) update(id uint64, mutate func(*T)) (T, error) {
	var rec T
	err := t.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(t.bucket)
		v := b.Get(itob(id))
		if v == nil {
			return &domain.NotFoundError{Kind: t.kind, ID: id}
		}
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("decode %s id=%d: %w", t.kind, id, err)
		}
		mutate(&rec)
		return t.put(tx, id, rec)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// delete removes the record and returns the prior value.
func (t *table[T]) delete(id uint64) (T, error) {
	var rec T
	err := t.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(t.bucket)
		v := b.Get(itob(id))
		if v == nil {
			return &domain.NotFoundError{Kind: t.kind, ID: id}
		}
		if err := json.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("decode %s id=%d: %w", t.kind, id, err)
		}
		return b.Delete(itob(id))
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// scan returns every record in ascending id order.
func (t *table[T]) scan() ([]T, error) {
	var out []T
	err := t.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(t.bucket).ForEach(func(k, v []byte) error {
			var rec T
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode %s: %w", t.kind, err)
			}
			out = append(out, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	// Empty slice rather than nil keeps JSON encoders emitting [].
	if out == nil {
		out = []T{}
	}
	return out, nil
}
