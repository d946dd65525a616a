package bolt

import (
	"context"

	"github.com/JosephThuku/timberyard/internal/domain"
)

// TimberRepository stores timber records in the timbers bucket.
type TimberRepository struct {
	table table[domain.Timber]
}

func NewTimberRepository(s *Store) *TimberRepository {
	return &TimberRepository{table: table[domain.Timber]{
		db:     s.db,
		bucket: []byte(timberBucket),
		kind:   "timber",
	}}
}

func (r *TimberRepository) Get(_ context.Context, id uint64) (domain.Timber, error) {
	return r.table.get(id)
}

func (r *TimberRepository) Insert(_ context.Context, t domain.Timber) error {
	return r.table.insert(t.ID, t)
}

func (r *TimberRepository) Update(_ context.Context, id uint64, mutate func(*domain.Timber)) (domain.Timber, error) {
	return r.table.update(id, mutate)
}

func (r *TimberRepository) Delete(_ context.Context, id uint64) (domain.Timber, error) {
	return r.table.delete(id)
}

func (r *TimberRepository) Scan(_ context.Context) ([]domain.Timber, error) {
	return r.table.scan()
}
