package bolt

import (
	"context"

	"github.com/JosephThuku/timberyard/internal/domain"
)

// SaleRepository stores sale records in the sales bucket.
type SaleRepository struct {
	table table[domain.Sale]
}

func NewSaleRepository(s *Store) *SaleRepository {
	return &SaleRepository{table: table[domain.Sale]{
		db:     s.db,
		bucket: []byte(saleBucket),
		kind:   "sale",
	}}
}

func (r *SaleRepository) Get(_ context.Context, id uint64) (domain.Sale, error) {
	return r.table.get(id)
}

func (r *SaleRepository) Insert(_ context.Context, s domain.Sale) error {
	return r.table.insert(s.ID, s)
}

func (r *SaleRepository) Update(_ context.Context, id uint64, mutate func(*domain.Sale)) (domain.Sale, error) {
	return r.table.update(id, mutate)
}

func (r *SaleRepository) Delete(_ context.Context, id uint64) (domain.Sale, error) {
	return r.table.delete(id)
}

func (r *SaleRepository) Scan(_ context.Context) ([]domain.Sale, error) {
	return r.table.scan()
}
