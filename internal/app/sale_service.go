package app

import (
	"context"

	"github.com/JosephThuku/timberyard/internal/clock"
	"github.com/JosephThuku/timberyard/internal/domain"
)

// SaleRepository is the persistence contract for sale records, with the
// same semantics as TimberRepository.
type SaleRepository interface {
	Get(ctx context.Context, id uint64) (domain.Sale, error)
	Insert(ctx context.Context, s domain.Sale) error
	Update(ctx context.Context, id uint64, mutate func(*domain.Sale)) (domain.Sale, error)
	Delete(ctx context.Context, id uint64) (domain.Sale, error)
	Scan(ctx context.Context) ([]domain.Sale, error)
}

// TimberReader is the minimal read access SaleService needs to check that a
// referenced timber exists.
type TimberReader interface {
	Get(ctx context.Context, id uint64) (domain.Timber, error)
}

type SaleService struct {
	repo    SaleRepository
	timbers TimberReader
	ids     IDAllocator
	clock   clock.Clock
}

func NewSaleService(repo SaleRepository, timbers TimberReader, ids IDAllocator, clk clock.Clock) *SaleService {
	return &SaleService{
		repo:    repo,
		timbers: timbers,
		ids:     ids,
		clock:   clk,
	}
}

type SaleInput struct {
	TimberID uint64
	Quantity uint64
	Price    uint64
}

// SaleUpdateInput carries the mutable fields of a sale. The timber
// reference is fixed at creation and cannot be repointed.
type SaleUpdateInput struct {
	Quantity uint64
	Price    uint64
}

func validateSaleAmounts(quantity, price uint64) error {
	if quantity == 0 {
		return &domain.ValidationError{Field: "quantity"}
	}
	if price == 0 {
		return &domain.ValidationError{Field: "price"}
	}
	return nil
}

// Create validates the payload, checks that the referenced timber exists,
// then mints an id and persists the sale. The reference is only checked
// here; deleting the timber later leaves the sale dangling.
func (s *SaleService) Create(ctx context.Context, in SaleInput) (domain.Sale, error) {
	if err := validateSaleAmounts(in.Quantity, in.Price); err != nil {
		return domain.Sale{}, err
	}
	if _, err := s.timbers.Get(ctx, in.TimberID); err != nil {
		return domain.Sale{}, err
	}

	id, err := s.ids.Next(ctx)
	if err != nil {
		return domain.Sale{}, err
	}

	sale := domain.Sale{
		ID:        id,
		TimberID:  in.TimberID,
		Quantity:  in.Quantity,
		Price:     in.Price,
		CreatedAt: clock.Nanos(s.clock),
	}

	if err := s.repo.Insert(ctx, sale); err != nil {
		return domain.Sale{}, err
	}
	return sale, nil
}

func (s *SaleService) Get(ctx context.Context, id uint64) (domain.Sale, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces quantity and price and stamps the update time. ID,
// TimberID and CreatedAt are preserved.
func (s *SaleService) Update(ctx context.Context, id uint64, in SaleUpdateInput) (domain.Sale, error) {
	if err := validateSaleAmounts(in.Quantity, in.Price); err != nil {
		return domain.Sale{}, err
	}

	now := clock.Nanos(s.clock)
	return s.repo.Update(ctx, id, func(sale *domain.Sale) {
		sale.Quantity = in.Quantity
		sale.Price = in.Price
		sale.UpdatedAt = &now
	})
}

func (s *SaleService) Delete(ctx context.Context, id uint64) (domain.Sale, error) {
	return s.repo.Delete(ctx, id)
}

// Query scans all sales and returns those matching the filter, in ascending
// id order.
func (s *SaleService) Query(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	all, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Sale, 0, len(all))
	for _, sale := range all {
		if filter.Matches(sale) {
			out = append(out, sale)
		}
	}
	return out, nil
}
