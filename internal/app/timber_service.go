package app

import (
	"context"

	"github.com/JosephThuku/timberyard/internal/clock"
	"github.com/JosephThuku/timberyard/internal/domain"
)

// TimberRepository is the persistence contract for timber records. Scan
// yields records in ascending id order. Update applies mutate to the stored
// record atomically with respect to other writers and returns the result.
type TimberRepository interface {
	Get(ctx context.Context, id uint64) (domain.Timber, error)
	Insert(ctx context.Context, t domain.Timber) error
	Update(ctx context.Context, id uint64, mutate func(*domain.Timber)) (domain.Timber, error)
	Delete(ctx context.Context, id uint64) (domain.Timber, error)
	Scan(ctx context.Context) ([]domain.Timber, error)
}

// IDAllocator mints process-unique record ids. A single allocator is shared
// by every record kind, so ids are unique across kinds but not contiguous
// within one.
type IDAllocator interface {
	Next(ctx context.Context) (uint64, error)
}

type TimberService struct {
	repo  TimberRepository
	ids   IDAllocator
	clock clock.Clock
}

func NewTimberService(repo TimberRepository, ids IDAllocator, clk clock.Clock) *TimberService {
	return &TimberService{
		repo:  repo,
		ids:   ids,
		clock: clk,
	}
}

type TimberInput struct {
	Category  domain.Category
	Dimension domain.Dimension
	Quantity  uint64
}

func (in TimberInput) validate() error {
	if !in.Category.Valid() {
		return &domain.ValidationError{Field: "category", Value: string(in.Category), Allowed: domain.CategoryValues()}
	}
	if !in.Dimension.Valid() {
		return &domain.ValidationError{Field: "dimension", Value: string(in.Dimension), Allowed: domain.DimensionValues()}
	}
	if in.Quantity == 0 {
		return &domain.ValidationError{Field: "quantity"}
	}
	return nil
}

// Create validates the payload, mints an id, stamps the creation time and
// persists the new record. Nothing is written when validation fails.
func (s *TimberService) Create(ctx context.Context, in TimberInput) (domain.Timber, error) {
	if err := in.validate(); err != nil {
		return domain.Timber{}, err
	}

	id, err := s.ids.Next(ctx)
	if err != nil {
		return domain.Timber{}, err
	}

	timber := domain.Timber{
		ID:        id,
		Category:  in.Category,
		Dimension: in.Dimension,
		Quantity:  in.Quantity,
		CreatedAt: clock.Nanos(s.clock),
	}

	if err := s.repo.Insert(ctx, timber); err != nil {
		return domain.Timber{}, err
	}
	return timber, nil
}

func (s *TimberService) Get(ctx context.Context, id uint64) (domain.Timber, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces the mutable fields of an existing record and stamps the
// update time. ID and CreatedAt are preserved.
func (s *TimberService) Update(ctx context.Context, id uint64, in TimberInput) (domain.Timber, error) {
	if err := in.validate(); err != nil {
		return domain.Timber{}, err
	}

	now := clock.Nanos(s.clock)
	return s.repo.Update(ctx, id, func(t *domain.Timber) {
		t.Category = in.Category
		t.Dimension = in.Dimension
		t.Quantity = in.Quantity
		t.UpdatedAt = &now
	})
}

// Delete removes the record and returns it so callers can observe what was
// deleted. Sales referencing the timber are left untouched.
func (s *TimberService) Delete(ctx context.Context, id uint64) (domain.Timber, error) {
	return s.repo.Delete(ctx, id)
}

// Query scans all timbers and returns those matching the filter, in
// ascending id order.
func (s *TimberService) Query(ctx context.Context, filter domain.TimberFilter) ([]domain.Timber, error) {
	all, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Timber, 0, len(all))
	for _, t := range all {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}
