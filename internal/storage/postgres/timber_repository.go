// Package postgres implements the app repository contracts on PostgreSQL.
// Records live in BIGINT-keyed tables scanned in ascending id order, with
// timestamps stored as nanoseconds since the epoch; the id counter is a
// single-row table bumped with UPDATE ... RETURNING.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JosephThuku/timberyard/internal/domain"
)

type TimberRepository struct {
	pool *pgxpool.Pool
}

func NewTimberRepository(pool *pgxpool.Pool) *TimberRepository {
	return &TimberRepository{pool: pool}
}

func (r *TimberRepository) Get(ctx context.Context, id uint64) (domain.Timber, error) {
	const query = `
SELECT id, category, dimension, quantity, created_at, updated_at
FROM timbers
WHERE id = $1`
	t, err := scanTimber(queryRow(ctx, r.pool, query, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Timber{}, &domain.NotFoundError{Kind: "timber", ID: id}
		}
		return domain.Timber{}, fmt.Errorf("get timber: %w", err)
	}
	return t, nil
}

func (r *TimberRepository) Insert(ctx context.Context, t domain.Timber) error {
	const stmt = `
INSERT INTO timbers (id, category, dimension, quantity, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	category = EXCLUDED.category,
	dimension = EXCLUDED.dimension,
	quantity = EXCLUDED.quantity,
	created_at = EXCLUDED.created_at,
	updated_at = EXCLUDED.updated_at`
	_, err := exec(ctx, r.pool, stmt,
		int64(t.ID), string(t.Category), string(t.Dimension), int64(t.Quantity),
		int64(t.CreatedAt), nanosPtr(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert timber: %w", err)
	}
	return nil
}

func (r *TimberRepository) Update(ctx context.Context, id uint64, mutate func(*domain.Timber)) (domain.Timber, error) {
	var result domain.Timber
	err := withTx(ctx, r.pool, func(txCtx context.Context) error {
		const query = `
SELECT id, category, dimension, quantity, created_at, updated_at
FROM timbers
WHERE id = $1
FOR UPDATE`
		t, err := scanTimber(queryRow(txCtx, r.pool, query, int64(id)))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &domain.NotFoundError{Kind: "timber", ID: id}
			}
			return fmt.Errorf("lock timber: %w", err)
		}

		mutate(&t)

		const stmt = `
UPDATE timbers
SET category = $2, dimension = $3, quantity = $4, updated_at = $5
WHERE id = $1`
		if _, err := exec(txCtx, r.pool, stmt,
			int64(id), string(t.Category), string(t.Dimension), int64(t.Quantity), nanosPtr(t.UpdatedAt)); err != nil {
			return fmt.Errorf("update timber: %w", err)
		}

		result = t
		return nil
	})
	if err != nil {
		return domain.Timber{}, err
	}
	return result, nil
}

func (r *TimberRepository) Delete(ctx context.Context, id uint64) (domain.Timber, error) {
	const stmt = `
DELETE FROM timbers
WHERE id = $1
RETURNING id, category, dimension, quantity, created_at, updated_at`
	t, err := scanTimber(queryRow(ctx, r.pool, stmt, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Timber{}, &domain.NotFoundError{Kind: "timber", ID: id}
		}
		return domain.Timber{}, fmt.Errorf("delete timber: %w", err)
	}
	return t, nil
}

func (r *TimberRepository) Scan(ctx context.Context) ([]domain.Timber, error) {
	const query = `
SELECT id, category, dimension, quantity, created_at, updated_at
FROM timbers
ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("scan timbers: %w", err)
	}
	defer rows.Close()

	timbers := []domain.Timber{}
	for rows.Next() {
		t, err := scanTimber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan timber row: %w", err)
		}
		timbers = append(timbers, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate timbers: %w", rows.Err())
	}
	return timbers, nil
}

func scanTimber(row pgx.Row) (domain.Timber, error) {
	var (
		id, quantity, createdAt int64
		updatedAt               *int64
		category, dimension     string
	)
	if err := row.Scan(&id, &category, &dimension, &quantity, &createdAt, &updatedAt); err != nil {
		return domain.Timber{}, err
	}
	t := domain.Timber{
		ID:        uint64(id),
		Category:  domain.Category(category),
		Dimension: domain.Dimension(dimension),
		Quantity:  uint64(quantity),
		CreatedAt: uint64(createdAt),
	}
	if updatedAt != nil {
		v := uint64(*updatedAt)
		t.UpdatedAt = &v
	}
	return t, nil
}

func nanosPtr(v *uint64) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
