package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JosephThuku/timberyard/internal/domain"
)

type SaleRepository struct {
	pool *pgxpool.Pool
}

func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{pool: pool}
}

func (r *SaleRepository) Get(ctx context.Context, id uint64) (domain.Sale, error) {
	const query = `
SELECT id, timber_id, quantity, price, created_at, updated_at
FROM sales
WHERE id = $1`
	s, err := scanSale(queryRow(ctx, r.pool, query, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Sale{}, &domain.NotFoundError{Kind: "sale", ID: id}
		}
		return domain.Sale{}, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

func (r *SaleRepository) Insert(ctx context.Context, s domain.Sale) error {
	const stmt = `
INSERT INTO sales (id, timber_id, quantity, price, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
	timber_id = EXCLUDED.timber_id,
	quantity = EXCLUDED.quantity,
	price = EXCLUDED.price,
	created_at = EXCLUDED.created_at,
	updated_at = EXCLUDED.updated_at`
	_, err := exec(ctx, r.pool, stmt,
		int64(s.ID), int64(s.TimberID), int64(s.Quantity), int64(s.Price),
		int64(s.CreatedAt), nanosPtr(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepository) Update(ctx context.Context, id uint64, mutate func(*domain.Sale)) (domain.Sale, error) {
	var result domain.Sale
	err := withTx(ctx, r.pool, func(txCtx context.Context) error {
		const query = `
SELECT id, timber_id, quantity, price, created_at, updated_at
FROM sales
WHERE id = $1
FOR UPDATE`
		s, err := scanSale(queryRow(txCtx, r.pool, query, int64(id)))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &domain.NotFoundError{Kind: "sale", ID: id}
			}
			return fmt.Errorf("lock sale: %w", err)
		}

		mutate(&s)

		const stmt = `
UPDATE sales
SET quantity = $2, price = $3, updated_at = $4
WHERE id = $1`
		if _, err := exec(txCtx, r.pool, stmt,
			int64(id), int64(s.Quantity), int64(s.Price), nanosPtr(s.UpdatedAt)); err != nil {
			return fmt.Errorf("update sale: %w", err)
		}

		result = s
		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}
	return result, nil
}

func (r *SaleRepository) Delete(ctx context.Context, id uint64) (domain.Sale, error) {
	const stmt = `
DELETE FROM sales
WHERE id = $1
RETURNING id, timber_id, quantity, price, created_at, updated_at`
	s, err := scanSale(queryRow(ctx, r.pool, stmt, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Sale{}, &domain.NotFoundError{Kind: "sale", ID: id}
		}
		return domain.Sale{}, fmt.Errorf("delete sale: %w", err)
	}
	return s, nil
}

func (r *SaleRepository) Scan(ctx context.Context) ([]domain.Sale, error) {
	const query = `
SELECT id, timber_id, quantity, price, created_at, updated_at
FROM sales
ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("scan sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale row: %w", err)
		}
		sales = append(sales, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate sales: %w", rows.Err())
	}
	return sales, nil
}

func scanSale(row pgx.Row) (domain.Sale, error) {
	var (
		id, timberID, quantity, price, createdAt int64
		updatedAt                                *int64
	)
	if err := row.Scan(&id, &timberID, &quantity, &price, &createdAt, &updatedAt); err != nil {
		return domain.Sale{}, err
	}
	s := domain.Sale{
		ID:        uint64(id),
		TimberID:  uint64(timberID),
		Quantity:  uint64(quantity),
		Price:     uint64(price),
		CreatedAt: uint64(createdAt),
	}
	if updatedAt != nil {
		v := uint64(*updatedAt)
		s.UpdatedAt = &v
	}
	return s, nil
}
