package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Allocator mints ids from the single-row id_counter table. The atomic
// UPDATE ... RETURNING keeps ids unique under concurrent callers.
type Allocator struct {
	pool *pgxpool.Pool
}

func NewAllocator(pool *pgxpool.Pool) *Allocator {
	return &Allocator{pool: pool}
}

func (a *Allocator) Next(ctx context.Context) (uint64, error) {
	const stmt = `UPDATE id_counter SET last_id = last_id + 1 RETURNING last_id`
	var id int64
	if err := queryRow(ctx, a.pool, stmt).Scan(&id); err != nil {
		return 0, fmt.Errorf("increment id counter: %w", err)
	}
	return uint64(id), nil
}
