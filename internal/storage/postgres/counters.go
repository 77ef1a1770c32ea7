package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/orderflow/internal/domain/sequence"
)

const incrementCounterSQL = `INSERT INTO counters (key, value) VALUES ($1, 1)
	ON CONFLICT (key) DO UPDATE SET value = counters.value + 1
	RETURNING value`

var _ sequence.CounterStore = (*CounterRepository)(nil)

// CounterRepository implements sequence.CounterStore backed by PostgreSQL.
type CounterRepository struct {
	pool *pgxpool.Pool
}

// NewCounterRepository returns a CounterRepository that uses the given pool.
func NewCounterRepository(pool *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{pool: pool}
}

// Increment upserts the counter and returns its new value in one statement.
func (r *CounterRepository) Increment(ctx context.Context, key string) (int64, error) {
	var v int64
	if err := r.pool.QueryRow(ctx, incrementCounterSQL, key).Scan(&v); err != nil {
		return 0, errors.Wrapf(err, "increment counter %q", key)
	}
	return v, nil
}
