// Package postgres implements the order core's repositories on PostgreSQL.
//
// Every state change that must not race is a single UPDATE whose WHERE clause
// carries the precondition; an update that matches no row is then classified
// by re-reading the row.
package postgres

import (
	"context"

	"github.com/go-faster/errors"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/orderflow/db"
)

// NewPool creates a pgxpool.Pool configured with shopspring/decimal support
// for NUMERIC columns.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse database config")
	}

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create connection pool")
	}
	return pool, nil
}

// RunMigrations executes the embedded DDL schema against the pool.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, db.Schema); err != nil {
		return errors.Wrap(err, "run migrations")
	}
	return nil
}

// Store bundles the PostgreSQL repositories over one pool.
type Store struct {
	Counters     *CounterRepository
	Catalog      *CatalogRepository
	Coupons      *CouponRepository
	Orders       *OrderRepository
	Transactions *TransactionRepository
}

// NewStore returns repositories sharing pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Counters:     NewCounterRepository(pool),
		Catalog:      NewCatalogRepository(pool),
		Coupons:      NewCouponRepository(pool),
		Orders:       NewOrderRepository(pool),
		Transactions: NewTransactionRepository(pool),
	}
}

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation,
// optionally on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
