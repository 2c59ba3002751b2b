// Package store is the PostgreSQL persistence layer. It owns the schema,
// the atomic batch inserts used by ingestion, and the analytical queries
// served by the web layer.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Store wraps a pgx connection pool. The handle is acquired once at startup,
// passed explicitly to every component that needs it, and closed at shutdown.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store over an established pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// tableNames whitelists the tables HasRows may probe. Table names are never
// taken from user input, but interpolating into SQL still goes through this.
var tableNames = map[string]bool{
	"customer": true,
	"product":  true,
	"receipt":  true,
}

// HasRows reports whether at least one row of the given table exists.
// This is the emptiness check behind idempotent ingestion.
func (s *Store) HasRows(ctx context.Context, table string) (bool, error) {
	if !tableNames[table] {
		return false, fmt.Errorf("unknown table %q", table)
	}

	var one int
	err := s.pool.QueryRow(ctx, fmt.Sprintf("SELECT 1 FROM %s LIMIT 1", table)).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", table, err)
	}
	return true, nil
}

// numericArg converts a decimal to a pgtype.Numeric for binary COPY encoding.
func numericArg(d decimal.Decimal) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("encoding numeric %s: %w", d, err)
	}
	return n, nil
}
