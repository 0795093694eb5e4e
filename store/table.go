// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Repository is the read contract shared by every catalog and ballot table.
type Repository[T any, K comparable] interface {
	Get(ctx context.Context, q Querier, id K) (T, error)
	List(ctx context.Context, q Querier) ([]T, error)
}

// Table implements Repository for one entity. From may be a join as long as
// Columns and Key are qualified accordingly.
type Table[T any, K comparable] struct {
	Kind    string
	From    string
	Columns string
	Key     string
	OrderBy string
	Scan    func(Scanner) (T, error)
}

var _ Repository[struct{}, int64] = Table[struct{}, int64]{}

// Get returns the record with the given key or ErrNotFound.
func (t Table[T, K]) Get(ctx context.Context, q Querier, id K) (T, error) {
	return t.First(ctx, q, t.Key+" = $1", id)
}

// List returns every record in OrderBy order.
func (t Table[T, K]) List(ctx context.Context, q Querier) ([]T, error) {
	return t.Where(ctx, q, "")
}

// First returns the first record matching cond or ErrNotFound.
func (t Table[T, K]) First(ctx context.Context, q Querier, cond string, args ...any) (T, error) {
	var zero T

	row := q.QueryRowContext(ctx, t.query(cond)+" LIMIT 1", args...)
	v, err := t.Scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("failed to get %s: %w", t.Kind, err)
	}

	return v, nil
}

// Where returns every record matching cond. An empty cond matches all rows.
// Rows are fully read and closed before returning.
func (t Table[T, K]) Where(ctx context.Context, q Querier, cond string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, t.query(cond), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.Kind, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		v, err := t.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.Kind, err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.Kind, err)
	}

	return result, nil
}

// Count returns the number of rows in the table.
func (t Table[T, K]) Count(ctx context.Context, q Querier) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.From).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.Kind, err)
	}
	return n, nil
}

func (t Table[T, K]) query(cond string) string {
	s := "SELECT " + t.Columns + " FROM " + t.From
	if cond != "" {
		s += " WHERE " + cond
	}
	if t.OrderBy != "" {
		s += " ORDER BY " + t.OrderBy
	}
	return s
}
