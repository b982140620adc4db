// Package legacy reads the read-only legacy catalog database through SQL
// templates and normalizes its locale-varying row shapes into canonical
// records.
package legacy

import (
	"context"
	"database/sql"
	"fmt"

	"sciport/pkg/platform/sentinel"
)

// Row is one raw legacy record keyed by column name. Values keep whatever type
// the driver produced; use the Row accessors to coerce them.
type Row map[string]any

// Executor runs raw query text against the legacy transport and returns a flat
// row list. Implementations declare exactly how they flatten driver-specific
// result shapes instead of guessing.
type Executor interface {
	Query(ctx context.Context, query string) ([]Row, error)
}

// MySQLExecutor adapts database/sql over the MySQL driver. Legacy templates
// often contain several statements (session variables, temp tables, then the
// actual SELECT), so the driver reports multiple result sets; the data rows
// are in the last row-shaped set. A final SELECT that matches nothing still
// wins over earlier row-producing statements, so callers see its emptiness
// rather than stale intermediate rows.
type MySQLExecutor struct {
	db *sql.DB
}

func NewMySQLExecutor(db *sql.DB) *MySQLExecutor {
	return &MySQLExecutor{db: db}
}

func (e *MySQLExecutor) Query(ctx context.Context, query string) ([]Row, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("legacy query: %w: %w", sentinel.ErrQueryFailed, err)
	}
	defer rows.Close()

	result := []Row{}
	for {
		set, rowShaped, err := scanResultSet(rows)
		if err != nil {
			return nil, fmt.Errorf("legacy scan: %w: %w", sentinel.ErrQueryFailed, err)
		}
		if rowShaped {
			result = set
		}
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("legacy rows: %w: %w", sentinel.ErrQueryFailed, err)
	}
	return result, nil
}

// scanResultSet drains the current result set. rowShaped reports whether the
// set carried columns at all; statements like SET produce column-less sets.
func scanResultSet(rows *sql.Rows) (set []Row, rowShaped bool, err error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, false, err
	}
	if len(columns) == 0 {
		return nil, false, nil
	}

	set = []Row{}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, false, err
		}
		row := make(Row, len(columns))
		for i, name := range columns {
			row[name] = normalizeDriverValue(values[i])
		}
		set = append(set, row)
	}
	return set, true, nil
}

// normalizeDriverValue turns driver byte slices into strings so downstream
// coercion only deals with strings and numbers.
func normalizeDriverValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
