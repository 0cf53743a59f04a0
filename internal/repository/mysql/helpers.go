package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/posline/pos-report-service/internal/repository"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	dateLayout = "2006-01-02"
)

// fetchCount runs the COUNT(*) side of a paginated query. countSQL carries
// everything up to (excluding) the WHERE clause.
func fetchCount(ctx context.Context, db *sql.DB, countSQL string, f *repository.Filter) (int, error) {
	var total int
	err := db.QueryRowContext(ctx, joinSQL(countSQL, f.Clause()), f.Args()...).Scan(&total)
	if err != nil {
		return 0, repository.MapMySQLError(err)
	}
	return total, nil
}

// fetchPage runs the windowed SELECT with the same filter the count used.
// Pagination values bind after the filter values, preserving positional order.
func fetchPage[T any](ctx context.Context, db *sql.DB, selectSQL string, f *repository.Filter, orderBy string, p repository.Page, scan func(*sql.Rows) (T, error)) ([]T, error) {
	query := joinSQL(selectSQL, f.Clause(), "ORDER BY "+orderBy, "LIMIT ? OFFSET ?")
	args := append(append([]any{}, f.Args()...), p.Size, p.Offset())

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, repository.MapMySQLError(err)
	}
	defer rows.Close()

	items := make([]T, 0, p.Size)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, repository.MapMySQLError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapMySQLError(err)
	}
	return items, nil
}

// fetchStrings collects a single-column result, skipping NULLs.
func fetchStrings(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, repository.MapMySQLError(err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, repository.MapMySQLError(err)
		}
		if v.Valid {
			out = append(out, v.String)
		}
	}
	return out, rows.Err()
}

func joinSQL(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func i64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func f64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func timeStr(t time.Time) string { return t.Format(timeLayout) }

func timePtr(v sql.NullTime) *string {
	if !v.Valid {
		return nil
	}
	s := v.Time.Format(timeLayout)
	return &s
}

func dateStr(t time.Time) string { return t.Format(dateLayout) }

func datePtr(v sql.NullTime) *string {
	if !v.Valid {
		return nil
	}
	s := v.Time.Format(dateLayout)
	return &s
}
