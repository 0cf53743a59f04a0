package repository

import "strings"

// Filter accumulates predicate fragments and their bound values in lockstep.
// Fragments join with AND; values bind positionally, so append order is the
// contract: the count query and the page query must consume the same Filter
// or totals and rows diverge.
//
// Column names are written as string literals at call sites only, never from
// request input.
type Filter struct {
	conds []string
	args  []any
}

// Eq appends an exact-match predicate.
func (f *Filter) Eq(col string, v any) *Filter {
	f.conds = append(f.conds, col+" = ?")
	f.args = append(f.args, v)
	return f
}

// Like appends a case-insensitive substring match (MySQL LIKE on utf8mb4
// general collations is case-insensitive).
func (f *Filter) Like(col, v string) *Filter {
	f.conds = append(f.conds, col+" LIKE ?")
	f.args = append(f.args, "%"+v+"%")
	return f
}

// Gte / Lte append inclusive range bounds against the raw column value.
func (f *Filter) Gte(col string, v any) *Filter {
	f.conds = append(f.conds, col+" >= ?")
	f.args = append(f.args, v)
	return f
}

func (f *Filter) Lte(col string, v any) *Filter {
	f.conds = append(f.conds, col+" <= ?")
	f.args = append(f.args, v)
	return f
}

// DateFrom / DateTo compare the date portion of a timestamp column, so both
// boundary days are inclusive.
func (f *Filter) DateFrom(col, day string) *Filter {
	f.conds = append(f.conds, "DATE("+col+") >= ?")
	f.args = append(f.args, day)
	return f
}

func (f *Filter) DateTo(col, day string) *Filter {
	f.conds = append(f.conds, "DATE("+col+") <= ?")
	f.args = append(f.args, day)
	return f
}

// Search expands a free-text term into one parenthesized OR group of LIKEs,
// contributing one bound value per column. The group conjoins with the rest
// of the filter via AND.
func (f *Filter) Search(term string, cols ...string) *Filter {
	if len(cols) == 0 {
		return f
	}
	parts := make([]string, len(cols))
	like := "%" + term + "%"
	for i, col := range cols {
		parts[i] = col + " LIKE ?"
		f.args = append(f.args, like)
	}
	f.conds = append(f.conds, "("+strings.Join(parts, " OR ")+")")
	return f
}

// Cond appends a fragment that binds no value, e.g. "synced_at IS NULL".
func (f *Filter) Cond(fragment string) *Filter {
	f.conds = append(f.conds, fragment)
	return f
}

// Clause renders the WHERE clause, or "" when no predicate was added.
func (f *Filter) Clause() string {
	if len(f.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conds, " AND ")
}

// Args returns the bound values in append order. The returned slice is the
// Filter's own backing array; callers append pagination values to a copy.
func (f *Filter) Args() []any {
	return f.args
}

// Empty reports whether any predicate was added.
func (f *Filter) Empty() bool { return len(f.conds) == 0 }
