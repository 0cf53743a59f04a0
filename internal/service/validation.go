package service

import (
	"regexp"
	"strings"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

const defaultPerPage = 50

// Per-endpoint page size ceilings. Requests outside [1, max] fall back to the
// default instead of erroring.
const (
	maxPerPageLogs     = 100
	maxPerPageProducts = 200
	maxPerPageLists    = 500
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func normalizePage(lp ListParams, maxSize int) repository.Page {
	page := lp.Page
	if page < 1 {
		page = 1
	}
	size := lp.PerPage
	if size < 1 || size > maxSize {
		size = defaultPerPage
	}
	return repository.Page{Number: page, Size: size}
}

// checkDate appends a field error when a supplied filter is not YYYY-MM-DD.
func checkDate(fe []FieldError, field string, v *string) []FieldError {
	if v == nil || dateRe.MatchString(*v) {
		return fe
	}
	label := strings.ReplaceAll(field, "_", " ")
	return append(fe, FieldError{Field: field, Message: "Invalid " + label + " format. Use YYYY-MM-DD"})
}

func buildPagination(p repository.Page, total int) model.Pagination {
	return model.Pagination{
		CurrentPage: p.Number,
		PerPage:     p.Size,
		TotalItems:  total,
		TotalPages:  repository.TotalPages(total, p.Size),
	}
}

func buildLogPagination(p repository.Page, total int) model.LogPagination {
	base := buildPagination(p, total)
	return model.LogPagination{
		Pagination:  base,
		HasNextPage: p.Number < base.TotalPages,
		HasPrevPage: p.Number > 1,
	}
}
