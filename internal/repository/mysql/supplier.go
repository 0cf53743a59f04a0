package mysql

import (
	"context"
	"database/sql"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type supplierRepository struct{ db *sql.DB }

func buildSupplierFilter(q repository.SupplierQuery) *repository.Filter {
	f := &repository.Filter{}
	if q.ID != nil {
		f.Eq("s.id", *q.ID)
	}
	if q.Name != nil {
		f.Like("s.name", *q.Name)
	}
	if q.Email != nil {
		f.Like("s.email", *q.Email)
	}
	if q.PhoneNumber != nil {
		f.Like("s.phone_number", *q.PhoneNumber)
	}
	if q.Status != nil {
		f.Eq("s.status", *q.Status)
	}
	return f
}

func (r *supplierRepository) List(ctx context.Context, q repository.SupplierQuery, p repository.Page) (repository.PageResult[model.Supplier], error) {
	f := buildSupplierFilter(q)

	total, err := fetchCount(ctx, r.db, `SELECT COUNT(*) FROM suppliers s`, f)
	if err != nil {
		return repository.PageResult[model.Supplier]{}, err
	}

	selectSQL := `SELECT s.id, s.name, s.email, s.phone_number, s.address, s.status,
		s.created_at, s.updated_at FROM suppliers s`
	items, err := fetchPage(ctx, r.db, selectSQL, f, "s.id ASC", p, scanSupplier)
	if err != nil {
		return repository.PageResult[model.Supplier]{}, err
	}
	return repository.PageResult[model.Supplier]{Items: items, Total: total}, nil
}

func scanSupplier(rows *sql.Rows) (model.Supplier, error) {
	var (
		out       model.Supplier
		email     sql.NullString
		phone     sql.NullString
		address   sql.NullString
		status    sql.NullInt64
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)
	if err := rows.Scan(&out.ID, &out.Name, &email, &phone, &address, &status,
		&createdAt, &updatedAt); err != nil {
		return model.Supplier{}, err
	}
	out.Email = strPtr(email)
	out.PhoneNumber = strPtr(phone)
	out.Address = strPtr(address)
	out.Status = intPtr(status)
	if createdAt.Valid {
		out.CreatedAt = timeStr(createdAt.Time)
	}
	out.UpdatedAt = timePtr(updatedAt)
	return out, nil
}

var _ repository.SupplierRepository = (*supplierRepository)(nil)
