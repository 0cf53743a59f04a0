package mysql

import (
	"context"
	"database/sql"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type companyRepository struct{ db *sql.DB }

func buildCompanyFilter(q repository.CompanyQuery) *repository.Filter {
	f := &repository.Filter{}
	if q.ID != nil {
		f.Eq("ci.id", *q.ID)
	}
	if q.CompanyName != nil {
		f.Like("ci.company_name", *q.CompanyName)
	}
	if q.Email != nil {
		f.Like("ci.email", *q.Email)
	}
	if q.Phone != nil {
		f.Like("ci.phone", *q.Phone)
	}
	if q.Currency != nil {
		f.Eq("ci.currency", *q.Currency)
	}
	return f
}

func (r *companyRepository) List(ctx context.Context, q repository.CompanyQuery, p repository.Page) (repository.PageResult[model.Company], error) {
	f := buildCompanyFilter(q)

	total, err := fetchCount(ctx, r.db, `SELECT COUNT(*) FROM company_information ci`, f)
	if err != nil {
		return repository.PageResult[model.Company]{}, err
	}

	selectSQL := `SELECT ci.id, ci.company_name, ci.address, ci.phone, ci.email, ci.website,
		ci.logo, ci.currency, ci.created_at, ci.updated_at FROM company_information ci`
	items, err := fetchPage(ctx, r.db, selectSQL, f, "ci.id ASC", p, scanCompany)
	if err != nil {
		return repository.PageResult[model.Company]{}, err
	}
	return repository.PageResult[model.Company]{Items: items, Total: total}, nil
}

func scanCompany(rows *sql.Rows) (model.Company, error) {
	var (
		out       model.Company
		address   sql.NullString
		phone     sql.NullString
		email     sql.NullString
		website   sql.NullString
		logo      sql.NullString
		currency  sql.NullString
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)
	if err := rows.Scan(&out.ID, &out.CompanyName, &address, &phone, &email, &website,
		&logo, &currency, &createdAt, &updatedAt); err != nil {
		return model.Company{}, err
	}
	out.Address = strPtr(address)
	out.Phone = strPtr(phone)
	out.Email = strPtr(email)
	out.Website = strPtr(website)
	out.Logo = strPtr(logo)
	out.Currency = strPtr(currency)
	if createdAt.Valid {
		out.CreatedAt = timeStr(createdAt.Time)
	}
	out.UpdatedAt = timePtr(updatedAt)
	return out, nil
}

var _ repository.CompanyRepository = (*companyRepository)(nil)
