package mysql

import (
	"context"
	"database/sql"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type incomeRepository struct{ db *sql.DB }

const incomeFrom = `FROM incomes i LEFT JOIN sales s ON i.sale_id = s.id`

func buildIncomeFilter(q repository.IncomeQuery) *repository.Filter {
	f := &repository.Filter{}
	if q.ID != nil {
		f.Eq("i.id", *q.ID)
	}
	if q.SaleID != nil {
		f.Eq("i.sale_id", *q.SaleID)
	}
	if q.Source != nil {
		f.Eq("i.source", *q.Source)
	}
	if q.PaymentType != nil {
		f.Eq("i.payment_type", *q.PaymentType)
	}
	if q.TransactionType != nil {
		f.Eq("i.transaction_type", *q.TransactionType)
	}
	if q.DateFrom != nil {
		f.Gte("i.income_date", *q.DateFrom)
	}
	if q.DateTo != nil {
		f.Lte("i.income_date", *q.DateTo)
	}
	if q.AmountMin != nil {
		f.Gte("i.amount", *q.AmountMin)
	}
	if q.AmountMax != nil {
		f.Lte("i.amount", *q.AmountMax)
	}
	return f
}

func (r *incomeRepository) List(ctx context.Context, q repository.IncomeQuery, p repository.Page) (repository.PageResult[model.Income], error) {
	f := buildIncomeFilter(q)

	total, err := fetchCount(ctx, r.db, `SELECT COUNT(*) `+incomeFrom, f)
	if err != nil {
		return repository.PageResult[model.Income]{}, err
	}

	selectSQL := `SELECT i.id, i.source, i.sale_id, i.amount, i.income_date, i.payment_type,
		i.transaction_type, i.created_at, i.updated_at, s.invoice_no ` + incomeFrom
	items, err := fetchPage(ctx, r.db, selectSQL, f, "i.id ASC", p, scanIncome)
	if err != nil {
		return repository.PageResult[model.Income]{}, err
	}
	return repository.PageResult[model.Income]{Items: items, Total: total}, nil
}

func scanIncome(rows *sql.Rows) (model.Income, error) {
	var (
		out        model.Income
		saleID     sql.NullInt64
		incomeDate sql.NullTime
		createdAt  sql.NullTime
		updatedAt  sql.NullTime
		invoiceNo  sql.NullString
	)
	if err := rows.Scan(&out.ID, &out.Source, &saleID, &out.Amount, &incomeDate,
		&out.PaymentType, &out.TransactionType, &createdAt, &updatedAt, &invoiceNo); err != nil {
		return model.Income{}, err
	}
	out.SaleID = i64Ptr(saleID)
	out.InvoiceNo = strPtr(invoiceNo)
	if incomeDate.Valid {
		out.IncomeDate = dateStr(incomeDate.Time)
	}
	if createdAt.Valid {
		out.CreatedAt = timeStr(createdAt.Time)
	}
	out.UpdatedAt = timePtr(updatedAt)
	return out, nil
}

var _ repository.IncomeRepository = (*incomeRepository)(nil)
