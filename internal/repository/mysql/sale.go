package mysql

import (
	"context"
	"database/sql"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type saleRepository struct{ db *sql.DB }

func buildSaleFilter(q repository.SaleQuery) *repository.Filter {
	f := &repository.Filter{}
	if q.ID != nil {
		f.Eq("s.id", *q.ID)
	}
	if q.InvoiceNo != nil {
		f.Eq("s.invoice_no", *q.InvoiceNo)
	}
	if q.CustomerID != nil {
		f.Eq("s.customer_id", *q.CustomerID)
	}
	if q.UserID != nil {
		f.Eq("s.user_id", *q.UserID)
	}
	if q.Type != nil {
		f.Eq("s.type", *q.Type)
	}
	if q.DateFrom != nil {
		f.Gte("s.sale_date", *q.DateFrom)
	}
	if q.DateTo != nil {
		f.Lte("s.sale_date", *q.DateTo)
	}
	return f
}

func (r *saleRepository) List(ctx context.Context, q repository.SaleQuery, p repository.Page) (repository.PageResult[model.Sale], error) {
	f := buildSaleFilter(q)

	total, err := fetchCount(ctx, r.db, `SELECT COUNT(*) FROM sales s`, f)
	if err != nil {
		return repository.PageResult[model.Sale]{}, err
	}

	selectSQL := `SELECT s.id, s.invoice_no, s.customer_id, s.user_id, s.total_amount,
		s.discount, s.net_amount, s.balance, s.has_return, s.sale_date, s.type,
		s.created_at, s.updated_at FROM sales s`
	items, err := fetchPage(ctx, r.db, selectSQL, f, "s.id ASC", p, scanSale)
	if err != nil {
		return repository.PageResult[model.Sale]{}, err
	}
	return repository.PageResult[model.Sale]{Items: items, Total: total}, nil
}

func scanSale(rows *sql.Rows) (model.Sale, error) {
	var (
		out         model.Sale
		customerID  sql.NullInt64
		totalAmount sql.NullFloat64
		discount    sql.NullFloat64
		netAmount   sql.NullFloat64
		balance     sql.NullFloat64
		saleDate    sql.NullTime
		saleType    sql.NullInt64
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)
	if err := rows.Scan(&out.ID, &out.InvoiceNo, &customerID, &out.UserID, &totalAmount,
		&discount, &netAmount, &balance, &out.HasReturn, &saleDate, &saleType,
		&createdAt, &updatedAt); err != nil {
		return model.Sale{}, err
	}
	out.CustomerID = i64Ptr(customerID)
	out.TotalAmount = f64Ptr(totalAmount)
	out.Discount = f64Ptr(discount)
	out.NetAmount = f64Ptr(netAmount)
	out.Balance = f64Ptr(balance)
	if saleDate.Valid {
		out.SaleDate = dateStr(saleDate.Time)
	}
	out.Type = intPtr(saleType)
	if createdAt.Valid {
		out.CreatedAt = timeStr(createdAt.Time)
	}
	out.UpdatedAt = timePtr(updatedAt)
	out.Returns = []model.SaleReturn{}
	return out, nil
}

// ReturnsFor reads the sale_returns table directly; the schema is fixed, so
// no runtime table discovery happens here.
func (r *saleRepository) ReturnsFor(ctx context.Context, saleID int64, invoiceNo string) ([]model.SaleReturn, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sale_id, invoice_no, product_id, quantity, amount, reason, created_at
		 FROM sale_returns WHERE sale_id = ? OR invoice_no = ? LIMIT 200`,
		saleID, invoiceNo)
	if err != nil {
		return nil, repository.MapMySQLError(err)
	}
	defer rows.Close()

	out := make([]model.SaleReturn, 0)
	for rows.Next() {
		var (
			ret       model.SaleReturn
			invoice   sql.NullString
			productID sql.NullInt64
			quantity  sql.NullFloat64
			amount    sql.NullFloat64
			reason    sql.NullString
			createdAt sql.NullTime
		)
		if err := rows.Scan(&ret.ID, &ret.SaleID, &invoice, &productID, &quantity,
			&amount, &reason, &createdAt); err != nil {
			return nil, repository.MapMySQLError(err)
		}
		ret.InvoiceNo = strPtr(invoice)
		ret.ProductID = i64Ptr(productID)
		ret.Quantity = f64Ptr(quantity)
		ret.Amount = f64Ptr(amount)
		ret.Reason = strPtr(reason)
		if createdAt.Valid {
			ret.CreatedAt = timeStr(createdAt.Time)
		}
		out = append(out, ret)
	}
	return out, rows.Err()
}

var _ repository.SaleRepository = (*saleRepository)(nil)
