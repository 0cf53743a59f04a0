package mysql

import (
	"context"
	"database/sql"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type productRepository struct{ db *sql.DB }

func buildProductFilter(q repository.ProductQuery) *repository.Filter {
	f := &repository.Filter{}
	if q.ID != nil {
		f.Eq("p.id", *q.ID)
	}
	if q.BrandID != nil {
		f.Eq("p.brand_id", *q.BrandID)
	}
	if q.CategoryID != nil {
		f.Eq("p.category_id", *q.CategoryID)
	}
	if q.Status != nil {
		f.Eq("p.status", *q.Status)
	}
	if q.Search != nil {
		f.Search(*q.Search, "p.name", "p.barcode", "p.image")
	}
	return f
}

func (r *productRepository) List(ctx context.Context, q repository.ProductQuery, p repository.Page) (repository.PageResult[model.Product], error) {
	f := buildProductFilter(q)

	total, err := fetchCount(ctx, r.db, `SELECT COUNT(*) FROM products p`, f)
	if err != nil {
		return repository.PageResult[model.Product]{}, err
	}

	selectSQL := `SELECT p.id, p.name, p.barcode, p.brand_id, p.category_id, p.type_id,
		p.discount_id, p.tax_id, p.shop_quantity, p.shop_low_stock_margin, p.store_quantity,
		p.store_low_stock_margin, p.purchase_price, p.wholesale_price, p.retail_price,
		p.return_product, p.purchase_unit_id, p.sales_unit_id, p.transfer_unit_id,
		p.purchase_to_transfer_rate, p.transfer_to_sales_rate, p.status, p.image,
		p.created_at, p.updated_at, p.deleted_at FROM products p`
	items, err := fetchPage(ctx, r.db, selectSQL, f, "p.id ASC", p, scanProduct)
	if err != nil {
		return repository.PageResult[model.Product]{}, err
	}
	return repository.PageResult[model.Product]{Items: items, Total: total}, nil
}

func scanProduct(rows *sql.Rows) (model.Product, error) {
	var (
		out                 model.Product
		barcode             sql.NullString
		brandID             sql.NullInt64
		categoryID          sql.NullInt64
		typeID              sql.NullInt64
		discountID          sql.NullInt64
		taxID               sql.NullInt64
		shopQty             sql.NullFloat64
		shopLowMargin       sql.NullFloat64
		storeQty            sql.NullFloat64
		storeLowMargin      sql.NullFloat64
		purchasePrice       sql.NullFloat64
		wholesalePrice      sql.NullFloat64
		retailPrice         sql.NullFloat64
		returnProduct       sql.NullInt64
		purchaseUnitID      sql.NullInt64
		salesUnitID         sql.NullInt64
		transferUnitID      sql.NullInt64
		purchaseToTransfer  sql.NullFloat64
		transferToSalesRate sql.NullFloat64
		status              sql.NullInt64
		image               sql.NullString
		createdAt           sql.NullTime
		updatedAt           sql.NullTime
		deletedAt           sql.NullTime
	)
	if err := rows.Scan(&out.ID, &out.Name, &barcode, &brandID, &categoryID, &typeID,
		&discountID, &taxID, &shopQty, &shopLowMargin, &storeQty, &storeLowMargin,
		&purchasePrice, &wholesalePrice, &retailPrice, &returnProduct, &purchaseUnitID,
		&salesUnitID, &transferUnitID, &purchaseToTransfer, &transferToSalesRate,
		&status, &image, &createdAt, &updatedAt, &deletedAt); err != nil {
		return model.Product{}, err
	}
	out.Barcode = strPtr(barcode)
	out.BrandID = i64Ptr(brandID)
	out.CategoryID = i64Ptr(categoryID)
	out.TypeID = i64Ptr(typeID)
	out.DiscountID = i64Ptr(discountID)
	out.TaxID = i64Ptr(taxID)
	out.ShopQuantity = f64Ptr(shopQty)
	out.ShopLowStockMargin = f64Ptr(shopLowMargin)
	out.StoreQuantity = f64Ptr(storeQty)
	out.StoreLowStockMargin = f64Ptr(storeLowMargin)
	out.PurchasePrice = f64Ptr(purchasePrice)
	out.WholesalePrice = f64Ptr(wholesalePrice)
	out.RetailPrice = f64Ptr(retailPrice)
	out.ReturnProduct = intPtr(returnProduct)
	out.PurchaseUnitID = i64Ptr(purchaseUnitID)
	out.SalesUnitID = i64Ptr(salesUnitID)
	out.TransferUnitID = i64Ptr(transferUnitID)
	out.PurchaseToTransferRate = f64Ptr(purchaseToTransfer)
	out.TransferToSalesRate = f64Ptr(transferToSalesRate)
	out.Status = intPtr(status)
	out.Image = strPtr(image)
	if createdAt.Valid {
		out.CreatedAt = timeStr(createdAt.Time)
	}
	out.UpdatedAt = timePtr(updatedAt)
	out.DeletedAt = timePtr(deletedAt)
	return out, nil
}

var _ repository.ProductRepository = (*productRepository)(nil)
