package mysql

import (
	"context"
	"database/sql"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type movementRepository struct{ db *sql.DB }

const movementFrom = `FROM product_movements pm
	LEFT JOIN products p ON pm.product_id = p.id
	LEFT JOIN measurement_units pu ON p.purchase_unit_id = pu.id
	LEFT JOIN measurement_units su ON p.sales_unit_id = su.id
	LEFT JOIN measurement_units tu ON p.transfer_unit_id = tu.id`

func buildMovementFilter(q repository.MovementQuery) *repository.Filter {
	f := &repository.Filter{}
	if q.ID != nil {
		f.Eq("pm.id", *q.ID)
	}
	if q.ProductID != nil {
		f.Eq("pm.product_id", *q.ProductID)
	}
	if q.MovementType != nil {
		f.Eq("pm.movement_type", *q.MovementType)
	}
	if q.Reference != nil {
		f.Eq("pm.reference", *q.Reference)
	}
	if q.DateFrom != nil {
		f.Gte("pm.created_at", *q.DateFrom)
	}
	if q.DateTo != nil {
		f.Lte("pm.created_at", *q.DateTo)
	}
	return f
}

func (r *movementRepository) List(ctx context.Context, q repository.MovementQuery, p repository.Page) (repository.PageResult[model.ProductMovement], error) {
	f := buildMovementFilter(q)

	total, err := fetchCount(ctx, r.db, `SELECT COUNT(*) FROM product_movements pm`, f)
	if err != nil {
		return repository.PageResult[model.ProductMovement]{}, err
	}

	selectSQL := `SELECT pm.id, pm.product_id, pm.movement_type, pm.quantity, pm.reference,
		pm.created_at, pm.updated_at,
		p.name, p.barcode, p.retail_price, p.wholesale_price,
		p.purchase_unit_id, p.sales_unit_id, p.transfer_unit_id,
		pu.name, pu.symbol, su.name, su.symbol, tu.name, tu.symbol ` + movementFrom
	items, err := fetchPage(ctx, r.db, selectSQL, f, "pm.id DESC", p, scanMovement)
	if err != nil {
		return repository.PageResult[model.ProductMovement]{}, err
	}
	return repository.PageResult[model.ProductMovement]{Items: items, Total: total}, nil
}

func scanMovement(rows *sql.Rows) (model.ProductMovement, error) {
	var (
		out            model.ProductMovement
		productID      sql.NullInt64
		quantity       sql.NullFloat64
		reference      sql.NullString
		createdAt      sql.NullTime
		updatedAt      sql.NullTime
		productName    sql.NullString
		barcode        sql.NullString
		retailPrice    sql.NullFloat64
		wholesalePrice sql.NullFloat64
		purchaseUnitID sql.NullInt64
		salesUnitID    sql.NullInt64
		transferUnitID sql.NullInt64
		puName, puSym  sql.NullString
		suName, suSym  sql.NullString
		tuName, tuSym  sql.NullString
	)
	if err := rows.Scan(&out.ID, &productID, &out.MovementType, &quantity, &reference,
		&createdAt, &updatedAt, &productName, &barcode, &retailPrice, &wholesalePrice,
		&purchaseUnitID, &salesUnitID, &transferUnitID,
		&puName, &puSym, &suName, &suSym, &tuName, &tuSym); err != nil {
		return model.ProductMovement{}, err
	}

	out.ProductID = productID.Int64
	out.MovementTypeLabel = model.MovementTypeName(out.MovementType)
	out.Quantity = f64Ptr(quantity)
	out.Reference = strPtr(reference)
	if createdAt.Valid {
		out.CreatedAt = timeStr(createdAt.Time)
	}
	out.UpdatedAt = timePtr(updatedAt)

	if productID.Valid {
		// The displayed unit symbol follows the movement: purchases use the
		// purchase unit, transfers the transfer unit, everything else sales.
		var unitSymbol *string
		switch out.MovementType {
		case 0:
			unitSymbol = strPtr(puSym)
		case 2:
			unitSymbol = strPtr(tuSym)
		default:
			unitSymbol = strPtr(suSym)
		}
		out.Product = &model.MovementProduct{
			ID:             productID.Int64,
			Name:           strPtr(productName),
			Barcode:        strPtr(barcode),
			RetailPrice:    f64Ptr(retailPrice),
			WholesalePrice: f64Ptr(wholesalePrice),
			PurchaseUnitID: i64Ptr(purchaseUnitID),
			PurchaseUnit: model.MeasurementUnit{
				ID: i64Ptr(purchaseUnitID), Name: strPtr(puName), Symbol: strPtr(puSym),
			},
			SalesUnitID: i64Ptr(salesUnitID),
			SalesUnit: model.MeasurementUnit{
				ID: i64Ptr(salesUnitID), Name: strPtr(suName), Symbol: strPtr(suSym),
			},
			TransferUnitID: i64Ptr(transferUnitID),
			TransferUnit: model.MeasurementUnit{
				ID: i64Ptr(transferUnitID), Name: strPtr(tuName), Symbol: strPtr(tuSym),
			},
			UnitSymbol: unitSymbol,
		}
	}
	return out, nil
}

var _ repository.MovementRepository = (*movementRepository)(nil)
