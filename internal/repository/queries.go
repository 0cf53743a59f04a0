package repository

// Per-endpoint query structs. Nil fields contribute nothing to the generated
// filter; services validate formats (dates, enums) before building these.
// JSON tags exist because list responses echo the applied filters back.

type ActivityLogQuery struct {
	UserID    *int64  `json:"user_id"`
	Module    *string `json:"module"`
	Action    *string `json:"action"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Search    *string `json:"search"`
}

type SyncLogQuery struct {
	UserID          *int64  `json:"user_id"`
	TableName       *string `json:"table_name"`
	Module          *string `json:"module"`
	Action          *string `json:"action"`
	SyncStatus      *string `json:"sync_status"` // "synced" or "pending"
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	SyncedStartDate *string `json:"synced_start_date"`
	SyncedEndDate   *string `json:"synced_end_date"`
	Search          *string `json:"search"`
}

type SaleQuery struct {
	ID         *int64  `json:"id"`
	InvoiceNo  *string `json:"invoice_no"`
	CustomerID *int64  `json:"customer_id"`
	UserID     *int64  `json:"user_id"`
	Type       *int    `json:"type"`
	DateFrom   *string `json:"date_from"`
	DateTo     *string `json:"date_to"`
}

type IncomeQuery struct {
	ID              *int64   `json:"id"`
	SaleID          *int64   `json:"sale_id"`
	Source          *string  `json:"source"`
	PaymentType     *int     `json:"payment_type"`
	TransactionType *string  `json:"transaction_type"`
	DateFrom        *string  `json:"date_from"`
	DateTo          *string  `json:"date_to"`
	AmountMin       *float64 `json:"amount_min"`
	AmountMax       *float64 `json:"amount_max"`
}

type SupplierQuery struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Status      *int    `json:"status"`
}

type ProductQuery struct {
	ID         *int64  `json:"id"`
	BrandID    *int64  `json:"brand_id"`
	CategoryID *int64  `json:"category_id"`
	Status     *int    `json:"status"`
	Search     *string `json:"q"` // partial match on name, barcode or image
}

type MovementQuery struct {
	ID           *int64  `json:"id"`
	ProductID    *int64  `json:"product_id"`
	MovementType *int    `json:"movement_type"`
	Reference    *string `json:"reference"`
	DateFrom     *string `json:"date_from"`
	DateTo       *string `json:"date_to"`
}

type CompanyQuery struct {
	ID          *int64  `json:"id"`
	CompanyName *string `json:"company_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Currency    *string `json:"currency"`
}
