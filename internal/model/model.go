// Package model contains domain entities and response DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// Pagination is the windowing block every list endpoint returns.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// LogPagination extends Pagination with navigation flags; the log-style
// report endpoints include them, reference-data endpoints do not.
type LogPagination struct {
	Pagination
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// Role pairs the stored integer with its display label.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserRef is the nested user object attached to log rows. Nil when the row's
// user_id is null.
type UserRef struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserSummary appears in lookup (meta) lists.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  int    `json:"role"`
}

// UserAccount is the full users row, including the password hash. The hash
// never serializes.
type UserAccount struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	PasswordHash    string  `json:"-"`
	Role            int     `json:"role"`
	EmailVerifiedAt *string `json:"email_verified_at"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       *string `json:"updated_at"`
}

// AuthUser is the user shape returned by login and profile update.
type AuthUser struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Role            Role    `json:"role"`
	EmailVerified   bool    `json:"email_verified"`
	EmailVerifiedAt *string `json:"email_verified_at"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       *string `json:"updated_at"`
}

// SessionInfo is the bearer-looking token block login emits. Nothing in the
// system validates it; see the design notes before treating it as a session.
type SessionInfo struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
	Timestamp string `json:"timestamp"`
}

type LoginResult struct {
	User    AuthUser    `json:"user"`
	Session SessionInfo `json:"session"`
}

// PasswordRequirements echoes the policy the accepted password satisfied.
type PasswordRequirements struct {
	MinLength      int  `json:"min_length"`
	HasUppercase   bool `json:"has_uppercase"`
	HasLowercase   bool `json:"has_lowercase"`
	HasNumber      bool `json:"has_number"`
	HasSpecialChar bool `json:"has_special_char"`
}

type PasswordChange struct {
	PasswordUpdated   bool                 `json:"password_updated"`
	PasswordChangedAt string               `json:"password_changed_at"`
	RequirementsMet   PasswordRequirements `json:"password_requirements_met"`
}

type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// ActivityLog is one activity_logs row joined with its user. Details holds
// the decoded JSON payload whatever its shape, or {"raw": <text>} when the
// stored text is not valid JSON.
type ActivityLog struct {
	ID            int64    `json:"id"`
	User          *UserRef `json:"user"`
	Action        string   `json:"action"`
	Module        *string  `json:"module"`
	Details       any      `json:"details"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     *string  `json:"updated_at"`
	FormattedDate string   `json:"formatted_date"`
}

type ActivityStats struct {
	TotalLogs     int       `json:"total_logs"`
	UniqueUsers   int       `json:"unique_users"`
	UniqueModules int       `json:"unique_modules"`
	UniqueActions int       `json:"unique_actions"`
	DateRange     DateRange `json:"date_range"`
}

type ModuleCount struct {
	Module *string `json:"module"`
	Count  int     `json:"count"`
}

type TableCount struct {
	TableName *string `json:"table_name"`
	Count     int     `json:"count"`
}

type UserActivityCount struct {
	User          UserRef `json:"user"`
	ActivityCount int     `json:"activity_count"`
}

type UserSyncCount struct {
	User      UserRef `json:"user"`
	SyncCount int     `json:"sync_count"`
}

// SyncLog is one syn_logs row joined with its user. SyncStatus derives from
// synced_at: "synced" when set, "pending" while null.
type SyncLog struct {
	ID                int64    `json:"id"`
	User              *UserRef `json:"user"`
	TableName         *string  `json:"table_name"`
	Module            *string  `json:"module"`
	Action            string   `json:"action"`
	SyncStatus        string   `json:"sync_status"`
	SyncedAt          *string  `json:"synced_at"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         *string  `json:"updated_at"`
	FormattedSyncedAt *string  `json:"formatted_synced_at"`
	SyncDuration      *int64   `json:"sync_duration"`
}

type SyncDateRange struct {
	FirstRecord *string `json:"first_record"`
	LastRecord  *string `json:"last_record"`
	FirstSynced *string `json:"first_synced"`
	LastSynced  *string `json:"last_synced"`
}

type SyncSummary struct {
	TotalRecords int           `json:"total_records"`
	SyncedCount  int           `json:"synced_count"`
	PendingCount int           `json:"pending_count"`
	SyncRate     float64       `json:"sync_rate"`
	DateRange    SyncDateRange `json:"date_range"`
}

// SaleReturn is a sale_returns row attached to a sale with has_return set.
type SaleReturn struct {
	ID        int64    `json:"id"`
	SaleID    int64    `json:"sale_id"`
	InvoiceNo *string  `json:"invoice_no"`
	ProductID *int64   `json:"product_id"`
	Quantity  *float64 `json:"quantity"`
	Amount    *float64 `json:"amount"`
	Reason    *string  `json:"reason"`
	CreatedAt string   `json:"created_at"`
}

type Sale struct {
	ID          int64        `json:"id"`
	InvoiceNo   string       `json:"invoice_no"`
	CustomerID  *int64       `json:"customer_id"`
	UserID      int64        `json:"user_id"`
	TotalAmount *float64     `json:"total_amount"`
	Discount    *float64     `json:"discount"`
	NetAmount   *float64     `json:"net_amount"`
	Balance     *float64     `json:"balance"`
	HasReturn   int          `json:"has_return"`
	SaleDate    string       `json:"sale_date"`
	Type        *int         `json:"type"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   *string      `json:"updated_at"`
	Returns     []SaleReturn `json:"returns"`
}

type Income struct {
	ID              int64   `json:"id"`
	Source          string  `json:"source"`
	SaleID          *int64  `json:"sale_id"`
	InvoiceNo       *string `json:"invoice_no"`
	Amount          float64 `json:"amount"`
	IncomeDate      string  `json:"income_date"`
	PaymentType     int     `json:"payment_type"`
	TransactionType string  `json:"transaction_type"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       *string `json:"updated_at"`
}

type Supplier struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	Status      *int    `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

type Product struct {
	ID                     int64    `json:"id"`
	Name                   string   `json:"name"`
	Barcode                *string  `json:"barcode"`
	BrandID                *int64   `json:"brand_id"`
	CategoryID             *int64   `json:"category_id"`
	TypeID                 *int64   `json:"type_id"`
	DiscountID             *int64   `json:"discount_id"`
	TaxID                  *int64   `json:"tax_id"`
	ShopQuantity           *float64 `json:"shop_quantity"`
	ShopLowStockMargin     *float64 `json:"shop_low_stock_margin"`
	StoreQuantity          *float64 `json:"store_quantity"`
	StoreLowStockMargin    *float64 `json:"store_low_stock_margin"`
	PurchasePrice          *float64 `json:"purchase_price"`
	WholesalePrice         *float64 `json:"wholesale_price"`
	RetailPrice            *float64 `json:"retail_price"`
	ReturnProduct          *int     `json:"return_product"`
	PurchaseUnitID         *int64   `json:"purchase_unit_id"`
	SalesUnitID            *int64   `json:"sales_unit_id"`
	TransferUnitID         *int64   `json:"transfer_unit_id"`
	PurchaseToTransferRate *float64 `json:"purchase_to_transfer_rate"`
	TransferToSalesRate    *float64 `json:"transfer_to_sales_rate"`
	Status                 *int     `json:"status"`
	Image                  *string  `json:"image"`
	CreatedAt              string   `json:"created_at"`
	UpdatedAt              *string  `json:"updated_at"`
	DeletedAt              *string  `json:"deleted_at"`
}

type MeasurementUnit struct {
	ID     *int64  `json:"id"`
	Name   *string `json:"name"`
	Symbol *string `json:"symbol"`
}

// MovementProduct is the product sub-object embedded in a movement row.
// UnitSymbol follows the movement type: purchases report the purchase unit,
// transfers the transfer unit, everything else the sales unit.
type MovementProduct struct {
	ID             int64           `json:"id"`
	Name           *string         `json:"name"`
	Barcode        *string         `json:"barcode"`
	RetailPrice    *float64        `json:"retail_price"`
	WholesalePrice *float64        `json:"wholesale_price"`
	PurchaseUnitID *int64          `json:"purchase_unit_id"`
	PurchaseUnit   MeasurementUnit `json:"purchase_unit"`
	SalesUnitID    *int64          `json:"sales_unit_id"`
	SalesUnit      MeasurementUnit `json:"sales_unit"`
	TransferUnitID *int64          `json:"transfer_unit_id"`
	TransferUnit   MeasurementUnit `json:"transfer_unit"`
	UnitSymbol     *string         `json:"unit_symbol"`
}

type ProductMovement struct {
	ID                int64            `json:"id"`
	ProductID         int64            `json:"product_id"`
	Product           *MovementProduct `json:"product"`
	MovementType      int              `json:"movement_type"`
	MovementTypeLabel string           `json:"movement_type_label"`
	Quantity          *float64         `json:"quantity"`
	Reference         *string          `json:"reference"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         *string          `json:"updated_at"`
}

type Company struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Website     *string `json:"website"`
	Logo        *string `json:"logo"`
	Currency    *string `json:"currency"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}
