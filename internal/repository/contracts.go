package repository

import (
	"context"

	"github.com/posline/pos-report-service/internal/model"
)

// Provider opens a fresh database session for one request. No pooling, no
// reuse: a session is acquired at the start of request handling, closed on
// every exit path, and never shared.
type Provider interface {
	Acquire(ctx context.Context, creds Credentials) (Session, error)
}

// Session groups the per-table repositories bound to one open connection.
type Session interface {
	Users() UserRepository
	ActivityLogs() ActivityLogRepository
	SyncLogs() SyncLogRepository
	Sales() SaleRepository
	Incomes() IncomeRepository
	Suppliers() SupplierRepository
	Products() ProductRepository
	Movements() MovementRepository
	Companies() CompanyRepository
	Ping(ctx context.Context) error
	Close() error
}

// UserRepository declares the account operations behind login, password and
// profile update. Surfaces domain errors from errors.go rather than driver codes.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (model.UserAccount, error)
	GetByID(ctx context.Context, id int64) (model.UserAccount, error)
	// EmailTaken reports whether another user already owns the address.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	// UpdateProfile applies a partial name/email update; nil leaves a field alone.
	UpdateProfile(ctx context.Context, id int64, name, email *string) error
	ListAll(ctx context.Context) ([]model.UserSummary, error)
}

type ActivityLogRepository interface {
	List(ctx context.Context, q ActivityLogQuery, p Page) (PageResult[model.ActivityLog], error)
	Stats(ctx context.Context, q ActivityLogQuery) (model.ActivityStats, error)
	TopModules(ctx context.Context, q ActivityLogQuery, limit int) ([]model.ModuleCount, error)
	TopUsers(ctx context.Context, q ActivityLogQuery, limit int) ([]model.UserActivityCount, error)
	Modules(ctx context.Context) ([]string, error)
	Actions(ctx context.Context) ([]string, error)
}

type SyncLogRepository interface {
	List(ctx context.Context, q SyncLogQuery, p Page) (PageResult[model.SyncLog], error)
	Summary(ctx context.Context, q SyncLogQuery) (model.SyncSummary, error)
	TopTables(ctx context.Context, q SyncLogQuery, limit int) ([]model.TableCount, error)
	TopModules(ctx context.Context, q SyncLogQuery, limit int) ([]model.ModuleCount, error)
	TopUsers(ctx context.Context, q SyncLogQuery, limit int) ([]model.UserSyncCount, error)
	Tables(ctx context.Context) ([]string, error)
	Modules(ctx context.Context) ([]string, error)
	Actions(ctx context.Context) ([]string, error)
}

type SaleRepository interface {
	List(ctx context.Context, q SaleQuery, p Page) (PageResult[model.Sale], error)
	// ReturnsFor fetches sale_returns rows by sale id or invoice number.
	ReturnsFor(ctx context.Context, saleID int64, invoiceNo string) ([]model.SaleReturn, error)
}

type IncomeRepository interface {
	List(ctx context.Context, q IncomeQuery, p Page) (PageResult[model.Income], error)
}

type SupplierRepository interface {
	List(ctx context.Context, q SupplierQuery, p Page) (PageResult[model.Supplier], error)
}

type ProductRepository interface {
	List(ctx context.Context, q ProductQuery, p Page) (PageResult[model.Product], error)
}

type MovementRepository interface {
	List(ctx context.Context, q MovementQuery, p Page) (PageResult[model.ProductMovement], error)
}

type CompanyRepository interface {
	List(ctx context.Context, q CompanyQuery, p Page) (PageResult[model.Company], error)
}
