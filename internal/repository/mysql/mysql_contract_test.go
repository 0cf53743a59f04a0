package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/repository/contract"
	"github.com/pressly/goose/v3"
)

var (
	db     *sql.DB
	skippy bool
)

func TestMain(m *testing.M) {
	if os.Getenv("CONTRACT_TESTS") != "1" {
		// allow skipping contract tests unless explicitly enabled
		skippy = true
		os.Exit(m.Run())
	}

	dsn := buildDSNFromEnv()
	if dsn == "" {
		fmt.Println("[contract] APP_MYSQL_* or MYSQL_* env not set; skipping")
		skippy = true
		os.Exit(m.Run())
	}

	var err error
	db, err = sql.Open("mysql", dsn)
	if err != nil {
		fmt.Println("[contract] sql open error:", err)
		os.Exit(1)
	}
	if err := db.Ping(); err != nil {
		fmt.Println("[contract] db ping error:", err)
		os.Exit(1)
	}

	migrationsDir := filepath.Clean(filepath.Join("..", "..", "..", "migrations", "goose_sql"))
	if err := goose.SetDialect("mysql"); err != nil {
		fmt.Println("[contract] goose dialect error:", err)
		os.Exit(1)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		fmt.Println("[contract] goose up error:", err)
		os.Exit(1)
	}

	code := m.Run()
	db.Close()
	os.Exit(code)
}

func skipIfNeeded(t *testing.T) {
	if skippy {
		t.Skip("contract tests skipped; set CONTRACT_TESTS=1 and provide DB env")
	}
}

func buildDSNFromEnv() string {
	user := firstNonEmpty(os.Getenv("APP_MYSQL_USER"), os.Getenv("MYSQL_USER"), os.Getenv("DB_USER"))
	pass := firstNonEmpty(os.Getenv("APP_MYSQL_PASSWORD"), os.Getenv("MYSQL_PASSWORD"), os.Getenv("DB_PASSWORD"))
	host := firstNonEmpty(os.Getenv("APP_MYSQL_HOST"), os.Getenv("MYSQL_HOST"), "localhost")
	port := firstNonEmpty(os.Getenv("APP_MYSQL_PORT"), os.Getenv("MYSQL_PORT"), "3306")
	name := firstNonEmpty(os.Getenv("APP_MYSQL_DB"), os.Getenv("MYSQL_DATABASE"), os.Getenv("DB_NAME"))
	if user == "" || name == "" {
		return ""
	}

	mc := mysql.NewConfig()
	mc.User = user
	mc.Passwd = pass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(host, port)
	mc.DBName = name
	mc.ParseTime = true
	mc.Collation = "utf8mb4_unicode_ci"
	return mc.FormatDSN()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncateAll(t *testing.T) {
	t.Helper()
	tables := []string{
		"company_information", "product_movements", "products", "measurement_units",
		"suppliers", "incomes", "sale_returns", "sales", "syn_logs", "activity_logs", "users",
	}
	for _, tbl := range tables {
		if _, err := db.Exec("TRUNCATE TABLE " + tbl); err != nil {
			t.Fatalf("truncate %s failed: %v", tbl, err)
		}
	}
}

func insertID(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Seed callbacks shared by the factories

func seedUserRow(ctx context.Context, u contract.UserSeed) (int64, error) {
	return insertID(ctx,
		`INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, u.Role)
}

func seedSaleRow(ctx context.Context, s contract.SaleSeed) (int64, error) {
	return insertID(ctx,
		`INSERT INTO sales (invoice_no, customer_id, user_id, net_amount, has_return, sale_date, type)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.InvoiceNo, s.CustomerID, s.UserID, s.NetAmount, s.HasReturn, s.SaleDate, s.Type)
}

func seedProductRow(ctx context.Context, p contract.ProductSeed) (int64, error) {
	return insertID(ctx,
		`INSERT INTO products (name, barcode, brand_id, category_id, retail_price, status, image,
		 purchase_unit_id, sales_unit_id, transfer_unit_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Barcode, p.BrandID, p.CategoryID, p.RetailPrice, p.Status, p.Image,
		p.PurchaseUnitID, p.SalesUnitID, p.TransferUnitID)
}

// Factories used by contract suites

func makeUserRepo(t *testing.T) (repository.UserRepository, func(context.Context, contract.UserSeed) (int64, error), func()) {
	skipIfNeeded(t)
	truncateAll(t)
	return &userRepository{db: db}, seedUserRow, func() { truncateAll(t) }
}

func makeActivityLogRepo(t *testing.T) (repository.ActivityLogRepository, func(context.Context, contract.UserSeed) (int64, error), func(context.Context, contract.ActivityLogSeed) (int64, error), func()) {
	skipIfNeeded(t)
	truncateAll(t)
	seed := func(ctx context.Context, l contract.ActivityLogSeed) (int64, error) {
		return insertID(ctx,
			`INSERT INTO activity_logs (user_id, action, module, details, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			l.UserID, l.Action, l.Module, l.Details, l.CreatedAt)
	}
	return &activityLogRepository{db: db}, seedUserRow, seed, func() { truncateAll(t) }
}

func makeSyncLogRepo(t *testing.T) (repository.SyncLogRepository, func(context.Context, contract.UserSeed) (int64, error), func(context.Context, contract.SyncLogSeed) (int64, error), func()) {
	skipIfNeeded(t)
	truncateAll(t)
	seed := func(ctx context.Context, l contract.SyncLogSeed) (int64, error) {
		return insertID(ctx,
			`INSERT INTO syn_logs (user_id, table_name, module, action, synced_at, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			l.UserID, l.TableName, l.Module, l.Action, l.SyncedAt, l.CreatedAt)
	}
	return &syncLogRepository{db: db}, seedUserRow, seed, func() { truncateAll(t) }
}

func makeSaleRepo(t *testing.T) (repository.SaleRepository, func(context.Context, contract.SaleSeed) (int64, error), func(context.Context, contract.SaleReturnSeed) (int64, error), func()) {
	skipIfNeeded(t)
	truncateAll(t)
	seedReturn := func(ctx context.Context, r contract.SaleReturnSeed) (int64, error) {
		return insertID(ctx,
			`INSERT INTO sale_returns (sale_id, invoice_no, amount, reason) VALUES (?, ?, ?, ?)`,
			r.SaleID, r.InvoiceNo, r.Amount, r.Reason)
	}
	return &saleRepository{db: db}, seedSaleRow, seedReturn, func() { truncateAll(t) }
}

func makeIncomeRepo(t *testing.T) (repository.IncomeRepository, func(context.Context, contract.SaleSeed) (int64, error), func(context.Context, contract.IncomeSeed) (int64, error), func()) {
	skipIfNeeded(t)
	truncateAll(t)
	seed := func(ctx context.Context, i contract.IncomeSeed) (int64, error) {
		return insertID(ctx,
			`INSERT INTO incomes (source, sale_id, amount, income_date, payment_type, transaction_type)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			i.Source, i.SaleID, i.Amount, i.IncomeDate, i.PaymentType, i.TransactionType)
	}
	return &incomeRepository{db: db}, seedSaleRow, seed, func() { truncateAll(t) }
}

func makeSupplierRepo(t *testing.T) (repository.SupplierRepository, func(context.Context, contract.SupplierSeed) (int64, error), func()) {
	skipIfNeeded(t)
	truncateAll(t)
	seed := func(ctx context.Context, s contract.SupplierSeed) (int64, error) {
		return insertID(ctx,
			`INSERT INTO suppliers (name, email, phone_number, status) VALUES (?, ?, ?, ?)`,
			s.Name, s.Email, s.PhoneNumber, s.Status)
	}
	return &supplierRepository{db: db}, seed, func() { truncateAll(t) }
}

func makeProductRepo(t *testing.T) (repository.ProductRepository, func(context.Context, contract.ProductSeed) (int64, error), func()) {
	skipIfNeeded(t)
	truncateAll(t)
	return &productRepository{db: db}, seedProductRow, func() { truncateAll(t) }
}

func makeMovementRepo(t *testing.T) (repository.MovementRepository, func(context.Context, contract.UnitSeed) (int64, error), func(context.Context, contract.ProductSeed) (int64, error), func(context.Context, contract.MovementSeed) (int64, error), func()) {
	skipIfNeeded(t)
	truncateAll(t)
	seedUnit := func(ctx context.Context, u contract.UnitSeed) (int64, error) {
		return insertID(ctx,
			`INSERT INTO measurement_units (name, symbol) VALUES (?, ?)`, u.Name, u.Symbol)
	}
	seed := func(ctx context.Context, m contract.MovementSeed) (int64, error) {
		return insertID(ctx,
			`INSERT INTO product_movements (product_id, movement_type, quantity, reference)
			 VALUES (?, ?, ?, ?)`,
			m.ProductID, m.MovementType, m.Quantity, m.Reference)
	}
	return &movementRepository{db: db}, seedUnit, seedProductRow, seed, func() { truncateAll(t) }
}

func makeCompanyRepo(t *testing.T) (repository.CompanyRepository, func(context.Context, contract.CompanySeed) (int64, error), func()) {
	skipIfNeeded(t)
	truncateAll(t)
	seed := func(ctx context.Context, c contract.CompanySeed) (int64, error) {
		return insertID(ctx,
			`INSERT INTO company_information (company_name, email, currency) VALUES (?, ?, ?)`,
			c.CompanyName, c.Email, c.Currency)
	}
	return &companyRepository{db: db}, seed, func() { truncateAll(t) }
}

// Wire the contract suites to the MySQL factories

func TestUserRepository_MySQLContract(t *testing.T) {
	contract.RunUserRepositoryContract(t, makeUserRepo)
}

func TestActivityLogRepository_MySQLContract(t *testing.T) {
	contract.RunActivityLogRepositoryContract(t, makeActivityLogRepo)
}

func TestSyncLogRepository_MySQLContract(t *testing.T) {
	contract.RunSyncLogRepositoryContract(t, makeSyncLogRepo)
}

func TestSaleRepository_MySQLContract(t *testing.T) {
	contract.RunSaleRepositoryContract(t, makeSaleRepo)
}

func TestIncomeRepository_MySQLContract(t *testing.T) {
	contract.RunIncomeRepositoryContract(t, makeIncomeRepo)
}

func TestSupplierRepository_MySQLContract(t *testing.T) {
	contract.RunSupplierRepositoryContract(t, makeSupplierRepo)
}

func TestProductRepository_MySQLContract(t *testing.T) {
	contract.RunProductRepositoryContract(t, makeProductRepo)
}

func TestMovementRepository_MySQLContract(t *testing.T) {
	contract.RunMovementRepositoryContract(t, makeMovementRepo)
}

func TestCompanyRepository_MySQLContract(t *testing.T) {
	contract.RunCompanyRepositoryContract(t, makeCompanyRepo)
}
