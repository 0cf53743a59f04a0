// Package contract holds driver-agnostic test suites for the repository
// interfaces. A driver package wires them up by providing factories that
// return a repository plus seed callbacks for the raw rows; the suites never
// touch SQL themselves, so a second driver would reuse them unchanged.
package contract

import (
	"context"
	"testing"

	"github.com/posline/pos-report-service/internal/repository"
)

// Seed rows. Fields mirror the table columns the suites care about; the
// driver test decides how they become INSERT statements. Timestamps are
// "2006-01-02 15:04:05" strings so suites can seed deterministic orderings.

type UserSeed struct {
	Name         string
	Email        string
	PasswordHash string
	Role         int
}

type ActivityLogSeed struct {
	UserID    *int64
	Action    string
	Module    *string
	Details   *string
	CreatedAt string
}

type SyncLogSeed struct {
	UserID    *int64
	TableName *string
	Module    *string
	Action    string
	SyncedAt  *string
	CreatedAt string
}

type SaleSeed struct {
	InvoiceNo  string
	CustomerID *int64
	UserID     int64
	NetAmount  *float64
	HasReturn  int
	SaleDate   string
	Type       *int
}

type SaleReturnSeed struct {
	SaleID    int64
	InvoiceNo *string
	Amount    *float64
	Reason    *string
}

type IncomeSeed struct {
	Source          string
	SaleID          *int64
	Amount          float64
	IncomeDate      string
	PaymentType     int
	TransactionType string
}

type SupplierSeed struct {
	Name        string
	Email       *string
	PhoneNumber *string
	Status      *int
}

type UnitSeed struct {
	Name   string
	Symbol *string
}

type ProductSeed struct {
	Name           string
	Barcode        *string
	BrandID        *int64
	CategoryID     *int64
	RetailPrice    *float64
	Status         *int
	Image          *string
	PurchaseUnitID *int64
	SalesUnitID    *int64
	TransferUnitID *int64
}

type MovementSeed struct {
	ProductID    int64
	MovementType int
	Quantity     *float64
	Reference    *string
}

type CompanySeed struct {
	CompanyName string
	Email       *string
	Currency    *string
}

// Factories. Each call gets a clean database; cleanup runs via t.Cleanup.

type UserFactory func(t *testing.T) (repo repository.UserRepository, seed func(context.Context, UserSeed) (int64, error), cleanup func())

type ActivityLogFactory func(t *testing.T) (repo repository.ActivityLogRepository, seedUser func(context.Context, UserSeed) (int64, error), seed func(context.Context, ActivityLogSeed) (int64, error), cleanup func())

type SyncLogFactory func(t *testing.T) (repo repository.SyncLogRepository, seedUser func(context.Context, UserSeed) (int64, error), seed func(context.Context, SyncLogSeed) (int64, error), cleanup func())

type SaleFactory func(t *testing.T) (repo repository.SaleRepository, seedSale func(context.Context, SaleSeed) (int64, error), seedReturn func(context.Context, SaleReturnSeed) (int64, error), cleanup func())

type IncomeFactory func(t *testing.T) (repo repository.IncomeRepository, seedSale func(context.Context, SaleSeed) (int64, error), seed func(context.Context, IncomeSeed) (int64, error), cleanup func())

type SupplierFactory func(t *testing.T) (repo repository.SupplierRepository, seed func(context.Context, SupplierSeed) (int64, error), cleanup func())

type ProductFactory func(t *testing.T) (repo repository.ProductRepository, seed func(context.Context, ProductSeed) (int64, error), cleanup func())

type MovementFactory func(t *testing.T) (repo repository.MovementRepository, seedUnit func(context.Context, UnitSeed) (int64, error), seedProduct func(context.Context, ProductSeed) (int64, error), seed func(context.Context, MovementSeed) (int64, error), cleanup func())

type CompanyFactory func(t *testing.T) (repo repository.CompanyRepository, seed func(context.Context, CompanySeed) (int64, error), cleanup func())

func strp(s string) *string   { return &s }
func intp(v int) *int         { return &v }
func f64p(v float64) *float64 { return &v }

// User contracts

func RunUserRepositoryContract(t *testing.T, makeRepo UserFactory) {
	t.Helper()

	t.Run("get_by_email_and_id", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		id, err := seed(ctx, UserSeed{Name: "Asha", Email: "asha@pos.test", PasswordHash: "$2a$04$hash", Role: 1})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		byEmail, err := repo.GetByEmail(ctx, "asha@pos.test")
		if err != nil {
			t.Fatalf("get by email: %v", err)
		}
		if byEmail.ID != id || byEmail.Name != "Asha" || byEmail.PasswordHash != "$2a$04$hash" || byEmail.Role != 1 {
			t.Fatalf("mismatch: %+v", byEmail)
		}
		byID, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get by id: %v", err)
		}
		if byID.Email != byEmail.Email {
			t.Fatalf("lookups disagree: %+v vs %+v", byID, byEmail)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.GetByID(ctx, 999999); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound by id, got %v", err)
		}
		if _, err := repo.GetByEmail(ctx, "nobody@pos.test"); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound by email, got %v", err)
		}
	})

	t.Run("email_taken_excludes_own_id", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		selfID, err := seed(ctx, UserSeed{Name: "Self", Email: "self@pos.test", PasswordHash: "x"})
		if err != nil {
			t.Fatalf("seed self: %v", err)
		}
		if _, err := seed(ctx, UserSeed{Name: "Other", Email: "other@pos.test", PasswordHash: "x"}); err != nil {
			t.Fatalf("seed other: %v", err)
		}
		taken, err := repo.EmailTaken(ctx, "other@pos.test", selfID)
		if err != nil || !taken {
			t.Fatalf("expected other's email taken, got taken=%v err=%v", taken, err)
		}
		taken, err = repo.EmailTaken(ctx, "self@pos.test", selfID)
		if err != nil || taken {
			t.Fatalf("own email must not count as taken, got taken=%v err=%v", taken, err)
		}
	})

	t.Run("update_password", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		id, err := seed(ctx, UserSeed{Name: "P", Email: "p@pos.test", PasswordHash: "old"})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := repo.UpdatePassword(ctx, id, "new-hash"); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("refetch: %v", err)
		}
		if got.PasswordHash != "new-hash" {
			t.Fatalf("hash not stored: %q", got.PasswordHash)
		}
		if err := repo.UpdatePassword(ctx, 999999, "x"); err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound for missing user, got %v", err)
		}
	})

	t.Run("update_profile_partial", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		id, err := seed(ctx, UserSeed{Name: "Before", Email: "before@pos.test", PasswordHash: "x"})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := repo.UpdateProfile(ctx, id, strp("After"), nil); err != nil {
			t.Fatalf("name update: %v", err)
		}
		got, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("refetch: %v", err)
		}
		if got.Name != "After" || got.Email != "before@pos.test" {
			t.Fatalf("partial update leaked: %+v", got)
		}
		if err := repo.UpdateProfile(ctx, id, nil, strp("after@pos.test")); err != nil {
			t.Fatalf("email update: %v", err)
		}
		got, err = repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("refetch2: %v", err)
		}
		if got.Email != "after@pos.test" || got.Name != "After" {
			t.Fatalf("email update wrong: %+v", got)
		}
	})

	t.Run("list_all_ordered_by_name", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := seed(ctx, UserSeed{Name: "Zoe", Email: "zoe@pos.test", PasswordHash: "x"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := seed(ctx, UserSeed{Name: "Amir", Email: "amir@pos.test", PasswordHash: "x"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		users, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(users) != 2 || users[0].Name != "Amir" || users[1].Name != "Zoe" {
			t.Fatalf("unexpected order: %+v", users)
		}
	})
}

// Activity log contracts

func RunActivityLogRepositoryContract(t *testing.T, makeRepo ActivityLogFactory) {
	t.Helper()

	t.Run("list_pagination_and_order", func(t *testing.T) {
		repo, _, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		days := []string{"01", "02", "03", "04", "05", "06", "07"}
		for _, d := range days {
			_, err := seed(ctx, ActivityLogSeed{Action: "create", Module: strp("sales"), CreatedAt: "2025-03-" + d + " 10:00:00"})
			if err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.ActivityLogQuery{}, repository.Page{Number: 1, Size: 3})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		// newest first
		if res.Items[0].CreatedAt < res.Items[1].CreatedAt || res.Items[1].CreatedAt < res.Items[2].CreatedAt {
			t.Fatalf("not ordered newest first: %+v", res.Items)
		}
		res2, err := repo.List(ctx, repository.ActivityLogQuery{}, repository.Page{Number: 3, Size: 3})
		if err != nil {
			t.Fatalf("list page 3: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 {
			t.Fatalf("unexpected last page: len=%d total=%d", len(res2.Items), res2.Total)
		}
	})

	t.Run("filters_and_user_join", func(t *testing.T) {
		repo, seedUser, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		uid, err := seedUser(ctx, UserSeed{Name: "Logger", Email: "logger@pos.test", PasswordHash: "x"})
		if err != nil {
			t.Fatalf("seed user: %v", err)
		}
		if _, err := seed(ctx, ActivityLogSeed{UserID: &uid, Action: "update", Module: strp("products"), CreatedAt: "2025-03-01 09:00:00"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := seed(ctx, ActivityLogSeed{Action: "delete", Module: strp("sales"), CreatedAt: "2025-03-02 09:00:00"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		res, err := repo.List(ctx, repository.ActivityLogQuery{Module: strp("products")}, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 || len(res.Items) != 1 {
			t.Fatalf("module filter missed: %+v", res)
		}
		got := res.Items[0]
		if got.User == nil || got.User.ID != uid || got.User.Name == nil || *got.User.Name != "Logger" {
			t.Fatalf("user join missing: %+v", got.User)
		}
		res, err = repo.List(ctx, repository.ActivityLogQuery{UserID: &uid}, repository.Page{Number: 1, Size: 10})
		if err != nil || res.Total != 1 {
			t.Fatalf("user filter: total=%d err=%v", res.Total, err)
		}
		anon, err := repo.List(ctx, repository.ActivityLogQuery{Module: strp("sales")}, repository.Page{Number: 1, Size: 10})
		if err != nil || len(anon.Items) != 1 {
			t.Fatalf("sales filter: %v", err)
		}
		if anon.Items[0].User != nil {
			t.Fatalf("null user_id must yield nil user, got %+v", anon.Items[0].User)
		}
	})

	t.Run("details_decoding", func(t *testing.T) {
		repo, _, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		rows := []ActivityLogSeed{
			{Action: "a", Details: strp(`{"field":"price"}`), CreatedAt: "2025-03-01 10:00:00"},
			{Action: "b", Details: strp(`[1,2]`), CreatedAt: "2025-03-01 10:00:01"},
			{Action: "c", Details: strp(`not json`), CreatedAt: "2025-03-01 10:00:02"},
		}
		for _, r := range rows {
			if _, err := seed(ctx, r); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.ActivityLogQuery{}, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		byAction := map[string]any{}
		for _, item := range res.Items {
			byAction[item.Action] = item.Details
		}
		obj, ok := byAction["a"].(map[string]any)
		if !ok || obj["field"] != "price" {
			t.Fatalf("object details: %#v", byAction["a"])
		}
		arr, ok := byAction["b"].([]any)
		if !ok || len(arr) != 2 {
			t.Fatalf("array details must stay an array: %#v", byAction["b"])
		}
		wrapped, ok := byAction["c"].(map[string]any)
		if !ok || wrapped["raw"] != "not json" {
			t.Fatalf("invalid json must wrap as raw: %#v", byAction["c"])
		}
	})

	t.Run("stats_and_tops", func(t *testing.T) {
		repo, seedUser, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		uid, err := seedUser(ctx, UserSeed{Name: "Top", Email: "top@pos.test", PasswordHash: "x"})
		if err != nil {
			t.Fatalf("seed user: %v", err)
		}
		rows := []ActivityLogSeed{
			{UserID: &uid, Action: "create", Module: strp("sales"), CreatedAt: "2025-03-01 08:00:00"},
			{UserID: &uid, Action: "create", Module: strp("sales"), CreatedAt: "2025-03-02 08:00:00"},
			{UserID: &uid, Action: "update", Module: strp("products"), CreatedAt: "2025-03-03 08:00:00"},
		}
		for _, r := range rows {
			if _, err := seed(ctx, r); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		stats, err := repo.Stats(ctx, repository.ActivityLogQuery{})
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if stats.UniqueUsers != 1 || stats.UniqueModules != 2 || stats.UniqueActions != 2 {
			t.Fatalf("unexpected stats: %+v", stats)
		}
		if stats.DateRange.Start == nil || *stats.DateRange.Start != "2025-03-01" {
			t.Fatalf("date range start: %+v", stats.DateRange)
		}
		top, err := repo.TopModules(ctx, repository.ActivityLogQuery{}, 5)
		if err != nil {
			t.Fatalf("top modules: %v", err)
		}
		if len(top) != 2 || top[0].Module == nil || *top[0].Module != "sales" || top[0].Count != 2 {
			t.Fatalf("top modules order: %+v", top)
		}
		topUsers, err := repo.TopUsers(ctx, repository.ActivityLogQuery{}, 10)
		if err != nil {
			t.Fatalf("top users: %v", err)
		}
		if len(topUsers) != 1 || topUsers[0].User.ID != uid || topUsers[0].ActivityCount != 3 {
			t.Fatalf("top users: %+v", topUsers)
		}
		modules, err := repo.Modules(ctx)
		if err != nil {
			t.Fatalf("modules: %v", err)
		}
		if len(modules) != 2 || modules[0] != "products" || modules[1] != "sales" {
			t.Fatalf("modules lookup: %v", modules)
		}
		actions, err := repo.Actions(ctx)
		if err != nil || len(actions) != 2 {
			t.Fatalf("actions lookup: %v %v", actions, err)
		}
	})
}

// Sync log contracts

func RunSyncLogRepositoryContract(t *testing.T, makeRepo SyncLogFactory) {
	t.Helper()

	t.Run("sync_status_derivation", func(t *testing.T) {
		repo, _, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := seed(ctx, SyncLogSeed{TableName: strp("sales"), Action: "insert", SyncedAt: strp("2025-04-01 08:05:00"), CreatedAt: "2025-04-01 08:00:00"}); err != nil {
			t.Fatalf("seed synced: %v", err)
		}
		if _, err := seed(ctx, SyncLogSeed{TableName: strp("products"), Action: "update", CreatedAt: "2025-04-02 08:00:00"}); err != nil {
			t.Fatalf("seed pending: %v", err)
		}

		synced, err := repo.List(ctx, repository.SyncLogQuery{SyncStatus: strp("synced")}, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list synced: %v", err)
		}
		if synced.Total != 1 || synced.Items[0].SyncStatus != "synced" {
			t.Fatalf("synced filter: %+v", synced)
		}
		if synced.Items[0].SyncDuration == nil || *synced.Items[0].SyncDuration != 300 {
			t.Fatalf("sync duration: %+v", synced.Items[0].SyncDuration)
		}

		pending, err := repo.List(ctx, repository.SyncLogQuery{SyncStatus: strp("pending")}, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list pending: %v", err)
		}
		if pending.Total != 1 || pending.Items[0].SyncStatus != "pending" {
			t.Fatalf("pending filter: %+v", pending)
		}
		if pending.Items[0].SyncedAt != nil || pending.Items[0].SyncDuration != nil {
			t.Fatalf("pending row carries sync fields: %+v", pending.Items[0])
		}
	})

	t.Run("summary_counts_and_range", func(t *testing.T) {
		repo, _, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		rows := []SyncLogSeed{
			{TableName: strp("sales"), Action: "insert", SyncedAt: strp("2025-04-01 09:00:00"), CreatedAt: "2025-04-01 08:00:00"},
			{TableName: strp("sales"), Action: "insert", SyncedAt: strp("2025-04-02 09:00:00"), CreatedAt: "2025-04-02 08:00:00"},
			{TableName: strp("products"), Action: "update", CreatedAt: "2025-04-03 08:00:00"},
		}
		for _, r := range rows {
			if _, err := seed(ctx, r); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		sum, err := repo.Summary(ctx, repository.SyncLogQuery{})
		if err != nil {
			t.Fatalf("summary: %v", err)
		}
		if sum.SyncedCount != 2 || sum.PendingCount != 1 {
			t.Fatalf("counts: %+v", sum)
		}
		if sum.DateRange.FirstRecord == nil || *sum.DateRange.FirstRecord != "2025-04-01" {
			t.Fatalf("first record: %+v", sum.DateRange)
		}
		if sum.DateRange.LastRecord == nil || *sum.DateRange.LastRecord != "2025-04-03" {
			t.Fatalf("last record: %+v", sum.DateRange)
		}
		if sum.DateRange.FirstSynced == nil || sum.DateRange.LastSynced == nil {
			t.Fatalf("synced range missing: %+v", sum.DateRange)
		}

		tables, err := repo.TopTables(ctx, repository.SyncLogQuery{}, 5)
		if err != nil {
			t.Fatalf("top tables: %v", err)
		}
		if len(tables) != 2 || tables[0].TableName == nil || *tables[0].TableName != "sales" || tables[0].Count != 2 {
			t.Fatalf("top tables order: %+v", tables)
		}
		names, err := repo.Tables(ctx)
		if err != nil || len(names) != 2 || names[0] != "products" {
			t.Fatalf("tables lookup: %v %v", names, err)
		}
	})

	t.Run("synced_date_window", func(t *testing.T) {
		repo, _, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := seed(ctx, SyncLogSeed{Action: "insert", SyncedAt: strp("2025-04-01 09:00:00"), CreatedAt: "2025-04-01 08:00:00"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := seed(ctx, SyncLogSeed{Action: "insert", SyncedAt: strp("2025-04-10 09:00:00"), CreatedAt: "2025-04-10 08:00:00"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		q := repository.SyncLogQuery{SyncedStartDate: strp("2025-04-05"), SyncedEndDate: strp("2025-04-15")}
		res, err := repo.List(ctx, q, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 {
			t.Fatalf("synced window missed: total=%d", res.Total)
		}
	})
}

// Sale contracts

func RunSaleRepositoryContract(t *testing.T, makeRepo SaleFactory) {
	t.Helper()

	t.Run("list_filters_and_order", func(t *testing.T) {
		repo, seedSale, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		first, err := seedSale(ctx, SaleSeed{InvoiceNo: "INV-1", UserID: 1, SaleDate: "2025-05-01", NetAmount: f64p(120.50)})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		second, err := seedSale(ctx, SaleSeed{InvoiceNo: "INV-2", UserID: 2, SaleDate: "2025-05-03", Type: intp(1)})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		res, err := repo.List(ctx, repository.SaleQuery{}, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 2 || res.Items[0].ID != first || res.Items[1].ID != second {
			t.Fatalf("order must be id ascending: %+v", res)
		}
		if res.Items[0].NetAmount == nil || *res.Items[0].NetAmount != 120.50 {
			t.Fatalf("net amount: %+v", res.Items[0].NetAmount)
		}

		byInvoice, err := repo.List(ctx, repository.SaleQuery{InvoiceNo: strp("INV-2")}, repository.Page{Number: 1, Size: 10})
		if err != nil || byInvoice.Total != 1 || byInvoice.Items[0].ID != second {
			t.Fatalf("invoice filter: %+v err=%v", byInvoice, err)
		}
		window := repository.SaleQuery{DateFrom: strp("2025-05-02"), DateTo: strp("2025-05-04")}
		byDate, err := repo.List(ctx, window, repository.Page{Number: 1, Size: 10})
		if err != nil || byDate.Total != 1 || byDate.Items[0].ID != second {
			t.Fatalf("date window: %+v err=%v", byDate, err)
		}
	})

	t.Run("returns_for_sale", func(t *testing.T) {
		repo, seedSale, seedReturn, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		saleID, err := seedSale(ctx, SaleSeed{InvoiceNo: "INV-R", UserID: 1, SaleDate: "2025-05-01", HasReturn: 1})
		if err != nil {
			t.Fatalf("seed sale: %v", err)
		}
		if _, err := seedReturn(ctx, SaleReturnSeed{SaleID: saleID, Amount: f64p(10), Reason: strp("damaged")}); err != nil {
			t.Fatalf("seed return by id: %v", err)
		}
		// matched by invoice even when the sale_id column diverges
		if _, err := seedReturn(ctx, SaleReturnSeed{SaleID: saleID + 1000, InvoiceNo: strp("INV-R"), Amount: f64p(5)}); err != nil {
			t.Fatalf("seed return by invoice: %v", err)
		}
		returns, err := repo.ReturnsFor(ctx, saleID, "INV-R")
		if err != nil {
			t.Fatalf("returns: %v", err)
		}
		if len(returns) != 2 {
			t.Fatalf("expected both return rows, got %d", len(returns))
		}
		none, err := repo.ReturnsFor(ctx, saleID+500, "INV-NONE")
		if err != nil || len(none) != 0 {
			t.Fatalf("expected no returns, got %v err=%v", none, err)
		}
	})
}

// Income contracts

func RunIncomeRepositoryContract(t *testing.T, makeRepo IncomeFactory) {
	t.Helper()

	t.Run("invoice_join_and_filters", func(t *testing.T) {
		repo, seedSale, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		saleID, err := seedSale(ctx, SaleSeed{InvoiceNo: "INV-9", UserID: 1, SaleDate: "2025-06-01"})
		if err != nil {
			t.Fatalf("seed sale: %v", err)
		}
		if _, err := seed(ctx, IncomeSeed{Source: "sale", SaleID: &saleID, Amount: 200, IncomeDate: "2025-06-01", TransactionType: "credit"}); err != nil {
			t.Fatalf("seed income: %v", err)
		}
		if _, err := seed(ctx, IncomeSeed{Source: "other", Amount: 50, IncomeDate: "2025-06-02", PaymentType: 1, TransactionType: "cash"}); err != nil {
			t.Fatalf("seed income: %v", err)
		}

		res, err := repo.List(ctx, repository.IncomeQuery{}, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 2 {
			t.Fatalf("total: %d", res.Total)
		}
		withSale := res.Items[0]
		if withSale.InvoiceNo == nil || *withSale.InvoiceNo != "INV-9" {
			t.Fatalf("invoice join: %+v", withSale)
		}
		if res.Items[1].InvoiceNo != nil {
			t.Fatalf("standalone income must have nil invoice: %+v", res.Items[1])
		}

		ranged, err := repo.List(ctx, repository.IncomeQuery{AmountMin: f64p(100), AmountMax: f64p(300)}, repository.Page{Number: 1, Size: 10})
		if err != nil || ranged.Total != 1 || ranged.Items[0].Amount != 200 {
			t.Fatalf("amount range: %+v err=%v", ranged, err)
		}
		bySource, err := repo.List(ctx, repository.IncomeQuery{Source: strp("other")}, repository.Page{Number: 1, Size: 10})
		if err != nil || bySource.Total != 1 || bySource.Items[0].PaymentType != 1 {
			t.Fatalf("source filter: %+v err=%v", bySource, err)
		}
	})
}

// Supplier contracts

func RunSupplierRepositoryContract(t *testing.T, makeRepo SupplierFactory) {
	t.Helper()

	t.Run("partial_match_and_status", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := seed(ctx, SupplierSeed{Name: "Acme Traders", Email: strp("acme@pos.test"), Status: intp(1)}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := seed(ctx, SupplierSeed{Name: "Global Foods", Status: intp(0)}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		res, err := repo.List(ctx, repository.SupplierQuery{Name: strp("acme")}, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 1 || res.Items[0].Name != "Acme Traders" {
			t.Fatalf("name LIKE must be substring, case-insensitive: %+v", res)
		}
		active, err := repo.List(ctx, repository.SupplierQuery{Status: intp(1)}, repository.Page{Number: 1, Size: 10})
		if err != nil || active.Total != 1 || active.Items[0].Status == nil || *active.Items[0].Status != 1 {
			t.Fatalf("status filter: %+v err=%v", active, err)
		}
	})
}

// Product contracts

func RunProductRepositoryContract(t *testing.T, makeRepo ProductFactory) {
	t.Helper()

	t.Run("search_and_status", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := seed(ctx, ProductSeed{Name: "Basmati Rice 5kg", Barcode: strp("RICE-5"), Status: intp(1)}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := seed(ctx, ProductSeed{Name: "Sunflower Oil", Barcode: strp("OIL-1"), Status: intp(0)}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		byName, err := repo.List(ctx, repository.ProductQuery{Search: strp("rice")}, repository.Page{Number: 1, Size: 10})
		if err != nil || byName.Total != 1 || byName.Items[0].Name != "Basmati Rice 5kg" {
			t.Fatalf("search by name: %+v err=%v", byName, err)
		}
		byBarcode, err := repo.List(ctx, repository.ProductQuery{Search: strp("OIL-1")}, repository.Page{Number: 1, Size: 10})
		if err != nil || byBarcode.Total != 1 || byBarcode.Items[0].Name != "Sunflower Oil" {
			t.Fatalf("search by barcode: %+v err=%v", byBarcode, err)
		}
		active, err := repo.List(ctx, repository.ProductQuery{Status: intp(1)}, repository.Page{Number: 1, Size: 10})
		if err != nil || active.Total != 1 {
			t.Fatalf("status filter: %+v err=%v", active, err)
		}
	})

	t.Run("pagination_total", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		names := []string{"P1", "P2", "P3", "P4", "P5"}
		for _, n := range names {
			if _, err := seed(ctx, ProductSeed{Name: n}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.ProductQuery{}, repository.Page{Number: 2, Size: 2})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 2 || res.Total != 5 || res.Items[0].Name != "P3" {
			t.Fatalf("window: len=%d total=%d first=%q", len(res.Items), res.Total, res.Items[0].Name)
		}
	})
}

// Movement contracts

func RunMovementRepositoryContract(t *testing.T, makeRepo MovementFactory) {
	t.Helper()

	t.Run("product_join_and_unit_symbol", func(t *testing.T) {
		repo, seedUnit, seedProduct, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		box, err := seedUnit(ctx, UnitSeed{Name: "Box", Symbol: strp("bx")})
		if err != nil {
			t.Fatalf("seed unit: %v", err)
		}
		piece, err := seedUnit(ctx, UnitSeed{Name: "Piece", Symbol: strp("pc")})
		if err != nil {
			t.Fatalf("seed unit: %v", err)
		}
		crate, err := seedUnit(ctx, UnitSeed{Name: "Crate", Symbol: strp("cr")})
		if err != nil {
			t.Fatalf("seed unit: %v", err)
		}
		productID, err := seedProduct(ctx, ProductSeed{
			Name: "Milk 1L", RetailPrice: f64p(2.5),
			PurchaseUnitID: &box, SalesUnitID: &piece, TransferUnitID: &crate,
		})
		if err != nil {
			t.Fatalf("seed product: %v", err)
		}
		for _, mt := range []int{0, 2, 3} {
			if _, err := seed(ctx, MovementSeed{ProductID: productID, MovementType: mt, Quantity: f64p(4)}); err != nil {
				t.Fatalf("seed movement: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.MovementQuery{}, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Total != 3 {
			t.Fatalf("total: %d", res.Total)
		}
		symbols := map[int]string{}
		for _, m := range res.Items {
			if m.Product == nil || m.Product.UnitSymbol == nil {
				t.Fatalf("product join or symbol missing: %+v", m)
			}
			symbols[m.MovementType] = *m.Product.UnitSymbol
		}
		if symbols[0] != "bx" || symbols[2] != "cr" || symbols[3] != "pc" {
			t.Fatalf("unit symbol per movement type: %v", symbols)
		}
		if res.Items[0].MovementTypeLabel == "" || res.Items[0].MovementTypeLabel == "Unknown" {
			t.Fatalf("movement label: %q", res.Items[0].MovementTypeLabel)
		}
	})

	t.Run("order_and_orphan_product", func(t *testing.T) {
		repo, _, seedProduct, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		productID, err := seedProduct(ctx, ProductSeed{Name: "Tea"})
		if err != nil {
			t.Fatalf("seed product: %v", err)
		}
		first, err := seed(ctx, MovementSeed{ProductID: productID, MovementType: 3})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		orphan, err := seed(ctx, MovementSeed{ProductID: productID + 999, MovementType: 0})
		if err != nil {
			t.Fatalf("seed orphan: %v", err)
		}
		res, err := repo.List(ctx, repository.MovementQuery{}, repository.Page{Number: 1, Size: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Items[0].ID != orphan || res.Items[1].ID != first {
			t.Fatalf("order must be id descending: %+v", res.Items)
		}
		if res.Items[0].Product != nil {
			t.Fatalf("movement without product row must carry nil product: %+v", res.Items[0].Product)
		}
		byType, err := repo.List(ctx, repository.MovementQuery{MovementType: intp(3)}, repository.Page{Number: 1, Size: 10})
		if err != nil || byType.Total != 1 || byType.Items[0].ID != first {
			t.Fatalf("movement_type filter: %+v err=%v", byType, err)
		}
	})
}

// Company contracts

func RunCompanyRepositoryContract(t *testing.T, makeRepo CompanyFactory) {
	t.Helper()

	t.Run("filters", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := seed(ctx, CompanySeed{CompanyName: "Main Street POS", Currency: strp("USD")}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := seed(ctx, CompanySeed{CompanyName: "Harbour Outlet", Currency: strp("EUR")}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		byName, err := repo.List(ctx, repository.CompanyQuery{CompanyName: strp("street")}, repository.Page{Number: 1, Size: 10})
		if err != nil || byName.Total != 1 || byName.Items[0].CompanyName != "Main Street POS" {
			t.Fatalf("name filter: %+v err=%v", byName, err)
		}
		byCurrency, err := repo.List(ctx, repository.CompanyQuery{Currency: strp("EUR")}, repository.Page{Number: 1, Size: 10})
		if err != nil || byCurrency.Total != 1 || byCurrency.Items[0].Currency == nil || *byCurrency.Items[0].Currency != "EUR" {
			t.Fatalf("currency must match exactly: %+v err=%v", byCurrency, err)
		}
	})
}
