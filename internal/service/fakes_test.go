package service_test

import (
	"context"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

// fakeProvider hands out one fake session per Acquire and records whether the
// session got closed, the per-request connection contract in miniature.
type fakeProvider struct {
	sess     *fakeSession
	err      error
	acquired int
}

func (p *fakeProvider) Acquire(_ context.Context, creds repository.Credentials) (repository.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	p.acquired++
	return p.sess, nil
}

var _ repository.Provider = (*fakeProvider)(nil)

type fakeSession struct {
	users     *fakeUserRepo
	activity  *fakeActivityRepo
	syncs     *fakeSyncRepo
	sales     *fakeSaleRepo
	incomes   *fakeIncomeRepo
	suppliers *fakeSupplierRepo
	products  *fakeProductRepo
	movements *fakeMovementRepo
	companies *fakeCompanyRepo
	closed    bool
}

func (s *fakeSession) Users() repository.UserRepository               { return s.users }
func (s *fakeSession) ActivityLogs() repository.ActivityLogRepository { return s.activity }
func (s *fakeSession) SyncLogs() repository.SyncLogRepository         { return s.syncs }
func (s *fakeSession) Sales() repository.SaleRepository               { return s.sales }
func (s *fakeSession) Incomes() repository.IncomeRepository           { return s.incomes }
func (s *fakeSession) Suppliers() repository.SupplierRepository       { return s.suppliers }
func (s *fakeSession) Products() repository.ProductRepository         { return s.products }
func (s *fakeSession) Movements() repository.MovementRepository       { return s.movements }
func (s *fakeSession) Companies() repository.CompanyRepository        { return s.companies }
func (s *fakeSession) Ping(context.Context) error                     { return nil }
func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

var _ repository.Session = (*fakeSession)(nil)

func testCreds() repository.Credentials {
	return repository.Credentials{Host: "localhost", Port: 3306, User: "pos", Database: "pos_main"}
}

type fakeUserRepo struct {
	accounts map[int64]model.UserAccount
	taken    map[string]bool

	updatedHash  string
	updatedName  *string
	updatedEmail *string
}

func newFakeUserRepo(accounts ...model.UserAccount) *fakeUserRepo {
	f := &fakeUserRepo{accounts: map[int64]model.UserAccount{}, taken: map[string]bool{}}
	for _, a := range accounts {
		f.accounts[a.ID] = a
	}
	return f
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (model.UserAccount, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return model.UserAccount{}, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (model.UserAccount, error) {
	a, ok := f.accounts[id]
	if !ok {
		return model.UserAccount{}, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeUserRepo) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, a := range f.accounts {
		if a.Email == email && a.ID != excludeID {
			return true, nil
		}
	}
	return f.taken[email], nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	a, ok := f.accounts[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.PasswordHash = hash
	f.accounts[id] = a
	f.updatedHash = hash
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, name, email *string) error {
	a, ok := f.accounts[id]
	if !ok {
		return repository.ErrNotFound
	}
	if name != nil {
		a.Name = *name
	}
	if email != nil {
		a.Email = *email
	}
	f.accounts[id] = a
	f.updatedName, f.updatedEmail = name, email
	return nil
}

func (f *fakeUserRepo) ListAll(context.Context) ([]model.UserSummary, error) {
	out := make([]model.UserSummary, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, model.UserSummary{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role})
	}
	return out, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeActivityRepo struct {
	page     repository.PageResult[model.ActivityLog]
	lastPage repository.Page
	lastQ    repository.ActivityLogQuery
	stats    model.ActivityStats
	modules  []model.ModuleCount
	users    []model.UserActivityCount
}

func (f *fakeActivityRepo) List(_ context.Context, q repository.ActivityLogQuery, p repository.Page) (repository.PageResult[model.ActivityLog], error) {
	f.lastQ, f.lastPage = q, p
	return f.page, nil
}
func (f *fakeActivityRepo) Stats(context.Context, repository.ActivityLogQuery) (model.ActivityStats, error) {
	return f.stats, nil
}
func (f *fakeActivityRepo) TopModules(context.Context, repository.ActivityLogQuery, int) ([]model.ModuleCount, error) {
	return f.modules, nil
}
func (f *fakeActivityRepo) TopUsers(context.Context, repository.ActivityLogQuery, int) ([]model.UserActivityCount, error) {
	return f.users, nil
}
func (f *fakeActivityRepo) Modules(context.Context) ([]string, error) { return []string{"sales"}, nil }
func (f *fakeActivityRepo) Actions(context.Context) ([]string, error) { return []string{"create"}, nil }

var _ repository.ActivityLogRepository = (*fakeActivityRepo)(nil)

type fakeSyncRepo struct {
	page     repository.PageResult[model.SyncLog]
	lastPage repository.Page
	summary  model.SyncSummary
}

func (f *fakeSyncRepo) List(_ context.Context, _ repository.SyncLogQuery, p repository.Page) (repository.PageResult[model.SyncLog], error) {
	f.lastPage = p
	return f.page, nil
}
func (f *fakeSyncRepo) Summary(context.Context, repository.SyncLogQuery) (model.SyncSummary, error) {
	return f.summary, nil
}
func (f *fakeSyncRepo) TopTables(context.Context, repository.SyncLogQuery, int) ([]model.TableCount, error) {
	return nil, nil
}
func (f *fakeSyncRepo) TopModules(context.Context, repository.SyncLogQuery, int) ([]model.ModuleCount, error) {
	return nil, nil
}
func (f *fakeSyncRepo) TopUsers(context.Context, repository.SyncLogQuery, int) ([]model.UserSyncCount, error) {
	return nil, nil
}
func (f *fakeSyncRepo) Tables(context.Context) ([]string, error)  { return nil, nil }
func (f *fakeSyncRepo) Modules(context.Context) ([]string, error) { return nil, nil }
func (f *fakeSyncRepo) Actions(context.Context) ([]string, error) { return nil, nil }

var _ repository.SyncLogRepository = (*fakeSyncRepo)(nil)

type fakeSaleRepo struct {
	page    repository.PageResult[model.Sale]
	returns map[int64][]model.SaleReturn
}

func (f *fakeSaleRepo) List(_ context.Context, _ repository.SaleQuery, _ repository.Page) (repository.PageResult[model.Sale], error) {
	return f.page, nil
}
func (f *fakeSaleRepo) ReturnsFor(_ context.Context, saleID int64, _ string) ([]model.SaleReturn, error) {
	return f.returns[saleID], nil
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

type fakeIncomeRepo struct{ page repository.PageResult[model.Income] }

func (f *fakeIncomeRepo) List(context.Context, repository.IncomeQuery, repository.Page) (repository.PageResult[model.Income], error) {
	return f.page, nil
}

var _ repository.IncomeRepository = (*fakeIncomeRepo)(nil)

type fakeSupplierRepo struct{ page repository.PageResult[model.Supplier] }

func (f *fakeSupplierRepo) List(context.Context, repository.SupplierQuery, repository.Page) (repository.PageResult[model.Supplier], error) {
	return f.page, nil
}

var _ repository.SupplierRepository = (*fakeSupplierRepo)(nil)

type fakeProductRepo struct {
	page     repository.PageResult[model.Product]
	lastPage repository.Page
}

func (f *fakeProductRepo) List(_ context.Context, _ repository.ProductQuery, p repository.Page) (repository.PageResult[model.Product], error) {
	f.lastPage = p
	return f.page, nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

type fakeMovementRepo struct{ page repository.PageResult[model.ProductMovement] }

func (f *fakeMovementRepo) List(context.Context, repository.MovementQuery, repository.Page) (repository.PageResult[model.ProductMovement], error) {
	return f.page, nil
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

type fakeCompanyRepo struct{ page repository.PageResult[model.Company] }

func (f *fakeCompanyRepo) List(context.Context, repository.CompanyQuery, repository.Page) (repository.PageResult[model.Company], error) {
	return f.page, nil
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)
