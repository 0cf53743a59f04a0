package service

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

// The reference-data endpoints share one shape: validate filters, normalize
// the page window, run count plus page under a fresh session, echo the
// filters back. Only sales (return stitching) and movements (type legend)
// deviate.

type saleService struct {
	provider repository.Provider
	log      zerolog.Logger
}

var _ SaleService = (*saleService)(nil)

func NewSaleService(provider repository.Provider, log zerolog.Logger) SaleService {
	return &saleService{
		provider: provider,
		log:      log.With().Str("module", "service").Str("component", "sale").Logger(),
	}
}

func (s *saleService) List(ctx context.Context, creds repository.Credentials, q repository.SaleQuery, lp ListParams) (ListResult[model.Sale, repository.SaleQuery], error) {
	var zero ListResult[model.Sale, repository.SaleQuery]
	var fe []FieldError
	fe = checkDate(fe, "date_from", q.DateFrom)
	fe = checkDate(fe, "date_to", q.DateTo)
	if err := NewInvalidInputError(fe); err != nil {
		return zero, err
	}
	p := normalizePage(lp, maxPerPageLists)

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return zero, err
	}
	defer sess.Close()

	page, err := sess.Sales().List(ctx, q, p)
	if err != nil {
		return zero, err
	}
	for i := range page.Items {
		sale := &page.Items[i]
		if sale.HasReturn == 0 {
			continue
		}
		returns, err := sess.Sales().ReturnsFor(ctx, sale.ID, sale.InvoiceNo)
		if err != nil {
			return zero, err
		}
		if returns != nil {
			sale.Returns = returns
		}
	}
	s.log.Debug().Int("total", page.Total).Msg("sales listed")
	return buildListResult(q, p, page), nil
}

type incomeService struct {
	provider repository.Provider
	log      zerolog.Logger
}

var _ IncomeService = (*incomeService)(nil)

func NewIncomeService(provider repository.Provider, log zerolog.Logger) IncomeService {
	return &incomeService{
		provider: provider,
		log:      log.With().Str("module", "service").Str("component", "income").Logger(),
	}
}

func (s *incomeService) List(ctx context.Context, creds repository.Credentials, q repository.IncomeQuery, lp ListParams) (ListResult[model.Income, repository.IncomeQuery], error) {
	var zero ListResult[model.Income, repository.IncomeQuery]
	var fe []FieldError
	fe = checkDate(fe, "date_from", q.DateFrom)
	fe = checkDate(fe, "date_to", q.DateTo)
	if q.AmountMin != nil && q.AmountMax != nil && *q.AmountMin > *q.AmountMax {
		fe = append(fe, FieldError{Field: "amount_min", Message: "amount_min cannot exceed amount_max"})
	}
	if err := NewInvalidInputError(fe); err != nil {
		return zero, err
	}
	p := normalizePage(lp, maxPerPageLists)

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return zero, err
	}
	defer sess.Close()

	page, err := sess.Incomes().List(ctx, q, p)
	if err != nil {
		return zero, err
	}
	s.log.Debug().Int("total", page.Total).Msg("incomes listed")
	return buildListResult(q, p, page), nil
}

type supplierService struct {
	provider repository.Provider
	log      zerolog.Logger
}

var _ SupplierService = (*supplierService)(nil)

func NewSupplierService(provider repository.Provider, log zerolog.Logger) SupplierService {
	return &supplierService{
		provider: provider,
		log:      log.With().Str("module", "service").Str("component", "supplier").Logger(),
	}
}

func (s *supplierService) List(ctx context.Context, creds repository.Credentials, q repository.SupplierQuery, lp ListParams) (ListResult[model.Supplier, repository.SupplierQuery], error) {
	var zero ListResult[model.Supplier, repository.SupplierQuery]
	p := normalizePage(lp, maxPerPageLists)

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return zero, err
	}
	defer sess.Close()

	page, err := sess.Suppliers().List(ctx, q, p)
	if err != nil {
		return zero, err
	}
	s.log.Debug().Int("total", page.Total).Msg("suppliers listed")
	return buildListResult(q, p, page), nil
}

type productService struct {
	provider repository.Provider
	log      zerolog.Logger
}

var _ ProductService = (*productService)(nil)

func NewProductService(provider repository.Provider, log zerolog.Logger) ProductService {
	return &productService{
		provider: provider,
		log:      log.With().Str("module", "service").Str("component", "product").Logger(),
	}
}

func (s *productService) List(ctx context.Context, creds repository.Credentials, q repository.ProductQuery, lp ListParams) (ListResult[model.Product, repository.ProductQuery], error) {
	var zero ListResult[model.Product, repository.ProductQuery]
	if q.Status != nil && (*q.Status < 0 || *q.Status > 2) {
		return zero, NewStatusError(http.StatusBadRequest, "Invalid status value")
	}
	p := normalizePage(lp, maxPerPageProducts)

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return zero, err
	}
	defer sess.Close()

	page, err := sess.Products().List(ctx, q, p)
	if err != nil {
		return zero, err
	}
	s.log.Debug().Int("total", page.Total).Msg("products listed")
	return buildListResult(q, p, page), nil
}

type movementService struct {
	provider repository.Provider
	log      zerolog.Logger
}

var _ MovementService = (*movementService)(nil)

func NewMovementService(provider repository.Provider, log zerolog.Logger) MovementService {
	return &movementService{
		provider: provider,
		log:      log.With().Str("module", "service").Str("component", "movement").Logger(),
	}
}

func (s *movementService) List(ctx context.Context, creds repository.Credentials, q repository.MovementQuery, lp ListParams) (MovementResult, error) {
	var fe []FieldError
	fe = checkDate(fe, "date_from", q.DateFrom)
	fe = checkDate(fe, "date_to", q.DateTo)
	if err := NewInvalidInputError(fe); err != nil {
		return MovementResult{}, err
	}
	p := normalizePage(lp, maxPerPageLists)

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return MovementResult{}, err
	}
	defer sess.Close()

	page, err := sess.Movements().List(ctx, q, p)
	if err != nil {
		return MovementResult{}, err
	}
	items := page.Items
	if items == nil {
		items = []model.ProductMovement{}
	}
	s.log.Debug().Int("total", page.Total).Msg("movements listed")
	return MovementResult{
		Filters:       q,
		Pagination:    buildPagination(p, page.Total),
		Items:         items,
		MovementTypes: model.MovementTypes(),
	}, nil
}

type companyService struct {
	provider repository.Provider
	log      zerolog.Logger
}

var _ CompanyService = (*companyService)(nil)

func NewCompanyService(provider repository.Provider, log zerolog.Logger) CompanyService {
	return &companyService{
		provider: provider,
		log:      log.With().Str("module", "service").Str("component", "company").Logger(),
	}
}

func (s *companyService) List(ctx context.Context, creds repository.Credentials, q repository.CompanyQuery, lp ListParams) (ListResult[model.Company, repository.CompanyQuery], error) {
	var zero ListResult[model.Company, repository.CompanyQuery]
	p := normalizePage(lp, maxPerPageLists)

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return zero, err
	}
	defer sess.Close()

	page, err := sess.Companies().List(ctx, q, p)
	if err != nil {
		return zero, err
	}
	s.log.Debug().Int("total", page.Total).Msg("companies listed")
	return buildListResult(q, p, page), nil
}

func buildListResult[T any, Q any](q Q, p repository.Page, page repository.PageResult[T]) ListResult[T, Q] {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return ListResult[T, Q]{
		Filters:    q,
		Pagination: buildPagination(p, page.Total),
		Items:      items,
	}
}
