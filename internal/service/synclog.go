package service

import (
	"context"
	"math"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type syncLogService struct {
	provider repository.Provider
	log      zerolog.Logger
}

var _ SyncLogService = (*syncLogService)(nil)

func NewSyncLogService(provider repository.Provider, log zerolog.Logger) SyncLogService {
	return &syncLogService{
		provider: provider,
		log:      log.With().Str("module", "service").Str("component", "sync_log").Logger(),
	}
}

func (s *syncLogService) List(ctx context.Context, creds repository.Credentials, q repository.SyncLogQuery, lp ListParams) (SyncLogResult, SyncLogMeta, error) {
	var fe []FieldError
	fe = checkDate(fe, "start_date", q.StartDate)
	fe = checkDate(fe, "end_date", q.EndDate)
	fe = checkDate(fe, "synced_start_date", q.SyncedStartDate)
	fe = checkDate(fe, "synced_end_date", q.SyncedEndDate)
	if err := NewInvalidInputError(fe); err != nil {
		return SyncLogResult{}, SyncLogMeta{}, err
	}
	if q.SyncStatus != nil && *q.SyncStatus != "synced" && *q.SyncStatus != "pending" {
		return SyncLogResult{}, SyncLogMeta{}, NewStatusError(http.StatusBadRequest, `Invalid sync_status. Use "synced" or "pending"`)
	}
	p := normalizePage(lp, maxPerPageLogs)

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return SyncLogResult{}, SyncLogMeta{}, err
	}
	defer sess.Close()
	repo := sess.SyncLogs()

	page, err := repo.List(ctx, q, p)
	if err != nil {
		return SyncLogResult{}, SyncLogMeta{}, err
	}
	summary, err := repo.Summary(ctx, q)
	if err != nil {
		return SyncLogResult{}, SyncLogMeta{}, err
	}
	summary.TotalRecords = page.Total
	if page.Total > 0 {
		summary.SyncRate = math.Round(float64(summary.SyncedCount)/float64(page.Total)*100*100) / 100
	}

	topTables := []model.TableCount{}
	topModules := []model.ModuleCount{}
	topUsers := []model.UserSyncCount{}
	if page.Total > 0 {
		if topTables, err = repo.TopTables(ctx, q, topTablesLimit); err != nil {
			return SyncLogResult{}, SyncLogMeta{}, err
		}
		if topModules, err = repo.TopModules(ctx, q, topModulesLimit); err != nil {
			return SyncLogResult{}, SyncLogMeta{}, err
		}
		if topUsers, err = repo.TopUsers(ctx, q, topUsersLimit); err != nil {
			return SyncLogResult{}, SyncLogMeta{}, err
		}
	}

	meta, err := s.buildMeta(ctx, sess)
	if err != nil {
		return SyncLogResult{}, SyncLogMeta{}, err
	}

	items := page.Items
	if items == nil {
		items = []model.SyncLog{}
	}
	result := SyncLogResult{
		FiltersApplied: q,
		Pagination:     buildLogPagination(p, page.Total),
		Summary:        summary,
		TopTables:      topTables,
		TopModules:     topModules,
		TopUsers:       topUsers,
		SyncLogs:       items,
	}
	s.log.Debug().Int("total", page.Total).Int("page", p.Number).Msg("sync logs listed")
	return result, meta, nil
}

func (s *syncLogService) buildMeta(ctx context.Context, sess repository.Session) (SyncLogMeta, error) {
	repo := sess.SyncLogs()
	tables, err := repo.Tables(ctx)
	if err != nil {
		return SyncLogMeta{}, err
	}
	modules, err := repo.Modules(ctx)
	if err != nil {
		return SyncLogMeta{}, err
	}
	actions, err := repo.Actions(ctx)
	if err != nil {
		return SyncLogMeta{}, err
	}
	users, err := sess.Users().ListAll(ctx)
	if err != nil {
		return SyncLogMeta{}, err
	}
	if tables == nil {
		tables = []string{}
	}
	if modules == nil {
		modules = []string{}
	}
	if actions == nil {
		actions = []string{}
	}
	if users == nil {
		users = []model.UserSummary{}
	}
	return SyncLogMeta{
		AvailableTables:  tables,
		AvailableModules: modules,
		AvailableActions: actions,
		AllUsers:         users,
	}, nil
}
