package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

const (
	topModulesLimit = 5
	topTablesLimit  = 5
	topUsersLimit   = 10
)

type activityLogService struct {
	provider repository.Provider
	log      zerolog.Logger
}

var _ ActivityLogService = (*activityLogService)(nil)

func NewActivityLogService(provider repository.Provider, log zerolog.Logger) ActivityLogService {
	return &activityLogService{
		provider: provider,
		log:      log.With().Str("module", "service").Str("component", "activity_log").Logger(),
	}
}

func (s *activityLogService) List(ctx context.Context, creds repository.Credentials, q repository.ActivityLogQuery, lp ListParams) (ActivityLogResult, ActivityLogMeta, error) {
	var fe []FieldError
	fe = checkDate(fe, "start_date", q.StartDate)
	fe = checkDate(fe, "end_date", q.EndDate)
	if err := NewInvalidInputError(fe); err != nil {
		return ActivityLogResult{}, ActivityLogMeta{}, err
	}
	p := normalizePage(lp, maxPerPageLogs)

	sess, err := s.provider.Acquire(ctx, creds)
	if err != nil {
		return ActivityLogResult{}, ActivityLogMeta{}, err
	}
	defer sess.Close()
	repo := sess.ActivityLogs()

	page, err := repo.List(ctx, q, p)
	if err != nil {
		return ActivityLogResult{}, ActivityLogMeta{}, err
	}
	stats, err := repo.Stats(ctx, q)
	if err != nil {
		return ActivityLogResult{}, ActivityLogMeta{}, err
	}
	stats.TotalLogs = page.Total

	topModules := []model.ModuleCount{}
	topUsers := []model.UserActivityCount{}
	if page.Total > 0 {
		if topModules, err = repo.TopModules(ctx, q, topModulesLimit); err != nil {
			return ActivityLogResult{}, ActivityLogMeta{}, err
		}
		if topUsers, err = repo.TopUsers(ctx, q, topUsersLimit); err != nil {
			return ActivityLogResult{}, ActivityLogMeta{}, err
		}
	}

	meta, err := s.buildMeta(ctx, sess)
	if err != nil {
		return ActivityLogResult{}, ActivityLogMeta{}, err
	}

	items := page.Items
	if items == nil {
		items = []model.ActivityLog{}
	}
	result := ActivityLogResult{
		FiltersApplied: q,
		Pagination:     buildLogPagination(p, page.Total),
		Statistics:     stats,
		TopModules:     topModules,
		TopUsers:       topUsers,
		ActivityLogs:   items,
	}
	s.log.Debug().Int("total", page.Total).Int("page", p.Number).Msg("activity logs listed")
	return result, meta, nil
}

func (s *activityLogService) buildMeta(ctx context.Context, sess repository.Session) (ActivityLogMeta, error) {
	repo := sess.ActivityLogs()
	modules, err := repo.Modules(ctx)
	if err != nil {
		return ActivityLogMeta{}, err
	}
	actions, err := repo.Actions(ctx)
	if err != nil {
		return ActivityLogMeta{}, err
	}
	users, err := sess.Users().ListAll(ctx)
	if err != nil {
		return ActivityLogMeta{}, err
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
	return ActivityLogMeta{AvailableModules: modules, AvailableActions: actions, AllUsers: users}, nil
}
