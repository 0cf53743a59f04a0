package service

import (
	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

// ListResult is the data payload shared by the reference-data list endpoints.
// The applied filters are echoed back so callers can confirm what the server
// actually understood.
type ListResult[T any, Q any] struct {
	Filters    Q                `json:"filters"`
	Pagination model.Pagination `json:"pagination"`
	Items      []T              `json:"items"`
}

// MovementResult adds the movement type legend to the standard list payload.
type MovementResult struct {
	Filters       repository.MovementQuery `json:"filters"`
	Pagination    model.Pagination         `json:"pagination"`
	Items         []model.ProductMovement  `json:"items"`
	MovementTypes []string                 `json:"movement_types"`
}

// ActivityLogResult is the data payload of the activity log report.
type ActivityLogResult struct {
	FiltersApplied repository.ActivityLogQuery `json:"filters_applied"`
	Pagination     model.LogPagination         `json:"pagination"`
	Statistics     model.ActivityStats         `json:"statistics"`
	TopModules     []model.ModuleCount         `json:"top_modules"`
	TopUsers       []model.UserActivityCount   `json:"top_users"`
	ActivityLogs   []model.ActivityLog         `json:"activity_logs"`
}

// ActivityLogMeta is the lookup block emitted alongside the activity report.
type ActivityLogMeta struct {
	AvailableModules []string            `json:"available_modules"`
	AvailableActions []string            `json:"available_actions"`
	AllUsers         []model.UserSummary `json:"all_users"`
}

// SyncLogResult is the data payload of the synchronization log report.
type SyncLogResult struct {
	FiltersApplied repository.SyncLogQuery `json:"filters_applied"`
	Pagination     model.LogPagination     `json:"pagination"`
	Summary        model.SyncSummary       `json:"summary"`
	TopTables      []model.TableCount      `json:"top_tables"`
	TopModules     []model.ModuleCount     `json:"top_modules"`
	TopUsers       []model.UserSyncCount   `json:"top_users"`
	SyncLogs       []model.SyncLog         `json:"sync_logs"`
}

type SyncLogMeta struct {
	AvailableTables  []string            `json:"available_tables"`
	AvailableModules []string            `json:"available_modules"`
	AvailableActions []string            `json:"available_actions"`
	AllUsers         []model.UserSummary `json:"all_users"`
}
