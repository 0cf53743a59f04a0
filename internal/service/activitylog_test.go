package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
)

func activityFixture(total int) (*fakeActivityRepo, service.ActivityLogService) {
	repo := &fakeActivityRepo{
		page: repository.PageResult[model.ActivityLog]{
			Items: []model.ActivityLog{{ID: 1, Action: "create"}},
			Total: total,
		},
		modules: []model.ModuleCount{},
		users:   []model.UserActivityCount{},
	}
	sess := &fakeSession{activity: repo, users: newFakeUserRepo()}
	return repo, service.NewActivityLogService(&fakeProvider{sess: sess}, zerolog.New(io.Discard))
}

func TestActivityLogService_PaginationNormalization(t *testing.T) {
	cases := []struct {
		name     string
		params   service.ListParams
		wantPage int
		wantSize int
	}{
		{"defaults", service.ListParams{}, 1, 50},
		{"explicit", service.ListParams{Page: 2, PerPage: 10}, 2, 10},
		{"page below one clamps", service.ListParams{Page: -3, PerPage: 10}, 1, 10},
		{"per_page above cap falls back", service.ListParams{Page: 1, PerPage: 500}, 1, 50},
		{"per_page zero falls back", service.ListParams{Page: 1, PerPage: 0}, 1, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, svc := activityFixture(25)
			_, _, err := svc.List(context.Background(), testCreds(), repository.ActivityLogQuery{}, tc.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.lastPage.Number != tc.wantPage || repo.lastPage.Size != tc.wantSize {
				t.Fatalf("got page %+v want (%d,%d)", repo.lastPage, tc.wantPage, tc.wantSize)
			}
		})
	}
}

func TestActivityLogService_PaginationBlock(t *testing.T) {
	_, svc := activityFixture(25)

	data, _, err := svc.List(context.Background(), testCreds(), repository.ActivityLogQuery{},
		service.ListParams{Page: 2, PerPage: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := data.Pagination
	if p.CurrentPage != 2 || p.PerPage != 10 || p.TotalItems != 25 || p.TotalPages != 3 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if !p.HasNextPage || !p.HasPrevPage {
		t.Fatalf("page 2 of 3 must have both neighbours: %+v", p)
	}
	if data.Statistics.TotalLogs != 25 {
		t.Fatalf("statistics total %d, want list total", data.Statistics.TotalLogs)
	}
}

func TestActivityLogService_InvalidDates(t *testing.T) {
	_, svc := activityFixture(0)

	bad := "01-02-2024"
	q := repository.ActivityLogQuery{StartDate: &bad}
	_, _, err := svc.List(context.Background(), testCreds(), q, service.ListParams{})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	fe := service.FieldErrors(err)
	if len(fe) != 1 || fe[0].Field != "start_date" {
		t.Fatalf("expected start_date field error, got %+v", fe)
	}
}

func TestActivityLogService_EmptyResultSkipsTopQueries(t *testing.T) {
	repo, svc := activityFixture(0)
	repo.modules = nil
	repo.users = nil

	data, meta, err := svc.List(context.Background(), testCreds(), repository.ActivityLogQuery{}, service.ListParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.TopModules == nil || data.TopUsers == nil {
		t.Fatalf("top lists must serialize as empty arrays, not null")
	}
	if meta.AvailableModules == nil || meta.AllUsers == nil {
		t.Fatalf("meta lists must serialize as empty arrays, not null")
	}
}
