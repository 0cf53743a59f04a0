package service_test

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
	"github.com/posline/pos-report-service/internal/service"
)

func syncFixture(total, synced int) service.SyncLogService {
	repo := &fakeSyncRepo{
		page:    repository.PageResult[model.SyncLog]{Items: []model.SyncLog{}, Total: total},
		summary: model.SyncSummary{SyncedCount: synced, PendingCount: total - synced},
	}
	sess := &fakeSession{syncs: repo, users: newFakeUserRepo()}
	return service.NewSyncLogService(&fakeProvider{sess: sess}, zerolog.New(io.Discard))
}

func TestSyncLogService_SyncRate(t *testing.T) {
	cases := []struct {
		name   string
		total  int
		synced int
		want   float64
	}{
		{"two thirds", 3, 2, 66.67},
		{"all synced", 10, 10, 100},
		{"none synced", 4, 0, 0},
		{"empty keeps zero", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := syncFixture(tc.total, tc.synced)
			data, _, err := svc.List(context.Background(), testCreds(), repository.SyncLogQuery{}, service.ListParams{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if data.Summary.SyncRate != tc.want {
				t.Fatalf("sync rate %v, want %v", data.Summary.SyncRate, tc.want)
			}
			if data.Summary.TotalRecords != tc.total {
				t.Fatalf("total_records %d, want %d", data.Summary.TotalRecords, tc.total)
			}
		})
	}
}

func TestSyncLogService_InvalidSyncStatus(t *testing.T) {
	svc := syncFixture(0, 0)

	status := "done"
	q := repository.SyncLogQuery{SyncStatus: &status}
	_, _, err := svc.List(context.Background(), testCreds(), q, service.ListParams{})
	code, msg := statusOf(t, err)
	if code != 400 || msg != `Invalid sync_status. Use "synced" or "pending"` {
		t.Fatalf("got (%d,%q)", code, msg)
	}
}

func TestSyncLogService_ValidSyncStatuses(t *testing.T) {
	for _, status := range []string{"synced", "pending"} {
		svc := syncFixture(1, 1)
		q := repository.SyncLogQuery{SyncStatus: &status}
		if _, _, err := svc.List(context.Background(), testCreds(), q, service.ListParams{}); err != nil {
			t.Fatalf("status %q: unexpected error %v", status, err)
		}
	}
}

func TestSyncLogService_SyncedDateValidation(t *testing.T) {
	svc := syncFixture(0, 0)

	bad := "2024/01/01"
	q := repository.SyncLogQuery{SyncedStartDate: &bad}
	_, _, err := svc.List(context.Background(), testCreds(), q, service.ListParams{})
	fe := service.FieldErrors(err)
	if len(fe) != 1 || fe[0].Field != "synced_start_date" {
		t.Fatalf("expected synced_start_date field error, got %+v (err %v)", fe, err)
	}
}
