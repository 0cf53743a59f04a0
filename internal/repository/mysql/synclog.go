package mysql

import (
	"context"
	"database/sql"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type syncLogRepository struct{ db *sql.DB }

const syncLogFrom = `FROM syn_logs sl LEFT JOIN users u ON sl.user_id = u.id`

func buildSyncFilter(q repository.SyncLogQuery) *repository.Filter {
	f := &repository.Filter{}
	if q.UserID != nil {
		f.Eq("sl.user_id", *q.UserID)
	}
	if q.TableName != nil {
		f.Eq("sl.table_name", *q.TableName)
	}
	if q.Module != nil {
		f.Eq("sl.module", *q.Module)
	}
	if q.Action != nil {
		f.Eq("sl.action", *q.Action)
	}
	if q.SyncStatus != nil {
		switch *q.SyncStatus {
		case "synced":
			f.Cond("sl.synced_at IS NOT NULL")
		case "pending":
			f.Cond("sl.synced_at IS NULL")
		}
	}
	if q.StartDate != nil {
		f.DateFrom("sl.created_at", *q.StartDate)
	}
	if q.EndDate != nil {
		f.DateTo("sl.created_at", *q.EndDate)
	}
	if q.SyncedStartDate != nil {
		f.DateFrom("sl.synced_at", *q.SyncedStartDate)
	}
	if q.SyncedEndDate != nil {
		f.DateTo("sl.synced_at", *q.SyncedEndDate)
	}
	if q.Search != nil {
		f.Search(*q.Search, "sl.table_name", "sl.module", "sl.action", "u.name", "u.email")
	}
	return f
}

func (r *syncLogRepository) List(ctx context.Context, q repository.SyncLogQuery, p repository.Page) (repository.PageResult[model.SyncLog], error) {
	f := buildSyncFilter(q)

	total, err := fetchCount(ctx, r.db, `SELECT COUNT(*) `+syncLogFrom, f)
	if err != nil {
		return repository.PageResult[model.SyncLog]{}, err
	}

	selectSQL := `SELECT sl.id, sl.user_id, u.name, u.email, sl.table_name, sl.module,
		sl.action, sl.synced_at, sl.created_at, sl.updated_at ` + syncLogFrom
	items, err := fetchPage(ctx, r.db, selectSQL, f, "sl.created_at DESC", p, scanSyncLog)
	if err != nil {
		return repository.PageResult[model.SyncLog]{}, err
	}
	return repository.PageResult[model.SyncLog]{Items: items, Total: total}, nil
}

func scanSyncLog(rows *sql.Rows) (model.SyncLog, error) {
	var (
		out       model.SyncLog
		userID    sql.NullInt64
		userName  sql.NullString
		userEmail sql.NullString
		tableName sql.NullString
		module    sql.NullString
		syncedAt  sql.NullTime
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)
	if err := rows.Scan(&out.ID, &userID, &userName, &userEmail, &tableName, &module,
		&out.Action, &syncedAt, &createdAt, &updatedAt); err != nil {
		return model.SyncLog{}, err
	}
	if userID.Valid {
		out.User = &model.UserRef{ID: userID.Int64, Name: strPtr(userName), Email: strPtr(userEmail)}
	}
	out.TableName = strPtr(tableName)
	out.Module = strPtr(module)
	out.SyncedAt = timePtr(syncedAt)
	out.FormattedSyncedAt = timePtr(syncedAt)
	if createdAt.Valid {
		out.CreatedAt = timeStr(createdAt.Time)
	}
	out.UpdatedAt = timePtr(updatedAt)
	if syncedAt.Valid {
		out.SyncStatus = "synced"
		if createdAt.Valid {
			d := int64(syncedAt.Time.Sub(createdAt.Time).Seconds())
			out.SyncDuration = &d
		}
	} else {
		out.SyncStatus = "pending"
	}
	return out, nil
}

func (r *syncLogRepository) Summary(ctx context.Context, q repository.SyncLogQuery) (model.SyncSummary, error) {
	f := buildSyncFilter(q)
	query := joinSQL(`SELECT
		COUNT(CASE WHEN sl.synced_at IS NOT NULL THEN 1 END),
		COUNT(CASE WHEN sl.synced_at IS NULL THEN 1 END),
		MIN(DATE(sl.created_at)), MAX(DATE(sl.created_at)),
		MIN(sl.synced_at), MAX(sl.synced_at) `+syncLogFrom, f.Clause())

	var (
		out                     model.SyncSummary
		firstLog, lastLog       sql.NullTime
		firstSynced, lastSynced sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, f.Args()...).
		Scan(&out.SyncedCount, &out.PendingCount, &firstLog, &lastLog, &firstSynced, &lastSynced)
	if err != nil {
		return model.SyncSummary{}, repository.MapMySQLError(err)
	}
	out.DateRange = model.SyncDateRange{
		FirstRecord: datePtr(firstLog),
		LastRecord:  datePtr(lastLog),
		FirstSynced: timePtr(firstSynced),
		LastSynced:  timePtr(lastSynced),
	}
	return out, nil
}

func (r *syncLogRepository) TopTables(ctx context.Context, q repository.SyncLogQuery, limit int) ([]model.TableCount, error) {
	f := buildSyncFilter(q)
	query := joinSQL(`SELECT sl.table_name, COUNT(*) AS count `+syncLogFrom, f.Clause(),
		"GROUP BY sl.table_name ORDER BY count DESC LIMIT ?")
	args := append(append([]any{}, f.Args()...), limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, repository.MapMySQLError(err)
	}
	defer rows.Close()

	var out []model.TableCount
	for rows.Next() {
		var (
			tc    model.TableCount
			table sql.NullString
		)
		if err := rows.Scan(&table, &tc.Count); err != nil {
			return nil, repository.MapMySQLError(err)
		}
		tc.TableName = strPtr(table)
		out = append(out, tc)
	}
	return out, rows.Err()
}

func (r *syncLogRepository) TopModules(ctx context.Context, q repository.SyncLogQuery, limit int) ([]model.ModuleCount, error) {
	f := buildSyncFilter(q)
	query := joinSQL(`SELECT sl.module, COUNT(*) AS count `+syncLogFrom, f.Clause(),
		"GROUP BY sl.module ORDER BY count DESC LIMIT ?")
	args := append(append([]any{}, f.Args()...), limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, repository.MapMySQLError(err)
	}
	defer rows.Close()

	var out []model.ModuleCount
	for rows.Next() {
		var (
			mc     model.ModuleCount
			module sql.NullString
		)
		if err := rows.Scan(&module, &mc.Count); err != nil {
			return nil, repository.MapMySQLError(err)
		}
		mc.Module = strPtr(module)
		out = append(out, mc)
	}
	return out, rows.Err()
}

func (r *syncLogRepository) TopUsers(ctx context.Context, q repository.SyncLogQuery, limit int) ([]model.UserSyncCount, error) {
	f := buildSyncFilter(q)
	query := joinSQL(`SELECT u.id, u.name, u.email, COUNT(*) AS sync_count `+syncLogFrom,
		f.Clause(), "GROUP BY sl.user_id, u.id, u.name, u.email ORDER BY sync_count DESC LIMIT ?")
	args := append(append([]any{}, f.Args()...), limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, repository.MapMySQLError(err)
	}
	defer rows.Close()

	var out []model.UserSyncCount
	for rows.Next() {
		var (
			uc          model.UserSyncCount
			id          sql.NullInt64
			name, email sql.NullString
		)
		if err := rows.Scan(&id, &name, &email, &uc.SyncCount); err != nil {
			return nil, repository.MapMySQLError(err)
		}
		uc.User = model.UserRef{ID: id.Int64, Name: strPtr(name), Email: strPtr(email)}
		out = append(out, uc)
	}
	return out, rows.Err()
}

func (r *syncLogRepository) Tables(ctx context.Context) ([]string, error) {
	return fetchStrings(ctx, r.db,
		`SELECT DISTINCT table_name FROM syn_logs WHERE table_name IS NOT NULL ORDER BY table_name`)
}

func (r *syncLogRepository) Modules(ctx context.Context) ([]string, error) {
	return fetchStrings(ctx, r.db,
		`SELECT DISTINCT module FROM syn_logs WHERE module IS NOT NULL ORDER BY module`)
}

func (r *syncLogRepository) Actions(ctx context.Context) ([]string, error) {
	return fetchStrings(ctx, r.db, `SELECT DISTINCT action FROM syn_logs ORDER BY action`)
}

var _ repository.SyncLogRepository = (*syncLogRepository)(nil)
