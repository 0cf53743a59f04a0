package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type activityLogRepository struct{ db *sql.DB }

// activityLogFrom joins users in every variant of the query so search
// predicates against u.name stay valid for count, stats and top queries alike.
const activityLogFrom = `FROM activity_logs al LEFT JOIN users u ON al.user_id = u.id`

func buildActivityFilter(q repository.ActivityLogQuery) *repository.Filter {
	f := &repository.Filter{}
	if q.UserID != nil {
		f.Eq("al.user_id", *q.UserID)
	}
	if q.StartDate != nil {
		f.DateFrom("al.created_at", *q.StartDate)
	}
	if q.EndDate != nil {
		f.DateTo("al.created_at", *q.EndDate)
	}
	if q.Module != nil {
		f.Eq("al.module", *q.Module)
	}
	if q.Action != nil {
		f.Eq("al.action", *q.Action)
	}
	if q.Search != nil {
		f.Search(*q.Search, "al.details", "u.name", "al.module", "al.action")
	}
	return f
}

// decodeDetails opportunistically parses the stored JSON text. Any valid
// JSON value passes through decoded, objects and scalars alike; only text
// that fails to parse comes back wrapped as {"raw": <text>}.
func decodeDetails(raw sql.NullString) any {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var out any
	if err := json.Unmarshal([]byte(raw.String), &out); err != nil {
		return map[string]any{"raw": raw.String}
	}
	return out
}

func (r *activityLogRepository) List(ctx context.Context, q repository.ActivityLogQuery, p repository.Page) (repository.PageResult[model.ActivityLog], error) {
	f := buildActivityFilter(q)

	total, err := fetchCount(ctx, r.db, `SELECT COUNT(*) `+activityLogFrom, f)
	if err != nil {
		return repository.PageResult[model.ActivityLog]{}, err
	}

	selectSQL := `SELECT al.id, al.user_id, u.name, u.email, al.action, al.module,
		al.details, al.created_at, al.updated_at ` + activityLogFrom
	items, err := fetchPage(ctx, r.db, selectSQL, f, "al.created_at DESC", p, scanActivityLog)
	if err != nil {
		return repository.PageResult[model.ActivityLog]{}, err
	}
	return repository.PageResult[model.ActivityLog]{Items: items, Total: total}, nil
}

func scanActivityLog(rows *sql.Rows) (model.ActivityLog, error) {
	var (
		out       model.ActivityLog
		userID    sql.NullInt64
		userName  sql.NullString
		userEmail sql.NullString
		module    sql.NullString
		details   sql.NullString
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)
	if err := rows.Scan(&out.ID, &userID, &userName, &userEmail, &out.Action, &module,
		&details, &createdAt, &updatedAt); err != nil {
		return model.ActivityLog{}, err
	}
	if userID.Valid {
		out.User = &model.UserRef{ID: userID.Int64, Name: strPtr(userName), Email: strPtr(userEmail)}
	}
	out.Module = strPtr(module)
	out.Details = decodeDetails(details)
	if createdAt.Valid {
		out.CreatedAt = timeStr(createdAt.Time)
		out.FormattedDate = timeStr(createdAt.Time)
	}
	out.UpdatedAt = timePtr(updatedAt)
	return out, nil
}

func (r *activityLogRepository) Stats(ctx context.Context, q repository.ActivityLogQuery) (model.ActivityStats, error) {
	f := buildActivityFilter(q)
	query := joinSQL(`SELECT COUNT(DISTINCT al.user_id), COUNT(DISTINCT al.module),
		COUNT(DISTINCT al.action), MIN(DATE(al.created_at)), MAX(DATE(al.created_at)) `+activityLogFrom,
		f.Clause())

	var (
		out        model.ActivityStats
		first, last sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, f.Args()...).
		Scan(&out.UniqueUsers, &out.UniqueModules, &out.UniqueActions, &first, &last)
	if err != nil {
		return model.ActivityStats{}, repository.MapMySQLError(err)
	}
	out.DateRange = model.DateRange{Start: datePtr(first), End: datePtr(last)}
	return out, nil
}

func (r *activityLogRepository) TopModules(ctx context.Context, q repository.ActivityLogQuery, limit int) ([]model.ModuleCount, error) {
	f := buildActivityFilter(q)
	query := joinSQL(`SELECT al.module, COUNT(*) AS count `+activityLogFrom, f.Clause(),
		"GROUP BY al.module ORDER BY count DESC LIMIT ?")
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

func (r *activityLogRepository) TopUsers(ctx context.Context, q repository.ActivityLogQuery, limit int) ([]model.UserActivityCount, error) {
	f := buildActivityFilter(q)
	query := joinSQL(`SELECT u.id, u.name, u.email, COUNT(*) AS activity_count `+activityLogFrom,
		f.Clause(), "GROUP BY al.user_id, u.id, u.name, u.email ORDER BY activity_count DESC LIMIT ?")
	args := append(append([]any{}, f.Args()...), limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, repository.MapMySQLError(err)
	}
	defer rows.Close()

	var out []model.UserActivityCount
	for rows.Next() {
		var (
			uc          model.UserActivityCount
			id          sql.NullInt64
			name, email sql.NullString
		)
		if err := rows.Scan(&id, &name, &email, &uc.ActivityCount); err != nil {
			return nil, repository.MapMySQLError(err)
		}
		uc.User = model.UserRef{ID: id.Int64, Name: strPtr(name), Email: strPtr(email)}
		out = append(out, uc)
	}
	return out, rows.Err()
}

func (r *activityLogRepository) Modules(ctx context.Context) ([]string, error) {
	return fetchStrings(ctx, r.db,
		`SELECT DISTINCT module FROM activity_logs WHERE module IS NOT NULL ORDER BY module`)
}

func (r *activityLogRepository) Actions(ctx context.Context) ([]string, error) {
	return fetchStrings(ctx, r.db, `SELECT DISTINCT action FROM activity_logs ORDER BY action`)
}

var _ repository.ActivityLogRepository = (*activityLogRepository)(nil)
