package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/posline/pos-report-service/internal/model"
	"github.com/posline/pos-report-service/internal/repository"
)

type userRepository struct{ db *sql.DB }

const userColumns = `id, name, email, password, role, email_verified_at, created_at, updated_at`

func (r *userRepository) scanAccount(row *sql.Row) (model.UserAccount, error) {
	var (
		out        model.UserAccount
		verifiedAt sql.NullTime
		createdAt  time.Time
		updatedAt  sql.NullTime
	)
	err := row.Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.Role, &verifiedAt, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.UserAccount{}, repository.ErrNotFound
		}
		return model.UserAccount{}, repository.MapMySQLError(err)
	}
	out.EmailVerifiedAt = timePtr(verifiedAt)
	out.CreatedAt = timeStr(createdAt)
	out.UpdatedAt = timePtr(updatedAt)
	return out, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (model.UserAccount, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email)
	return r.scanAccount(row)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (model.UserAccount, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id)
	return r.scanAccount(row)
}

func (r *userRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = ? AND id != ? LIMIT 1`, email, excludeID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, repository.MapMySQLError(err)
	}
	return true, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = ?, updated_at = NOW() WHERE id = ? LIMIT 1`, hash, id)
	if err != nil {
		return repository.MapMySQLError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, name, email *string) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *name)
	}
	if email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *email)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ? LIMIT 1`, args...)
	if err != nil {
		return repository.MapMySQLError(err)
	}
	return nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]model.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, role FROM users ORDER BY name`)
	if err != nil {
		return nil, repository.MapMySQLError(err)
	}
	defer rows.Close()

	users := make([]model.UserSummary, 0)
	for rows.Next() {
		var u model.UserSummary
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, repository.MapMySQLError(err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

var _ repository.UserRepository = (*userRepository)(nil)
