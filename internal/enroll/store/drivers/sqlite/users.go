package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sablehq/enrolld/internal/enroll/domain"
	"github.com/sablehq/enrolld/internal/enroll/store"
)

type usersRepo struct {
	db querier
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email_address, password_hash, code, code_expires_at, created_at
		FROM users
		WHERE email_address = ?`,
		email,
	)

	var (
		u             domain.User
		code          sql.NullString
		codeExpiresAt sql.NullTime
	)
	err := row.Scan(&u.ID, &u.EmailAddress, &u.PasswordHash, &code, &codeExpiresAt, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Code = mapNullStringPtr(code)
	u.CodeExpiresAt = mapNullTimePtr(codeExpiresAt)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email_address, password_hash, code, code_expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.EmailAddress,
		u.PasswordHash,
		mapOptionalString(u.Code),
		mapOptionalTime(u.CodeExpiresAt),
		u.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *usersRepo) ClearCode(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET code = NULL, code_expires_at = NULL
		WHERE id = ?`,
		userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) CountDeadEnd(ctx context.Context, cutoff time.Time) (int64, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM users
		WHERE code IS NOT NULL AND code_expires_at < ?`,
		cutoff.UTC(),
	)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
