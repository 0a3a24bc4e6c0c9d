// goudace | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/goudace/shop-backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdatePermissions(ctx context.Context, id string, perms Permissions) error
	SetResetToken(
		ctx context.Context,
		id, token string,
		expiry time.Time,
	) error
	ConsumeResetToken(
		ctx context.Context,
		token, passwordHash string,
		cutoff time.Time,
	) (*User, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, email, name, password_hash, permissions,
	       reset_token, reset_token_expiry, created_at, updated_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, permissions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.Permissions,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE id = $1`,
		userColumns,
	)

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE email = $1`,
		userColumns,
	)

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM users ORDER BY created_at DESC`,
		userColumns,
	)

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) UpdatePermissions(
	ctx context.Context,
	id string,
	perms Permissions,
) error {
	query := `
		UPDATE users
		SET permissions = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, perms)
	if err != nil {
		return fmt.Errorf("update permissions: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update permissions: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update permissions: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) SetResetToken(
	ctx context.Context,
	id, token string,
	expiry time.Time,
) error {
	query := `
		UPDATE users
		SET reset_token = $2, reset_token_expiry = $3, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, token, expiry)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set reset token: %w", core.ErrNotFound)
	}

	return nil
}

// ConsumeResetToken is a single conditional update: the token matches at most
// one row, and clearing reset_token in the same statement makes the token
// unusable a second time even under concurrent attempts.
func (r *repository) ConsumeResetToken(
	ctx context.Context,
	token, passwordHash string,
	cutoff time.Time,
) (*User, error) {
	query := fmt.Sprintf(`
		UPDATE users
		SET password_hash = $2,
		    reset_token = NULL,
		    reset_token_expiry = NULL,
		    updated_at = NOW()
		WHERE reset_token = $1 AND reset_token_expiry >= $3
		RETURNING %s`,
		userColumns,
	)

	var user User
	err := r.db.GetContext(ctx, &user, query, token, passwordHash, cutoff)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("consume reset token: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("consume reset token: %w", err)
	}

	return &user, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
