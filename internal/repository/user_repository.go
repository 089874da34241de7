package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
)

// UserRepo provides access to the 'users' table (administrator accounts).
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "id,email,password_hash,role,refresh_token,created_at,updated_at"

// Upsert creates the user or refreshes its password hash when the email
// already exists.  Used by the admin bootstrap at startup.
func (r *UserRepo) Upsert(ctx context.Context, email, passwordHash, role string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, role) VALUES (?,?,?) "+
			"ON DUPLICATE KEY UPDATE password_hash=VALUES(password_hash)",
		email, passwordHash, role)
	return err
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id=? LIMIT 1", id))
}

// SetRefreshToken stores the active refresh token on the user row.  Each
// login replaces the previous value, so at most one refresh token per user
// can mint access tokens.
func (r *UserRepo) SetRefreshToken(ctx context.Context, id uint64, token string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET refresh_token=? WHERE id=?", token, id)
	return err
}

// ClearRefreshToken blanks the stored refresh token wherever it matches the
// presented one and reports how many rows changed.  Zero means the token was
// never issued or was already invalidated.
func (r *UserRepo) ClearRefreshToken(ctx context.Context, token string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET refresh_token='' WHERE refresh_token=? AND refresh_token<>''", token)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
