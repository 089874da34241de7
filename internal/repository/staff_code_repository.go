package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
)

// StaffCodeRepo provides access to the 'staff_codes' table.
type StaffCodeRepo struct{ DB *sql.DB }

func NewStaffCodeRepo(db *sql.DB) *StaffCodeRepo { return &StaffCodeRepo{DB: db} }

const staffCodeCols = "id,code,used,staff_id,created_at,expires_at,used_at"

// Exists reports whether any live row carries the given code value.
func (r *StaffCodeRepo) Exists(ctx context.Context, code string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM staff_codes WHERE code=? LIMIT 1", code).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a fresh unused code row and returns it.  A unique-key
// violation (a concurrent issuer won the race) surfaces as ErrDuplicate so
// the caller can regenerate.
func (r *StaffCodeRepo) Create(ctx context.Context, code string, expiresAt time.Time) (model.StaffCode, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO staff_codes (code, used, expires_at) VALUES (?,FALSE,?)",
		code, expiresAt)
	if err != nil {
		// MySQL error 1062 = duplicate entry for a unique key.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.StaffCode{}, ErrDuplicate
		}
		return model.StaffCode{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.StaffCode{}, err
	}
	return r.getByID(ctx, uint64(id))
}

// GetByCode fetches a code row by its code value.
func (r *StaffCodeRepo) GetByCode(ctx context.Context, code string) (model.StaffCode, error) {
	return scanStaffCode(r.DB.QueryRowContext(ctx,
		"SELECT "+staffCodeCols+" FROM staff_codes WHERE code=? LIMIT 1", code))
}

// ListAll returns every code row, newest first, for the admin dashboard.
func (r *StaffCodeRepo) ListAll(ctx context.Context) ([]model.StaffCode, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+staffCodeCols+" FROM staff_codes ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StaffCode
	for rows.Next() {
		c, err := scanStaffCodeRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListReapable returns the ids of up to limit rows that are used or past
// expiry at the given instant.  The reaper deletes them one by one.
func (r *StaffCodeRepo) ListReapable(ctx context.Context, now time.Time, limit int) ([]uint64, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id FROM staff_codes WHERE used=TRUE OR expires_at<=? LIMIT ?",
		now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes a code row by id.  Deleting an already-gone row is not an
// error, which keeps the reaper idempotent.
func (r *StaffCodeRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM staff_codes WHERE id=?", id)
	return err
}

func (r *StaffCodeRepo) getByID(ctx context.Context, id uint64) (model.StaffCode, error) {
	return scanStaffCode(r.DB.QueryRowContext(ctx,
		"SELECT "+staffCodeCols+" FROM staff_codes WHERE id=? LIMIT 1", id))
}

func scanStaffCode(row *sql.Row) (model.StaffCode, error) {
	var c model.StaffCode
	var staffID sql.NullInt64
	var usedAt sql.NullTime
	err := row.Scan(&c.ID, &c.Code, &c.Used, &staffID, &c.CreatedAt, &c.ExpiresAt, &usedAt)
	if err != nil {
		return model.StaffCode{}, err
	}
	applyNullables(&c, staffID, usedAt)
	return c, nil
}

func scanStaffCodeRows(rows *sql.Rows) (model.StaffCode, error) {
	var c model.StaffCode
	var staffID sql.NullInt64
	var usedAt sql.NullTime
	err := rows.Scan(&c.ID, &c.Code, &c.Used, &staffID, &c.CreatedAt, &c.ExpiresAt, &usedAt)
	if err != nil {
		return model.StaffCode{}, err
	}
	applyNullables(&c, staffID, usedAt)
	return c, nil
}

func applyNullables(c *model.StaffCode, staffID sql.NullInt64, usedAt sql.NullTime) {
	if staffID.Valid {
		v := uint64(staffID.Int64)
		c.StaffID = &v
	}
	if usedAt.Valid {
		t := usedAt.Time
		c.UsedAt = &t
	}
}
