package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
)

// StaffRepo provides access to the 'staff' table.  Staff rows are created
// exclusively through RegisterWithCode, which consumes a staff code in the
// same transaction, and are never deleted by the application.
type StaffRepo struct{ DB *sql.DB }

func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{DB: db} }

const staffCols = "id,surname,other_names,date_of_birth,photo_id,unique_code,employee_number,created_at,updated_at"

// GetByEmployeeNumber fetches one staff member.
func (r *StaffRepo) GetByEmployeeNumber(ctx context.Context, employeeNumber string) (model.Staff, error) {
	return scanStaff(r.DB.QueryRowContext(ctx,
		"SELECT "+staffCols+" FROM staff WHERE employee_number=? LIMIT 1", employeeNumber))
}

// EmployeeNumberExists reports whether an employee number is already taken.
func (r *StaffRepo) EmployeeNumberExists(ctx context.Context, employeeNumber string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM staff WHERE employee_number=? LIMIT 1", employeeNumber).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListAll returns every staff row, newest first.
func (r *StaffRepo) ListAll(ctx context.Context) ([]model.Staff, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+staffCols+" FROM staff ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Staff
	for rows.Next() {
		var s model.Staff
		var photo sql.NullString
		if err := rows.Scan(&s.ID, &s.Surname, &s.OtherNames, &s.DateOfBirth, &photo,
			&s.UniqueCode, &s.EmployeeNumber, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if photo.Valid {
			p := photo.String
			s.PhotoID = &p
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// RegisterWithCode inserts the staff row and consumes the staff code in a
// single transaction.  Either both writes commit or neither is visible: a
// crash between them cannot orphan a staff row linked to a still-unused
// code.  The generated id and timestamps are populated on s before return.
// A duplicate employee number surfaces as ErrDuplicate.
func (r *StaffRepo) RegisterWithCode(ctx context.Context, s *model.Staff, codeID uint64, usedAt time.Time) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO staff (surname, other_names, date_of_birth, photo_id, unique_code, employee_number) VALUES (?,?,?,?,?,?)",
		s.Surname, s.OtherNames, s.DateOfBirth, s.PhotoID, s.UniqueCode, s.EmployeeNumber)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	// Consume the code: the used guard keeps a concurrent register() on the
	// same code from winning twice; the second transaction updates zero rows
	// and aborts.
	upd, err := tx.ExecContext(ctx,
		"UPDATE staff_codes SET used=TRUE, used_at=?, staff_id=? WHERE id=? AND used=FALSE",
		usedAt, s.ID, codeID)
	if err != nil {
		return err
	}
	n, err := upd.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	// Query back timestamps and defaults before committing.
	var photo sql.NullString
	if err := tx.QueryRowContext(ctx,
		"SELECT "+staffCols+" FROM staff WHERE id=?", s.ID).Scan(
		&s.ID, &s.Surname, &s.OtherNames, &s.DateOfBirth, &photo,
		&s.UniqueCode, &s.EmployeeNumber, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return err
	}
	if photo.Valid {
		p := photo.String
		s.PhotoID = &p
	}
	return tx.Commit()
}

// Update persists a partial update of date of birth and/or photo and returns
// the fresh row.  Nil fields are left untouched; surname, other names and
// the employee number are immutable after registration.
func (r *StaffRepo) Update(ctx context.Context, employeeNumber string, dateOfBirth *time.Time, photoID *string) (model.Staff, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE staff SET date_of_birth=COALESCE(?, date_of_birth), photo_id=COALESCE(?, photo_id) WHERE employee_number=?",
		dateOfBirth, photoID, employeeNumber)
	if err != nil {
		return model.Staff{}, err
	}
	return r.GetByEmployeeNumber(ctx, employeeNumber)
}

func scanStaff(row *sql.Row) (model.Staff, error) {
	var s model.Staff
	var photo sql.NullString
	err := row.Scan(&s.ID, &s.Surname, &s.OtherNames, &s.DateOfBirth, &photo,
		&s.UniqueCode, &s.EmployeeNumber, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return model.Staff{}, err
	}
	if photo.Valid {
		p := photo.String
		s.PhotoID = &p
	}
	return s, nil
}
