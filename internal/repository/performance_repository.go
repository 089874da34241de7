package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
)

// PerformanceRepo provides access to the 'api_performance' telemetry table.
// Rows are append-only; nothing prunes them.
type PerformanceRepo struct{ DB *sql.DB }

func NewPerformanceRepo(db *sql.DB) *PerformanceRepo { return &PerformanceRepo{DB: db} }

// Record appends one telemetry row.
func (r *PerformanceRepo) Record(ctx context.Context, p model.ApiPerformance) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO api_performance (endpoint, method, success, status_code, response_time) VALUES (?,?,?,?,?)",
		p.Endpoint, p.Method, p.Success, p.StatusCode, p.ResponseTime)
	return err
}

// ListRange returns rows created within [from, to], oldest first.
func (r *PerformanceRepo) ListRange(ctx context.Context, from, to time.Time) ([]model.ApiPerformance, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,endpoint,method,success,status_code,response_time,created_at "+
			"FROM api_performance WHERE created_at>=? AND created_at<=? ORDER BY created_at",
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ApiPerformance
	for rows.Next() {
		var p model.ApiPerformance
		if err := rows.Scan(&p.ID, &p.Endpoint, &p.Method, &p.Success, &p.StatusCode,
			&p.ResponseTime, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
