package handler

import (
	"context"
	"time"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/queue"
)

// The handlers depend on narrow store interfaces rather than the concrete
// repositories so tests can drive them with in-memory fakes.  The
// repository types satisfy these interfaces directly.

// UserStore is the slice of user persistence the auth endpoints need.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	SetRefreshToken(ctx context.Context, id uint64, token string) error
	ClearRefreshToken(ctx context.Context, token string) (int64, error)
}

// StaffCodeStore covers issuing, validating and listing staff codes.
type StaffCodeStore interface {
	Exists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, code string, expiresAt time.Time) (model.StaffCode, error)
	GetByCode(ctx context.Context, code string) (model.StaffCode, error)
	ListAll(ctx context.Context) ([]model.StaffCode, error)
}

// StaffStore covers the staff directory and the registration transaction.
type StaffStore interface {
	GetByEmployeeNumber(ctx context.Context, employeeNumber string) (model.Staff, error)
	EmployeeNumberExists(ctx context.Context, employeeNumber string) (bool, error)
	ListAll(ctx context.Context) ([]model.Staff, error)
	RegisterWithCode(ctx context.Context, s *model.Staff, codeID uint64, usedAt time.Time) error
	Update(ctx context.Context, employeeNumber string, dateOfBirth *time.Time, photoID *string) (model.Staff, error)
}

// PerformanceStore reads telemetry rows back for the dashboard.
type PerformanceStore interface {
	ListRange(ctx context.Context, from, to time.Time) ([]model.ApiPerformance, error)
}

// EventPublisher pushes domain events to the message broker.  Publishing is
// always best effort; handlers log failures and move on.
type EventPublisher interface {
	PublishStaffRegistered(ctx context.Context, ev queue.StaffRegisteredEvent) error
}
