package database

import (
	"context"
	"database/sql"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/repository"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/utils"
)

// SeedAdmin provisions the bootstrap administrator account.  If the email
// already exists its password hash is refreshed, so rotating the configured
// credentials takes effect on the next restart.  Administrators are the only
// user accounts; staff never log in directly.
func SeedAdmin(ctx context.Context, db *sql.DB, email, password string, bcryptCost int) error {
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return err
	}
	return repository.NewUserRepo(db).Upsert(ctx, email, hash, model.RoleAdmin)
}
