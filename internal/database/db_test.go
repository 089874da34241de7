package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/config"
)

func TestDSNWithPassword(t *testing.T) {
	cfg := config.Config{DBUser: "hr", DBPass: "pw", DBHost: "db.internal", DBPort: "3306", DBName: "hr_db"}
	assert.Equal(t,
		"hr:pw@tcp(db.internal:3306)/hr_db?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}

func TestDSNWithoutPassword(t *testing.T) {
	// An empty DB_PASS must not leave a dangling colon in the auth part.
	cfg := config.Config{DBUser: "hr", DBHost: "localhost", DBPort: "3307", DBName: "hr_db"}
	assert.Equal(t,
		"hr@tcp(localhost:3307)/hr_db?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}
