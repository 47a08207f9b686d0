package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/config"
	dbpkg "github.com/BruksfildServices01/vet-clinic/internal/db"
	"github.com/BruksfildServices01/vet-clinic/internal/logging"
)

// NewDB returns a migrated and seeded in-memory SQLite database private
// to the calling test.
func NewDB(t testing.TB, admin config.AdminSeed) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver: dbpkg.DriverSQLite,
		DBUrl:    "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		Admin:    admin,
	}

	db, err := dbpkg.NewDB(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
