package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pixgram/internal/dbmysql"
)

// NewTestDB opens a private in-memory SQLite database with the full schema
// migrated. Unique indexes and transactions behave like the production
// store, so repository tests exercise the real counter/constraint logic.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := dbmysql.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}
