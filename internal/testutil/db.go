package testutil

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecoquest/internal/models/db_models"
)

// NewDB opens a private in-memory SQLite database with the console schema.
// It is closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// one connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.ActivityEvent{},
		&db_models.Reward{},
		&db_models.TrashBin{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Ptr returns a pointer to t, handy for optional timestamps.
func Ptr(t time.Time) *time.Time {
	return &t
}

// SeedAccount stores an account with sensible defaults for the zero fields.
func SeedAccount(t *testing.T, db *gorm.DB, a db_models.Account) *db_models.Account {
	t.Helper()
	if a.Role == "" {
		a.Role = "user"
	}
	if a.Status == "" {
		a.Status = "active"
	}
	if a.Email == "" {
		a.Email = a.ID + "@ecoquest.test"
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return &a
}

// SeedEvent stores an activity event.
func SeedEvent(t *testing.T, db *gorm.DB, e db_models.ActivityEvent) *db_models.ActivityEvent {
	t.Helper()
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return &e
}
