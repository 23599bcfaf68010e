package database

import (
	"fmt"
	"testing"
	"time"

	"dinarx-gateway/internal/config"
	"dinarx-gateway/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestConsent(t *testing.T, db *DB, id, userID, status string) *models.Consent {
	t.Helper()

	consent := &models.Consent{
		ID:     id,
		UserID: userID,
		Permissions: models.PermissionList{
			models.PermissionReadAccounts,
			models.PermissionReadBalances,
		},
		Status:    status,
		ExpiresAt: time.Now().UTC().Add(90 * 24 * time.Hour),
	}

	if err := db.Create(consent).Error; err != nil {
		t.Fatalf("failed to create test consent: %v", err)
	}

	return consent
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"payment_records",
		"consents",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
