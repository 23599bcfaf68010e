package database

import (
	"fmt"
	"log"
	"time"

	"dinarx-gateway/internal/config"
	"dinarx-gateway/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AutoMigrate creates the local mirror tables. Partner resources (accounts,
// balances, FX rates) are never persisted; only consent and payment records
// the gateway itself issued are tracked locally.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Consent{},
		&models.PaymentRecord{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_consents_user_id ON consents(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_consents_status ON consents(status)",
		"CREATE INDEX IF NOT EXISTS idx_consents_expires_at ON consents(expires_at)",
		"CREATE INDEX IF NOT EXISTS idx_payment_records_consent_id ON payment_records(consent_id)",
		"CREATE INDEX IF NOT EXISTS idx_payment_records_user_id ON payment_records(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_payment_records_status ON payment_records(status)",
		"CREATE INDEX IF NOT EXISTS idx_payment_records_created_at ON payment_records(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// CleanupExpiredConsents marks consents past their expiry as expired. The
// partner remains the source of truth on read paths; this keeps the local
// mirror from reporting a consent as usable after its window closed.
func (db *DB) CleanupExpiredConsents() error {
	now := time.Now().UTC()

	err := db.DB.Model(&models.Consent{}).
		Where("expires_at < ? AND status IN ?", now, []string{
			models.ConsentStatusAwaitingAuthorisation,
			models.ConsentStatusAuthorised,
		}).
		Update("status", models.ConsentStatusExpired).Error
	if err != nil {
		return fmt.Errorf("failed to expire stale consents: %w", err)
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
