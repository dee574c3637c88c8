package postgres

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/voxretail/assistant/internal/observability/telemetry"
)

// NewConnection initializes the PostgreSQL connection pool using GORM.
// The pool lives for the whole process; cmd/server owns its lifecycle.
// Schema is managed via the SQL files in migrations/; AutoMigrate is
// skipped to avoid constraint conflicts with the pre-loaded datasets.
func NewConnection(url string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := instrument(db); err != nil {
		return nil, fmt.Errorf("failed to register callbacks: %w", err)
	}

	log.Info("Successfully connected to PostgreSQL")
	return db, nil
}

const latencyStartKey = "telemetry:start"

// instrument feeds query and insert durations into the database
// latency histogram.
func instrument(db *gorm.DB) error {
	start := func(tx *gorm.DB) {
		tx.InstanceSet(latencyStartKey, time.Now())
	}
	finish := func(tx *gorm.DB) {
		if v, ok := tx.InstanceGet(latencyStartKey); ok {
			if t, ok := v.(time.Time); ok {
				telemetry.DatabaseLatency.Observe(time.Since(t).Seconds())
			}
		}
	}

	if err := db.Callback().Query().Before("gorm:query").Register("telemetry:query_start", start); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("telemetry:query_done", finish); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").Register("telemetry:create_start", start); err != nil {
		return err
	}
	return db.Callback().Create().After("gorm:create").Register("telemetry:create_done", finish)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
