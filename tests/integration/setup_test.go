package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/lib/pq"

	"github.com/voxretail/assistant/internal/adapter/storage/postgres"
)

// TestEnv holds test environment resources
type TestEnv struct {
	DB                *sql.DB
	Gorm              *gorm.DB
	Redis             *goredis.Client
	RedisURL          string
	PostgresContainer testcontainers.Container
	RedisContainer    testcontainers.Container
	Logger            *zap.Logger
	ctx               context.Context
}

var testEnv *TestEnv

// SetupTestEnvironment initializes the test environment with containers
func SetupTestEnvironment(t *testing.T) *TestEnv {
	if testEnv != nil {
		return testEnv
	}

	ctx := context.Background()

	// Check if using external services (CI environment)
	if os.Getenv("DATABASE_URL") != "" {
		return setupExternalServices(t, ctx)
	}

	// Use testcontainers for local testing
	return setupContainers(t, ctx)
}

func setupExternalServices(t *testing.T, ctx context.Context) *TestEnv {
	logger, _ := zap.NewDevelopment()

	databaseURL := os.Getenv("DATABASE_URL")

	// Connect to external Postgres
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	gormDB, err := postgres.NewConnection(databaseURL, logger)
	if err != nil {
		t.Fatalf("Failed to open gorm connection: %v", err)
	}

	// Connect to external Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("Failed to parse Redis URL: %v", err)
	}

	redisClient := goredis.NewClient(opt)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to Redis: %v", err)
	}

	testEnv = &TestEnv{
		DB:       db,
		Gorm:     gormDB,
		Redis:    redisClient,
		RedisURL: redisURL,
		Logger:   logger,
		ctx:      ctx,
	}

	return testEnv
}

func setupContainers(t *testing.T, ctx context.Context) *TestEnv {
	logger, _ := zap.NewDevelopment()

	// Start Postgres container
	postgresContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("voxretail_test"),
		tcpostgres.WithUsername("voxretail"),
		tcpostgres.WithPassword("voxretail_test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	// Get Postgres connection string
	pgHost, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get postgres host: %v", err)
	}

	pgPort, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get postgres port: %v", err)
	}

	pgConnStr := fmt.Sprintf("postgres://voxretail:voxretail_test@%s:%s/voxretail_test?sslmode=disable", pgHost, pgPort.Port())

	// Connect to Postgres
	db, err := sql.Open("postgres", pgConnStr)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}

	// Wait for connection
	for i := 0; i < 30; i++ {
		if err := db.Ping(); err == nil {
			break
		}
		time.Sleep(time.Second)
	}

	gormDB, err := postgres.NewConnection(pgConnStr, logger)
	if err != nil {
		t.Fatalf("Failed to open gorm connection: %v", err)
	}

	// Start Redis container
	redisContainer, err := tcredis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start redis container: %v", err)
	}

	// Get Redis connection string
	redisHost, err := redisContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get redis host: %v", err)
	}

	redisPort, err := redisContainer.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get redis port: %v", err)
	}

	redisURL := fmt.Sprintf("redis://%s:%s", redisHost, redisPort.Port())

	// Connect to Redis
	redisClient := goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, redisPort.Port()),
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to redis: %v", err)
	}

	testEnv = &TestEnv{
		DB:                db,
		Gorm:              gormDB,
		Redis:             redisClient,
		RedisURL:          redisURL,
		PostgresContainer: postgresContainer,
		RedisContainer:    redisContainer,
		Logger:            logger,
		ctx:               ctx,
	}

	return testEnv
}

// TeardownTestEnvironment cleans up the test environment
func TeardownTestEnvironment(t *testing.T) {
	if testEnv == nil {
		return
	}

	ctx := context.Background()

	if testEnv.DB != nil {
		testEnv.DB.Close()
	}

	if testEnv.Redis != nil {
		testEnv.Redis.Close()
	}

	if testEnv.PostgresContainer != nil {
		if err := testEnv.PostgresContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	}

	if testEnv.RedisContainer != nil {
		if err := testEnv.RedisContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate redis container: %v", err)
		}
	}

	testEnv = nil
}

// CleanDatabase truncates all tables
func CleanDatabase(t *testing.T, db *sql.DB) {
	tables := []string{
		"voice_logs",
		"employee_task_logs",
		"retail_sales_transactions",
		"supplier_purchase_orders",
		"clothing_retail_inventory",
	}

	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Table might not exist, that's ok
			t.Logf("Failed to truncate %s: %v", table, err)
		}
	}
}

// FlushRedis clears all Redis keys
func FlushRedis(t *testing.T, client *goredis.Client) {
	ctx := context.Background()
	if err := client.FlushAll(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush redis: %v", err)
	}
}

// SetupSchema creates the database schema for testing
func SetupSchema(t *testing.T, db *sql.DB) {
	schema := `
	CREATE TABLE IF NOT EXISTS clothing_retail_inventory (
		product_id        TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		category          TEXT,
		sub_category      TEXT,
		color             TEXT,
		size              TEXT,
		stock_quantity    INTEGER NOT NULL DEFAULT 0,
		reorder_threshold INTEGER NOT NULL DEFAULT 0,
		location          TEXT,
		selling_price     NUMERIC(10, 2),
		supplier_id       TEXT
	);

	CREATE TABLE IF NOT EXISTS employee_task_logs (
		task_id         TEXT PRIMARY KEY,
		employee_name   TEXT,
		employee_role   TEXT,
		task_type       TEXT,
		assigned_date   DATE,
		due_date        DATE,
		completion_date DATE,
		status          TEXT,
		related_product TEXT
	);

	CREATE TABLE IF NOT EXISTS retail_sales_transactions (
		transaction_id TEXT PRIMARY KEY,
		product_id     TEXT,
		sale_date      DATE,
		quantity_sold  INTEGER NOT NULL DEFAULT 0,
		unit_price     NUMERIC(10, 2),
		revenue        NUMERIC(12, 2),
		store_location TEXT
	);

	CREATE TABLE IF NOT EXISTS supplier_purchase_orders (
		purchase_order_id           TEXT PRIMARY KEY,
		supplier_id                 TEXT,
		supplier_name               TEXT,
		contact_name                TEXT,
		contact_email               TEXT,
		phone_number                TEXT,
		city                        TEXT,
		state                       TEXT,
		product_categories_supplied TEXT,
		order_date                  DATE,
		delivery_date               DATE,
		status                      TEXT,
		total_cost                  NUMERIC(12, 2),
		payment_status              TEXT
	);

	CREATE TABLE IF NOT EXISTS voice_logs (
		id         TEXT PRIMARY KEY,
		transcript TEXT NOT NULL,
		intent     TEXT,
		entities   JSONB,
		result     JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_inventory_name ON clothing_retail_inventory (lower(name));
	CREATE INDEX IF NOT EXISTS idx_sales_date ON retail_sales_transactions (sale_date DESC);
	CREATE INDEX IF NOT EXISTS idx_supplier_orders_supplier ON supplier_purchase_orders (supplier_id);
	CREATE INDEX IF NOT EXISTS idx_voice_logs_created ON voice_logs (created_at DESC);
	`

	_, err := db.Exec(schema)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
}
