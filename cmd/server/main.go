package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/adapter/ai/openai"
	"github.com/voxretail/assistant/internal/adapter/cache"
	"github.com/voxretail/assistant/internal/adapter/http/fiber/handlers"
	"github.com/voxretail/assistant/internal/adapter/http/fiber/middleware"
	"github.com/voxretail/assistant/internal/adapter/queue"
	"github.com/voxretail/assistant/internal/adapter/storage/postgres"
	"github.com/voxretail/assistant/internal/observability/telemetry"
	"github.com/voxretail/assistant/internal/ports"
	"github.com/voxretail/assistant/internal/service/intent"
	"github.com/voxretail/assistant/internal/service/nlu"
	"github.com/voxretail/assistant/internal/service/operations"
	"github.com/voxretail/assistant/internal/service/speech"
	"github.com/voxretail/assistant/pkg/config"
)

const (
	serviceName    = "voxretail-assistant"
	serviceVersion = "v1.0.0"
)

const defaultBodyLimit = 256 * 1024 // webhook payloads are small

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting VoxRetail Assistant",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize OpenTelemetry (Distributed Tracing)
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, cfg.OpenTelemetry.Jaeger.Endpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 4. Initialize PostgreSQL Connection Pool
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// 5. Initialize Cache (Redis, with in-process fallback for dev)
	var appCache ports.Cache
	if cfg.Redis.URL != "" {
		appCache, err = cache.NewRedisCache(cfg.Redis.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
	} else {
		logger.Warn("No Redis URL configured, using in-process cache")
		appCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer appCache.Close()

	// 6. Initialize Message Queue (NATS, optional)
	var messageQueue queue.MessageQueue
	if cfg.NATS.URL != "" {
		messageQueue, err = queue.NewNATSQueue(cfg.NATS, logger)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer messageQueue.Close()
	} else {
		logger.Warn("No NATS URL configured, interaction events will not be published")
	}

	// 7. Initialize Repositories
	inventoryRepo := postgres.NewInventoryRepository(db, logger)
	taskRepo := postgres.NewTaskRepository(db, logger)
	salesRepo := postgres.NewSalesRepository(db, logger)
	supplierRepo := postgres.NewSupplierOrderRepository(db, logger)
	voiceLogRepo := postgres.NewVoiceLogRepository(db, logger)

	// 8. Initialize Services (Business Logic Layer)
	opsService := operations.NewService(inventoryRepo, taskRepo, salesRepo, supplierRepo, appCache, logger)
	speechGen := speech.NewGenerator()

	var primary ports.Classifier
	if cfg.Intent.Provider == "openai" && cfg.OpenAI.APIKey != "" {
		openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Timeout, logger)
		primary = nlu.NewOpenAIClassifier(openaiClient, logger)
	} else {
		logger.Info("Running with rule-based classification only")
	}
	router := intent.NewRouter(primary, nlu.NewRuleClassifier(), opsService, speechGen,
		intent.RouterDefaults{Language: cfg.Intent.DefaultLanguage}, logger)

	// 9. Initialize Fiber HTTP Server
	bodyLimit := cfg.HTTP.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = defaultBodyLimit
	}
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	if cfg.RateLimiting.Enabled {
		maxRequests := cfg.RateLimiting.MaxRequests
		if maxRequests <= 0 {
			maxRequests = 60
		}
		window := cfg.RateLimiting.Window
		if window <= 0 {
			window = time.Minute
		}
		app.Use(limiter.New(limiter.Config{
			Max:        maxRequests,
			Expiration: window,
		}))
	}
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(cfg.CircuitBreaker, logger))
	}

	// Service info
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": serviceName,
			"version": serviceVersion,
			"status":  "running",
		})
	})

	// Health Check Endpoints
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := sqlDB.Ping(); err != nil {
			return c.Status(503).SendString("Database not ready")
		}
		if err := appCache.Ping(); err != nil {
			return c.Status(503).SendString("Cache not ready")
		}
		return c.SendString("Ready")
	})

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// Webhook route (shared-secret auth)
	voiceHandler := handlers.NewVoiceHandler(router, voiceLogRepo, messageQueue, logger)
	app.Post("/omi/event", middleware.WebhookAuth(cfg.Webhook.Token), voiceHandler.HandleEvent)

	// Direct operation routes (no classification)
	opsHandler := handlers.NewOperationsHandler(opsService, logger)
	app.Post("/query_stock", opsHandler.QueryStock)
	app.Post("/create_reorder", opsHandler.CreateReorder)
	app.Post("/get_sales_summary", opsHandler.GetSalesSummary)
	app.Post("/get_supplier_info", opsHandler.GetSupplierInfo)
	app.Post("/get_delivery_status", opsHandler.GetDeliveryStatus)

	// Dashboard routes
	dashHandler := handlers.NewDashboardHandler(taskRepo, inventoryRepo, voiceLogRepo, logger)
	app.Get("/reorders", dashHandler.ListReorders)
	app.Get("/voice_logs", dashHandler.ListVoiceLogs)

	// 10. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 11. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
