package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"lps-admin/internal/adapters/http/middleware"
	"lps-admin/internal/adapters/http/routes"
	"lps-admin/internal/adapters/lpsapi"
	"lps-admin/internal/adapters/persistence/models"
	"lps-admin/internal/adapters/persistence/repositories"
	"lps-admin/internal/config"
	"lps-admin/internal/core/services"
	"lps-admin/internal/pkg/logger"
	"lps-admin/internal/pkg/sealer"

	_ "lps-admin/docs" // Swagger docs
)

// @title LPS Admin API
// @version 1.0
// @description Admin console for LPS payout assignments, customers and approver tasks

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	if cfg.EnvFileMissing {
		logger.Warnf("⚠️ No .env file found, using environment variables")
	}

	// Session store
	sessionRepo, err := openSessionStore(cfg)
	if err != nil {
		logger.Fatalf("❌ Failed to open session store: %v", err)
	}
	defer config.CloseDatabase()

	// Upstream client and services
	client := lpsapi.New(lpsapi.Options{
		BaseURL:      cfg.LPSAPI.BaseURL,
		Timeout:      cfg.LPSAPI.Timeout,
		MaxRetries:   cfg.LPSAPI.MaxRetries,
		RetryBackoff: cfg.LPSAPI.RetryBackoff,
	})

	authService := services.NewAuthService(client, sessionRepo, sealer.New(cfg.Session.Secret), cfg)
	client.SetUnauthorizedHandler(authService.InvalidateOnUnauthorized)

	svc := routes.Services{
		Auth:        authService,
		Users:       services.NewUserService(client),
		Customers:   services.NewCustomerService(client),
		Assignments: services.NewAssignmentService(client, client, client),
		Approver:    services.NewApproverService(client, client),
		Dashboard:   services.NewDashboardService(client),
		StoreCheck:  config.HealthCheck,
	}

	// Purge expired sessions; redis expires keys on its own
	if cfg.Session.Store == "mysql" {
		cronService := services.NewCronService(authService, cfg.Session.PurgeCron)
		if err := cronService.Start(); err != nil {
			logger.Fatalf("❌ Failed to start cron service: %v", err)
		}
		defer cronService.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "LPS Admin v" + routes.Version,
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, svc, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	logger.Infof("🚀 Server starting on port %s [MODE: %s] upstream %s", cfg.Port, cfg.AppMode, client.BaseURL())
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatalf("❌ Failed to start server: %v", err)
	}
}

// openSessionStore connects the configured backend and returns its repository
func openSessionStore(cfg *config.Config) (repositories.SessionRepository, error) {
	if cfg.Session.Store == "redis" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rdb, err := config.ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Infof("✅ Redis session store connected")
		return repositories.NewRedisSessionRepository(rdb), nil
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, err
	}

	// Auto migrate (creates the sessions table if not exist)
	if err := models.AutoMigrate(db); err != nil {
		return nil, err
	}
	logger.Infof("✅ Database migration completed")

	return repositories.NewSessionRepository(db), nil
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logger.Errorf("❌ Error during shutdown: %v", err)
	}
	logger.Infof("✅ Server stopped gracefully")
}
