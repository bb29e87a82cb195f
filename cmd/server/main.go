package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/northbooks/tally/internal"
	"github.com/northbooks/tally/internal/bootstrap"
	"github.com/northbooks/tally/internal/handler/api"
	"github.com/northbooks/tally/internal/middleware"
	"github.com/northbooks/tally/internal/postgres"
	"github.com/northbooks/tally/internal/router"
	"github.com/northbooks/tally/internal/routes"
	"github.com/northbooks/tally/internal/service"
	"github.com/northbooks/tally/internal/tenant"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	// Verify database connection
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Seed the default tenant so single-tenant deployments work out of the box
	if err := bootstrap.EnsureDefaultTenant(ctx, pool, cfg.TenantID, cfg.TenantName, logger); err != nil {
		return fmt.Errorf("failed to ensure default tenant: %w", err)
	}

	// Initialize services
	transactionService := postgres.NewTransactionService(pool)
	reportService := service.NewReportService(transactionService, logger)
	tenantResolver := tenant.NewDBResolver(pool)

	// Initialize handlers
	validate := validator.New()
	apiDeps := routes.APIDeps{
		TaxHandler:         api.NewTaxHandler(cfg.DefaultJurisdiction, validate),
		CategoryHandler:    api.NewCategoryHandler(),
		TransactionHandler: api.NewTransactionHandler(transactionService, validate),
		ReportHandler:      api.NewReportHandler(reportService),
		TenantMiddleware: middleware.ResolveTenant(middleware.TenantConfig{
			Resolver: tenantResolver,
			Logger:   logger,
		}),
	}

	// Initialize metrics
	metrics := middleware.NewMetrics("tally")

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	// Metrics endpoint (no auth required, but should be protected in production via firewall)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := pool.Ping(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("database unreachable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Register route groups
	routes.RegisterAPIRoutes(r, apiDeps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
