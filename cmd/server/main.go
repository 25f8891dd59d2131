package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/harinianandprojects/prioq-vision-dash/internal/config"
	"github.com/harinianandprojects/prioq-vision-dash/internal/database"
	"github.com/harinianandprojects/prioq-vision-dash/internal/handlers"
	"github.com/harinianandprojects/prioq-vision-dash/internal/middleware"
	"github.com/harinianandprojects/prioq-vision-dash/internal/repositories"
	"github.com/harinianandprojects/prioq-vision-dash/internal/services"
	"github.com/harinianandprojects/prioq-vision-dash/internal/stream"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error("failed to connect to gateway database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("closing database failed", "error", err)
		}
	}()

	sqlDB, err := db.DB.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}
	if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	customerRepo := repositories.NewCustomerRepository(db.DB)
	accountRepo := repositories.NewAccountRepository(db.DB, cfg.Feed.AccountPick)
	cardRepo := repositories.NewCardRepository(db.DB)
	loanRepo := repositories.NewLoanRepository(db.DB)
	interactionRepo := repositories.NewInteractionRepository(db.DB)
	detectionRepo := repositories.NewDetectionEventRepository(db.DB)

	detectionLogger := services.NewDetectionLogger(logger)
	metrics := services.NewPrometheusMetrics()

	resolver := services.NewAlertResolutionService(
		customerRepo, accountRepo, cardRepo, loanRepo, interactionRepo,
		detectionLogger, metrics,
	)
	feed := services.NewAlertFeedService(
		resolver, detectionRepo, detectionLogger, metrics,
		cfg.Feed.DefaultLoadLimit, cfg.Feed.SnoozeDuration,
	)
	dashboard := services.NewDashboardService(feed, customerRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial feed load. A gateway failure here is not fatal: the feed
	// starts empty and the dashboard retries through the refresh endpoint.
	if err := feed.LoadRecent(ctx); err != nil {
		logger.Warn("initial feed load failed", "error", err)
	}

	detectionStream, err := stream.NewPGListener(cfg.Database.DSN(), cfg.Stream, logger)
	if err != nil {
		logger.Error("failed to subscribe to detection stream", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := detectionStream.Close(); err != nil {
			logger.Warn("closing detection stream failed", "error", err)
		}
	}()
	go feed.Consume(ctx, detectionStream.Events())

	e := buildServer(cfg, db, feed, customerRepo, dashboard, metrics)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		errCh <- e.Start(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func buildServer(
	cfg *config.Config,
	db *database.DB,
	feed services.AlertFeedServiceInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	dashboard services.DashboardServiceInterface,
	metrics services.MetricsRecorderInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	alertHandler := handlers.NewAlertHandler(feed, metrics)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboard)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/alerts", alertHandler.ListAlerts)
	api.POST("/alerts/refresh", alertHandler.RefreshAlerts)
	api.POST("/alerts/:id/acknowledge", alertHandler.AcknowledgeAlert)
	api.POST("/alerts/:id/snooze", alertHandler.SnoozeAlert)
	api.DELETE("/alerts/:id", alertHandler.DismissAlert)
	api.GET("/customers", customerHandler.ListCustomers)
	api.GET("/customers/:id", customerHandler.GetCustomer)
	api.GET("/dashboard/stats", dashboardHandler.GetStats)
	api.GET("/dashboard/view", dashboardHandler.GetView)
	api.PUT("/dashboard/view", dashboardHandler.UpdateView)

	return e
}
