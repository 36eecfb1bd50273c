package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finance-agent-tools/internal/config"
	"finance-agent-tools/internal/handlers"
	"finance-agent-tools/internal/ledger"
	"finance-agent-tools/internal/middleware"
	"finance-agent-tools/internal/services"
	"finance-agent-tools/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	metrics := services.NewPrometheusMetrics()

	breaker := ledger.NewCircuitBreaker(ledger.CircuitBreakerConfig{
		MaxFailures:     cfg.Ledger.BreakerMaxFailures,
		ResetTimeout:    cfg.Ledger.BreakerResetTimeout,
		HalfOpenMaxSucc: ledger.DefaultCircuitBreakerConfig().HalfOpenMaxSucc,
	})
	ledgerClient := ledger.NewHTTPClient(&cfg.Ledger, breaker, metrics, logger)

	revenueService := services.NewRevenueService(ledgerClient, cfg.Ledger.PageSize)
	historyService := services.NewPaymentHistoryService(ledgerClient, cfg.Report.Location, cfg.Ledger.PageSize)
	refundService := services.NewRefundService(ledgerClient)
	clockService := services.NewClockService(cfg.Report.Location, nil)

	toolRegistry, err := handlers.BuildToolRegistry(
		revenueService,
		historyService,
		refundService,
		clockService,
		validation.GetValidator(),
		cfg.Report.Location,
	)
	if err != nil {
		slog.Error("failed to build tool registry", "error", err)
		os.Exit(1)
	}

	toolHandler := handlers.NewToolHandler(toolRegistry, metrics)
	healthHandler := handlers.NewHealthCheckHandler(breaker)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	tools := e.Group("/tools", middleware.RequireAgentToken(cfg.Security.AgentAuthToken))
	tools.GET("", toolHandler.ListTools)
	tools.POST("/:name", toolHandler.Invoke)

	go func() {
		slog.Info("server starting",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"tools", len(toolRegistry.Tools()))
		if err := e.Start(cfg.Server.Address()); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
