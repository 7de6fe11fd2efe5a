package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Swoyesh/FinSense/internal/config"
	"github.com/Swoyesh/FinSense/internal/database"
	"github.com/Swoyesh/FinSense/internal/handlers"
	"github.com/Swoyesh/FinSense/internal/middleware"
	"github.com/Swoyesh/FinSense/internal/repositories"
	"github.com/Swoyesh/FinSense/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics()
	e := newServer(ctx, cfg, db, metrics, logger)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// newServer wires repositories, services and handlers into an echo instance.
func newServer(ctx context.Context, cfg *config.Config, db *database.DB, metrics services.MetricsRecorderInterface, logger *slog.Logger) *echo.Echo {
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	planner := services.NewBudgetPlannerService(services.PlannerConfigFromConfig(cfg), metrics, logger)
	budgetService := services.NewBudgetService(transactionRepo, budgetRepo, planner, cfg.Budget, logger)
	categoryService := services.NewCategoryService()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(metrics)
	// forwarding headers are trusted only from loopback and private-range proxies
	e.IPExtractor = echo.ExtractIPFromXFFHeader()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))
	// multipart framing adds to the statement size
	e.Use(echomw.BodyLimit(strconv.FormatInt(cfg.Security.MaxUploadBytes+1<<20, 10)))
	e.Use(middleware.RateLimiter(ctx, cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	routes := handlers.Routes{
		Health:       handlers.NewHealthCheckHandler(db.DB),
		Budget:       handlers.NewBudgetHandler(
			budgetService,
			planner,
			categoryService,
			cfg.Security.MaxUploadBytes,
			cfg.Server.RequestTimeout,
		),
		Transactions: handlers.NewTransactionHandler(transactionRepo),
	}
	if cfg.IsDevelopment() {
		routes.Dev = handlers.NewDevHandler(transactionRepo, services.NewHistoryGenerator(0))
	}
	handlers.RegisterRoutes(e, routes)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
