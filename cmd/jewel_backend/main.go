package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/jewel_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/jewel_ledger/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger/internal/core/services"
	"github.com/SscSPs/jewel_ledger/internal/dto"
	"github.com/SscSPs/jewel_ledger/internal/handlers"
	"github.com/SscSPs/jewel_ledger/internal/middleware"
	"github.com/SscSPs/jewel_ledger/internal/platform/audit"
	"github.com/SscSPs/jewel_ledger/internal/platform/config"
	"github.com/SscSPs/jewel_ledger/internal/repositories/cache"
	"github.com/SscSPs/jewel_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/jewel_ledger/internal/repositories/memory"
	"github.com/SscSPs/jewel_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Jewel Ledger API
// @version 1.0
// @description Payments, settlement and balances for the jewelry back office.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i].Close(); cerr != nil {
				logger.Warn("Error during shutdown", slog.String("error", cerr.Error()))
			}
		}
	}()

	var seq portsrepo.PaymentNumberSequence
	switch cfg.SequenceBackend {
	case config.BackendRedis:
		redisSeq, client, err := cache.NewRedisSequence(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		closers = append(closers, client)
		seq = redisSeq
		logger.Info("Payment numbers allocated from Redis", slog.String("addr", cfg.RedisAddr))
	case config.BackendMemory:
		seq = memory.NewSequence()
	}

	var repos portsrepo.RepositoryProvider
	switch cfg.StoreBackend {
	case config.BackendMemory:
		logger.Warn("Using the in-memory store; data is lost on restart")
		repos = memory.NewStore().Provider(seq)
	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return err
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
		repos = pgsql.NewRepositoryProvider(dbPool, seq)
	}

	recorder := newAuditRecorder(cfg, logger, &closers)
	serviceContainer := services.NewServiceContainer(cfg, repos, recorder)

	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return err
	}
	rateLimiter := limiter.New(limitermemory.NewStore(), rate)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-quit:
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newAuditRecorder logs every audit event and also ships it to PostHog when a key is set.
func newAuditRecorder(cfg *config.Config, logger *slog.Logger, closers *[]io.Closer) portssvc.AuditRecorder {
	recorders := audit.Multi{audit.LogRecorder{}}
	if cfg.PosthogAPIKey == "" {
		return recorders
	}

	ph, err := audit.NewPosthogRecorder(cfg.PosthogAPIKey, cfg.PosthogEndpoint)
	if err != nil {
		logger.Warn("PostHog audit disabled", slog.String("error", err.Error()))
		return recorders
	}
	*closers = append(*closers, ph)
	return append(recorders, ph)
}
