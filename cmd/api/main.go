package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	historyUseCase "github.com/amirhossein-jamali/adspark/internal/domain/usecase/history"
	hookUseCase "github.com/amirhossein-jamali/adspark/internal/domain/usecase/hook"
	ledgerUseCase "github.com/amirhossein-jamali/adspark/internal/domain/usecase/ledger"
	purchaseUseCase "github.com/amirhossein-jamali/adspark/internal/domain/usecase/purchase"
	userUseCase "github.com/amirhossein-jamali/adspark/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/document"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/generator"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/payment"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/ratelimit"
	timeProvider "github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/config"
)

// store is the surface shared by the postgres and mongo managers
type store interface {
	Connect(ctx context.Context) error
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
	UnitOfWork() persistence.UnitOfWork
	UserRepository() persistence.UserRepository
	HookRepository() persistence.HookRepository
	SearchRepository() persistence.SearchRepository
	PurchaseRepository() persistence.PurchaseRepository
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Storage
	var db store
	if cfg.Database.Driver == "mongo" {
		db = document.NewManager(cfg.Database, appLogger, tp)
	} else {
		db = database.NewManager(cfg.Database, appLogger, tp)
	}
	if err := db.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Adapters
	hookGenerator, err := generator.New(cfg.Generator, appLogger)
	if err != nil {
		appLogger.Error("Failed to create hook generator", map[string]any{
			"provider": cfg.Generator.Provider,
			"error":    err.Error(),
		})
		os.Exit(1)
	}

	payments := payment.NewStripeGateway(payment.Config{
		SecretKey:     cfg.Payment.SecretKey,
		WebhookSecret: cfg.Payment.WebhookSecret,
		AppURL:        cfg.Payment.AppURL,
		Currency:      cfg.Payment.Currency,
	}, appLogger)

	verifier := identity.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)

	checks := map[string]handler.Pinger{"database": db}

	var limiter coreport.RateLimiter
	var memoryLimiter *ratelimit.MemoryLimiter
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		switch cfg.RateLimit.Backend {
		case "redis":
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			limiter = ratelimit.NewRedisLimiter(redisClient, "", cfg.RateLimit.Limit, cfg.RateLimit.Window, tp)
			checks["redis"] = pingFunc(func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			})
		default:
			memoryLimiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window, tp, appLogger)
			memoryLimiter.StartJanitor(cfg.RateLimit.CleanupInterval)
			limiter = memoryLimiter
		}
	}

	// Use cases
	ledger := ledgerUseCase.NewLedger(db.UserRepository(), tp, appLogger)
	users := userUseCase.NewUserUseCase(db.UserRepository(), tp, appLogger)
	hooks := hookUseCase.NewHookService(
		hookGenerator,
		ledger,
		db.HookRepository(),
		db.SearchRepository(),
		tp,
		appLogger,
		hookUseCase.Config{GenerationTimeout: coreport.Duration(cfg.Generator.Timeout)},
	)
	purchases := purchaseUseCase.NewPurchaseService(db.UnitOfWork(), ledger, payments, tp, appLogger)
	history := historyUseCase.NewHistoryService(db.HookRepository(), db.SearchRepository(), db.PurchaseRepository(), appLogger)

	// HTTP
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		appLogger.Error("Invalid trusted proxies", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	routes.SetupMiddlewares(router, routes.MiddlewareOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Limiter:        limiter,
		RateLimit: middleware.RateLimitOptions{
			PathPrefix: cfg.RateLimit.PathPrefix,
			Limit:      cfg.RateLimit.Limit,
			Window:     cfg.RateLimit.Window,
		},
	}, tp, appLogger)

	routes.SetupRoutes(router, routes.Handlers{
		Proxy:   handler.NewProxyHandler(hooks, appLogger),
		Payment: handler.NewPaymentHandler(purchases, appLogger),
		User:    handler.NewUserHandler(users, ledger, appLogger),
		Hook:    handler.NewHookHandler(hooks, appLogger),
		History: handler.NewHistoryHandler(history),
		Health:  handler.NewHealthHandler(checks, appLogger),
	}, verifier, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"store":     cfg.Database.Driver,
			"generator": hookGenerator.Name(),
			"rateLimit": cfg.RateLimit.Backend,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if memoryLimiter != nil {
		memoryLimiter.Stop()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.Warn("Failed to close redis client", map[string]any{
				"error": err.Error(),
			})
		}
	}

	appLogger.Info("Server exited gracefully", nil)
}
