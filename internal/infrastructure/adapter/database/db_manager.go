package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/config"
)

// Manager owns the postgres connection and hands out the gorm-backed persistence ports
type Manager struct {
	config        config.DatabaseConfig
	db            *gorm.DB
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	healthChecker *HealthChecker
}

// NewManager creates a new database manager
func NewManager(cfg config.DatabaseConfig, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       cfg,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// NewManagerWithDB wraps an already open gorm connection
func NewManagerWithDB(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{db: db, logger: logger, timeProvider: timeProvider}
}

// Connect opens the connection, retrying while the server is unreachable
func (m *Manager) Connect(ctx context.Context) error {
	if m.config.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	gormConfig := &gorm.Config{
		Logger:         NewDatabaseLogger(m.logger, "warn", m.config.SlowThreshold),
		NowFunc:        func() time.Time { return m.timeProvider.Now() },
		TranslateError: true,
	}

	retry := DefaultRetryConfig()
	if m.config.RetryAttempts > 0 {
		retry.MaxRetries = m.config.RetryAttempts
	}
	if m.config.RetryDelay > 0 {
		retry.RetryInterval = m.config.RetryDelay
	}

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, retry, func() error {
		var openErr error
		gormDB, openErr = gorm.Open(postgres.Open(m.config.DSN()), gormConfig)
		return openErr
	}, m.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.db = gormDB
	m.healthChecker = NewHealthChecker(gormDB, m.logger, m.timeProvider, 30*time.Second)
	m.healthChecker.StartMonitoring()

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":         m.config.Host,
		"name":         m.config.Database,
		"maxOpenConns": m.config.MaxOpenConns,
		"maxIdleConns": m.config.MaxIdleConns,
	})
	return nil
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks the connection, used by the health endpoint
func (m *Manager) Ping(ctx context.Context) error {
	if m.healthChecker != nil {
		return m.healthChecker.Ping(ctx)
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close stops monitoring and closes the connection pool
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.healthChecker != nil {
		m.healthChecker.StopMonitoring()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

func (m *Manager) UnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}

func (m *Manager) UserRepository() persistence.UserRepository {
	return repository.NewUserRepository(m.db, m.logger)
}

func (m *Manager) HookRepository() persistence.HookRepository {
	return repository.NewHookRepository(m.db, m.logger)
}

func (m *Manager) SearchRepository() persistence.SearchRepository {
	return repository.NewSearchRepository(m.db, m.logger)
}

func (m *Manager) PurchaseRepository() persistence.PurchaseRepository {
	return repository.NewPurchaseRepository(m.db, m.logger)
}
