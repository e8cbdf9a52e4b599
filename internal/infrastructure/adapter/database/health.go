package database

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
)

// HealthChecker pings the database on an interval and logs connection pool stats
type HealthChecker struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	checkPeriod  time.Duration
	stopChan     chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, checkPeriod time.Duration) *HealthChecker {
	if checkPeriod <= 0 {
		checkPeriod = 30 * time.Second
	}
	return &HealthChecker{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		checkPeriod:  checkPeriod,
		stopChan:     make(chan struct{}),
	}
}

// StartMonitoring starts the health monitoring goroutine
func (h *HealthChecker) StartMonitoring() {
	h.wg.Add(1)
	go h.monitorHealth()
}

// StopMonitoring stops the monitoring goroutine and waits for it to exit
func (h *HealthChecker) StopMonitoring() {
	h.stopOnce.Do(func() { close(h.stopChan) })
	h.wg.Wait()
}

func (h *HealthChecker) monitorHealth() {
	defer h.wg.Done()

	ticker := h.timeProvider.NewTicker(coreport.Duration(h.checkPeriod))
	defer ticker.Stop()

	for {
		select {
		case <-h.stopChan:
			return
		case <-ticker.C:
			h.checkHealth()
		}
	}
}

// Ping verifies the database answers within the timeout
func (h *HealthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (h *HealthChecker) checkHealth() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.Ping(ctx); err != nil {
		h.logger.Error("Database ping failed", map[string]any{"error": err.Error()})
		return
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return
	}
	stats := sqlDB.Stats()
	h.logger.Debug("Database connection pool stats", map[string]any{
		"maxOpenConnections": stats.MaxOpenConnections,
		"openConnections":    stats.OpenConnections,
		"inUse":              stats.InUse,
		"idle":               stats.Idle,
		"waitCount":          stats.WaitCount,
		"waitDurationMs":     stats.WaitDuration.Milliseconds(),
	})
}
