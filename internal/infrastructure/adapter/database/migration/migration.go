package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/model"
)

// Step is one versioned schema change. Steps run in order, each at most once.
type Step struct {
	Version     string
	Description string
	Up          func(tx *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []Step
}

// NewMigrationManager creates a migration manager with the application schema steps
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		steps:        Steps(),
	}
}

// Steps returns the schema history of the service
func Steps() []Step {
	return []Step{
		{
			Version:     "0001",
			Description: "create users, generated_hooks, user_searches and user_purchases",
			Up: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.User{},
					&model.GeneratedHook{},
					&model.UserSearch{},
					&model.UserPurchase{},
				)
			},
		},
		{
			Version:     "0002",
			Description: "index continuations by original hook",
			Up: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_generated_hooks_continuations
					ON generated_hooks (original_hook_id) WHERE original_hook_id IS NOT NULL`).Error
			},
		},
	}
}

// MigrateAll applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration version table: %w", err)
	}

	applied, err := m.AppliedVersions(ctx)
	if err != nil {
		return fmt.Errorf("read applied migrations: %w", err)
	}

	pending := 0
	for _, step := range m.steps {
		if applied[step.Version] {
			continue
		}
		pending++

		m.logger.Info("Applying migration", map[string]any{
			"version":     step.Version,
			"description": step.Description,
		})

		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := step.Up(tx); err != nil {
				return err
			}
			return tx.Create(&model.MigrationVersion{
				Version:     step.Version,
				Description: step.Description,
				AppliedAt:   m.timeProvider.Now(),
			}).Error
		})
		if err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": step.Version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", step.Version, err)
		}
	}

	m.logger.Info("Database schema up to date", map[string]any{
		"applied": pending,
		"version": m.CurrentTarget(),
	})
	return nil
}

// AppliedVersions returns the set of versions already recorded
func (m *MigrationManager) AppliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []model.MigrationVersion
	if err := m.db.WithContext(ctx).Find(&versions).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v.Version] = true
	}
	return applied, nil
}

// CurrentTarget is the version of the last known step
func (m *MigrationManager) CurrentTarget() string {
	if len(m.steps) == 0 {
		return ""
	}
	return m.steps[len(m.steps)-1].Version
}
