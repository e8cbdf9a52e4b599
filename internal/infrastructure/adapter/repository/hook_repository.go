package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/model"
)

// HookRepository stores generated hooks in generated_hooks
type HookRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewHookRepository creates a new HookRepository instance
func NewHookRepository(db *gorm.DB, logger coreport.Logger) *HookRepository {
	return &HookRepository{db: db, logger: logger}
}

var _ persistence.HookRepository = (*HookRepository)(nil)

func (r *HookRepository) Create(ctx context.Context, hook *entity.GeneratedHook) error {
	if err := conn(ctx, r.db).Create(hookToModel(hook)).Error; err != nil {
		r.logger.Error("Failed to store generated hook", map[string]any{
			"hookId": hook.ID,
			"userId": hook.UserID,
			"error":  err.Error(),
		})
		return errs.NewPersistenceError("create hook", err)
	}
	return nil
}

func (r *HookRepository) GetByID(ctx context.Context, id string) (*entity.GeneratedHook, error) {
	var hookModel model.GeneratedHook
	if err := conn(ctx, r.db).Where("id = ?", id).Take(&hookModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrHookNotFound
		}
		return nil, errs.NewPersistenceError("get hook", err)
	}
	return hookToEntity(&hookModel), nil
}

func (r *HookRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.GeneratedHook, error) {
	var hookModels []model.GeneratedHook
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&hookModels).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list hooks", err)
	}

	hooks := make([]*entity.GeneratedHook, 0, len(hookModels))
	for i := range hookModels {
		hooks = append(hooks, hookToEntity(&hookModels[i]))
	}
	return hooks, nil
}

// SearchRepository stores generation requests in user_searches
type SearchRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSearchRepository creates a new SearchRepository instance
func NewSearchRepository(db *gorm.DB, logger coreport.Logger) *SearchRepository {
	return &SearchRepository{db: db, logger: logger}
}

var _ persistence.SearchRepository = (*SearchRepository)(nil)

func (r *SearchRepository) Create(ctx context.Context, search *entity.SearchRecord) error {
	if err := conn(ctx, r.db).Create(searchToModel(search)).Error; err != nil {
		r.logger.Error("Failed to store search", map[string]any{
			"searchId": search.ID,
			"userId":   search.UserID,
			"error":    err.Error(),
		})
		return errs.NewPersistenceError("create search", err)
	}
	return nil
}

func (r *SearchRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SearchRecord, error) {
	var searchModels []model.UserSearch
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&searchModels).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list searches", err)
	}

	searches := make([]*entity.SearchRecord, 0, len(searchModels))
	for i := range searchModels {
		searches = append(searches, searchToEntity(&searchModels[i]))
	}
	return searches, nil
}
