package history

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/usecase"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Service reads a user's generation, search and purchase history
type Service struct {
	hookRepo     persistence.HookRepository
	searchRepo   persistence.SearchRepository
	purchaseRepo persistence.PurchaseRepository
	logger       coreport.Logger
}

// NewHistoryService creates a new history service
func NewHistoryService(
	hookRepo persistence.HookRepository,
	searchRepo persistence.SearchRepository,
	purchaseRepo persistence.PurchaseRepository,
	logger coreport.Logger,
) usecase.HistoryUseCase {
	return &Service{
		hookRepo:     hookRepo,
		searchRepo:   searchRepo,
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

func (s *Service) ListHooks(ctx context.Context, userID string, limit int) ([]*entity.GeneratedHook, error) {
	limit, err := prepare(userID, limit)
	if err != nil {
		return nil, err
	}
	hooks, err := s.hookRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, s.readFailure("list hooks", userID, err)
	}
	return hooks, nil
}

func (s *Service) ListSearches(ctx context.Context, userID string, limit int) ([]*entity.SearchRecord, error) {
	limit, err := prepare(userID, limit)
	if err != nil {
		return nil, err
	}
	searches, err := s.searchRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, s.readFailure("list searches", userID, err)
	}
	return searches, nil
}

func (s *Service) ListPurchases(ctx context.Context, userID string, limit int) ([]*entity.Purchase, error) {
	limit, err := prepare(userID, limit)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, s.readFailure("list purchases", userID, err)
	}
	return purchases, nil
}

// prepare checks the user id and clamps limit into [1, MaxLimit], using DefaultLimit when unset
func prepare(userID string, limit int) (int, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, errs.NewValidationError("user id is required", "userId")
	}
	switch {
	case limit <= 0:
		return DefaultLimit, nil
	case limit > MaxLimit:
		return MaxLimit, nil
	default:
		return limit, nil
	}
}

func (s *Service) readFailure(operation, userID string, err error) error {
	s.logger.Error("Failed to read history", map[string]any{
		"operation": operation,
		"userId":    userID,
		"error":     err.Error(),
	})
	return errs.NewPersistenceError(operation, err)
}
