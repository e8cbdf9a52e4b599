package hook

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/usecase"
)

// DefaultGenerationTimeout bounds a single call to the generation backend
const DefaultGenerationTimeout = 15 * coreport.Second

// Config tunes the workflow
type Config struct {
	GenerationTimeout coreport.Duration
	Cost              int64
}

// Service runs the metered generate-and-charge workflow.
//
// The step order is fixed: validate, refresh balance, generate, log variants, log search,
// charge. Nothing is written when generation fails. A failed charge after logging does not
// take the variants away from the user; the result is returned with Charged set to false.
type Service struct {
	generator    gateway.HookGenerator
	ledger       usecase.LedgerUseCase
	hookRepo     persistence.HookRepository
	searchRepo   persistence.SearchRepository
	validator    *HookValidator
	serializer   *UserSerializer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

// NewHookService creates a new hook workflow service
func NewHookService(
	generator gateway.HookGenerator,
	ledger usecase.LedgerUseCase,
	hookRepo persistence.HookRepository,
	searchRepo persistence.SearchRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) usecase.HookUseCase {
	if config.GenerationTimeout <= 0 {
		config.GenerationTimeout = DefaultGenerationTimeout
	}
	if config.Cost <= 0 {
		config.Cost = entity.GenerationCost
	}

	return &Service{
		generator:    generator,
		ledger:       ledger,
		hookRepo:     hookRepo,
		searchRepo:   searchRepo,
		validator:    NewHookValidator(),
		serializer:   NewUserSerializer(logger),
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// GenerateHooks generates variants for params and charges the user for them
func (s *Service) GenerateHooks(ctx context.Context, userID string, params entity.HookParams) (*entity.GenerationResult, error) {
	params = params.Normalize()
	if err := s.validator.ValidateGeneration(userID, params); err != nil {
		return nil, err
	}

	return s.serializer.Run(ctx, userID, func(ctx context.Context) (*entity.GenerationResult, error) {
		balance, err := s.authorizeSpend(ctx, userID)
		if err != nil {
			return nil, err
		}

		contents, err := s.generate(ctx, func(gctx context.Context) ([]string, error) {
			return s.generator.Generate(gctx, params)
		})
		if err != nil {
			s.logger.Warn("Hook generation failed", mergeFields(errs.LogFieldsOf(err), map[string]any{
				"userId": userID,
			}))
			return nil, err
		}

		now := s.timeProvider.Now()
		variants := make([]entity.HookVariant, 0, len(contents))
		for _, content := range contents {
			record := &entity.GeneratedHook{
				ID:        uuid.NewString(),
				UserID:    userID,
				Product:   params.Product,
				Audience:  params.Audience,
				Tone:      params.Tone,
				Platform:  params.Platform,
				Content:   content,
				CreatedAt: now,
			}
			if err := s.hookRepo.Create(ctx, record); err != nil {
				return nil, s.persistenceFailure("log generated hook", userID, err)
			}
			variants = append(variants, entity.HookVariant{
				ID:       record.ID,
				Content:  content,
				Hashtags: params.Hashtags(),
			})
		}

		search := entity.NewSearchRecord(uuid.NewString(), userID, params, now)
		if err := s.searchRepo.Create(ctx, search); err != nil {
			return nil, s.persistenceFailure("log search", userID, err)
		}

		result := &entity.GenerationResult{Params: params, Variants: variants}
		s.charge(ctx, userID, balance, result)

		s.logger.Info("Hooks generated", map[string]any{
			"userId":   userID,
			"variants": len(variants),
			"balance":  result.Balance,
			"charged":  result.Charged,
		})
		return result, nil
	})
}

// ContinueHook extends an existing hook and charges the user for it
func (s *Service) ContinueHook(ctx context.Context, userID string, req entity.ContinuationRequest) (*entity.GenerationResult, error) {
	if err := s.validator.validateUserID(userID); err != nil {
		return nil, err
	}
	req, err := s.resolveContinuation(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateContinuation(userID, req); err != nil {
		return nil, err
	}

	return s.serializer.Run(ctx, userID, func(ctx context.Context) (*entity.GenerationResult, error) {
		balance, err := s.authorizeSpend(ctx, userID)
		if err != nil {
			return nil, err
		}

		contents, err := s.generate(ctx, func(gctx context.Context) ([]string, error) {
			content, err := s.generator.Continue(gctx, req)
			if err != nil {
				return nil, err
			}
			return []string{content}, nil
		})
		if err != nil {
			s.logger.Warn("Hook continuation failed", mergeFields(errs.LogFieldsOf(err), map[string]any{
				"userId":         userID,
				"originalHookId": req.OriginalHookID,
			}))
			return nil, err
		}

		record := &entity.GeneratedHook{
			ID:             uuid.NewString(),
			UserID:         userID,
			Product:        req.Context.Product,
			Audience:       req.Context.Audience,
			Tone:           req.Context.Tone,
			Platform:       req.Context.Platform,
			Content:        contents[0],
			OriginalHookID: req.OriginalHookID,
			CreatedAt:      s.timeProvider.Now(),
		}
		if err := s.hookRepo.Create(ctx, record); err != nil {
			return nil, s.persistenceFailure("log continued hook", userID, err)
		}

		result := &entity.GenerationResult{
			Params: req.Context,
			Variants: []entity.HookVariant{{
				ID:       record.ID,
				Content:  record.Content,
				Hashtags: req.Context.Hashtags(),
			}},
		}
		s.charge(ctx, userID, balance, result)

		s.logger.Info("Hook continued", map[string]any{
			"userId":         userID,
			"originalHookId": req.OriginalHookID,
			"balance":        result.Balance,
			"charged":        result.Charged,
		})
		return result, nil
	})
}

// PreviewHooks calls the generator without touching balances or history
func (s *Service) PreviewHooks(ctx context.Context, params entity.HookParams) ([]string, error) {
	params = params.Normalize()
	if err := s.validator.ValidateParams(params); err != nil {
		return nil, err
	}
	return s.generate(ctx, func(gctx context.Context) ([]string, error) {
		return s.generator.Generate(gctx, params)
	})
}

// PreviewContinuation continues a hook without touching balances or history
func (s *Service) PreviewContinuation(ctx context.Context, req entity.ContinuationRequest) (string, error) {
	if err := s.validator.ValidatePreviousHook(req); err != nil {
		return "", err
	}
	contents, err := s.generate(ctx, func(gctx context.Context) ([]string, error) {
		content, err := s.generator.Continue(gctx, req)
		if err != nil {
			return nil, err
		}
		return []string{content}, nil
	})
	if err != nil {
		return "", err
	}
	return contents[0], nil
}

// resolveContinuation fills content and parameters from the stored hook when the caller names one
func (s *Service) resolveContinuation(ctx context.Context, userID string, req entity.ContinuationRequest) (entity.ContinuationRequest, error) {
	req.Context = req.Context.Normalize()
	req.UserPrompt = strings.TrimSpace(req.UserPrompt)
	if req.OriginalHookID == "" {
		return req, nil
	}

	original, err := s.hookRepo.GetByID(ctx, req.OriginalHookID)
	if err != nil {
		if errors.Is(err, errs.ErrHookNotFound) {
			return req, err
		}
		return req, s.persistenceFailure("load original hook", userID, err)
	}
	if original.UserID != userID {
		return req, errs.ErrHookNotFound
	}

	if strings.TrimSpace(req.PreviousHook) == "" {
		req.PreviousHook = original.Content
	}
	if len(req.Context.MissingFields()) > 0 {
		req.Context = original.Params()
	}
	return req, nil
}

// authorizeSpend refreshes the balance and refuses the spend when it does not cover the cost
func (s *Service) authorizeSpend(ctx context.Context, userID string) (int64, error) {
	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !s.ledger.HasSufficientBalance(balance, s.config.Cost) {
		s.logger.Info("Generation refused for insufficient tokens", map[string]any{
			"userId":   userID,
			"balance":  balance,
			"required": s.config.Cost,
		})
		return balance, errs.NewInsufficientTokensError(userID, balance, s.config.Cost)
	}
	return balance, nil
}

// generate bounds call by the generation timeout and normalizes every failure to a GenerationError
func (s *Service) generate(ctx context.Context, call func(context.Context) ([]string, error)) ([]string, error) {
	gctx, cancel := s.timeProvider.WithTimeout(ctx, s.config.GenerationTimeout)
	defer cancel()

	contents, err := call(gctx)
	if err != nil {
		if errors.Is(err, errs.ErrGeneration) {
			return nil, err
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(gctx.Err(), context.DeadlineExceeded) {
			return nil, errs.NewGenerationError(s.generator.Name(), 0, "", errs.ErrGenerationTimeout)
		}
		return nil, errs.NewGenerationError(s.generator.Name(), 0, "", err)
	}

	cleaned := make([]string, 0, len(contents))
	for _, c := range contents {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return nil, errs.NewGenerationError(s.generator.Name(), 0, "no hooks returned", nil)
	}
	return cleaned, nil
}

// charge applies the generation cost and records the outcome on result
func (s *Service) charge(ctx context.Context, userID string, balance int64, result *entity.GenerationResult) {
	newBalance, err := s.ledger.ApplyDelta(ctx, userID, -s.config.Cost)
	if err != nil {
		s.logger.Error("Charge failed after hooks were delivered", mergeFields(errs.LogFieldsOf(err), map[string]any{
			"userId":   userID,
			"cost":     s.config.Cost,
			"variants": len(result.Variants),
		}))
		result.Balance = balance
		result.Charged = false
		return
	}
	result.Balance = newBalance
	result.Charged = true
}

func (s *Service) persistenceFailure(operation, userID string, err error) error {
	s.logger.Error("Failed to write generation history", map[string]any{
		"operation": operation,
		"userId":    userID,
		"error":     err.Error(),
	})
	return errs.NewPersistenceError(operation, err)
}

func mergeFields(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
