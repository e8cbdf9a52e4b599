package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/dto"
)

const (
	generationFailed   = "Hook Generation Failed"
	continuationFailed = "Hook Continuation Failed"
	missingParameters  = "Missing required parameters"
)

// ProxyHandler serves the unmetered generate-hook and continue-hook routes
type ProxyHandler struct {
	hooks  usecase.HookUseCase
	logger coreport.Logger
}

// NewProxyHandler creates a new ProxyHandler instance
func NewProxyHandler(hooks usecase.HookUseCase, logger coreport.Logger) *ProxyHandler {
	return &ProxyHandler{hooks: hooks, logger: logger}
}

// GenerateHook handles POST /api/generate-hook
func (h *ProxyHandler) GenerateHook(c *gin.Context) {
	var req dto.HookParams
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: generationFailed, Details: missingParameters})
		return
	}

	hooks, err := h.hooks.PreviewHooks(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.fail(c, generationFailed, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateHookResponse{Hooks: hooks, Metadata: req})
}

// ContinueHook handles POST /api/continue-hook
func (h *ProxyHandler) ContinueHook(c *gin.Context) {
	var req dto.ContinueHookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: continuationFailed, Details: missingParameters})
		return
	}
	if req.Context == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: continuationFailed, Details: missingParameters})
		return
	}

	continued, err := h.hooks.PreviewContinuation(c.Request.Context(), entity.ContinuationRequest{
		PreviousHook: req.PreviousHook,
		Context:      req.Context.ToEntity(),
		UserPrompt:   req.Context.UserPrompt,
	})
	if err != nil {
		h.fail(c, continuationFailed, err)
		return
	}

	c.JSON(http.StatusOK, dto.ContinueHookResponse{ContinuedHook: continued, Metadata: req.Context})
}

func (h *ProxyHandler) fail(c *gin.Context, title string, err error) {
	_ = c.Error(err)
	if errors.Is(err, domainerr.ErrValidation) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: title, Details: missingParameters})
		return
	}

	h.logger.Error("Proxy generation failed", mergeFields(domainerr.LogFieldsOf(err), map[string]any{
		"path": c.Request.URL.Path,
	}))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: title, Details: err.Error()})
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
