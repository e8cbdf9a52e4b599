package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/dto"
)

// HookHandler serves the metered generation routes
type HookHandler struct {
	hooks  usecase.HookUseCase
	logger coreport.Logger
}

// NewHookHandler creates a new HookHandler instance
func NewHookHandler(hooks usecase.HookUseCase, logger coreport.Logger) *HookHandler {
	return &HookHandler{hooks: hooks, logger: logger}
}

// Generate handles POST /api/hooks
func (h *HookHandler) Generate(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.HookParams
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidBody(err))
		return
	}

	result, err := h.hooks.GenerateHooks(c.Request.Context(), userID, req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerationResponseFrom(result))
}

// Continue handles POST /api/hooks/continue
func (h *HookHandler) Continue(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.ContinueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidBody(err))
		return
	}

	result, err := h.hooks.ContinueHook(c.Request.Context(), userID, req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerationResponseFrom(result))
}
