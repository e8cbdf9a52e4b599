package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles account, profile and balance requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	ledger      usecase.LedgerUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase usecase.UserUseCase, ledger usecase.LedgerUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		ledger:      ledger,
		logger:      logger,
	}
}

// Session handles POST /api/session, creating the account on first sign-in
func (h *UserHandler) Session(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondError(c, domainerr.ErrUnauthorized)
		return
	}

	account, created, err := h.userUseCase.EnsureAccount(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.SessionResponse{User: dto.UserResponseFrom(account), Created: created})
}

// GetProfile handles GET /api/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	account, err := h.userUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFrom(account))
}

// GetBalance handles GET /api/me/balance
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	tokens, err := h.ledger.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error getting user balance", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: userID, Tokens: tokens})
}

// UpdateProfile handles PUT /api/me/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidBody(err))
		return
	}

	account, err := h.userUseCase.UpdateProfile(c.Request.Context(), userID, req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFrom(account))
}

// UpdatePreferences handles PUT /api/me/preferences
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, invalidBody(err))
		return
	}

	account, err := h.userUseCase.UpdatePreferences(c.Request.Context(), userID, *req.MarketingOptIn)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponseFrom(account))
}

func invalidBody(err error) error {
	return domainerr.NewValidationError("invalid request body: " + err.Error())
}
