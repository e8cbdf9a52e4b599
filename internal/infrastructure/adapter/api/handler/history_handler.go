package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/adspark/internal/domain/error"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/dto"
)

type HistoryHandler struct {
	history usecase.HistoryUseCase
}

func NewHistoryHandler(history usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// ListHooks handles GET /api/me/history/hooks
func (h *HistoryHandler) ListHooks(c *gin.Context) {
	userID, limit, ok := historyQuery(c)
	if !ok {
		return
	}
	hooks, err := h.history.ListHooks(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hooks": dto.HookRecordsFrom(hooks)})
}

// ListSearches handles GET /api/me/history/searches
func (h *HistoryHandler) ListSearches(c *gin.Context) {
	userID, limit, ok := historyQuery(c)
	if !ok {
		return
	}
	searches, err := h.history.ListSearches(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": dto.SearchRecordsFrom(searches)})
}

// ListPurchases handles GET /api/me/history/purchases
func (h *HistoryHandler) ListPurchases(c *gin.Context) {
	userID, limit, ok := historyQuery(c)
	if !ok {
		return
	}
	purchases, err := h.history.ListPurchases(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchases": dto.PurchaseRecordsFrom(purchases)})
}

// historyQuery reads the caller and ?limit=; zero means the service default
func historyQuery(c *gin.Context) (string, int, bool) {
	userID, ok := callerID(c)
	if !ok {
		return "", 0, false
	}

	raw := c.Query("limit")
	if raw == "" {
		return userID, 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(c, domainerr.NewValidationError("limit must be a non-negative integer", "limit"))
		return "", 0, false
	}
	return userID, limit, true
}
