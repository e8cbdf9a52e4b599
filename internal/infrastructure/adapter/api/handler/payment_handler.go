package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/dto"
)

// maxWebhookBody bounds the webhook payload read into memory
const maxWebhookBody = 64 << 10

// PaymentHandler serves checkout creation and the payment webhook
type PaymentHandler struct {
	purchases usecase.PurchaseUseCase
	logger    coreport.Logger
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(purchases usecase.PurchaseUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{purchases: purchases, logger: logger}
}

// CreateCheckoutSession handles POST /api/create-checkout-session
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid checkout request", Details: "Invalid request body"})
		return
	}

	session, err := h.purchases.CreateCheckout(c.Request.Context(), req.ToEntity())
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, domainerr.ErrValidation) || errors.Is(err, domainerr.ErrUnknownPackage) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid checkout request", Details: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{ID: session.ID, URL: session.URL})
}

// Webhook handles POST /api/stripe-webhook. Verification and payload problems answer 400 so
// the processor stops retrying; fulfillment failures answer 500 so it retries.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	payload, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}

	result, err := h.purchases.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, domainerr.ErrPaymentVerification) || errors.Is(err, domainerr.ErrValidation) {
			c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
			return
		}
		h.logger.Error("Webhook fulfillment failed", domainerr.LogFieldsOf(err))
		c.String(http.StatusInternalServerError, "Webhook Error: fulfillment failed")
		return
	}

	if result != nil && result.Duplicate {
		h.logger.Info("Duplicate webhook acknowledged", map[string]any{
			"sessionId": result.Purchase.SessionID,
		})
	}
	c.String(http.StatusOK, "Webhook received")
}
