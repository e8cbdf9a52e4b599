package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/adspark/internal/domain/error"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/middleware"
)

// respondError maps a domain error to its status and standard body. The body carries the
// error message only; panics are answered by the recovery middleware instead.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := domainerr.HTTPStatus(err)
	c.JSON(status, dto.ErrorResponse{
		Error:   http.StatusText(status),
		Details: err.Error(),
		Code:    domainerr.ErrorCode(err),
	})
}

// callerID returns the authenticated user id; Auth guarantees it on protected routes
func callerID(c *gin.Context) (string, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.UserID == "" {
		respondError(c, domainerr.ErrUnauthorized)
		return "", false
	}
	return identity.UserID, true
}
