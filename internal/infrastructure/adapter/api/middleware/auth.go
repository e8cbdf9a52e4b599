package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/dto"
)

const (
	IdentityKey = "identity"
	UserIDKey   = "userId"
)

// Auth requires a valid bearer token and stores the caller's identity on the context
func Auth(verifier gateway.IdentityVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Rejected session token", map[string]any{
				"error":      err.Error(),
				"request_id": c.GetString(RequestIDKey),
			})
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, identity.UserID)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Auth
func IdentityFrom(c *gin.Context) (entity.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return entity.Identity{}, false
	}
	identity, ok := v.(entity.Identity)
	return identity, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:   "Unauthorized",
		Details: details,
		Code:    domainerr.CodeUnauthorized,
	})
}
