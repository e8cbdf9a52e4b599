package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/dto"
)

// RateLimitOptions configures RateLimit
type RateLimitOptions struct {
	PathPrefix string
	Limit      int
	Window     time.Duration
}

// RateLimit gates every request under PathPrefix by client IP. A limiter failure lets the
// request through.
func RateLimit(limiter coreport.RateLimiter, opts RateLimitOptions, timeProvider coreport.TimeProvider, logger coreport.Logger) gin.HandlerFunc {
	details := fmt.Sprintf("Limit of %d requests per %s", opts.Limit, windowText(opts.Window))

	return func(c *gin.Context) {
		if !underPrefix(c.Request.URL.Path, opts.PathPrefix) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		decision, err := limiter.Allow(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Rate limiter unavailable, allowing request", map[string]any{
				"ip":    ip,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			wait := decision.ResetAt.Sub(timeProvider.Now())
			c.Header("Retry-After", strconv.Itoa(max(int(math.Ceil(wait.Seconds())), 1)))
			logger.Warn("Rate limit exceeded", map[string]any{
				"ip":   ip,
				"path": c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error:   "Too Many Requests",
				Details: details,
			})
			return
		}

		c.Next()
	}
}

// underPrefix matches prefix itself and paths below it, so "/api" does not cover "/apix"
func underPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func windowText(d time.Duration) string {
	switch d {
	case time.Minute:
		return "minute"
	case time.Hour:
		return "hour"
	case time.Second:
		return "second"
	}
	return d.String()
}
