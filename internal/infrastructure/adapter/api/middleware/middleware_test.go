package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/adspark/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/adspark/mocks/port/gateway"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func TestAuth(t *testing.T) {
	identity := entity.Identity{UserID: "u1", Email: "ada@example.com"}

	newRouter := func(verifier *mockgateway.MockIdentityVerifier) *gin.Engine {
		r := gin.New()
		r.Use(Auth(verifier, logger.NewNoopLogger()))
		r.GET("/api/me", func(c *gin.Context) {
			got, ok := IdentityFrom(c)
			require.True(t, ok)
			c.String(http.StatusOK, got.UserID+"|"+c.GetString(UserIDKey))
		})
		return r
	}

	t.Run("should store the verified identity", func(t *testing.T) {
		verifier := mockgateway.NewMockIdentityVerifier(t)
		verifier.EXPECT().Verify(mock.Anything, "good-token").Return(identity, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := serve(newRouter(verifier), req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1|u1", w.Body.String())
	})

	t.Run("should reject a missing header", func(t *testing.T) {
		verifier := mockgateway.NewMockIdentityVerifier(t)

		w := serve(newRouter(verifier), httptest.NewRequest(http.MethodGet, "/api/me", nil))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Missing bearer token")
	})

	t.Run("should reject other schemes", func(t *testing.T) {
		verifier := mockgateway.NewMockIdentityVerifier(t)
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		w := serve(newRouter(verifier), req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("should reject a token the verifier refuses", func(t *testing.T) {
		verifier := mockgateway.NewMockIdentityVerifier(t)
		verifier.EXPECT().Verify(mock.Anything, "stale").Return(entity.Identity{}, domainerr.ErrUnauthorized).Once()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "bearer stale")

		w := serve(newRouter(verifier), req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired session")
		assert.Contains(t, w.Body.String(), "4010")
	})
}

func TestErrorHandler(t *testing.T) {
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "boom" && fields["stack"] != ""
	})).Once()

	r := gin.New()
	r.Use(ErrorHandler(log))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
	assert.NotContains(t, w.Body.String(), "goroutine")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	t.Run("should keep the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")

		w := serve(r, req)

		assert.Equal(t, "req-42", w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	})

	t.Run("should assign one otherwise", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
	})
}

func TestLogger(t *testing.T) {
	start := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	tp := mockcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(start)
	tp.EXPECT().Since(start).Return(coreport.Duration(15 * time.Millisecond))

	log := mockcore.NewMockLogger(t)
	log.EXPECT().Warn("Request rejected", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == http.StatusNotFound && fields["latency_ms"] == int64(15) && fields["path"] == "/missing"
	})).Once()

	r := gin.New()
	r.Use(Logger(log, tp))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example"}))
	r.GET("/api/me", okHandler)

	t.Run("should allow a listed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Origin", "https://app.example")

		w := serve(r, req)

		assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should not echo other origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Origin", "https://evil.example")

		w := serve(r, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should answer preflight requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/me", nil)
		req.Header.Set("Origin", "https://app.example")

		w := serve(r, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	opts := RateLimitOptions{PathPrefix: "/api", Limit: 10, Window: time.Minute}

	newRouter := func(limiter coreport.RateLimiter, log coreport.Logger) *gin.Engine {
		tp := mockcore.NewMockTimeProvider(t)
		tp.EXPECT().Now().Return(now).Maybe()

		r := gin.New()
		r.Use(RateLimit(limiter, opts, tp, log))
		r.GET("/api/generate-hook", okHandler)
		r.GET("/health", okHandler)
		r.GET("/apix/status", okHandler)
		return r
	}

	t.Run("should pass allowed requests with headers", func(t *testing.T) {
		limiter := mockcore.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "192.0.2.1").
			Return(coreport.RateDecision{Allowed: true, Limit: 10, Remaining: 9, ResetAt: now.Add(time.Minute)}, nil).Once()
		req := httptest.NewRequest(http.MethodGet, "/api/generate-hook", nil)
		req.RemoteAddr = "192.0.2.1:4000"

		w := serve(newRouter(limiter, logger.NewNoopLogger()), req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "9", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("should reject over the limit", func(t *testing.T) {
		limiter := mockcore.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).
			Return(coreport.RateDecision{Allowed: false, Limit: 10, ResetAt: now.Add(1500 * time.Millisecond)}, nil).Once()

		w := serve(newRouter(limiter, logger.NewNoopLogger()), httptest.NewRequest(http.MethodGet, "/api/generate-hook", nil))

		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"Too Many Requests","details":"Limit of 10 requests per minute"}`, w.Body.String())
	})

	t.Run("should skip paths outside the prefix", func(t *testing.T) {
		limiter := mockcore.NewMockRateLimiter(t)

		w := serve(newRouter(limiter, logger.NewNoopLogger()), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should not treat a sibling path as under the prefix", func(t *testing.T) {
		limiter := mockcore.NewMockRateLimiter(t)

		w := serve(newRouter(limiter, logger.NewNoopLogger()), httptest.NewRequest(http.MethodGet, "/apix/status", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("should fail open when the limiter errors", func(t *testing.T) {
		limiter := mockcore.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(coreport.RateDecision{}, errors.New("redis down")).Once()
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Error("Rate limiter unavailable, allowing request", mock.Anything).Once()

		w := serve(newRouter(limiter, log), httptest.NewRequest(http.MethodGet, "/api/generate-hook", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUnderPrefix(t *testing.T) {
	cases := []struct {
		path, prefix string
		want         bool
	}{
		{"/api", "/api", true},
		{"/api/hooks", "/api", true},
		{"/api/hooks", "/api/", true},
		{"/apix", "/api", false},
		{"/apix/status", "/api/", false},
		{"/health", "/api", false},
		{"/health", "", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, underPrefix(tc.path, tc.prefix), "%s under %q", tc.path, tc.prefix)
	}
}
