package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Proxy   *handler.ProxyHandler
	Payment *handler.PaymentHandler
	User    *handler.UserHandler
	Hook    *handler.HookHandler
	History *handler.HistoryHandler
	Health  *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, verifier gateway.IdentityVerifier, logger coreport.Logger) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.POST("/generate-hook", h.Proxy.GenerateHook)
		api.POST("/continue-hook", h.Proxy.ContinueHook)
		api.POST("/create-checkout-session", h.Payment.CreateCheckoutSession)
		api.POST("/stripe-webhook", h.Payment.Webhook)
	}

	authed := api.Group("", middleware.Auth(verifier, logger))
	{
		authed.POST("/session", h.User.Session)

		authed.POST("/hooks", h.Hook.Generate)
		authed.POST("/hooks/continue", h.Hook.Continue)

		me := authed.Group("/me")
		me.GET("", h.User.GetProfile)
		me.GET("/balance", h.User.GetBalance)
		me.PUT("/profile", h.User.UpdateProfile)
		me.PUT("/preferences", h.User.UpdatePreferences)

		history := me.Group("/history")
		history.GET("/hooks", h.History.ListHooks)
		history.GET("/searches", h.History.ListSearches)
		history.GET("/purchases", h.History.ListPurchases)
	}
}

// MiddlewareOptions configures the global middleware chain
type MiddlewareOptions struct {
	AllowedOrigins []string
	Limiter        coreport.RateLimiter
	RateLimit      middleware.RateLimitOptions
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, opts MiddlewareOptions, timeProvider coreport.TimeProvider, logger coreport.Logger) {
	// Order matters: recovery wraps everything, the request id precedes logging
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.Limiter != nil {
		router.Use(middleware.RateLimit(opts.Limiter, opts.RateLimit, timeProvider, logger))
	}
}
