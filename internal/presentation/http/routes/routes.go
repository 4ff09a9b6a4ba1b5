package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brainwise/posnext-api/internal/config"
	"github.com/brainwise/posnext-api/internal/presentation/http/handler"
	"github.com/brainwise/posnext-api/internal/presentation/http/middleware"
	"github.com/brainwise/posnext-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Bootstrap *handler.BootstrapHandler
	Shift     *handler.ShiftHandler
	Invoice   *handler.InvoiceHandler
	Profile   *handler.ProfileHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// POS bootstrap
	protected.GET("/pos/initial-data", h.Bootstrap.GetInitialData)

	// Shifts
	registerShiftRoutes(protected, h)

	// Invoices
	registerInvoiceRoutes(protected, h)

	// POS profiles
	registerProfileRoutes(protected, h)
}

func registerShiftRoutes(protected *gin.RouterGroup, h *Handlers) {
	shifts := protected.Group("/shifts")
	{
		shifts.GET("", h.Shift.List)
		shifts.POST("", h.Shift.Open)
		shifts.GET("/current", h.Shift.GetCurrent)
		shifts.GET("/:name", h.Shift.Get)
		shifts.POST("/:name/close", h.Shift.Close)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:name", h.Invoice.Get)
		invoices.POST("/:name/submit", h.Invoice.Submit)
		invoices.GET("/:name/gl-entries", h.Invoice.GetLedgerEntries)
	}
}

func registerProfileRoutes(protected *gin.RouterGroup, h *Handlers) {
	profiles := protected.Group("/pos-profiles")
	{
		profiles.GET("/:name", h.Profile.Get)
		profiles.GET("/:name/settings", h.Profile.GetSettings)
		profiles.PUT("/:name/settings", h.Profile.UpdateSettings)
		profiles.GET("/:name/payment-methods", h.Profile.GetPaymentMethods)
	}
}
