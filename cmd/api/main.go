package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/brainwise/posnext-api/internal/application/service"
	"github.com/brainwise/posnext-api/internal/config"
	"github.com/brainwise/posnext-api/internal/infrastructure/database"
	"github.com/brainwise/posnext-api/internal/infrastructure/repository"
	"github.com/brainwise/posnext-api/internal/presentation/http/handler"
	"github.com/brainwise/posnext-api/internal/presentation/http/routes"
	"github.com/brainwise/posnext-api/pkg/oauth"
	"github.com/brainwise/posnext-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	modeOfPaymentRepo := repository.NewModeOfPaymentRepository(db)
	accountsSettingsRepo := repository.NewAccountsSettingsRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	glEntryRepo := repository.NewGLEntryRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	bootstrapService := service.NewBootstrapService(userRepo, shiftRepo, profileRepo, settingsRepo, companyRepo)
	shiftService := service.NewShiftService(shiftRepo, profileRepo)
	postingService := service.NewPostingService(accountRepo, modeOfPaymentRepo, accountsSettingsRepo, companyRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, glEntryRepo, shiftRepo, profileRepo, companyRepo, customerRepo, modeOfPaymentRepo, postingService)
	profileService := service.NewProfileService(profileRepo, settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Bootstrap: handler.NewBootstrapHandler(bootstrapService),
		Shift:     handler.NewShiftHandler(shiftService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Profile:   handler.NewProfileHandler(profileService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from config or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s on port %s (%s)", cfg.App.Name, port, cfg.App.Env)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
