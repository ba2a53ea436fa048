// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/campus-pos/backend/config"
	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/application/usecase/assistant"
	"github.com/campus-pos/backend/internal/application/usecase/auth"
	"github.com/campus-pos/backend/internal/application/usecase/checkout"
	"github.com/campus-pos/backend/internal/application/usecase/product"
	"github.com/campus-pos/backend/internal/application/usecase/report"
	"github.com/campus-pos/backend/internal/application/usecase/user"
	"github.com/campus-pos/backend/internal/infra/server/router"
	"github.com/campus-pos/backend/internal/integration/adapters"
	"github.com/campus-pos/backend/internal/integration/email"
	"github.com/campus-pos/backend/internal/integration/email/templates"
	"github.com/campus-pos/backend/internal/integration/entrypoint/controller"
	"github.com/campus-pos/backend/internal/integration/entrypoint/middleware"
	"github.com/campus-pos/backend/internal/integration/persistence"
	"github.com/campus-pos/backend/internal/integration/persistence/cache"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The healthCheckers are passed in by the caller because connection ownership
// stays with main.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealth, cacheHealth func() bool) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	productRepo := persistence.NewProductRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)
	productCache := cache.NewProductCache(redisClient)

	// Create adapters/services
	pinService := adapters.NewPINService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPINResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo)

	// Email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, outgoing email is mocked")
		sender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Report timezone
	location := time.Local
	if cfg.POS.ReportTimezone != "" && cfg.POS.ReportTimezone != "Local" {
		loc, err := time.LoadLocation(cfg.POS.ReportTimezone)
		if err != nil {
			slog.Warn("Invalid REPORT_TIMEZONE, falling back to local time", "timezone", cfg.POS.ReportTimezone)
		} else {
			location = loc
		}
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, pinService, tokenService, emailService, cfg.POS.AppBaseURL)
	verifyEmailUseCase := auth.NewVerifyEmailUseCase(userRepo, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, pinService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPINUseCase := auth.NewForgotPINUseCase(userRepo, resetTokenService, emailService, cfg.POS.AppBaseURL)
	resetPINUseCase := auth.NewResetPINUseCase(userRepo, pinService, resetTokenService, cfg.POS.DefaultResetPIN)

	// Create user use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo, pinService)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)

	// Create product use cases
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	getProductUseCase := product.NewGetProductUseCase(productRepo)
	getByBarcodeUseCase := product.NewGetByBarcodeUseCase(productRepo, productCache)
	createProductUseCase := product.NewCreateProductUseCase(productRepo)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo, productCache)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo, productCache)
	decrementStockUseCase := product.NewDecrementStockUseCase(productRepo, productCache)

	// Create checkout use cases
	createTransactionUseCase := checkout.NewCreateTransactionUseCase(transactionRepo, productRepo, productCache)
	listTransactionsUseCase := checkout.NewListTransactionsUseCase(transactionRepo)
	confirmPayLaterUseCase := checkout.NewConfirmPayLaterUseCase(transactionRepo)

	// Create report and assistant use cases
	dailySalesUseCase := report.NewDailySalesUseCase(reportRepo, location)
	assistantService := adapters.NewGeminiAssistant(cfg.Gemini.APIKey, productRepo, dailySalesUseCase)
	askUseCase := assistant.NewAskUseCase(assistantService)

	// Create controllers
	healthController := controller.NewHealthController(dbHealth, cacheHealth)

	authController := controller.NewAuthController(
		registerUseCase,
		verifyEmailUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPINUseCase,
		resetPINUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
		listUsersUseCase,
		deleteUserUseCase,
	)

	productController := controller.NewProductController(
		listProductsUseCase,
		getProductUseCase,
		getByBarcodeUseCase,
		createProductUseCase,
		updateProductUseCase,
		deleteProductUseCase,
		decrementStockUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		confirmPayLaterUseCase,
	)

	reportController := controller.NewReportController(dailySalesUseCase, location)
	assistantController := controller.NewAssistantController(askUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		productController,
		transactionController,
		reportController,
		assistantController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
