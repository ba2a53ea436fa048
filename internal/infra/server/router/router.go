// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-pos/backend/internal/integration/entrypoint/controller"
	"github.com/campus-pos/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	productController     *controller.ProductController
	transactionController *controller.TransactionController
	reportController      *controller.ReportController
	assistantController   *controller.AssistantController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	productController *controller.ProductController,
	transactionController *controller.TransactionController,
	reportController *controller.ReportController,
	assistantController *controller.AssistantController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		productController:     productController,
		transactionController: transactionController,
		reportController:      reportController,
		assistantController:   assistantController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.GET("/verify-email", r.authController.VerifyEmail)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/admin/login", r.loginRateLimiter.Middleware(), r.authController.AdminLogin)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-pin", r.authController.ForgotPIN)
				auth.POST("/reset-pin", r.authController.ResetPIN)
			}
		}

		// Product routes: reads for any authenticated user, writes admin only
		if r.productController != nil && r.authMiddleware != nil {
			products := v1.Group("/products")
			products.Use(r.authMiddleware.Authenticate())
			{
				products.GET("", r.productController.List)
				products.GET("/barcode/:code", r.productController.GetByBarcode)
				products.GET("/:id", r.productController.Get)

				admin := products.Group("")
				admin.Use(r.authMiddleware.RequireAdmin())
				{
					admin.POST("", r.productController.Create)
					admin.PUT("/:id", r.productController.Update)
					admin.DELETE("/:id", r.productController.Delete)
					admin.PUT("/:id/decrement", r.productController.DecrementStock)
				}
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.POST("", r.transactionController.Create)
				transactions.GET("", r.transactionController.List)
				transactions.POST("/pay-later/confirm", r.transactionController.ConfirmPayLater)
			}
		}

		// User routes: own profile for any authenticated user, listing and
		// deletion admin only
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetMe)
				users.PATCH("/me", r.userController.UpdateMe)

				admin := users.Group("")
				admin.Use(r.authMiddleware.RequireAdmin())
				{
					admin.GET("", r.userController.List)
					admin.DELETE("/:id", r.userController.Delete)
					if r.transactionController != nil {
						admin.GET("/:id/transactions", r.transactionController.ListForUser)
					}
				}
			}
		}

		// Report routes (admin only)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				reports.GET("/daily-sales", r.reportController.DailySales)
			}
		}

		// Assistant routes (admin only)
		if r.assistantController != nil && r.authMiddleware != nil {
			assistant := v1.Group("/assistant")
			assistant.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				assistant.POST("/ask", r.assistantController.Ask)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
