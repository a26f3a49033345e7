package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/recarga/internal/cache"
	"github.com/example/recarga/internal/config"
	"github.com/example/recarga/internal/handlers"
	"github.com/example/recarga/internal/metrics"
	"github.com/example/recarga/internal/middleware"
	"github.com/example/recarga/internal/services"
	"github.com/example/recarga/internal/utils"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, redis *cache.Redis, m *metrics.Metrics) {
	emailService := services.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom)
	pushService := services.NewPushService(cfg.ExpoPushURL)
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	paymentService := services.NewPaymentService()
	validator := utils.NewValidator()

	authHandler := handlers.NewAuthHandler(db, cfg, emailService, validator)
	resetHandler := handlers.NewPasswordResetHandler(db, cfg, emailService)
	packageHandler := handlers.NewPackageHandler(db, redis, m)
	orderHandler := handlers.NewOrderHandler(db, paymentService, pushService, telegramService, m)
	profileHandler := handlers.NewProfileHandler(db)
	adminHandler := handlers.NewAdminHandler(db, pushService, m)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", resetHandler.ForgotPassword)
	auth.Post("/reset-password", resetHandler.ResetPassword)

	// Public catalog
	api.Get("/packages", packageHandler.ListPackages)
	api.Get("/packages/:id", packageHandler.GetPackage)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/auth/session", authHandler.Session)

	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)
	protected.Put("/profile/push-token", profileHandler.UpdatePushToken)
	protected.Get("/profile/favorites", profileHandler.ListFavorites)
	protected.Post("/profile/favorites", profileHandler.AddFavorite)
	protected.Delete("/profile/favorites/:number", profileHandler.RemoveFavorite)

	// Admin console
	admin := protected.Group("/admin", middleware.AdminOnly(db))
	admin.Get("/stats", adminHandler.GetStats)
	admin.Get("/charts", adminHandler.GetCharts)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/orders", adminHandler.ListOrders)
	admin.Put("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.Post("/packages", packageHandler.CreatePackage)
	admin.Put("/packages/:id", packageHandler.UpdatePackage)
	admin.Delete("/packages/:id", packageHandler.DeletePackage)
	admin.Post("/notifications", adminHandler.BroadcastNotification)
}
