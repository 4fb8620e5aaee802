package app

import (
	"context"
	"database/sql"
	"fmt"

	"adboard_backend/database"
	"adboard_backend/internal/config"
	"adboard_backend/internal/email"
	"adboard_backend/internal/handlers"
	"adboard_backend/internal/logger"
	"adboard_backend/internal/middleware"
	"adboard_backend/internal/payment"
	"adboard_backend/internal/repositories"
	"adboard_backend/internal/routes"
	"adboard_backend/internal/services"
	"adboard_backend/internal/validator"
	"adboard_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	// Фоновая очистка истекших refresh-токенов
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	workers.NewTokenCleanupWorker(gormDB).Start(workerCtx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(gormDB)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Enabled {
		emailService = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("Email-сервис отключен. Используется MOCK.")
		emailService = &MockEmailProvider{}
	}

	// Платежный шлюз. Пока поддерживается только симулятор,
	// реальный провайдер подключается тем же интерфейсом.
	gateway := payment.NewSimulatedGateway()

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	postRepo := repositories.NewPostRepository()
	purchaseRepo := repositories.NewCreditPurchaseRepository()

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo, refreshTokenRepo, emailService)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, userRepo)
	creditService := services.NewCreditService(userRepo, purchaseRepo, gateway, emailService)

	return &services.ServiceContainer{
		AuthService:   authService,
		UserService:   userService,
		PostService:   postService,
		CreditService: creditService,
		EmailService:  emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:   handlers.NewUserHandler(baseHandler, services.UserService),
		PostHandler:   handlers.NewPostHandler(baseHandler, services.PostService),
		CreditHandler: handlers.NewCreditHandler(baseHandler, services.CreditService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
