package routes

import (
	"adboard_backend/internal/handlers"
	"adboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	// Публичный API: регистрация, вход и витрина активных объявлений
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.PostHandler.RegisterPublicRoutes(api)
	}

	// Все остальное только с JWT
	protected := ginRouter.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		appHandlers.AuthHandler.RegisterProtectedRoutes(protected)
		appHandlers.UserHandler.RegisterRoutes(protected)
		appHandlers.PostHandler.RegisterRoutes(protected)
		appHandlers.CreditHandler.RegisterRoutes(protected)
	}
}
