package router

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/adapter/api/handler"
	"rentmate/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login, rateLimitMiddleware.Limit("login"))
	auth.POST("/change-password", authHandler.ChangePassword)
	auth.POST("/update-profile", authHandler.UpdateProfile)
}
