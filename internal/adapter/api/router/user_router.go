package router

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo) {
	userHandler := handler.GetUserHandler()

	user := e.Group("/api/user")
	user.GET("/:id", userHandler.GetProfile)
}
