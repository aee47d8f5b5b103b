package router

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/adapter/api/handler"
	"rentmate/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	chatHandler := handler.GetChatHandler()

	chat := e.Group("/api/chat")
	chat.POST("/send", chatHandler.SendMessage, rateLimitMiddleware.Limit("send_message"))
	chat.GET("/history", chatHandler.GetHistory)
}
