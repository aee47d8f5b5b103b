package router

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e, rateLimitMiddleware)
	SetupUserRouter(e)
	SetupRentalRouter(e)
	SetupAppointmentRouter(e)
	SetupContractRouter(e)
	SetupFavoriteRouter(e)
	SetupTenantRecordRouter(e)
	SetupChatRouter(e, rateLimitMiddleware)
	SetupHealthRouter(e)
}
