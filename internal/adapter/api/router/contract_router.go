package router

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/adapter/api/handler"
)

func SetupContractRouter(e *echo.Echo) {
	contractHandler := handler.GetContractHandler()

	contracts := e.Group("/api/contracts")
	contracts.GET("", contractHandler.List)
	contracts.POST("", contractHandler.Create)
	contracts.PUT("/:id/update-pdf", contractHandler.UpdatePDF)
	contracts.PUT("/:id/landlord-sign", contractHandler.LandlordSign)
	contracts.PUT("/:id/tenant-sign", contractHandler.TenantSign)
}
