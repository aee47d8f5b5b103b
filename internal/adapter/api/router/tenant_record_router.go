package router

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/adapter/api/handler"
)

func SetupTenantRecordRouter(e *echo.Echo) {
	tenantRecordHandler := handler.GetTenantRecordHandler()

	landlord := e.Group("/api/landlord/tenants")
	landlord.GET("", tenantRecordHandler.ListByLandlord)
	landlord.POST("", tenantRecordHandler.Create)
	landlord.PUT("/:id", tenantRecordHandler.Update)

	portal := e.Group("/api/tenant-portal")
	portal.GET("/info", tenantRecordHandler.GetMyLivingInfo)
	portal.POST("/note", tenantRecordHandler.UpdateTenantNote)
}
