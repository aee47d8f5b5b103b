package router

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/adapter/api/handler"
)

func SetupAppointmentRouter(e *echo.Echo) {
	appointmentHandler := handler.GetAppointmentHandler()

	appointments := e.Group("/api/appointments")
	appointments.POST("/create", appointmentHandler.Create)
	appointments.GET("/landlord/:id", appointmentHandler.ListByLandlord)
	appointments.GET("/tenant/:id", appointmentHandler.ListByTenant)
	appointments.GET("/room-tenants", appointmentHandler.ListByRental)
	appointments.POST("/:id/message", appointmentHandler.AddMessage)
	appointments.POST("/:id/negotiate", appointmentHandler.Negotiate)
	appointments.POST("/:id/status", appointmentHandler.UpdateStatus)
}
