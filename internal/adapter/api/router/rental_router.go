package router

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/adapter/api/handler"
)

func SetupRentalRouter(e *echo.Echo) {
	rentalHandler := handler.GetRentalHandler()

	rentals := e.Group("/api/rentals")
	rentals.GET("/amenities", rentalHandler.ListAmenities)
	rentals.GET("/public", rentalHandler.ListPublished)
	rentals.GET("/list", rentalHandler.ListByLandlord)
	rentals.POST("/add", rentalHandler.Create)
	rentals.POST("/update", rentalHandler.Update)
	rentals.POST("/delete", rentalHandler.Delete)
	// Registered last so fixed paths above win.
	rentals.GET("/:id", rentalHandler.GetByID)
}
