package router

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/adapter/api/handler"
)

func SetupFavoriteRouter(e *echo.Echo) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/api/favorites")
	favorites.POST("/add", favoriteHandler.Add)
	favorites.DELETE("/:favDocId", favoriteHandler.Remove)
	favorites.GET("/my", favoriteHandler.ListMine)
	favorites.GET("/status", favoriteHandler.CheckStatus)
}
