package handler

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/usecase"
	"rentmate/pkg/errors"
	"rentmate/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

type addFavoriteRequest struct {
	UID      string `json:"uid" validate:"required"`
	RentalID string `json:"rentalId" validate:"required"`
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fav, created, err := h.favoriteUseCase.Add(c.Request().Context(), req.UID, req.RentalID)
	if err != nil {
		return response.Error(c, err)
	}

	if created {
		return response.Created(c, fav)
	}
	return response.Success(c, fav)
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	favDocID := c.Param("favDocId")
	if favDocID == "" {
		return response.Error(c, errors.BadRequest("Favorite id is required", nil))
	}

	if err := h.favoriteUseCase.Remove(c.Request().Context(), favDocID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Favorite removed",
	})
}

func (h *FavoriteHandler) ListMine(c echo.Context) error {
	favorites, err := h.favoriteUseCase.ListByUser(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}

func (h *FavoriteHandler) CheckStatus(c echo.Context) error {
	uid := c.QueryParam("uid")
	rentalID := c.QueryParam("rentalId")

	isFavorite, favDocID, err := h.favoriteUseCase.CheckStatus(c.Request().Context(), uid, rentalID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"is_favorite": isFavorite,
		"fav_doc_id":  favDocID,
	})
}
