package handler

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/usecase"
	"rentmate/pkg/errors"
	"rentmate/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	id := c.Param("id")
	role := c.QueryParam("role")

	if id == "" || role == "" {
		return response.Error(c, errors.BadRequest("id and role are required", nil))
	}

	profile, err := h.userUseCase.GetPublicProfile(c.Request().Context(), role, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
