package handler

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/usecase"
	"rentmate/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address"`
	Gender   string `json:"gender"`
	Role     string `json:"role" validate:"required,oneof=landlord tenant"`
	Password string `json:"password" validate:"required,min=4"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Gender:   req.Gender,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

type loginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=landlord tenant"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Phone, req.Password, req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type changePasswordRequest struct {
	UserID      string `json:"userId" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=landlord tenant"`
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=4"`
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.authUseCase.ChangePassword(c.Request().Context(), req.UserID, req.Role, req.OldPassword, req.NewPassword)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password updated",
	})
}

type updateProfileRequest struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=landlord tenant"`
	Name   string `json:"name" validate:"required"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.authUseCase.UpdateProfile(c.Request().Context(), req.UserID, req.Role, usecase.UpdateProfileInput{
		Name:   req.Name,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Profile updated",
	})
}
