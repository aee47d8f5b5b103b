package handler

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/usecase"
	"rentmate/pkg/errors"
	"rentmate/pkg/response"
)

type AppointmentHandler struct {
	appointmentUseCase *usecase.AppointmentUseCase
}

func NewAppointmentHandler(appointmentUseCase *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUseCase: appointmentUseCase,
	}
}

type createAppointmentRequest struct {
	RentalID    string `json:"rentalId" validate:"required"`
	RentalTitle string `json:"rentalTitle"`
	LandlordID  string `json:"landlordId" validate:"required"`
	TenantID    string `json:"tenantId" validate:"required"`
	TenantName  string `json:"tenantName"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Message     string `json:"message"`
}

func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	appointment, err := h.appointmentUseCase.Create(c.Request().Context(), usecase.CreateAppointmentInput{
		RentalID:    req.RentalID,
		RentalTitle: req.RentalTitle,
		LandlordID:  req.LandlordID,
		TenantID:    req.TenantID,
		TenantName:  req.TenantName,
		Date:        req.Date,
		Time:        req.Time,
		Message:     req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, appointment)
}

func (h *AppointmentHandler) ListByLandlord(c echo.Context) error {
	landlordID := c.Param("id")
	if landlordID == "" {
		return response.Error(c, errors.BadRequest("Landlord id is required", nil))
	}

	appointments, err := h.appointmentUseCase.ListByLandlord(c.Request().Context(), landlordID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, appointments)
}

func (h *AppointmentHandler) ListByTenant(c echo.Context) error {
	tenantID := c.Param("id")
	if tenantID == "" {
		return response.Error(c, errors.BadRequest("Tenant id is required", nil))
	}

	appointments, err := h.appointmentUseCase.ListByTenant(c.Request().Context(), tenantID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, appointments)
}

func (h *AppointmentHandler) ListByRental(c echo.Context) error {
	appointments, err := h.appointmentUseCase.ListByRental(c.Request().Context(), c.QueryParam("rentalId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, appointments)
}

type appointmentMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=landlord tenant"`
	Message string `json:"message" validate:"required"`
}

func (h *AppointmentHandler) AddMessage(c echo.Context) error {
	var req appointmentMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	appointment, err := h.appointmentUseCase.AddMessage(c.Request().Context(), c.Param("id"), req.Role, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, appointment)
}

func (h *AppointmentHandler) Negotiate(c echo.Context) error {
	var req struct {
		Message string `json:"message" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.appointmentUseCase.Negotiate(c.Request().Context(), c.Param("id"), req.Message); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Counter-offer sent",
	})
}

type updateStatusRequest struct {
	Status    string `json:"status" validate:"required"`
	FinalDate string `json:"finalDate"`
	FinalTime string `json:"finalTime"`
}

func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	appointment, err := h.appointmentUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), usecase.UpdateStatusInput{
		Status:    req.Status,
		FinalDate: req.FinalDate,
		FinalTime: req.FinalTime,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, appointment)
}
