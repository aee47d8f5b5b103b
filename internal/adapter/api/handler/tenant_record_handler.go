package handler

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/domain/entity"
	"rentmate/internal/usecase"
	"rentmate/pkg/errors"
	"rentmate/pkg/response"
)

type TenantRecordHandler struct {
	tenantRecordUseCase *usecase.TenantRecordUseCase
}

func NewTenantRecordHandler(tenantRecordUseCase *usecase.TenantRecordUseCase) *TenantRecordHandler {
	return &TenantRecordHandler{
		tenantRecordUseCase: tenantRecordUseCase,
	}
}

type createTenantRecordRequest struct {
	LandlordID         string `json:"landlordId" validate:"required"`
	Name               string `json:"name" validate:"required"`
	Phone              string `json:"phone" validate:"required"`
	CurrentRentalID    string `json:"currentRentalId"`
	CurrentRentalTitle string `json:"currentRentalTitle"`
	LeaseStart         string `json:"leaseStart"`
	LeaseEnd           string `json:"leaseEnd"`
}

func (h *TenantRecordHandler) Create(c echo.Context) error {
	var req createTenantRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	record, err := h.tenantRecordUseCase.Create(c.Request().Context(), usecase.CreateTenantRecordInput{
		LandlordID:         req.LandlordID,
		Name:               req.Name,
		Phone:              req.Phone,
		CurrentRentalID:    req.CurrentRentalID,
		CurrentRentalTitle: req.CurrentRentalTitle,
		LeaseStart:         req.LeaseStart,
		LeaseEnd:           req.LeaseEnd,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, record)
}

func (h *TenantRecordHandler) ListByLandlord(c echo.Context) error {
	records, err := h.tenantRecordUseCase.ListByLandlord(c.Request().Context(), c.QueryParam("landlordId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, records)
}

type updateTenantRecordRequest struct {
	Fields  map[string]interface{}          `json:"fields"`
	Records map[string]entity.BillingRecord `json:"records"`
}

func (h *TenantRecordHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Record id is required", nil))
	}

	var req updateTenantRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.tenantRecordUseCase.Update(c.Request().Context(), id, req.Fields, req.Records); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Record updated",
	})
}

func (h *TenantRecordHandler) GetMyLivingInfo(c echo.Context) error {
	info, err := h.tenantRecordUseCase.GetMyLivingInfo(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, info)
}

type tenantNoteRequest struct {
	RecordID string `json:"recordId" validate:"required"`
	Month    string `json:"month" validate:"required"`
	Note     string `json:"note"`
}

func (h *TenantRecordHandler) UpdateTenantNote(c echo.Context) error {
	var req tenantNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.tenantRecordUseCase.UpdateTenantNote(c.Request().Context(), req.RecordID, req.Month, req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Note saved",
	})
}
