package handler

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/domain/entity"
	"rentmate/internal/usecase"
	"rentmate/pkg/errors"
	"rentmate/pkg/response"
)

type ContractHandler struct {
	contractUseCase *usecase.ContractUseCase
}

func NewContractHandler(contractUseCase *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{
		contractUseCase: contractUseCase,
	}
}

type createContractRequest struct {
	RentalID      string `json:"rentalId"`
	LandlordID    string `json:"landlordId" validate:"required"`
	LandlordName  string `json:"landlordName" validate:"required"`
	TenantID      string `json:"tenantId"`
	TenantName    string `json:"tenantName"`
	TenantPhone   string `json:"tenantPhone"`
	Address       string `json:"address"`
	Price         int    `json:"price" validate:"gte=0"`
	PeriodStart   string `json:"periodStart"`
	PeriodEnd     string `json:"periodEnd"`
	DepositMonths string `json:"depositMonths"`
	DepositFee    string `json:"depositFee"`
	OtherTerms    string `json:"otherTerms"`
}

func (h *ContractHandler) Create(c echo.Context) error {
	var req createContractRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	contract, err := h.contractUseCase.Create(c.Request().Context(), usecase.CreateContractInput{
		RentalID:      req.RentalID,
		LandlordID:    req.LandlordID,
		LandlordName:  req.LandlordName,
		TenantID:      req.TenantID,
		TenantName:    req.TenantName,
		TenantPhone:   req.TenantPhone,
		Address:       req.Address,
		Price:         req.Price,
		PeriodStart:   req.PeriodStart,
		PeriodEnd:     req.PeriodEnd,
		DepositMonths: req.DepositMonths,
		DepositFee:    req.DepositFee,
		OtherTerms:    req.OtherTerms,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, contract)
}

func (h *ContractHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if landlordID := c.QueryParam("landlordId"); landlordID != "" {
		contracts, err := h.contractUseCase.ListByLandlord(ctx, landlordID)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, contracts)
	}

	if tenantID := c.QueryParam("tenantId"); tenantID != "" {
		contracts, err := h.contractUseCase.ListByTenant(ctx, tenantID)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, contracts)
	}

	return response.Error(c, errors.BadRequest("landlordId or tenantId is required", nil))
}

type updatePDFRequest struct {
	PDF string `json:"pdf" validate:"required"`
}

func (h *ContractHandler) UpdatePDF(c echo.Context) error {
	var req updatePDFRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	contract, err := h.contractUseCase.UpdatePDF(c.Request().Context(), c.Param("id"), req.PDF)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contract)
}

type signRequest struct {
	Signature string `json:"signature" validate:"required"`
}

func (h *ContractHandler) LandlordSign(c echo.Context) error {
	return h.sign(c, entity.RoleLandlord)
}

func (h *ContractHandler) TenantSign(c echo.Context) error {
	return h.sign(c, entity.RoleTenant)
}

func (h *ContractHandler) sign(c echo.Context, role string) error {
	var req signRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	contract, err := h.contractUseCase.Sign(c.Request().Context(), c.Param("id"), role, req.Signature)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contract)
}
