package handler

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/usecase"
	"rentmate/pkg/errors"
	"rentmate/pkg/response"
	"rentmate/pkg/utils"
)

type RentalHandler struct {
	rentalUseCase *usecase.RentalUseCase
}

func NewRentalHandler(rentalUseCase *usecase.RentalUseCase) *RentalHandler {
	return &RentalHandler{
		rentalUseCase: rentalUseCase,
	}
}

type rentalRequest struct {
	ID          string   `json:"id"`
	LandlordID  string   `json:"landlordId" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Address     string   `json:"address"`
	Type        string   `json:"type"`
	Price       int      `json:"price" validate:"gte=0"`
	Deposit     int      `json:"deposit" validate:"gte=0"`
	Floor       int      `json:"floor"`
	Area        float64  `json:"area"`
	Rooms       int      `json:"rooms"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	IsPublished bool     `json:"isPublished"`
}

func (r rentalRequest) toInput() usecase.RentalInput {
	return usecase.RentalInput{
		LandlordID:  r.LandlordID,
		Title:       r.Title,
		Address:     r.Address,
		Type:        r.Type,
		Price:       r.Price,
		Deposit:     r.Deposit,
		Floor:       r.Floor,
		Area:        r.Area,
		Rooms:       r.Rooms,
		Amenities:   r.Amenities,
		Description: r.Description,
		Images:      r.Images,
		IsPublished: r.IsPublished,
	}
}

func (h *RentalHandler) Create(c echo.Context) error {
	var req rentalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	rental, err := h.rentalUseCase.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, rental)
}

func (h *RentalHandler) Update(c echo.Context) error {
	var req rentalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if req.ID == "" {
		return response.Error(c, errors.BadRequest("Rental id is required", nil))
	}

	if err := h.rentalUseCase.Update(c.Request().Context(), req.ID, req.toInput()); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Rental updated",
	})
}

func (h *RentalHandler) Delete(c echo.Context) error {
	var req struct {
		ID string `json:"id" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.rentalUseCase.Delete(c.Request().Context(), req.ID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Rental deleted",
	})
}

func (h *RentalHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Rental id is required", nil))
	}

	detail, err := h.rentalUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

func (h *RentalHandler) ListByLandlord(c echo.Context) error {
	landlordID := c.QueryParam("landlordId")
	if landlordID == "" {
		return response.Error(c, errors.BadRequest("landlordId is required", nil))
	}

	rentals, err := h.rentalUseCase.ListByLandlord(c.Request().Context(), landlordID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rentals)
}

func (h *RentalHandler) ListPublished(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	rentals, err := h.rentalUseCase.ListPublished(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	total := int64(len(rentals))
	start := pagination.Offset
	if start > len(rentals) {
		start = len(rentals)
	}
	end := start + pagination.PageSize
	if end > len(rentals) {
		end = len(rentals)
	}

	return response.Paginated(c, rentals[start:end], total, pagination.Page, pagination.PageSize)
}

func (h *RentalHandler) ListAmenities(c echo.Context) error {
	amenities, err := h.rentalUseCase.ListAmenities(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, amenities)
}
