package repository

import (
	"context"

	"rentmate/internal/domain/entity"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *entity.Rental) error
	GetByID(ctx context.Context, id string) (*entity.Rental, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Rental, error)

	// ListPublished returns only listings with the publish flag set,
	// newest first.
	ListPublished(ctx context.Context) ([]*entity.Rental, error)

	ListAmenities(ctx context.Context) ([]string, error)
}
