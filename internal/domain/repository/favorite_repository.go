package repository

import (
	"context"

	"rentmate/internal/domain/entity"
)

type FavoriteRepository interface {
	// Add inserts the (tenant, rental) pair if absent. created is false when
	// the pair already existed; the stored favorite is returned either way.
	Add(ctx context.Context, uid, rentalID string) (fav *entity.Favorite, created bool, err error)

	Remove(ctx context.Context, favDocID string) error
	Get(ctx context.Context, uid, rentalID string) (*entity.Favorite, error)
	ListByUser(ctx context.Context, uid string) ([]*entity.Favorite, error)
	CountByRental(ctx context.Context, rentalID string) (int64, error)
}
