package usecase

import (
	"context"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
	"rentmate/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	rentalRepo   repository.RentalRepository
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	rentalRepo repository.RentalRepository,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		rentalRepo:   rentalRepo,
	}
}

// Add favorites a listing for a tenant. The insert is atomic at the store,
// so adding twice simply returns the existing favorite.
func (uc *FavoriteUseCase) Add(ctx context.Context, uid, rentalID string) (*entity.Favorite, bool, error) {
	if uid == "" || rentalID == "" {
		return nil, false, errors.BadRequest("uid and rentalId are required", nil)
	}

	if _, err := uc.rentalRepo.GetByID(ctx, rentalID); err != nil {
		return nil, false, err
	}

	return uc.favoriteRepo.Add(ctx, uid, rentalID)
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, favDocID string) error {
	if favDocID == "" {
		return errors.BadRequest("Favorite id is required", nil)
	}
	return uc.favoriteRepo.Remove(ctx, favDocID)
}

// ListByUser returns the tenant's favorites joined with their listings.
// Favorites pointing at deleted listings are silently dropped.
func (uc *FavoriteUseCase) ListByUser(ctx context.Context, uid string) ([]*entity.FavoriteWithRental, error) {
	if uid == "" {
		return nil, errors.BadRequest("uid is required", nil)
	}

	favorites, err := uc.favoriteRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.FavoriteWithRental, 0, len(favorites))
	for _, fav := range favorites {
		rental, err := uc.rentalRepo.GetByID(ctx, fav.RentalID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				logger.Debug("Favorite %s references deleted rental %s, skipping", fav.ID, fav.RentalID)
				continue
			}
			return nil, err
		}
		result = append(result, &entity.FavoriteWithRental{
			FavDocID: fav.ID,
			Rental:   rental,
		})
	}

	return result, nil
}

// CheckStatus reports whether a tenant has favorited a listing.
func (uc *FavoriteUseCase) CheckStatus(ctx context.Context, uid, rentalID string) (bool, string, error) {
	if uid == "" || rentalID == "" {
		return false, "", errors.BadRequest("uid and rentalId are required", nil)
	}

	fav, err := uc.favoriteRepo.Get(ctx, uid, rentalID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, "", nil
		}
		return false, "", err
	}

	return true, fav.ID, nil
}
