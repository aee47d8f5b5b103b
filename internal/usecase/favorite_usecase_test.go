package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentmate/internal/domain/entity"
)

func newFavoriteFixture(t *testing.T) (*FavoriteUseCase, *fakeRentalRepo) {
	t.Helper()

	rentalRepo := newFakeRentalRepo()
	require.NoError(t, rentalRepo.Create(context.Background(), &entity.Rental{
		LandlordID:  "landlord-1",
		Title:       "Sunny studio",
		IsPublished: true,
	}))

	return NewFavoriteUseCase(newFakeFavoriteRepo(), rentalRepo), rentalRepo
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	uc, _ := newFavoriteFixture(t)
	ctx := context.Background()

	first, created, err := uc.Add(ctx, "tenant-1", "rental-1")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := uc.Add(ctx, "tenant-1", "rental-1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestAddFavoriteRejectsUnknownRental(t *testing.T) {
	uc, _ := newFavoriteFixture(t)

	_, _, err := uc.Add(context.Background(), "tenant-1", "no-such-rental")
	assert.Error(t, err)
}

func TestListByUserSkipsDeletedRentals(t *testing.T) {
	uc, rentalRepo := newFavoriteFixture(t)
	ctx := context.Background()

	require.NoError(t, rentalRepo.Create(ctx, &entity.Rental{
		LandlordID: "landlord-1",
		Title:      "Second flat",
	}))

	_, _, err := uc.Add(ctx, "tenant-1", "rental-1")
	require.NoError(t, err)
	_, _, err = uc.Add(ctx, "tenant-1", "rental-2")
	require.NoError(t, err)

	require.NoError(t, rentalRepo.Delete(ctx, "rental-2"))

	favorites, err := uc.ListByUser(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "rental-1", favorites[0].Rental.ID)
}

func TestCheckStatus(t *testing.T) {
	uc, _ := newFavoriteFixture(t)
	ctx := context.Background()

	isFavorite, _, err := uc.CheckStatus(ctx, "tenant-1", "rental-1")
	require.NoError(t, err)
	assert.False(t, isFavorite)

	fav, _, err := uc.Add(ctx, "tenant-1", "rental-1")
	require.NoError(t, err)

	isFavorite, favDocID, err := uc.CheckStatus(ctx, "tenant-1", "rental-1")
	require.NoError(t, err)
	assert.True(t, isFavorite)
	assert.Equal(t, fav.ID, favDocID)
}

func TestRemoveFavorite(t *testing.T) {
	uc, _ := newFavoriteFixture(t)
	ctx := context.Background()

	fav, _, err := uc.Add(ctx, "tenant-1", "rental-1")
	require.NoError(t, err)

	require.NoError(t, uc.Remove(ctx, fav.ID))

	isFavorite, _, err := uc.CheckStatus(ctx, "tenant-1", "rental-1")
	require.NoError(t, err)
	assert.False(t, isFavorite)
}
