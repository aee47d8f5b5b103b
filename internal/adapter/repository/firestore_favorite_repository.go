package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client: client,
	}
}

func (r *firestoreFavoriteRepository) Add(ctx context.Context, uid, rentalID string) (*entity.Favorite, bool, error) {
	favID := entity.FavoriteID(uid, rentalID)
	favorite := entity.Favorite{
		ID:        favID,
		UID:       uid,
		RentalID:  rentalID,
		CreatedAt: time.Now(),
	}

	// Create fails with AlreadyExists when the pair is present, which makes
	// insert-if-absent a single atomic write instead of a check-then-write.
	_, err := r.client.Collection("favorites").Doc(favID).Create(ctx, favorite)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			existing, getErr := r.Get(ctx, uid, rentalID)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, errors.Internal("Failed to add favorite", err)
	}

	return &favorite, true, nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, favDocID string) error {
	_, err := r.client.Collection("favorites").Doc(favDocID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Get(ctx context.Context, uid, rentalID string) (*entity.Favorite, error) {
	doc, err := r.client.Collection("favorites").Doc(entity.FavoriteID(uid, rentalID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Favorite", err)
		}
		return nil, errors.Internal("Failed to get favorite", err)
	}

	var favorite entity.Favorite
	if err := doc.DataTo(&favorite); err != nil {
		return nil, errors.Internal("Failed to parse favorite data", err)
	}
	favorite.ID = doc.Ref.ID

	return &favorite, nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, uid string) ([]*entity.Favorite, error) {
	query := r.client.Collection("favorites").
		Where("uid", "==", uid).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	favorites := []*entity.Favorite{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate favorites", err)
		}

		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			return nil, errors.Internal("Failed to parse favorite data", err)
		}
		favorite.ID = doc.Ref.ID

		favorites = append(favorites, &favorite)
	}

	return favorites, nil
}

func (r *firestoreFavoriteRepository) CountByRental(ctx context.Context, rentalID string) (int64, error) {
	docs, err := r.client.Collection("favorites").Where("rentalId", "==", rentalID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count favorites", err)
	}

	return int64(len(docs)), nil
}
