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

type firestoreRentalRepository struct {
	client *firestore.Client
}

func NewFirestoreRentalRepository(client *firestore.Client) repository.RentalRepository {
	return &firestoreRentalRepository{
		client: client,
	}
}

func (r *firestoreRentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	if rental.ID == "" {
		doc := r.client.Collection("houses").NewDoc()
		rental.ID = doc.ID
	}

	now := time.Now()
	rental.CreatedAt = now
	rental.UpdatedAt = now

	_, err := r.client.Collection("houses").Doc(rental.ID).Set(ctx, rental)
	if err != nil {
		return errors.Internal("Failed to create rental", err)
	}

	return nil
}

func (r *firestoreRentalRepository) GetByID(ctx context.Context, id string) (*entity.Rental, error) {
	doc, err := r.client.Collection("houses").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Rental", err)
		}
		return nil, errors.Internal("Failed to get rental", err)
	}

	var rental entity.Rental
	if err := doc.DataTo(&rental); err != nil {
		return nil, errors.Internal("Failed to parse rental data", err)
	}
	rental.ID = doc.Ref.ID

	return &rental, nil
}

func (r *firestoreRentalRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updatedAt"] = time.Now()

	_, err := r.client.Collection("houses").Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update rental", err)
	}

	return nil
}

func (r *firestoreRentalRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("houses").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete rental", err)
	}

	return nil
}

func (r *firestoreRentalRepository) ListByLandlord(ctx context.Context, landlordID string) ([]*entity.Rental, error) {
	query := r.client.Collection("houses").
		Where("landlordId", "==", landlordID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreRentalRepository) ListPublished(ctx context.Context) ([]*entity.Rental, error) {
	query := r.client.Collection("houses").
		Where("isPublished", "==", true).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreRentalRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Rental, error) {
	iter := query.Documents(ctx)
	rentals := []*entity.Rental{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate rentals", err)
		}

		var rental entity.Rental
		if err := doc.DataTo(&rental); err != nil {
			return nil, errors.Internal("Failed to parse rental data", err)
		}
		rental.ID = doc.Ref.ID

		rentals = append(rentals, &rental)
	}

	return rentals, nil
}

func (r *firestoreRentalRepository) ListAmenities(ctx context.Context) ([]string, error) {
	docs, err := r.client.Collection("amenities").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to get amenities", err)
	}

	names := []string{}
	for _, doc := range docs {
		var amenity entity.Amenity
		if err := doc.DataTo(&amenity); err != nil {
			continue
		}
		names = append(names, amenity.Name)
	}

	return names, nil
}
