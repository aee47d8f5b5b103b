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

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

// collectionForRole keeps the original per-role partitioning: landlords and
// tenants live in parallel collections with no shared identity table.
func collectionForRole(role string) string {
	if role == entity.RoleLandlord {
		return "landlords"
	}
	return "tenants"
}

func (r *firestoreUserRepository) Create(ctx context.Context, role string, user *entity.User) error {
	if user.ID == "" {
		doc := r.client.Collection(collectionForRole(role)).NewDoc()
		user.ID = doc.ID
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.client.Collection(collectionForRole(role)).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, role, id string) (*entity.User, error) {
	doc, err := r.client.Collection(collectionForRole(role)).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *firestoreUserRepository) GetByPhone(ctx context.Context, role, phone string) (*entity.User, error) {
	query := r.client.Collection(collectionForRole(role)).Where("phone", "==", phone).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("User", nil)
		}
		return nil, errors.Internal("Failed to query user by phone", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	user.ID = doc.Ref.ID

	return &user, nil
}

func (r *firestoreUserRepository) UpdateProfile(ctx context.Context, role, id string, fields map[string]interface{}) error {
	fields["updatedAt"] = time.Now()

	_, err := r.client.Collection(collectionForRole(role)).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update profile", err)
	}

	return nil
}

func (r *firestoreUserRepository) UpdatePassword(ctx context.Context, role, id, newPassword string) error {
	_, err := r.client.Collection(collectionForRole(role)).Doc(id).Update(ctx, []firestore.Update{
		{Path: "password", Value: newPassword},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to update password", err)
	}

	return nil
}
