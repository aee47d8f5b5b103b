package repository

import (
	"context"

	"rentmate/internal/domain/entity"
)

// UserRepository spans the two role-partitioned user collections; every
// method addresses one partition through role.
type UserRepository interface {
	Create(ctx context.Context, role string, user *entity.User) error
	GetByID(ctx context.Context, role, id string) (*entity.User, error)
	GetByPhone(ctx context.Context, role, phone string) (*entity.User, error)
	UpdateProfile(ctx context.Context, role, id string, fields map[string]interface{}) error
	UpdatePassword(ctx context.Context, role, id, newPassword string) error
}
