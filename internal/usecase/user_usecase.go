package usecase

import (
	"context"

	"rentmate/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type PublicProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Bio    string `json:"bio,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

func (uc *UserUseCase) GetPublicProfile(ctx context.Context, role, id string) (*PublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, role, id)
	if err != nil {
		return nil, err
	}

	return &PublicProfile{
		ID:     user.ID,
		Name:   user.Name,
		Role:   role,
		Bio:    user.Bio,
		Avatar: user.Avatar,
	}, nil
}

