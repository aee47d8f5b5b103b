package usecase

import (
	"context"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
	"rentmate/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
}

func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
	}
}

type RegisterInput struct {
	Name     string
	Phone    string
	Address  string
	Gender   string
	Role     string
	Password string
}

type LoginResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if !entity.ValidRole(input.Role) {
		return nil, errors.BadRequest("Role must be landlord or tenant", nil)
	}

	existing, err := uc.userRepo.GetByPhone(ctx, input.Role, input.Phone)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Phone number already registered", nil)
	}

	// Passwords are stored as given. The mobile clients predate any hashing
	// scheme and expect to keep logging in against the stored value.
	user := &entity.User{
		Name:     input.Name,
		Phone:    input.Phone,
		Address:  input.Address,
		Gender:   input.Gender,
		Role:     input.Role,
		Password: input.Password,
	}

	if err := uc.userRepo.Create(ctx, input.Role, user); err != nil {
		return nil, err
	}

	logger.Info("Registered %s %s", input.Role, user.ID)
	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, phone, password, role string) (*LoginResult, error) {
	if !entity.ValidRole(role) {
		return nil, errors.BadRequest("Role must be landlord or tenant", nil)
	}

	user, err := uc.userRepo.GetByPhone(ctx, role, phone)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("Unknown account or wrong role", nil)
		}
		return nil, err
	}

	if user.Password != password {
		return nil, errors.Unauthorized("Wrong password", nil)
	}

	return &LoginResult{
		ID:    user.ID,
		Name:  user.Name,
		Role:  role,
		Phone: user.Phone,
	}, nil
}

type UpdateProfileInput struct {
	Name   string
	Bio    string
	Avatar string
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID, role string, input UpdateProfileInput) error {
	if !entity.ValidRole(role) {
		return errors.BadRequest("Role must be landlord or tenant", nil)
	}
	if input.Name == "" {
		return errors.BadRequest("Name is required", nil)
	}

	fields := map[string]interface{}{
		"name":   input.Name,
		"bio":    input.Bio,
		"avatar": input.Avatar,
	}

	return uc.userRepo.UpdateProfile(ctx, role, userID, fields)
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID, role, oldPassword, newPassword string) error {
	if !entity.ValidRole(role) {
		return errors.BadRequest("Role must be landlord or tenant", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, role, userID)
	if err != nil {
		return err
	}

	if user.Password != oldPassword {
		return errors.BadRequest("Old password is incorrect", nil)
	}

	return uc.userRepo.UpdatePassword(ctx, role, userID, newPassword)
}
