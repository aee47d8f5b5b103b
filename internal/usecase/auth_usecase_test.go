package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentmate/internal/domain/entity"
	"rentmate/pkg/errors"
)

func registerTenant(t *testing.T, uc *AuthUseCase) *entity.User {
	t.Helper()

	user, err := uc.Register(context.Background(), RegisterInput{
		Name:     "李小華",
		Phone:    "0912345678",
		Role:     entity.RoleTenant,
		Password: "secret",
	})
	require.NoError(t, err)

	return user
}

func TestRegisterRejectsDuplicatePhoneWithinRole(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo())

	registerTenant(t, uc)

	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "別人",
		Phone:    "0912345678",
		Role:     entity.RoleTenant,
		Password: "other",
	})
	assert.Error(t, err)
}

func TestRegisterSamePhoneDifferentRoleAllowed(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo())

	registerTenant(t, uc)

	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "王大明",
		Phone:    "0912345678",
		Role:     entity.RoleLandlord,
		Password: "secret",
	})
	assert.NoError(t, err)
}

func TestLoginChecksRolePartition(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo())
	ctx := context.Background()

	registerTenant(t, uc)

	result, err := uc.Login(ctx, "0912345678", "secret", entity.RoleTenant)
	require.NoError(t, err)
	assert.Equal(t, "李小華", result.Name)

	_, err = uc.Login(ctx, "0912345678", "secret", entity.RoleLandlord)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginWrongPassword(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo())

	registerTenant(t, uc)

	_, err := uc.Login(context.Background(), "0912345678", "wrong", entity.RoleTenant)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestChangePasswordVerifiesOldOne(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo())
	ctx := context.Background()

	user := registerTenant(t, uc)

	err := uc.ChangePassword(ctx, user.ID, entity.RoleTenant, "wrong", "next")
	assert.Error(t, err)

	require.NoError(t, uc.ChangePassword(ctx, user.ID, entity.RoleTenant, "secret", "next"))

	_, err = uc.Login(ctx, "0912345678", "next", entity.RoleTenant)
	assert.NoError(t, err)
}

func TestUpdateProfileRequiresName(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo())

	user := registerTenant(t, uc)

	err := uc.UpdateProfile(context.Background(), user.ID, entity.RoleTenant, UpdateProfileInput{
		Bio: "bio only",
	})
	assert.Error(t, err)
}
