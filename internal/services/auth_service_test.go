package services

import (
	"context"
	"testing"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories/memory"
	"github.com/amzproperties/amz-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600
	return cfg
}

func seedAdmin(t *testing.T, repo *memory.AdminRepository, active bool) *models.Admin {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	admin := &models.Admin{
		Name:     "Admin User",
		Email:    "admin@amzproperties.com",
		Password: hash,
		Role:     "admin",
		IsActive: active,
	}
	require.NoError(t, repo.Create(context.Background(), admin))
	return admin
}

func TestLoginSuccess(t *testing.T) {
	repo := memory.NewAdminRepository()
	cfg := authTestConfig()
	seedAdmin(t, repo, true)
	svc := NewAuthService(repo, cfg)

	token, admin, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@amzproperties.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, admin.LastLogin.IsZero())

	claims, err := utils.ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.Hex(), claims["sub"])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := memory.NewAdminRepository()
	seedAdmin(t, repo, true)
	svc := NewAuthService(repo, authTestConfig())

	_, _, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@amzproperties.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := memory.NewAdminRepository()
	svc := NewAuthService(repo, authTestConfig())

	_, _, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@amzproperties.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := memory.NewAdminRepository()
	seedAdmin(t, repo, false)
	svc := NewAuthService(repo, authTestConfig())

	_, _, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@amzproperties.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	repo := memory.NewAdminRepository()
	admin := seedAdmin(t, repo, true)
	svc := NewAuthService(repo, authTestConfig())
	ctx := context.Background()

	err := svc.ChangePassword(ctx, admin.ID, models.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword123",
	})
	assert.True(t, apperrors.IsValidation(err))

	// Old password still works
	_, _, err = svc.Login(ctx, models.LoginRequest{
		Email:    "admin@amzproperties.com",
		Password: "password123",
	})
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	repo := memory.NewAdminRepository()
	admin := seedAdmin(t, repo, true)
	svc := NewAuthService(repo, authTestConfig())
	ctx := context.Background()

	err := svc.ChangePassword(ctx, admin.ID, models.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "brand-new-password",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, models.LoginRequest{
		Email:    "admin@amzproperties.com",
		Password: "brand-new-password",
	})
	assert.NoError(t, err)

	_, _, err = svc.Login(ctx, models.LoginRequest{
		Email:    "admin@amzproperties.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestChangePasswordTooShort(t *testing.T) {
	repo := memory.NewAdminRepository()
	admin := seedAdmin(t, repo, true)
	svc := NewAuthService(repo, authTestConfig())

	err := svc.ChangePassword(context.Background(), admin.ID, models.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "short",
	})
	assert.True(t, apperrors.IsValidation(err))
}
