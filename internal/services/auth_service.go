// Package services holds the business logic between the HTTP handlers and
// the repositories: validation, slug derivation, status workflows and the
// notification side effects.
package services

import (
	"context"
	"time"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"github.com/amzproperties/amz-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo repositories.AdminRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repositories.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Login verifies credentials and issues a JWT. Unknown emails, bad passwords
// and deactivated accounts all fail with the same ErrUnauthorized so the
// response never reveals which check tripped.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.Admin, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, apperrors.ErrUnauthorized
	}
	if !admin.IsActive {
		return "", nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPassword(admin.Password, req.Password) {
		return "", nil, apperrors.ErrUnauthorized
	}

	admin.LastLogin = time.Now()
	if err = s.adminRepo.Update(ctx, admin); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, admin.Role, s.cfg)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// GetAdminByID retrieves an admin by ID
func (s *AuthService) GetAdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	return s.adminRepo.FindByID(ctx, id)
}

// ChangePassword verifies the current password before storing a new hash.
// A wrong current password is a bad request, not a logout trigger.
func (s *AuthService) ChangePassword(ctx context.Context, adminID primitive.ObjectID, req models.ChangePasswordRequest) error {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(admin.Password, req.CurrentPassword) {
		return apperrors.NewValidation("current password is incorrect")
	}
	if len(req.NewPassword) < 8 {
		return apperrors.NewValidation("new password must be at least 8 characters")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	admin.Password = hashed
	return s.adminRepo.Update(ctx, admin)
}
