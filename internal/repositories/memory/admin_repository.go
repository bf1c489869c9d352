package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.AdminRepository = (*AdminRepository)(nil)

// AdminRepository is the in-memory AdminRepository
type AdminRepository struct {
	mu     sync.RWMutex
	admins []*models.Admin
}

// NewAdminRepository creates an empty in-memory AdminRepository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

// Create inserts a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(admin.Email)
	for _, existing := range r.admins {
		if existing.Email == email {
			return apperrors.ErrConflict
		}
	}
	admin.ID = primitive.NewObjectID()
	admin.Email = email
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = time.Now()
	copied := *admin
	r.admins = append(r.admins, &copied)
	return nil
}

// FindByEmail finds an admin by email (case-insensitive)
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.ToLower(email)
	for _, admin := range r.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindByID finds an admin by ID
func (r *AdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, admin := range r.admins {
		if admin.ID == id {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Update updates an existing admin
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.admins {
		if existing.ID == admin.ID {
			admin.UpdatedAt = time.Now()
			copied := *admin
			r.admins[i] = &copied
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Count returns the number of admin accounts
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.admins)), nil
}
