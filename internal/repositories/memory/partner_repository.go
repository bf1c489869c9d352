package memory

import (
	"context"
	"sync"
	"time"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.PartnerRepository = (*PartnerRepository)(nil)

// PartnerRepository is the in-memory PartnerRepository
type PartnerRepository struct {
	mu       sync.RWMutex
	partners []*models.Partner
}

// NewPartnerRepository creates an empty in-memory PartnerRepository
func NewPartnerRepository() *PartnerRepository {
	return &PartnerRepository{}
}

func (r *PartnerRepository) slugTaken(slug string, exclude primitive.ObjectID) bool {
	for _, partner := range r.partners {
		if partner.Slug == slug && partner.ID != exclude {
			return true
		}
	}
	return false
}

// Create inserts a new partner
func (r *PartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slugTaken(partner.Slug, primitive.NilObjectID) {
		return apperrors.ErrConflict
	}
	partner.ID = primitive.NewObjectID()
	partner.CreatedAt = time.Now()
	partner.UpdatedAt = time.Now()
	copied := *partner
	r.partners = append(r.partners, &copied)
	return nil
}

// FindByID finds a partner by ID
func (r *PartnerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, partner := range r.partners {
		if partner.ID == id {
			copied := *partner
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindBySlug finds a partner by slug
func (r *PartnerRepository) FindBySlug(ctx context.Context, slug string) (*models.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, partner := range r.partners {
		if partner.Slug == slug {
			copied := *partner
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// SlugExists reports whether another partner already uses the slug
func (r *PartnerRepository) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.slugTaken(slug, exclude), nil
}

// Find returns a page of partners matching the query plus the total count
func (r *PartnerRepository) Find(ctx context.Context, query models.PartnerQuery) ([]*models.Partner, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*models.Partner, 0)
	for i := len(r.partners) - 1; i >= 0; i-- {
		partner := r.partners[i]
		if query.Search != "" &&
			!containsFold(partner.Name, query.Search) &&
			!containsFold(partner.Description, query.Search) {
			continue
		}
		if query.Status != "" && query.Status != "all" && partner.Status != query.Status {
			continue
		}
		matched = append(matched, partner)
	}

	total := int64(len(matched))
	start, end := paginate(query.Page, query.Limit, len(matched))
	page := make([]*models.Partner, 0, end-start)
	for _, partner := range matched[start:end] {
		copied := *partner
		page = append(page, &copied)
	}
	return page, total, nil
}

// Update updates an existing partner
func (r *PartnerRepository) Update(ctx context.Context, partner *models.Partner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slugTaken(partner.Slug, partner.ID) {
		return apperrors.ErrConflict
	}
	for i, existing := range r.partners {
		if existing.ID == partner.ID {
			partner.UpdatedAt = time.Now()
			copied := *partner
			r.partners[i] = &copied
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Delete removes a partner by ID
func (r *PartnerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, partner := range r.partners {
		if partner.ID == id {
			r.partners = append(r.partners[:i], r.partners[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Count returns the total number of partners
func (r *PartnerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.partners)), nil
}

// CountByStatus returns the number of partners in the given status
func (r *PartnerRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, partner := range r.partners {
		if partner.Status == status {
			count++
		}
	}
	return count, nil
}
