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

var _ repositories.PropertyRepository = (*PropertyRepository)(nil)

// PropertyRepository is the in-memory PropertyRepository
type PropertyRepository struct {
	mu         sync.RWMutex
	properties []*models.Property
}

// NewPropertyRepository creates an empty in-memory PropertyRepository
func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

// Create inserts a new property
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property.ID = primitive.NewObjectID()
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()
	copied := *property
	r.properties = append(r.properties, &copied)
	return nil
}

// FindByID finds a property by ID
func (r *PropertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, property := range r.properties {
		if property.ID == id {
			copied := *property
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func matchProperty(property *models.Property, query models.PropertyQuery) bool {
	if query.Search != "" &&
		!containsFold(property.Title, query.Search) &&
		!containsFold(property.Description, query.Search) &&
		!containsFold(property.Location, query.Search) {
		return false
	}
	if query.Type != "" && query.Type != "all" && property.Type != query.Type {
		return false
	}
	if query.Status != "" && query.Status != "all" && property.Status != query.Status {
		return false
	}
	if query.Location != "" && !containsFold(property.Location, query.Location) {
		return false
	}
	if query.MinPrice > 0 && property.Price < query.MinPrice {
		return false
	}
	if query.MaxPrice > 0 && property.Price > query.MaxPrice {
		return false
	}
	if query.Bedrooms > 0 && property.Bedrooms != query.Bedrooms {
		return false
	}
	if query.Featured != nil && property.Featured != *query.Featured {
		return false
	}
	return true
}

// Find returns a page of properties plus the total count
func (r *PropertyRepository) Find(ctx context.Context, query models.PropertyQuery) ([]*models.Property, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*models.Property, 0)
	for i := len(r.properties) - 1; i >= 0; i-- {
		if matchProperty(r.properties[i], query) {
			matched = append(matched, r.properties[i])
		}
	}

	total := int64(len(matched))
	start, end := paginate(query.Page, query.Limit, len(matched))
	page := make([]*models.Property, 0, end-start)
	for _, property := range matched[start:end] {
		copied := *property
		page = append(page, &copied)
	}
	return page, total, nil
}

// FindFeatured returns the newest featured properties
func (r *PropertyRepository) FindFeatured(ctx context.Context, limit int) ([]*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	featured := make([]*models.Property, 0)
	for i := len(r.properties) - 1; i >= 0 && len(featured) < limit; i-- {
		if r.properties[i].Featured {
			copied := *r.properties[i]
			featured = append(featured, &copied)
		}
	}
	return featured, nil
}

// Update updates an existing property
func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.properties {
		if existing.ID == property.ID {
			property.UpdatedAt = time.Now()
			copied := *property
			r.properties[i] = &copied
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Delete removes a property by ID
func (r *PropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, property := range r.properties {
		if property.ID == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Count returns the total number of properties
func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.properties)), nil
}

// CountByStatus returns the number of properties with the given status
func (r *PropertyRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, property := range r.properties {
		if property.Status == status {
			count++
		}
	}
	return count, nil
}

// CountByType returns the number of properties of the given type
func (r *PropertyRepository) CountByType(ctx context.Context, propertyType string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, property := range r.properties {
		if property.Type == propertyType {
			count++
		}
	}
	return count, nil
}

// FindRecent returns the newest properties
func (r *PropertyRepository) FindRecent(ctx context.Context, limit int) ([]*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recent := make([]*models.Property, 0, limit)
	for i := len(r.properties) - 1; i >= 0 && len(recent) < limit; i-- {
		copied := *r.properties[i]
		recent = append(recent, &copied)
	}
	return recent, nil
}
