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

var _ repositories.TestimonialRepository = (*TestimonialRepository)(nil)

// TestimonialRepository is the in-memory TestimonialRepository
type TestimonialRepository struct {
	mu           sync.RWMutex
	testimonials []*models.Testimonial
}

// NewTestimonialRepository creates an empty in-memory TestimonialRepository
func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{}
}

// Create inserts a new testimonial
func (r *TestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	testimonial.ID = primitive.NewObjectID()
	testimonial.CreatedAt = time.Now()
	testimonial.UpdatedAt = time.Now()
	copied := *testimonial
	r.testimonials = append(r.testimonials, &copied)
	return nil
}

// FindByID finds a testimonial by ID
func (r *TestimonialRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, testimonial := range r.testimonials {
		if testimonial.ID == id {
			copied := *testimonial
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Find returns a page of testimonials matching the query plus the total count
func (r *TestimonialRepository) Find(ctx context.Context, query models.TestimonialQuery) ([]*models.Testimonial, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*models.Testimonial, 0)
	for i := len(r.testimonials) - 1; i >= 0; i-- {
		testimonial := r.testimonials[i]
		if query.Search != "" &&
			!containsFold(testimonial.Name, query.Search) &&
			!containsFold(testimonial.Content, query.Search) {
			continue
		}
		if query.Status != "" && query.Status != "all" && testimonial.Status != query.Status {
			continue
		}
		matched = append(matched, testimonial)
	}

	total := int64(len(matched))
	start, end := paginate(query.Page, query.Limit, len(matched))
	page := make([]*models.Testimonial, 0, end-start)
	for _, testimonial := range matched[start:end] {
		copied := *testimonial
		page = append(page, &copied)
	}
	return page, total, nil
}

// Update updates an existing testimonial
func (r *TestimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.testimonials {
		if existing.ID == testimonial.ID {
			testimonial.UpdatedAt = time.Now()
			copied := *testimonial
			r.testimonials[i] = &copied
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Delete removes a testimonial by ID
func (r *TestimonialRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, testimonial := range r.testimonials {
		if testimonial.ID == id {
			r.testimonials = append(r.testimonials[:i], r.testimonials[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Count returns the total number of testimonials
func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.testimonials)), nil
}

// CountByStatus returns the number of testimonials in the given status
func (r *TestimonialRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, testimonial := range r.testimonials {
		if testimonial.Status == status {
			count++
		}
	}
	return count, nil
}
