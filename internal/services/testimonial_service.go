package services

import (
	"context"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestimonialService handles client testimonials
type TestimonialService struct {
	testimonialRepo repositories.TestimonialRepository
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(testimonialRepo repositories.TestimonialRepository) *TestimonialService {
	return &TestimonialService{
		testimonialRepo: testimonialRepo,
	}
}

func validateTestimonial(testimonial *models.Testimonial) error {
	if testimonial.Name == "" {
		return apperrors.NewValidation("name is required")
	}
	if testimonial.Content == "" {
		return apperrors.NewValidation("content is required")
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return apperrors.NewValidation("rating must be between 1 and 5")
	}
	if testimonial.Status != "" && !models.IsValidTestimonialStatus(testimonial.Status) {
		return apperrors.NewValidation("invalid testimonial status")
	}
	return nil
}

// CreateTestimonial validates and persists a new testimonial
func (s *TestimonialService) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	if testimonial.Rating == 0 {
		testimonial.Rating = 5
	}
	if err := validateTestimonial(testimonial); err != nil {
		return err
	}
	if testimonial.Status == "" {
		testimonial.Status = models.TestimonialStatusActive
	}
	return s.testimonialRepo.Create(ctx, testimonial)
}

// GetTestimonialByID retrieves a testimonial by ID
func (s *TestimonialService) GetTestimonialByID(ctx context.Context, id primitive.ObjectID) (*models.Testimonial, error) {
	return s.testimonialRepo.FindByID(ctx, id)
}

// GetTestimonials retrieves a page of testimonials with pagination metadata
func (s *TestimonialService) GetTestimonials(ctx context.Context, query models.TestimonialQuery) ([]*models.Testimonial, models.Pagination, error) {
	query.Page, query.Limit = models.NormalizePage(query.Page, query.Limit)
	testimonials, total, err := s.testimonialRepo.Find(ctx, query)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return testimonials, models.NewPagination(query.Page, query.Limit, total), nil
}

// GetActiveTestimonials retrieves a page of active testimonials for the public site
func (s *TestimonialService) GetActiveTestimonials(ctx context.Context, query models.TestimonialQuery) ([]*models.Testimonial, models.Pagination, error) {
	query.Status = models.TestimonialStatusActive
	return s.GetTestimonials(ctx, query)
}

// UpdateTestimonial merges the provided fields into the existing testimonial
// and persists the result. Omitted fields keep their stored values.
func (s *TestimonialService) UpdateTestimonial(ctx context.Context, id primitive.ObjectID, upd *models.TestimonialUpdate) (*models.Testimonial, error) {
	existing, err := s.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	testimonial := *existing
	if upd.Name != nil {
		testimonial.Name = *upd.Name
	}
	if upd.Position != nil {
		testimonial.Position = *upd.Position
	}
	if upd.Company != nil {
		testimonial.Company = *upd.Company
	}
	if upd.Content != nil {
		testimonial.Content = *upd.Content
	}
	if upd.Rating != nil {
		testimonial.Rating = *upd.Rating
	}
	if upd.Image != nil {
		testimonial.Image = *upd.Image
	}
	if upd.Status != nil {
		testimonial.Status = *upd.Status
	}
	if upd.Featured != nil {
		testimonial.Featured = *upd.Featured
	}
	if upd.PropertyID != nil {
		testimonial.PropertyID = *upd.PropertyID
	}
	if upd.Location != nil {
		testimonial.Location = *upd.Location
	}
	if upd.PurchaseDate != nil {
		testimonial.PurchaseDate = upd.PurchaseDate
	}
	if err = validateTestimonial(&testimonial); err != nil {
		return nil, err
	}

	if err = s.testimonialRepo.Update(ctx, &testimonial); err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// DeleteTestimonial removes a testimonial
func (s *TestimonialService) DeleteTestimonial(ctx context.Context, id primitive.ObjectID) error {
	return s.testimonialRepo.Delete(ctx, id)
}
