package services

import (
	"context"
	"testing"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestimonialService() *TestimonialService {
	return NewTestimonialService(memory.NewTestimonialRepository())
}

func TestCreateTestimonialDefaults(t *testing.T) {
	svc := newTestimonialService()
	testimonial := &models.Testimonial{Name: "Sarah", Content: "Great service"}
	require.NoError(t, svc.CreateTestimonial(context.Background(), testimonial))
	assert.Equal(t, 5, testimonial.Rating)
	assert.Equal(t, models.TestimonialStatusActive, testimonial.Status)
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	svc := newTestimonialService()
	ctx := context.Background()

	err := svc.CreateTestimonial(ctx, &models.Testimonial{Name: "Sarah", Content: "x", Rating: 6})
	assert.True(t, apperrors.IsValidation(err))

	err = svc.CreateTestimonial(ctx, &models.Testimonial{Name: "Sarah", Content: "x", Rating: -1})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateTestimonialPartialMerge(t *testing.T) {
	svc := newTestimonialService()
	ctx := context.Background()

	testimonial := &models.Testimonial{
		Name:     "Sarah",
		Position: "CEO",
		Company:  "Horizon Ventures",
		Content:  "Great service",
		Rating:   4,
	}
	require.NoError(t, svc.CreateTestimonial(ctx, testimonial))

	updated, err := svc.UpdateTestimonial(ctx, testimonial.ID, &models.TestimonialUpdate{
		Content: strPtr("Outstanding service from start to finish"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Outstanding service from start to finish", updated.Content)
	assert.Equal(t, "CEO", updated.Position)
	assert.Equal(t, "Horizon Ventures", updated.Company)
	assert.Equal(t, 4, updated.Rating)
}

func TestUpdateTestimonialRatingBounds(t *testing.T) {
	svc := newTestimonialService()
	ctx := context.Background()

	testimonial := &models.Testimonial{Name: "Sarah", Content: "Great service", Rating: 4}
	require.NoError(t, svc.CreateTestimonial(ctx, testimonial))

	_, err := svc.UpdateTestimonial(ctx, testimonial.ID, &models.TestimonialUpdate{Rating: intPtr(6)})
	assert.True(t, apperrors.IsValidation(err))
}

func TestPublicTestimonialsActiveOnly(t *testing.T) {
	svc := newTestimonialService()
	ctx := context.Background()

	require.NoError(t, svc.CreateTestimonial(ctx, &models.Testimonial{Name: "Visible", Content: "x", Rating: 5}))
	require.NoError(t, svc.CreateTestimonial(ctx, &models.Testimonial{
		Name: "Hidden", Content: "x", Rating: 4, Status: models.TestimonialStatusInactive,
	}))

	testimonials, pagination, err := svc.GetActiveTestimonials(ctx, models.TestimonialQuery{})
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, "Visible", testimonials[0].Name)
	assert.EqualValues(t, 1, pagination.TotalItems)
}
