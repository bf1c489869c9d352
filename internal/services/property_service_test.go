package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPropertyService() *PropertyService {
	return NewPropertyService(memory.NewPropertyRepository())
}

func strPtr(s string) *string       { return &s }
func intPtr(n int) *int             { return &n }
func float64Ptr(f float64) *float64 { return &f }

func seedProperties(t *testing.T, svc *PropertyService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		property := &models.Property{
			Title:    fmt.Sprintf("Listing %d", i+1),
			Location: "Dubai Marina",
			Price:    float64(1000000 * (i + 1)),
			Type:     models.PropertyTypeApartment,
		}
		require.NoError(t, svc.CreateProperty(context.Background(), property))
	}
}

func TestCreatePropertyDefaults(t *testing.T) {
	svc := newPropertyService()
	property := &models.Property{Title: "Marina Vista", Location: "Dubai Marina", Price: 1}
	require.NoError(t, svc.CreateProperty(context.Background(), property))
	assert.Equal(t, models.PropertyTypeApartment, property.Type)
	assert.Equal(t, models.PropertyStatusAvailable, property.Status)
	assert.NotNil(t, property.Features)
}

func TestCreatePropertyValidation(t *testing.T) {
	svc := newPropertyService()
	ctx := context.Background()

	err := svc.CreateProperty(ctx, &models.Property{Location: "Dubai Marina"})
	assert.True(t, apperrors.IsValidation(err))

	err = svc.CreateProperty(ctx, &models.Property{Title: "x", Location: "y", Type: "castle"})
	assert.True(t, apperrors.IsValidation(err))

	err = svc.CreateProperty(ctx, &models.Property{Title: "x", Location: "y", Price: -5})
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetPropertiesPaginationMath(t *testing.T) {
	svc := newPropertyService()
	seedProperties(t, svc, 25)

	properties, pagination, err := svc.GetProperties(context.Background(), models.PropertyQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, properties, 10)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.EqualValues(t, 25, pagination.TotalItems)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)

	last, pagination, err := svc.GetProperties(context.Background(), models.PropertyQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, last, 5)
	assert.False(t, pagination.HasNext)
}

func TestGetPropertiesPastEndIsEmpty(t *testing.T) {
	svc := newPropertyService()
	seedProperties(t, svc, 5)

	properties, pagination, err := svc.GetProperties(context.Background(), models.PropertyQuery{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, properties)
	assert.EqualValues(t, 5, pagination.TotalItems)
}

func TestGetPropertiesPriceFilter(t *testing.T) {
	svc := newPropertyService()
	seedProperties(t, svc, 5) // prices 1M..5M

	properties, _, err := svc.GetProperties(context.Background(), models.PropertyQuery{
		Page: 1, Limit: 10, MinPrice: 2000000, MaxPrice: 4000000,
	})
	require.NoError(t, err)
	assert.Len(t, properties, 3)
	for _, property := range properties {
		assert.GreaterOrEqual(t, property.Price, float64(2000000))
		assert.LessOrEqual(t, property.Price, float64(4000000))
	}
}

func TestUpdatePropertyPartialMerge(t *testing.T) {
	svc := newPropertyService()
	ctx := context.Background()

	property := &models.Property{
		Title:       "Marina Vista",
		Description: "Waterfront living",
		Location:    "Dubai Marina",
		Price:       2500000,
		Bedrooms:    3,
		Bathrooms:   2,
		Area:        1400,
		Features:    []string{"Balcony", "Gym"},
	}
	require.NoError(t, svc.CreateProperty(ctx, property))

	updated, err := svc.UpdateProperty(ctx, property.ID, &models.PropertyUpdate{
		Price:  float64Ptr(2750000),
		Status: strPtr(models.PropertyStatusReserved),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 2750000, updated.Price)
	assert.Equal(t, models.PropertyStatusReserved, updated.Status)
	assert.Equal(t, "Waterfront living", updated.Description)
	assert.Equal(t, 3, updated.Bedrooms)
	assert.EqualValues(t, 1400, updated.Area)
	assert.Equal(t, []string{"Balcony", "Gym"}, updated.Features)
}

func TestUpdatePropertyKeepsCreatedAt(t *testing.T) {
	svc := newPropertyService()
	ctx := context.Background()

	property := &models.Property{Title: "Marina Vista", Location: "Dubai Marina", Price: 1}
	require.NoError(t, svc.CreateProperty(ctx, property))

	updated, err := svc.UpdateProperty(ctx, property.ID, &models.PropertyUpdate{
		Title: strPtr("Marina Vista Penthouse"),
	})
	require.NoError(t, err)
	assert.Equal(t, property.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Marina Vista Penthouse", updated.Title)
}

func TestDeletePropertyNotFound(t *testing.T) {
	svc := newPropertyService()
	err := svc.DeleteProperty(context.Background(), [12]byte{1})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
