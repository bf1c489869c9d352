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

func newPartnerService() *PartnerService {
	return NewPartnerService(memory.NewPartnerRepository())
}

func TestCreatePartnerSlugAndDefaults(t *testing.T) {
	svc := newPartnerService()
	partner := &models.Partner{Name: "Emaar Properties", Rating: 4.5}
	require.NoError(t, svc.CreatePartner(context.Background(), partner))
	assert.Equal(t, "emaar-properties", partner.Slug)
	assert.Equal(t, models.PartnerStatusActive, partner.Status)
}

func TestCreatePartnerSlugConflict(t *testing.T) {
	svc := newPartnerService()
	ctx := context.Background()
	require.NoError(t, svc.CreatePartner(ctx, &models.Partner{Name: "Emaar Properties"}))
	err := svc.CreatePartner(ctx, &models.Partner{Name: "Emaar Properties"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreatePartnerRatingBounds(t *testing.T) {
	svc := newPartnerService()
	err := svc.CreatePartner(context.Background(), &models.Partner{Name: "Bad Rating", Rating: 7})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdatePartnerSlugOnlyChangesWithName(t *testing.T) {
	svc := newPartnerService()
	ctx := context.Background()

	partner := &models.Partner{Name: "Emaar Properties"}
	require.NoError(t, svc.CreatePartner(ctx, partner))

	updated, err := svc.UpdatePartner(ctx, partner.ID, &models.PartnerUpdate{Description: strPtr("Master developer")})
	require.NoError(t, err)
	assert.Equal(t, "emaar-properties", updated.Slug)

	updated, err = svc.UpdatePartner(ctx, partner.ID, &models.PartnerUpdate{Name: strPtr("Emaar")})
	require.NoError(t, err)
	assert.Equal(t, "emaar", updated.Slug)
	assert.Equal(t, "Master developer", updated.Description)
}

func TestUpdatePartnerPartialMerge(t *testing.T) {
	svc := newPartnerService()
	ctx := context.Background()

	partner := &models.Partner{
		Name:        "Emaar Properties",
		Description: "Master developer",
		Rating:      4.5,
		Specialties: []string{"Master Communities"},
		Contact:     models.PartnerContact{Email: "info@emaar.com", Phone: "+971-4-000-0000"},
	}
	require.NoError(t, svc.CreatePartner(ctx, partner))

	updated, err := svc.UpdatePartner(ctx, partner.ID, &models.PartnerUpdate{Rating: float64Ptr(4.8)})
	require.NoError(t, err)

	assert.EqualValues(t, 4.8, updated.Rating)
	assert.Equal(t, "Master developer", updated.Description)
	assert.Equal(t, []string{"Master Communities"}, updated.Specialties)
	assert.Equal(t, "info@emaar.com", updated.Contact.Email)
	assert.Equal(t, "+971-4-000-0000", updated.Contact.Phone)
}

func TestPublicPartnersActiveOnly(t *testing.T) {
	svc := newPartnerService()
	ctx := context.Background()

	require.NoError(t, svc.CreatePartner(ctx, &models.Partner{Name: "Active Developer"}))
	require.NoError(t, svc.CreatePartner(ctx, &models.Partner{Name: "Dormant Developer", Status: models.PartnerStatusInactive}))

	partners, _, err := svc.GetActivePartners(ctx, models.PartnerQuery{})
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.Equal(t, "active-developer", partners[0].Slug)
}
