package services

import (
	"context"
	"testing"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService() *SettingsService {
	return NewSettingsService(memory.NewSettingsRepository())
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	svc := newSettingsService()
	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AMZ Properties", settings.SiteName)
	assert.Equal(t, "#1a365d", settings.Appearance.PrimaryColor)
	assert.True(t, settings.Features.EnableBlog)
}

func TestUpdateSettingsSectionMergeLeavesOthersUntouched(t *testing.T) {
	svc := newSettingsService()
	ctx := context.Background()

	before, err := svc.GetSettings(ctx)
	require.NoError(t, err)

	updated, err := svc.UpdateSettings(ctx, map[string]interface{}{
		"appearance": map[string]interface{}{"primaryColor": "#000000"},
	})
	require.NoError(t, err)

	assert.Equal(t, "#000000", updated.Appearance.PrimaryColor)
	// Sibling keys in the patched section survive
	assert.Equal(t, before.Appearance.SecondaryColor, updated.Appearance.SecondaryColor)
	assert.Equal(t, before.Appearance.AccentColor, updated.Appearance.AccentColor)
	// Other sections survive
	assert.Equal(t, before.ContactInfo, updated.ContactInfo)
	assert.Equal(t, before.SiteName, updated.SiteName)
}

func TestUpdateSettingsScalars(t *testing.T) {
	svc := newSettingsService()
	ctx := context.Background()

	updated, err := svc.UpdateSettings(ctx, map[string]interface{}{"siteName": "AMZ Luxury"})
	require.NoError(t, err)
	assert.Equal(t, "AMZ Luxury", updated.SiteName)
	assert.Equal(t, "Premium Real Estate Services in Dubai", updated.SiteDescription)
}

func TestUpdateSettingsRejectsUnknownField(t *testing.T) {
	svc := newSettingsService()
	_, err := svc.UpdateSettings(context.Background(), map[string]interface{}{"theme": "dark"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateSectionRejectsUnknownSection(t *testing.T) {
	svc := newSettingsService()
	_, err := svc.UpdateSection(context.Background(), "payments", map[string]interface{}{"enabled": true})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateSection(t *testing.T) {
	svc := newSettingsService()
	ctx := context.Background()

	updated, err := svc.UpdateSection(ctx, "socialMedia", map[string]interface{}{"instagram": "https://instagram.com/amz"})
	require.NoError(t, err)
	assert.Equal(t, "https://instagram.com/amz", updated.SocialMedia.Instagram)
}

func TestResetSettings(t *testing.T) {
	svc := newSettingsService()
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, map[string]interface{}{"siteName": "Changed"})
	require.NoError(t, err)

	reset, err := svc.ResetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AMZ Properties", reset.SiteName)
}
