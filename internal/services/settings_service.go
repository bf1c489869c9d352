package services

import (
	"context"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
)

// Top-level settings fields patchable outside a named section
var settingsScalars = map[string]bool{
	"siteName":        true,
	"siteDescription": true,
	"logo":            true,
	"favicon":         true,
}

// SettingsService handles the singleton site settings document
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the settings, creating the default document on
// first access.
func (s *SettingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettings splits the request body into top-level scalars and section
// maps and merges them into the stored document. Keys inside a provided
// section overwrite only themselves; omitted keys and sections are kept.
func (s *SettingsService) UpdateSettings(ctx context.Context, body map[string]interface{}) (*models.Settings, error) {
	if len(body) == 0 {
		return nil, apperrors.NewValidation("no settings provided")
	}

	scalars := make(map[string]interface{})
	sections := make(map[string]map[string]interface{})
	for key, value := range body {
		switch {
		case settingsScalars[key]:
			scalars[key] = value
		case models.IsValidSettingsSection(key):
			fields, ok := value.(map[string]interface{})
			if !ok {
				return nil, apperrors.NewValidation("section " + key + " must be an object")
			}
			sections[key] = fields
		default:
			return nil, apperrors.NewValidation("unknown settings field: " + key)
		}
	}

	return s.settingsRepo.Merge(ctx, scalars, sections)
}

// UpdateSection merges fields into one named section
func (s *SettingsService) UpdateSection(ctx context.Context, section string, fields map[string]interface{}) (*models.Settings, error) {
	if !models.IsValidSettingsSection(section) {
		return nil, apperrors.NewValidation("unknown settings section: " + section)
	}
	if len(fields) == 0 {
		return nil, apperrors.NewValidation("no fields provided")
	}
	return s.settingsRepo.Merge(ctx, nil, map[string]map[string]interface{}{section: fields})
}

// ResetSettings restores the default settings document
func (s *SettingsService) ResetSettings(ctx context.Context) (*models.Settings, error) {
	return s.settingsRepo.Reset(ctx)
}
