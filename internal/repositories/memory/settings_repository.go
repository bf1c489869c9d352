package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository is the in-memory SettingsRepository
type SettingsRepository struct {
	mu       sync.Mutex
	settings *models.Settings
}

// NewSettingsRepository creates an empty in-memory SettingsRepository
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) getLocked() *models.Settings {
	if r.settings == nil {
		defaults := models.DefaultSettings()
		defaults.ID = primitive.NewObjectID()
		defaults.CreatedAt = time.Now()
		defaults.UpdatedAt = time.Now()
		r.settings = defaults
	}
	copied := *r.settings
	return &copied
}

// Get retrieves the settings document, creating the default one if none exists
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(), nil
}

// Merge applies a shallow per-section merge via a JSON round trip: the stored
// document becomes a map, the provided keys overwrite it, and the result is
// decoded back, leaving untouched keys as they were.
func (r *SettingsRepository) Merge(ctx context.Context, scalars map[string]interface{}, sections map[string]map[string]interface{}) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.getLocked()
	raw, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	for key, value := range scalars {
		doc[key] = value
	}
	for section, fields := range sections {
		nested, ok := doc[section].(map[string]interface{})
		if !ok {
			nested = make(map[string]interface{})
		}
		for key, value := range fields {
			nested[key] = value
		}
		doc[section] = nested
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var updated models.Settings
	if err = json.Unmarshal(merged, &updated); err != nil {
		return nil, err
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = time.Now()

	r.settings = &updated
	copied := updated
	return &copied, nil
}

// Reset deletes the settings document and recreates the default one
func (r *SettingsRepository) Reset(ctx context.Context) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = nil
	return r.getLocked(), nil
}
