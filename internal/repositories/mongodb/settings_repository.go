package mongodb

import (
	"context"
	"time"

	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repositories.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository handles the singleton settings document
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("settings"),
	}
}

// Get retrieves the settings document, creating the default one if none exists
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		defaults := models.DefaultSettings()
		defaults.ID = primitive.NewObjectID()
		defaults.CreatedAt = time.Now()
		defaults.UpdatedAt = time.Now()
		if _, err = r.collection.InsertOne(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Merge applies a shallow per-section merge: each provided section key is
// written as a dotted $set path so untouched keys in other sections (and in
// the same section) are preserved.
func (r *SettingsRepository) Merge(ctx context.Context, scalars map[string]interface{}, sections map[string]map[string]interface{}) (*models.Settings, error) {
	// Make sure the singleton exists before updating it
	if _, err := r.Get(ctx); err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	for key, value := range scalars {
		set[key] = value
	}
	for section, fields := range sections {
		for key, value := range fields {
			set[section+"."+key] = value
		}
	}

	if _, err := r.collection.UpdateOne(ctx, bson.M{}, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

// Reset deletes the settings document and recreates the default one
func (r *SettingsRepository) Reset(ctx context.Context) (*models.Settings, error) {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
