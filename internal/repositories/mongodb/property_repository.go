package mongodb

import (
	"context"
	"time"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.PropertyRepository = (*PropertyRepository)(nil)

// PropertyRepository handles MongoDB operations for Property
type PropertyRepository struct {
	collection *mongo.Collection
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{
		collection: db.Collection("properties"),
	}
}

// Create inserts a new property
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	property.ID = primitive.NewObjectID()
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	return err
}

// FindByID finds a property by ID
func (r *PropertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func propertyFilter(query models.PropertyQuery) bson.M {
	filter := bson.M{}
	if query.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"location": bson.M{"$regex": query.Search, "$options": "i"}},
		}
	}
	if query.Type != "" && query.Type != "all" {
		filter["type"] = query.Type
	}
	if query.Status != "" && query.Status != "all" {
		filter["status"] = query.Status
	}
	if query.Location != "" {
		filter["location"] = bson.M{"$regex": query.Location, "$options": "i"}
	}
	price := bson.M{}
	if query.MinPrice > 0 {
		price["$gte"] = query.MinPrice
	}
	if query.MaxPrice > 0 {
		price["$lte"] = query.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	if query.Bedrooms > 0 {
		filter["bedrooms"] = query.Bedrooms
	}
	if query.Featured != nil {
		filter["featured"] = *query.Featured
	}
	return filter
}

// Find returns a page of properties matching the query plus the total count
func (r *PropertyRepository) Find(ctx context.Context, query models.PropertyQuery) ([]*models.Property, int64, error) {
	filter := propertyFilter(query)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((query.Page - 1) * query.Limit)).
		SetLimit(int64(query.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var properties []*models.Property
	if err = cursor.All(ctx, &properties); err != nil {
		return nil, 0, err
	}
	if properties == nil {
		properties = []*models.Property{}
	}
	return properties, total, nil
}

// FindFeatured returns featured available properties
func (r *PropertyRepository) FindFeatured(ctx context.Context, limit int) ([]*models.Property, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []*models.Property
	if err = cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []*models.Property{}
	}
	return properties, nil
}

// Update updates an existing property
func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	property.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": property.ID}, bson.M{"$set": property})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a property by ID
func (r *PropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of properties
func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByStatus returns the number of properties in the given status
func (r *PropertyRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

// CountByType returns the number of properties of the given type
func (r *PropertyRepository) CountByType(ctx context.Context, propertyType string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"type": propertyType})
}

// FindRecent returns the most recently created properties
func (r *PropertyRepository) FindRecent(ctx context.Context, limit int) ([]*models.Property, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []*models.Property
	if err = cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}
