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

var _ repositories.TestimonialRepository = (*TestimonialRepository)(nil)

// TestimonialRepository handles MongoDB operations for Testimonial
type TestimonialRepository struct {
	collection *mongo.Collection
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{
		collection: db.Collection("testimonials"),
	}
}

// Create inserts a new testimonial
func (r *TestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.ID = primitive.NewObjectID()
	testimonial.CreatedAt = time.Now()
	testimonial.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, testimonial)
	return err
}

// FindByID finds a testimonial by ID
func (r *TestimonialRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&testimonial)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Find returns a page of testimonials matching the query plus the total count
func (r *TestimonialRepository) Find(ctx context.Context, query models.TestimonialQuery) ([]*models.Testimonial, int64, error) {
	filter := bson.M{}
	if query.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"content": bson.M{"$regex": query.Search, "$options": "i"}},
		}
	}
	if query.Status != "" && query.Status != "all" {
		filter["status"] = query.Status
	}

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

	var testimonials []*models.Testimonial
	if err = cursor.All(ctx, &testimonials); err != nil {
		return nil, 0, err
	}
	if testimonials == nil {
		testimonials = []*models.Testimonial{}
	}
	return testimonials, total, nil
}

// Update updates an existing testimonial
func (r *TestimonialRepository) Update(ctx context.Context, testimonial *models.Testimonial) error {
	testimonial.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": testimonial.ID}, bson.M{"$set": testimonial})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a testimonial by ID
func (r *TestimonialRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of testimonials
func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByStatus returns the number of testimonials in the given status
func (r *TestimonialRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
