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

var _ repositories.PartnerRepository = (*PartnerRepository)(nil)

// PartnerRepository handles MongoDB operations for Partner
type PartnerRepository struct {
	collection *mongo.Collection
}

// NewPartnerRepository creates a new PartnerRepository
func NewPartnerRepository(db *mongo.Database) *PartnerRepository {
	return &PartnerRepository{
		collection: db.Collection("partners"),
	}
}

// Create inserts a new partner
func (r *PartnerRepository) Create(ctx context.Context, partner *models.Partner) error {
	partner.ID = primitive.NewObjectID()
	partner.CreatedAt = time.Now()
	partner.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, partner)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrConflict
	}
	return err
}

// FindByID finds a partner by ID
func (r *PartnerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	var partner models.Partner
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&partner)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// FindBySlug finds a partner by slug
func (r *PartnerRepository) FindBySlug(ctx context.Context, slug string) (*models.Partner, error) {
	var partner models.Partner
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&partner)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// SlugExists reports whether another partner already uses the slug
func (r *PartnerRepository) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Find returns a page of partners matching the query plus the total count
func (r *PartnerRepository) Find(ctx context.Context, query models.PartnerQuery) ([]*models.Partner, int64, error) {
	filter := bson.M{}
	if query.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": query.Search, "$options": "i"}},
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

	var partners []*models.Partner
	if err = cursor.All(ctx, &partners); err != nil {
		return nil, 0, err
	}
	if partners == nil {
		partners = []*models.Partner{}
	}
	return partners, total, nil
}

// Update updates an existing partner
func (r *PartnerRepository) Update(ctx context.Context, partner *models.Partner) error {
	partner.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": partner.ID}, bson.M{"$set": partner})
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrConflict
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a partner by ID
func (r *PartnerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of partners
func (r *PartnerRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByStatus returns the number of partners in the given status
func (r *PartnerRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

// EnsureIndexes creates the unique slug index
func (r *PartnerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}
