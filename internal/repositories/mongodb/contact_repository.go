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

var _ repositories.ContactRepository = (*ContactRepository)(nil)

// ContactRepository handles MongoDB operations for Contact
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{
		collection: db.Collection("contacts"),
	}
}

// Create inserts a new contact submission
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, contact)
	return err
}

// FindByID finds a contact submission by ID
func (r *ContactRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var contact models.Contact
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Find returns a page of contact submissions plus the total count
func (r *ContactRepository) Find(ctx context.Context, query models.ContactQuery) ([]*models.Contact, int64, error) {
	filter := bson.M{}
	if query.Status != "" && query.Status != "all" {
		filter["status"] = query.Status
	}
	if query.InquiryType != "" && query.InquiryType != "all" {
		filter["inquiryType"] = query.InquiryType
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

	var contacts []*models.Contact
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}
	if contacts == nil {
		contacts = []*models.Contact{}
	}
	return contacts, total, nil
}

// Update updates an existing contact submission
func (r *ContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	contact.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": contact.ID}, bson.M{"$set": contact})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a contact submission by ID
func (r *ContactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of contact submissions
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByStatus returns the number of submissions in the given workflow state
func (r *ContactRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

// CountByInquiryType returns the number of submissions with the given inquiry type
func (r *ContactRepository) CountByInquiryType(ctx context.Context, inquiryType string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"inquiryType": inquiryType})
}

// FindRecent returns the most recent submissions
func (r *ContactRepository) FindRecent(ctx context.Context, limit int) ([]*models.Contact, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []*models.Contact
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
