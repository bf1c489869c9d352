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

var _ repositories.BlogRepository = (*BlogRepository)(nil)

// BlogRepository handles MongoDB operations for Blog
type BlogRepository struct {
	collection *mongo.Collection
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		collection: db.Collection("blogs"),
	}
}

// Create inserts a new blog post
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, blog)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrConflict
	}
	return err
}

// FindByID finds a blog post by ID
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var blog models.Blog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug finds a blog post by slug
func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// SlugExists reports whether another post already uses the slug
func (r *BlogRepository) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
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

func blogFilter(query models.BlogQuery) bson.M {
	filter := bson.M{}
	if query.Status != "" && query.Status != "all" {
		filter["status"] = query.Status
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.Featured != nil {
		filter["featured"] = *query.Featured
	}
	if query.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"excerpt": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"content": bson.M{"$regex": query.Search, "$options": "i"}},
		}
	}
	return filter
}

// Find returns a page of posts matching the query plus the total count.
// Content is excluded from list payloads.
func (r *BlogRepository) Find(ctx context.Context, query models.BlogQuery) ([]*models.Blog, int64, error) {
	filter := blogFilter(query)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip(int64((query.Page - 1) * query.Limit)).
		SetLimit(int64(query.Limit)).
		SetProjection(bson.M{"content": 0})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var blogs []*models.Blog
	if err = cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	return blogs, total, nil
}

// Update updates an existing blog post
func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	blog.UpdatedAt = time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": blog.ID}, bson.M{"$set": blog})
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

// Delete removes a blog post by ID
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IncrementViews atomically bumps the view counter
func (r *BlogRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Categories returns the distinct categories in use
func (r *BlogRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// Count returns the total number of blog posts
func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByStatus returns the number of posts in the given status
func (r *BlogRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

// TotalViews sums the view counters across all posts
func (r *BlogRepository) TotalViews(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$views"}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// FindRecent returns the most recently created posts
func (r *BlogRepository) FindRecent(ctx context.Context, limit int) ([]*models.Blog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"content": 0})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []*models.Blog
	if err = cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// EnsureIndexes creates the unique slug index
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}
