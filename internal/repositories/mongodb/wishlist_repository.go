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

var _ repositories.WishlistRepository = (*WishlistRepository)(nil)

// WishlistRepository handles MongoDB operations for WishlistItem
type WishlistRepository struct {
	collection *mongo.Collection
}

// NewWishlistRepository creates a new WishlistRepository
func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{
		collection: db.Collection("wishlists"),
	}
}

// Create inserts a wishlist entry. The unique (sessionId, itemId, itemType)
// index turns duplicate adds into ErrConflict.
func (r *WishlistRepository) Create(ctx context.Context, item *models.WishlistItem) error {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrConflict
	}
	return err
}

// FindBySession returns all entries for one session, newest first
func (r *WishlistRepository) FindBySession(ctx context.Context, sessionID string) ([]*models.WishlistItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*models.WishlistItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.WishlistItem{}
	}
	return items, nil
}

// DeleteBySessionItem removes an entry by its composite key. An empty
// itemType matches either type.
func (r *WishlistRepository) DeleteBySessionItem(ctx context.Context, sessionID, itemID, itemType string) error {
	filter := bson.M{"sessionId": sessionID, "itemId": itemID}
	if itemType != "" {
		filter["itemType"] = itemType
	}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByID removes an entry by ID
func (r *WishlistRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBySession removes all entries for a session and returns the count
func (r *WishlistRepository) DeleteBySession(ctx context.Context, sessionID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// Find returns a page of entries across all sessions plus the total count
func (r *WishlistRepository) Find(ctx context.Context, query models.WishlistQuery) ([]*models.WishlistItem, int64, error) {
	filter := bson.M{}
	if query.Type != "" && query.Type != "all" {
		filter["itemType"] = query.Type
	}
	if query.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"itemData.title": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"itemData.location": bson.M{"$regex": query.Search, "$options": "i"}},
			bson.M{"sessionId": bson.M{"$regex": query.Search, "$options": "i"}},
		}
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

	var items []*models.WishlistItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []*models.WishlistItem{}
	}
	return items, total, nil
}

// Count returns the total number of wishlist entries
func (r *WishlistRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByType returns the number of entries of the given item type
func (r *WishlistRepository) CountByType(ctx context.Context, itemType string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"itemType": itemType})
}

// UniqueSessionCount returns the number of distinct sessions with entries
func (r *WishlistRepository) UniqueSessionCount(ctx context.Context) (int64, error) {
	sessions, err := r.collection.Distinct(ctx, "sessionId", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(sessions)), nil
}

// PopularByType returns the most wishlisted items of one type
func (r *WishlistRepository) PopularByType(ctx context.Context, itemType string, limit int) ([]models.PopularItem, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"itemType": itemType}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$itemId",
			"count":    bson.M{"$sum": 1},
			"itemData": bson.M{"$first": "$itemData"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.PopularItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ItemType = itemType
	}
	return items, nil
}

// FindRecent returns the latest entries across all sessions
func (r *WishlistRepository) FindRecent(ctx context.Context, limit int) ([]*models.WishlistItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*models.WishlistItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DailyStats counts additions per day per item type since the cutoff
func (r *WishlistRepository) DailyStats(ctx context.Context, since time.Time) ([]models.DailyWishlistStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"date":     bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
				"itemType": "$itemType",
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id.date": 1}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			Date     string `bson:"date"`
			ItemType string `bson:"itemType"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := make([]models.DailyWishlistStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, models.DailyWishlistStat{
			Date:     row.ID.Date,
			ItemType: row.ID.ItemType,
			Count:    row.Count,
		})
	}
	return stats, nil
}

// TopItems returns the most wishlisted items of any type since the cutoff
func (r *WishlistRepository) TopItems(ctx context.Context, since time.Time, limit int) ([]models.PopularItem, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":      bson.M{"itemId": "$itemId", "itemType": "$itemType"},
			"count":    bson.M{"$sum": 1},
			"itemData": bson.M{"$first": "$itemData"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			ItemID   string `bson:"itemId"`
			ItemType string `bson:"itemType"`
		} `bson:"_id"`
		Count    int64                   `bson:"count"`
		ItemData models.WishlistItemData `bson:"itemData"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	items := make([]models.PopularItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.PopularItem{
			ItemID:   row.ID.ItemID,
			ItemType: row.ID.ItemType,
			Count:    row.Count,
			ItemData: row.ItemData,
		})
	}
	return items, nil
}

// EnsureIndexes creates the unique compound index on the composite key
func (r *WishlistRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "sessionId", Value: 1},
			{Key: "itemId", Value: 1},
			{Key: "itemType", Value: 1},
		},
		Options: uniqueIndex(),
	})
	return err
}
