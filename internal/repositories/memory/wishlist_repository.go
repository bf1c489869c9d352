package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.WishlistRepository = (*WishlistRepository)(nil)

// WishlistRepository is the in-memory WishlistRepository
type WishlistRepository struct {
	mu    sync.RWMutex
	items []*models.WishlistItem
}

// NewWishlistRepository creates an empty in-memory WishlistRepository
func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{}
}

// Create inserts a wishlist entry. Duplicate (sessionId, itemId, itemType)
// triples are rejected with ErrConflict, matching the unique index of the
// persistent store.
func (r *WishlistRepository) Create(ctx context.Context, item *models.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.SessionID == item.SessionID &&
			existing.ItemID == item.ItemID &&
			existing.ItemType == item.ItemType {
			return apperrors.ErrConflict
		}
	}
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

// FindBySession returns all entries for one session, newest first
func (r *WishlistRepository) FindBySession(ctx context.Context, sessionID string) ([]*models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*models.WishlistItem, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].SessionID == sessionID {
			copied := *r.items[i]
			items = append(items, &copied)
		}
	}
	return items, nil
}

// DeleteBySessionItem removes an entry by its composite key. An empty
// itemType matches either type.
func (r *WishlistRepository) DeleteBySessionItem(ctx context.Context, sessionID, itemID, itemType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.SessionID != sessionID || item.ItemID != itemID {
			continue
		}
		if itemType != "" && item.ItemType != itemType {
			continue
		}
		r.items = append(r.items[:i], r.items[i+1:]...)
		return nil
	}
	return apperrors.ErrNotFound
}

// DeleteByID removes an entry by ID
func (r *WishlistRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// DeleteBySession removes all entries for a session and returns the count
func (r *WishlistRepository) DeleteBySession(ctx context.Context, sessionID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	var removed int64
	for _, item := range r.items {
		if item.SessionID == sessionID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return removed, nil
}

// Find returns a page of entries across all sessions plus the total count
func (r *WishlistRepository) Find(ctx context.Context, query models.WishlistQuery) ([]*models.WishlistItem, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*models.WishlistItem, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		item := r.items[i]
		if query.Type != "" && query.Type != "all" && item.ItemType != query.Type {
			continue
		}
		if query.Search != "" &&
			!containsFold(item.ItemData.Title, query.Search) &&
			!containsFold(item.ItemData.Location, query.Search) &&
			!containsFold(item.SessionID, query.Search) {
			continue
		}
		matched = append(matched, item)
	}

	total := int64(len(matched))
	start, end := paginate(query.Page, query.Limit, len(matched))
	page := make([]*models.WishlistItem, 0, end-start)
	for _, item := range matched[start:end] {
		copied := *item
		page = append(page, &copied)
	}
	return page, total, nil
}

// Count returns the total number of wishlist entries
func (r *WishlistRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}

// CountByType returns the number of entries of the given item type
func (r *WishlistRepository) CountByType(ctx context.Context, itemType string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, item := range r.items {
		if item.ItemType == itemType {
			count++
		}
	}
	return count, nil
}

// UniqueSessionCount returns the number of distinct sessions with entries
func (r *WishlistRepository) UniqueSessionCount(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make(map[string]bool)
	for _, item := range r.items {
		sessions[item.SessionID] = true
	}
	return int64(len(sessions)), nil
}

// PopularByType returns the most wishlisted items of one type
func (r *WishlistRepository) PopularByType(ctx context.Context, itemType string, limit int) ([]models.PopularItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byItem := make(map[string]*models.PopularItem)
	order := make([]string, 0)
	for _, item := range r.items {
		if item.ItemType != itemType {
			continue
		}
		if popular, ok := byItem[item.ItemID]; ok {
			popular.Count++
			continue
		}
		byItem[item.ItemID] = &models.PopularItem{
			ItemID:   item.ItemID,
			ItemType: itemType,
			Count:    1,
			ItemData: item.ItemData,
		}
		order = append(order, item.ItemID)
	}

	ranked := make([]models.PopularItem, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byItem[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// FindRecent returns the latest entries across all sessions
func (r *WishlistRepository) FindRecent(ctx context.Context, limit int) ([]*models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recent := make([]*models.WishlistItem, 0, limit)
	for i := len(r.items) - 1; i >= 0 && len(recent) < limit; i-- {
		copied := *r.items[i]
		recent = append(recent, &copied)
	}
	return recent, nil
}

// DailyStats counts additions per day per item type since the cutoff
func (r *WishlistRepository) DailyStats(ctx context.Context, since time.Time) ([]models.DailyWishlistStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type key struct {
		date     string
		itemType string
	}
	counts := make(map[key]int64)
	for _, item := range r.items {
		if item.CreatedAt.Before(since) {
			continue
		}
		counts[key{item.CreatedAt.Format("2006-01-02"), item.ItemType}]++
	}

	stats := make([]models.DailyWishlistStat, 0, len(counts))
	for k, count := range counts {
		stats = append(stats, models.DailyWishlistStat{
			Date:     k.date,
			ItemType: k.itemType,
			Count:    count,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Date != stats[j].Date {
			return stats[i].Date < stats[j].Date
		}
		return stats[i].ItemType < stats[j].ItemType
	})
	return stats, nil
}

// TopItems returns the most wishlisted items of any type since the cutoff
func (r *WishlistRepository) TopItems(ctx context.Context, since time.Time, limit int) ([]models.PopularItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type key struct {
		itemID   string
		itemType string
	}
	byItem := make(map[key]*models.PopularItem)
	order := make([]key, 0)
	for _, item := range r.items {
		if item.CreatedAt.Before(since) {
			continue
		}
		k := key{item.ItemID, item.ItemType}
		if popular, ok := byItem[k]; ok {
			popular.Count++
			continue
		}
		byItem[k] = &models.PopularItem{
			ItemID:   item.ItemID,
			ItemType: item.ItemType,
			Count:    1,
			ItemData: item.ItemData,
		}
		order = append(order, k)
	}

	ranked := make([]models.PopularItem, 0, len(order))
	for _, k := range order {
		ranked = append(ranked, *byItem[k])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
