package services

import (
	"context"
	"time"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistService handles session-scoped favorites and their analytics
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
}

// NewWishlistService creates a new WishlistService
func NewWishlistService(wishlistRepo repositories.WishlistRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
	}
}

// AddItem validates and persists a favorite. Adding the same item twice for
// one session fails with ErrConflict; the same item under a different type
// is a distinct entry.
func (s *WishlistService) AddItem(ctx context.Context, req models.WishlistAddRequest) (*models.WishlistItem, error) {
	if req.SessionID == "" {
		return nil, apperrors.NewValidation("sessionId is required")
	}
	if req.ItemID == "" {
		return nil, apperrors.NewValidation("itemId is required")
	}
	if !models.IsValidWishlistItemType(req.ItemType) {
		return nil, apperrors.NewValidation("itemType must be property or project")
	}
	if req.ItemData.Title == "" {
		return nil, apperrors.NewValidation("itemData.title is required")
	}

	item := &models.WishlistItem{
		SessionID: req.SessionID,
		ItemID:    req.ItemID,
		ItemType:  req.ItemType,
		ItemData:  req.ItemData,
	}
	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetSessionItems returns all favorites for one session, newest first
func (s *WishlistService) GetSessionItems(ctx context.Context, sessionID string) ([]*models.WishlistItem, error) {
	if sessionID == "" {
		return nil, apperrors.NewValidation("sessionId is required")
	}
	return s.wishlistRepo.FindBySession(ctx, sessionID)
}

// RemoveItem removes a favorite by its composite key. itemType is optional;
// when empty, whichever entry matches the session and item is removed.
func (s *WishlistService) RemoveItem(ctx context.Context, sessionID, itemID, itemType string) error {
	if sessionID == "" {
		return apperrors.NewValidation("sessionId is required")
	}
	if itemID == "" {
		return apperrors.NewValidation("itemId is required")
	}
	if itemType != "" && !models.IsValidWishlistItemType(itemType) {
		return apperrors.NewValidation("itemType must be property or project")
	}
	return s.wishlistRepo.DeleteBySessionItem(ctx, sessionID, itemID, itemType)
}

// RemoveByID removes a favorite by its entry ID (admin view)
func (s *WishlistService) RemoveByID(ctx context.Context, id primitive.ObjectID) error {
	return s.wishlistRepo.DeleteByID(ctx, id)
}

// ClearSession removes all favorites for a session and returns the count
func (s *WishlistService) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, apperrors.NewValidation("sessionId is required")
	}
	return s.wishlistRepo.DeleteBySession(ctx, sessionID)
}

// GetItems returns a page of favorites across all sessions (admin view)
func (s *WishlistService) GetItems(ctx context.Context, query models.WishlistQuery) ([]*models.WishlistItem, models.Pagination, error) {
	query.Page, query.Limit = models.NormalizePage(query.Page, query.Limit)
	items, total, err := s.wishlistRepo.Find(ctx, query)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return items, models.NewPagination(query.Page, query.Limit, total), nil
}

// GetStats summarizes wishlist activity across all sessions
func (s *WishlistService) GetStats(ctx context.Context) (*models.WishlistStats, error) {
	total, err := s.wishlistRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := s.wishlistRepo.CountByType(ctx, models.WishlistItemProperty)
	if err != nil {
		return nil, err
	}
	projects, err := s.wishlistRepo.CountByType(ctx, models.WishlistItemProject)
	if err != nil {
		return nil, err
	}
	sessions, err := s.wishlistRepo.UniqueSessionCount(ctx)
	if err != nil {
		return nil, err
	}
	popularProperties, err := s.wishlistRepo.PopularByType(ctx, models.WishlistItemProperty, 5)
	if err != nil {
		return nil, err
	}
	popularProjects, err := s.wishlistRepo.PopularByType(ctx, models.WishlistItemProject, 5)
	if err != nil {
		return nil, err
	}
	recent, err := s.wishlistRepo.FindRecent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &models.WishlistStats{
		TotalItems:        total,
		PropertyItems:     properties,
		ProjectItems:      projects,
		UniqueSessions:    sessions,
		PopularProperties: popularProperties,
		PopularProjects:   popularProjects,
		RecentActivity:    recent,
	}, nil
}

// periodCutoff translates a lookback period into its cutoff time.
// Unknown periods default to 7 days.
func periodCutoff(period string) (string, time.Time) {
	now := time.Now()
	switch period {
	case "24h":
		return period, now.Add(-24 * time.Hour)
	case "7d":
		return period, now.AddDate(0, 0, -7)
	case "30d":
		return period, now.AddDate(0, 0, -30)
	case "90d":
		return period, now.AddDate(0, 0, -90)
	default:
		return "7d", now.AddDate(0, 0, -7)
	}
}

// GetAnalytics returns daily counts and top items for a lookback period
func (s *WishlistService) GetAnalytics(ctx context.Context, period string) (*models.WishlistAnalytics, error) {
	period, since := periodCutoff(period)

	daily, err := s.wishlistRepo.DailyStats(ctx, since)
	if err != nil {
		return nil, err
	}
	top, err := s.wishlistRepo.TopItems(ctx, since, 10)
	if err != nil {
		return nil, err
	}

	return &models.WishlistAnalytics{
		Period:     period,
		DailyStats: daily,
		TopItems:   top,
	}, nil
}
