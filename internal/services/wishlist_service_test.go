package services

import (
	"context"
	"testing"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistService() *WishlistService {
	return NewWishlistService(memory.NewWishlistRepository())
}

func addRequest(sessionID, itemID, itemType string) models.WishlistAddRequest {
	return models.WishlistAddRequest{
		SessionID: sessionID,
		ItemID:    itemID,
		ItemType:  itemType,
		ItemData:  models.WishlistItemData{Title: "Marina Vista Penthouse", Location: "Dubai Marina"},
	}
}

func TestWishlistDuplicateTripleRejected(t *testing.T) {
	svc := newWishlistService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, addRequest("sess-1", "prop-1", models.WishlistItemProperty))
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, addRequest("sess-1", "prop-1", models.WishlistItemProperty))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestWishlistDistinctTypeAccepted(t *testing.T) {
	svc := newWishlistService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, addRequest("sess-1", "item-1", models.WishlistItemProperty))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, addRequest("sess-1", "item-1", models.WishlistItemProject))
	require.NoError(t, err)

	items, err := svc.GetSessionItems(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestWishlistValidation(t *testing.T) {
	svc := newWishlistService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, models.WishlistAddRequest{ItemID: "x", ItemType: "property"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.AddItem(ctx, addRequest("sess", "item", "bookmark"))
	assert.True(t, apperrors.IsValidation(err))

	req := addRequest("sess", "item", models.WishlistItemProperty)
	req.ItemData.Title = ""
	_, err = svc.AddItem(ctx, req)
	assert.True(t, apperrors.IsValidation(err))
}

func TestWishlistRemoveWithAndWithoutType(t *testing.T) {
	svc := newWishlistService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, addRequest("sess-1", "item-1", models.WishlistItemProperty))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, addRequest("sess-1", "item-1", models.WishlistItemProject))
	require.NoError(t, err)

	// Typed removal only touches the matching entry
	require.NoError(t, svc.RemoveItem(ctx, "sess-1", "item-1", models.WishlistItemProject))
	items, err := svc.GetSessionItems(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.WishlistItemProperty, items[0].ItemType)

	// Untyped removal matches whatever is left
	require.NoError(t, svc.RemoveItem(ctx, "sess-1", "item-1", ""))
	err = svc.RemoveItem(ctx, "sess-1", "item-1", "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestWishlistStats(t *testing.T) {
	svc := newWishlistService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, addRequest("sess-1", "prop-1", models.WishlistItemProperty))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, addRequest("sess-2", "prop-1", models.WishlistItemProperty))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, addRequest("sess-2", "proj-1", models.WishlistItemProject))
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalItems)
	assert.EqualValues(t, 2, stats.PropertyItems)
	assert.EqualValues(t, 1, stats.ProjectItems)
	assert.EqualValues(t, 2, stats.UniqueSessions)
	require.NotEmpty(t, stats.PopularProperties)
	assert.Equal(t, "prop-1", stats.PopularProperties[0].ItemID)
	assert.EqualValues(t, 2, stats.PopularProperties[0].Count)
}

func TestWishlistAnalyticsPeriods(t *testing.T) {
	svc := newWishlistService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, addRequest("sess-1", "prop-1", models.WishlistItemProperty))
	require.NoError(t, err)

	analytics, err := svc.GetAnalytics(ctx, "30d")
	require.NoError(t, err)
	assert.Equal(t, "30d", analytics.Period)
	assert.NotEmpty(t, analytics.DailyStats)
	assert.NotEmpty(t, analytics.TopItems)

	// Unknown periods fall back to the 7 day window
	fallback, err := svc.GetAnalytics(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "7d", fallback.Period)
}

func TestWishlistClearSession(t *testing.T) {
	svc := newWishlistService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, addRequest("sess-1", "a", models.WishlistItemProperty))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, addRequest("sess-1", "b", models.WishlistItemProperty))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, addRequest("sess-2", "a", models.WishlistItemProperty))
	require.NoError(t, err)

	removed, err := svc.ClearSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	remaining, err := svc.GetSessionItems(ctx, "sess-2")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
