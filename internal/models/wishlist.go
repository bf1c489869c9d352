package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wishlist item types
const (
	WishlistItemProperty = "property"
	WishlistItemProject  = "project"
)

// WishlistItemData is the snapshot of the listed item stored alongside the
// wishlist entry so the panel can render it without a second lookup.
type WishlistItemData struct {
	Title    string  `bson:"title" json:"title"`
	Location string  `bson:"location,omitempty" json:"location,omitempty"`
	Price    float64 `bson:"price,omitempty" json:"price,omitempty"`
	Image    string  `bson:"image,omitempty" json:"image,omitempty"`
	Bedrooms int     `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
}

// WishlistItem represents one favorited item, scoped to a client-supplied
// session identifier. Unique per (sessionId, itemId, itemType).
type WishlistItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SessionID string             `bson:"sessionId" json:"sessionId"`
	ItemID    string             `bson:"itemId" json:"itemId"`
	ItemType  string             `bson:"itemType" json:"itemType"`
	ItemData  WishlistItemData   `bson:"itemData" json:"itemData"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidWishlistItemType reports whether t is one of the allowed item types
func IsValidWishlistItemType(t string) bool {
	return t == WishlistItemProperty || t == WishlistItemProject
}

// WishlistAddRequest is the payload for the public POST /api/wishlist endpoint
type WishlistAddRequest struct {
	SessionID string           `json:"sessionId" binding:"required"`
	ItemID    string           `json:"itemId" binding:"required"`
	ItemType  string           `json:"itemType" binding:"required"`
	ItemData  WishlistItemData `json:"itemData"`
}

// WishlistQuery holds list filters for the admin wishlist view
type WishlistQuery struct {
	Page   int
	Limit  int
	Type   string
	Search string
}

// PopularItem is an aggregated wishlist entry ranked by add count
type PopularItem struct {
	ItemID   string           `bson:"_id" json:"itemId"`
	ItemType string           `bson:"itemType,omitempty" json:"itemType,omitempty"`
	Count    int64            `bson:"count" json:"count"`
	ItemData WishlistItemData `bson:"itemData" json:"itemData"`
}

// WishlistStats summarizes wishlist activity across all sessions
type WishlistStats struct {
	TotalItems     int64           `json:"totalItems"`
	PropertyItems  int64           `json:"propertyItems"`
	ProjectItems   int64           `json:"projectItems"`
	UniqueSessions int64           `json:"uniqueSessions"`
	PopularProperties []PopularItem `json:"popularProperties"`
	PopularProjects   []PopularItem `json:"popularProjects"`
	RecentActivity []*WishlistItem `json:"recentActivity"`
}

// DailyWishlistStat counts additions on one day for one item type
type DailyWishlistStat struct {
	Date     string `bson:"date" json:"date"`
	ItemType string `bson:"itemType" json:"itemType"`
	Count    int64  `bson:"count" json:"count"`
}

// WishlistAnalytics is the admin analytics payload for a lookback period
type WishlistAnalytics struct {
	Period     string              `json:"period"`
	DailyStats []DailyWishlistStat `json:"dailyStats"`
	TopItems   []PopularItem       `json:"topItems"`
}
