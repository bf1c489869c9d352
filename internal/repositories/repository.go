// Package repositories defines the data-access interfaces for every entity.
// Two implementations exist: mongodb (the persistent store) and memory
// (demo mode and tests), selected once at startup.
package repositories

import (
	"context"
	"time"

	"github.com/amzproperties/amz-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
	Count(ctx context.Context) (int64, error)
}

// PropertyRepository defines the interface for property listings
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Find(ctx context.Context, query models.PropertyQuery) ([]*models.Property, int64, error)
	FindFeatured(ctx context.Context, limit int) ([]*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByType(ctx context.Context, propertyType string) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]*models.Property, error)
}

// BlogRepository defines the interface for blog posts
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error)
	Find(ctx context.Context, query models.BlogQuery) ([]*models.Blog, int64, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	TotalViews(ctx context.Context) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]*models.Blog, error)
}

// PartnerRepository defines the interface for partner profiles
type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error)
	FindBySlug(ctx context.Context, slug string) (*models.Partner, error)
	SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error)
	Find(ctx context.Context, query models.PartnerQuery) ([]*models.Partner, int64, error)
	Update(ctx context.Context, partner *models.Partner) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// TestimonialRepository defines the interface for testimonials
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *models.Testimonial) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Testimonial, error)
	Find(ctx context.Context, query models.TestimonialQuery) ([]*models.Testimonial, int64, error)
	Update(ctx context.Context, testimonial *models.Testimonial) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// ContactRepository defines the interface for contact submissions
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	Find(ctx context.Context, query models.ContactQuery) ([]*models.Contact, int64, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByInquiryType(ctx context.Context, inquiryType string) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]*models.Contact, error)
}

// WishlistRepository defines the interface for session-scoped favorites.
// Create returns apperrors.ErrConflict when the (sessionId, itemId, itemType)
// triple already exists.
type WishlistRepository interface {
	Create(ctx context.Context, item *models.WishlistItem) error
	FindBySession(ctx context.Context, sessionID string) ([]*models.WishlistItem, error)
	DeleteBySessionItem(ctx context.Context, sessionID, itemID, itemType string) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteBySession(ctx context.Context, sessionID string) (int64, error)
	Find(ctx context.Context, query models.WishlistQuery) ([]*models.WishlistItem, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, itemType string) (int64, error)
	UniqueSessionCount(ctx context.Context) (int64, error)
	PopularByType(ctx context.Context, itemType string, limit int) ([]models.PopularItem, error)
	FindRecent(ctx context.Context, limit int) ([]*models.WishlistItem, error)
	DailyStats(ctx context.Context, since time.Time) ([]models.DailyWishlistStat, error)
	TopItems(ctx context.Context, since time.Time, limit int) ([]models.PopularItem, error)
}

// SettingsRepository defines the interface for the singleton settings
// document. Get creates the default document when none exists.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Merge(ctx context.Context, scalars map[string]interface{}, sections map[string]map[string]interface{}) (*models.Settings, error)
	Reset(ctx context.Context) (*models.Settings, error)
}
