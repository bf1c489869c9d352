package services

import (
	"context"

	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
)

// DashboardStats is the admin dashboard summary payload
type DashboardStats struct {
	Properties struct {
		Total     int64 `json:"total"`
		Available int64 `json:"available"`
		Sold      int64 `json:"sold"`
		Featured  int64 `json:"featured"`
	} `json:"properties"`
	Blogs struct {
		Total      int64 `json:"total"`
		Published  int64 `json:"published"`
		Drafts     int64 `json:"drafts"`
		TotalViews int64 `json:"totalViews"`
	} `json:"blogs"`
	Partners struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"partners"`
	Testimonials struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"testimonials"`
	Contacts struct {
		Total int64 `json:"total"`
		New   int64 `json:"new"`
	} `json:"contacts"`
	Wishlist struct {
		Total    int64 `json:"total"`
		Sessions int64 `json:"sessions"`
	} `json:"wishlist"`
	RecentProperties []*models.Property `json:"recentProperties"`
	RecentContacts   []*models.Contact  `json:"recentContacts"`
}

// StatsService aggregates counts across all stores for the admin dashboard
type StatsService struct {
	propertyRepo    repositories.PropertyRepository
	blogRepo        repositories.BlogRepository
	partnerRepo     repositories.PartnerRepository
	testimonialRepo repositories.TestimonialRepository
	contactRepo     repositories.ContactRepository
	wishlistRepo    repositories.WishlistRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	propertyRepo repositories.PropertyRepository,
	blogRepo repositories.BlogRepository,
	partnerRepo repositories.PartnerRepository,
	testimonialRepo repositories.TestimonialRepository,
	contactRepo repositories.ContactRepository,
	wishlistRepo repositories.WishlistRepository,
) *StatsService {
	return &StatsService{
		propertyRepo:    propertyRepo,
		blogRepo:        blogRepo,
		partnerRepo:     partnerRepo,
		testimonialRepo: testimonialRepo,
		contactRepo:     contactRepo,
		wishlistRepo:    wishlistRepo,
	}
}

// GetDashboardStats collects the dashboard summary
func (s *StatsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.Properties.Total, err = s.propertyRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Properties.Available, err = s.propertyRepo.CountByStatus(ctx, models.PropertyStatusAvailable); err != nil {
		return nil, err
	}
	if stats.Properties.Sold, err = s.propertyRepo.CountByStatus(ctx, models.PropertyStatusSold); err != nil {
		return nil, err
	}
	featured, err := s.propertyRepo.FindFeatured(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.Properties.Featured = int64(len(featured))

	if stats.Blogs.Total, err = s.blogRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Blogs.Published, err = s.blogRepo.CountByStatus(ctx, models.BlogStatusPublished); err != nil {
		return nil, err
	}
	if stats.Blogs.Drafts, err = s.blogRepo.CountByStatus(ctx, models.BlogStatusDraft); err != nil {
		return nil, err
	}
	if stats.Blogs.TotalViews, err = s.blogRepo.TotalViews(ctx); err != nil {
		return nil, err
	}

	if stats.Partners.Total, err = s.partnerRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Partners.Active, err = s.partnerRepo.CountByStatus(ctx, models.PartnerStatusActive); err != nil {
		return nil, err
	}

	if stats.Testimonials.Total, err = s.testimonialRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Testimonials.Active, err = s.testimonialRepo.CountByStatus(ctx, models.TestimonialStatusActive); err != nil {
		return nil, err
	}

	if stats.Contacts.Total, err = s.contactRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Contacts.New, err = s.contactRepo.CountByStatus(ctx, models.ContactStatusNew); err != nil {
		return nil, err
	}

	if stats.Wishlist.Total, err = s.wishlistRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Wishlist.Sessions, err = s.wishlistRepo.UniqueSessionCount(ctx); err != nil {
		return nil, err
	}

	if stats.RecentProperties, err = s.propertyRepo.FindRecent(ctx, 5); err != nil {
		return nil, err
	}
	if stats.RecentContacts, err = s.contactRepo.FindRecent(ctx, 5); err != nil {
		return nil, err
	}

	return stats, nil
}
