package services

import (
	"context"
	"time"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"github.com/amzproperties/amz-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogService handles blog posts: slug derivation, publication timestamps
// and the public view counter.
type BlogService struct {
	blogRepo repositories.BlogRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repositories.BlogRepository) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
	}
}

func validateBlog(blog *models.Blog) error {
	if blog.Title == "" {
		return apperrors.NewValidation("title is required")
	}
	if blog.Status != "" && !models.IsValidBlogStatus(blog.Status) {
		return apperrors.NewValidation("invalid blog status")
	}
	if blog.Category != "" && !models.IsValidBlogCategory(blog.Category) {
		return apperrors.NewValidation("invalid blog category")
	}
	return nil
}

// CreateBlog derives the slug from the title, applies defaults and persists
// the post. Slug collisions fail with ErrConflict.
func (s *BlogService) CreateBlog(ctx context.Context, blog *models.Blog) error {
	if err := validateBlog(blog); err != nil {
		return err
	}

	blog.Slug = utils.Slugify(blog.Title)
	if blog.Slug == "" {
		return apperrors.NewValidation("title must contain at least one letter or digit")
	}
	taken, err := s.blogRepo.SlugExists(ctx, blog.Slug, primitive.NilObjectID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrConflict
	}

	if blog.Status == "" {
		blog.Status = models.BlogStatusDraft
	}
	if blog.Category == "" {
		blog.Category = models.BlogCategories[0]
	}
	if blog.Author.Name == "" {
		blog.Author.Name = "AMZ Properties"
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	blog.Views = 0
	if blog.Status == models.BlogStatusPublished {
		now := time.Now()
		blog.PublishedAt = &now
	} else {
		blog.PublishedAt = nil
	}

	return s.blogRepo.Create(ctx, blog)
}

// GetBlogByID retrieves a post by ID
func (s *BlogService) GetBlogByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return s.blogRepo.FindByID(ctx, id)
}

// GetPublishedBySlug serves the public post page: only published posts are
// visible and every successful read bumps the view counter.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	blog, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if blog.Status != models.BlogStatusPublished {
		return nil, apperrors.ErrNotFound
	}
	if err = s.blogRepo.IncrementViews(ctx, blog.ID); err != nil {
		return nil, err
	}
	blog.Views++
	return blog, nil
}

// GetBlogs retrieves a page of posts with pagination metadata
func (s *BlogService) GetBlogs(ctx context.Context, query models.BlogQuery) ([]*models.Blog, models.Pagination, error) {
	query.Page, query.Limit = models.NormalizePage(query.Page, query.Limit)
	blogs, total, err := s.blogRepo.Find(ctx, query)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return blogs, models.NewPagination(query.Page, query.Limit, total), nil
}

// GetPublishedBlogs retrieves a page of published posts for the public site
func (s *BlogService) GetPublishedBlogs(ctx context.Context, query models.BlogQuery) ([]*models.Blog, models.Pagination, error) {
	query.Status = models.BlogStatusPublished
	return s.GetBlogs(ctx, query)
}

// UpdateBlog merges the provided fields into the existing post and persists
// the result. Omitted fields keep their stored values, the slug is re-derived
// only when the title changes, and the first transition to published stamps
// publishedAt.
func (s *BlogService) UpdateBlog(ctx context.Context, id primitive.ObjectID, upd *models.BlogUpdate) (*models.Blog, error) {
	existing, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	blog := *existing
	if upd.Title != nil {
		blog.Title = *upd.Title
	}
	if upd.Excerpt != nil {
		blog.Excerpt = *upd.Excerpt
	}
	if upd.Content != nil {
		blog.Content = *upd.Content
	}
	if upd.Image != nil {
		blog.Image = *upd.Image
	}
	if upd.Category != nil {
		blog.Category = *upd.Category
	}
	if upd.Tags != nil {
		blog.Tags = *upd.Tags
	}
	if upd.Author != nil {
		blog.Author = *upd.Author
	}
	if upd.Status != nil {
		blog.Status = *upd.Status
	}
	if upd.Featured != nil {
		blog.Featured = *upd.Featured
	}
	if upd.SEO != nil {
		blog.SEO = *upd.SEO
	}
	if err = validateBlog(&blog); err != nil {
		return nil, err
	}

	if blog.Title != existing.Title {
		blog.Slug = utils.Slugify(blog.Title)
		if blog.Slug == "" {
			return nil, apperrors.NewValidation("title must contain at least one letter or digit")
		}
		taken, err := s.blogRepo.SlugExists(ctx, blog.Slug, existing.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrConflict
		}
	}

	if blog.Status == models.BlogStatusPublished && existing.PublishedAt == nil {
		now := time.Now()
		blog.PublishedAt = &now
	}

	if err = s.blogRepo.Update(ctx, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteBlog removes a post
func (s *BlogService) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	return s.blogRepo.Delete(ctx, id)
}

// GetCategories returns the categories currently in use
func (s *BlogService) GetCategories(ctx context.Context) ([]string, error) {
	return s.blogRepo.Categories(ctx)
}
