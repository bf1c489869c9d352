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

var _ repositories.BlogRepository = (*BlogRepository)(nil)

// BlogRepository is the in-memory BlogRepository
type BlogRepository struct {
	mu    sync.RWMutex
	blogs []*models.Blog
}

// NewBlogRepository creates an empty in-memory BlogRepository
func NewBlogRepository() *BlogRepository {
	return &BlogRepository{}
}

func (r *BlogRepository) slugTaken(slug string, exclude primitive.ObjectID) bool {
	for _, blog := range r.blogs {
		if blog.Slug == slug && blog.ID != exclude {
			return true
		}
	}
	return false
}

// Create inserts a new blog post
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slugTaken(blog.Slug, primitive.NilObjectID) {
		return apperrors.ErrConflict
	}
	blog.ID = primitive.NewObjectID()
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = time.Now()
	copied := *blog
	r.blogs = append(r.blogs, &copied)
	return nil
}

// FindByID finds a blog post by ID
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, blog := range r.blogs {
		if blog.ID == id {
			copied := *blog
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindBySlug finds a blog post by slug
func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, blog := range r.blogs {
		if blog.Slug == slug {
			copied := *blog
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// SlugExists reports whether another post already uses the slug
func (r *BlogRepository) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.slugTaken(slug, exclude), nil
}

func matchBlog(blog *models.Blog, query models.BlogQuery) bool {
	if query.Status != "" && query.Status != "all" && blog.Status != query.Status {
		return false
	}
	if query.Category != "" && blog.Category != query.Category {
		return false
	}
	if query.Featured != nil && blog.Featured != *query.Featured {
		return false
	}
	if query.Search != "" &&
		!containsFold(blog.Title, query.Search) &&
		!containsFold(blog.Excerpt, query.Search) &&
		!containsFold(blog.Content, query.Search) {
		return false
	}
	return true
}

// Find returns a page of posts matching the query plus the total count.
// Results are ordered by publishedAt desc with unpublished posts last, then
// createdAt desc; content is excluded from list payloads. Both match the
// persistent store.
func (r *BlogRepository) Find(ctx context.Context, query models.BlogQuery) ([]*models.Blog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*models.Blog, 0)
	for _, blog := range r.blogs {
		if matchBlog(blog, query) {
			matched = append(matched, blog)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		pi, pj := matched[i].PublishedAt, matched[j].PublishedAt
		switch {
		case pi != nil && pj == nil:
			return true
		case pi == nil && pj != nil:
			return false
		case pi != nil && pj != nil && !pi.Equal(*pj):
			return pi.After(*pj)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start, end := paginate(query.Page, query.Limit, len(matched))
	page := make([]*models.Blog, 0, end-start)
	for _, blog := range matched[start:end] {
		copied := *blog
		copied.Content = ""
		page = append(page, &copied)
	}
	return page, total, nil
}

// Update updates an existing blog post
func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.slugTaken(blog.Slug, blog.ID) {
		return apperrors.ErrConflict
	}
	for i, existing := range r.blogs {
		if existing.ID == blog.ID {
			blog.UpdatedAt = time.Now()
			copied := *blog
			r.blogs[i] = &copied
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Delete removes a blog post by ID
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, blog := range r.blogs {
		if blog.ID == id {
			r.blogs = append(r.blogs[:i], r.blogs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// IncrementViews bumps the view counter
func (r *BlogRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, blog := range r.blogs {
		if blog.ID == id {
			blog.Views++
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Categories returns the distinct categories in use
func (r *BlogRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, blog := range r.blogs {
		if blog.Category != "" && !seen[blog.Category] {
			seen[blog.Category] = true
			categories = append(categories, blog.Category)
		}
	}
	return categories, nil
}

// Count returns the total number of blog posts
func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.blogs)), nil
}

// CountByStatus returns the number of posts in the given status
func (r *BlogRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, blog := range r.blogs {
		if blog.Status == status {
			count++
		}
	}
	return count, nil
}

// TotalViews sums the view counters across all posts
func (r *BlogRepository) TotalViews(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, blog := range r.blogs {
		total += blog.Views
	}
	return total, nil
}

// FindRecent returns the most recently created posts
func (r *BlogRepository) FindRecent(ctx context.Context, limit int) ([]*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recent := make([]*models.Blog, 0, limit)
	for i := len(r.blogs) - 1; i >= 0 && len(recent) < limit; i-- {
		copied := *r.blogs[i]
		copied.Content = ""
		recent = append(recent, &copied)
	}
	return recent, nil
}
