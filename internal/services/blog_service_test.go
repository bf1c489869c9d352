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

func newBlogService() *BlogService {
	return NewBlogService(memory.NewBlogRepository())
}

func TestCreateBlogDefaultsAndSlug(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	blog := &models.Blog{Title: "Dubai Market 2024", Excerpt: "Outlook", Content: "Full analysis"}
	require.NoError(t, svc.CreateBlog(ctx, blog))

	assert.Equal(t, "dubai-market-2024", blog.Slug)
	assert.Equal(t, models.BlogStatusDraft, blog.Status)
	assert.EqualValues(t, 0, blog.Views)
	assert.Equal(t, "AMZ Properties", blog.Author.Name)
	assert.Nil(t, blog.PublishedAt)
}

func TestCreateBlogSlugConflict(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	require.NoError(t, svc.CreateBlog(ctx, &models.Blog{Title: "Dubai Market 2024"}))
	err := svc.CreateBlog(ctx, &models.Blog{Title: "Dubai Market 2024"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestDraftNotPublic(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	require.NoError(t, svc.CreateBlog(ctx, &models.Blog{Title: "Dubai Market 2024"}))
	_, err := svc.GetPublishedBySlug(ctx, "dubai-market-2024")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPublishedFetchIncrementsViews(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	blog := &models.Blog{Title: "Dubai Market 2024", Status: models.BlogStatusPublished}
	require.NoError(t, svc.CreateBlog(ctx, blog))
	require.NotNil(t, blog.PublishedAt)

	fetched, err := svc.GetPublishedBySlug(ctx, "dubai-market-2024")
	require.NoError(t, err)
	assert.EqualValues(t, 1, fetched.Views)

	again, err := svc.GetPublishedBySlug(ctx, "dubai-market-2024")
	require.NoError(t, err)
	assert.EqualValues(t, 2, again.Views)
}

func TestUpdateBlogPartialMerge(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	blog := &models.Blog{
		Title:    "Dubai Market 2024",
		Excerpt:  "Outlook",
		Content:  "Full analysis",
		Tags:     []string{"dubai", "market"},
		Featured: true,
		SEO:      models.BlogSEO{MetaTitle: "Dubai Market 2024"},
	}
	require.NoError(t, svc.CreateBlog(ctx, blog))

	updated, err := svc.UpdateBlog(ctx, blog.ID, &models.BlogUpdate{
		Title:   strPtr("Dubai Market 2025"),
		Excerpt: strPtr("Updated outlook"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Dubai Market 2025", updated.Title)
	assert.Equal(t, "Updated outlook", updated.Excerpt)
	assert.Equal(t, "Full analysis", updated.Content)
	assert.Equal(t, []string{"dubai", "market"}, updated.Tags)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Dubai Market 2024", updated.SEO.MetaTitle)

	stored, err := svc.GetBlogByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Full analysis", stored.Content)
	assert.Equal(t, []string{"dubai", "market"}, stored.Tags)
}

func TestUpdateBlogSlugOnlyChangesWithTitle(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	blog := &models.Blog{Title: "Dubai Market 2024"}
	require.NoError(t, svc.CreateBlog(ctx, blog))

	// No title in the update: slug stays put
	updated, err := svc.UpdateBlog(ctx, blog.ID, &models.BlogUpdate{Excerpt: strPtr("revised")})
	require.NoError(t, err)
	assert.Equal(t, "dubai-market-2024", updated.Slug)

	// New title: slug re-derived
	updated, err = svc.UpdateBlog(ctx, blog.ID, &models.BlogUpdate{Title: strPtr("Dubai Market 2025")})
	require.NoError(t, err)
	assert.Equal(t, "dubai-market-2025", updated.Slug)
}

func TestUpdateBlogStampsPublishedAtOnce(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	blog := &models.Blog{Title: "Dubai Market 2024"}
	require.NoError(t, svc.CreateBlog(ctx, blog))

	published, err := svc.UpdateBlog(ctx, blog.ID, &models.BlogUpdate{Status: strPtr(models.BlogStatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	republished, err := svc.UpdateBlog(ctx, blog.ID, &models.BlogUpdate{Status: strPtr(models.BlogStatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, first, *republished.PublishedAt)
}

func TestUpdateBlogSlugConflict(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	require.NoError(t, svc.CreateBlog(ctx, &models.Blog{Title: "First Post"}))
	second := &models.Blog{Title: "Second Post"}
	require.NoError(t, svc.CreateBlog(ctx, second))

	_, err := svc.UpdateBlog(ctx, second.ID, &models.BlogUpdate{Title: strPtr("First Post")})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestBlogListOrderedByPublishDate(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	older := &models.Blog{Title: "Older News"}
	require.NoError(t, svc.CreateBlog(ctx, older))
	require.NoError(t, svc.CreateBlog(ctx, &models.Blog{Title: "Breaking News", Status: models.BlogStatusPublished}))

	// Published last, so its publishedAt is the most recent despite the
	// earlier createdAt
	_, err := svc.UpdateBlog(ctx, older.ID, &models.BlogUpdate{Status: strPtr(models.BlogStatusPublished)})
	require.NoError(t, err)

	blogs, _, err := svc.GetPublishedBlogs(ctx, models.BlogQuery{})
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "older-news", blogs[0].Slug)
	assert.Equal(t, "breaking-news", blogs[1].Slug)
}

func TestPublicBlogListFiltersPublished(t *testing.T) {
	svc := newBlogService()
	ctx := context.Background()

	require.NoError(t, svc.CreateBlog(ctx, &models.Blog{Title: "Draft Post"}))
	require.NoError(t, svc.CreateBlog(ctx, &models.Blog{Title: "Live Post", Status: models.BlogStatusPublished}))

	blogs, pagination, err := svc.GetPublishedBlogs(ctx, models.BlogQuery{})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "live-post", blogs[0].Slug)
	assert.EqualValues(t, 1, pagination.TotalItems)
}
