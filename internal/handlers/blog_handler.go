package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/services"
	"github.com/amzproperties/amz-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// BlogHandler handles blog post requests
type BlogHandler struct {
	blogService *services.BlogService
	cfg         *config.Config
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogService *services.BlogService, cfg *config.Config) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		cfg:         cfg,
	}
}

func parseBlogQuery(c *gin.Context) models.BlogQuery {
	query := models.BlogQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if featured := c.Query("featured"); featured != "" {
		value := featured == "true"
		query.Featured = &value
	}
	return query
}

// bindBlog reads a blog post from a JSON body or multipart form fields
func (h *BlogHandler) bindBlog(c *gin.Context) (*models.Blog, error) {
	var blog models.Blog
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		blog.Title = c.PostForm("title")
		blog.Excerpt = c.PostForm("excerpt")
		blog.Content = c.PostForm("content")
		blog.Category = c.PostForm("category")
		blog.Status = c.PostForm("status")
		blog.Featured = c.PostForm("featured") == "true"
		blog.Tags = utils.SplitAndTrim(c.PostForm("tags"))
		blog.Author.Name = c.PostForm("authorName")
		blog.SEO.MetaTitle = c.PostForm("metaTitle")
		blog.SEO.MetaDescription = c.PostForm("metaDescription")
		blog.SEO.Keywords = utils.SplitAndTrim(c.PostForm("keywords"))

		image, err := saveImage(c, h.cfg)
		if err != nil {
			return nil, err
		}
		blog.Image = image
		return &blog, nil
	}

	if err := c.ShouldBindJSON(&blog); err != nil {
		return nil, apperrors.NewValidation("invalid request body")
	}
	return &blog, nil
}

// bindBlogUpdate reads a partial update: only fields present in the JSON
// body or multipart form are set. The form's seo fields travel together, so
// providing any of them replaces the whole seo block.
func (h *BlogHandler) bindBlogUpdate(c *gin.Context) (*models.BlogUpdate, error) {
	var upd models.BlogUpdate
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if v, ok := c.GetPostForm("title"); ok {
			upd.Title = &v
		}
		if v, ok := c.GetPostForm("excerpt"); ok {
			upd.Excerpt = &v
		}
		if v, ok := c.GetPostForm("content"); ok {
			upd.Content = &v
		}
		if v, ok := c.GetPostForm("category"); ok {
			upd.Category = &v
		}
		if v, ok := c.GetPostForm("status"); ok {
			upd.Status = &v
		}
		if v, ok := c.GetPostForm("featured"); ok {
			featured := v == "true"
			upd.Featured = &featured
		}
		if v, ok := c.GetPostForm("tags"); ok {
			tags := utils.SplitAndTrim(v)
			upd.Tags = &tags
		}
		if v, ok := c.GetPostForm("authorName"); ok {
			upd.Author = &models.BlogAuthor{Name: v, Email: c.PostForm("authorEmail")}
		}
		_, hasMetaTitle := c.GetPostForm("metaTitle")
		_, hasMetaDescription := c.GetPostForm("metaDescription")
		_, hasKeywords := c.GetPostForm("keywords")
		if hasMetaTitle || hasMetaDescription || hasKeywords {
			upd.SEO = &models.BlogSEO{
				MetaTitle:       c.PostForm("metaTitle"),
				MetaDescription: c.PostForm("metaDescription"),
				Keywords:        utils.SplitAndTrim(c.PostForm("keywords")),
			}
		}

		image, err := saveImage(c, h.cfg)
		if err != nil {
			return nil, err
		}
		if image != "" {
			upd.Image = &image
		}
		return &upd, nil
	}

	if err := c.ShouldBindJSON(&upd); err != nil {
		return nil, apperrors.NewValidation("invalid request body")
	}
	return &upd, nil
}

// List handles GET /api/blogs. Only published posts are visible publicly.
func (h *BlogHandler) List(c *gin.Context) {
	query := parseBlogQuery(c)
	blogs, pagination, err := h.blogService.GetPublishedBlogs(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       blogs,
		"pagination": pagination,
	})
}

// AdminList handles GET /api/admin/blogs across all statuses
func (h *BlogHandler) AdminList(c *gin.Context) {
	query := parseBlogQuery(c)
	blogs, pagination, err := h.blogService.GetBlogs(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       blogs,
		"pagination": pagination,
	})
}

// GetBySlug handles GET /api/blogs/slug/:slug and increments views
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	blog, err := h.blogService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": blog})
}

// GetByID handles GET /api/admin/blogs/:id
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	blog, err := h.blogService.GetBlogByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": blog})
}

// Categories handles GET /api/blogs/categories/list
func (h *BlogHandler) Categories(c *gin.Context) {
	categories, err := h.blogService.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// Create handles POST /api/admin/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	blog, err := h.bindBlog(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err = h.blogService.CreateBlog(c.Request.Context(), blog); err != nil {
		removeImage(blog.Image, h.cfg)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": blog})
}

// Update handles PUT /api/admin/blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	upd, err := h.bindBlogUpdate(c)
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.blogService.GetBlogByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	replacedImage := ""
	if upd.Image != nil && *upd.Image != existing.Image {
		replacedImage = existing.Image
	}

	updated, err := h.blogService.UpdateBlog(c.Request.Context(), id, upd)
	if err != nil {
		if upd.Image != nil && *upd.Image != existing.Image {
			removeImage(*upd.Image, h.cfg)
		}
		respondError(c, err)
		return
	}
	removeImage(replacedImage, h.cfg)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

// Delete handles DELETE /api/admin/blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	blog, err := h.blogService.GetBlogByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err = h.blogService.DeleteBlog(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	removeImage(blog.Image, h.cfg)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog deleted"})
}
