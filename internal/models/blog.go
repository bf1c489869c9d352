package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog statuses
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

// BlogCategories is the fixed set of allowed blog categories
var BlogCategories = []string{
	"Market Trends",
	"Investment Guide",
	"Property News",
	"Lifestyle",
	"Technology",
}

// BlogAuthor identifies the author shown on a post
type BlogAuthor struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// BlogSEO holds per-post SEO metadata
type BlogSEO struct {
	MetaTitle       string   `bson:"metaTitle,omitempty" json:"metaTitle,omitempty"`
	MetaDescription string   `bson:"metaDescription,omitempty" json:"metaDescription,omitempty"`
	Keywords        []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

// Blog represents a blog post
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	Author      BlogAuthor         `bson:"author" json:"author"`
	Status      string             `bson:"status" json:"status"`
	Featured    bool               `bson:"featured" json:"featured"`
	Views       int64              `bson:"views" json:"views"`
	PublishedAt *time.Time         `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	SEO         BlogSEO            `bson:"seo,omitempty" json:"seo,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidBlogStatus reports whether s is one of the allowed blog statuses
func IsValidBlogStatus(s string) bool {
	switch s {
	case BlogStatusDraft, BlogStatusPublished, BlogStatusArchived:
		return true
	}
	return false
}

// IsValidBlogCategory reports whether c is one of the allowed blog categories
func IsValidBlogCategory(c string) bool {
	for _, cat := range BlogCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// BlogUpdate carries a partial update of a post. Nil fields are left
// unchanged; author and seo replace the whole sub-document when provided.
type BlogUpdate struct {
	Title    *string     `json:"title"`
	Excerpt  *string     `json:"excerpt"`
	Content  *string     `json:"content"`
	Image    *string     `json:"image"`
	Category *string     `json:"category"`
	Tags     *[]string   `json:"tags"`
	Author   *BlogAuthor `json:"author"`
	Status   *string     `json:"status"`
	Featured *bool       `json:"featured"`
	SEO      *BlogSEO    `json:"seo"`
}

// BlogQuery holds list filters for blog posts
type BlogQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Status   string
	Featured *bool
}
