package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial statuses
const (
	TestimonialStatusActive   = "active"
	TestimonialStatusInactive = "inactive"
)

// Testimonial represents a client testimonial, optionally tied to a property
type Testimonial struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Position     string             `bson:"position" json:"position"`
	Company      string             `bson:"company" json:"company"`
	Content      string             `bson:"content" json:"content"`
	Rating       int                `bson:"rating" json:"rating"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Status       string             `bson:"status" json:"status"`
	Featured     bool               `bson:"featured" json:"featured"`
	PropertyID   primitive.ObjectID `bson:"propertyId,omitempty" json:"propertyId,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	PurchaseDate *time.Time         `bson:"purchaseDate,omitempty" json:"purchaseDate,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidTestimonialStatus reports whether s is one of the allowed testimonial statuses
func IsValidTestimonialStatus(s string) bool {
	return s == TestimonialStatusActive || s == TestimonialStatusInactive
}

// TestimonialUpdate carries a partial update of a testimonial. Nil fields
// are left unchanged.
type TestimonialUpdate struct {
	Name         *string             `json:"name"`
	Position     *string             `json:"position"`
	Company      *string             `json:"company"`
	Content      *string             `json:"content"`
	Rating       *int                `json:"rating"`
	Image        *string             `json:"image"`
	Status       *string             `json:"status"`
	Featured     *bool               `json:"featured"`
	PropertyID   *primitive.ObjectID `json:"propertyId"`
	Location     *string             `json:"location"`
	PurchaseDate *time.Time          `json:"purchaseDate"`
}

// TestimonialQuery holds list filters for testimonials
type TestimonialQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}
