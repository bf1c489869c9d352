package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partner statuses
const (
	PartnerStatusActive   = "active"
	PartnerStatusInactive = "inactive"
)

// PartnerContact holds a partner's contact details
type PartnerContact struct {
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// PartnerProject is a development project embedded in a partner profile.
// Projects have no identity of their own beyond their position in the array.
type PartnerProject struct {
	Title    string `bson:"title" json:"title"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Status   string `bson:"status,omitempty" json:"status,omitempty"`
	Year     int    `bson:"year,omitempty" json:"year,omitempty"`
}

// Partner represents a developer/partner profile
type Partner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Contact     PartnerContact     `bson:"contact,omitempty" json:"contact,omitempty"`
	Specialties []string           `bson:"specialties" json:"specialties"`
	Projects    []PartnerProject   `bson:"projects" json:"projects"`
	Rating      float64            `bson:"rating" json:"rating"`
	Status      string             `bson:"status" json:"status"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidPartnerStatus reports whether s is one of the allowed partner statuses
func IsValidPartnerStatus(s string) bool {
	return s == PartnerStatusActive || s == PartnerStatusInactive
}

// PartnerUpdate carries a partial update of a profile. Nil fields are left
// unchanged; contact replaces the whole sub-document when provided.
type PartnerUpdate struct {
	Name        *string           `json:"name"`
	Logo        *string           `json:"logo"`
	Description *string           `json:"description"`
	Contact     *PartnerContact   `json:"contact"`
	Specialties *[]string         `json:"specialties"`
	Projects    *[]PartnerProject `json:"projects"`
	Rating      *float64          `json:"rating"`
	Status      *string           `json:"status"`
	Featured    *bool             `json:"featured"`
}

// PartnerQuery holds list filters for partners
type PartnerQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}
