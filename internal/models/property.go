package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property types
const (
	PropertyTypeExclusive = "exclusive"
	PropertyTypeOffPlan   = "off-plan"
	PropertyTypeVilla     = "villa"
	PropertyTypeApartment = "apartment"
	PropertyTypeTownhouse = "townhouse"
)

// Property statuses
const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusReserved  = "reserved"
)

// Property represents a real estate listing
type Property struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Location    string             `bson:"location" json:"location"`
	Type        string             `bson:"type" json:"type"`
	Bedrooms    int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int                `bson:"bathrooms" json:"bathrooms"`
	Area        float64            `bson:"area" json:"area"`
	Features    []string           `bson:"features" json:"features"`
	Status      string             `bson:"status" json:"status"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Developer   string             `bson:"developer,omitempty" json:"developer,omitempty"`
	YearBuilt   int                `bson:"yearBuilt,omitempty" json:"yearBuilt,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidPropertyType reports whether t is one of the allowed property types
func IsValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeExclusive, PropertyTypeOffPlan, PropertyTypeVilla, PropertyTypeApartment, PropertyTypeTownhouse:
		return true
	}
	return false
}

// IsValidPropertyStatus reports whether s is one of the allowed property statuses
func IsValidPropertyStatus(s string) bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusReserved:
		return true
	}
	return false
}

// PropertyUpdate carries a partial update of a listing. Nil fields are
// left unchanged.
type PropertyUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Location    *string   `json:"location"`
	Type        *string   `json:"type"`
	Bedrooms    *int      `json:"bedrooms"`
	Bathrooms   *int      `json:"bathrooms"`
	Area        *float64  `json:"area"`
	Features    *[]string `json:"features"`
	Status      *string   `json:"status"`
	Image       *string   `json:"image"`
	Developer   *string   `json:"developer"`
	YearBuilt   *int      `json:"yearBuilt"`
	Featured    *bool     `json:"featured"`
}

// PropertyQuery holds list filters for properties
type PropertyQuery struct {
	Page     int
	Limit    int
	Search   string
	Type     string
	Status   string
	Location string
	MinPrice float64
	MaxPrice float64
	Bedrooms int
	Featured *bool
}
