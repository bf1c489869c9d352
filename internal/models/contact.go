package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact statuses. Workflow is new -> contacted -> resolved.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusResolved  = "resolved"
)

// Contact inquiry types
const (
	InquiryTypeGeneral    = "general"
	InquiryTypeProperty   = "property"
	InquiryTypeInvestment = "investment"
	InquiryTypeRental     = "rental"
	InquiryTypeOther      = "other"
)

// Contact represents a contact-form submission
type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject     string             `bson:"subject" json:"subject"`
	Message     string             `bson:"message" json:"message"`
	PropertyID  primitive.ObjectID `bson:"propertyId,omitempty" json:"propertyId,omitempty"`
	InquiryType string             `bson:"inquiryType" json:"inquiryType"`
	Status      string             `bson:"status" json:"status"`
	IsEdited    bool               `bson:"isEdited" json:"isEdited"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidContactStatus reports whether s is one of the allowed contact statuses
func IsValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusResolved:
		return true
	}
	return false
}

// IsValidInquiryType reports whether t is one of the allowed inquiry types
func IsValidInquiryType(t string) bool {
	switch t {
	case InquiryTypeGeneral, InquiryTypeProperty, InquiryTypeInvestment, InquiryTypeRental, InquiryTypeOther:
		return true
	}
	return false
}

// ContactRequest is the payload for the public POST /api/contact endpoint
type ContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Message     string `json:"message" binding:"required"`
	PropertyID  string `json:"propertyId"`
	InquiryType string `json:"inquiryType"`
}

// ContactQuery holds list filters for contact submissions
type ContactQuery struct {
	Page        int
	Limit       int
	Status      string
	InquiryType string
}

// ContactStats aggregates submissions by workflow state and inquiry type
type ContactStats struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"byStatus"`
	ByInquiryType map[string]int64 `json:"byInquiryType"`
	Recent        []*Contact       `json:"recent"`
}
