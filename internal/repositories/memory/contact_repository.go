package memory

import (
	"context"
	"sync"
	"time"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.ContactRepository = (*ContactRepository)(nil)

// ContactRepository is the in-memory ContactRepository
type ContactRepository struct {
	mu       sync.RWMutex
	contacts []*models.Contact
}

// NewContactRepository creates an empty in-memory ContactRepository
func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

// Create inserts a new contact submission
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	contact.ID = primitive.NewObjectID()
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	copied := *contact
	r.contacts = append(r.contacts, &copied)
	return nil
}

// FindByID finds a contact submission by ID
func (r *ContactRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, contact := range r.contacts {
		if contact.ID == id {
			copied := *contact
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Find returns a page of contact submissions plus the total count
func (r *ContactRepository) Find(ctx context.Context, query models.ContactQuery) ([]*models.Contact, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*models.Contact, 0)
	for i := len(r.contacts) - 1; i >= 0; i-- {
		contact := r.contacts[i]
		if query.Status != "" && query.Status != "all" && contact.Status != query.Status {
			continue
		}
		if query.InquiryType != "" && query.InquiryType != "all" && contact.InquiryType != query.InquiryType {
			continue
		}
		matched = append(matched, contact)
	}

	total := int64(len(matched))
	start, end := paginate(query.Page, query.Limit, len(matched))
	page := make([]*models.Contact, 0, end-start)
	for _, contact := range matched[start:end] {
		copied := *contact
		page = append(page, &copied)
	}
	return page, total, nil
}

// Update updates an existing contact submission
func (r *ContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.contacts {
		if existing.ID == contact.ID {
			contact.UpdatedAt = time.Now()
			copied := *contact
			r.contacts[i] = &copied
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Delete removes a contact submission by ID
func (r *ContactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, contact := range r.contacts {
		if contact.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Count returns the total number of contact submissions
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.contacts)), nil
}

// CountByStatus returns the number of submissions in the given workflow state
func (r *ContactRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, contact := range r.contacts {
		if contact.Status == status {
			count++
		}
	}
	return count, nil
}

// CountByInquiryType returns the number of submissions with the given inquiry type
func (r *ContactRepository) CountByInquiryType(ctx context.Context, inquiryType string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, contact := range r.contacts {
		if contact.InquiryType == inquiryType {
			count++
		}
	}
	return count, nil
}

// FindRecent returns the most recent submissions
func (r *ContactRepository) FindRecent(ctx context.Context, limit int) ([]*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recent := make([]*models.Contact, 0, limit)
	for i := len(r.contacts) - 1; i >= 0 && len(recent) < limit; i-- {
		copied := *r.contacts[i]
		recent = append(recent, &copied)
	}
	return recent, nil
}
