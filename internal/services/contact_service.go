package services

import (
	"context"
	"log"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"github.com/amzproperties/amz-backend/internal/utils"
	"github.com/amzproperties/amz-backend/pkg/mailgateway"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactService handles contact form intake and the admin inbox workflow
type ContactService struct {
	contactRepo repositories.ContactRepository
	mail        mailgateway.Gateway
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.ContactRepository, mail mailgateway.Gateway) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		mail:        mail,
	}
}

// SubmitContact validates and persists a public contact submission, then
// sends the notification and confirmation emails in the background. A mail
// failure never fails the submission.
func (s *ContactService) SubmitContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	if req.Name == "" {
		return nil, apperrors.NewValidation("name is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidation("invalid email address")
	}
	if req.Message == "" {
		return nil, apperrors.NewValidation("message is required")
	}
	if req.InquiryType != "" && !models.IsValidInquiryType(req.InquiryType) {
		return nil, apperrors.NewValidation("invalid inquiry type")
	}

	contact := &models.Contact{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		InquiryType: req.InquiryType,
		Status:      models.ContactStatusNew,
	}
	if contact.Subject == "" {
		contact.Subject = "General Inquiry"
	}
	if contact.InquiryType == "" {
		contact.InquiryType = models.InquiryTypeGeneral
	}
	if req.PropertyID != "" {
		propertyID, err := primitive.ObjectIDFromHex(req.PropertyID)
		if err != nil {
			return nil, apperrors.NewValidation("invalid property id")
		}
		contact.PropertyID = propertyID
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	go func(c models.Contact) {
		if err := s.mail.SendContactNotification(&c); err != nil {
			log.Printf("contact notification email failed: %v", err)
		}
		if err := s.mail.SendContactConfirmation(&c); err != nil {
			log.Printf("contact confirmation email failed: %v", err)
		}
	}(*contact)

	return contact, nil
}

// GetContactByID retrieves a submission by ID
func (s *ContactService) GetContactByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	return s.contactRepo.FindByID(ctx, id)
}

// GetContacts retrieves a page of submissions with pagination metadata
func (s *ContactService) GetContacts(ctx context.Context, query models.ContactQuery) ([]*models.Contact, models.Pagination, error) {
	query.Page, query.Limit = models.NormalizePage(query.Page, query.Limit)
	contacts, total, err := s.contactRepo.Find(ctx, query)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return contacts, models.NewPagination(query.Page, query.Limit, total), nil
}

// UpdateStatus moves a submission through the new -> contacted -> resolved
// workflow. Any known status may be set; unknown values are rejected.
func (s *ContactService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error) {
	if !models.IsValidContactStatus(status) {
		return nil, apperrors.NewValidation("invalid contact status")
	}
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contact.Status = status
	if err = s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// UpdateMessage edits a submission's message and marks it edited
func (s *ContactService) UpdateMessage(ctx context.Context, id primitive.ObjectID, message string) (*models.Contact, error) {
	if message == "" {
		return nil, apperrors.NewValidation("message is required")
	}
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contact.Message = message
	contact.IsEdited = true
	if err = s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// DeleteContact removes a submission
func (s *ContactService) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	return s.contactRepo.Delete(ctx, id)
}

// GetStats aggregates submissions by workflow state and inquiry type
func (s *ContactService) GetStats(ctx context.Context) (*models.ContactStats, error) {
	total, err := s.contactRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64)
	for _, status := range []string{models.ContactStatusNew, models.ContactStatusContacted, models.ContactStatusResolved} {
		count, err := s.contactRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		byStatus[status] = count
	}

	byInquiryType := make(map[string]int64)
	for _, inquiryType := range []string{
		models.InquiryTypeGeneral,
		models.InquiryTypeProperty,
		models.InquiryTypeInvestment,
		models.InquiryTypeRental,
		models.InquiryTypeOther,
	} {
		count, err := s.contactRepo.CountByInquiryType(ctx, inquiryType)
		if err != nil {
			return nil, err
		}
		byInquiryType[inquiryType] = count
	}

	recent, err := s.contactRepo.FindRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &models.ContactStats{
		Total:         total,
		ByStatus:      byStatus,
		ByInquiryType: byInquiryType,
		Recent:        recent,
	}, nil
}
