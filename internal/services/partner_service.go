package services

import (
	"context"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"github.com/amzproperties/amz-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartnerService handles developer/partner profiles
type PartnerService struct {
	partnerRepo repositories.PartnerRepository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo repositories.PartnerRepository) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
	}
}

func validatePartner(partner *models.Partner) error {
	if partner.Name == "" {
		return apperrors.NewValidation("name is required")
	}
	if partner.Status != "" && !models.IsValidPartnerStatus(partner.Status) {
		return apperrors.NewValidation("invalid partner status")
	}
	if partner.Rating < 0 || partner.Rating > 5 {
		return apperrors.NewValidation("rating must be between 0 and 5")
	}
	if partner.Contact.Email != "" && !utils.IsValidEmail(partner.Contact.Email) {
		return apperrors.NewValidation("invalid contact email")
	}
	return nil
}

// CreatePartner derives the slug from the name, applies defaults and
// persists the profile. Slug collisions fail with ErrConflict.
func (s *PartnerService) CreatePartner(ctx context.Context, partner *models.Partner) error {
	if err := validatePartner(partner); err != nil {
		return err
	}

	partner.Slug = utils.Slugify(partner.Name)
	if partner.Slug == "" {
		return apperrors.NewValidation("name must contain at least one letter or digit")
	}
	taken, err := s.partnerRepo.SlugExists(ctx, partner.Slug, primitive.NilObjectID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrConflict
	}

	if partner.Status == "" {
		partner.Status = models.PartnerStatusActive
	}
	if partner.Specialties == nil {
		partner.Specialties = []string{}
	}
	if partner.Projects == nil {
		partner.Projects = []models.PartnerProject{}
	}

	return s.partnerRepo.Create(ctx, partner)
}

// GetPartnerByID retrieves a profile by ID
func (s *PartnerService) GetPartnerByID(ctx context.Context, id primitive.ObjectID) (*models.Partner, error) {
	return s.partnerRepo.FindByID(ctx, id)
}

// GetPartnerBySlug retrieves a profile by slug
func (s *PartnerService) GetPartnerBySlug(ctx context.Context, slug string) (*models.Partner, error) {
	return s.partnerRepo.FindBySlug(ctx, slug)
}

// GetPartners retrieves a page of profiles with pagination metadata
func (s *PartnerService) GetPartners(ctx context.Context, query models.PartnerQuery) ([]*models.Partner, models.Pagination, error) {
	query.Page, query.Limit = models.NormalizePage(query.Page, query.Limit)
	partners, total, err := s.partnerRepo.Find(ctx, query)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return partners, models.NewPagination(query.Page, query.Limit, total), nil
}

// GetActivePartners retrieves a page of active profiles for the public site
func (s *PartnerService) GetActivePartners(ctx context.Context, query models.PartnerQuery) ([]*models.Partner, models.Pagination, error) {
	query.Status = models.PartnerStatusActive
	return s.GetPartners(ctx, query)
}

// UpdatePartner merges the provided fields into the existing profile and
// persists the result. Omitted fields keep their stored values; the slug is
// re-derived only when the name changes.
func (s *PartnerService) UpdatePartner(ctx context.Context, id primitive.ObjectID, upd *models.PartnerUpdate) (*models.Partner, error) {
	existing, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	partner := *existing
	if upd.Name != nil {
		partner.Name = *upd.Name
	}
	if upd.Logo != nil {
		partner.Logo = *upd.Logo
	}
	if upd.Description != nil {
		partner.Description = *upd.Description
	}
	if upd.Contact != nil {
		partner.Contact = *upd.Contact
	}
	if upd.Specialties != nil {
		partner.Specialties = *upd.Specialties
	}
	if upd.Projects != nil {
		partner.Projects = *upd.Projects
	}
	if upd.Rating != nil {
		partner.Rating = *upd.Rating
	}
	if upd.Status != nil {
		partner.Status = *upd.Status
	}
	if upd.Featured != nil {
		partner.Featured = *upd.Featured
	}
	if err = validatePartner(&partner); err != nil {
		return nil, err
	}

	if partner.Name != existing.Name {
		partner.Slug = utils.Slugify(partner.Name)
		if partner.Slug == "" {
			return nil, apperrors.NewValidation("name must contain at least one letter or digit")
		}
		taken, err := s.partnerRepo.SlugExists(ctx, partner.Slug, existing.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrConflict
		}
	}

	if err = s.partnerRepo.Update(ctx, &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

// DeletePartner removes a profile
func (s *PartnerService) DeletePartner(ctx context.Context, id primitive.ObjectID) error {
	return s.partnerRepo.Delete(ctx, id)
}
