package services

import (
	"context"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/models"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyService handles property listings
type PropertyService struct {
	propertyRepo repositories.PropertyRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
	}
}

func validateProperty(property *models.Property) error {
	if property.Title == "" {
		return apperrors.NewValidation("title is required")
	}
	if property.Location == "" {
		return apperrors.NewValidation("location is required")
	}
	if property.Price < 0 {
		return apperrors.NewValidation("price must not be negative")
	}
	if property.Type != "" && !models.IsValidPropertyType(property.Type) {
		return apperrors.NewValidation("invalid property type")
	}
	if property.Status != "" && !models.IsValidPropertyStatus(property.Status) {
		return apperrors.NewValidation("invalid property status")
	}
	return nil
}

// CreateProperty validates and persists a new listing
func (s *PropertyService) CreateProperty(ctx context.Context, property *models.Property) error {
	if err := validateProperty(property); err != nil {
		return err
	}
	if property.Type == "" {
		property.Type = models.PropertyTypeApartment
	}
	if property.Status == "" {
		property.Status = models.PropertyStatusAvailable
	}
	if property.Features == nil {
		property.Features = []string{}
	}
	return s.propertyRepo.Create(ctx, property)
}

// GetPropertyByID retrieves a listing by ID
func (s *PropertyService) GetPropertyByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	return s.propertyRepo.FindByID(ctx, id)
}

// GetProperties retrieves a page of listings with pagination metadata
func (s *PropertyService) GetProperties(ctx context.Context, query models.PropertyQuery) ([]*models.Property, models.Pagination, error) {
	query.Page, query.Limit = models.NormalizePage(query.Page, query.Limit)
	properties, total, err := s.propertyRepo.Find(ctx, query)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return properties, models.NewPagination(query.Page, query.Limit, total), nil
}

// GetFeaturedProperties retrieves the newest featured listings
func (s *PropertyService) GetFeaturedProperties(ctx context.Context, limit int) ([]*models.Property, error) {
	if limit < 1 || limit > 50 {
		limit = 6
	}
	return s.propertyRepo.FindFeatured(ctx, limit)
}

// UpdateProperty merges the provided fields into the existing listing and
// persists the result. Omitted fields keep their stored values.
func (s *PropertyService) UpdateProperty(ctx context.Context, id primitive.ObjectID, upd *models.PropertyUpdate) (*models.Property, error) {
	existing, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	property := *existing
	if upd.Title != nil {
		property.Title = *upd.Title
	}
	if upd.Description != nil {
		property.Description = *upd.Description
	}
	if upd.Price != nil {
		property.Price = *upd.Price
	}
	if upd.Location != nil {
		property.Location = *upd.Location
	}
	if upd.Type != nil {
		property.Type = *upd.Type
	}
	if upd.Bedrooms != nil {
		property.Bedrooms = *upd.Bedrooms
	}
	if upd.Bathrooms != nil {
		property.Bathrooms = *upd.Bathrooms
	}
	if upd.Area != nil {
		property.Area = *upd.Area
	}
	if upd.Features != nil {
		property.Features = *upd.Features
	}
	if upd.Status != nil {
		property.Status = *upd.Status
	}
	if upd.Image != nil {
		property.Image = *upd.Image
	}
	if upd.Developer != nil {
		property.Developer = *upd.Developer
	}
	if upd.YearBuilt != nil {
		property.YearBuilt = *upd.YearBuilt
	}
	if upd.Featured != nil {
		property.Featured = *upd.Featured
	}
	if err = validateProperty(&property); err != nil {
		return nil, err
	}

	if err = s.propertyRepo.Update(ctx, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// DeleteProperty removes a listing
func (s *PropertyService) DeleteProperty(ctx context.Context, id primitive.ObjectID) error {
	return s.propertyRepo.Delete(ctx, id)
}
