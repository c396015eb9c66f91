package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/vengerka/cakemaster-api/app/repositories"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryInput struct {
	Name        models.Localized `json:"name"`
	Description models.Localized `json:"description"`
	ImageURL    string           `json:"imageUrl"`
}

// CatalogService maintains the dense display order of categories and the
// image cascade on edit/delete.
type CatalogService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	uploader     Uploader
}

func NewCatalogService(categoryRepo repositories.CategoryRepositoryImpl, uploader Uploader) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		uploader:     uploader,
	}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *CatalogService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update replaces fields; when the image changed the old blob is removed only
// after the row update, so a failed update never orphans the referenced blob.
func (s *CatalogService) Update(ctx context.Context, id string, input CategoryInput) (*models.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	oldImageURL := category.ImageURL
	category.Name = input.Name
	category.Description = input.Description
	if input.ImageURL != "" {
		category.ImageURL = input.ImageURL
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	if oldImageURL != "" && category.ImageURL != oldImageURL {
		if err := s.uploader.Delete(ctx, oldImageURL); err != nil {
			log.Printf("CatalogService.Update: failed to delete old category image: %v", err)
		}
	}
	return category, nil
}

// Delete removes the category and its image. Remaining categories keep their
// positions; gaps are resolved by the next Reorder.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if category.ImageURL != "" {
		if err := s.uploader.Delete(ctx, category.ImageURL); err != nil {
			log.Printf("CatalogService.Delete: failed to delete category image: %v", err)
		}
	}

	return s.categoryRepo.Delete(ctx, id)
}

// Reorder expects the full ordered id set, as produced by the admin
// drag-and-drop; partial sequences would corrupt density.
func (s *CatalogService) Reorder(ctx context.Context, orderedIDs []string) error {
	if len(orderedIDs) == 0 {
		return helpers.NewValidationError("ids", "reorder sequence must not be empty")
	}
	return s.categoryRepo.Reorder(ctx, orderedIDs)
}

func validateCategoryInput(input CategoryInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(input.Name.EN) == "" {
		fields["name.en"] = "English name is required."
	}
	if strings.TrimSpace(input.Name.CS) == "" {
		fields["name.cs"] = "Czech name is required."
	}
	if len(fields) > 0 {
		return &helpers.ValidationError{Fields: fields}
	}
	return nil
}
