package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/vengerka/cakemaster-api/app/helpers"
	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/vengerka/cakemaster-api/app/repositories"
	"github.com/vengerka/cakemaster-api/app/utils/pagination"
)

var ErrImageNotFound = errors.New("gallery image not found")

const (
	DefaultPageSize = 9
	MaxPageSize     = 50
)

type ImageInput struct {
	ImageURL    string           `json:"imageUrl"`
	CategoryIDs []string         `json:"categories"`
	Description models.Localized `json:"description"`
}

// PopulatedImage carries resolved category records instead of raw ids; ids
// that no longer resolve are dropped, never an error.
type PopulatedImage struct {
	ID          string            `json:"id"`
	ImageURL    string            `json:"imageUrl"`
	Description models.Localized  `json:"description"`
	Categories  []models.Category `json:"categories"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// PublicPage is the infinite-scroll response: NextCursor is present iff the
// page came back full.
type PublicPage struct {
	Images     []PopulatedImage `json:"images"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

// AdminPage backs the numbered pager: the count is exact over all matches.
type AdminPage struct {
	Images     []PopulatedImage `json:"images"`
	TotalCount int64            `json:"totalCount"`
}

type GalleryService struct {
	galleryRepo  repositories.GalleryRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	uploader     Uploader
}

func NewGalleryService(galleryRepo repositories.GalleryRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, uploader Uploader) *GalleryService {
	return &GalleryService{
		galleryRepo:  galleryRepo,
		categoryRepo: categoryRepo,
		uploader:     uploader,
	}
}

// Public serves one category for infinite scroll. An unknown category id
// yields an empty page, not an error.
func (s *GalleryService) Public(ctx context.Context, categoryID string, pageSize int, cursorToken string) (*PublicPage, error) {
	pageSize = clampPageSize(pageSize)

	var after *pagination.Cursor
	if cursorToken != "" {
		cursor, err := pagination.Decode(cursorToken)
		if err != nil {
			return nil, helpers.NewValidationError("cursor", err.Error())
		}
		after = cursor
	}

	var filter []string
	if categoryID != "" {
		filter = []string{categoryID}
	}
	images, err := s.galleryRepo.ListAfter(ctx, filter, pageSize, after)
	if err != nil {
		return nil, err
	}

	page := &PublicPage{Images: populateImages(images)}
	if len(images) == pageSize {
		last := images[len(images)-1]
		page.NextCursor = pagination.Cursor{CreatedAt: last.CreatedAt.UnixNano(), ID: last.ID}.Encode()
	}
	return page, nil
}

// Admin serves an any-of multi-category filter with a page-numbered view.
// An empty filter means unfiltered.
func (s *GalleryService) Admin(ctx context.Context, categoryIDs []string, page, pageSize int) (*AdminPage, error) {
	pageSize = clampPageSize(pageSize)
	if page < 1 {
		page = 1
	}

	total, err := s.galleryRepo.Count(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	images, err := s.galleryRepo.ListPage(ctx, categoryIDs, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	return &AdminPage{Images: populateImages(images), TotalCount: total}, nil
}

func (s *GalleryService) Create(ctx context.Context, input ImageInput) (*models.GalleryImage, error) {
	if input.ImageURL == "" {
		return nil, helpers.NewValidationError("imageUrl", "image is required")
	}
	if len(input.CategoryIDs) == 0 {
		return nil, helpers.NewValidationError("categories", "at least one category must be selected")
	}

	categories, err := s.resolveCategories(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	image := &models.GalleryImage{
		ImageURL:    input.ImageURL,
		Description: input.Description,
		Categories:  categories,
	}
	if err := s.galleryRepo.Create(ctx, image); err != nil {
		// The blob was uploaded in a prior step; it is now unreferenced and
		// is not retried or reconciled automatically.
		log.Printf("GalleryService.Create: metadata write failed, blob %s is orphaned: %v", input.ImageURL, err)
		return nil, err
	}
	return image, nil
}

// Update may replace the image: the new blob is uploaded by the caller
// beforehand, the row is updated, and only then is the old blob deleted.
func (s *GalleryService) Update(ctx context.Context, id string, input ImageInput) (*models.GalleryImage, error) {
	if len(input.CategoryIDs) == 0 {
		return nil, helpers.NewValidationError("categories", "at least one category must be selected")
	}

	image, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrImageNotFound
	}

	categories, err := s.resolveCategories(ctx, input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	oldImageURL := image.ImageURL
	if input.ImageURL != "" {
		image.ImageURL = input.ImageURL
	}
	image.Description = input.Description

	if err := s.galleryRepo.Update(ctx, image); err != nil {
		return nil, err
	}
	if err := s.galleryRepo.ReplaceCategories(ctx, image, categories); err != nil {
		return nil, err
	}

	if oldImageURL != "" && image.ImageURL != oldImageURL {
		if err := s.uploader.Delete(ctx, oldImageURL); err != nil {
			log.Printf("GalleryService.Update: failed to delete old image blob: %v", err)
		}
	}

	image.Categories = categories
	return image, nil
}

// Delete removes the image and its blob, and reports which page the admin
// view should display next, computed without re-querying the emptied page.
func (s *GalleryService) Delete(ctx context.Context, id string, page, itemsOnPage int) (int, error) {
	image, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return page, err
	}
	if image == nil {
		return page, ErrImageNotFound
	}

	if image.ImageURL != "" {
		if err := s.uploader.Delete(ctx, image.ImageURL); err != nil {
			log.Printf("GalleryService.Delete: failed to delete image blob: %v", err)
		}
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return page, err
	}
	return NextPageAfterDelete(page, itemsOnPage), nil
}

// NextPageAfterDelete steps back one page when the deleted item was the sole
// survivor of a page past the first, so the admin never lands on an empty
// page.
func NextPageAfterDelete(page, itemsOnPage int) int {
	if itemsOnPage <= 1 && page > 1 {
		return page - 1
	}
	if page < 1 {
		return 1
	}
	return page
}

func (s *GalleryService) resolveCategories(ctx context.Context, ids []string) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		category, err := s.categoryRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, helpers.NewValidationError("categories", "category "+id+" does not exist")
		}
		categories = append(categories, *category)
	}
	return categories, nil
}

func populateImages(images []models.GalleryImage) []PopulatedImage {
	populated := make([]PopulatedImage, 0, len(images))
	for _, image := range images {
		categories := image.Categories
		if categories == nil {
			categories = []models.Category{}
		}
		sort.Slice(categories, func(i, j int) bool {
			return categories[i].Position < categories[j].Position
		})
		populated = append(populated, PopulatedImage{
			ID:          image.ID,
			ImageURL:    image.ImageURL,
			Description: image.Description,
			Categories:  categories,
			CreatedAt:   image.CreatedAt,
		})
	}
	return populated
}

func clampPageSize(pageSize int) int {
	if pageSize <= 0 {
		return DefaultPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}
