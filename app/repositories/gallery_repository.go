package repositories

import (
	"context"

	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/vengerka/cakemaster-api/app/utils/pagination"
	"gorm.io/gorm"
)

type GalleryRepositoryImpl interface {
	Create(ctx context.Context, image *models.GalleryImage) error
	GetByID(ctx context.Context, id string) (*models.GalleryImage, error)
	Update(ctx context.Context, image *models.GalleryImage) error
	ReplaceCategories(ctx context.Context, image *models.GalleryImage, categories []models.Category) error
	Delete(ctx context.Context, id string) error

	// ListAfter is the cursor-mode query primitive: filter by category
	// membership, newest first, resume after the cursor row.
	ListAfter(ctx context.Context, categoryIDs []string, limit int, after *pagination.Cursor) ([]models.GalleryImage, error)
	// ListPage serves the admin numbered pager.
	ListPage(ctx context.Context, categoryIDs []string, limit, offset int) ([]models.GalleryImage, error)
	Count(ctx context.Context, categoryIDs []string) (int64, error)
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepositoryImpl {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, image *models.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.WithContext(ctx).Preload("Categories").First(&image, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *galleryRepository) Update(ctx context.Context, image *models.GalleryImage) error {
	return r.db.WithContext(ctx).Omit("Categories").Save(image).Error
}

func (r *galleryRepository) ReplaceCategories(ctx context.Context, image *models.GalleryImage, categories []models.Category) error {
	return r.db.WithContext(ctx).Model(image).Association("Categories").Replace(categories)
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.GalleryImage{}, "id = ?", id).Error
}

// membershipScope restricts to images referencing any of the given live
// categories. An empty filter means unfiltered; a deleted or unknown
// category id matches nothing.
func (r *galleryRepository) membershipScope(ctx context.Context, categoryIDs []string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.GalleryImage{})
	if len(categoryIDs) > 0 {
		q = q.
			Joins("JOIN gallery_image_categories gic ON gic.gallery_image_id = gallery_images.id").
			Joins("JOIN categories c ON c.id = gic.category_id AND c.deleted_at IS NULL").
			Where("gic.category_id IN ?", categoryIDs).
			Distinct("gallery_images.*")
	}
	return q
}

func (r *galleryRepository) ListAfter(ctx context.Context, categoryIDs []string, limit int, after *pagination.Cursor) ([]models.GalleryImage, error) {
	var images []models.GalleryImage

	q := r.membershipScope(ctx, categoryIDs).
		Order("gallery_images.created_at DESC, gallery_images.id DESC").
		Limit(limit)

	if after != nil {
		// The id tie-break keeps the cursor stable for same-timestamp rows.
		q = q.Where(
			"gallery_images.created_at < ? OR (gallery_images.created_at = ? AND gallery_images.id < ?)",
			after.Time(), after.Time(), after.ID,
		)
	}

	err := q.Preload("Categories").Find(&images).Error
	return images, err
}

func (r *galleryRepository) ListPage(ctx context.Context, categoryIDs []string, limit, offset int) ([]models.GalleryImage, error) {
	var images []models.GalleryImage

	err := r.membershipScope(ctx, categoryIDs).
		Order("gallery_images.created_at DESC, gallery_images.id DESC").
		Limit(limit).
		Offset(offset).
		Preload("Categories").
		Find(&images).Error

	return images, err
}

func (r *galleryRepository) Count(ctx context.Context, categoryIDs []string) (int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&models.GalleryImage{})
	if len(categoryIDs) > 0 {
		q = q.
			Joins("JOIN gallery_image_categories gic ON gic.gallery_image_id = gallery_images.id").
			Joins("JOIN categories c ON c.id = gic.category_id AND c.deleted_at IS NULL").
			Where("gic.category_id IN ?", categoryIDs).
			Distinct("gallery_images.id")
	}
	err := q.Count(&total).Error
	return total, err
}
