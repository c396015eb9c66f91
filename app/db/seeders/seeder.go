package seeders

import (
	"github.com/shopspring/decimal"
	"github.com/vengerka/cakemaster-api/app/models"
	"gorm.io/gorm"
)

// DBSeed fills the lookup tables the storefront expects: the bento size
// options, the singleton banner settings row and a starter set of gallery
// categories. Seeding is idempotent, existing rows are left alone.
func DBSeed(db *gorm.DB) error {
	sizes := []models.SizeOption{
		{ID: "two", Label: "2 patra", Price: decimal.NewFromInt(800)},
		{ID: "three", Label: "3 patra", Price: decimal.NewFromInt(900)},
	}
	for _, size := range sizes {
		if err := db.FirstOrCreate(&size, "id = ?", size.ID).Error; err != nil {
			return err
		}
	}

	banners := models.BannerSettings{ID: 1}
	if err := db.FirstOrCreate(&banners, "id = ?", banners.ID).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{
			Name:        models.Localized{EN: "Birthday cakes", CS: "Narozeninové dorty"},
			Description: models.Localized{EN: "Custom birthday cakes", CS: "Narozeninové dorty na zakázku"},
			Position:    0,
		},
		{
			Name:        models.Localized{EN: "Wedding cakes", CS: "Svatební dorty"},
			Description: models.Localized{EN: "Tiered wedding cakes", CS: "Patrové svatební dorty"},
			Position:    1,
		},
		{
			Name:        models.Localized{EN: "Bento cakes", CS: "Bento dorty"},
			Description: models.Localized{EN: "Small lunchbox cakes", CS: "Malé dorty v krabičce"},
			Position:    2,
		},
	}
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		for i := range categories {
			if err := db.Create(&categories[i]).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
