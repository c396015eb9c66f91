package migrations

import (
	"github.com/vengerka/cakemaster-api/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.GalleryImage{},
		&models.Order{},
		&models.Course{},
		&models.SizeOption{},
		&models.ContactMessage{},
		&models.BannerSettings{},
	)
}
