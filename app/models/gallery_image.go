package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID          string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ImageURL    string     `gorm:"size:512;not null" json:"imageUrl"`
	Description Localized  `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Categories  []Category `gorm:"many2many:gallery_image_categories;" json:"categories"`

	// CreatedAt is the sort key for every gallery listing.
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return
}
