package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        Localized `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description Localized `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"imageUrl,omitempty"`

	// Position is the display rank. Readers depend only on relative order;
	// density is restored by the next reorder.
	Position int `gorm:"not null;index" json:"order"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
