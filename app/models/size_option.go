package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SizeOption feeds the fast-order size dropdown. Seeded, admin-invisible.
type SizeOption struct {
	ID    string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Label string          `gorm:"size:255;not null" json:"label"`
	Price decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
}

func (s *SizeOption) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
