package models

import "time"

// BannerSettings is a singleton row toggling the seasonal storefront banners.
type BannerSettings struct {
	ID                  uint      `gorm:"primaryKey" json:"-"`
	ShowHalloweenBanner bool      `json:"showHalloweenBanner"`
	ShowChristmasBanner bool      `json:"showChristmasBanner"`
	UpdatedAt           time.Time `json:"-"`
}
