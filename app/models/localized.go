package models

// Localized holds per-locale text. The storefront ships Czech and English;
// form payloads use the same {en, cs} shape.
type Localized struct {
	EN string `gorm:"size:1000" json:"en"`
	CS string `gorm:"size:1000" json:"cs"`
}
