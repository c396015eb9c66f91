package repositories

import (
	"context"

	"github.com/vengerka/cakemaster-api/app/models"
	"gorm.io/gorm"
)

const bannerSettingsID = 1

type SettingsRepositoryImpl interface {
	GetBanners(ctx context.Context) (*models.BannerSettings, error)
	UpdateBanners(ctx context.Context, settings *models.BannerSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepositoryImpl {
	return &settingsRepository{db: db}
}

// GetBanners returns defaults when the row was never written.
func (r *settingsRepository) GetBanners(ctx context.Context) (*models.BannerSettings, error) {
	var settings models.BannerSettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", bannerSettingsID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &models.BannerSettings{ID: bannerSettingsID}, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) UpdateBanners(ctx context.Context, settings *models.BannerSettings) error {
	settings.ID = bannerSettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
