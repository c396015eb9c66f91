package repositories

import (
	"context"

	"github.com/vengerka/cakemaster-api/app/models"
	"gorm.io/gorm"
)

type SizeRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.SizeOption, error)
}

type sizeRepository struct {
	db *gorm.DB
}

func NewSizeRepository(db *gorm.DB) SizeRepositoryImpl {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) GetAll(ctx context.Context) ([]models.SizeOption, error) {
	var sizes []models.SizeOption
	err := r.db.WithContext(ctx).Order("label ASC").Find(&sizes).Error
	if err != nil {
		return nil, err
	}
	return sizes, nil
}
