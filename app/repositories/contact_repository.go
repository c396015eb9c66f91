package repositories

import (
	"context"

	"github.com/vengerka/cakemaster-api/app/models"
	"gorm.io/gorm"
)

type ContactRepositoryImpl interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepositoryImpl {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
