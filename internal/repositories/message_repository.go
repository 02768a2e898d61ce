package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"covoit/internal/models/db_models"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *db_models.ContactMessage) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.ContactMessage, error)
	ListAll(ctx context.Context) ([]db_models.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (m *messageRepository) Create(ctx context.Context, msg *db_models.ContactMessage) error {
	return m.db.WithContext(ctx).Create(msg).Error
}

func (m *messageRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.ContactMessage, error) {
	var msgs []db_models.ContactMessage
	err := m.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (m *messageRepository) ListAll(ctx context.Context) ([]db_models.ContactMessage, error) {
	var msgs []db_models.ContactMessage
	if err := m.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (m *messageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := m.db.WithContext(ctx).Model(&db_models.ContactMessage{}).Count(&n).Error
	return n, err
}
