package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID      uuid.UUID `gorm:"type:uuid;index;not null"`
	SenderName  string    `gorm:"not null"`
	SenderPhone string    `gorm:"size:10;not null"`
	Message     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
