package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	AccountID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	FamilyName string    `gorm:"not null"`
	GivenName  string    `gorm:"not null"`
	Phone      string    `gorm:"size:10"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}
