package infra

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"covoit/internal/logger"
	"covoit/internal/models/db_models"
)

func InitPostgresql(dsn string, autoMigrate bool) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.GormLogger(),
		TranslateError: true,
	})
	if err != nil {
		logrus.WithError(err).Error("Error connecting to database")
		return nil, err
	}

	if autoMigrate {
		if err := Migrate(connectionPool); err != nil {
			logrus.WithError(err).Error("Auto-migration failed")
			return nil, err
		}
	}

	return connectionPool, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Profile{},
		&db_models.Trip{},
		&db_models.ContactMessage{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("PostgreSQL database connection closed successfully")
	}
}
