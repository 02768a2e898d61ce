package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"covoit/internal/models/db_models"
)

type ProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error)
	FindByAccountIDs(ctx context.Context, accountIDs []uuid.UUID) ([]db_models.Profile, error)
	Update(ctx context.Context, profile *db_models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (p *profileRepository) FindByAccountIDs(ctx context.Context, accountIDs []uuid.UUID) ([]db_models.Profile, error) {
	if len(accountIDs) == 0 {
		return []db_models.Profile{}, nil
	}
	var profiles []db_models.Profile
	if err := p.db.WithContext(ctx).Where("account_id IN ?", accountIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (p *profileRepository) Update(ctx context.Context, profile *db_models.Profile) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("account_id = ?", profile.AccountID).
		Updates(map[string]interface{}{
			"family_name": profile.FamilyName,
			"given_name":  profile.GivenName,
			"phone":       profile.Phone,
		}).Error
}
