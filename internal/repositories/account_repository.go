package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"covoit/internal/models/db_models"
)

type AccountRepository interface {
	// CreateWithProfile inserts both rows in one transaction.
	CreateWithProfile(ctx context.Context, account *db_models.Account, profile *db_models.Profile) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByPhone(ctx context.Context, phone string) (*db_models.Account, error)
	ListAll(ctx context.Context) ([]db_models.Account, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Count(ctx context.Context) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) CreateWithProfile(ctx context.Context, account *db_models.Account, profile *db_models.Profile) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		profile.AccountID = account.ID
		return tx.Create(profile).Error
	})
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByPhone(ctx context.Context, phone string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "phone = ?", phone).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	if err := a.db.WithContext(ctx).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *accountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *accountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := a.db.WithContext(ctx).Model(&db_models.Account{}).Count(&n).Error
	return n, err
}
