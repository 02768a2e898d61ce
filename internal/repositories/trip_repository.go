package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"covoit/internal/models/db_models"
)

// TripRepository is the trip record set. Listings are newest first.
type TripRepository interface {
	ListActive(ctx context.Context) ([]db_models.Trip, error)
	ListAll(ctx context.Context) ([]db_models.Trip, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Trip, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Trip, error)
	Create(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Count(ctx context.Context) (int64, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) ListActive(ctx context.Context) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) ListAll(ctx context.Context) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

// FindByIDs includes soft-deleted trips so old messages keep their route.
func (r *tripRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Trip, error) {
	if len(ids) == 0 {
		return []db_models.Trip{}, nil
	}
	var trips []db_models.Trip
	if err := r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetActive hides or restores a trip in the public listing.
func (r *tripRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
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

func (r *tripRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Trip{}).Count(&n).Error
	return n, err
}
