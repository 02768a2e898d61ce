package services

import (
	"bytes"
	"context"
	"errors"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"covoit/internal/models/db_models"
	"covoit/internal/models/domain_models"
	"covoit/internal/models/response_models"
	"covoit/internal/repositories"
	"covoit/pkg/utils"
)

type AdminService interface {
	Stats(ctx context.Context) (*response_models.AdminStatsResponse, error)
	ListUsers(ctx context.Context) ([]response_models.AdminUserResponse, error)
	ToggleUserStatus(ctx context.Context, actor *utils.Session, userID string) (*response_models.AdminUserResponse, error)
	ListTrips(ctx context.Context) ([]response_models.AdminTripResponse, error)
	// ToggleTripStatus hides an active trip from the public listing, or
	// publishes a hidden one again.
	ToggleTripStatus(ctx context.Context, tripID string) (*response_models.AdminTripResponse, error)
	ExportTripsCSV(ctx context.Context) ([]byte, error)
	DeleteTrip(ctx context.Context, tripID string) error
	ListMessages(ctx context.Context) ([]response_models.AdminMessageResponse, error)
}

type adminService struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	tripRepo    repositories.TripRepository
	messageRepo repositories.MessageRepository
}

func NewAdminService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	tripRepo repositories.TripRepository,
	messageRepo repositories.MessageRepository,
) AdminService {
	return &adminService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		tripRepo:    tripRepo,
		messageRepo: messageRepo,
	}
}

func (s *adminService) Stats(ctx context.Context) (*response_models.AdminStatsResponse, error) {
	users, err := s.accountRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	trips, err := s.tripRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	messages, err := s.messageRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.AdminStatsResponse{Users: users, Trips: trips, Messages: messages}, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]response_models.AdminUserResponse, error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}
	profiles, err := profilesByAccount(ctx, s.profileRepo, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AdminUserResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAdminUser(a, profiles[a.ID]))
	}
	return out, nil
}

func (s *adminService) ToggleUserStatus(ctx context.Context, actor *utils.Session, userID string) (*response_models.AdminUserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}
	if actor != nil && actor.UserID == id {
		return nil, utils.ErrCannotDisableAdmin
	}

	account, err := s.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrUserNotFound
	}

	account.IsActive = !account.IsActive
	if err := s.accountRepo.SetActive(ctx, id, account.IsActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	logrus.WithFields(logrus.Fields{"account_id": id, "is_active": account.IsActive}).Info("account status changed")

	profile, err := s.profileRepo.FindByAccountID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	var p db_models.Profile
	if profile != nil {
		p = *profile
	}
	resp := toAdminUser(*account, p)
	return &resp, nil
}

// ListTrips joins every trip with its owner's name, newest first.
func (s *adminService) ListTrips(ctx context.Context) ([]response_models.AdminTripResponse, error) {
	trips, err := s.tripRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(trips))
	for _, t := range trips {
		ids = append(ids, t.OwnerID)
	}
	profiles, err := profilesByAccount(ctx, s.profileRepo, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AdminTripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toAdminTrip(t, profiles[t.OwnerID]))
	}
	return out, nil
}

func (s *adminService) ToggleTripStatus(ctx context.Context, tripID string) (*response_models.AdminTripResponse, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	trip.IsActive = !trip.IsActive
	if err := s.tripRepo.SetActive(ctx, id, trip.IsActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	logrus.WithFields(logrus.Fields{"trip_id": id, "is_active": trip.IsActive}).Info("trip status changed")

	profile, err := s.profileRepo.FindByAccountID(ctx, trip.OwnerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	var p db_models.Profile
	if profile != nil {
		p = *profile
	}
	resp := toAdminTrip(*trip, p)
	return &resp, nil
}

func (s *adminService) ExportTripsCSV(ctx context.Context) ([]byte, error) {
	trips, err := s.ListTrips(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]response_models.AdminTripCSVRow, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, response_models.AdminTripCSVRow{
			ID:             t.ID,
			Origin:         t.Origin,
			Destination:    t.Destination,
			OwnerName:      t.OwnerName,
			Days:           t.Days,
			SeatsAvailable: t.SeatsAvailable,
			PricePerSeat:   t.PricePerSeat,
			PublishedOn:    utils.FormatDateFR(t.CreatedAt),
		})
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(&rows, &buf); err != nil {
		logrus.WithError(err).Error("trip export failed")
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *adminService) DeleteTrip(ctx context.Context, tripID string) error {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return utils.ErrTripNotFound
	}
	return deleteTrip(ctx, s.tripRepo, id)
}

// ListMessages joins messages with their trip route and the trip owner.
func (s *adminService) ListMessages(ctx context.Context) ([]response_models.AdminMessageResponse, error) {
	msgs, err := s.messageRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	tripIDs := make([]uuid.UUID, 0, len(msgs))
	for _, m := range msgs {
		tripIDs = append(tripIDs, m.TripID)
	}
	trips, err := s.tripRepo.FindByIDs(ctx, tripIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	tripsByID := make(map[uuid.UUID]db_models.Trip, len(trips))
	ownerIDs := make([]uuid.UUID, 0, len(trips))
	for _, t := range trips {
		tripsByID[t.ID] = t
		ownerIDs = append(ownerIDs, t.OwnerID)
	}

	profiles, err := profilesByAccount(ctx, s.profileRepo, ownerIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AdminMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		row := response_models.AdminMessageResponse{ContactMessageResponse: toMessageResponse(m)}
		if t, ok := tripsByID[m.TripID]; ok {
			row.TripRoute = routeLabel(t)
			row.OwnerName = fullName(profiles[t.OwnerID])
		}
		out = append(out, row)
	}
	return out, nil
}

func toAdminTrip(t db_models.Trip, owner db_models.Profile) response_models.AdminTripResponse {
	d := toDomainTrip(t)
	return response_models.AdminTripResponse{
		ID:             d.ID,
		Origin:         t.Origin,
		Destination:    t.Destination,
		OwnerID:        d.OwnerID,
		OwnerName:      fullName(owner),
		Days:           domain_models.ShortDays(d.ActiveDays),
		SeatsAvailable: t.SeatsAvailable,
		PricePerSeat:   t.PricePerSeat,
		IsActive:       t.IsActive,
		CreatedAt:      t.CreatedAt,
	}
}

func toAdminUser(a db_models.Account, p db_models.Profile) response_models.AdminUserResponse {
	return response_models.AdminUserResponse{
		ID:         a.ID.String(),
		FamilyName: p.FamilyName,
		GivenName:  p.GivenName,
		Phone:      a.Phone,
		Role:       a.Role,
		IsActive:   a.IsActive,
		CreatedAt:  a.CreatedAt,
	}
}
