package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"covoit/internal/models/db_models"
	"covoit/internal/models/domain_models"
	"covoit/internal/models/request_models"
	"covoit/internal/models/response_models"
	"covoit/internal/observability"
	"covoit/internal/repositories"
	"covoit/internal/search"
	"covoit/pkg/utils"
)

const noWaypoint = "_none"

type TripService interface {
	// Search loads every active trip and narrows it down with criteria.
	Search(ctx context.Context, criteria search.Criteria) (*response_models.TripSearchResponse, error)
	GetTrip(ctx context.Context, id string) (*response_models.TripDetailResponse, error)
	Publish(ctx context.Context, session *utils.Session, request request_models.PublishTripRequest) (*response_models.TripCardResponse, error)
	ListMine(ctx context.Context, session *utils.Session) ([]response_models.TripCardResponse, error)
	Delete(ctx context.Context, session *utils.Session, id string) error
}

type tripService struct {
	tripRepo    repositories.TripRepository
	profileRepo repositories.ProfileRepository
}

func NewTripService(tripRepo repositories.TripRepository, profileRepo repositories.ProfileRepository) TripService {
	return &tripService{
		tripRepo:    tripRepo,
		profileRepo: profileRepo,
	}
}

func (s *tripService) Search(ctx context.Context, criteria search.Criteria) (*response_models.TripSearchResponse, error) {
	records, err := s.tripRepo.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("listing trips failed")
		return nil, utils.ErrDatabaseError
	}

	working := make([]domain_models.Trip, 0, len(records))
	for _, r := range records {
		working = append(working, toDomainTrip(r))
	}

	matched := search.Filter(working, criteria)
	observability.TripSearchResults.Observe(float64(len(matched)))

	cards, err := s.cards(ctx, matched)
	if err != nil {
		return nil, err
	}

	return &response_models.TripSearchResponse{
		Count: len(cards),
		Query: criteria.Query().Encode(),
		Trips: cards,
	}, nil
}

func (s *tripService) GetTrip(ctx context.Context, id string) (*response_models.TripDetailResponse, error) {
	trip, err := s.findTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	cards, err := s.cards(ctx, []domain_models.Trip{toDomainTrip(*trip)})
	if err != nil {
		return nil, err
	}

	days := make([]domain_models.Weekday, 0, len(trip.ActiveDays))
	for _, d := range trip.ActiveDays {
		days = append(days, domain_models.Weekday(d))
	}

	return &response_models.TripDetailResponse{
		TripCardResponse: cards[0],
		DayLabels:        domain_models.WeekdayLabels(days),
	}, nil
}

func (s *tripService) Publish(ctx context.Context, session *utils.Session, request request_models.PublishTripRequest) (*response_models.TripCardResponse, error) {
	if session == nil {
		return nil, utils.ErrUnauthorized
	}

	trip, err := newTripFromRequest(request)
	if err != nil {
		return nil, err
	}
	trip.OwnerID = session.UserID

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		logrus.WithError(err).Error("trip insert failed")
		return nil, utils.ErrDatabaseError
	}

	observability.TripsPublishedTotal.Inc()
	logrus.WithFields(logrus.Fields{
		"trip_id":  trip.ID,
		"owner_id": trip.OwnerID,
		"route":    routeLabel(*trip),
	}).Info("trip published")

	cards, err := s.cards(ctx, []domain_models.Trip{toDomainTrip(*trip)})
	if err != nil {
		return nil, err
	}
	return &cards[0], nil
}

func (s *tripService) ListMine(ctx context.Context, session *utils.Session) ([]response_models.TripCardResponse, error) {
	if session == nil {
		return nil, utils.ErrUnauthorized
	}

	records, err := s.tripRepo.ListByOwner(ctx, session.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	trips := make([]domain_models.Trip, 0, len(records))
	for _, r := range records {
		trips = append(trips, toDomainTrip(r))
	}
	return s.cards(ctx, trips)
}

// Delete removes a trip on behalf of its owner or an administrator.
func (s *tripService) Delete(ctx context.Context, session *utils.Session, id string) error {
	if session == nil {
		return utils.ErrUnauthorized
	}

	trip, err := s.findTrip(ctx, id)
	if err != nil {
		return err
	}
	if trip.OwnerID != session.UserID && !session.IsAdmin() {
		return utils.ErrForbidden
	}

	return deleteTrip(ctx, s.tripRepo, trip.ID)
}

func (s *tripService) findTrip(ctx context.Context, id string) (*db_models.Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

// cards fills the owner summaries and renders trips in order.
func (s *tripService) cards(ctx context.Context, trips []domain_models.Trip) ([]response_models.TripCardResponse, error) {
	ownerIDs := make([]uuid.UUID, 0, len(trips))
	for _, t := range trips {
		if id, err := uuid.Parse(t.OwnerID); err == nil {
			ownerIDs = append(ownerIDs, id)
		}
	}

	profiles, err := profilesByAccount(ctx, s.profileRepo, ownerIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripCardResponse, 0, len(trips))
	for _, t := range trips {
		if id, err := uuid.Parse(t.OwnerID); err == nil {
			if p, ok := profiles[id]; ok {
				t.OwnerSummary = displayName(p)
			}
		}
		out = append(out, toTripCard(t))
	}
	return out, nil
}

func deleteTrip(ctx context.Context, repo repositories.TripRepository, id uuid.UUID) error {
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}
	observability.TripsDeletedTotal.Inc()
	logrus.WithField("trip_id", id).Info("trip deleted")
	return nil
}

// newTripFromRequest checks what binding cannot: the "_all" and "_none"
// sentinels and district and weekday membership.
func newTripFromRequest(request request_models.PublishTripRequest) (*db_models.Trip, error) {
	origin := strings.TrimSpace(request.Origin)
	destination := strings.TrimSpace(request.Destination)
	if origin == "" || destination == "" || origin == search.AnyDistrict || destination == search.AnyDistrict {
		return nil, utils.ErrMissingRoute
	}
	if !domain_models.IsDistrict(origin) || !domain_models.IsDistrict(destination) {
		return nil, utils.ErrUnknownDistrict
	}

	days := domain_models.ParseWeekdays(request.ActiveDays)
	if len(days) == 0 {
		return nil, utils.ErrNoActiveDay
	}

	waypoints := make([]string, 0, len(request.Waypoints))
	for _, w := range request.Waypoints {
		w = strings.TrimSpace(w)
		if w == "" || w == noWaypoint {
			continue
		}
		if !domain_models.IsDistrict(w) {
			return nil, utils.ErrUnknownDistrict
		}
		waypoints = append(waypoints, w)
	}

	activeDays := make([]string, 0, len(days))
	for _, d := range days {
		activeDays = append(activeDays, string(d))
	}

	trip := &db_models.Trip{
		Origin:         origin,
		Destination:    destination,
		ActiveDays:     activeDays,
		SeatsAvailable: request.SeatsAvailable,
		PricePerSeat:   request.PricePerSeat,
		IsActive:       true,
	}
	trip.SetWaypoints(waypoints)
	if desc := strings.TrimSpace(request.Description); desc != "" {
		trip.Description = &desc
	}
	return trip, nil
}
