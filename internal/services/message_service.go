package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"covoit/internal/models/db_models"
	"covoit/internal/models/request_models"
	"covoit/internal/models/response_models"
	"covoit/internal/observability"
	"covoit/internal/repositories"
	"covoit/pkg/utils"
)

type MessageService interface {
	// Send stores a message to the owner of tripID. No account is needed.
	Send(ctx context.Context, tripID string, request request_models.ContactMessageRequest) (*response_models.ContactMessageResponse, error)
	ListForTrip(ctx context.Context, session *utils.Session, tripID string) ([]response_models.ContactMessageResponse, error)
}

type messageService struct {
	messageRepo repositories.MessageRepository
	tripRepo    repositories.TripRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, tripRepo repositories.TripRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		tripRepo:    tripRepo,
	}
}

func (m *messageService) Send(ctx context.Context, tripID string, request request_models.ContactMessageRequest) (*response_models.ContactMessageResponse, error) {
	name := strings.TrimSpace(request.Name)
	text := strings.TrimSpace(request.Message)
	if name == "" || strings.TrimSpace(request.Phone) == "" || text == "" {
		return nil, utils.ErrMissingFields
	}
	phone, ok := utils.NormalizePhone(request.Phone)
	if !ok {
		return nil, utils.ErrInvalidPhone
	}

	trip, err := m.lookupTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	msg := &db_models.ContactMessage{
		TripID:      trip.ID,
		SenderName:  name,
		SenderPhone: phone,
		Message:     text,
	}
	if err := m.messageRepo.Create(ctx, msg); err != nil {
		logrus.WithError(err).Error("message insert failed")
		return nil, utils.ErrDatabaseError
	}

	observability.ContactMessagesTotal.Inc()
	logrus.WithField("trip_id", trip.ID).Info("contact message sent")

	resp := toMessageResponse(*msg)
	return &resp, nil
}

func (m *messageService) ListForTrip(ctx context.Context, session *utils.Session, tripID string) ([]response_models.ContactMessageResponse, error) {
	if session == nil {
		return nil, utils.ErrUnauthorized
	}

	trip, err := m.lookupTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != session.UserID && !session.IsAdmin() {
		return nil, utils.ErrForbidden
	}

	msgs, err := m.messageRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ContactMessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, toMessageResponse(msg))
	}
	return out, nil
}

func (m *messageService) lookupTrip(ctx context.Context, tripID string) (*db_models.Trip, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}
	trip, err := m.tripRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}
