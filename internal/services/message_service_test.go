package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covoit/internal/models/request_models"
	"covoit/pkg/utils"
)

func TestSendMessage(t *testing.T) {
	f := newFixture()
	svc := NewMessageService(f.messages, f.trips)

	msg, err := svc.Send(context.Background(), f.cocodyTrip.ID.String(), request_models.ContactMessageRequest{
		Name:    " Awa ",
		Phone:   "01 02 03 04 05",
		Message: "Une place lundi ?",
	})

	require.NoError(t, err)
	assert.Equal(t, "Awa", msg.SenderName)
	assert.Equal(t, "0102030405", msg.SenderPhone)
	assert.Equal(t, f.cocodyTrip.ID.String(), msg.TripID)
	assert.Len(t, f.messages.msgs, 1)
}

func TestSendMessageValidation(t *testing.T) {
	f := newFixture()
	svc := NewMessageService(f.messages, f.trips)
	tripID := f.cocodyTrip.ID.String()

	_, err := svc.Send(context.Background(), tripID, request_models.ContactMessageRequest{Name: "Awa", Phone: "0102030405"})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	_, err = svc.Send(context.Background(), tripID, request_models.ContactMessageRequest{Name: "Awa", Phone: "01020", Message: "?"})
	assert.ErrorIs(t, err, utils.ErrInvalidPhone)

	_, err = svc.Send(context.Background(), uuid.NewString(), request_models.ContactMessageRequest{Name: "Awa", Phone: "0102030405", Message: "?"})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	assert.Empty(t, f.messages.msgs)
}

func TestListMessagesForTrip(t *testing.T) {
	f := newFixture()
	svc := NewMessageService(f.messages, f.trips)
	ctx := context.Background()
	tripID := f.cocodyTrip.ID.String()

	_, err := svc.Send(ctx, tripID, request_models.ContactMessageRequest{Name: "Awa", Phone: "0102030405", Message: "Bonjour"})
	require.NoError(t, err)

	msgs, err := svc.ListForTrip(ctx, sessionOf(f.user.ID, "user"), tripID)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	_, err = svc.ListForTrip(ctx, sessionOf(f.other.ID, "user"), tripID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	msgs, err = svc.ListForTrip(ctx, sessionOf(f.admin.ID, "admin"), tripID)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}
