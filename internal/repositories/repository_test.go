package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestAccountFindByPhoneNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE phone = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "phone"}))

	acc, err := NewAccountRepository(db).FindByPhone(context.Background(), "0712345678")

	require.NoError(t, err)
	assert.Nil(t, acc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountFindByPhone(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE phone = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "phone", "password_hash", "role", "is_active"}).
			AddRow(id.String(), "0712345678", "hash", "admin", true))

	acc, err := NewAccountRepository(db).FindByPhone(context.Background(), "0712345678")

	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, id, acc.ID)
	assert.Equal(t, "admin", acc.Role)
	assert.True(t, acc.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountSetActiveUnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "accounts" SET "is_active"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewAccountRepository(db).SetActive(context.Background(), uuid.New(), false)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripListActive(t *testing.T) {
	db, mock := newMockDB(t)
	first, second := uuid.New(), uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "trips" WHERE is_active = \$1 AND "trips"."deleted_at" IS NULL ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "origin", "destination", "waypoint1", "active_days", "seats_available", "price_per_seat", "is_active"}).
			AddRow(first.String(), now, "Cocody", "Plateau", "Adjamé", "{lundi,mardi}", 3, 500, true).
			AddRow(second.String(), now.Add(-time.Hour), "Yopougon", "Cocody", nil, "{lundi}", 2, 300, true))

	trips, err := NewTripRepository(db).ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, first, trips[0].ID)
	assert.Equal(t, []string{"lundi", "mardi"}, []string(trips[0].ActiveDays))
	assert.Equal(t, []string{"Adjamé"}, trips[0].Waypoints())
	assert.Empty(t, trips[1].Waypoints())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "trips" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	trip, err := NewTripRepository(db).FindByID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, trip)
}

func TestTripDeleteIsSoft(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "trips" SET "deleted_at"=\$1 WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewTripRepository(db).Delete(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "trips" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewTripRepository(db).Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTripSetActive(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "trips" SET "is_active"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "trips" SET "is_active"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTripRepository(db)
	require.NoError(t, repo.SetActive(context.Background(), uuid.New(), false))
	assert.ErrorIs(t, repo.SetActive(context.Background(), uuid.New(), true), gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileFindByAccountIDsEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	profiles, err := NewProfileRepository(db).FindByAccountIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, profiles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageCount(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "contact_messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := NewMessageRepository(db).Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestMessageListByTrip(t *testing.T) {
	db, mock := newMockDB(t)
	tripID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "contact_messages" WHERE trip_id = \$1 ORDER BY created_at DESC`).
		WithArgs(tripID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_id", "sender_name", "sender_phone", "message"}).
			AddRow(uuid.NewString(), tripID.String(), "Awa", "0102030405", "Bonjour"))

	msgs, err := NewMessageRepository(db).ListByTrip(context.Background(), tripID)

	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Awa", msgs[0].SenderName)
}
