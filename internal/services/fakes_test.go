package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"covoit/internal/models/db_models"
)

var errStorage = errors.New("connection reset")

type fakeAccountRepo struct {
	accounts []*db_models.Account
	profiles *fakeProfileRepo
	err      error
}

func (f *fakeAccountRepo) CreateWithProfile(_ context.Context, account *db_models.Account, profile *db_models.Profile) error {
	if f.err != nil {
		return f.err
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()
	profile.AccountID = account.ID
	f.accounts = append(f.accounts, account)
	if f.profiles != nil {
		f.profiles.profiles = append(f.profiles.profiles, profile)
	}
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByPhone(_ context.Context, phone string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.accounts {
		if a.Phone == phone {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) ListAll(context.Context) ([]db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]db_models.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAccountRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.accounts {
		if a.ID == id {
			a.IsActive = active
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) Count(context.Context) (int64, error) {
	return int64(len(f.accounts)), f.err
}

type fakeProfileRepo struct {
	profiles []*db_models.Profile
	err      error
}

func (f *fakeProfileRepo) FindByAccountID(_ context.Context, id uuid.UUID) (*db_models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.AccountID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) FindByAccountIDs(_ context.Context, ids []uuid.UUID) ([]db_models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Profile
	for _, p := range f.profiles {
		for _, id := range ids {
			if p.AccountID == id {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *db_models.Profile) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.profiles {
		if p.AccountID == profile.AccountID {
			*p = *profile
		}
	}
	return nil
}

// fakeTripRepo keeps trips newest first, like the real listing order.
type fakeTripRepo struct {
	trips   []*db_models.Trip
	deleted map[uuid.UUID]bool
	err     error
}

func (f *fakeTripRepo) live() []db_models.Trip {
	out := make([]db_models.Trip, 0, len(f.trips))
	for _, t := range f.trips {
		if !f.deleted[t.ID] {
			out = append(out, *t)
		}
	}
	return out
}

func (f *fakeTripRepo) ListActive(context.Context) ([]db_models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Trip
	for _, t := range f.live() {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) ListAll(context.Context) ([]db_models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.live(), nil
}

func (f *fakeTripRepo) ListByOwner(_ context.Context, owner uuid.UUID) ([]db_models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Trip
	for _, t := range f.live() {
		if t.OwnerID == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.live() {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTripRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]db_models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Trip
	for _, t := range f.trips {
		for _, id := range ids {
			if t.ID == id {
				out = append(out, *t)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTripRepo) Create(_ context.Context, trip *db_models.Trip) error {
	if f.err != nil {
		return f.err
	}
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	trip.CreatedAt = time.Now()
	f.trips = append([]*db_models.Trip{trip}, f.trips...)
	return nil
}

func (f *fakeTripRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for _, t := range f.live() {
		if t.ID == id {
			if f.deleted == nil {
				f.deleted = map[uuid.UUID]bool{}
			}
			f.deleted[id] = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTripRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	if f.err != nil {
		return f.err
	}
	for _, t := range f.trips {
		if t.ID == id && !f.deleted[id] {
			t.IsActive = active
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTripRepo) Count(context.Context) (int64, error) {
	return int64(len(f.live())), f.err
}

type fakeMessageRepo struct {
	msgs []*db_models.ContactMessage
	err  error
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *db_models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now()
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeMessageRepo) ListByTrip(_ context.Context, tripID uuid.UUID) ([]db_models.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.ContactMessage
	for _, m := range f.msgs {
		if m.TripID == tripID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) ListAll(context.Context) ([]db_models.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]db_models.ContactMessage, 0, len(f.msgs))
	for _, m := range f.msgs {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMessageRepo) Count(context.Context) (int64, error) {
	return int64(len(f.msgs)), f.err
}

// fixture wires fake repositories with one user, one admin and two trips.
type fixture struct {
	accounts *fakeAccountRepo
	profiles *fakeProfileRepo
	trips    *fakeTripRepo
	messages *fakeMessageRepo

	user  *db_models.Account
	admin *db_models.Account
	other *db_models.Account

	cocodyTrip   *db_models.Trip
	yopougonTrip *db_models.Trip
}

func newFixture() *fixture {
	f := &fixture{
		profiles: &fakeProfileRepo{},
		trips:    &fakeTripRepo{},
		messages: &fakeMessageRepo{},
	}
	f.accounts = &fakeAccountRepo{profiles: f.profiles}

	mk := func(phone, role, given, family string) *db_models.Account {
		a := &db_models.Account{Phone: phone, Role: role, IsActive: true}
		a.ID = uuid.New()
		a.CreatedAt = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
		f.accounts.accounts = append(f.accounts.accounts, a)
		f.profiles.profiles = append(f.profiles.profiles, &db_models.Profile{
			AccountID: a.ID, GivenName: given, FamilyName: family, Phone: phone,
		})
		return a
	}
	f.user = mk("0701020304", db_models.RoleUser, "Jean", "Kouassi")
	f.other = mk("0505050505", db_models.RoleUser, "Awa", "Traoré")
	f.admin = mk("0100000000", db_models.RoleAdmin, "Admin", "Covoit")

	mkTrip := func(owner *db_models.Account, origin, destination string, days ...string) *db_models.Trip {
		t := &db_models.Trip{
			OwnerID:        owner.ID,
			Origin:         origin,
			Destination:    destination,
			ActiveDays:     days,
			SeatsAvailable: 3,
			PricePerSeat:   500,
			IsActive:       true,
		}
		t.ID = uuid.New()
		t.CreatedAt = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
		f.trips.trips = append(f.trips.trips, t)
		return t
	}
	f.cocodyTrip = mkTrip(f.user, "Cocody", "Plateau", "lundi", "mardi")
	f.yopougonTrip = mkTrip(f.other, "Yopougon", "Cocody", "lundi")
	return f
}
