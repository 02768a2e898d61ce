package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"covoit/internal/models/db_models"
	"covoit/internal/models/domain_models"
	"covoit/internal/models/response_models"
	"covoit/internal/repositories"
)

func toDomainTrip(t db_models.Trip) domain_models.Trip {
	waypoints := make([]domain_models.District, 0, 3)
	for _, w := range t.Waypoints() {
		waypoints = append(waypoints, domain_models.District(w))
	}
	days := make([]domain_models.Weekday, 0, len(t.ActiveDays))
	for _, d := range t.ActiveDays {
		days = append(days, domain_models.Weekday(d))
	}
	desc := ""
	if t.Description != nil {
		desc = *t.Description
	}
	return domain_models.Trip{
		ID:             t.ID.String(),
		OwnerID:        t.OwnerID.String(),
		Origin:         domain_models.District(t.Origin),
		Destination:    domain_models.District(t.Destination),
		Waypoints:      waypoints,
		ActiveDays:     days,
		SeatsAvailable: t.SeatsAvailable,
		PricePerSeat:   t.PricePerSeat,
		Description:    desc,
		PublishedAt:    t.CreatedAt,
	}
}

func toTripCard(t domain_models.Trip) response_models.TripCardResponse {
	waypoints := make([]string, 0, len(t.Waypoints))
	for _, w := range t.Waypoints {
		waypoints = append(waypoints, w.String())
	}
	days := make([]string, 0, len(t.ActiveDays))
	for _, d := range t.ActiveDays {
		days = append(days, string(d))
	}
	return response_models.TripCardResponse{
		ID:             t.ID,
		Origin:         t.Origin.String(),
		Destination:    t.Destination.String(),
		Waypoints:      waypoints,
		Via:            strings.Join(waypoints, " → "),
		ActiveDays:     days,
		DaysLabel:      domain_models.ShortDays(t.ActiveDays),
		SeatsAvailable: t.SeatsAvailable,
		PricePerSeat:   t.PricePerSeat,
		Description:    t.Description,
		OwnerSummary:   t.OwnerSummary,
		PublishedAt:    t.PublishedAt,
	}
}

func toMessageResponse(m db_models.ContactMessage) response_models.ContactMessageResponse {
	return response_models.ContactMessageResponse{
		ID:          m.ID.String(),
		TripID:      m.TripID.String(),
		SenderName:  m.SenderName,
		SenderPhone: m.SenderPhone,
		Message:     m.Message,
		CreatedAt:   m.CreatedAt,
	}
}

// profilesByAccount loads the profiles of ids in one query, keyed by account.
func profilesByAccount(ctx context.Context, repo repositories.ProfileRepository, ids []uuid.UUID) (map[uuid.UUID]db_models.Profile, error) {
	uniq := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	profiles, err := repo.FindByAccountIDs(ctx, uniq)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]db_models.Profile, len(profiles))
	for _, p := range profiles {
		out[p.AccountID] = p
	}
	return out, nil
}

func displayName(p db_models.Profile) string {
	return domain_models.DisplayName(p.GivenName, p.FamilyName)
}

func fullName(p db_models.Profile) string {
	return strings.TrimSpace(p.GivenName + " " + p.FamilyName)
}

func initials(givenName, familyName string) string {
	var out []rune
	for _, s := range []string{givenName, familyName} {
		if r := []rune(strings.TrimSpace(s)); len(r) > 0 {
			out = append(out, r[0])
		}
	}
	return strings.ToUpper(string(out))
}

func routeLabel(t db_models.Trip) string {
	return t.Origin + " → " + t.Destination
}
