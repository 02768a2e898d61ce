package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"covoit/internal/repositories"
	"covoit/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, profileRepo repositories.ProfileRepository) services.TripService {
	return services.NewTripService(tripRepo, profileRepo)
}
