package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"covoit/internal/repositories"
	"covoit/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepository, accountRepo repositories.AccountRepository) services.ProfileService {
	return services.NewProfileService(profileRepo, accountRepo)
}
