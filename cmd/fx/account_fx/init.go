package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"covoit/internal/repositories"
	"covoit/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, sessions services.SessionService) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, sessions)
}
