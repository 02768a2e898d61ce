package message_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"covoit/internal/repositories"
	"covoit/internal/services"
)

var Module = fx.Provide(
	provideMessageRepo, provideMessageService)

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(messageRepo repositories.MessageRepository, tripRepo repositories.TripRepository) services.MessageService {
	return services.NewMessageService(messageRepo, tripRepo)
}
