package controllers_fx

import (
	"go.uber.org/fx"

	"covoit/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewMessageController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewReferenceController),
)
