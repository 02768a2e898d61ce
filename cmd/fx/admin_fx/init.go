package admin_fx

import (
	"go.uber.org/fx"

	"covoit/internal/services"
)

var Module = fx.Provide(services.NewAdminService)
