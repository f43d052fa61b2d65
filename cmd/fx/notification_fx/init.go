package notification_fx

import (
	"go.uber.org/fx"

	"familybudget/internal/services"
)

var Module = fx.Provide(services.NewNotificationService)
