package savings_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"familybudget/internal/repositories"
	"familybudget/internal/services"
)

var Module = fx.Provide(provideSavingsService)

func provideSavingsService(savingsRepo repositories.SavingsRepository, logger *zap.Logger) services.SavingsServiceInterface {
	return services.NewSavingsService(savingsRepo, logger.Named("savings"))
}
