package family_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"familybudget/internal/config"
	"familybudget/internal/repositories"
	"familybudget/internal/services"
)

var Module = fx.Provide(provideFamilyService)

func provideFamilyService(
	cfg *config.Config,
	familyRepo repositories.FamilyRepository,
	userRepo repositories.UserRepository,
	memberRepo repositories.FamilyMemberRepository,
	notifications services.NotificationServiceInterface,
	logger *zap.Logger,
) services.FamilyServiceInterface {
	return services.NewFamilyService(familyRepo, userRepo, memberRepo, notifications, services.FamilyOptions{
		BcryptCost: cfg.Security.BcryptCost,
		MaxParents: cfg.Family.MaxParents,
	}, logger.Named("family"))
}
