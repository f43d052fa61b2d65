package store_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"familybudget/internal/config"
	"familybudget/internal/infra"
	"familybudget/internal/repositories"
)

var Module = fx.Options(
	fx.Provide(
		provideStore,
		repositories.NewUserRepository,
		repositories.NewFamilyRepository,
		repositories.NewFamilyMemberRepository,
		repositories.NewTransactionRepository,
		repositories.NewSavingsRepository,
		repositories.NewPaymentRepository,
		repositories.NewNotificationRepository,
	),
	fx.Invoke(seedDemo),
)

func provideStore(logger *zap.Logger) *repositories.Store {
	logger.Info("in-memory store initialized; data is lost on restart")
	return repositories.NewStore()
}

func seedDemo(
	cfg *config.Config,
	users repositories.UserRepository,
	families repositories.FamilyRepository,
	txns repositories.TransactionRepository,
	logger *zap.Logger,
) error {
	if !cfg.Store.SeedDemo {
		return nil
	}
	return infra.SeedDemo(users, families, txns, cfg.Security.BcryptCost, logger)
}
