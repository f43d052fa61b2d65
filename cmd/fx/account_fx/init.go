package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"familybudget/internal/config"
	"familybudget/internal/repositories"
	"familybudget/internal/services"
	mem "familybudget/pkg/memcache"
	"familybudget/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer, provideAccountService)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL())
}

func provideAccountService(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	familyRepo repositories.FamilyRepository,
	notifications services.NotificationServiceInterface,
	tokens *utils.TokenIssuer,
	resetTokens mem.ResetTokenStore,
	revoked mem.RevokedTokenStore,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, familyRepo, notifications, tokens, resetTokens, revoked, services.AccountOptions{
		BcryptCost:    cfg.Security.BcryptCost,
		ResetTokenTTL: cfg.Security.ResetTokenTTL(),
		MaxParents:    cfg.Family.MaxParents,
	}, logger.Named("account"))
}
