package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	mem "familybudget/pkg/memcache"
)

const pruneInterval = 10 * time.Minute

var Module = fx.Options(
	fx.Provide(
		mem.NewResetTokens,
		mem.NewRevokedTokens,
		func(r *mem.ResetTokens) mem.ResetTokenStore { return r },
		func(r *mem.RevokedTokens) mem.RevokedTokenStore { return r },
	),
	fx.Invoke(startPruner),
)

// startPruner drops expired reset tokens and revocations in the background.
func startPruner(lc fx.Lifecycle, reset *mem.ResetTokens, revoked *mem.RevokedTokens, logger *zap.Logger) {
	done := make(chan struct{})
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(stopped)
				ticker := time.NewTicker(pruneInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						n := reset.Prune() + revoked.Prune()
						if n > 0 {
							logger.Debug("expired tokens pruned", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			select {
			case <-stopped:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
