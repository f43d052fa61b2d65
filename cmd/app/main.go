package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"familybudget/cmd/fx/account_fx"
	"familybudget/cmd/fx/config_fx"
	"familybudget/cmd/fx/controllers_fx"
	"familybudget/cmd/fx/dashboard_fx"
	"familybudget/cmd/fx/family_fx"
	"familybudget/cmd/fx/logger_fx"
	"familybudget/cmd/fx/memcache_fx"
	"familybudget/cmd/fx/notification_fx"
	"familybudget/cmd/fx/payment_fx"
	"familybudget/cmd/fx/savings_fx"
	"familybudget/cmd/fx/store_fx"
	"familybudget/cmd/fx/transaction_fx"
	"familybudget/internal/api"
	"familybudget/internal/config"
)

func main() {
	fx.New(
		appOptions(),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
	).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		store_fx.Module,
		memcache_fx.Module,
		notification_fx.Module,
		account_fx.Module,
		family_fx.Module,
		transaction_fx.Module,
		savings_fx.Module,
		payment_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func ProvideRouter(cfg *config.Config, p api.RouterParams) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	return api.NewRouter(p)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", ln.Addr().String()))

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
