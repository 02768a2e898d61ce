package session_fx

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"covoit/internal/config"
	"covoit/internal/infra"
	"covoit/internal/repositories"
	"covoit/internal/services"
	mem "covoit/pkg/memcache"
	"covoit/pkg/middleware"
)

var Module = fx.Options(
	fx.Provide(
		provideRevokedTokenStore,
		provideSessionService,
		provideSessionResolver,
	),
	fx.Invoke(startTokenJanitor),
)

// provideRevokedTokenStore uses Redis when REDIS_ADDR is set so that
// revocations are shared between instances.
func provideRevokedTokenStore(lc fx.Lifecycle, cfg config.Config) (mem.RevokedTokenStore, error) {
	if cfg.RedisAddr == "" {
		return mem.NewRevokedTokens(), nil
	}

	client, err := infra.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	logrus.WithField("addr", cfg.RedisAddr).Info("revoked tokens stored in redis")
	return mem.NewRedisRevokedTokens(client), nil
}

func provideSessionService(cfg config.Config, store mem.RevokedTokenStore, accountRepo repositories.AccountRepository) services.SessionService {
	return services.NewSessionService([]byte(cfg.JWTSecret), cfg.JWTTTL, store, accountRepo)
}

func provideSessionResolver(sessions services.SessionService) middleware.SessionResolver {
	return sessions
}

func startTokenJanitor(lc fx.Lifecycle, cfg config.Config, store mem.RevokedTokenStore) error {
	c := cron.New()
	_, err := c.AddFunc(cfg.TokenJanitorSpec, func() {
		n, err := store.PurgeExpired(context.Background())
		if err != nil {
			logrus.WithError(err).Warn("revoked token purge failed")
			return
		}
		if n > 0 {
			logrus.WithField("purged", n).Debug("expired revocations purged")
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}
