package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ecoquest/internal/config"
	"ecoquest/internal/infra"
	"ecoquest/internal/session"
	mem "ecoquest/pkg/memcache"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Provide(
	provideRevocationStore,
	provideSessionCache,
)

// provideRevocationStore uses redis when REDIS_ADDR is set so every replica
// sees a sign-out; otherwise token ids stay in process memory.
func provideRevocationStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.RevocationStore, error) {
	if cfg.Redis.Addr == "" {
		store := mem.NewRevokedTokens()
		stop := make(chan struct{})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go sweep(store, stop)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				close(stop)
				return nil
			},
		})
		return store, nil
	}

	pool, err := infra.NewRedisPool(cfg.Redis.Addr)
	if err != nil {
		return nil, err
	}
	log.Info("token revocation backed by redis", zap.String("addr", cfg.Redis.Addr))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return pool.Close()
		},
	})
	return infra.NewRedisRevocationStore(pool), nil
}

func sweep(store *mem.RevokedTokens, stop <-chan struct{}) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			store.Sweep()
		case <-stop:
			return
		}
	}
}

func provideSessionCache(lc fx.Lifecycle) *session.Cache {
	cache := session.NewCache()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			cache.Close()
			return nil
		},
	})
	return cache
}
