package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"ecoquest/cmd/fx/account_fx"
	"ecoquest/cmd/fx/catalog_fx"
	"ecoquest/cmd/fx/controllers_fx"
	"ecoquest/cmd/fx/core_fx"
	"ecoquest/cmd/fx/dashboard"
	"ecoquest/cmd/fx/db_fx"
	"ecoquest/cmd/fx/events_fx"
	"ecoquest/cmd/fx/memcache_fx"
	"ecoquest/internal/api"
	"ecoquest/internal/config"
	"ecoquest/pkg/middleware"
)

const limiterIdle = 15 * time.Minute

func main() {
	app := fx.New(
		core_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		events_fx.Module,
		account_fx.Module,
		dashboard.Module,
		catalog_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, limiter *middleware.RateLimiter, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			go cleanupLimiter(limiter, stop)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			close(stop)
			return srv.Shutdown(ctx)
		},
	})
}

func cleanupLimiter(limiter *middleware.RateLimiter, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			limiter.Cleanup(limiterIdle)
		case <-stop:
			return
		}
	}
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	handlers api.Controllers,
	auth middleware.Authenticator,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))

	api.RegisterRoutes(r, handlers, auth, limiter)

	return r
}
