package account_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecoquest/internal/config"
	"ecoquest/internal/events"
	"ecoquest/internal/identity"
	"ecoquest/internal/repositories"
	"ecoquest/internal/services"
	"ecoquest/internal/session"
	mem "ecoquest/pkg/memcache"
	"ecoquest/pkg/middleware"
	"ecoquest/pkg/utils"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideActivityRepo,
	provideTokenIssuer,
	provideAuthService,
	provideAuthenticator,
	provideLoginLimiter,
	identity.NewProvisioner,
	provideUserService,
	provideAdminService,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideAuthService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, revoked mem.RevocationStore, sessions *session.Cache, log *zap.Logger) services.AuthServiceInterface {
	return services.NewAuthService(accountRepo, tokens, revoked, sessions, log)
}

func provideAuthenticator(auth services.AuthServiceInterface) middleware.Authenticator {
	return auth
}

func provideLoginLimiter(cfg *config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.Server.LoginRatePerMinute)
}

func provideUserService(
	tm repositories.TransactionManager,
	accountRepo repositories.AccountRepository,
	activityRepo repositories.ActivityRepository,
	publisher events.Publisher,
	log *zap.Logger,
	loc *time.Location,
) services.UserServiceInterface {
	return services.NewUserService(tm, accountRepo, activityRepo, publisher, log, loc)
}

func provideAdminService(
	accountRepo repositories.AccountRepository,
	provisioner identity.Provisioner,
	sessions *session.Cache,
	publisher events.Publisher,
	log *zap.Logger,
) services.AdminService {
	return services.NewAdminService(accountRepo, provisioner, sessions, publisher, log)
}
