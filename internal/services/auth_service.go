package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ecoquest/internal/domain"
	"ecoquest/internal/models/request_models"
	resp "ecoquest/internal/models/response_models"
	"ecoquest/internal/repositories"
	"ecoquest/internal/session"
	mem "ecoquest/pkg/memcache"
	"ecoquest/pkg/utils"
)

type AuthServiceInterface interface {
	SignIn(ctx context.Context, request request_models.LoginRequest) (*resp.LoginResponse, error)
	SignOut(ctx context.Context, s session.Session) error
	// Authenticate resolves a bearer token to a live console session.
	Authenticate(ctx context.Context, token string) (session.Session, error)
}

type AuthService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	revoked     mem.RevocationStore
	sessions    *session.Cache
	log         *zap.Logger
	now         utils.Clock
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenIssuer,
	revoked mem.RevocationStore,
	sessions *session.Cache,
	log *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		sessions:    sessions,
		log:         log,
		now:         time.Now,
	}
}

// SignIn never tells the caller which check failed.
func (a *AuthService) SignIn(ctx context.Context, request request_models.LoginRequest) (*resp.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !domain.Role(account.Role).IsAdmin() || account.Status == string(domain.StatusBanned) {
		a.log.Warn("console sign-in refused", zap.String("account_id", account.ID), zap.String("role", account.Role))
		return nil, utils.ErrInvalidCredentials
	}

	token, claims, err := a.tokens.CreateToken(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, err
	}

	s := sessionFromClaims(claims)
	a.sessions.Populate(s)
	a.log.Info("admin signed in", zap.String("account_id", account.ID), zap.String("session_id", s.ID))

	return &resp.LoginResponse{
		Token:     token,
		ExpiresAt: s.ExpiresAt,
		Session:   s,
	}, nil
}

func (a *AuthService) SignOut(ctx context.Context, s session.Session) error {
	if err := a.revoked.Revoke(ctx, s.ID, s.ExpiresAt.Sub(a.now())); err != nil {
		return err
	}
	a.sessions.Clear(s.ID)
	a.log.Info("admin signed out", zap.String("account_id", s.AccountID), zap.String("session_id", s.ID))
	return nil
}

func (a *AuthService) Authenticate(ctx context.Context, token string) (session.Session, error) {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return session.Session{}, utils.ErrUnauthorized
	}

	revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return session.Session{}, err
	}
	if revoked {
		return session.Session{}, utils.ErrSessionRevoked
	}

	if s, ok := a.sessions.Get(claims.ID); ok {
		return s, nil
	}

	// Not cached here: the token may come from another replica or from before a
	// restart, or its account may have been removed. Re-check the account.
	account, err := a.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		return session.Session{}, err
	}
	if account == nil || !domain.Role(account.Role).IsAdmin() || account.Status == string(domain.StatusBanned) {
		return session.Session{}, utils.ErrUnauthorized
	}

	claims.Role = account.Role
	s := sessionFromClaims(claims)
	a.sessions.Populate(s)
	return s, nil
}

func sessionFromClaims(c *utils.Claims) session.Session {
	s := session.Session{
		ID:        c.ID,
		AccountID: c.AccountID,
		Email:     c.Email,
		Role:      c.Role,
	}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

// IsAuthError reports whether err should end the caller's session.
func IsAuthError(err error) bool {
	return errors.Is(err, utils.ErrUnauthorized) || errors.Is(err, utils.ErrSessionRevoked)
}
