package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"ecoquest/internal/domain"
	"ecoquest/internal/models/db_models"
	"ecoquest/internal/repositories"
	"ecoquest/pkg/utils"
)

// MinPasswordLength matches the console's sign-up rule.
const MinPasswordLength = 6

var (
	ErrReleased     = errors.New("secondary identity already released")
	ErrAlreadyInUse = errors.New("secondary identity already holds an account")
)

// NewIdentity describes a console account to provision.
type NewIdentity struct {
	FullName string
	Email    string
	Password string
	Role     domain.Role
	PhotoURL string
}

// SecondaryIdentity is a disposable identity context. It can create exactly one
// account and never touches the caller's session. It is unusable once released.
type SecondaryIdentity struct {
	mu       sync.Mutex
	accounts repositories.AccountRepository
	account  *db_models.Account
	released bool
}

func (s *SecondaryIdentity) CreateAccount(ctx context.Context, in NewIdentity) (*db_models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return nil, ErrReleased
	}
	if s.account != nil {
		return nil, ErrAlreadyInUse
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name := strings.TrimSpace(in.FullName)
	account := &db_models.Account{
		Role:         string(in.Role),
		FullName:     name,
		DisplayName:  name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PhotoURL:     in.PhotoURL,
		PasswordHash: hash,
		Status:       string(domain.StatusActive),
	}
	if err := s.accounts.Insert(ctx, account); err != nil {
		return nil, err
	}

	s.account = account
	return account, nil
}

// Released reports whether the context has been signed out and closed.
func (s *SecondaryIdentity) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

func (s *SecondaryIdentity) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	s.released = true
}

func (in NewIdentity) validate() error {
	if strings.TrimSpace(in.FullName) == "" {
		return &domain.ValidationError{Field: "full_name", Message: "full name is required"}
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return &domain.ValidationError{Field: "email", Message: "email is not valid"}
	}
	if len(in.Password) < MinPasswordLength {
		return &domain.ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength)}
	}
	if !in.Role.IsAdmin() {
		return &domain.ValidationError{Field: "role", Message: "role must be admin or super_admin"}
	}
	return nil
}

// Provisioner opens secondary identity contexts.
type Provisioner interface {
	// WithSecondaryIdentity runs fn inside a fresh identity context backed by
	// one transaction. The context is released when fn returns, panics or fails.
	WithSecondaryIdentity(ctx context.Context, fn func(si *SecondaryIdentity) error) error
}

type provider struct {
	tm       repositories.TransactionManager
	accounts repositories.AccountRepository
}

func NewProvisioner(tm repositories.TransactionManager, accounts repositories.AccountRepository) Provisioner {
	return &provider{tm: tm, accounts: accounts}
}

func (p *provider) WithSecondaryIdentity(ctx context.Context, fn func(si *SecondaryIdentity) error) error {
	return p.tm.InTransaction(ctx, func(tx repositories.TxContext) error {
		si := &SecondaryIdentity{accounts: p.accounts.WithTx(tx)}
		defer si.release()
		return fn(si)
	})
}
