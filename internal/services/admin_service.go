package services

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"ecoquest/internal/domain"
	"ecoquest/internal/events"
	"ecoquest/internal/identity"
	"ecoquest/internal/models/db_models"
	"ecoquest/internal/models/request_models"
	"ecoquest/internal/repositories"
	"ecoquest/internal/session"
	"ecoquest/pkg/utils"
)

const avatarBaseURL = "https://ui-avatars.com/api/?name="

type AdminService interface {
	ListAdmins(ctx context.Context, actor session.Session) ([]db_models.Account, error)
	// CreateAdmin provisions a new admin without touching the actor's session.
	CreateAdmin(ctx context.Context, actor session.Session, request request_models.CreateAdminRequest) (*db_models.Account, error)
	DeleteAdmin(ctx context.Context, actor session.Session, id string) error
}

type adminService struct {
	accountRepo repositories.AccountRepository
	provisioner identity.Provisioner
	sessions    *session.Cache
	publisher   events.Publisher
	log         *zap.Logger
}

func NewAdminService(
	accountRepo repositories.AccountRepository,
	provisioner identity.Provisioner,
	sessions *session.Cache,
	publisher events.Publisher,
	log *zap.Logger,
) AdminService {
	return &adminService{
		accountRepo: accountRepo,
		provisioner: provisioner,
		sessions:    sessions,
		publisher:   publisher,
		log:         log,
	}
}

func (s *adminService) ListAdmins(ctx context.Context, actor session.Session) ([]db_models.Account, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	return s.accountRepo.ListByRoles(ctx, domain.AdminRoles)
}

func (s *adminService) CreateAdmin(ctx context.Context, actor session.Session, request request_models.CreateAdminRequest) (*db_models.Account, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.FullName)
	var created *db_models.Account

	err := s.provisioner.WithSecondaryIdentity(ctx, func(si *identity.SecondaryIdentity) error {
		account, err := si.CreateAccount(ctx, identity.NewIdentity{
			FullName: name,
			Email:    request.Email,
			Password: request.Password,
			Role:     domain.RoleAdmin,
			PhotoURL: avatarBaseURL + url.QueryEscape(name),
		})
		if err != nil {
			return err
		}
		created = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("admin created", zap.String("account_id", created.ID), zap.String("actor_id", actor.AccountID))
	events.PublishQuietly(ctx, s.publisher, s.log, events.Event{
		Type:      events.TypeAdminCreated,
		AccountID: created.ID,
		ActorID:   actor.AccountID,
		Data:      map[string]interface{}{"email": created.Email},
	})
	return created, nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, actor session.Session, id string) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	if id == actor.AccountID {
		return utils.ErrCannotDeleteSelf
	}

	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil || !domain.Role(account.Role).IsAdmin() {
		return utils.ErrAccountNotFound
	}
	if domain.Role(account.Role) == domain.RoleSuperAdmin {
		return utils.ErrCannotDeleteSuperAdmin
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}
	cleared := s.sessions.ClearAccount(id)

	s.log.Info("admin deleted",
		zap.String("account_id", id),
		zap.String("actor_id", actor.AccountID),
		zap.Int("sessions_cleared", cleared))
	events.PublishQuietly(ctx, s.publisher, s.log, events.Event{
		Type:      events.TypeAccountDeleted,
		AccountID: id,
		ActorID:   actor.AccountID,
		Data:      map[string]interface{}{"role": account.Role},
	})
	return nil
}

func requireSuperAdmin(actor session.Session) error {
	if domain.Role(actor.Role) != domain.RoleSuperAdmin {
		return utils.ErrForbidden
	}
	return nil
}
