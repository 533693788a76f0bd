package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ecoquest/internal/domain"
	"ecoquest/internal/events"
	"ecoquest/internal/models/db_models"
	"ecoquest/internal/models/request_models"
	resp "ecoquest/internal/models/response_models"
	"ecoquest/internal/repositories"
	"ecoquest/internal/session"
	"ecoquest/pkg/utils"
)

type UserServiceInterface interface {
	ListUsers(ctx context.Context, search string) ([]resp.AccountResponse, error)
	GetUser(ctx context.Context, id string) (*resp.UserDetailResponse, error)
	// Sanction sets the status and deducts points in one transaction.
	Sanction(ctx context.Context, actor session.Session, id string, request request_models.SanctionRequest) (*resp.SanctionResponse, error)
	DeleteUser(ctx context.Context, actor session.Session, id string) error
}

type UserService struct {
	tm           repositories.TransactionManager
	accountRepo  repositories.AccountRepository
	activityRepo repositories.ActivityRepository
	publisher    events.Publisher
	log          *zap.Logger
	loc          *time.Location
	now          utils.Clock
}

func NewUserService(
	tm repositories.TransactionManager,
	accountRepo repositories.AccountRepository,
	activityRepo repositories.ActivityRepository,
	publisher events.Publisher,
	log *zap.Logger,
	loc *time.Location,
) UserServiceInterface {
	return &UserService{
		tm:           tm,
		accountRepo:  accountRepo,
		activityRepo: activityRepo,
		publisher:    publisher,
		log:          log,
		loc:          loc,
		now:          time.Now,
	}
}

func (u *UserService) ListUsers(ctx context.Context, search string) ([]resp.AccountResponse, error) {
	accounts, err := u.accountRepo.ListUsers(ctx, search)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]resp.AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toAccountResponse(&accounts[i], now, u.loc))
	}
	return out, nil
}

func (u *UserService) GetUser(ctx context.Context, id string) (*resp.UserDetailResponse, error) {
	account, err := u.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isEndUser(account) {
		return nil, utils.ErrAccountNotFound
	}

	return &resp.UserDetailResponse{
		AccountResponse: toAccountResponse(account, u.now(), u.loc),
		PenaltyPresets:  domain.PenaltyPresets,
	}, nil
}

func (u *UserService) Sanction(ctx context.Context, actor session.Session, id string, request request_models.SanctionRequest) (*resp.SanctionResponse, error) {
	status, err := domain.ParseStatus(request.Status)
	if err != nil {
		return nil, err
	}

	var (
		account *db_models.Account
		penalty domain.Penalty
		audit   *db_models.ActivityEvent
	)

	err = u.tm.InTransaction(ctx, func(tx repositories.TxContext) error {
		accounts := u.accountRepo.WithTx(tx)

		locked, err := accounts.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !isEndUser(locked) {
			return utils.ErrAccountNotFound
		}

		penalty, err = domain.ApplyPenalty(locked.Points, request.Deduction)
		if err != nil {
			return err
		}

		if err := accounts.UpdateSanction(ctx, id, status, penalty.FinalBalance); err != nil {
			return err
		}

		if penalty.Audited() {
			now := u.now()
			audit = &db_models.ActivityEvent{
				AccountID: id,
				Type:      string(domain.EventPenalty),
				Title:     domain.PenaltyTitle,
				Points:    penalty.AuditPoints(),
				CreatedAt: &now,
			}
			if err := u.activityRepo.WithTx(tx).Insert(ctx, audit); err != nil {
				return err
			}
		}

		locked.Status = string(status)
		locked.Points = penalty.FinalBalance
		account = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("account sanctioned",
		zap.String("account_id", id),
		zap.String("actor_id", actor.AccountID),
		zap.String("status", string(status)),
		zap.Int64("deduction", penalty.Deduction),
		zap.Int64("final_balance", penalty.FinalBalance))

	events.PublishQuietly(ctx, u.publisher, u.log, events.Event{
		Type:      events.TypeAccountSanctioned,
		AccountID: id,
		ActorID:   actor.AccountID,
		Data: map[string]interface{}{
			"status":           string(status),
			"previous_balance": penalty.PreviousBalance,
			"deduction":        penalty.Deduction,
			"final_balance":    penalty.FinalBalance,
		},
	})

	out := &resp.SanctionResponse{
		Account:         toAccountResponse(account, u.now(), u.loc),
		PreviousBalance: penalty.PreviousBalance,
		Deduction:       penalty.Deduction,
		FinalBalance:    penalty.FinalBalance,
	}
	if audit != nil {
		out.PenaltyEventID = audit.ID
	}
	return out, nil
}

// DeleteUser removes the account together with its history.
func (u *UserService) DeleteUser(ctx context.Context, actor session.Session, id string) error {
	var removedEvents int64

	err := u.tm.InTransaction(ctx, func(tx repositories.TxContext) error {
		accounts := u.accountRepo.WithTx(tx)

		account, err := accounts.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !isEndUser(account) {
			return utils.ErrAccountNotFound
		}

		removedEvents, err = u.activityRepo.WithTx(tx).DeleteByAccount(ctx, id)
		if err != nil {
			return err
		}
		return accounts.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	u.log.Info("account deleted",
		zap.String("account_id", id),
		zap.String("actor_id", actor.AccountID),
		zap.Int64("events_deleted", removedEvents))

	events.PublishQuietly(ctx, u.publisher, u.log, events.Event{
		Type:      events.TypeAccountDeleted,
		AccountID: id,
		ActorID:   actor.AccountID,
		Data:      map[string]interface{}{"events_deleted": removedEvents},
	})
	return nil
}

func isEndUser(a *db_models.Account) bool {
	return a != nil && !domain.Role(a.Role).IsAdmin()
}

func toAccountResponse(a *db_models.Account, now time.Time, loc *time.Location) resp.AccountResponse {
	status := a.Status
	if status == "" {
		status = string(domain.StatusActive)
	}
	return resp.AccountResponse{
		ID:         a.ID,
		Name:       a.Name(),
		FullName:   a.FullName,
		Username:   a.Username,
		Email:      a.Email,
		PhotoURL:   a.PhotoURL,
		Role:       a.Role,
		Points:     a.Points,
		Status:     status,
		Streak:     domain.EffectiveStreak(now, loc, a.LastStreakAt, a.StreakCount),
		LastStreak: a.LastStreakAt,
		CreatedAt:  a.CreatedAt,
	}
}
