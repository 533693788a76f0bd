package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ecoquest/internal/domain"
	"ecoquest/internal/models/db_models"
	"ecoquest/pkg/utils"
)

type AccountRepository interface {
	WithTx(tx TxContext) AccountRepository
	Insert(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id string) (*db_models.Account, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	ListUsers(ctx context.Context, search string) ([]db_models.Account, error)
	ListByRoles(ctx context.Context, roles []string) ([]db_models.Account, error)
	UpdateSanction(ctx context.Context, id string, status domain.Status, points int64) error
	Delete(ctx context.Context, id string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) WithTx(tx TxContext) AccountRepository {
	return &accountRepository{db: bind(a.db, tx)}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	if err := a.db.WithContext(ctx).Create(account).Error; err != nil {
		if isUniqueViolation(err) {
			return utils.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (a *accountRepository) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	return a.first(a.db.WithContext(ctx), "id = ?", id)
}

func (a *accountRepository) FindByIDForUpdate(ctx context.Context, id string) (*db_models.Account, error) {
	return a.first(forUpdate(a.db.WithContext(ctx)), "id = ?", id)
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return a.first(a.db.WithContext(ctx), "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (a *accountRepository) first(db *gorm.DB, query string, args ...interface{}) (*db_models.Account, error) {
	var account db_models.Account
	err := db.Where(query, args...).First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &account, nil
}

// ListUsers returns every non-staff account, newest first. A non-empty search
// matches names, email and id case-insensitively.
func (a *accountRepository) ListUsers(ctx context.Context, search string) ([]db_models.Account, error) {
	var accounts []db_models.Account
	q := a.db.WithContext(ctx).Where("role NOT IN ?", domain.AdminRoles)

	if s := strings.ToLower(strings.TrimSpace(search)); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			"LOWER(username) LIKE ? OR LOWER(display_name) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(id) LIKE ?",
			like, like, like, like, like,
		)
	}

	if err := q.Order("created_at DESC").Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return accounts, nil
}

func (a *accountRepository) ListByRoles(ctx context.Context, roles []string) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).
		Where("role IN ?", roles).
		Order("created_at DESC").Order("id").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("list accounts by role: %w", err)
	}
	return accounts, nil
}

func (a *accountRepository) UpdateSanction(ctx context.Context, id string, status domain.Status, points int64) error {
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "points": points})
	if res.Error != nil {
		return fmt.Errorf("update sanction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrAccountNotFound
	}
	return nil
}

func (a *accountRepository) Delete(ctx context.Context, id string) error {
	res := a.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Account{})
	if res.Error != nil {
		return fmt.Errorf("delete account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrAccountNotFound
	}
	return nil
}
