package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ecoquest/internal/domain"
	"ecoquest/internal/models/db_models"
)

type ActivityRepository interface {
	WithTx(tx TxContext) ActivityRepository
	Insert(ctx context.Context, event *db_models.ActivityEvent) error
	// ListRecentByType reads across all accounts, newest first.
	ListRecentByType(ctx context.Context, eventType domain.EventType, limit int) ([]db_models.ActivityEvent, error)
	ListByAccount(ctx context.Context, accountID string) ([]db_models.ActivityEvent, error)
	DeleteByAccount(ctx context.Context, accountID string) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) WithTx(tx TxContext) ActivityRepository {
	return &activityRepository{db: bind(r.db, tx)}
}

func (r *activityRepository) Insert(ctx context.Context, event *db_models.ActivityEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

func (r *activityRepository) ListRecentByType(ctx context.Context, eventType domain.EventType, limit int) ([]db_models.ActivityEvent, error) {
	var events []db_models.ActivityEvent
	err := r.db.WithContext(ctx).
		Where("type = ?", string(eventType)).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list %s events: %w", eventType, err)
	}
	return events, nil
}

func (r *activityRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.ActivityEvent, error) {
	var events []db_models.ActivityEvent
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list account events: %w", err)
	}
	return events, nil
}

func (r *activityRepository) DeleteByAccount(ctx context.Context, accountID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&db_models.ActivityEvent{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete account events: %w", res.Error)
	}
	return res.RowsAffected, nil
}
