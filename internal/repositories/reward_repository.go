package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ecoquest/internal/models/db_models"
	"ecoquest/pkg/utils"
)

type RewardRepository interface {
	List(ctx context.Context) ([]db_models.Reward, error)
	FindByID(ctx context.Context, id string) (*db_models.Reward, error)
	Insert(ctx context.Context, reward *db_models.Reward) error
	Update(ctx context.Context, reward *db_models.Reward) error
	Delete(ctx context.Context, id string) error
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) List(ctx context.Context) ([]db_models.Reward, error) {
	var rewards []db_models.Reward
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id").Find(&rewards).Error; err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	return rewards, nil
}

func (r *rewardRepository) FindByID(ctx context.Context, id string) (*db_models.Reward, error) {
	var reward db_models.Reward
	err := r.db.WithContext(ctx).First(&reward, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrRewardNotFound
		}
		return nil, fmt.Errorf("find reward: %w", err)
	}
	return &reward, nil
}

func (r *rewardRepository) Insert(ctx context.Context, reward *db_models.Reward) error {
	if err := r.db.WithContext(ctx).Create(reward).Error; err != nil {
		return fmt.Errorf("insert reward: %w", err)
	}
	return nil
}

// Update overwrites the editable fields. Zero values are written too.
func (r *rewardRepository) Update(ctx context.Context, reward *db_models.Reward) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Reward{}).
		Where("id = ?", reward.ID).
		Select("title", "points", "stock", "description", "image_url", "updated_at").
		Updates(reward)
	if res.Error != nil {
		return fmt.Errorf("update reward: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrRewardNotFound
	}
	return nil
}

func (r *rewardRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Reward{})
	if res.Error != nil {
		return fmt.Errorf("delete reward: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrRewardNotFound
	}
	return nil
}
