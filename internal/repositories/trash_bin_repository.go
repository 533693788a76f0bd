package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ecoquest/internal/models/db_models"
	"ecoquest/pkg/utils"
)

type TrashBinRepository interface {
	List(ctx context.Context) ([]db_models.TrashBin, error)
	Insert(ctx context.Context, bin *db_models.TrashBin) error
	Delete(ctx context.Context, id string) error
}

type trashBinRepository struct {
	db *gorm.DB
}

func NewTrashBinRepository(db *gorm.DB) TrashBinRepository {
	return &trashBinRepository{db: db}
}

func (r *trashBinRepository) List(ctx context.Context) ([]db_models.TrashBin, error) {
	var bins []db_models.TrashBin
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id").Find(&bins).Error; err != nil {
		return nil, fmt.Errorf("list trash bins: %w", err)
	}
	return bins, nil
}

func (r *trashBinRepository) Insert(ctx context.Context, bin *db_models.TrashBin) error {
	if err := r.db.WithContext(ctx).Create(bin).Error; err != nil {
		return fmt.Errorf("insert trash bin: %w", err)
	}
	return nil
}

func (r *trashBinRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.TrashBin{})
	if res.Error != nil {
		return fmt.Errorf("delete trash bin: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrTrashBinNotFound
	}
	return nil
}
