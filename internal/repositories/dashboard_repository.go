package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ecoquest/internal/domain"
	dbm "ecoquest/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountUsers(ctx context.Context) (int64, error)
	TotalEarnedPoints(ctx context.Context) (int64, error)
	CountRewards(ctx context.Context) (int64, error)

	// Raw rows for day bucketing
	EarnEventsSince(ctx context.Context, since time.Time) ([]domain.PointEvent, error)
	SignupsSince(ctx context.Context, since time.Time) ([]*time.Time, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type pointRow struct {
	Points    int64      `gorm:"column:points"`
	CreatedAt *time.Time `gorm:"column:created_at"`
}

type createdRow struct {
	CreatedAt *time.Time `gorm:"column:created_at"`
}

// slack widens time filters by a day. The query is only a prefilter; the
// aggregator decides exact day membership in the reporting timezone.
const slack = 24 * time.Hour

func (r *dashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).
		Where("role NOT IN ?", domain.AdminRoles).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *dashboardRepository) TotalEarnedPoints(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&dbm.ActivityEvent{}).
		Select("COALESCE(SUM(points), 0)").
		Where("type = ?", string(domain.EventEarn)).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum earned points: %w", err)
	}
	return total, nil
}

func (r *dashboardRepository) CountRewards(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&dbm.Reward{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count rewards: %w", err)
	}
	return n, nil
}

func (r *dashboardRepository) EarnEventsSince(ctx context.Context, since time.Time) ([]domain.PointEvent, error) {
	var rows []pointRow
	err := r.db.WithContext(ctx).Model(&dbm.ActivityEvent{}).
		Select("points, created_at").
		Where("type = ? AND created_at >= ?", string(domain.EventEarn), since.Add(-slack).UTC()).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("earn events since %s: %w", since.Format(time.RFC3339), err)
	}

	out := make([]domain.PointEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.PointEvent{Points: row.Points, CreatedAt: row.CreatedAt})
	}
	return out, nil
}

func (r *dashboardRepository) SignupsSince(ctx context.Context, since time.Time) ([]*time.Time, error) {
	var rows []createdRow
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).
		Select("created_at").
		Where("role NOT IN ? AND created_at >= ?", domain.AdminRoles, since.Add(-slack).UTC()).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("signups since %s: %w", since.Format(time.RFC3339), err)
	}

	out := make([]*time.Time, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.CreatedAt)
	}
	return out, nil
}
