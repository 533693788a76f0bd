package services

import (
	"context"
	"time"

	"ecoquest/internal/domain"
	resp "ecoquest/internal/models/response_models"
	"ecoquest/internal/repositories"
	"ecoquest/pkg/utils"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context) (*resp.DashboardResponse, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	loc  *time.Location
	now  utils.Clock
}

func NewDashboardService(repo repositories.DashboardRepository, loc *time.Location) DashboardService {
	return &dashboardService{repo: repo, loc: loc, now: time.Now}
}

func (s *dashboardService) BuildDashboard(ctx context.Context) (*resp.DashboardResponse, error) {
	today := s.now()
	since := domain.WindowStart(today, s.loc)

	// ---------- Core counts ----------
	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	totalPoints, err := s.repo.TotalEarnedPoints(ctx)
	if err != nil {
		return nil, err
	}

	totalRewards, err := s.repo.CountRewards(ctx)
	if err != nil {
		return nil, err
	}

	// ---------- Last seven days ----------
	events, err := s.repo.EarnEventsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	signups, err := s.repo.SignupsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	buckets := domain.BucketLastSevenDays(today, s.loc, events, signups)

	return &resp.DashboardResponse{
		TotalUsers:   totalUsers,
		TotalPoints:  totalPoints,
		TotalRewards: totalRewards,
		Timezone:     s.loc.String(),
		Activity:     buckets,
		Empty:        buckets.Empty(),
	}, nil
}
