package services

import (
	"context"
	"strings"

	"ecoquest/internal/domain"
	"ecoquest/internal/models/db_models"
	"ecoquest/internal/models/request_models"
	"ecoquest/internal/repositories"
)

type RewardService interface {
	ListRewards(ctx context.Context) ([]db_models.Reward, error)
	CreateReward(ctx context.Context, request request_models.RewardRequest) (*db_models.Reward, error)
	UpdateReward(ctx context.Context, id string, request request_models.RewardRequest) (*db_models.Reward, error)
	DeleteReward(ctx context.Context, id string) error
}

type rewardService struct {
	repo repositories.RewardRepository
}

func NewRewardService(repo repositories.RewardRepository) RewardService {
	return &rewardService{repo: repo}
}

func (s *rewardService) ListRewards(ctx context.Context) ([]db_models.Reward, error) {
	return s.repo.List(ctx)
}

func (s *rewardService) CreateReward(ctx context.Context, request request_models.RewardRequest) (*db_models.Reward, error) {
	reward := &db_models.Reward{}
	if err := applyReward(reward, request); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

// UpdateReward replaces every editable field. Last write wins.
func (s *rewardService) UpdateReward(ctx context.Context, id string, request request_models.RewardRequest) (*db_models.Reward, error) {
	reward, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyReward(reward, request); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}

func (s *rewardService) DeleteReward(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func applyReward(r *db_models.Reward, req request_models.RewardRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return &domain.ValidationError{Field: "title", Message: "title is required"}
	}
	if req.Points < 0 {
		return &domain.ValidationError{Field: "points", Message: "points must not be negative"}
	}
	if req.Stock < 0 {
		return &domain.ValidationError{Field: "stock", Message: "stock must not be negative"}
	}

	image := strings.TrimSpace(req.ImageURL)
	if image == "" {
		image = db_models.DefaultRewardImageURL
	}

	r.Title = title
	r.Points = req.Points
	r.Stock = req.Stock
	r.Description = strings.TrimSpace(req.Description)
	r.ImageURL = image
	return nil
}
