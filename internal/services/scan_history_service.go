package services

import (
	"context"

	"ecoquest/internal/domain"
	resp "ecoquest/internal/models/response_models"
	"ecoquest/internal/repositories"
	"ecoquest/pkg/utils"
)

const (
	DefaultScanHistoryLimit = 50
	MaxScanHistoryLimit     = 50
)

type ScanHistoryService interface {
	// Recent lists the latest earn events across every account. A zero limit
	// means the default.
	Recent(ctx context.Context, limit int) ([]resp.ScanHistoryItem, error)
}

type scanHistoryService struct {
	repo repositories.ActivityRepository
}

func NewScanHistoryService(repo repositories.ActivityRepository) ScanHistoryService {
	return &scanHistoryService{repo: repo}
}

func (s *scanHistoryService) Recent(ctx context.Context, limit int) ([]resp.ScanHistoryItem, error) {
	if limit == 0 {
		limit = DefaultScanHistoryLimit
	}
	if limit < 1 || limit > MaxScanHistoryLimit {
		return nil, utils.ErrInvalidLimit
	}

	rows, err := s.repo.ListRecentByType(ctx, domain.EventEarn, limit)
	if err != nil {
		return nil, err
	}

	items := make([]resp.ScanHistoryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, resp.ScanHistoryItem{
			ID:        r.ID,
			AccountID: r.AccountID,
			Title:     r.Title,
			Points:    r.Points,
			ImageURL:  r.ImageURL,
			CreatedAt: r.CreatedAt,
		})
	}
	return items, nil
}
