package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ecoquest/internal/domain"
	"ecoquest/internal/models/db_models"
	"ecoquest/internal/models/request_models"
	"ecoquest/internal/repositories"
	"ecoquest/pkg/utils"
)

type TrashBinService interface {
	ListTrashBins(ctx context.Context) ([]db_models.TrashBin, error)
	// CreateTrashBin validates coordinates before anything is written.
	CreateTrashBin(ctx context.Context, request request_models.TrashBinRequest) (*db_models.TrashBin, error)
	DeleteTrashBin(ctx context.Context, id string) error
}

type trashBinService struct {
	repo repositories.TrashBinRepository
	log  *zap.Logger
	now  utils.Clock
}

func NewTrashBinService(repo repositories.TrashBinRepository, log *zap.Logger) TrashBinService {
	return &trashBinService{repo: repo, log: log, now: time.Now}
}

func (s *trashBinService) ListTrashBins(ctx context.Context) ([]db_models.TrashBin, error) {
	return s.repo.List(ctx)
}

func (s *trashBinService) CreateTrashBin(ctx context.Context, request request_models.TrashBinRequest) (*db_models.TrashBin, error) {
	draft, err := domain.NewTrashBin(
		request.Name,
		request.BinCode,
		string(request.Latitude),
		string(request.Longitude),
		s.now(),
	)
	if err != nil {
		return nil, err
	}

	bin := &db_models.TrashBin{
		Name:      draft.Name,
		BinCode:   draft.BinCode,
		Latitude:  draft.Latitude,
		Longitude: draft.Longitude,
	}
	if err := s.repo.Insert(ctx, bin); err != nil {
		return nil, err
	}

	s.log.Info("trash bin created", zap.String("id", bin.ID), zap.String("bin_code", bin.BinCode))
	return bin, nil
}

func (s *trashBinService) DeleteTrashBin(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
