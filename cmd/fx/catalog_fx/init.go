package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecoquest/internal/repositories"
	"ecoquest/internal/services"
)

var Module = fx.Provide(
	provideRewardRepo,
	provideTrashBinRepo,
	services.NewRewardService,
	services.NewTrashBinService,
)

func provideRewardRepo(db *gorm.DB) repositories.RewardRepository {
	return repositories.NewRewardRepository(db)
}

func provideTrashBinRepo(db *gorm.DB) repositories.TrashBinRepository {
	return repositories.NewTrashBinRepository(db)
}
