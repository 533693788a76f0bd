package dashboard

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecoquest/internal/repositories"
	"ecoquest/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo,
	services.NewDashboardService,
	services.NewScanHistoryService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}
