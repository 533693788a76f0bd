package controllers_fx

import (
	"go.uber.org/fx"

	"ecoquest/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewScanHistoryController),
	fx.Provide(controllers.NewRewardController),
	fx.Provide(controllers.NewTrashBinController),
	fx.Provide(controllers.NewAdminController))
