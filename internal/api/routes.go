package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"ecoquest/internal/api/controllers"
	"ecoquest/internal/domain"
	"ecoquest/pkg/middleware"
)

// Controllers groups every handler the router needs.
type Controllers struct {
	fx.In

	Auth        *controllers.AuthController
	Dashboard   *controllers.DashboardController
	Users       *controllers.UserController
	ScanHistory *controllers.ScanHistoryController
	Rewards     *controllers.RewardController
	TrashBins   *controllers.TrashBinController
	Admins      *controllers.AdminController
}

func RegisterRoutes(r *gin.Engine, h Controllers, auth middleware.Authenticator, loginLimiter *middleware.RateLimiter) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/login", middleware.RateLimit(loginLimiter), h.Auth.Login)

	staff := r.Group("/", middleware.JWTAuthMiddleware(auth), middleware.RoleMiddleware(domain.AdminRoles...))

	staff.POST("/auth/logout", h.Auth.Logout)
	staff.GET("/auth/me", h.Auth.Me)
	staff.GET("/auth/session/stream", h.Auth.SessionStream)

	staff.GET("/dashboard/stats", h.Dashboard.GetStats)

	usersGroup := staff.Group("/users")
	usersGroup.GET("", h.Users.ListUsers)
	usersGroup.GET("/:id", h.Users.GetUser)
	usersGroup.PUT("/:id/sanction", h.Users.Sanction)
	usersGroup.DELETE("/:id", h.Users.DeleteUser)

	staff.GET("/scan-history", h.ScanHistory.ListRecent)

	rewardsGroup := staff.Group("/rewards")
	rewardsGroup.GET("", h.Rewards.ListRewards)
	rewardsGroup.POST("", h.Rewards.CreateReward)
	rewardsGroup.PUT("/:id", h.Rewards.UpdateReward)
	rewardsGroup.DELETE("/:id", h.Rewards.DeleteReward)

	binsGroup := staff.Group("/trash-bins")
	binsGroup.GET("", h.TrashBins.ListTrashBins)
	binsGroup.POST("", h.TrashBins.CreateTrashBin)
	binsGroup.DELETE("/:id", h.TrashBins.DeleteTrashBin)

	adminsGroup := staff.Group("/admins", middleware.RoleMiddleware(string(domain.RoleSuperAdmin)))
	adminsGroup.GET("", h.Admins.ListAdmins)
	adminsGroup.POST("", h.Admins.CreateAdmin)
	adminsGroup.DELETE("/:id", h.Admins.DeleteAdmin)
}
