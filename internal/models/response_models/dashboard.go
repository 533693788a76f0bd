package response_models

import "ecoquest/internal/domain"

type DashboardResponse struct {
	TotalUsers   int64             `json:"total_users"`
	TotalPoints  int64             `json:"total_points"`
	TotalRewards int64             `json:"total_rewards"`
	Timezone     string            `json:"timezone"`
	Activity     domain.DayBuckets `json:"activity"`
	// Empty is true when the chart has nothing to show for the window.
	Empty bool `json:"empty"`
}
