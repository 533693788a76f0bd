package request_models

type RewardRequest struct {
	Title       string `json:"title" binding:"required"`
	Points      int64  `json:"points" binding:"min=0"`
	Stock       int64  `json:"stock" binding:"min=0"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
