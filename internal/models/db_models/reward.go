package db_models

// DefaultRewardImageURL is shown for catalog items created without a picture.
const DefaultRewardImageURL = "https://cdn-icons-png.flaticon.com/512/4213/4213958.png"

type Reward struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Points      int64  `gorm:"not null;default:0" json:"points"`
	Stock       int64  `gorm:"not null;default:0" json:"stock"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
}

func (Reward) TableName() string { return "rewards" }

// Available reports whether the reward can still be redeemed.
func (r *Reward) Available() bool {
	return r.Stock > 0
}
