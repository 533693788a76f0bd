package response_models

import "time"

type ScanHistoryItem struct {
	ID        string     `json:"id"`
	AccountID string     `json:"account_id"`
	Title     string     `json:"title"`
	Points    int64      `json:"points"`
	ImageURL  *string    `json:"image_url"`
	CreatedAt *time.Time `json:"created_at"`
}
