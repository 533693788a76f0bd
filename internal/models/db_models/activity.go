package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityEvent is an immutable entry of an account's points history.
type ActivityEvent struct {
	ID        string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	AccountID string     `gorm:"type:varchar(128);not null;index" json:"account_id"`
	Type      string     `gorm:"type:varchar(16);not null;index" json:"type"`
	Title     string     `json:"title"`
	Points    int64      `gorm:"not null" json:"points"`
	ImageURL  *string    `json:"image_url"`
	CreatedAt *time.Time `gorm:"index" json:"created_at"`
}

func (ActivityEvent) TableName() string { return "activity_events" }

func (e *ActivityEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt == nil {
		now := time.Now()
		e.CreatedAt = &now
	}
	return nil
}
