package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Account struct {
	ID           string     `gorm:"type:varchar(128);primaryKey" json:"id"`
	Role         string     `gorm:"type:varchar(32);not null;default:user;index" json:"role"`
	FullName     string     `json:"full_name"`
	DisplayName  string     `json:"display_name"`
	Username     string     `json:"username"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PhotoURL     string     `json:"photo_url"`
	PasswordHash string     `json:"-"`
	Points       int64      `gorm:"not null;default:0" json:"points"`
	Status       string     `gorm:"type:varchar(16);not null;default:active" json:"status"`
	StreakCount  int        `gorm:"not null;default:0" json:"streak_count"`
	LastStreakAt *time.Time `json:"last_streak_at"`
	CreatedAt    *time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Events []ActivityEvent `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Account) TableName() string { return "accounts" }

// CreatedAt is a pointer because mobile-created profiles may lack it; console
// writes always stamp it.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt == nil {
		now := time.Now()
		a.CreatedAt = &now
	}
	return nil
}

// Name picks the best label the account has.
func (a *Account) Name() string {
	switch {
	case a.Username != "":
		return a.Username
	case a.DisplayName != "":
		return a.DisplayName
	case a.FullName != "":
		return a.FullName
	default:
		return a.Email
	}
}
