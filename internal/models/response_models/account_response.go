package response_models

import (
	"time"

	"ecoquest/internal/session"
)

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Session   session.Session `json:"session"`
}

// AccountResponse is an account as the console lists it. Streak is the
// effective value, not the stored counter.
type AccountResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	FullName   string     `json:"full_name"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	PhotoURL   string     `json:"photo_url"`
	Role       string     `json:"role"`
	Points     int64      `json:"points"`
	Status     string     `json:"status"`
	Streak     int        `json:"streak"`
	LastStreak *time.Time `json:"last_streak_at"`
	CreatedAt  *time.Time `json:"created_at"`
}

type UserDetailResponse struct {
	AccountResponse
	PenaltyPresets []int64 `json:"penalty_presets"`
}

type SanctionResponse struct {
	Account         AccountResponse `json:"account"`
	PreviousBalance int64           `json:"previous_balance"`
	Deduction       int64           `json:"deduction"`
	FinalBalance    int64           `json:"final_balance"`
	PenaltyEventID  string          `json:"penalty_event_id,omitempty"`
}
