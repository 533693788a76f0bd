package domain

// Role of an account. Only admin roles may sign in to the console.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// AdminRoles lists the roles excluded from end-user statistics and listings.
var AdminRoles = []string{string(RoleAdmin), string(RoleSuperAdmin)}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Status of an account.
type Status string

const (
	StatusActive Status = "active"
	StatusBanned Status = "banned"
)

// ParseStatus validates an admin-selected status. Blank means active, which is
// how accounts written without a status are shown.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "", StatusActive:
		return StatusActive, nil
	case StatusBanned:
		return StatusBanned, nil
	default:
		return "", invalid("status", "status must be one of: active, banned")
	}
}

// EventType classifies an activity event.
type EventType string

const (
	EventEarn    EventType = "earn"
	EventRedeem  EventType = "redeem"
	EventPenalty EventType = "penalty"
)
