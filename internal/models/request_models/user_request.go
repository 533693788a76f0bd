package request_models

type UserListQuery struct {
	Search string `form:"q"`
}

// SanctionRequest sets an account's status and optionally deducts points.
// The balance is read server-side; clients never send it.
type SanctionRequest struct {
	Status    string `json:"status"`
	Deduction int64  `json:"deduction"`
}
