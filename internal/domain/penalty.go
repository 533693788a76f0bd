package domain

// PenaltyTitle labels the audit event shown in the user's history.
const PenaltyTitle = "Sanksi Pelanggaran"

// PenaltyPresets are the quick deduction values offered by the console.
var PenaltyPresets = []int64{10, 50, 100}

// Penalty is the outcome of deducting points from a balance.
type Penalty struct {
	PreviousBalance int64 `json:"previous_balance"`
	Deduction       int64 `json:"deduction"`
	FinalBalance    int64 `json:"final_balance"`
}

// ApplyPenalty computes max(0, balance - deduction).
func ApplyPenalty(balance, deduction int64) (Penalty, error) {
	if deduction < 0 {
		return Penalty{}, invalid("deduction", "deduction must not be negative")
	}
	if balance < 0 {
		balance = 0
	}
	final := balance - deduction
	if final < 0 {
		final = 0
	}
	return Penalty{PreviousBalance: balance, Deduction: deduction, FinalBalance: final}, nil
}

// Audited reports whether the deduction must be recorded as a penalty event.
func (p Penalty) Audited() bool {
	return p.Deduction > 0
}

// AuditPoints is the signed delta stored on the penalty event.
func (p Penalty) AuditPoints() int64 {
	return -p.Deduction
}
