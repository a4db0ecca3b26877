package entity

import "time"

const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusApproved  = "approved"
	WithdrawalStatusCompleted = "completed"
	WithdrawalStatusRejected  = "rejected"
)

// Withdrawal reserves its amount from the withdrawal wallet at creation
// time. Rejection refunds the reserved amount.
type Withdrawal struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Amount      float64    `json:"amount" db:"amount"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty" db:"processed_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// LegalWithdrawalTransition reports whether a status change is allowed.
// rejected and completed are terminal.
func LegalWithdrawalTransition(from, to string) bool {
	switch from {
	case WithdrawalStatusPending:
		return to == WithdrawalStatusApproved || to == WithdrawalStatusRejected
	case WithdrawalStatusApproved:
		return to == WithdrawalStatusCompleted
	default:
		return false
	}
}
