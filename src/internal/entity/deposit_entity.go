package entity

import "time"

const (
	DepositStatusPending   = "pending"
	DepositStatusCompleted = "completed"
	DepositStatusRejected  = "rejected"
)

// Deposit is a manual recharge request, matched against a bank UTR by an
// admin. Approval is the only event that credits the withdrawal wallet.
type Deposit struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Amount    float64    `json:"amount" db:"amount"`
	UTRNumber string     `json:"utr_number" db:"utr_number"`
	Status    string     `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
