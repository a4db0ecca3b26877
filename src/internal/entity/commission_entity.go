package entity

import "time"

// ReferralCommission is written whenever an investment is funded, one row
// per reachable referrer level (at most three).
type ReferralCommission struct {
	ID           string    `json:"id" db:"id"`
	ReferrerID   string    `json:"referrer_id" db:"referrer_id"`
	ReferredID   string    `json:"referred_id" db:"referred_id"`
	Level        int       `json:"level" db:"level"`
	Amount       float64   `json:"amount" db:"amount"`
	InvestmentID string    `json:"investment_id" db:"investment_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
