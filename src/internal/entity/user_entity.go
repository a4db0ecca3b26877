package entity

import "time"

type User struct {
	UserID           string     `json:"user_id" db:"user_id"`
	Name             string     `json:"name" db:"name"`
	MobileNumber     string     `json:"mobile_number" db:"mobile_number"`
	Username         string     `json:"username" db:"username"`
	PasswordHash     string     `json:"-" db:"password_hash"`
	ReferralCode     string     `json:"referral_code" db:"referral_code"`
	ReferredBy       *string    `json:"referred_by,omitempty" db:"referred_by"`
	Balance          float64    `json:"balance" db:"balance"`
	Earnings         float64    `json:"earnings" db:"earnings"`
	WithdrawalWallet float64    `json:"withdrawal_wallet" db:"withdrawal_wallet"`
	IsAdmin          bool       `json:"is_admin" db:"is_admin"`
	IsActive         bool       `json:"is_active" db:"is_active"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
