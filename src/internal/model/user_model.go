package model

import "time"

type GetUserRequest struct {
	ID string `json:"id" validate:"required,max=100"`
}

type UserResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	MobileNumber     string     `json:"mobile_number"`
	Username         string     `json:"username"`
	ReferralCode     string     `json:"referral_code"`
	ReferredBy       *string    `json:"referred_by,omitempty"`
	Balance          float64    `json:"balance"`
	Earnings         float64    `json:"earnings"`
	WithdrawalWallet float64    `json:"withdrawal_wallet"`
	IsAdmin          bool       `json:"is_admin"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type ReferredUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type ReferralResponse struct {
	ReferralCode  string                 `json:"referral_code"`
	ReferredUsers []ReferredUserResponse `json:"referred_users"`
	Commissions   []CommissionResponse   `json:"commissions"`
}
