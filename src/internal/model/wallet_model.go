package model

import "time"

type SubmitDepositRequest struct {
	UserID    string  `json:"-" validate:"required,max=100"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	UTRNumber string  `json:"utr_number" validate:"required,max=50"`
}

type SubmitWithdrawalRequest struct {
	UserID string  `json:"-" validate:"required,max=100"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type ApproveDepositRequest struct {
	DepositID string `json:"-" validate:"required,max=100"`
}

type RejectDepositRequest struct {
	DepositID string `json:"-" validate:"required,max=100"`
}

type UpdateWithdrawalStatusRequest struct {
	WithdrawalID string `json:"-" validate:"required,max=100"`
	Status       string `json:"status" validate:"required,oneof=approved completed rejected"`
}

type ListHistoryRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
}

type DepositResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Amount    float64    `json:"amount"`
	UTRNumber string     `json:"utr_number"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type WithdrawalResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// TransactionResponse is the combined recharge + withdrawal history row.
type TransactionResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Amount          float64    `json:"amount"`
	TransactionType string     `json:"transaction_type"`
	Status          string     `json:"status"`
	UTRNumber       string     `json:"utr_number,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type RechargeDetailsResponse struct {
	UPIID     string `json:"upi_id"`
	QRCodeURL string `json:"qr_code_url"`
}
