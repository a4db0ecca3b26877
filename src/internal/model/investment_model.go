package model

import "time"

type InvestRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
	PlanID string `json:"plan_id" validate:"required,max=100"`
}

type InvestmentResponse struct {
	ID                    string     `json:"id"`
	PlanID                string     `json:"plan_id"`
	Amount                float64    `json:"amount"`
	DailyProfitPercentage float64    `json:"daily_profit_percentage"`
	DurationDays          int        `json:"duration_days"`
	DaysAccrued           int        `json:"days_accrued"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
}

type CommissionResponse struct {
	ID           string    `json:"id"`
	ReferrerID   string    `json:"referrer_id"`
	ReferredID   string    `json:"referred_id"`
	Level        int       `json:"commission_level"`
	Amount       float64   `json:"commission_amount"`
	InvestmentID string    `json:"investment_id"`
	CreatedAt    time.Time `json:"created_at"`
}
