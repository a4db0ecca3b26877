package entity

import "time"

const (
	InvestmentStatusRunning   = "running"
	InvestmentStatusCompleted = "completed"
)

type Investment struct {
	ID                    string     `json:"id" db:"id"`
	UserID                string     `json:"user_id" db:"user_id"`
	PlanID                string     `json:"plan_id" db:"plan_id"`
	Amount                float64    `json:"amount" db:"amount"`
	DailyProfitPercentage float64    `json:"daily_profit_percentage" db:"daily_profit_percentage"`
	DurationDays          int        `json:"duration_days" db:"duration_days"`
	DaysAccrued           int        `json:"days_accrued" db:"days_accrued"`
	Status                string     `json:"status" db:"status"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
