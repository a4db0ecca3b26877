package entity

import "time"

type Plan struct {
	ID                    string     `json:"id" db:"id"`
	Name                  string     `json:"name" db:"name"`
	Description           string     `json:"description" db:"description"`
	Price                 float64    `json:"price" db:"price"`
	DailyProfitPercentage float64    `json:"daily_profit_percentage" db:"daily_profit_percentage"`
	DurationDays          int        `json:"duration_days" db:"duration_days"`
	ImageURL              string     `json:"image_url" db:"image_url"`
	IsActive              bool       `json:"is_active" db:"is_active"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
