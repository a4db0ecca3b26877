package model

import "time"

type CreatePlanRequest struct {
	Name                  string  `json:"name" validate:"required,max=100"`
	Description           string  `json:"description" validate:"max=500"`
	Price                 float64 `json:"price" validate:"required,gt=0"`
	DailyProfitPercentage float64 `json:"daily_profit_percentage" validate:"required,gt=0,lte=100"`
	DurationDays          int     `json:"duration_days" validate:"required,gt=0"`
	ImageURL              string  `json:"image_url" validate:"max=255"`
}

type UpdatePlanRequest struct {
	ID                    string   `json:"-" validate:"required,max=100"`
	Name                  *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Description           *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Price                 *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	DailyProfitPercentage *float64 `json:"daily_profit_percentage,omitempty" validate:"omitempty,gt=0,lte=100"`
	DurationDays          *int     `json:"duration_days,omitempty" validate:"omitempty,gt=0"`
	ImageURL              *string  `json:"image_url,omitempty" validate:"omitempty,max=255"`
	IsActive              *bool    `json:"is_active,omitempty"`
}

type PlanResponse struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Description           string     `json:"description"`
	Price                 float64    `json:"price"`
	DailyProfitPercentage float64    `json:"daily_profit_percentage"`
	DurationDays          int        `json:"duration_days"`
	ImageURL              string     `json:"image_url"`
	IsActive              bool       `json:"is_active"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
}
