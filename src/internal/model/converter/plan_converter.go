package converter

import (
	"invest-service/src/internal/entity"
	"invest-service/src/internal/model"
)

func PlanToResponse(plan *entity.Plan) *model.PlanResponse {
	return &model.PlanResponse{
		ID:                    plan.ID,
		Name:                  plan.Name,
		Description:           plan.Description,
		Price:                 plan.Price,
		DailyProfitPercentage: plan.DailyProfitPercentage,
		DurationDays:          plan.DurationDays,
		ImageURL:              plan.ImageURL,
		IsActive:              plan.IsActive,
		CreatedAt:             plan.CreatedAt,
		UpdatedAt:             plan.UpdatedAt,
	}
}

func InvestmentToResponse(investment *entity.Investment) *model.InvestmentResponse {
	return &model.InvestmentResponse{
		ID:                    investment.ID,
		PlanID:                investment.PlanID,
		Amount:                investment.Amount,
		DailyProfitPercentage: investment.DailyProfitPercentage,
		DurationDays:          investment.DurationDays,
		DaysAccrued:           investment.DaysAccrued,
		Status:                investment.Status,
		CreatedAt:             investment.CreatedAt,
		UpdatedAt:             investment.UpdatedAt,
	}
}

func CommissionToResponse(commission *entity.ReferralCommission) model.CommissionResponse {
	return model.CommissionResponse{
		ID:           commission.ID,
		ReferrerID:   commission.ReferrerID,
		ReferredID:   commission.ReferredID,
		Level:        commission.Level,
		Amount:       commission.Amount,
		InvestmentID: commission.InvestmentID,
		CreatedAt:    commission.CreatedAt,
	}
}

func CommissionToEvent(commission *entity.ReferralCommission) *model.CommissionEarnedEvent {
	return &model.CommissionEarnedEvent{
		ID:           commission.ID,
		ReferrerID:   commission.ReferrerID,
		ReferredID:   commission.ReferredID,
		Level:        commission.Level,
		Amount:       commission.Amount,
		InvestmentID: commission.InvestmentID,
	}
}
