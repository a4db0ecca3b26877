package usecase

import (
	"context"
	"fmt"
	"time"

	"invest-service/src/internal/entity"
	"invest-service/src/internal/gateway/messaging"
	"invest-service/src/internal/model"
	"invest-service/src/internal/model/converter"
	"invest-service/src/internal/repository"
	httpError "invest-service/src/pkg/http-error"
	"invest-service/src/pkg/log"
	"invest-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

const maxReferralLevels = 3

type InvestmentUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	UserRepository       repository.UserStore
	PlanRepository       repository.PlanStore
	InvestmentRepository repository.InvestmentStore
	CommissionRepository repository.CommissionStore
	Config               *viper.Viper
	LedgerProducer       *messaging.LedgerProducer
}

func NewInvestmentUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository repository.UserStore,
	planRepository repository.PlanStore,
	investmentRepository repository.InvestmentStore,
	commissionRepository repository.CommissionStore,
	cfg *viper.Viper,
	ledgerProducer *messaging.LedgerProducer,
) *InvestmentUseCase {
	return &InvestmentUseCase{
		Log:                  logger,
		Validate:             validate,
		UserRepository:       userRepository,
		PlanRepository:       planRepository,
		InvestmentRepository: investmentRepository,
		CommissionRepository: commissionRepository,
		Config:               cfg,
		LedgerProducer:       ledgerProducer,
	}
}

// Invest funds a plan from the withdrawal wallet and distributes referral
// commissions up the chain in the same transaction.
func (c *InvestmentUseCase) Invest(ctx context.Context, request *model.InvestRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("investment-usecase", errObj.Message, "Invest", request.UserID)
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "user not found"
		result.Error = errObj
		c.Log.Error("investment-usecase", errObj.Message, "Invest", request.UserID)
		return result
	}

	plan, err := c.PlanRepository.FindByID(ctx, request.PlanID)
	if err != nil || !plan.IsActive {
		errObj := httpError.NewNotFound()
		errObj.Message = "plan not found"
		result.Error = errObj
		c.Log.Error("investment-usecase", errObj.Message, "Invest", request.PlanID)
		return result
	}

	investment := &entity.Investment{
		ID:                    uuid.NewString(),
		UserID:                user.UserID,
		PlanID:                plan.ID,
		Amount:                plan.Price,
		DailyProfitPercentage: plan.DailyProfitPercentage,
		DurationDays:          plan.DurationDays,
		Status:                entity.InvestmentStatusRunning,
		CreatedAt:             time.Now(),
	}

	commissions, err := c.buildCommissions(ctx, user, investment)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("investment-usecase", err.Error(), "Invest-commissions", request.UserID)
		return result
	}

	if err := c.InvestmentRepository.CreateFunded(ctx, investment, commissions); err != nil {
		if err == repository.ErrInsufficientFunds {
			errObj := httpError.NewBadRequest()
			errObj.Message = "insufficient balance, please recharge first"
			result.Error = errObj
			c.Log.Error("investment-usecase", errObj.Message, "Invest", request.UserID)
			return result
		}
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("investment-usecase", err.Error(), "Invest-create", request.UserID)
		return result
	}

	for i := range commissions {
		if err := c.LedgerProducer.SendCommissionEarned(converter.CommissionToEvent(&commissions[i])); err != nil {
			c.Log.Error("investment-usecase", fmt.Sprintf("failed to publish commission event: %v", err), "Invest", commissions[i].ID)
		}
	}

	c.Log.Info("investment-usecase", "investment funded", "Invest", investment.ID)
	result.Data = converter.InvestmentToResponse(investment)
	return result
}

// buildCommissions walks the referrer chain, at most three levels, with
// the configured percentage for each level. A missing link stops the walk.
func (c *InvestmentUseCase) buildCommissions(ctx context.Context, investor *entity.User, investment *entity.Investment) ([]entity.ReferralCommission, error) {
	percentages := []float64{
		c.Config.GetFloat64("referral.level1_percent"),
		c.Config.GetFloat64("referral.level2_percent"),
		c.Config.GetFloat64("referral.level3_percent"),
	}

	var commissions []entity.ReferralCommission
	current := investor
	for level := 1; level <= maxReferralLevels; level++ {
		if current.ReferredBy == nil || *current.ReferredBy == "" {
			break
		}

		referrer, err := c.UserRepository.FindByReferralCode(ctx, *current.ReferredBy)
		if err != nil {
			// dangling referrer link, stop the walk
			break
		}

		amount := investment.Amount * percentages[level-1] / 100
		if amount > 0 {
			commissions = append(commissions, entity.ReferralCommission{
				ID:           uuid.NewString(),
				ReferrerID:   referrer.UserID,
				ReferredID:   investor.UserID,
				Level:        level,
				Amount:       amount,
				InvestmentID: investment.ID,
				CreatedAt:    time.Now(),
			})
		}

		current = referrer
	}

	return commissions, nil
}

func (c *InvestmentUseCase) ListInvestments(ctx context.Context, request *model.ListHistoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	investments, err := c.InvestmentRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("investment-usecase", err.Error(), "ListInvestments", request.UserID)
		return result
	}

	responses := make([]model.InvestmentResponse, 0, len(investments))
	for i := range investments {
		responses = append(responses, *converter.InvestmentToResponse(&investments[i]))
	}
	result.Data = responses
	return result
}

// GetReferrals returns the caller's code, direct referrals and earned
// commissions.
func (c *InvestmentUseCase) GetReferrals(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "user not found"
		result.Error = errObj
		c.Log.Error("investment-usecase", errObj.Message, "GetReferrals", request.ID)
		return result
	}

	referred, err := c.UserRepository.FindReferredBy(ctx, user.ReferralCode)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("investment-usecase", err.Error(), "GetReferrals-referred", request.ID)
		return result
	}

	commissions, err := c.CommissionRepository.FindByReferrerID(ctx, user.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("investment-usecase", err.Error(), "GetReferrals-commissions", request.ID)
		return result
	}

	response := &model.ReferralResponse{
		ReferralCode:  user.ReferralCode,
		ReferredUsers: make([]model.ReferredUserResponse, 0, len(referred)),
		Commissions:   make([]model.CommissionResponse, 0, len(commissions)),
	}
	for i := range referred {
		response.ReferredUsers = append(response.ReferredUsers, converter.UserToReferredResponse(&referred[i]))
	}
	for i := range commissions {
		response.Commissions = append(response.Commissions, converter.CommissionToResponse(&commissions[i]))
	}

	result.Data = response
	return result
}

// AccrueDailyProfit is the asynq handler behind the daily accrual task.
// Each investment is accrued independently so one failure does not stall
// the rest.
func (c *InvestmentUseCase) AccrueDailyProfit(ctx context.Context, t *asynq.Task) error {
	investments, err := c.InvestmentRepository.FindRunning(ctx)
	if err != nil {
		c.Log.Error("investment-usecase", err.Error(), "AccrueDailyProfit", "")
		return err
	}

	for i := range investments {
		if err := c.InvestmentRepository.AccrueDaily(ctx, &investments[i]); err != nil {
			c.Log.Error("investment-usecase", err.Error(), "AccrueDailyProfit", investments[i].ID)
		}
	}

	c.Log.Info("investment-usecase", fmt.Sprintf("accrued daily profit for %d investments", len(investments)), "AccrueDailyProfit", "")
	return nil
}
