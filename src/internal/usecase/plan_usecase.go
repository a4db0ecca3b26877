package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"invest-service/src/internal/entity"
	"invest-service/src/internal/model"
	"invest-service/src/internal/model/converter"
	"invest-service/src/internal/repository"
	httpError "invest-service/src/pkg/http-error"
	"invest-service/src/pkg/log"
	"invest-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const activePlansKey = "PLANS:ACTIVE"

type PlanUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	PlanRepository repository.PlanStore
	Config         *viper.Viper
	Redis          redis.UniversalClient
}

func NewPlanUseCase(
	logger log.Log,
	validate *validator.Validate,
	planRepository repository.PlanStore,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
) *PlanUseCase {
	return &PlanUseCase{
		Log:            logger,
		Validate:       validate,
		PlanRepository: planRepository,
		Config:         cfg,
		Redis:          redisClient,
	}
}

// ListActivePlans serves the public plan catalogue, cached in redis; a
// cache miss or decode failure falls through to the database.
func (c *PlanUseCase) ListActivePlans(ctx context.Context) utils.Result {
	var result utils.Result

	cached, err := c.Redis.Get(ctx, activePlansKey).Result()
	if err == nil && cached != "" {
		var responses []model.PlanResponse
		if err := json.Unmarshal([]byte(cached), &responses); err == nil {
			result.Data = responses
			return result
		}
	}

	plans, err := c.PlanRepository.FindActive(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("plan-usecase", err.Error(), "ListActivePlans", "")
		return result
	}

	responses := make([]model.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, *converter.PlanToResponse(&plans[i]))
	}

	if payload, err := json.Marshal(responses); err == nil {
		if redisErr := c.Redis.Set(ctx, activePlansKey, payload, 5*time.Minute).Err(); redisErr != nil {
			c.Log.Error("plan-usecase", redisErr.Error(), "ListActivePlans-cache", "")
		}
	}

	result.Data = responses
	return result
}

func (c *PlanUseCase) ListAllPlans(ctx context.Context) utils.Result {
	var result utils.Result

	plans, err := c.PlanRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("plan-usecase", err.Error(), "ListAllPlans", "")
		return result
	}

	responses := make([]model.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, *converter.PlanToResponse(&plans[i]))
	}
	result.Data = responses
	return result
}

func (c *PlanUseCase) CreatePlan(ctx context.Context, request *model.CreatePlanRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "CreatePlan", request.Name)
		return result
	}

	plan := &entity.Plan{
		ID:                    uuid.NewString(),
		Name:                  request.Name,
		Description:           request.Description,
		Price:                 request.Price,
		DailyProfitPercentage: request.DailyProfitPercentage,
		DurationDays:          request.DurationDays,
		ImageURL:              request.ImageURL,
		IsActive:              true,
		CreatedAt:             time.Now(),
	}

	if err := c.PlanRepository.Create(ctx, plan); err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("plan-usecase", err.Error(), "CreatePlan", request.Name)
		return result
	}

	c.invalidateCache(ctx)
	c.Log.Info("plan-usecase", "plan created", "CreatePlan", plan.ID)
	result.Data = converter.PlanToResponse(plan)
	return result
}

func (c *PlanUseCase) UpdatePlan(ctx context.Context, request *model.UpdatePlanRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "UpdatePlan", request.ID)
		return result
	}

	plan, err := c.PlanRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "plan not found"
		result.Error = errObj
		c.Log.Error("plan-usecase", errObj.Message, "UpdatePlan", request.ID)
		return result
	}

	if request.Name != nil {
		plan.Name = *request.Name
	}
	if request.Description != nil {
		plan.Description = *request.Description
	}
	if request.Price != nil {
		plan.Price = *request.Price
	}
	if request.DailyProfitPercentage != nil {
		plan.DailyProfitPercentage = *request.DailyProfitPercentage
	}
	if request.DurationDays != nil {
		plan.DurationDays = *request.DurationDays
	}
	if request.ImageURL != nil {
		plan.ImageURL = *request.ImageURL
	}
	if request.IsActive != nil {
		plan.IsActive = *request.IsActive
	}

	if err := c.PlanRepository.Update(ctx, plan); err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("plan-usecase", err.Error(), "UpdatePlan", request.ID)
		return result
	}

	c.invalidateCache(ctx)
	c.Log.Info("plan-usecase", "plan updated", "UpdatePlan", plan.ID)
	result.Data = converter.PlanToResponse(plan)
	return result
}

func (c *PlanUseCase) invalidateCache(ctx context.Context) {
	if err := c.Redis.Del(ctx, activePlansKey).Err(); err != nil {
		c.Log.Error("plan-usecase", err.Error(), "invalidateCache", activePlansKey)
	}
}
