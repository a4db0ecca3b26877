package usecase

import (
	"context"
	"encoding/json"
	"time"

	"invest-service/src/internal/model"
	"invest-service/src/internal/model/converter"
	"invest-service/src/internal/repository"
	httpError "invest-service/src/pkg/http-error"
	"invest-service/src/pkg/log"
	"invest-service/src/pkg/utils"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const dashboardKey = "ADMIN:DASHBOARD"

type AdminUseCase struct {
	Log                  log.Log
	UserRepository       repository.UserStore
	DepositRepository    repository.DepositStore
	WithdrawalRepository repository.WithdrawalStore
	Config               *viper.Viper
	Redis                redis.UniversalClient
}

func NewAdminUseCase(
	logger log.Log,
	userRepository repository.UserStore,
	depositRepository repository.DepositStore,
	withdrawalRepository repository.WithdrawalStore,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
) *AdminUseCase {
	return &AdminUseCase{
		Log:                  logger,
		UserRepository:       userRepository,
		DepositRepository:    depositRepository,
		WithdrawalRepository: withdrawalRepository,
		Config:               cfg,
		Redis:                redisClient,
	}
}

func (c *AdminUseCase) ListUsers(ctx context.Context) utils.Result {
	var result utils.Result

	users, err := c.UserRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("admin-usecase", err.Error(), "ListUsers", "")
		return result
	}

	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *converter.UserToResponse(&users[i]))
	}
	result.Data = responses
	return result
}

// Dashboard aggregates platform totals, cached briefly since the queries
// scan whole tables.
func (c *AdminUseCase) Dashboard(ctx context.Context) utils.Result {
	var result utils.Result

	cached, err := c.Redis.Get(ctx, dashboardKey).Result()
	if err == nil && cached != "" {
		var dashboard model.DashboardResponse
		if err := json.Unmarshal([]byte(cached), &dashboard); err == nil {
			result.Data = &dashboard
			return result
		}
	}

	totalDeposits, err := c.DepositRepository.SumCompleted(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("admin-usecase", err.Error(), "Dashboard-deposits", "")
		return result
	}
	totalWithdrawals, err := c.WithdrawalRepository.SumCompleted(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("admin-usecase", err.Error(), "Dashboard-withdrawals", "")
		return result
	}
	active, total, err := c.UserRepository.CountUsers(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("admin-usecase", err.Error(), "Dashboard-users", "")
		return result
	}

	dashboard := &model.DashboardResponse{
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
		ActiveUsers:      active,
		TotalUsers:       total,
	}

	if payload, err := json.Marshal(dashboard); err == nil {
		if redisErr := c.Redis.Set(ctx, dashboardKey, payload, time.Minute).Err(); redisErr != nil {
			c.Log.Error("admin-usecase", redisErr.Error(), "Dashboard-cache", "")
		}
	}

	result.Data = dashboard
	return result
}
