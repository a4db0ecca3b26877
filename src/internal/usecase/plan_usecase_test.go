package usecase_test

import (
	"context"
	"testing"

	"invest-service/src/internal/entity"
	"invest-service/src/internal/model"
	"invest-service/src/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanUseCase(store *memStore) *usecase.PlanUseCase {
	cfg := testConfig()
	return usecase.NewPlanUseCase(testLogger(cfg), testValidator(), planStore{store}, cfg, testRedis())
}

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestListActivePlansSkipsInactive(t *testing.T) {
	store := newMemStore()
	store.addPlan(&entity.Plan{ID: "p1", Name: "Gold", Price: 1000, DailyProfitPercentage: 2.5, DurationDays: 30, IsActive: true})
	store.addPlan(&entity.Plan{ID: "p2", Name: "Retired", Price: 500, DailyProfitPercentage: 1, DurationDays: 10, IsActive: false})
	uc := newPlanUseCase(store)

	result := uc.ListActivePlans(context.Background())
	require.NoError(t, result.Error, "an unreachable cache must fall back to the database")

	plans := result.Data.([]model.PlanResponse)
	require.Len(t, plans, 1)
	assert.Equal(t, "Gold", plans[0].Name)
}

func TestCreatePlan(t *testing.T) {
	store := newMemStore()
	uc := newPlanUseCase(store)

	result := uc.CreatePlan(context.Background(), &model.CreatePlanRequest{
		Name:                  "Silver",
		Description:           "starter plan",
		Price:                 500,
		DailyProfitPercentage: 1.5,
		DurationDays:          15,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.PlanResponse)
	assert.NotEmpty(t, response.ID)
	assert.True(t, response.IsActive, "new plans start active")

	stored, err := planStore{store}.FindByID(context.Background(), response.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, stored.Price)
}

func TestCreatePlanValidation(t *testing.T) {
	store := newMemStore()
	uc := newPlanUseCase(store)

	result := uc.CreatePlan(context.Background(), &model.CreatePlanRequest{
		Name:                  "Broken",
		Price:                 -1,
		DailyProfitPercentage: 2,
		DurationDays:          10,
	})
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusBadRequest, errCode(t, result.Error))
}

func TestUpdatePlanPartial(t *testing.T) {
	store := newMemStore()
	store.addPlan(&entity.Plan{ID: "p1", Name: "Gold", Description: "old", Price: 1000, DailyProfitPercentage: 2.5, DurationDays: 30, IsActive: true})
	uc := newPlanUseCase(store)

	result := uc.UpdatePlan(context.Background(), &model.UpdatePlanRequest{
		ID:       "p1",
		Price:    floatPtr(1200),
		IsActive: boolPtr(false),
	})
	require.NoError(t, result.Error)

	stored, err := planStore{store}.FindByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, stored.Price)
	assert.False(t, stored.IsActive)
	assert.Equal(t, "Gold", stored.Name, "fields not present in the request stay as they were")
	assert.Equal(t, "old", stored.Description)
}

func TestUpdatePlanUnknown(t *testing.T) {
	store := newMemStore()
	uc := newPlanUseCase(store)

	result := uc.UpdatePlan(context.Background(), &model.UpdatePlanRequest{ID: "missing", Name: strPtr("X")})
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusNotFound, errCode(t, result.Error))
}
