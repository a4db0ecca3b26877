package usecase_test

import (
	"context"
	"testing"

	"invest-service/src/internal/entity"
	"invest-service/src/internal/model"
	"invest-service/src/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvestmentUseCase(store *memStore) *usecase.InvestmentUseCase {
	cfg := testConfig()
	return usecase.NewInvestmentUseCase(
		testLogger(cfg),
		testValidator(),
		store,
		planStore{store},
		investmentStore{store},
		commissionStore{store},
		cfg,
		testLedgerProducer(cfg),
	)
}

func ref(code string) *string { return &code }

// seedChain builds y3 <- y2 <- y1 <- investor, each referred by the next.
func seedChain(store *memStore, investorWallet float64) {
	store.addUser(&entity.User{UserID: "y3", Username: "y3", ReferralCode: "CODE3", IsActive: true})
	store.addUser(&entity.User{UserID: "y2", Username: "y2", ReferralCode: "CODE2", ReferredBy: ref("CODE3"), IsActive: true})
	store.addUser(&entity.User{UserID: "y1", Username: "y1", ReferralCode: "CODE1", ReferredBy: ref("CODE2"), IsActive: true})
	store.addUser(&entity.User{UserID: "x", Username: "x", ReferralCode: "CODEX", ReferredBy: ref("CODE1"), WithdrawalWallet: investorWallet, IsActive: true})
}

func TestInvestDistributesThreeCommissionLevels(t *testing.T) {
	store := newMemStore()
	seedChain(store, 1000)
	store.addPlan(&entity.Plan{ID: "p1", Name: "Gold", Price: 1000, DailyProfitPercentage: 2.5, DurationDays: 30, IsActive: true})
	uc := newInvestmentUseCase(store)

	result := uc.Invest(context.Background(), &model.InvestRequest{UserID: "x", PlanID: "p1"})
	require.NoError(t, result.Error)

	assert.Equal(t, 0.0, store.wallet("x"))
	investor, err := store.FindByID(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, investor.Balance, "invested amount moves into the locked balance")

	assert.Equal(t, 300.0, store.earnings("y1"), "level 1 gets 30 percent")
	assert.Equal(t, 20.0, store.earnings("y2"), "level 2 gets 2 percent")
	assert.Equal(t, 10.0, store.earnings("y3"), "level 3 gets 1 percent")

	commissions, err := commissionStore{store}.FindByReferrerID(context.Background(), "y1")
	require.NoError(t, err)
	require.Len(t, commissions, 1)
	assert.Equal(t, "x", commissions[0].ReferredID)
	assert.Equal(t, 1, commissions[0].Level)
	assert.Equal(t, 300.0, commissions[0].Amount)
	assert.Equal(t, result.Data.(*model.InvestmentResponse).ID, commissions[0].InvestmentID)
}

func TestInvestStopsAtChainEnd(t *testing.T) {
	store := newMemStore()
	store.addUser(&entity.User{UserID: "y1", Username: "y1", ReferralCode: "CODE1", IsActive: true})
	store.addUser(&entity.User{UserID: "x", Username: "x", ReferralCode: "CODEX", ReferredBy: ref("CODE1"), WithdrawalWallet: 1000, IsActive: true})
	store.addPlan(&entity.Plan{ID: "p1", Name: "Gold", Price: 1000, DailyProfitPercentage: 2.5, DurationDays: 30, IsActive: true})
	uc := newInvestmentUseCase(store)

	result := uc.Invest(context.Background(), &model.InvestRequest{UserID: "x", PlanID: "p1"})
	require.NoError(t, result.Error)

	assert.Equal(t, 300.0, store.earnings("y1"))
	commissions, err := commissionStore{store}.FindByReferrerID(context.Background(), "y1")
	require.NoError(t, err)
	assert.Len(t, commissions, 1, "only one level exists, only one commission may be written")
}

func TestInvestWithoutReferrerPaysNoCommission(t *testing.T) {
	store := newMemStore()
	store.addUser(&entity.User{UserID: "x", Username: "x", ReferralCode: "CODEX", WithdrawalWallet: 1000, IsActive: true})
	store.addPlan(&entity.Plan{ID: "p1", Name: "Gold", Price: 1000, DailyProfitPercentage: 2.5, DurationDays: 30, IsActive: true})
	uc := newInvestmentUseCase(store)

	result := uc.Invest(context.Background(), &model.InvestRequest{UserID: "x", PlanID: "p1"})
	require.NoError(t, result.Error)

	store.mu.Lock()
	commissionCount := len(store.commissions)
	store.mu.Unlock()
	assert.Zero(t, commissionCount)
}

func TestInvestInsufficientFunds(t *testing.T) {
	store := newMemStore()
	seedChain(store, 999)
	store.addPlan(&entity.Plan{ID: "p1", Name: "Gold", Price: 1000, DailyProfitPercentage: 2.5, DurationDays: 30, IsActive: true})
	uc := newInvestmentUseCase(store)

	result := uc.Invest(context.Background(), &model.InvestRequest{UserID: "x", PlanID: "p1"})
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusBadRequest, errCode(t, result.Error))

	assert.Equal(t, 999.0, store.wallet("x"), "failed funding must not debit")
	assert.Equal(t, 0.0, store.earnings("y1"), "failed funding must not pay commissions")
	investments, err := investmentStore{store}.FindByUserID(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, investments)
}

func TestInvestInactivePlan(t *testing.T) {
	store := newMemStore()
	store.addUser(&entity.User{UserID: "x", Username: "x", ReferralCode: "CODEX", WithdrawalWallet: 1000, IsActive: true})
	store.addPlan(&entity.Plan{ID: "p1", Name: "Retired", Price: 1000, DailyProfitPercentage: 2.5, DurationDays: 30, IsActive: false})
	uc := newInvestmentUseCase(store)

	result := uc.Invest(context.Background(), &model.InvestRequest{UserID: "x", PlanID: "p1"})
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusNotFound, errCode(t, result.Error))
}

func TestAccrueDailyProfitCreditsAndCompletes(t *testing.T) {
	store := newMemStore()
	store.addUser(&entity.User{UserID: "x", Username: "x", ReferralCode: "CODEX", WithdrawalWallet: 1000, IsActive: true})
	store.addPlan(&entity.Plan{ID: "p1", Name: "Short", Price: 1000, DailyProfitPercentage: 2.5, DurationDays: 2, IsActive: true})
	uc := newInvestmentUseCase(store)

	invested := uc.Invest(context.Background(), &model.InvestRequest{UserID: "x", PlanID: "p1"})
	require.NoError(t, invested.Error)

	task := asynq.NewTask("investment:accrue-profit", nil)

	require.NoError(t, uc.AccrueDailyProfit(context.Background(), task))
	assert.Equal(t, 25.0, store.earnings("x"))

	running, err := investmentStore{store}.FindRunning(context.Background())
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, 1, running[0].DaysAccrued)

	require.NoError(t, uc.AccrueDailyProfit(context.Background(), task))
	assert.Equal(t, 50.0, store.earnings("x"))

	running, err = investmentStore{store}.FindRunning(context.Background())
	require.NoError(t, err)
	assert.Empty(t, running, "investment completes after its full duration")

	// a further run has nothing left to accrue
	require.NoError(t, uc.AccrueDailyProfit(context.Background(), task))
	assert.Equal(t, 50.0, store.earnings("x"))
}

func TestGetReferralsListsDirectReferralsAndCommissions(t *testing.T) {
	store := newMemStore()
	seedChain(store, 1000)
	store.addPlan(&entity.Plan{ID: "p1", Name: "Gold", Price: 1000, DailyProfitPercentage: 2.5, DurationDays: 30, IsActive: true})
	uc := newInvestmentUseCase(store)

	invested := uc.Invest(context.Background(), &model.InvestRequest{UserID: "x", PlanID: "p1"})
	require.NoError(t, invested.Error)

	result := uc.GetReferrals(context.Background(), &model.GetUserRequest{ID: "y1"})
	require.NoError(t, result.Error)

	response := result.Data.(*model.ReferralResponse)
	assert.Equal(t, "CODE1", response.ReferralCode)
	require.Len(t, response.ReferredUsers, 1)
	assert.Equal(t, "x", response.ReferredUsers[0].ID)
	require.Len(t, response.Commissions, 1)
	assert.Equal(t, 300.0, response.Commissions[0].Amount)
}
