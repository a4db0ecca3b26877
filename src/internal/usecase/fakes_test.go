package usecase_test

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"invest-service/src/internal/entity"
	"invest-service/src/internal/repository"
)

// memStore is a single in-memory backend standing in for every repository.
// All mutators hold one mutex so check-then-mutate stays atomic, matching
// the conditional-UPDATE behavior of the SQL repositories.
type memStore struct {
	mu          sync.Mutex
	users       map[string]*entity.User
	deposits    []*entity.Deposit
	withdrawals []*entity.Withdrawal
	plans       map[string]*entity.Plan
	investments []*entity.Investment
	commissions []*entity.ReferralCommission
}

func newMemStore() *memStore {
	return &memStore{
		users: map[string]*entity.User{},
		plans: map[string]*entity.Plan{},
	}
}

func (m *memStore) addUser(user *entity.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.UserID] = &copied
}

func (m *memStore) addPlan(plan *entity.Plan) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *plan
	m.plans[plan.ID] = &copied
}

func (m *memStore) wallet(userID string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[userID].WithdrawalWallet
}

func (m *memStore) earnings(userID string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[userID].Earnings
}

// UserStore

func (m *memStore) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.UserID] = &copied
	return nil
}

func (m *memStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (m *memStore) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.MobileNumber == identifier || user.Username == identifier {
			copied := *user
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) FindByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.ReferralCode == code {
			copied := *user
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) ExistsByMobileOrUsername(ctx context.Context, mobileNumber, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.MobileNumber == mobileNumber || user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.ReferralCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) FindReferredBy(ctx context.Context, referralCode string) ([]entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []entity.User
	for _, user := range m.users {
		if user.ReferredBy != nil && *user.ReferredBy == referralCode {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (m *memStore) FindAll(ctx context.Context) ([]entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []entity.User
	for _, user := range m.users {
		users = append(users, *user)
	}
	return users, nil
}

func (m *memStore) CountUsers(ctx context.Context) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	active := 0
	for _, user := range m.users {
		if user.IsActive {
			active++
		}
	}
	return active, len(m.users), nil
}

// DepositStore
// Create has the same name as UserStore.Create; the fake keys off the
// argument type, so deposits get their own method via a wrapper type below.

type depositStore struct{ *memStore }

func (m depositStore) Create(ctx context.Context, deposit *entity.Deposit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *deposit
	m.deposits = append(m.deposits, &copied)
	return nil
}

func (m depositStore) FindByID(ctx context.Context, id string) (*entity.Deposit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, deposit := range m.deposits {
		if deposit.ID == id {
			copied := *deposit
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m depositStore) FindByUserID(ctx context.Context, userID string) ([]entity.Deposit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deposits []entity.Deposit
	for _, deposit := range m.deposits {
		if deposit.UserID == userID {
			deposits = append(deposits, *deposit)
		}
	}
	return deposits, nil
}

func (m depositStore) FindAll(ctx context.Context) ([]entity.Deposit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deposits []entity.Deposit
	for _, deposit := range m.deposits {
		deposits = append(deposits, *deposit)
	}
	return deposits, nil
}

func (m depositStore) Approve(ctx context.Context, id string) (*entity.Deposit, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, deposit := range m.deposits {
		if deposit.ID != id {
			continue
		}
		if deposit.Status != entity.DepositStatusPending {
			copied := *deposit
			return &copied, false, nil
		}
		deposit.Status = entity.DepositStatusCompleted
		now := time.Now()
		deposit.UpdatedAt = &now
		m.users[deposit.UserID].WithdrawalWallet += deposit.Amount
		copied := *deposit
		return &copied, true, nil
	}
	return nil, false, nil
}

func (m depositStore) Reject(ctx context.Context, id string) (*entity.Deposit, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, deposit := range m.deposits {
		if deposit.ID != id {
			continue
		}
		if deposit.Status != entity.DepositStatusPending {
			copied := *deposit
			return &copied, false, nil
		}
		deposit.Status = entity.DepositStatusRejected
		now := time.Now()
		deposit.UpdatedAt = &now
		copied := *deposit
		return &copied, true, nil
	}
	return nil, false, nil
}

func (m depositStore) SumCompleted(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0.0
	for _, deposit := range m.deposits {
		if deposit.Status == entity.DepositStatusCompleted {
			total += deposit.Amount
		}
	}
	return total, nil
}

// WithdrawalStore

type withdrawalStore struct{ *memStore }

func (m withdrawalStore) CreateWithDebit(ctx context.Context, withdrawal *entity.Withdrawal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user := m.users[withdrawal.UserID]
	if user.WithdrawalWallet < withdrawal.Amount {
		return repository.ErrInsufficientFunds
	}
	user.WithdrawalWallet -= withdrawal.Amount
	copied := *withdrawal
	m.withdrawals = append(m.withdrawals, &copied)
	return nil
}

func (m withdrawalStore) FindByID(ctx context.Context, id string) (*entity.Withdrawal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, withdrawal := range m.withdrawals {
		if withdrawal.ID == id {
			copied := *withdrawal
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m withdrawalStore) FindByUserID(ctx context.Context, userID string) ([]entity.Withdrawal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var withdrawals []entity.Withdrawal
	for _, withdrawal := range m.withdrawals {
		if withdrawal.UserID == userID {
			withdrawals = append(withdrawals, *withdrawal)
		}
	}
	return withdrawals, nil
}

func (m withdrawalStore) FindAll(ctx context.Context) ([]entity.Withdrawal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var withdrawals []entity.Withdrawal
	for _, withdrawal := range m.withdrawals {
		withdrawals = append(withdrawals, *withdrawal)
	}
	return withdrawals, nil
}

func (m withdrawalStore) UpdateStatus(ctx context.Context, id, from, to string, refund bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, withdrawal := range m.withdrawals {
		if withdrawal.ID != id {
			continue
		}
		if withdrawal.Status != from {
			return false, nil
		}
		withdrawal.Status = to
		now := time.Now()
		withdrawal.ProcessedAt = &now
		withdrawal.UpdatedAt = &now
		if refund {
			m.users[withdrawal.UserID].WithdrawalWallet += withdrawal.Amount
		}
		return true, nil
	}
	return false, sql.ErrNoRows
}

func (m withdrawalStore) SumCompleted(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0.0
	for _, withdrawal := range m.withdrawals {
		if withdrawal.Status == entity.WithdrawalStatusCompleted {
			total += withdrawal.Amount
		}
	}
	return total, nil
}

// PlanStore

type planStore struct{ *memStore }

func (m planStore) Create(ctx context.Context, plan *entity.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *plan
	m.plans[plan.ID] = &copied
	return nil
}

func (m planStore) Update(ctx context.Context, plan *entity.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *plan
	m.plans[plan.ID] = &copied
	return nil
}

func (m planStore) FindByID(ctx context.Context, id string) (*entity.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	plan, ok := m.plans[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *plan
	return &copied, nil
}

func (m planStore) FindActive(ctx context.Context) ([]entity.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var plans []entity.Plan
	for _, plan := range m.plans {
		if plan.IsActive {
			plans = append(plans, *plan)
		}
	}
	return plans, nil
}

func (m planStore) FindAll(ctx context.Context) ([]entity.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var plans []entity.Plan
	for _, plan := range m.plans {
		plans = append(plans, *plan)
	}
	return plans, nil
}

// InvestmentStore

type investmentStore struct{ *memStore }

func (m investmentStore) CreateFunded(ctx context.Context, investment *entity.Investment, commissions []entity.ReferralCommission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user := m.users[investment.UserID]
	if user.WithdrawalWallet < investment.Amount {
		return repository.ErrInsufficientFunds
	}
	user.WithdrawalWallet -= investment.Amount
	user.Balance += investment.Amount
	copied := *investment
	m.investments = append(m.investments, &copied)
	for _, commission := range commissions {
		m.users[commission.ReferrerID].Earnings += commission.Amount
		commissionCopy := commission
		m.commissions = append(m.commissions, &commissionCopy)
	}
	return nil
}

func (m investmentStore) FindByUserID(ctx context.Context, userID string) ([]entity.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var investments []entity.Investment
	for _, investment := range m.investments {
		if investment.UserID == userID {
			investments = append(investments, *investment)
		}
	}
	return investments, nil
}

func (m investmentStore) FindRunning(ctx context.Context) ([]entity.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var investments []entity.Investment
	for _, investment := range m.investments {
		if investment.Status == entity.InvestmentStatusRunning {
			investments = append(investments, *investment)
		}
	}
	return investments, nil
}

func (m investmentStore) AccrueDaily(ctx context.Context, investment *entity.Investment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, stored := range m.investments {
		if stored.ID != investment.ID {
			continue
		}
		if stored.Status != entity.InvestmentStatusRunning || stored.DaysAccrued != investment.DaysAccrued {
			return nil
		}
		stored.DaysAccrued++
		m.users[stored.UserID].Earnings += stored.Amount * stored.DailyProfitPercentage / 100
		if stored.DaysAccrued >= stored.DurationDays {
			stored.Status = entity.InvestmentStatusCompleted
		}
		return nil
	}
	return sql.ErrNoRows
}

// CommissionStore

type commissionStore struct{ *memStore }

func (m commissionStore) FindByReferrerID(ctx context.Context, referrerID string) ([]entity.ReferralCommission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var commissions []entity.ReferralCommission
	for _, commission := range m.commissions {
		if commission.ReferrerID == referrerID {
			commissions = append(commissions, *commission)
		}
	}
	return commissions, nil
}
