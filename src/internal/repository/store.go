package repository

import (
	"context"
	"errors"

	"invest-service/src/internal/entity"
)

var (
	// ErrInsufficientFunds is returned by any conditional debit that would
	// take a wallet field below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount guards the credit/debit contract: amounts must be > 0.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrUnknownField is returned for a wallet field outside the whitelist.
	ErrUnknownField = errors.New("unknown wallet field")
)

type UserStore interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	FindByReferralCode(ctx context.Context, code string) (*entity.User, error)
	ExistsByMobileOrUsername(ctx context.Context, mobileNumber, username string) (bool, error)
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	FindReferredBy(ctx context.Context, referralCode string) ([]entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	CountUsers(ctx context.Context) (active int, total int, err error)
}

type DepositStore interface {
	Create(ctx context.Context, deposit *entity.Deposit) error
	FindByID(ctx context.Context, id string) (*entity.Deposit, error)
	FindByUserID(ctx context.Context, userID string) ([]entity.Deposit, error)
	FindAll(ctx context.Context) ([]entity.Deposit, error)
	// Approve flips pending to completed and credits the owner's
	// withdrawal wallet in one transaction. ok is false when the deposit
	// was not pending anymore.
	Approve(ctx context.Context, id string) (*entity.Deposit, bool, error)
	// Reject flips pending to rejected; no balance is touched.
	Reject(ctx context.Context, id string) (*entity.Deposit, bool, error)
	SumCompleted(ctx context.Context) (float64, error)
}

type WithdrawalStore interface {
	// CreateWithDebit reserves the amount from the owner's withdrawal
	// wallet and inserts the pending request in one transaction. Returns
	// ErrInsufficientFunds without inserting when the wallet is short.
	CreateWithDebit(ctx context.Context, withdrawal *entity.Withdrawal) error
	FindByID(ctx context.Context, id string) (*entity.Withdrawal, error)
	FindByUserID(ctx context.Context, userID string) ([]entity.Withdrawal, error)
	FindAll(ctx context.Context) ([]entity.Withdrawal, error)
	// UpdateStatus conditionally moves from one status to another; when
	// refund is true the reserved amount is credited back in the same
	// transaction. ok is false when the row was not in the from status.
	UpdateStatus(ctx context.Context, id, from, to string, refund bool) (bool, error)
	SumCompleted(ctx context.Context) (float64, error)
}

type PlanStore interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	FindByID(ctx context.Context, id string) (*entity.Plan, error)
	FindActive(ctx context.Context) ([]entity.Plan, error)
	FindAll(ctx context.Context) ([]entity.Plan, error)
}

type InvestmentStore interface {
	// CreateFunded debits the investor's withdrawal wallet by the
	// investment amount, credits principal, inserts the investment and
	// applies every commission (referrer earnings credit + row) in one
	// transaction. Returns ErrInsufficientFunds without side effects when
	// the wallet is short.
	CreateFunded(ctx context.Context, investment *entity.Investment, commissions []entity.ReferralCommission) error
	FindByUserID(ctx context.Context, userID string) ([]entity.Investment, error)
	FindRunning(ctx context.Context) ([]entity.Investment, error)
	// AccrueDaily credits one day of profit to the owner's earnings and
	// bumps days_accrued, completing the investment when the duration is
	// reached.
	AccrueDaily(ctx context.Context, investment *entity.Investment) error
}

type CommissionStore interface {
	FindByReferrerID(ctx context.Context, referrerID string) ([]entity.ReferralCommission, error)
}
