package repository

import (
	"context"

	"invest-service/src/internal/entity"
	"invest-service/src/pkg/databases/mysql"
)

type InvestmentRepository struct {
	DB     mysql.DBInterface
	Wallet *WalletRepository
}

func NewInvestmentRepository(db mysql.DBInterface, wallet *WalletRepository) *InvestmentRepository {
	return &InvestmentRepository{
		DB:     db,
		Wallet: wallet,
	}
}

// CreateFunded applies the whole funding event atomically: wallet debit,
// principal credit, investment row, then one earnings credit plus one
// commission row per referrer level. Any failure rolls everything back.
func (r *InvestmentRepository) CreateFunded(ctx context.Context, investment *entity.Investment, commissions []entity.ReferralCommission) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.Wallet.Debit(ctx, tx, investment.UserID, FieldWithdrawalWallet, investment.Amount); err != nil {
		return err
	}
	if err := r.Wallet.Credit(ctx, tx, investment.UserID, FieldBalance, investment.Amount); err != nil {
		return err
	}

	query := `
		INSERT INTO investments
			(id, user_id, plan_id, amount, daily_profit_percentage, duration_days,
			 days_accrued, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query,
		investment.ID, investment.UserID, investment.PlanID, investment.Amount,
		investment.DailyProfitPercentage, investment.DurationDays,
		investment.DaysAccrued, investment.Status, investment.CreatedAt,
	); err != nil {
		return err
	}

	commissionQuery := `
		INSERT INTO referral_commissions
			(id, referrer_id, referred_id, level, amount, investment_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for _, commission := range commissions {
		if err := r.Wallet.Credit(ctx, tx, commission.ReferrerID, FieldEarnings, commission.Amount); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, commissionQuery,
			commission.ID, commission.ReferrerID, commission.ReferredID,
			commission.Level, commission.Amount, commission.InvestmentID,
			commission.CreatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *InvestmentRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Investment, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var investments []entity.Investment
	query := `SELECT * FROM investments WHERE user_id = ? ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &investments, query, userID); err != nil {
		return nil, err
	}

	return investments, nil
}

func (r *InvestmentRepository) FindRunning(ctx context.Context) ([]entity.Investment, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var investments []entity.Investment
	query := `SELECT * FROM investments WHERE status = ? ORDER BY created_at ASC`
	if err := db.SelectContext(ctx, &investments, query, entity.InvestmentStatusRunning); err != nil {
		return nil, err
	}

	return investments, nil
}

// AccrueDaily credits one day of profit and completes the investment once
// duration_days accruals have been applied. The conditional UPDATE keeps a
// double-fired task from accruing the same day twice.
func (r *InvestmentRepository) AccrueDaily(ctx context.Context, investment *entity.Investment) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE investments SET days_accrued = days_accrued + 1, updated_at = NOW()
		 WHERE id = ? AND status = ? AND days_accrued = ?`,
		investment.ID, entity.InvestmentStatusRunning, investment.DaysAccrued,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return tx.Commit()
	}

	profit := investment.Amount * investment.DailyProfitPercentage / 100
	if err := r.Wallet.Credit(ctx, tx, investment.UserID, FieldEarnings, profit); err != nil {
		return err
	}

	if investment.DaysAccrued+1 >= investment.DurationDays {
		if _, err := tx.ExecContext(ctx,
			`UPDATE investments SET status = ?, updated_at = NOW() WHERE id = ?`,
			entity.InvestmentStatusCompleted, investment.ID,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
