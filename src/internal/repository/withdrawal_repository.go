package repository

import (
	"context"

	"invest-service/src/internal/entity"
	"invest-service/src/pkg/databases/mysql"
)

type WithdrawalRepository struct {
	DB     mysql.DBInterface
	Wallet *WalletRepository
}

func NewWithdrawalRepository(db mysql.DBInterface, wallet *WalletRepository) *WithdrawalRepository {
	return &WithdrawalRepository{
		DB:     db,
		Wallet: wallet,
	}
}

// CreateWithDebit reserves the requested amount before the row exists.
// The conditional debit is what makes back-to-back requests against a
// stale balance impossible: the second one finds the wallet already short.
func (r *WithdrawalRepository) CreateWithDebit(ctx context.Context, withdrawal *entity.Withdrawal) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.Wallet.Debit(ctx, tx, withdrawal.UserID, FieldWithdrawalWallet, withdrawal.Amount); err != nil {
		return err
	}

	query := `
		INSERT INTO withdrawals (id, user_id, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query,
		withdrawal.ID, withdrawal.UserID, withdrawal.Amount,
		withdrawal.Status, withdrawal.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *WithdrawalRepository) FindByID(ctx context.Context, id string) (*entity.Withdrawal, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var withdrawal entity.Withdrawal
	query := `SELECT * FROM withdrawals WHERE id = ?`
	if err := db.GetContext(ctx, &withdrawal, query, id); err != nil {
		return nil, err
	}

	return &withdrawal, nil
}

func (r *WithdrawalRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Withdrawal, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var withdrawals []entity.Withdrawal
	query := `SELECT * FROM withdrawals WHERE user_id = ? ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &withdrawals, query, userID); err != nil {
		return nil, err
	}

	return withdrawals, nil
}

func (r *WithdrawalRepository) FindAll(ctx context.Context) ([]entity.Withdrawal, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var withdrawals []entity.Withdrawal
	query := `SELECT * FROM withdrawals ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &withdrawals, query); err != nil {
		return nil, err
	}

	return withdrawals, nil
}

// UpdateStatus moves a withdrawal between statuses with a conditional
// UPDATE; a refund (rejection of a pending request) credits the reserved
// amount back in the same transaction.
func (r *WithdrawalRepository) UpdateStatus(ctx context.Context, id, from, to string, refund bool) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var withdrawal entity.Withdrawal
	if err := tx.GetContext(ctx, &withdrawal, `SELECT * FROM withdrawals WHERE id = ?`, id); err != nil {
		return false, err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE withdrawals SET status = ?, processed_at = NOW(), updated_at = NOW() WHERE id = ? AND status = ?`,
		to, id, from,
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if refund {
		if err := r.Wallet.Credit(ctx, tx, withdrawal.UserID, FieldWithdrawalWallet, withdrawal.Amount); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	return true, nil
}

func (r *WithdrawalRepository) SumCompleted(ctx context.Context) (float64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE status = ?`
	if err := db.GetContext(ctx, &total, query, entity.WithdrawalStatusCompleted); err != nil {
		return 0, err
	}

	return total, nil
}
