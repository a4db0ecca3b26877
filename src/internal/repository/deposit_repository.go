package repository

import (
	"context"
	"database/sql"

	"invest-service/src/internal/entity"
	"invest-service/src/pkg/databases/mysql"
)

type DepositRepository struct {
	DB     mysql.DBInterface
	Wallet *WalletRepository
}

func NewDepositRepository(db mysql.DBInterface, wallet *WalletRepository) *DepositRepository {
	return &DepositRepository{
		DB:     db,
		Wallet: wallet,
	}
}

func (r *DepositRepository) Create(ctx context.Context, deposit *entity.Deposit) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO deposits (id, user_id, amount, utr_number, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = db.ExecContext(ctx, query,
		deposit.ID, deposit.UserID, deposit.Amount, deposit.UTRNumber,
		deposit.Status, deposit.CreatedAt,
	)
	return err
}

func (r *DepositRepository) FindByID(ctx context.Context, id string) (*entity.Deposit, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var deposit entity.Deposit
	query := `SELECT * FROM deposits WHERE id = ?`
	if err := db.GetContext(ctx, &deposit, query, id); err != nil {
		return nil, err
	}

	return &deposit, nil
}

func (r *DepositRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Deposit, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var deposits []entity.Deposit
	query := `SELECT * FROM deposits WHERE user_id = ? ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &deposits, query, userID); err != nil {
		return nil, err
	}

	return deposits, nil
}

func (r *DepositRepository) FindAll(ctx context.Context) ([]entity.Deposit, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var deposits []entity.Deposit
	query := `SELECT * FROM deposits ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &deposits, query); err != nil {
		return nil, err
	}

	return deposits, nil
}

// Approve flips the deposit to completed and credits the owner's
// withdrawal wallet atomically. The conditional UPDATE guarantees the
// credit is applied at most once even under concurrent approvals.
func (r *DepositRepository) Approve(ctx context.Context, id string) (*entity.Deposit, bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, false, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	var deposit entity.Deposit
	if err := tx.GetContext(ctx, &deposit, `SELECT * FROM deposits WHERE id = ?`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE deposits SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?`,
		entity.DepositStatusCompleted, id, entity.DepositStatusPending,
	)
	if err != nil {
		return nil, false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, err
	}
	if affected == 0 {
		return &deposit, false, nil
	}

	if err := r.Wallet.Credit(ctx, tx, deposit.UserID, FieldWithdrawalWallet, deposit.Amount); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}

	deposit.Status = entity.DepositStatusCompleted
	return &deposit, true, nil
}

// Reject flips pending to rejected; no balance was reserved so nothing is
// refunded.
func (r *DepositRepository) Reject(ctx context.Context, id string) (*entity.Deposit, bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, false, err
	}

	var deposit entity.Deposit
	if err := db.GetContext(ctx, &deposit, `SELECT * FROM deposits WHERE id = ?`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}

	result, err := db.ExecContext(ctx,
		`UPDATE deposits SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?`,
		entity.DepositStatusRejected, id, entity.DepositStatusPending,
	)
	if err != nil {
		return nil, false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, err
	}
	if affected == 0 {
		return &deposit, false, nil
	}

	deposit.Status = entity.DepositStatusRejected
	return &deposit, true, nil
}

func (r *DepositRepository) SumCompleted(ctx context.Context) (float64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE status = ?`
	if err := db.GetContext(ctx, &total, query, entity.DepositStatusCompleted); err != nil {
		return 0, err
	}

	return total, nil
}
