package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Wallet field names accepted by Credit/Debit.
const (
	FieldBalance          = "balance"
	FieldEarnings         = "earnings"
	FieldWithdrawalWallet = "withdrawal_wallet"
)

var walletFields = map[string]struct{}{
	FieldBalance:          {},
	FieldEarnings:         {},
	FieldWithdrawalWallet: {},
}

// WalletRepository is the only mutator of the monetary columns on users.
// Both operations are single conditional statements, so the validating
// read and the mutation cannot interleave with another request on the
// same account.
type WalletRepository struct{}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{}
}

func (r *WalletRepository) Credit(ctx context.Context, ext sqlx.ExtContext, userID, field string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if _, ok := walletFields[field]; !ok {
		return ErrUnknownField
	}

	query := fmt.Sprintf("UPDATE users SET %s = %s + ?, updated_at = NOW() WHERE user_id = ?", field, field)
	_, err := ext.ExecContext(ctx, query, amount, userID)
	return err
}

func (r *WalletRepository) Debit(ctx context.Context, ext sqlx.ExtContext, userID, field string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if _, ok := walletFields[field]; !ok {
		return ErrUnknownField
	}

	query := fmt.Sprintf("UPDATE users SET %s = %s - ?, updated_at = NOW() WHERE user_id = ? AND %s >= ?", field, field, field)
	result, err := ext.ExecContext(ctx, query, amount, userID, amount)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientFunds
	}

	return nil
}
