package converter

import (
	"invest-service/src/internal/entity"
	"invest-service/src/internal/model"
)

func DepositToResponse(deposit *entity.Deposit) *model.DepositResponse {
	return &model.DepositResponse{
		ID:        deposit.ID,
		UserID:    deposit.UserID,
		Amount:    deposit.Amount,
		UTRNumber: deposit.UTRNumber,
		Status:    deposit.Status,
		CreatedAt: deposit.CreatedAt,
		UpdatedAt: deposit.UpdatedAt,
	}
}

func WithdrawalToResponse(withdrawal *entity.Withdrawal) *model.WithdrawalResponse {
	return &model.WithdrawalResponse{
		ID:          withdrawal.ID,
		UserID:      withdrawal.UserID,
		Amount:      withdrawal.Amount,
		Status:      withdrawal.Status,
		CreatedAt:   withdrawal.CreatedAt,
		ProcessedAt: withdrawal.ProcessedAt,
		UpdatedAt:   withdrawal.UpdatedAt,
	}
}

func DepositToTransaction(deposit *entity.Deposit) model.TransactionResponse {
	return model.TransactionResponse{
		ID:              deposit.ID,
		UserID:          deposit.UserID,
		Amount:          deposit.Amount,
		TransactionType: "recharge",
		Status:          deposit.Status,
		UTRNumber:       deposit.UTRNumber,
		CreatedAt:       deposit.CreatedAt,
		UpdatedAt:       deposit.UpdatedAt,
	}
}

func WithdrawalToTransaction(withdrawal *entity.Withdrawal) model.TransactionResponse {
	return model.TransactionResponse{
		ID:              withdrawal.ID,
		UserID:          withdrawal.UserID,
		Amount:          withdrawal.Amount,
		TransactionType: "withdrawal",
		Status:          withdrawal.Status,
		CreatedAt:       withdrawal.CreatedAt,
		ProcessedAt:     withdrawal.ProcessedAt,
		UpdatedAt:       withdrawal.UpdatedAt,
	}
}

func DepositToApprovedEvent(deposit *entity.Deposit) *model.DepositApprovedEvent {
	return &model.DepositApprovedEvent{
		ID:        deposit.ID,
		UserID:    deposit.UserID,
		Amount:    deposit.Amount,
		UTRNumber: deposit.UTRNumber,
	}
}

func WithdrawalToStatusEvent(withdrawal *entity.Withdrawal) *model.WithdrawalStatusEvent {
	return &model.WithdrawalStatusEvent{
		ID:     withdrawal.ID,
		UserID: withdrawal.UserID,
		Amount: withdrawal.Amount,
		Status: withdrawal.Status,
	}
}
