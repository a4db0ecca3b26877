package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"invest-service/src/internal/entity"
	"invest-service/src/internal/gateway/messaging"
	"invest-service/src/internal/model"
	"invest-service/src/internal/model/converter"
	"invest-service/src/internal/repository"
	httpError "invest-service/src/pkg/http-error"
	"invest-service/src/pkg/log"
	"invest-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const rechargeDetailsKey = "PAYMENT:RECHARGE-DETAILS"

type WalletUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	UserRepository       repository.UserStore
	DepositRepository    repository.DepositStore
	WithdrawalRepository repository.WithdrawalStore
	Config               *viper.Viper
	Redis                redis.UniversalClient
	LedgerProducer       *messaging.LedgerProducer
}

func NewWalletUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository repository.UserStore,
	depositRepository repository.DepositStore,
	withdrawalRepository repository.WithdrawalStore,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	ledgerProducer *messaging.LedgerProducer,
) *WalletUseCase {
	return &WalletUseCase{
		Log:                  logger,
		Validate:             validate,
		UserRepository:       userRepository,
		DepositRepository:    depositRepository,
		WithdrawalRepository: withdrawalRepository,
		Config:               cfg,
		Redis:                redisClient,
		LedgerProducer:       ledgerProducer,
	}
}

// SubmitDeposit records a pending recharge request. Nothing is credited
// until an admin approves it against the UTR.
func (c *WalletUseCase) SubmitDeposit(ctx context.Context, request *model.SubmitDepositRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "SubmitDeposit", request.UserID)
		return result
	}

	if _, err := c.UserRepository.FindByID(ctx, request.UserID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "user not found"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "SubmitDeposit", request.UserID)
		return result
	}

	deposit := &entity.Deposit{
		ID:        uuid.NewString(),
		UserID:    request.UserID,
		Amount:    request.Amount,
		UTRNumber: request.UTRNumber,
		Status:    entity.DepositStatusPending,
		CreatedAt: time.Now(),
	}

	if err := c.DepositRepository.Create(ctx, deposit); err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "SubmitDeposit-create", request.UserID)
		return result
	}

	c.Log.Info("wallet-usecase", "recharge request submitted", "SubmitDeposit", deposit.ID)
	result.Data = converter.DepositToResponse(deposit)
	return result
}

// ApproveDeposit is admin only and is the sole trigger that credits the
// withdrawal wallet. A second approval of the same deposit fails.
func (c *WalletUseCase) ApproveDeposit(ctx context.Context, request *model.ApproveDepositRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "ApproveDeposit", request.DepositID)
		return result
	}

	deposit, ok, err := c.DepositRepository.Approve(ctx, request.DepositID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "ApproveDeposit", request.DepositID)
		return result
	}
	if deposit == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "transaction not found"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "ApproveDeposit", request.DepositID)
		return result
	}
	if !ok {
		errObj := httpError.NewBadRequest()
		errObj.Message = "transaction is not pending"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "ApproveDeposit", request.DepositID)
		return result
	}

	if err := c.LedgerProducer.SendDepositApproved(converter.DepositToApprovedEvent(deposit)); err != nil {
		c.Log.Error("wallet-usecase", fmt.Sprintf("failed to publish deposit approved event: %v", err), "ApproveDeposit", deposit.ID)
	}

	c.Log.Info("wallet-usecase", "recharge approved", "ApproveDeposit", deposit.ID)
	result.Data = converter.DepositToResponse(deposit)
	return result
}

// RejectDeposit closes a pending recharge without touching any balance.
func (c *WalletUseCase) RejectDeposit(ctx context.Context, request *model.RejectDepositRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "RejectDeposit", request.DepositID)
		return result
	}

	deposit, ok, err := c.DepositRepository.Reject(ctx, request.DepositID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "RejectDeposit", request.DepositID)
		return result
	}
	if deposit == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "transaction not found"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "RejectDeposit", request.DepositID)
		return result
	}
	if !ok {
		errObj := httpError.NewBadRequest()
		errObj.Message = "transaction is not pending"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "RejectDeposit", request.DepositID)
		return result
	}

	c.Log.Info("wallet-usecase", "recharge rejected", "RejectDeposit", deposit.ID)
	result.Data = converter.DepositToResponse(deposit)
	return result
}

// SubmitWithdrawal debits the withdrawal wallet eagerly, so concurrent
// requests can never reserve more than the balance held.
func (c *WalletUseCase) SubmitWithdrawal(ctx context.Context, request *model.SubmitWithdrawalRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "SubmitWithdrawal", request.UserID)
		return result
	}

	minimum := c.Config.GetFloat64("wallet.minimum_withdrawal")
	if request.Amount < minimum {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("minimum withdrawal amount is %.0f", minimum)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "SubmitWithdrawal", request.UserID)
		return result
	}

	if _, err := c.UserRepository.FindByID(ctx, request.UserID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "user not found"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "SubmitWithdrawal", request.UserID)
		return result
	}

	withdrawal := &entity.Withdrawal{
		ID:        uuid.NewString(),
		UserID:    request.UserID,
		Amount:    request.Amount,
		Status:    entity.WithdrawalStatusPending,
		CreatedAt: time.Now(),
	}

	if err := c.WithdrawalRepository.CreateWithDebit(ctx, withdrawal); err != nil {
		if err == repository.ErrInsufficientFunds {
			errObj := httpError.NewBadRequest()
			errObj.Message = "insufficient balance"
			result.Error = errObj
			c.Log.Error("wallet-usecase", errObj.Message, "SubmitWithdrawal", request.UserID)
			return result
		}
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "SubmitWithdrawal-create", request.UserID)
		return result
	}

	c.Log.Info("wallet-usecase", "withdrawal request submitted", "SubmitWithdrawal", withdrawal.ID)
	result.Data = converter.WithdrawalToResponse(withdrawal)
	return result
}

// UpdateWithdrawalStatus applies an admin transition. Rejecting a pending
// request refunds the reserved amount in the same transaction.
func (c *WalletUseCase) UpdateWithdrawalStatus(ctx context.Context, request *model.UpdateWithdrawalStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "UpdateWithdrawalStatus", request.WithdrawalID)
		return result
	}

	withdrawal, err := c.WithdrawalRepository.FindByID(ctx, request.WithdrawalID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "withdrawal not found"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "UpdateWithdrawalStatus", request.WithdrawalID)
		return result
	}

	if !entity.LegalWithdrawalTransition(withdrawal.Status, request.Status) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("cannot move withdrawal from %s to %s", withdrawal.Status, request.Status)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "UpdateWithdrawalStatus", request.WithdrawalID)
		return result
	}

	refund := request.Status == entity.WithdrawalStatusRejected
	ok, err := c.WithdrawalRepository.UpdateStatus(ctx, request.WithdrawalID, withdrawal.Status, request.Status, refund)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "UpdateWithdrawalStatus", request.WithdrawalID)
		return result
	}
	if !ok {
		errObj := httpError.NewBadRequest()
		errObj.Message = "withdrawal status changed concurrently, retry"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "UpdateWithdrawalStatus", request.WithdrawalID)
		return result
	}

	withdrawal.Status = request.Status
	if err := c.LedgerProducer.SendWithdrawalStatus(converter.WithdrawalToStatusEvent(withdrawal)); err != nil {
		c.Log.Error("wallet-usecase", fmt.Sprintf("failed to publish withdrawal status event: %v", err), "UpdateWithdrawalStatus", withdrawal.ID)
	}

	c.Log.Info("wallet-usecase", fmt.Sprintf("withdrawal moved to %s", request.Status), "UpdateWithdrawalStatus", withdrawal.ID)
	result.Data = converter.WithdrawalToResponse(withdrawal)
	return result
}

func (c *WalletUseCase) ListDeposits(ctx context.Context, request *model.ListHistoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	deposits, err := c.DepositRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "ListDeposits", request.UserID)
		return result
	}

	responses := make([]model.DepositResponse, 0, len(deposits))
	for i := range deposits {
		responses = append(responses, *converter.DepositToResponse(&deposits[i]))
	}
	result.Data = responses
	return result
}

func (c *WalletUseCase) ListWithdrawals(ctx context.Context, request *model.ListHistoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	withdrawals, err := c.WithdrawalRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "ListWithdrawals", request.UserID)
		return result
	}

	responses := make([]model.WithdrawalResponse, 0, len(withdrawals))
	for i := range withdrawals {
		responses = append(responses, *converter.WithdrawalToResponse(&withdrawals[i]))
	}
	result.Data = responses
	return result
}

// ListTransactions merges recharges and withdrawals into one history,
// newest first.
func (c *WalletUseCase) ListTransactions(ctx context.Context, request *model.ListHistoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	deposits, err := c.DepositRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "ListTransactions-deposits", request.UserID)
		return result
	}
	withdrawals, err := c.WithdrawalRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "ListTransactions-withdrawals", request.UserID)
		return result
	}

	result.Data = mergeTransactions(deposits, withdrawals)
	return result
}

// ListAllTransactions is the admin variant covering every account.
func (c *WalletUseCase) ListAllTransactions(ctx context.Context) utils.Result {
	var result utils.Result

	deposits, err := c.DepositRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "ListAllTransactions-deposits", "")
		return result
	}
	withdrawals, err := c.WithdrawalRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "ListAllTransactions-withdrawals", "")
		return result
	}

	result.Data = mergeTransactions(deposits, withdrawals)
	return result
}

func (c *WalletUseCase) ListAllWithdrawals(ctx context.Context) utils.Result {
	var result utils.Result

	withdrawals, err := c.WithdrawalRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("wallet-usecase", err.Error(), "ListAllWithdrawals", "")
		return result
	}

	responses := make([]model.WithdrawalResponse, 0, len(withdrawals))
	for i := range withdrawals {
		responses = append(responses, *converter.WithdrawalToResponse(&withdrawals[i]))
	}
	result.Data = responses
	return result
}

// RechargeDetails returns the UPI target for manual transfers, cached in
// redis so config reads stay off the hot path.
func (c *WalletUseCase) RechargeDetails(ctx context.Context) utils.Result {
	var result utils.Result

	cached, err := c.Redis.Get(ctx, rechargeDetailsKey).Result()
	if err == nil && cached != "" {
		var details model.RechargeDetailsResponse
		if err := json.Unmarshal([]byte(cached), &details); err == nil {
			result.Data = &details
			return result
		}
	}

	details := &model.RechargeDetailsResponse{
		UPIID:     c.Config.GetString("payment.upi_id"),
		QRCodeURL: c.Config.GetString("payment.qr_code_url"),
	}

	payload, err := json.Marshal(details)
	if err == nil {
		if redisErr := c.Redis.Set(ctx, rechargeDetailsKey, payload, 30*time.Minute).Err(); redisErr != nil {
			c.Log.Error("wallet-usecase", redisErr.Error(), "RechargeDetails-cache", "")
		}
	}

	result.Data = details
	return result
}

func mergeTransactions(deposits []entity.Deposit, withdrawals []entity.Withdrawal) []model.TransactionResponse {
	transactions := make([]model.TransactionResponse, 0, len(deposits)+len(withdrawals))
	for i := range deposits {
		transactions = append(transactions, converter.DepositToTransaction(&deposits[i]))
	}
	for i := range withdrawals {
		transactions = append(transactions, converter.WithdrawalToTransaction(&withdrawals[i]))
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return transactions
}
