package http

import (
	"invest-service/src/internal/delivery/http/middleware"
	"invest-service/src/internal/model"
	"invest-service/src/internal/usecase"
	"invest-service/src/pkg/log"
	"invest-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletController struct {
	Log     log.Log
	UseCase *usecase.WalletUseCase
}

func NewWalletController(useCase *usecase.WalletUseCase, logger log.Log) *WalletController {
	return &WalletController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WalletController) GetRechargeDetails(ctx *fiber.Ctx) error {
	result := c.UseCase.RechargeDetails(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Recharge details", fiber.StatusOK, ctx)
}

func (c *WalletController) SubmitRecharge(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.SubmitDepositRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.SubmitRecharge", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.SubmitDeposit(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Recharge request submitted successfully", fiber.StatusCreated, ctx)
}

func (c *WalletController) ListRecharges(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ListDeposits(ctx.Context(), &model.ListHistoryRequest{UserID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Recharge history", fiber.StatusOK, ctx)
}

func (c *WalletController) SubmitWithdrawal(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.SubmitWithdrawalRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.SubmitWithdrawal", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.SubmitWithdrawal(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Withdrawal request submitted successfully", fiber.StatusCreated, ctx)
}

func (c *WalletController) ListWithdrawals(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ListWithdrawals(ctx.Context(), &model.ListHistoryRequest{UserID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Withdrawal history", fiber.StatusOK, ctx)
}

func (c *WalletController) ListTransactions(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ListTransactions(ctx.Context(), &model.ListHistoryRequest{UserID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transaction history", fiber.StatusOK, ctx)
}
