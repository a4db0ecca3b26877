package http

import (
	"invest-service/src/internal/model"
	"invest-service/src/internal/usecase"
	"invest-service/src/pkg/log"
	"invest-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	Log           log.Log
	AdminUseCase  *usecase.AdminUseCase
	WalletUseCase *usecase.WalletUseCase
	PlanUseCase   *usecase.PlanUseCase
}

func NewAdminController(
	adminUseCase *usecase.AdminUseCase,
	walletUseCase *usecase.WalletUseCase,
	planUseCase *usecase.PlanUseCase,
	logger log.Log,
) *AdminController {
	return &AdminController{
		Log:           logger,
		AdminUseCase:  adminUseCase,
		WalletUseCase: walletUseCase,
		PlanUseCase:   planUseCase,
	}
}

func (c *AdminController) ListUsers(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.ListUsers(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Users", fiber.StatusOK, ctx)
}

func (c *AdminController) ListPlans(ctx *fiber.Ctx) error {
	result := c.PlanUseCase.ListAllPlans(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Plans", fiber.StatusOK, ctx)
}

func (c *AdminController) CreatePlan(ctx *fiber.Ctx) error {
	request := new(model.CreatePlanRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.CreatePlan", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.PlanUseCase.CreatePlan(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Investment plan created successfully", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdatePlan(ctx *fiber.Ctx) error {
	request := new(model.UpdatePlanRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.UpdatePlan", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = ctx.Params("id")

	result := c.PlanUseCase.UpdatePlan(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Investment plan updated successfully", fiber.StatusOK, ctx)
}

func (c *AdminController) ListTransactions(ctx *fiber.Ctx) error {
	result := c.WalletUseCase.ListAllTransactions(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transactions", fiber.StatusOK, ctx)
}

func (c *AdminController) ListWithdrawals(ctx *fiber.Ctx) error {
	result := c.WalletUseCase.ListAllWithdrawals(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Withdrawals", fiber.StatusOK, ctx)
}

func (c *AdminController) ApproveRecharge(ctx *fiber.Ctx) error {
	request := &model.ApproveDepositRequest{
		DepositID: ctx.Params("id"),
	}

	result := c.WalletUseCase.ApproveDeposit(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Recharge approved successfully", fiber.StatusOK, ctx)
}

func (c *AdminController) RejectRecharge(ctx *fiber.Ctx) error {
	request := &model.RejectDepositRequest{
		DepositID: ctx.Params("id"),
	}

	result := c.WalletUseCase.RejectDeposit(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Recharge rejected successfully", fiber.StatusOK, ctx)
}

func (c *AdminController) UpdateWithdrawalStatus(ctx *fiber.Ctx) error {
	request := new(model.UpdateWithdrawalStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.UpdateWithdrawalStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.WithdrawalID = ctx.Params("id")

	result := c.WalletUseCase.UpdateWithdrawalStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Withdrawal updated successfully", fiber.StatusOK, ctx)
}

func (c *AdminController) Dashboard(ctx *fiber.Ctx) error {
	result := c.AdminUseCase.Dashboard(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Dashboard", fiber.StatusOK, ctx)
}
