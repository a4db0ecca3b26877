package http

import (
	"invest-service/src/internal/delivery/http/middleware"
	"invest-service/src/internal/model"
	"invest-service/src/internal/usecase"
	"invest-service/src/pkg/log"
	"invest-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type InvestmentController struct {
	Log         log.Log
	UseCase     *usecase.InvestmentUseCase
	PlanUseCase *usecase.PlanUseCase
}

func NewInvestmentController(useCase *usecase.InvestmentUseCase, planUseCase *usecase.PlanUseCase, logger log.Log) *InvestmentController {
	return &InvestmentController{
		Log:         logger,
		UseCase:     useCase,
		PlanUseCase: planUseCase,
	}
}

func (c *InvestmentController) ListPlans(ctx *fiber.Ctx) error {
	result := c.PlanUseCase.ListActivePlans(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Investment plans", fiber.StatusOK, ctx)
}

func (c *InvestmentController) Invest(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.InvestRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("InvestmentController.Invest", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.Invest(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Investment funded successfully", fiber.StatusCreated, ctx)
}

func (c *InvestmentController) ListInvestments(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ListInvestments(ctx.Context(), &model.ListHistoryRequest{UserID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Investments", fiber.StatusOK, ctx)
}

func (c *InvestmentController) GetReferrals(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.GetReferrals(ctx.Context(), &model.GetUserRequest{ID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Referral details", fiber.StatusOK, ctx)
}
