package route

import (
	"invest-service/src/internal/delivery/http"
	"invest-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                  *fiber.App
	AuthController       *http.AuthController
	WalletController     *http.WalletController
	InvestmentController *http.InvestmentController
	AdminController      *http.AdminController
	AuthMiddleware       fiber.Handler
	AdminMiddleware      fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	c.SetupPublicRoute()
	c.SetupAuthRoute()
	c.SetupAdminRoute()
}

func (c *RouteConfig) SetupPublicRoute() {
	api := c.App.Group("/api/v1")
	api.Post("/auth/register", c.AuthController.Register)
	api.Post("/auth/login", c.AuthController.Login)
	api.Get("/plans", c.InvestmentController.ListPlans)
}

func (c *RouteConfig) SetupAuthRoute() {
	api := c.App.Group("/api/v1", c.AuthMiddleware)
	api.Get("/users/profile", c.AuthController.GetProfile)
	api.Get("/payments/recharge-details", c.WalletController.GetRechargeDetails)
	api.Post("/recharges", c.WalletController.SubmitRecharge)
	api.Get("/recharges", c.WalletController.ListRecharges)
	api.Post("/withdrawals", c.WalletController.SubmitWithdrawal)
	api.Get("/withdrawals", c.WalletController.ListWithdrawals)
	api.Get("/transactions", c.WalletController.ListTransactions)
	api.Post("/investments", c.InvestmentController.Invest)
	api.Get("/investments", c.InvestmentController.ListInvestments)
	api.Get("/referrals", c.InvestmentController.GetReferrals)
}

func (c *RouteConfig) SetupAdminRoute() {
	admin := c.App.Group("/api/v1/admin", c.AuthMiddleware, c.AdminMiddleware)
	admin.Get("/users", c.AdminController.ListUsers)
	admin.Get("/plans", c.AdminController.ListPlans)
	admin.Post("/plans", c.AdminController.CreatePlan)
	admin.Put("/plans/:id", c.AdminController.UpdatePlan)
	admin.Get("/transactions", c.AdminController.ListTransactions)
	admin.Get("/withdrawals", c.AdminController.ListWithdrawals)
	admin.Put("/recharges/:id/approve", c.AdminController.ApproveRecharge)
	admin.Put("/recharges/:id/reject", c.AdminController.RejectRecharge)
	admin.Put("/withdrawals/:id", c.AdminController.UpdateWithdrawalStatus)
	admin.Get("/dashboard", c.AdminController.Dashboard)
}
