package config

import (
	"invest-service/src/internal/delivery/http"
	"invest-service/src/internal/delivery/http/middleware"
	"invest-service/src/internal/delivery/http/route"
	"invest-service/src/internal/gateway/messaging"
	"invest-service/src/internal/repository"
	"invest-service/src/internal/usecase"
	"invest-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "invest-service/src/pkg/kafka/confluent"
	"invest-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafkaPkgConfluent.Producer
	Redis    redis.UniversalClient
	Async    *asynq.ServeMux
}

const TypeAccrueProfit = "investment:accrue-profit"

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	walletRepository := repository.NewWalletRepository()
	userRepository := repository.NewUserRepository(config.DB)
	depositRepository := repository.NewDepositRepository(config.DB, walletRepository)
	withdrawalRepository := repository.NewWithdrawalRepository(config.DB, walletRepository)
	planRepository := repository.NewPlanRepository(config.DB)
	investmentRepository := repository.NewInvestmentRepository(config.DB, walletRepository)
	commissionRepository := repository.NewCommissionRepository(config.DB)
	ledgerProducer := messaging.NewLedgerProducer(config.Producer, config.Log)

	// setup use cases
	authUseCase := usecase.NewAuthUseCase(
		config.Log,
		config.Validate,
		userRepository,
		config.Config,
	)
	walletUseCase := usecase.NewWalletUseCase(
		config.Log,
		config.Validate,
		userRepository,
		depositRepository,
		withdrawalRepository,
		config.Config,
		config.Redis,
		ledgerProducer,
	)
	planUseCase := usecase.NewPlanUseCase(
		config.Log,
		config.Validate,
		planRepository,
		config.Config,
		config.Redis,
	)
	investmentUseCase := usecase.NewInvestmentUseCase(
		config.Log,
		config.Validate,
		userRepository,
		planRepository,
		investmentRepository,
		commissionRepository,
		config.Config,
		ledgerProducer,
	)
	adminUseCase := usecase.NewAdminUseCase(
		config.Log,
		userRepository,
		depositRepository,
		withdrawalRepository,
		config.Config,
		config.Redis,
	)

	// setup controllers
	authController := http.NewAuthController(authUseCase, config.Log)
	walletController := http.NewWalletController(walletUseCase, config.Log)
	investmentController := http.NewInvestmentController(investmentUseCase, planUseCase, config.Log)
	adminController := http.NewAdminController(adminUseCase, walletUseCase, planUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)
	adminMiddleware := middleware.RequireAdmin(userRepository)

	config.Async.HandleFunc(TypeAccrueProfit, investmentUseCase.AccrueDailyProfit)

	routeConfig := route.RouteConfig{
		App:                  config.App,
		AuthController:       authController,
		WalletController:     walletController,
		InvestmentController: investmentController,
		AdminController:      adminController,
		AuthMiddleware:       authMiddleware,
		AdminMiddleware:      adminMiddleware,
	}
	routeConfig.Setup()
}
