package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"invest-service/src/internal/config"
	"invest-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "INVEST_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("jwt.expiry_hours", 24)
	viperConfig.SetDefault("wallet.minimum_withdrawal", 100)
	viperConfig.SetDefault("referral.level1_percent", 30)
	viperConfig.SetDefault("referral.level2_percent", 2)
	viperConfig.SetDefault("referral.level3_percent", 1)
	log.InitLogger(viperConfig)
	config.NewKafkaConfig(viperConfig)
	logger := log.GetLogger()
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	mux := asynq.NewServeMux()
	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
		Async:    mux,
	})

	asynqServer := config.NewAsynqServer(viperConfig)
	go func() {
		if err := asynqServer.Run(mux); err != nil {
			logger.Error("main", fmt.Sprintf("asynq server stopped: %v", err), "asynq", "")
		}
	}()

	scheduler, err := config.NewAsynqScheduler(viperConfig)
	if err != nil {
		logger.Error("main", fmt.Sprintf("failed to build scheduler: %v", err), "asynq", "")
	} else {
		go func() {
			if err := scheduler.Run(); err != nil {
				logger.Error("main", fmt.Sprintf("asynq scheduler stopped: %v", err), "asynq", "")
			}
		}()
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	go func() {
		<-quit
		logger.Info("main", "Server invest-service is shutting down...", "graceful", "")

		_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		asynqServer.Shutdown()
		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
	}

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
