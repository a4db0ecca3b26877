package config

import (
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

func asynqRedisOpt(v *viper.Viper) asynq.RedisClientOpt {
	host := v.GetString("redis.host")
	if host == "" {
		host = "127.0.0.1"
	}

	port := v.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: v.GetString("redis.password"),
	}
}

func NewAsynqServer(v *viper.Viper) *asynq.Server {
	return asynq.NewServer(asynqRedisOpt(v), asynq.Config{
		Concurrency: 1,
	})
}

// NewAsynqScheduler enqueues the daily profit accrual task on a cron
// schedule (config key asynq.accrue_cron, default midnight).
func NewAsynqScheduler(v *viper.Viper) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(asynqRedisOpt(v), nil)

	cron := v.GetString("asynq.accrue_cron")
	if cron == "" {
		cron = "0 0 * * *"
	}

	if _, err := scheduler.Register(cron, asynq.NewTask(TypeAccrueProfit, nil)); err != nil {
		return nil, err
	}

	return scheduler, nil
}
