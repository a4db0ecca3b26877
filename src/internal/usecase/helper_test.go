package usecase_test

import (
	"time"

	"invest-service/src/internal/gateway/messaging"
	"invest-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func testConfig() *viper.Viper {
	v := viper.New()
	v.Set("app.name", "INVEST_SERVICE_TEST")
	v.Set("log.level", "ERROR")
	v.Set("jwt.secret", "test-secret")
	v.Set("jwt.expiry_hours", 24)
	v.Set("wallet.minimum_withdrawal", 100.0)
	v.Set("referral.level1_percent", 30.0)
	v.Set("referral.level2_percent", 2.0)
	v.Set("referral.level3_percent", 1.0)
	v.Set("payment.upi_id", "merchant@upi")
	v.Set("payment.qr_code_url", "https://cdn.example.com/qr.png")
	return v
}

func testLogger(v *viper.Viper) log.Log {
	log.InitLogger(v)
	return log.GetLogger()
}

// testRedis points at a closed port with a tiny timeout so cache paths
// fall through to their source of truth instead of blocking.
func testRedis() redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
	})
}

func testLedgerProducer(v *viper.Viper) *messaging.LedgerProducer {
	return messaging.NewLedgerProducer(nil, testLogger(v))
}

func testValidator() *validator.Validate {
	return validator.New()
}
