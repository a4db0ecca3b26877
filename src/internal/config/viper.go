package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.json from the working directory when present and
// lets environment variables (INVEST_WEB_PORT, ...) override everything.
func NewViper() *viper.Viper {
	config := viper.New()

	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")

	if err := config.ReadInConfig(); err != nil {
		fmt.Printf("config file not loaded, relying on defaults and env: %v\n", err)
	}

	config.SetEnvPrefix("INVEST")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	return config
}
