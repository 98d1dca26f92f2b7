package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig carries every setting the display service reads. Values come
// from configs/config.defaults.yaml with APP_-prefixed environment
// variables layered on top (APP_POSTGRES_DSN overrides POSTGRES_DSN).
type AppConfig struct {
	ServicePort int    `mapstructure:"SERVICE_PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Empty disables persistence; overrides then live in memory only.
	PostgresDSN string `mapstructure:"POSTGRES_DSN"`

	// Empty serves the built-in English catalog only.
	LocaleDir     string `mapstructure:"LOCALE_DIR"`
	DefaultLocale string `mapstructure:"DEFAULT_LOCALE"`

	// Empty disables the corresponding admin auth scheme.
	AdminJWTSecret  string `mapstructure:"ADMIN_JWT_SECRET"`
	AdminAPIKeyHash string `mapstructure:"ADMIN_API_KEY_HASH"`

	ShutdownTimeoutSeconds int `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// Load reads the defaults file and the environment. A missing defaults file
// is fine (containers often configure purely through the environment); an
// unreadable one is not.
func Load(serviceName string) (*AppConfig, error) {
	v := viper.New()

	v.SetConfigName("config.defaults")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", 8089)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("POSTGRES_DSN", "")
	v.SetDefault("LOCALE_DIR", "")
	v.SetDefault("DEFAULT_LOCALE", "en")
	v.SetDefault("ADMIN_JWT_SECRET", "")
	v.SetDefault("ADMIN_API_KEY_HASH", "")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 30)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config for %s: %w", serviceName, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config for %s: %w", serviceName, err)
	}
	return &cfg, nil
}
