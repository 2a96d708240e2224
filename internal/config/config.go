package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration of the portfolio server.
type Config struct {
	AppPort     string
	StaticDir   string
	CORSOrigins string
	RabbitMQURL string // empty disables contact notifications
	LogLevel    string
	LogDir      string // empty logs to the console only
	Database    DatabaseConfig
}

// DatabaseConfig selects the GORM driver and its DSN.
type DatabaseConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":5001")
	v.SetDefault("STATIC_DIR", ".")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "portfolio.db?_busy_timeout=5000")
}

// Load reads the configuration from v, falling back to environment variables
// and the defaults above.
func Load(v *viper.Viper) Config {
	SetDefaults(v)
	v.AutomaticEnv()

	return Config{
		AppPort:     v.GetString("APP_PORT"),
		StaticDir:   v.GetString("STATIC_DIR"),
		CORSOrigins: v.GetString("CORS_ORIGINS"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),
		LogDir:      v.GetString("LOG_DIR"),
		Database: DatabaseConfig{
			Driver: strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:    v.GetString("DB_DSN"),
		},
	}
}
