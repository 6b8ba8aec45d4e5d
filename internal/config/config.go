package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from an app.env file or environment variables.
type Config struct {
	AppName  string `mapstructure:"APP_NAME"`
	AppPort  string `mapstructure:"APP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"` // debug, info, warn, error

	// PostgreSQL
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Hot product / auto promotion policy
	HotProductThreshold      int           `mapstructure:"HOT_PRODUCT_THRESHOLD"`
	HotProductWindow         time.Duration `mapstructure:"HOT_PRODUCT_WINDOW"`
	AutoPromoDiscountPercent float64       `mapstructure:"AUTO_PROMO_DISCOUNT_PERCENT"`
	AutoPromoDuration        time.Duration `mapstructure:"AUTO_PROMO_DURATION"`
	AutoPromoMinOrderQty     int           `mapstructure:"AUTO_PROMO_MIN_ORDER_QTY"`

	// Midtrans Snap
	MidtransServerKey    string `mapstructure:"MIDTRANS_SERVER_KEY"`
	MidtransBaseURL      string `mapstructure:"MIDTRANS_BASE_URL"`
	MidtransIsProduction bool   `mapstructure:"MIDTRANS_IS_PRODUCTION"`

	// OpenTelemetry, exporters are disabled when the endpoint is empty
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `mapstructure:"SERVICE_NAME"`
}

// LoadConfig reads configuration from path/app.env and the environment.
// A .env file in the working directory, if present, is loaded first.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.ReadInConfig(); err == nil {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Using config file")
	} else {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
		log.Info().Msg("No config file found, using environment variables and defaults.")
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is not set")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "dagangcerdas-api")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)

	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	v.SetDefault("HOT_PRODUCT_THRESHOLD", 10)
	v.SetDefault("HOT_PRODUCT_WINDOW", 7*24*time.Hour)
	v.SetDefault("AUTO_PROMO_DISCOUNT_PERCENT", 10)
	v.SetDefault("AUTO_PROMO_DURATION", 7*24*time.Hour)
	v.SetDefault("AUTO_PROMO_MIN_ORDER_QTY", 1)

	v.SetDefault("MIDTRANS_SERVER_KEY", "")
	v.SetDefault("MIDTRANS_BASE_URL", "https://app.sandbox.midtrans.com")
	v.SetDefault("MIDTRANS_IS_PRODUCTION", false)

	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("SERVICE_NAME", "dagangcerdas-api")
}
