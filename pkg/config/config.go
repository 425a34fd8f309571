package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const defaultQuoteExpirationDays = 3

// Config groups the service settings. Values come from environment variables,
// optionally seeded by a .env or config.env file in the working directory.
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	AWS    AWSConfig
	Tables TablesConfig
	Rules  RulesConfig
}

type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

type HTTPConfig struct {
	Port      int
	RateLimit RateLimitConfig
}

// RateLimitConfig throttles requests per client IP.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// AWSConfig holds DynamoDB connection settings. Local DynamoDB does not check
// credentials but the SDK still requires some, hence the "local" defaults.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TablesConfig struct {
	ServiceOrders      string
	Clients            string
	Services           string
	Stock              string
	ServiceOrderEvents string
}

// RulesConfig carries the business thresholds that operators may tune.
type RulesConfig struct {
	QuoteExpirationDays int
	AllowZeroQuote      bool
}

// Load reads the configuration. Environment variables take precedence over files.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "os-service-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Port: getInt(v, "HTTP_PORT", 8080),
			RateLimit: RateLimitConfig{
				Enabled: getBool(v, "RATE_LIMIT_ENABLED", true),
				RPS:     getFloat(v, "RATE_LIMIT_RPS", 20),
				Burst:   getInt(v, "RATE_LIMIT_BURST", 40),
			},
		},
		AWS: AWSConfig{
			Region:           getString(v, "AWS_REGION", "us-east-1"),
			AccessKeyID:      getString(v, "AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getString(v, "AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: getString(v, "DYNAMODB_ENDPOINT", ""),
		},
		Tables: TablesConfig{
			ServiceOrders:      getString(v, "SERVICE_ORDERS_TABLE", "service_orders"),
			Clients:            getString(v, "CLIENTS_TABLE", "clients"),
			Services:           getString(v, "SERVICES_TABLE", "services"),
			Stock:              getString(v, "STOCK_TABLE", "stock_items"),
			ServiceOrderEvents: getString(v, "SERVICE_ORDER_EVENTS_TABLE", "service_order_events"),
		},
		Rules: RulesConfig{
			QuoteExpirationDays: getInt(v, "OS_QUOTE_EXPIRATION_DAYS", defaultQuoteExpirationDays),
			AllowZeroQuote:      getBool(v, "OS_ALLOW_ZERO_QUOTE", false),
		},
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return n
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil {
		return def
	}
	return f
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
