package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Single-operator credentials. The password hash is a bcrypt hash set at
	// deploy time.
	OperatorUsername     string
	OperatorPasswordHash string

	// Account codes the monthly sales/purchases rollup is keyed on.
	SalesAccountCode     int
	PurchasesAccountCode int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "blue-return-app")
	viper.SetDefault("OPERATOR_USERNAME", "operator")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("SALES_ACCOUNT_CODE", 4100)
	viper.SetDefault("PURCHASES_ACCOUNT_CODE", 5100)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		JWTExpiryDuration:    viper.GetDuration("JWT_EXPIRY_DURATION"),
		JWTIssuer:            viper.GetString("JWT_ISSUER"),
		OperatorUsername:     viper.GetString("OPERATOR_USERNAME"),
		OperatorPasswordHash: viper.GetString("OPERATOR_PASSWORD_HASH"),
		SalesAccountCode:     viper.GetInt("SALES_ACCOUNT_CODE"),
		PurchasesAccountCode: viper.GetInt("PURCHASES_ACCOUNT_CODE"),
	}
	return cfg, nil
}
