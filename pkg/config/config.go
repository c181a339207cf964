package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	SessionSecret string
	SessionTTL    int64 // seconds

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	AllowedOrigin      string

	// Simulated latency for the mock identity provider and checkout, in ms.
	MockDelayMs int64

	ShippingFlatFee float64
	TaxRate         float64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		SessionSecret: getEnv("SESSION_SECRET", "shopmart-dev-secret"),
		SessionTTL:    getEnvAsInt64("SESSION_TTL", 7*24*60*60), // 7 days

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/v1/auth/google/callback"),
		AllowedOrigin:      getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		MockDelayMs: getEnvAsInt64("MOCK_DELAY_MS", 800),

		ShippingFlatFee: getEnvAsFloat64("SHIPPING_FLAT_FEE", 10),
		TaxRate:         getEnvAsFloat64("TAX_RATE", 0.08),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}
