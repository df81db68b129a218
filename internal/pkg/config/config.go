package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
)

// InitConfig loads configuration from a .env file in local environments and
// from the process environment otherwise.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "kuppi")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)

	// Auth API config
	configs.API.BaseURL = GetEnv("KUPPI_API_URL", "http://localhost:5000")
	configs.API.Timeout = GetEnvAsDuration("KUPPI_API_TIMEOUT", 10*time.Second)

	// Session store config
	configs.Session.Backend = GetEnv("SESSION_STORE_BACKEND", "file")
	configs.Session.FilePath = GetEnv("SESSION_STORE_FILE", defaultTokenPath())
	configs.Session.Profile = GetEnv("SESSION_STORE_PROFILE", "default")

	// Redis config (redis store backend only)
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// OTP flow config
	configs.OTP.MaxAttempts = GetEnvAsInt("OTP_MAX_ATTEMPTS", 3)
	configs.OTP.Expiry = GetEnvAsDuration("OTP_EXPIRY", 10*time.Minute)
	configs.OTP.ResendCooldown = GetEnvAsDuration("OTP_RESEND_COOLDOWN", time.Minute)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// defaultTokenPath places the token file under the user config directory,
// falling back to the working directory when that cannot be resolved.
func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".kuppi-session"
	}
	return filepath.Join(dir, "kuppi", "session")
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
