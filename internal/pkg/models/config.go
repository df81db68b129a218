package models

import "time"

// Config is the full client configuration tree, loaded from the environment.
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionStoreConfig
	Redis   RedisConfig
	OTP     OTPConfig
	Logger  LoggerConfig
}

// AppConfig describes the embedding application.
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
}

// APIConfig locates the remote auth API.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionStoreConfig selects and configures the token store backend.
type SessionStoreConfig struct {
	// Backend is "file" or "redis".
	Backend string
	// FilePath is the token file location for the file backend.
	FilePath string
	// Profile namespaces the redis key for the redis backend.
	Profile string
}

// RedisConfig holds connection settings for the redis store backend.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// OTPConfig bounds the client-side OTP challenge flow.
type OTPConfig struct {
	// MaxAttempts abandons a challenge after this many failed verifications.
	MaxAttempts int
	// Expiry discards a challenge older than this window.
	Expiry time.Duration
	// ResendCooldown is the minimum gap between OTP requests for one email.
	ResendCooldown time.Duration
}

// LoggerConfig configures the structured logger.
type LoggerConfig struct {
	Level    string
	FilePath string
}
