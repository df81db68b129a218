package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	configs := InitConfig("does-not-exist.env")

	assert.Equal(t, "kuppi", configs.App.Name)
	assert.Equal(t, "http://localhost:5000", configs.API.BaseURL)
	assert.Equal(t, 10*time.Second, configs.API.Timeout)
	assert.Equal(t, "file", configs.Session.Backend)
	assert.NotEmpty(t, configs.Session.FilePath)
	assert.Equal(t, 3, configs.OTP.MaxAttempts)
	assert.Equal(t, 10*time.Minute, configs.OTP.Expiry)
	assert.Equal(t, time.Minute, configs.OTP.ResendCooldown)
	assert.Equal(t, "info", configs.Logger.Level)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("KUPPI_API_URL", "https://api.kuppi.app")
	t.Setenv("KUPPI_API_TIMEOUT", "3s")
	t.Setenv("SESSION_STORE_BACKEND", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("OTP_MAX_ATTEMPTS", "5")

	configs := InitConfig("")

	assert.Equal(t, "https://api.kuppi.app", configs.API.BaseURL)
	assert.Equal(t, 3*time.Second, configs.API.Timeout)
	assert.Equal(t, "redis", configs.Session.Backend)
	assert.Equal(t, 6380, configs.Redis.Port)
	assert.Equal(t, 5, configs.OTP.MaxAttempts)
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("BAD_INT", "not-a-number")
	t.Setenv("BAD_BOOL", "not-a-bool")
	t.Setenv("BAD_DURATION", "not-a-duration")

	assert.Equal(t, 7, GetEnvAsInt("BAD_INT", 7))
	assert.Equal(t, true, GetEnvAsBool("BAD_BOOL", true))
	assert.Equal(t, time.Second, GetEnvAsDuration("BAD_DURATION", time.Second))
	assert.Equal(t, "fallback", GetEnv("UNSET_KEY_FOR_TEST", "fallback"))
}
