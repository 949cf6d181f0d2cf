package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName        = "MiniAppAPI"
	defaultAppEnv         = "development"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultShutdownDelay  = 10 * time.Second
	defaultAuthMaxAge     = 24 * time.Hour
	defaultUserCacheTTL   = 5 * time.Minute
	authAgeSecondsEnvVar  = "AUTH_MAX_AGE_SECONDS"
	authAgeDurEnvVar      = "AUTH_MAX_AGE"
	cacheTTLSecondsEnvVar = "USER_CACHE_TTL_SECONDS"
	cacheTTLDurEnvVar     = "USER_CACHE_TTL"
	shutdownSecondsEnvVar = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurEnvVar     = "SHUTDOWN_TIMEOUT"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	BotToken       string
	DebugAuthToken string
	AuthMaxAge     time.Duration
	UserCacheTTL   time.Duration
	ShutdownPeriod time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		BotToken:       os.Getenv("BOT_TOKEN"),
		DebugAuthToken: os.Getenv("DEBUG_AUTH_TOKEN"),
	}

	var err error
	if cfg.AuthMaxAge, err = durationEnv(authAgeSecondsEnvVar, authAgeDurEnvVar, defaultAuthMaxAge); err != nil {
		return Config{}, err
	}
	if cfg.UserCacheTTL, err = durationEnv(cacheTTLSecondsEnvVar, cacheTTLDurEnvVar, defaultUserCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownPeriod, err = durationEnv(shutdownSecondsEnvVar, shutdownDurEnvVar, defaultShutdownDelay); err != nil {
		return Config{}, err
	}

	if cfg.AuthMaxAge <= 0 {
		return Config{}, fmt.Errorf("%s must be positive", authAgeSecondsEnvVar)
	}

	// Without the bot token the verifier can only fail closed. Dev mode
	// tolerates its absence so the debug bypass stays usable against the
	// in-memory store.
	if !cfg.IsDev() {
		if cfg.BotToken == "" {
			return Config{}, fmt.Errorf("BOT_TOKEN must be set")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL must be set")
		}
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the app runs in a development environment.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

func durationEnv(secondsVar, durationVar string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(secondsVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", secondsVar, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	if v := os.Getenv(durationVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", durationVar, err)
		}
		return d, nil
	}
	return fallback, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
