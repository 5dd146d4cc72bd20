package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port       string
	LogLevel   slog.Level
	EventQueue EventQueueConfig
	Redis      *RedisConfig
	Database   *DatabaseConfig
	Schedule   *ScheduleConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	scheduleConfig, err := LoadScheduleConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:       port,
		LogLevel:   parseLogLevel(os.Getenv("LOG_LEVEL")),
		EventQueue: LoadEventQueueConfig(),
		Redis:      redisConfig,
		Database:   LoadDatabaseConfig(),
		Schedule:   scheduleConfig,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// positiveInt reads a positive integer from the environment, falling back
// to def when unset or invalid.
func positiveInt(env string, def int) int {
	if v := os.Getenv(env); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
