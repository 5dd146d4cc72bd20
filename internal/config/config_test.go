package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/KasumiMercury/production-autoschedule/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/schedule")
	t.Setenv("SCHEDULE_WORKDAY_START", "")
	t.Setenv("SCHEDULE_WORKDAY_END", "")
	t.Setenv("SCHEDULE_TIMEZONE", "")
	t.Setenv("SCHEDULE_CURSOR_POLICY", "")
	t.Setenv("SCHEDULE_PREVIEW_TTL_MINUTES", "")
	t.Setenv("SCHEDULE_MAX_TASKS", "")
	t.Setenv("EVENT_QUEUE_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Redis.Addr != defaultRedisAddr {
		t.Errorf("Redis.Addr = %q, want %q", cfg.Redis.Addr, defaultRedisAddr)
	}
	if cfg.Schedule.WorkdayStart != "08:00" || cfg.Schedule.WorkdayEnd != "17:00" {
		t.Errorf("workday = %s-%s, want 08:00-17:00", cfg.Schedule.WorkdayStart, cfg.Schedule.WorkdayEnd)
	}
	if cfg.Schedule.Location != time.UTC {
		t.Errorf("Location = %v, want UTC", cfg.Schedule.Location)
	}
	if cfg.Schedule.CursorPolicy != domain.CursorChained {
		t.Errorf("CursorPolicy = %q, want %q", cfg.Schedule.CursorPolicy, domain.CursorChained)
	}
	if cfg.Schedule.PreviewTTL != 30*time.Minute {
		t.Errorf("PreviewTTL = %v, want 30m", cfg.Schedule.PreviewTTL)
	}
	if cfg.Schedule.MaxTasks != 500 {
		t.Errorf("MaxTasks = %d, want 500", cfg.Schedule.MaxTasks)
	}
	if cfg.EventQueue.QueueName != defaultEventQueueName {
		t.Errorf("EventQueue.QueueName = %q, want %q", cfg.EventQueue.QueueName, defaultEventQueueName)
	}
	if err := ValidateForRun(cfg); err != nil {
		t.Errorf("ValidateForRun() = %v, want nil", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "redis db not a number",
			env:     map[string]string{"REDIS_DB": "one"},
			wantErr: ErrInvalidRedisDB,
		},
		{
			name:    "unknown timezone",
			env:     map[string]string{"SCHEDULE_TIMEZONE": "Mars/Olympus"},
			wantErr: ErrInvalidTimezone,
		},
		{
			name:    "unknown cursor policy",
			env:     map[string]string{"SCHEDULE_CURSOR_POLICY": "random"},
			wantErr: ErrInvalidCursorPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForRun(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{
			name:    "missing database url",
			mutate:  func(cfg *Config) { cfg.Database.URL = "" },
			wantErr: ErrDatabaseURLMissing,
		},
		{
			name:    "inverted workday",
			mutate:  func(cfg *Config) { cfg.Schedule.WorkdayStart, cfg.Schedule.WorkdayEnd = "17:00", "08:00" },
			wantErr: ErrInvalidWorkday,
		},
		{
			name:    "malformed workday",
			mutate:  func(cfg *Config) { cfg.Schedule.WorkdayEnd = "5pm" },
			wantErr: ErrInvalidWorkday,
		},
		{
			name:    "missing redis addr",
			mutate:  func(cfg *Config) { cfg.Redis.Addr = "" },
			wantErr: ErrRedisAddrMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/schedule")
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			tt.mutate(cfg)

			if err := ValidateForRun(cfg); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateForRun() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedisConfig_Options(t *testing.T) {
	cfg := &RedisConfig{Addr: "cache:6379", DB: 2, TLS: true}

	opts := cfg.Options()
	if opts.Addr != "cache:6379" || opts.DB != 2 {
		t.Errorf("Options() = %+v", opts)
	}
	if opts.TLSConfig == nil {
		t.Error("TLSConfig is nil, want TLS enabled")
	}
}
