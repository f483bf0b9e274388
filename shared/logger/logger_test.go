package logger_test

import (
	"testing"

	"github.com/rs/zerolog"

	"todoapp/config"
	"todoapp/shared/logger"
)

func TestInitLogger(t *testing.T) {
	logger.InitLogger()

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level trace after init, got %s", zerolog.GlobalLevel())
	}
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{
			name:     "valid level",
			level:    "warn",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "invalid level falls back to trace",
			level:    "loud",
			expected: zerolog.TraceLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expected {
				t.Errorf("expected level %s, got %s", tt.expected, zerolog.GlobalLevel())
			}
		})
	}
}
