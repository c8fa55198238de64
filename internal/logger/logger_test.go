package logger

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug level", "debug", "text"},
		{"info level", "info", "text"},
		{"warn level", "warn", "json"},
		{"error level", "error", "json"},
		{"invalid level", "invalid", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, tt.format)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info", "text")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	log.Info(ctx, "formatted message: %s %d", "test", 123)

	nop := NewNop()
	nop.Error(ctx, "discarded %d", 1)
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		want        []string
	}{
		{"debug logs everything", "debug", []string{"debug 1", "info 2", "warn 3", "error 4"}},
		{"info drops debug", "info", []string{"info 2", "warn 3", "error 4"}},
		{"warning alias", "warning", []string{"warn 3", "error 4"}},
		{"error only", "error", []string{"error 4"}},
		{"invalid level behaves as info", "bogus", []string{"info 2", "warn 3", "error 4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			log := newWithCore(core, zap.NewAtomicLevelAt(parseLevel(tt.configLevel)))

			ctx := context.Background()
			log.Debug(ctx, "debug %d", 1)
			log.Info(ctx, "info %d", 2)
			log.Warn(ctx, "warn %d", 3)
			log.Error(ctx, "error %d", 4)

			var got []string
			for _, e := range logs.All() {
				got = append(got, e.Message)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("logged %v, want %v", got, tt.want)
			}
		})
	}
}
