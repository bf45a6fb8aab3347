package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"cs2analytics/internal/config"
)

func TestNew_LevelFromConfig(t *testing.T) {
	l, err := New(config.LogConfig{Level: "WARN", Encoding: "json"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn should be enabled")
	}
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	l, err := New(config.LogConfig{Level: "chatty", Encoding: "xml"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !l.Core().Enabled(zapcore.InfoLevel) || l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected info level")
	}
}
