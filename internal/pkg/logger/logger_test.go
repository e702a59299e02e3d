package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/vellaperfumeria/storefront-backend/internal/config"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "debug", Format: "json"}}
	l := New(cfg)
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("expected JSON formatter, got %T", l.Formatter)
	}

	cfg.Logging = config.LoggingConfig{Level: "nonsense", Format: "text"}
	l = New(cfg)
	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("invalid level should fall back to info, got %s", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter, got %T", l.Formatter)
	}
}
