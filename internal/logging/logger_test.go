package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	logger := NewLogger(Config{Output: &bytes.Buffer{}})
	if logger == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerDefaultsToInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Output: &bytes.Buffer{}})

	if enabled := logger.Enabled(context.Background(), slog.LevelInfo); !enabled {
		t.Fatal("expected info level to be enabled")
	}

	if enabled := logger.Enabled(context.Background(), slog.LevelDebug); enabled {
		t.Fatal("expected debug level to be disabled")
	}
}

func TestNewLoggerHonorsLevel(t *testing.T) {
	logger := NewLogger(Config{Level: "error", Output: &bytes.Buffer{}})
	if logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatal("expected warn to be disabled at error level")
	}

	debug := NewLogger(Config{Level: "DEBUG", Output: &bytes.Buffer{}})
	if !debug.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug to be enabled")
	}
}

func TestNewLoggerJSONIncludesServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Service: "kbo-games-service", Version: "v1", Output: &buf})

	logger.Info("hello", slog.String(FieldDate, "20240919"))

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", line, err)
	}
	if entry["msg"] != "hello" {
		t.Fatalf("expected msg hello, got %v", entry["msg"])
	}
	if entry[FieldService] != "kbo-games-service" || entry[FieldVersion] != "v1" {
		t.Fatalf("expected service/version fields, got %v", entry)
	}
	if entry[FieldDate] != "20240919" {
		t.Fatalf("expected date field, got %v", entry[FieldDate])
	}
}

func TestContextRoundTrip(t *testing.T) {
	fallback := NewLogger(Config{Output: &bytes.Buffer{}})
	scoped := fallback.With("scope", "request")

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback when no logger stored")
	}

	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatal("expected stored logger")
	}

	if got := WithLogger(ctx, nil); got != ctx {
		t.Fatal("expected nil logger to leave context untouched")
	}
}

func TestErrorHelperAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Output: &buf})

	Error(context.Background(), logger, "fetch failed", errors.New("boom"))
	Error(context.Background(), nil, "ignored", errors.New("boom"))

	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Fatalf("expected error field in %q", buf.String())
	}
}
