package main

import (
	"context"
	"testing"
)

func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunFailsOnInvalidConfig(t *testing.T) {
	t.Setenv("PROVIDER", "unknown")

	if err := run(context.Background(), func() {}); err == nil {
		t.Fatalf("expected config error")
	}
}

func TestRunReturnsAfterCancel(t *testing.T) {
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("PORT", "0")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := run(ctx, cancel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
