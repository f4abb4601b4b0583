package testutil

import (
	"bytes"
	"log/slog"

	"kbo-games-service/internal/logging"
)

// NewBufferLogger returns a JSON logger backed by a buffer and the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Format: "json", Level: "debug", Output: &buf})
	return logger, &buf
}
