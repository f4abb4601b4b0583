package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kbo-games-service/internal/config"
	"kbo-games-service/internal/logging"
	"kbo-games-service/internal/server"
)

const (
	appName    = "kbo-games-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stop context.CancelFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})
	logger.Info("starting",
		"provider", cfg.Provider,
		"timezone", cfg.Timezone,
		"strict_schema", cfg.KBO.StrictSchema,
	)

	server.New(cfg, logger).Run(ctx, stop)
	return nil
}
