package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cargoflow-hq/wms-bridge/internal/app"
	"github.com/cargoflow-hq/wms-bridge/internal/config"
	"github.com/cargoflow-hq/wms-bridge/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bridge start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("bridge starting", "app", cfg.AppName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bridge, err := app.NewBridge(ctx, cfg, logger.Global{})
	if err != nil {
		logger.ErrorObj("failed to initialize bridge", "error", err)
		return err
	}

	if err := bridge.Run(ctx); err != nil {
		return fmt.Errorf("bridge run: %w", err)
	}

	return nil
}
