// wmsctl is an operational smoke tool: it fetches one WMS reference
// dictionary and prints the decoded response as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cargoflow-hq/wms-bridge/internal/config"
	"github.com/cargoflow-hq/wms-bridge/pkg/wms"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wmsctl failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	name := "warehouses"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := wms.NewClient(wms.Config{
		BaseURL: cfg.WMSBaseURL,
		Credentials: wms.Credentials{
			Username: cfg.WMSUsername,
			Password: cfg.WMSPassword,
			Scheme:   cfg.WMSAuthScheme,
		},
		Timeout: cfg.WMSTimeout,
	})

	result, err := client.Reference(ctx, name)
	if err != nil {
		return fmt.Errorf("fetch reference %q: %w", name, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
