package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cargoflow-hq/wms-bridge/internal/config"
	"github.com/cargoflow-hq/wms-bridge/internal/logger"
	"github.com/cargoflow-hq/wms-bridge/internal/storage"
	"github.com/cargoflow-hq/wms-bridge/pkg/publishers"
	"github.com/cargoflow-hq/wms-bridge/pkg/wms"
)

// Bridge is the runtime that polls the WMS for order changes, normalizes
// them, and fans the resulting events out to configured publishers. It also
// owns the company cache lifecycle.
type Bridge struct {
	cfg          *config.Config
	client       *wms.Client
	fanout       *publishers.Fanout
	pollInterval time.Duration
	log          logger.Logger
	store        storage.Store
	lastSync     time.Time
}

// NewBridge builds a bridge runtime from config files.
func NewBridge(ctx context.Context, cfg *config.Config, log logger.Logger) (*Bridge, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	pubRegistry := publishers.DefaultRegistry()
	pubClients, err := publishers.BuildAll(ctx, pubRegistry, enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	storeOpts := storage.Options{
		CompanyTTL:      cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"company_ttl_seconds":      int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	client := wms.NewClient(wms.Config{
		BaseURL: cfg.WMSBaseURL,
		Credentials: wms.Credentials{
			Username: cfg.WMSUsername,
			Password: cfg.WMSPassword,
			Scheme:   cfg.WMSAuthScheme,
		},
		Timeout: cfg.WMSTimeout,
	}, wms.WithCompanyStore(store))

	return &Bridge{
		cfg:          cfg,
		client:       client,
		fanout:       fanout,
		pollInterval: cfg.PollInterval,
		log:          log,
		store:        store,
		lastSync:     time.Now().Add(-cfg.PollInterval),
	}, nil
}

// Run starts the poll loop until the context is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	if b == nil || b.client == nil {
		return fmt.Errorf("bridge is not initialized")
	}
	defer b.closeStore()

	b.log.InfoObj("bridge loop starting", "bridge_state", map[string]any{
		"wms_base_url":     b.cfg.WMSBaseURL,
		"publishers_count": b.fanout.Size(),
		"poll_interval":    b.pollInterval.String(),
	})

	if err := b.runOnce(ctx); err != nil {
		return fmt.Errorf("initial poll: %w", err)
	}

	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.log.InfoObj("bridge loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := b.runOnce(ctx); err != nil {
				b.log.ErrorObj("scheduled poll failed", "error", err)
			}
		}
	}
}

// runOnce performs one poll pass: list changed orders and publish events.
func (b *Bridge) runOnce(ctx context.Context) error {
	start := time.Now()
	since := b.lastSync

	orders, err := b.client.OrdersUpdatedSince(ctx, since, nil)
	if err != nil {
		return fmt.Errorf("list orders updated since %s: %w", since.UTC().Format(time.RFC3339), err)
	}
	b.lastSync = start

	published := 0
	for _, order := range orders {
		companyName := ""
		if order.CompanyID != "" {
			company, err := b.client.Company(ctx, order.CompanyID)
			if err != nil {
				b.log.WarnObj("company resolution failed", "company_error", map[string]any{
					"order_id":   order.ID,
					"company_id": order.CompanyID,
					"error":      err.Error(),
				})
			} else {
				companyName = company.Name
			}
		}

		evt := publishers.NewEvent(b.cfg.AppName, order, companyName)
		if _, err := b.fanout.Publish(ctx, evt); err != nil {
			b.log.ErrorObj("event publish failed", "publish_error", map[string]any{
				"order_id": order.ID,
				"error":    err.Error(),
			})
			continue
		}
		published++
	}

	b.log.InfoObj("poll completed", "poll_meta", map[string]any{
		"orders_seen":      len(orders),
		"events_published": published,
		"elapsed_ms":       time.Since(start).Milliseconds(),
	})
	return nil
}

func (b *Bridge) closeStore() {
	if b == nil || b.store == nil {
		return
	}
	if err := b.store.Close(); err != nil {
		b.log.WarnObj("storage close failed", "error", err.Error())
	}
}
