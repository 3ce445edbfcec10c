package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/stackgrid/internal/catalog"
	"github.com/osse101/stackgrid/internal/config"
	"github.com/osse101/stackgrid/internal/handler"
	"github.com/osse101/stackgrid/internal/inventory"
	"github.com/osse101/stackgrid/internal/metrics"
	"github.com/osse101/stackgrid/internal/server"
	"github.com/osse101/stackgrid/internal/store"
)

// App holds the wired application components
type App struct {
	Catalog *catalog.Catalog
	Engine  *inventory.Engine
	Store   *store.Store
	Server  *server.Server
}

// BuildApp wires catalog, engine, store and HTTP server from cfg. Engine and
// store metrics are registered with reg, which panics on duplicates, so
// BuildApp runs once per registry.
func BuildApp(cfg *config.Config, reg prometheus.Registerer) (*App, error) {
	items := catalog.Empty()
	if cfg.ItemsPath == "" {
		slog.Warn(LogMsgCatalogMissing)
	} else {
		loaded, err := catalog.LoadFile(cfg.ItemsPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
		}
		items = loaded
	}

	engine := inventory.NewEngine(items,
		inventory.WithLogger(slog.Default()),
		inventory.WithRecorder(metrics.NewRecorder(reg, items.Resolve)))

	inventories := store.New(cfg.StoreMaxInventories, cfg.StoreIdleTTL)
	metrics.RegisterInventoryGauge(reg, inventories.Len)

	handlers := handler.NewHandlers(inventories, engine, items, cfg.InventoryRows, cfg.InventoryCols)
	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		RateLimit:       cfg.RateLimitRequests,
		RateLimitWindow: cfg.RateLimitWindow,
	}, handlers, items)

	return &App{
		Catalog: items,
		Engine:  engine,
		Store:   inventories,
		Server:  srv,
	}, nil
}
