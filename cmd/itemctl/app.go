package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/ducttape-items/internal/assets"
	"github.com/KirkDiggler/ducttape-items/internal/config"
	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/items"
	"github.com/KirkDiggler/ducttape-items/internal/logger"
	"github.com/KirkDiggler/ducttape-items/internal/metrics"
	"github.com/KirkDiggler/ducttape-items/internal/orchestrators/inventory"
	"github.com/KirkDiggler/ducttape-items/internal/pkg/clock"
	"github.com/KirkDiggler/ducttape-items/internal/redis"
	inventoryrepo "github.com/KirkDiggler/ducttape-items/internal/repositories/inventory"
	"github.com/KirkDiggler/ducttape-items/internal/services/collection"
	"github.com/KirkDiggler/ducttape-items/internal/services/registry"
	"github.com/KirkDiggler/ducttape-items/internal/template"
)

// app holds everything one command invocation works against
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	gatherer  *prometheus.Registry
	store     *assets.FileStore
	templates *template.Engine
	snapshots inventoryrepo.Repository
	redis     redis.Client
	svc       inventory.Service
}

func newApp(ctx context.Context, stderr io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if assetRoot != "" {
		cfg.AssetRoot = assetRoot
	}

	log := logger.InitWithWriter(cfg.Logger(), stderr)

	gatherer := prometheus.NewRegistry()
	recorder, err := metrics.NewPrometheus(gatherer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register metrics")
	}

	store, err := assets.NewFileStore(&assets.Config{Root: cfg.AssetRoot})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create asset store")
	}

	reg := registry.New(&registry.Config{Logger: log})
	items.RegisterDefaults(reg, store)

	inv, err := collection.NewSized(cfg.InventorySize,
		collection.WithID(inventoryID),
		collection.WithRecorder(recorder),
		collection.WithLogger(log))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory")
	}

	bus := events.NewBus()
	inv.Listen(collection.BusForwarder(ctx, bus, inventoryID))
	if showEvents {
		subscribePrinter(bus, stderr)
	}

	templates, err := template.NewEngine(&template.Config{
		Store:     store,
		Size:      cfg.TextureSize,
		CacheSize: cfg.TextureCacheSize,
		Metrics:   recorder,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create template engine")
	}

	a := &app{
		cfg:       cfg,
		log:       log,
		gatherer:  gatherer,
		store:     store,
		templates: templates,
	}

	if cfg.PersistenceEnabled() {
		client, err := redis.Connect(cfg.RedisAddrs, cfg.RedisMaster, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to redis")
		}
		a.redis = client

		a.snapshots, err = inventoryrepo.NewRedisRepository(&inventoryrepo.Config{
			Client: client,
			Clock:  clock.New(),
			TTL:    cfg.SnapshotTTL,
		})
		if err != nil {
			a.Close()
			return nil, errors.Wrap(err, "failed to create snapshot repository")
		}
	}

	a.svc, err = inventory.NewOrchestrator(&inventory.Config{
		Registry:  reg,
		Inventory: inv,
		Templates: templates,
		Snapshots: a.snapshots,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create inventory orchestrator")
	}

	log.Debug("itemctl ready",
		"asset_root", cfg.AssetRoot,
		"inventory_size", cfg.InventorySize,
		"persistence", cfg.PersistenceEnabled())

	return a, nil
}

// Close releases the redis connection when one was opened
func (a *app) Close() {
	if a.redis == nil {
		return
	}
	if err := a.redis.Close(); err != nil {
		a.log.Warn("failed to close redis client", "error", err)
	}
	a.redis = nil
}

// registerSampleTemplate makes the sample spear resolvable so snapshots holding
// it can be restored. A missing template only loses the spear.
func (a *app) registerSampleTemplate(ctx context.Context) {
	_, err := a.svc.BuildTemplateItem(ctx, &inventory.BuildTemplateItemInput{
		Template:   inventory.SampleTemplate,
		Components: map[string]string{"shaft": items.NameRock, "tip": items.NameRock},
		RegisterAs: inventory.SampleTemplate,
	})
	if err != nil {
		a.log.Warn("sample template unavailable", "template", inventory.SampleTemplate, "error", err)
	}
}

// openInventory restores the --id snapshot when persistence is on and it exists,
// and seeds the sample inventory otherwise
func (a *app) openInventory(ctx context.Context) error {
	a.registerSampleTemplate(ctx)

	if a.snapshots != nil {
		_, err := a.svc.Restore(ctx, &inventory.RestoreInput{ID: inventoryID})
		if err == nil {
			return nil
		}
		if !errors.IsNotFound(err) {
			return err
		}
		a.log.Info("no saved inventory, seeding sample", "id", inventoryID)
	}

	return a.svc.SeedSample(ctx)
}

// persist saves the inventory under --id when persistence is on
func (a *app) persist(ctx context.Context) error {
	if a.snapshots == nil {
		return nil
	}
	_, err := a.svc.Save(ctx, &inventory.SaveInput{ID: inventoryID})
	return err
}

func (a *app) dumpMetrics(w io.Writer) error {
	families, err := a.gatherer.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += fmt.Sprintf("%s=%q ", lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s %s%g\n", mf.GetName(), labels, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Fprintf(w, "%s %scount=%d sum=%g\n", mf.GetName(), labels,
					m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum())
			}
		}
	}
	return nil
}

func subscribePrinter(bus events.EventBus, w io.Writer) {
	printEvent := func(_ context.Context, ev events.Event) error {
		fmt.Fprintf(w, "event %s slot=%s item=%s\n", ev.Type(), ev.Source().GetID(), ev.Target().GetID())
		return nil
	}
	for _, name := range []string{
		collection.BusEventItemAdded,
		collection.BusEventItemRemoved,
		collection.BusEventCleared,
		collection.BusEventRefreshed,
	} {
		bus.SubscribeFunc(name, 0, printEvent)
	}
}
