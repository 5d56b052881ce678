package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/invfacade/internal/auth"
	"github.com/udisondev/invfacade/internal/config"
	"github.com/udisondev/invfacade/internal/db"
	"github.com/udisondev/invfacade/internal/i18n"
	"github.com/udisondev/invfacade/internal/inventory"
	"github.com/udisondev/invfacade/internal/ipc"
	"github.com/udisondev/invfacade/internal/model"
)

const ConfigPath = "config/inventory.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("INVFACADE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("inventory service starting", "account", cfg.AccountID, "language", cfg.Language, "log_level", cfg.LogLevel)

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	translator, err := i18n.New(cfg.Language)
	if err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}
	slog.Info("translations loaded", "language", translator.Language())

	bus := ipc.NewBus()
	roster := auth.NewRoster(db.NewCharacterEntryRepository(database.Pool()))
	rosterSub := roster.Listen(bus, cfg.EffectTimeout)
	defer rosterSub.Unsubscribe()
	store := inventory.NewStore(db.NewSnapshotRepository(database.Pool(), cfg.AccountID), cfg.EffectTimeout)

	facade := inventory.NewFacade(store, roster, bus, translator, inventory.Settings{
		ClearInventoryOnStartup: cfg.ClearInventoryOnStartup,
	})
	defer facade.Close()

	loadedSub := facade.Loaded().Subscribe(func(loaded bool) {
		slog.Info("inventory loaded state", "loaded", loaded)
	})
	defer loadedSub.Unsubscribe()

	inventorySub := facade.Inventory().Subscribe(func(inv *model.UserInventory) {
		slog.Info("inventory snapshot", "content_id", inv.ContentID, "characters", len(inv.Items), "last_updated", inv.LastUpdated)
		for _, total := range facade.ContainerTotals(inv) {
			slog.Debug("container", "name", total.Name, "stacks", total.Stacks, "quantity", total.Quantity)
		}
	})
	defer inventorySub.Unsubscribe()

	facade.Load()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting roster refresh", "interval", cfg.RosterRefreshInterval)
		if err := roster.Run(gctx, cfg.RosterRefreshInterval); err != nil {
			return fmt.Errorf("roster: %w", err)
		}
		return nil
	})

	if cfg.IPC.URL != "" {
		bridge := ipc.NewBridge(cfg.IPC.URL, bus, cfg.IPC.ReconnectDelay)
		g.Go(func() error {
			slog.Info("starting ipc bridge", "url", cfg.IPC.URL)
			if err := bridge.Run(gctx); err != nil {
				return fmt.Errorf("ipc bridge: %w", err)
			}
			return nil
		})
	} else {
		slog.Warn("ipc bridge disabled, content id will not follow the game")
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("service error: %w", err)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
