package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/config"
	"github.com/finla-app/finla/internal/gamification"
	finlaHttp "github.com/finla-app/finla/internal/http"
	accountHandler "github.com/finla-app/finla/internal/http/account"
	exportHandler "github.com/finla-app/finla/internal/http/export"
	goalHandler "github.com/finla-app/finla/internal/http/goal"
	importHandler "github.com/finla-app/finla/internal/http/importcsv"
	quoteHandler "github.com/finla-app/finla/internal/http/quote"
	reportHandler "github.com/finla-app/finla/internal/http/report"
	txHandler "github.com/finla-app/finla/internal/http/transaction"
	"github.com/finla-app/finla/internal/importer"
	"github.com/finla-app/finla/internal/ledger"
	"github.com/finla-app/finla/internal/session"
	fileStore "github.com/finla-app/finla/internal/store/file"
	postgresStore "github.com/finla-app/finla/internal/store/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo, closeRepo, err := newRepository(cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	svc := session.NewService(
		repo,
		category.NewClassifier(category.DefaultRules()),
		ledger.New(cfg.Ledger.LowBalancePaise, nil),
		gamification.New(cfg.Gamification, gamification.DefaultAchievements(), nil),
		nil,
	)

	router := finlaHttp.New(
		accountHandler.NewHandler(svc),
		txHandler.NewHandler(svc),
		importHandler.NewHandler(importer.NewParser(), svc),
		goalHandler.NewHandler(svc),
		reportHandler.NewHandler(svc),
		quoteHandler.NewHandler(),
		exportHandler.NewHandler(svc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port, "store", cfg.Store.Backend)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newRepository(cfg *config.Config) (session.Repository, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		store, err := postgresStore.Open(cfg.ConnectionString(), cfg.Gamification.InitialFreezeTokens)
		if err != nil {
			return nil, nil, err
		}

		if err := store.Migrate(context.Background()); err != nil {
			store.Close()
			return nil, nil, err
		}

		return store, func() { store.Close() }, nil
	case "file":
		store, err := fileStore.New(cfg.Store.DataDir, cfg.Gamification.InitialFreezeTokens)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
