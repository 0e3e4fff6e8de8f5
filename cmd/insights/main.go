// Command insights loads the three retail datasets and prints the household
// detail and dashboard views as JSON. It is a consumer of the core library,
// handy for inspecting a dataset drop without standing up the web layer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"retailpulse/internal/config"
	"retailpulse/internal/infrastructure"
	"retailpulse/internal/insights"
	"retailpulse/internal/snapshot"
	"retailpulse/pkg/contracts/domain"
)

func main() {
	dataDir := flag.String("data", "", "dataset directory (defaults to the configured data dir)")
	hshdNum := flag.Int64("hshd", 10, "household number for the detail lookup")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if *dataDir == "" {
		*dataDir = cfg.Data.Dir
	}

	ctx := context.Background()
	store := snapshot.NewStore(snapshot.NewDirSource(*dataDir), snapshot.Config{
		Households:   cfg.Data.Households,
		Transactions: cfg.Data.Transactions,
		Products:     cfg.Data.Products,
	}, logger)

	if err := store.Load(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to load datasets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	snap, err := store.Current()
	if err != nil {
		logger.ErrorContext(ctx, "No snapshot available", slog.String("error", err.Error()))
		os.Exit(1)
	}

	detail := insights.LookupHousehold(snap, *hshdNum)
	if len(detail) == 0 {
		logger.WarnContext(ctx, "No data for household",
			slog.Int64("hshd_num", *hshdNum))
	}

	dashboard, err := insights.ComputeDashboard(snap)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to compute dashboard views", slog.String("error", err.Error()))
		os.Exit(1)
	}

	out := struct {
		HshdNum   int64                  `json:"hshd_num"`
		Detail    []domain.JoinedRecord  `json:"detail"`
		Dashboard *domain.DashboardViews `json:"dashboard"`
	}{
		HshdNum:   *hshdNum,
		Detail:    detail,
		Dashboard: dashboard,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.ErrorContext(ctx, "Failed to encode output", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
