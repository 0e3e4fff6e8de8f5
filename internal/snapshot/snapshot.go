package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"retailpulse/internal/dataset"
)

// Config names the three dataset files a snapshot is built from.
type Config struct {
	Households   string
	Transactions string
	Products     string
}

// DefaultConfig returns the dataset file names the source data ships under.
func DefaultConfig() Config {
	return Config{
		Households:   "400_households.csv",
		Transactions: "400_transactions.csv",
		Products:     "400_products.csv",
	}
}

// Snapshot is an immutable set of the three loaded tables. No component
// mutates a snapshot after Build returns; concurrent readers need no locking.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time

	Households   *dataset.Table
	Transactions *dataset.Table
	Products     *dataset.Table
}

// Build loads the three datasets sequentially and returns a complete
// snapshot, or an error and no snapshot at all. There is no partially-loaded
// state.
func Build(ctx context.Context, src Source, cfg Config, logger *slog.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	loader := dataset.NewLoader(logger)

	households, err := load(ctx, loader, src, cfg.Households, dataset.HouseholdSchema())
	if err != nil {
		return nil, err
	}
	transactions, err := load(ctx, loader, src, cfg.Transactions, dataset.TransactionSchema())
	if err != nil {
		return nil, err
	}
	products, err := load(ctx, loader, src, cfg.Products, dataset.ProductSchema())
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:           uuid.New(),
		LoadedAt:     time.Now().UTC(),
		Households:   households,
		Transactions: transactions,
		Products:     products,
	}

	logger.InfoContext(ctx, "snapshot built",
		slog.String("snapshot_id", snap.ID.String()),
		slog.Int("households", households.Len()),
		slog.Int("transactions", transactions.Len()),
		slog.Int("products", products.Len()))

	return snap, nil
}

func load(ctx context.Context, loader *dataset.Loader, src Source, name string, schema dataset.Schema) (*dataset.Table, error) {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		schema.Format = dataset.FormatXLSX
	}

	r, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", schema.Dataset, err)
	}
	defer r.Close()

	return loader.Load(ctx, r, schema)
}
