package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailpulse/internal/dataset"
	"retailpulse/internal/errors"
)

const (
	householdsCSV = "HSHD_NUM,AGE_RANGE\n10,35-44\n20,55-64\n"
	productsCSV   = "PRODUCT_NUM,DEPARTMENT,COMMODITY,BRAND_TY\n100,FOOD,MILK,NATIONAL\n200,FOOD,BREAD,PRIVATE\n"
	txCSV         = "HSHD_NUM,BASKET_NUM,PURCHASE_,PRODUCT_NUM,SPEND\n" +
		"10,1,2023-01-15,100,5.00\n" +
		"10,1,2023-01-15,200,3.50\n"
)

func testSource() MemSource {
	return MemSource{
		"households.csv":   []byte(householdsCSV),
		"transactions.csv": []byte(txCSV),
		"products.csv":     []byte(productsCSV),
	}
}

func testConfig() Config {
	return Config{
		Households:   "households.csv",
		Transactions: "transactions.csv",
		Products:     "products.csv",
	}
}

func TestBuild(t *testing.T) {
	snap, err := Build(context.Background(), testSource(), testConfig(), nil)
	require.NoError(t, err)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", snap.ID.String())
	assert.False(t, snap.LoadedAt.IsZero())
	assert.Equal(t, 2, snap.Households.Len())
	assert.Equal(t, 2, snap.Transactions.Len())
	assert.Equal(t, 2, snap.Products.Len())
	assert.True(t, snap.Transactions.HasColumn(dataset.ColDate))
}

func TestBuildMissingDataset(t *testing.T) {
	src := testSource()
	delete(src, "products.csv")

	snap, err := Build(context.Background(), src, testConfig(), nil)
	require.Error(t, err)
	assert.Nil(t, snap)
}

func TestBuildBadSchemaAbortsWhole(t *testing.T) {
	src := testSource()
	src["transactions.csv"] = []byte("HSHD_NUM,BASKET_NUM,PRODUCT_NUM,SPEND\n10,1,100,5.00\n")

	snap, err := Build(context.Background(), src, testConfig(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
	assert.Nil(t, snap)
}

func TestStoreLifecycle(t *testing.T) {
	src := testSource()
	store := NewStore(src, testConfig(), nil)

	_, err := store.Current()
	assert.ErrorIs(t, err, ErrNotLoaded)

	require.NoError(t, store.Load(context.Background()))
	first, err := store.Current()
	require.NoError(t, err)

	require.NoError(t, store.Reload(context.Background()))
	second, err := store.Current()
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// A failing reload leaves the served snapshot untouched.
	delete(src, "households.csv")
	require.Error(t, store.Reload(context.Background()))
	current, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "households.csv"), []byte(householdsCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte(txCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.csv"), []byte(productsCSV), 0o644))

	snap, err := Build(context.Background(), NewDirSource(dir), testConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Households.Len())
}

func TestDirSourceRejectsTraversal(t *testing.T) {
	src := NewDirSource(t.TempDir())

	tests := []string{"", "  ", "../etc/passwd", "/etc/passwd"}
	for _, name := range tests {
		_, err := src.Open(context.Background(), name)
		assert.Error(t, err, "name %q", name)
	}
}
