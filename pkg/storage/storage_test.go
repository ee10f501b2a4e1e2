package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw33tLie/catalogo/pkg/catalog"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalogo.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReplaceAndListItems(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	items := []catalog.Item{
		{Name: "Unity", Description: "Engine", CreationYear: "2005", Link: "https://unity.com", Tags: []string{"Motor de Jogo", "C#"}},
		{Name: "Indie X"},
		{Name: "PhysX", Tags: []string{"Motor de Física"}},
	}
	n, err := db.ReplaceItems(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := db.ListItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestReplaceItemsDropsPreviousSnapshot(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ReplaceItems(ctx, []catalog.Item{{Name: "old", Tags: []string{"x"}}})
	require.NoError(t, err)
	_, err = db.ReplaceItems(ctx, []catalog.Item{{Name: "new", Tags: []string{"y"}}})
	require.NoError(t, err)

	got, err := db.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Name)
}

func TestGetStatsFirstSeenOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ReplaceItems(ctx, []catalog.Item{
		{Name: "a", Tags: []string{"Zeta"}},
		{Name: "b"},
		{Name: "c", Tags: []string{"Alpha"}},
		{Name: "d", Tags: []string{"Zeta"}},
	})
	require.NoError(t, err)

	stats, err := db.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []CategoryStats{
		{Category: "Zeta", ItemCount: 2},
		{Category: catalog.OtherCategory, ItemCount: 1},
		{Category: "Alpha", ItemCount: 1},
	}, stats)
}

func TestEmptyDatabase(t *testing.T) {
	db := openTestDB(t)
	got, err := db.ListItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	stats, err := db.GetStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}
