package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/invfacade/internal/model"
)

func TestSnapshotRepository_LoadMissing(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewSnapshotRepository(pool, "acc")

	inv, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, inv)
}

func TestSnapshotRepository_SaveLoadDelete(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewSnapshotRepository(pool, "acc")

	inv := model.NewUserInventory()
	inv.ContentID = "100"
	inv.LastUpdated = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	inv.SetContainer("100", "", model.Bag0, []model.InventoryItem{{ItemID: 5057, Quantity: 3}})
	require.NoError(t, repo.Save(ctx, inv))

	inv.SetContainer("100", "Mira", model.RetainerBag0, []model.InventoryItem{{ItemID: 1, Quantity: 1}})
	inv.LastUpdated = inv.LastUpdated.Add(time.Minute)
	require.NoError(t, repo.Save(ctx, inv))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "100", got.ContentID)
	assert.True(t, inv.LastUpdated.Equal(got.LastUpdated))
	assert.Equal(t, inv.Items, got.Items)

	other, err := NewSnapshotRepository(pool, "someone-else").Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
