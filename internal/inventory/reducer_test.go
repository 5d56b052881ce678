package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/invfacade/internal/model"
	"github.com/udisondev/invfacade/internal/testutil"
)

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestReduce_Load(t *testing.T) {
	s := Reduce(State{Loaded: true}, LoadInventory{})
	assert.False(t, s.Loaded)

	s = Reduce(s, InventoryLoaded{})
	assert.True(t, s.Loaded)
	require.NotNil(t, s.Inventory)
	assert.Empty(t, s.Inventory.Items)
}

func TestReduce_LoadedStampsContentID(t *testing.T) {
	loaded := testutil.NewInventory(t0)
	s := Reduce(State{ContentID: testutil.AltContentID}, InventoryLoaded{Inventory: loaded})

	assert.Equal(t, testutil.AltContentID, s.Inventory.ContentID)
	assert.Equal(t, testutil.MainContentID, loaded.ContentID, "action payload must stay untouched")
}

func TestReduce_Update(t *testing.T) {
	held := testutil.NewInventory(t0)
	s := State{Inventory: held, Loaded: true}

	tests := []struct {
		name     string
		incoming *model.UserInventory
		force    bool
		accepted bool
	}{
		{"newer", testutil.NewInventory(t0.Add(time.Second)), false, true},
		{"same time", testutil.NewInventory(t0), false, false},
		{"older", testutil.NewInventory(t0.Add(-time.Hour)), false, false},
		{"older forced", testutil.NewInventory(t0.Add(-time.Hour)), true, true},
		{"nil", nil, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(s, UpdateInventory{Inventory: tt.incoming, Force: tt.force})
			if tt.accepted {
				assert.Equal(t, tt.incoming, got.Inventory)
				assert.NotSame(t, tt.incoming, got.Inventory)
			} else {
				assert.Same(t, held, got.Inventory)
			}
		})
	}
}

func TestReduce_UpdateWithoutHeldSnapshot(t *testing.T) {
	inv := testutil.NewInventory(t0)
	s := Reduce(State{}, UpdateInventory{Inventory: inv})
	assert.Equal(t, inv, s.Inventory)
	assert.NotSame(t, inv, s.Inventory)
	assert.True(t, s.Loaded)
}

func TestReduce_Reset(t *testing.T) {
	s := State{Inventory: testutil.NewInventory(t0), ContentID: "7"}
	s = Reduce(s, ResetInventory{})

	require.NotNil(t, s.Inventory)
	assert.Empty(t, s.Inventory.Items)
	assert.Equal(t, "7", s.Inventory.ContentID)
	assert.True(t, s.Loaded)
}

func TestReduce_SetContentID(t *testing.T) {
	held := testutil.NewInventory(t0)
	s := Reduce(State{Inventory: held}, SetContentID{ContentID: testutil.AltContentID})

	assert.Equal(t, testutil.AltContentID, s.ContentID)
	assert.Equal(t, testutil.AltContentID, s.Inventory.ContentID)
	assert.NotSame(t, held, s.Inventory)
	assert.Equal(t, testutil.MainContentID, held.ContentID)

	same := Reduce(s, SetContentID{ContentID: testutil.AltContentID})
	assert.Same(t, s.Inventory, same.Inventory)

	empty := Reduce(State{}, SetContentID{ContentID: "1"})
	assert.Nil(t, empty.Inventory)
	assert.Equal(t, "1", empty.ContentID)
}

func TestIsStale(t *testing.T) {
	held := testutil.NewInventory(t0)
	assert.False(t, IsStale(nil, held, false))
	assert.True(t, IsStale(held, testutil.NewInventory(t0), false))
	assert.False(t, IsStale(held, testutil.NewInventory(t0), true))
	assert.False(t, IsStale(held, testutil.NewInventory(t0.Add(time.Nanosecond)), false))
}

func TestReduce_UpdateCopiesIncomingSnapshot(t *testing.T) {
	inv := testutil.NewInventory(t0)
	s := Reduce(State{}, UpdateInventory{Inventory: inv})

	inv.ContentID = "mutated"
	inv.Items[testutil.MainContentID] = nil
	assert.Equal(t, testutil.MainContentID, s.Inventory.ContentID)
	assert.NotNil(t, s.Inventory.Items[testutil.MainContentID])
}
