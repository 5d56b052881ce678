package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserInventory() *UserInventory {
	inv := NewUserInventory()
	inv.ContentID = "100"
	inv.LastUpdated = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	inv.SetContainer("100", "", Bag0, []InventoryItem{
		{ItemID: 5057, Slot: 0, Quantity: 12, Materias: []int32{1, 2}},
	})
	inv.SetContainer("100", "Mira", RetainerBag0, []InventoryItem{
		{ItemID: 5057, Slot: 3, Quantity: 99},
	})
	inv.SetContainer("200", "", SaddleBag0, []InventoryItem{
		{ItemID: 5057, Slot: 1, Quantity: 1},
		{ItemID: 4, Slot: 2, Quantity: 500},
	})
	return inv
}

func TestContainerKey(t *testing.T) {
	assert.Equal(t, "0", ContainerKey("", Bag0))
	assert.Equal(t, "Mira:10000", ContainerKey("Mira", RetainerBag0))
}

func TestUserInventory_SetContainer(t *testing.T) {
	inv := newTestUserInventory()

	items := inv.Container("100", "Mira", RetainerBag0)
	require.Len(t, items, 1)
	assert.Equal(t, RetainerBag0, items[0].ContainerID)
	assert.Equal(t, "Mira", items[0].RetainerName)

	assert.Nil(t, inv.Container("100", "", RetainerBag0))
	assert.Nil(t, inv.Container("300", "", Bag0))
}

func TestUserInventory_Clone(t *testing.T) {
	inv := newTestUserInventory()
	cp := inv.Clone()

	require.Equal(t, inv, cp)
	assert.NotSame(t, inv, cp)

	cp.Items["100"]["0"][0].Quantity = 1
	cp.Items["100"]["0"][0].Materias[0] = 42
	cp.Items["300"] = map[string][]InventoryItem{}
	cp.ContentID = "200"

	orig := inv.Container("100", "", Bag0)[0]
	assert.Equal(t, int32(12), orig.Quantity)
	assert.Equal(t, int32(1), orig.Materias[0])
	assert.NotContains(t, inv.Items, "300")
	assert.Equal(t, "100", inv.ContentID)
}

func TestUserInventory_CloneNil(t *testing.T) {
	var inv *UserInventory
	assert.Nil(t, inv.Clone())
}

func TestUserInventory_Search(t *testing.T) {
	inv := newTestUserInventory()

	all := inv.Search(5057, false)
	require.Len(t, all, 3)
	assert.Equal(t, "100", all[0].ContentID)
	assert.True(t, all[0].IsCurrentCharacter)
	assert.Equal(t, "200", all[2].ContentID)
	assert.False(t, all[2].IsCurrentCharacter)

	current := inv.Search(5057, true)
	require.Len(t, current, 2)
	for _, r := range current {
		assert.True(t, r.IsCurrentCharacter)
	}

	assert.Empty(t, inv.Search(1, false))
}

func TestUserInventory_TotalQuantity(t *testing.T) {
	inv := newTestUserInventory()
	assert.Equal(t, int64(112), inv.TotalQuantity(5057))
	assert.Equal(t, int64(500), inv.TotalQuantity(4))
	assert.Equal(t, int64(0), inv.TotalQuantity(7))
}

func TestFindCharacterEntry(t *testing.T) {
	entries := []CharacterEntry{
		{ContentID: "1", Character: CharacterProfile{Name: "First"}},
		{ContentID: "2", Character: CharacterProfile{Name: "Second"}},
	}

	e, ok := FindCharacterEntry(entries, "2")
	require.True(t, ok)
	assert.Equal(t, "Second", e.Character.Name)

	_, ok = FindCharacterEntry(entries, "3")
	assert.False(t, ok)

	_, ok = FindCharacterEntry(nil, "1")
	assert.False(t, ok)
}
