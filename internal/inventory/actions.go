package inventory

import "github.com/udisondev/invfacade/internal/model"

// Action is an intent dispatched to the Store.
type Action interface {
	Type() string
}

// LoadInventory asks the store to load the persisted snapshot.
type LoadInventory struct{}

// InventoryLoaded carries the snapshot read by the load effect.
type InventoryLoaded struct {
	Inventory *model.UserInventory
}

// UpdateInventory replaces the held snapshot. Force skips the staleness guard.
type UpdateInventory struct {
	Inventory *model.UserInventory
	Force     bool
}

// ResetInventory clears the held and persisted snapshot.
type ResetInventory struct{}

// SetContentID records the content id of the active character.
type SetContentID struct {
	ContentID string
}

func (LoadInventory) Type() string { return "[Inventory] Load Inventory" }
func (InventoryLoaded) Type() string { return "[Inventory] Inventory Loaded" }
func (UpdateInventory) Type() string { return "[Inventory] Update Inventory" }
func (ResetInventory) Type() string { return "[Inventory] Reset Inventory" }
func (SetContentID) Type() string { return "[Inventory] Set Content ID" }
