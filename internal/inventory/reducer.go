package inventory

import "github.com/udisondev/invfacade/internal/model"

// State is the inventory slice of the application state.
// Inventory is nil until the first load, update or reset.
type State struct {
	Inventory *model.UserInventory
	Loaded    bool
	ContentID string
}

// Reduce returns the state after applying a. It never mutates the snapshot
// held by s: a changed snapshot is always a new value, and snapshots taken
// from actions are copied so later changes by the sender do not leak in.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LoadInventory:
		s.Loaded = false

	case InventoryLoaded:
		inv := a.Inventory.Clone()
		if inv == nil {
			inv = model.NewUserInventory()
		}
		if s.ContentID != "" {
			inv.ContentID = s.ContentID
		}
		s.Inventory = inv
		s.Loaded = true

	case UpdateInventory:
		if a.Inventory == nil || IsStale(s.Inventory, a.Inventory, a.Force) {
			return s
		}
		s.Inventory = a.Inventory.Clone()
		s.Loaded = true

	case ResetInventory:
		inv := model.NewUserInventory()
		inv.ContentID = s.ContentID
		s.Inventory = inv
		s.Loaded = true

	case SetContentID:
		s.ContentID = a.ContentID
		if s.Inventory != nil && s.Inventory.ContentID != a.ContentID {
			inv := s.Inventory.Clone()
			inv.ContentID = a.ContentID
			s.Inventory = inv
		}
	}
	return s
}

// IsStale reports whether an update must be dropped: without force, an
// incoming snapshot that is not newer than the held one is stale.
func IsStale(held, incoming *model.UserInventory, force bool) bool {
	if force || held == nil {
		return false
	}
	return !incoming.LastUpdated.After(held.LastUpdated)
}

// Selectors.

// SelectLoaded projects the loaded flag.
func SelectLoaded(s State) bool { return s.Loaded }

// SelectInventory projects the held snapshot (nil when absent).
func SelectInventory(s State) *model.UserInventory { return s.Inventory }

// SelectContentID projects the active content id.
func SelectContentID(s State) string { return s.ContentID }
