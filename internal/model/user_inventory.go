package model

import (
	"maps"
	"slices"
	"strconv"
	"time"
)

// InventoryItem описывает один стак предметов в конкретном слоте контейнера.
type InventoryItem struct {
	ItemID       int32         `json:"itemId"`
	ContainerID  ContainerType `json:"containerId"`
	Slot         int32         `json:"slot"`
	Quantity     int32         `json:"quantity"`
	HQ           bool          `json:"hq"`
	SpiritBond   int32         `json:"spiritBond,omitempty"`
	Materias     []int32       `json:"materias,omitempty"`
	RetainerName string        `json:"retainerName,omitempty"`
}

// clone returns a copy that shares no memory with the receiver.
func (it InventoryItem) clone() InventoryItem {
	it.Materias = slices.Clone(it.Materias)
	return it
}

// ItemSearchResult is an inventory item annotated with its owner.
type ItemSearchResult struct {
	InventoryItem
	ContentID          string `json:"contentId"`
	IsCurrentCharacter bool   `json:"isCurrentCharacter"`
}

// ContainerKey returns the key a container is stored under inside a character's
// inventory. Retainer containers are prefixed with the retainer name, since
// every retainer reuses the same container codes.
func ContainerKey(retainerName string, container ContainerType) string {
	if retainerName == "" {
		return strconv.Itoa(int(container))
	}
	return retainerName + ":" + strconv.Itoa(int(container))
}

// UserInventory хранит снимок инвентаря всех известных персонажей аккаунта.
//
// Items: contentID → containerKey → items.
// Снимок иммутабелен после публикации: любые изменения делаются на Clone().
type UserInventory struct {
	Items       map[string]map[string][]InventoryItem `json:"items"`
	ContentID   string                                `json:"contentId,omitempty"`
	LastUpdated time.Time                             `json:"lastUpdated"`
}

// NewUserInventory создаёт пустой инвентарь.
func NewUserInventory() *UserInventory {
	return &UserInventory{
		Items: make(map[string]map[string][]InventoryItem),
	}
}

// Clone returns a deep copy of the inventory.
// Returns nil for a nil receiver.
func (inv *UserInventory) Clone() *UserInventory {
	if inv == nil {
		return nil
	}
	out := &UserInventory{
		Items:       make(map[string]map[string][]InventoryItem, len(inv.Items)),
		ContentID:   inv.ContentID,
		LastUpdated: inv.LastUpdated,
	}
	for contentID, containers := range inv.Items {
		cc := make(map[string][]InventoryItem, len(containers))
		for key, items := range containers {
			copied := make([]InventoryItem, len(items))
			for i, it := range items {
				copied[i] = it.clone()
			}
			cc[key] = copied
		}
		out.Items[contentID] = cc
	}
	return out
}

// SetContainer replaces the content of one container for a character.
func (inv *UserInventory) SetContainer(contentID, retainerName string, container ContainerType, items []InventoryItem) {
	if inv.Items == nil {
		inv.Items = make(map[string]map[string][]InventoryItem)
	}
	containers, ok := inv.Items[contentID]
	if !ok {
		containers = make(map[string][]InventoryItem)
		inv.Items[contentID] = containers
	}
	copied := make([]InventoryItem, len(items))
	for i, it := range items {
		it.ContainerID = container
		it.RetainerName = retainerName
		copied[i] = it.clone()
	}
	containers[ContainerKey(retainerName, container)] = copied
}

// Container returns the items stored in one container, or nil.
func (inv *UserInventory) Container(contentID, retainerName string, container ContainerType) []InventoryItem {
	return inv.Items[contentID][ContainerKey(retainerName, container)]
}

// Search returns every stack of itemID across all characters, sorted by
// content id and container key. With onlyCurrentCharacter only the stacks of
// the active character are returned.
func (inv *UserInventory) Search(itemID int32, onlyCurrentCharacter bool) []ItemSearchResult {
	var results []ItemSearchResult
	for _, contentID := range slices.Sorted(maps.Keys(inv.Items)) {
		current := contentID == inv.ContentID
		if onlyCurrentCharacter && !current {
			continue
		}
		containers := inv.Items[contentID]
		for _, key := range slices.Sorted(maps.Keys(containers)) {
			for _, it := range containers[key] {
				if it.ItemID != itemID {
					continue
				}
				results = append(results, ItemSearchResult{
					InventoryItem:      it.clone(),
					ContentID:          contentID,
					IsCurrentCharacter: current,
				})
			}
		}
	}
	return results
}

// TotalQuantity sums the quantity of itemID over every character.
func (inv *UserInventory) TotalQuantity(itemID int32) int64 {
	var total int64
	for _, r := range inv.Search(itemID, false) {
		total += int64(r.Quantity)
	}
	return total
}
