// Package inventory holds the inventory state store and the Facade through
// which views load, replace and reset the tracked inventory and resolve
// display names of inventory containers.
package inventory

import (
	"slices"
	"strings"
	"sync"

	"github.com/udisondev/invfacade/internal/ipc"
	"github.com/udisondev/invfacade/internal/model"
	"github.com/udisondev/invfacade/internal/stream"
)

// Translation keys.
const (
	ContainerKeyPrefix = "INVENTORY.BAG."
	UnknownKey         = "COMMON.Unknown"
)

// StateStore is the part of Store the Facade depends on.
type StateStore interface {
	Dispatch(a Action)
	States() stream.Observable[State]
}

// Translator resolves a translation key to display text.
type Translator interface {
	Instant(key string) string
}

// CharacterSource publishes the characters registered on the account.
type CharacterSource interface {
	CharacterEntries() stream.Observable[[]model.CharacterEntry]
}

// Settings controls the Facade start-up behaviour.
type Settings struct {
	ClearInventoryOnStartup bool
}

// Facade mediates between the inventory store and its consumers.
type Facade struct {
	store     StateStore
	translate Translator

	loaded    stream.Observable[bool]
	inventory *stream.Shared[*model.UserInventory]

	mu               sync.RWMutex
	characterEntries []model.CharacterEntry

	subs stream.Group
}

// NewFacade wires the Facade: optional reset on start-up, content id
// notifications from channel and the character roster from characters.
func NewFacade(store StateStore, characters CharacterSource, channel ipc.Channel, translate Translator, settings Settings) *Facade {
	f := &Facade{
		store:     store,
		translate: translate,
		loaded:    Select(store.States(), SelectLoaded),
	}

	present := stream.Filter(Select(store.States(), SelectInventory), func(inv *model.UserInventory) bool {
		return inv != nil
	})
	f.inventory = stream.ShareReplay(stream.Map(present, (*model.UserInventory).Clone))

	if settings.ClearInventoryOnStartup {
		f.ResetInventory()
	}

	f.subs.Add(channel.On(ipc.ContentIDChannel, func(contentID string) {
		f.SetContentID(contentID)
	}))
	f.subs.Add(characters.CharacterEntries().Subscribe(func(entries []model.CharacterEntry) {
		f.mu.Lock()
		f.characterEntries = entries
		f.mu.Unlock()
	}))

	return f
}

// Loaded reports whether the inventory finished loading.
func (f *Facade) Loaded() stream.Observable[bool] {
	return f.loaded
}

// Inventory emits a private copy of every new snapshot, never nil.
// All subscribers share one copy per snapshot and late subscribers get the
// latest one immediately.
func (f *Facade) Inventory() stream.Observable[*model.UserInventory] {
	return f.inventory
}

// ContainerName returns the label of a container code.
func (f *Facade) ContainerName(c model.ContainerType) string {
	return model.ContainerName(c)
}

// ContainerTranslateKey returns the retainer name for retainer containers
// other than the market, else the translated container label.
func (f *Facade) ContainerTranslateKey(item model.ItemSearchResult) string {
	if item.RetainerName != "" && item.ContainerID != model.RetainerMarket {
		return item.RetainerName
	}
	return f.translate.Instant(ContainerKeyPrefix + model.ContainerName(item.ContainerID))
}

// ContainerDisplayName is ContainerTranslateKey followed by the owner's name
// in parentheses when the item belongs to another character.
func (f *Facade) ContainerDisplayName(item model.ItemSearchResult) string {
	name := f.ContainerTranslateKey(item)
	if item.IsCurrentCharacter {
		return name
	}

	f.mu.RLock()
	entry, ok := model.FindCharacterEntry(f.characterEntries, item.ContentID)
	f.mu.RUnlock()

	owner := entry.Character.Name
	if !ok || owner == "" {
		owner = f.translate.Instant(UnknownKey)
	}
	return name + " (" + owner + ")"
}

// ContainerTotal is the number of items stored in one displayed container.
type ContainerTotal struct {
	Name     string
	Stacks   int
	Quantity int64
}

// ContainerTotals groups every item of inv by container display name,
// sorted by name. Returns nil for a nil inv.
func (f *Facade) ContainerTotals(inv *model.UserInventory) []ContainerTotal {
	if inv == nil {
		return nil
	}
	byName := make(map[string]*ContainerTotal)
	for contentID, containers := range inv.Items {
		for _, items := range containers {
			for _, it := range items {
				name := f.ContainerDisplayName(model.ItemSearchResult{
					InventoryItem:      it,
					ContentID:          contentID,
					IsCurrentCharacter: contentID == inv.ContentID,
				})
				total, ok := byName[name]
				if !ok {
					total = &ContainerTotal{Name: name}
					byName[name] = total
				}
				total.Stacks++
				total.Quantity += int64(it.Quantity)
			}
		}
	}

	totals := make([]ContainerTotal, 0, len(byName))
	for _, t := range byName {
		totals = append(totals, *t)
	}
	slices.SortFunc(totals, func(a, b ContainerTotal) int {
		return strings.Compare(a.Name, b.Name)
	})
	return totals
}

// CharacterEntries returns the roster last received by the Facade.
func (f *Facade) CharacterEntries() []model.CharacterEntry {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.characterEntries)
}

// Load requests loading of the persisted inventory.
func (f *Facade) Load() {
	f.store.Dispatch(LoadInventory{})
}

// UpdateInventory requests replacement of the inventory. force bypasses the
// store's staleness guard.
func (f *Facade) UpdateInventory(inv *model.UserInventory, force bool) {
	f.store.Dispatch(UpdateInventory{Inventory: inv, Force: force})
}

// ResetInventory requests clearing of the inventory.
func (f *Facade) ResetInventory() {
	f.store.Dispatch(ResetInventory{})
}

// SetContentID records the content id of the active character.
func (f *Facade) SetContentID(contentID string) {
	f.store.Dispatch(SetContentID{ContentID: contentID})
}

// Close stops listening to the channel, the roster and the store.
func (f *Facade) Close() {
	f.subs.Unsubscribe()
	f.inventory.Close()
}
