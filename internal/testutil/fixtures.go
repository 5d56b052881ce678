package testutil

import (
	"time"

	"github.com/udisondev/invfacade/internal/model"
)

// Content ids used across tests.
const (
	MainContentID = "18014398509481984"
	AltContentID  = "18014398509481985"
)

// Fixtures содержит предварительно подготовленные тестовые данные
// для избежания дублирования в тестах.
var Fixtures = struct {
	// Персонажи аккаунта
	Entries []model.CharacterEntry

	// Переводы (англ.)
	Messages map[string]string
}{
	Entries: []model.CharacterEntry{
		{
			ContentID:   MainContentID,
			LodestoneID: 1001,
			Character:   model.CharacterProfile{ID: 1001, Name: "Alphinaud Leveilleur", Server: "Ragnarok"},
		},
		{
			ContentID:   AltContentID,
			LodestoneID: 1002,
			Character:   model.CharacterProfile{ID: 1002, Name: "Alisaie Leveilleur", Server: "Ragnarok"},
		},
	},
	Messages: map[string]string{
		"COMMON.Unknown":               "Unknown",
		"INVENTORY.BAG.Bag":            "Bag",
		"INVENTORY.BAG.RetainerBag":    "Retainer",
		"INVENTORY.BAG.RetainerMarket": "Market",
		"INVENTORY.BAG.SaddleBag":      "Saddlebag",
		"INVENTORY.BAG.FC_chest":       "FC chest",
		"INVENTORY.BAG.Armory":         "Armory",
		"INVENTORY.BAG.Current_Gear":   "Current gear",
		"INVENTORY.BAG.Other":          "Other",
	},
}

// NewInventory builds a snapshot with items for both fixture characters.
func NewInventory(lastUpdated time.Time) *model.UserInventory {
	inv := model.NewUserInventory()
	inv.ContentID = MainContentID
	inv.LastUpdated = lastUpdated
	inv.SetContainer(MainContentID, "", model.Bag0, []model.InventoryItem{
		{ItemID: 5057, Slot: 0, Quantity: 12},
	})
	inv.SetContainer(MainContentID, "Mira", model.RetainerBag0, []model.InventoryItem{
		{ItemID: 5057, Slot: 4, Quantity: 99},
	})
	inv.SetContainer(AltContentID, "", model.SaddleBag0, []model.InventoryItem{
		{ItemID: 5057, Slot: 1, Quantity: 3},
	})
	return inv
}
