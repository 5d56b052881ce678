package model

// CharacterProfile содержит публичные данные персонажа из Lodestone.
type CharacterProfile struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Server string `json:"server"`
}

// CharacterEntry pairs a registered character with its in-game content id.
type CharacterEntry struct {
	ContentID   string           `json:"contentId"`
	LodestoneID int64            `json:"lodestoneId"`
	Character   CharacterProfile `json:"character"`
}

// FindCharacterEntry returns the first entry with the given content id.
func FindCharacterEntry(entries []CharacterEntry, contentID string) (CharacterEntry, bool) {
	for _, e := range entries {
		if e.ContentID == contentID {
			return e, true
		}
	}
	return CharacterEntry{}, false
}
