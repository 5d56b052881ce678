// Package ipc delivers notifications from the game data reader process
// (content id of the logged-in character, inventory packets...) to the
// inventory service.
package ipc

import (
	"sync"

	"github.com/udisondev/invfacade/internal/stream"
)

// Channel names.
const (
	// ContentIDChannel carries the content id of the character currently logged in.
	ContentIDChannel = "dat:content-id"

	// CharacterEntryChannel carries a JSON character entry to register or update.
	CharacterEntryChannel = "auth:character-entry"

	// CharacterRemovedChannel carries the content id of a character to forget.
	CharacterRemovedChannel = "auth:character-removed"
)

// Channel is a one-way notification source keyed by channel name.
type Channel interface {
	On(channel string, fn func(payload string)) stream.Subscription
}

// Bus is an in-process Channel.
type Bus struct {
	mu       sync.Mutex
	channels map[string]*stream.Subject[string]
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{channels: make(map[string]*stream.Subject[string])}
}

func (b *Bus) subject(channel string) *stream.Subject[string] {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.channels[channel]
	if !ok {
		s = stream.NewSubject[string]()
		b.channels[channel] = s
	}
	return s
}

// On implements Channel.
func (b *Bus) On(channel string, fn func(payload string)) stream.Subscription {
	return b.subject(channel).Subscribe(fn)
}

// Send delivers payload to every listener of channel.
// Messages sent before anybody listens are dropped without registering the
// channel, so unknown channel names from the peer do not accumulate.
func (b *Bus) Send(channel, payload string) {
	b.mu.Lock()
	s, ok := b.channels[channel]
	b.mu.Unlock()
	if !ok {
		return
	}
	s.Next(payload)
}

// ChannelCount returns the number of channels that ever had a listener.
func (b *Bus) ChannelCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.channels)
}
