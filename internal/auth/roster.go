// Package auth keeps the roster of characters registered on the account.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/udisondev/invfacade/internal/ipc"
	"github.com/udisondev/invfacade/internal/model"
	"github.com/udisondev/invfacade/internal/stream"
)

// EntryStore persists character entries.
type EntryStore interface {
	List(ctx context.Context) ([]model.CharacterEntry, error)
	Upsert(ctx context.Context, e model.CharacterEntry) error
	Delete(ctx context.Context, contentID string) error
}

// Roster publishes the current list of character entries.
// Every Refresh emits the full list; subscribers replace their copy wholesale.
type Roster struct {
	store   EntryStore
	entries *stream.Subject[[]model.CharacterEntry]
}

// NewRoster создаёт Roster поверх store. Список пуст до первого Refresh.
func NewRoster(store EntryStore) *Roster {
	return &Roster{
		store:   store,
		entries: stream.NewReplaySubject[[]model.CharacterEntry](),
	}
}

// CharacterEntries returns the roster stream. New subscribers get the latest list.
func (r *Roster) CharacterEntries() stream.Observable[[]model.CharacterEntry] {
	return r.entries
}

// Entries returns the latest published list.
func (r *Roster) Entries() []model.CharacterEntry {
	entries, _ := r.entries.Value()
	return slices.Clone(entries)
}

// Refresh reloads the roster from the store and publishes it.
func (r *Roster) Refresh(ctx context.Context) error {
	entries, err := r.store.List(ctx)
	if err != nil {
		return fmt.Errorf("loading character entries: %w", err)
	}
	r.entries.Next(slices.Clone(entries))
	return nil
}

// Register adds or updates a character and republishes the roster.
func (r *Roster) Register(ctx context.Context, e model.CharacterEntry) error {
	if e.ContentID == "" {
		return fmt.Errorf("registering character %q: empty content id", e.Character.Name)
	}
	if err := r.store.Upsert(ctx, e); err != nil {
		return fmt.Errorf("registering character %q: %w", e.ContentID, err)
	}
	return r.Refresh(ctx)
}

// Unregister removes a character and republishes the roster.
func (r *Roster) Unregister(ctx context.Context, contentID string) error {
	if err := r.store.Delete(ctx, contentID); err != nil {
		return fmt.Errorf("unregistering character %q: %w", contentID, err)
	}
	return r.Refresh(ctx)
}

// Run refreshes the roster immediately and then every interval until ctx is
// cancelled. Refresh errors are logged and do not stop the loop.
func (r *Roster) Run(ctx context.Context, interval time.Duration) error {
	if err := r.Refresh(ctx); err != nil {
		slog.Error("roster refresh failed", "err", err)
	}
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				slog.Error("roster refresh failed", "err", err)
			}
		}
	}
}

// Listen registers and removes characters announced on channel
// (ipc.CharacterEntryChannel with a JSON entry, ipc.CharacterRemovedChannel
// with a content id). Each store call is bounded by timeout.
// Malformed payloads and store errors are logged.
func (r *Roster) Listen(channel ipc.Channel, timeout time.Duration) stream.Subscription {
	var subs stream.Group

	subs.Add(channel.On(ipc.CharacterEntryChannel, func(payload string) {
		var e model.CharacterEntry
		if err := json.Unmarshal([]byte(payload), &e); err != nil {
			slog.Warn("malformed character entry", "err", err)
			return
		}
		if e.Character.ID == 0 {
			e.Character.ID = e.LodestoneID
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := r.Register(ctx, e); err != nil {
			slog.Error("roster register failed", "err", err)
			return
		}
		slog.Info("character registered", "content_id", e.ContentID, "name", e.Character.Name, "roster_size", len(r.Entries()))
	}))

	subs.Add(channel.On(ipc.CharacterRemovedChannel, func(contentID string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := r.Unregister(ctx, contentID); err != nil {
			slog.Error("roster unregister failed", "err", err)
			return
		}
		slog.Info("character removed", "content_id", contentID, "roster_size", len(r.Entries()))
	}))

	return &subs
}
