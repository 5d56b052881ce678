package inventory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/invfacade/internal/model"
	"github.com/udisondev/invfacade/internal/stream"
)

// DefaultEffectTimeout bounds one repository call made by an effect.
const DefaultEffectTimeout = 5 * time.Second

// SnapshotRepository persists the inventory snapshot between runs.
type SnapshotRepository interface {
	Load(ctx context.Context) (*model.UserInventory, error)
	Save(ctx context.Context, inv *model.UserInventory) error
	Delete(ctx context.Context) error
}

// Store holds the inventory State, applies dispatched actions through Reduce
// and runs persistence effects.
//
// Dispatch never blocks on another Dispatch: an action dispatched while the
// store is busy (from another goroutine or from an effect/observer) is queued
// and applied by the goroutine already draining the queue, in order.
type Store struct {
	repo          SnapshotRepository
	effectTimeout time.Duration

	states *stream.Subject[State]

	mu       sync.Mutex
	current  State
	queue    []Action
	draining bool
}

// NewStore создаёт Store. repo может быть nil: тогда состояние живёт только в памяти.
func NewStore(repo SnapshotRepository, effectTimeout time.Duration) *Store {
	if effectTimeout <= 0 {
		effectTimeout = DefaultEffectTimeout
	}
	return &Store{
		repo:          repo,
		effectTimeout: effectTimeout,
		states:        stream.NewBehaviorSubject(State{}),
	}
}

// Dispatch applies a. Fire and forget: failures of effects are only logged.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.queue = append(s.queue, a)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true

	for len(s.queue) > 0 {
		action := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]

		prev := s.current
		next := Reduce(prev, action)
		s.current = next
		s.mu.Unlock()

		slog.Debug("inventory action", "action", action.Type())
		if next != prev {
			s.states.Next(next)
		}
		s.runEffects(prev, next, action)

		s.mu.Lock()
	}
	s.queue = nil
	s.draining = false
	s.mu.Unlock()
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// States returns the state stream. Subscribers get the current state first.
func (s *Store) States() stream.Observable[State] {
	return s.states
}

// Select projects the state stream and drops consecutive duplicates, so
// subscribers only hear about changes of the projected value.
func Select[T comparable](states stream.Observable[State], project func(State) T) stream.Observable[T] {
	return stream.DistinctUntilChanged(stream.Map(states, project))
}

func (s *Store) runEffects(prev, next State, a Action) {
	switch a := a.(type) {
	case LoadInventory:
		s.loadEffect()

	case UpdateInventory:
		if a.Inventory == nil {
			return
		}
		if !a.Force && next.Inventory == prev.Inventory {
			slog.Debug("stale inventory update ignored",
				"incoming", a.Inventory.LastUpdated, "held", prev.Inventory.LastUpdated)
			return
		}
		s.withRepo("saving inventory", func(ctx context.Context) error {
			return s.repo.Save(ctx, next.Inventory)
		})

	case ResetInventory:
		s.withRepo("deleting inventory", func(ctx context.Context) error {
			return s.repo.Delete(ctx)
		})
	}
}

func (s *Store) loadEffect() {
	if s.repo == nil {
		s.Dispatch(InventoryLoaded{})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.effectTimeout)
	defer cancel()

	inv, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("loading inventory", "err", err)
		return
	}
	s.Dispatch(InventoryLoaded{Inventory: inv})
}

func (s *Store) withRepo(op string, fn func(ctx context.Context) error) {
	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.effectTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		slog.Error(op, "err", err)
	}
}
