package stream

import "sync"

// Subject is a hot Observable fed by Next.
//
// A replaying Subject keeps the latest value and hands it to every new
// subscriber before any later value. Concurrent Next calls are not ordered
// relative to each other.
type Subject[T any] struct {
	mu        sync.Mutex
	observers map[uint64]func(T)
	nextID    uint64

	replay bool
	last   T
	has    bool
}

// NewSubject creates a Subject that only delivers values emitted after subscription.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{observers: make(map[uint64]func(T))}
}

// NewReplaySubject creates a Subject that replays its latest value.
func NewReplaySubject[T any]() *Subject[T] {
	s := NewSubject[T]()
	s.replay = true
	return s
}

// NewBehaviorSubject creates a replaying Subject seeded with initial.
func NewBehaviorSubject[T any](initial T) *Subject[T] {
	s := NewReplaySubject[T]()
	s.last = initial
	s.has = true
	return s
}

// Next delivers v to every current observer.
func (s *Subject[T]) Next(v T) {
	s.mu.Lock()
	if s.replay {
		s.last = v
		s.has = true
	}
	observers := make([]func(T), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(v)
	}
}

// Value returns the latest value of a replaying Subject.
// ok is false if nothing was emitted yet.
func (s *Subject[T]) Value() (v T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.has
}

// Subscribe registers fn. A replaying Subject calls fn with the latest value
// before returning.
func (s *Subject[T]) Subscribe(fn func(T)) Subscription {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	last, has := s.last, s.has && s.replay
	s.mu.Unlock()

	if has {
		fn(last)
	}

	return NewSubscription(func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	})
}

// ObserverCount returns the number of registered observers.
func (s *Subject[T]) ObserverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}
