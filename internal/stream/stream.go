// Package stream implements hot observables used to wire the inventory store
// to its consumers: a Subject with optional last-value replay, a few pure
// operators and ShareReplay for multicasting one upstream subscription.
//
// Delivery is synchronous on the goroutine that emits. Observers must not
// block for long: the emitter waits for every observer in turn.
package stream

import "sync"

// Subscription cancels delivery to one observer.
type Subscription interface {
	Unsubscribe()
}

// Observable is a source of values of type T.
type Observable[T any] interface {
	Subscribe(fn func(T)) Subscription
}

// Func adapts a subscribe function to Observable.
type Func[T any] func(fn func(T)) Subscription

// Subscribe implements Observable.
func (f Func[T]) Subscribe(fn func(T)) Subscription {
	return f(fn)
}

type onceSubscription struct {
	once sync.Once
	fn   func()
}

func (s *onceSubscription) Unsubscribe() {
	s.once.Do(s.fn)
}

// NewSubscription returns a Subscription that runs fn on the first Unsubscribe.
func NewSubscription(fn func()) Subscription {
	return &onceSubscription{fn: fn}
}

// Group collects subscriptions to release them together.
type Group struct {
	mu   sync.Mutex
	subs []Subscription
}

// Add registers a subscription in the group.
func (g *Group) Add(s Subscription) {
	g.mu.Lock()
	g.subs = append(g.subs, s)
	g.mu.Unlock()
}

// Unsubscribe releases every subscription added so far.
func (g *Group) Unsubscribe() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
}
