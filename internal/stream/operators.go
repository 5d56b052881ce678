package stream

import "sync"

// Filter passes through values for which keep returns true.
func Filter[T any](src Observable[T], keep func(T) bool) Observable[T] {
	return Func[T](func(fn func(T)) Subscription {
		return src.Subscribe(func(v T) {
			if keep(v) {
				fn(v)
			}
		})
	})
}

// Map transforms every value with f. f runs once per value per subscriber;
// put ShareReplay after Map to run it once per value.
func Map[T, R any](src Observable[T], f func(T) R) Observable[R] {
	return Func[R](func(fn func(R)) Subscription {
		return src.Subscribe(func(v T) {
			fn(f(v))
		})
	})
}

// DistinctUntilChanged drops values equal to the previous one seen by the
// same subscriber.
func DistinctUntilChanged[T comparable](src Observable[T]) Observable[T] {
	return Func[T](func(fn func(T)) Subscription {
		var (
			mu   sync.Mutex
			prev T
			seen bool
		)
		return src.Subscribe(func(v T) {
			mu.Lock()
			if seen && prev == v {
				mu.Unlock()
				return
			}
			prev, seen = v, true
			mu.Unlock()
			fn(v)
		})
	})
}

// Shared multicasts one upstream subscription and replays the latest value.
type Shared[T any] struct {
	src     Observable[T]
	subject *Subject[T]

	connect  sync.Once
	mu       sync.Mutex
	upstream Subscription
	closed   bool
}

// ShareReplay returns an Observable that subscribes to src once, on the first
// subscriber, and hands every later subscriber the latest value without
// touching src again. The upstream subscription lives until Close.
func ShareReplay[T any](src Observable[T]) *Shared[T] {
	return &Shared[T]{
		src:     src,
		subject: NewReplaySubject[T](),
	}
}

// Subscribe implements Observable.
func (s *Shared[T]) Subscribe(fn func(T)) Subscription {
	s.connect.Do(func() {
		up := s.src.Subscribe(s.subject.Next)
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			up.Unsubscribe()
			return
		}
		s.upstream = up
		s.mu.Unlock()
	})
	return s.subject.Subscribe(fn)
}

// Close drops the upstream subscription. Existing subscribers stop receiving
// new values; new subscribers still get the last one.
func (s *Shared[T]) Close() {
	s.mu.Lock()
	s.closed = true
	up := s.upstream
	s.upstream = nil
	s.mu.Unlock()

	if up != nil {
		up.Unsubscribe()
	}
}
