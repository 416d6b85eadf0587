package signal

import (
	"context"
	"slices"
	"sync"

	"github.com/delaneyj/guardsignal/pkg/promise"
)

type Signal[T any] struct {
	mu       sync.Mutex
	value    T
	bindings []*Binding[T]
	guards   []Guard[T]
	state    State
	opts     options
}

func New[T any](initialValue T, opts ...Option) *Signal[T] {
	return &Signal[T]{
		value: initialValue,
		state: Working,
		opts:  newOptions(opts),
	}
}

// Get returns the last committed value, whatever the state.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Bind registers h for every later successful emit. With instant set, h is
// first called with the current value before the binding is registered.
func (s *Signal[T]) Bind(h Handler[T], instant bool) *Binding[T] {
	b := newBinding(h, false)
	if instant {
		var zero T
		h(s.Get(), zero)
	}

	s.mu.Lock()
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()
	return b
}

// Once registers h for a single call. With instant set, h runs right away and
// the returned binding is already disposed.
func (s *Signal[T]) Once(h Handler[T], instant bool) *Binding[T] {
	b := newBinding(h, true)
	if instant {
		var zero T
		h(s.Get(), zero)
		b.Dispose()
		return b
	}

	s.mu.Lock()
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()
	return b
}

func (s *Signal[T]) Watch(fn func()) Subscription {
	return s.Bind(func(next, prev T) { fn() }, false)
}

func (s *Signal[T]) Guard(g Guard[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guards = append(s.guards, g)
}

// Emit proposes next as the new value. On a suspended or disposed signal it
// does nothing and returns nil. It returns a *BlockedError when the guards
// veto the change; handler panics never surface here.
func (s *Signal[T]) Emit(ctx context.Context, next T) error {
	s.mu.Lock()
	s.sweep()
	if s.state != Working {
		s.mu.Unlock()
		return nil
	}
	prev := s.value
	policy := s.opts.stopEmit
	guards := slices.Clone(s.guards)
	s.mu.Unlock()

	if policy != StopNever && len(guards) > 0 {
		if err := s.checkGuards(ctx, guards, next, prev); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.value = next
	bindings := slices.Clone(s.bindings)
	s.mu.Unlock()

	s.notify(bindings, next, prev)
	return nil
}

// EmitAsync runs Emit on its own goroutine. The promise resolves to nil or
// rejects with the error Emit returned.
func (s *Signal[T]) EmitAsync(ctx context.Context, next T) *promise.Promise {
	return promise.Go(func() (any, error) {
		return nil, s.Emit(ctx, next)
	})
}

func (s *Signal[T]) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Disposed
}

func (s *Signal[T]) Suspend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Disposed {
		s.state = Suspended
	}
}

func (s *Signal[T]) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Disposed {
		s.state = Working
	}
}

func (s *Signal[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// sweep drops disposed bindings. Callers hold s.mu.
func (s *Signal[T]) sweep() {
	s.bindings = slices.DeleteFunc(s.bindings, func(b *Binding[T]) bool {
		return b.State() == BindingDisposed
	})
}

func (s *Signal[T]) notify(bindings []*Binding[T], next, prev T) {
	for _, b := range bindings {
		if !b.claim() {
			continue
		}
		s.invoke(b.handler, next, prev)
		if b.once {
			b.Dispose()
		}
	}
}

func (s *Signal[T]) invoke(h Handler[T], next, prev T) {
	defer func() {
		if r := recover(); r != nil && s.opts.onError != nil {
			s.opts.onError(&HandlerPanicError{Value: r})
		}
	}()
	h(next, prev)
}
