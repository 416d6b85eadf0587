package signal

import "sync"

// Binding links one handler to one signal. It only tracks its own state; the
// owning signal notices disposal when it sweeps.
type Binding[T any] struct {
	mu      sync.Mutex
	handler Handler[T]
	once    bool
	spent   bool
	state   BindingState
}

func newBinding[T any](h Handler[T], once bool) *Binding[T] {
	return &Binding[T]{
		handler: h,
		once:    once,
		state:   BindingBound,
	}
}

func (b *Binding[T]) Suspend() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != BindingDisposed {
		b.state = BindingSuspended
	}
}

func (b *Binding[T]) Resume() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != BindingDisposed {
		b.state = BindingBound
	}
}

func (b *Binding[T]) Dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = BindingDisposed
}

func (b *Binding[T]) State() BindingState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Binding[T]) Once() bool {
	return b.once
}

func (b *Binding[T]) Handler() Handler[T] {
	return b.handler
}

// claim reports whether the binding should fire now. A once binding can be
// claimed a single time.
func (b *Binding[T]) claim() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != BindingBound {
		return false
	}
	if b.once {
		if b.spent {
			return false
		}
		b.spent = true
	}
	return true
}
