package signal

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
)

// Computed is a read-only signal whose value is recomputed from fn every time
// one of its sources commits a value. Recomputation happens synchronously
// inside the source's notification, so chains of computed signals update
// depth first.
type Computed[T any] struct {
	signal  *Signal[T]
	fn      func() T
	sources []Source
	subs    []Subscription
}

// NewComputed subscribes to each distinct source and computes the initial
// value. fn is expected to read the sources itself. Options apply to the
// internal signal.
func NewComputed[T any](fn func() T, sources []Source, opts ...Option) *Computed[T] {
	var zero T
	c := &Computed[T]{
		signal: New(zero, opts...),
		fn:     fn,
	}

	seen := mapset.NewThreadUnsafeSet[Source]()
	for _, src := range sources {
		if src == nil || seen.Contains(src) {
			continue
		}
		seen.Add(src)
		c.sources = append(c.sources, src)
		c.subs = append(c.subs, src.Watch(c.recompute))
	}

	c.recompute()
	return c
}

func (c *Computed[T]) recompute() {
	// the internal signal has no guards, Emit cannot fail
	_ = c.signal.Emit(context.Background(), c.fn())
}

func (c *Computed[T]) Get() T {
	return c.signal.Get()
}

func (c *Computed[T]) Bind(h Handler[T], instant bool) *Binding[T] {
	return c.signal.Bind(h, instant)
}

func (c *Computed[T]) Once(h Handler[T], instant bool) *Binding[T] {
	return c.signal.Once(h, instant)
}

func (c *Computed[T]) Watch(fn func()) Subscription {
	return c.signal.Watch(fn)
}

func (c *Computed[T]) Suspend() {
	c.signal.Suspend()
}

func (c *Computed[T]) Resume() {
	c.signal.Resume()
}

// Dispose also drops the subscriptions on the sources.
func (c *Computed[T]) Dispose() {
	c.signal.Dispose()
	for _, sub := range c.subs {
		sub.Dispose()
	}
}

func (c *Computed[T]) State() State {
	return c.signal.State()
}

// Sources returns the distinct sources in the order they were given.
func (c *Computed[T]) Sources() []Source {
	out := make([]Source, len(c.sources))
	copy(out, c.sources)
	return out
}
