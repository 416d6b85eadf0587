package signal

import (
	"context"
	"fmt"

	"github.com/delaneyj/guardsignal/pkg/promise"
)

type State uint8

const (
	Working State = iota
	Suspended
	Disposed
)

func (s State) String() string {
	switch s {
	case Working:
		return "working"
	case Suspended:
		return "suspended"
	case Disposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

type BindingState uint8

const (
	BindingBound BindingState = iota
	BindingSuspended
	BindingDisposed
)

func (s BindingState) String() string {
	switch s {
	case BindingBound:
		return "bound"
	case BindingSuspended:
		return "suspended"
	case BindingDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("BindingState(%d)", uint8(s))
	}
}

// StopPolicy decides how guard outcomes gate an emit.
type StopPolicy uint8

const (
	StopNever   StopPolicy = iota // guards are never evaluated
	StopFailAny                   // one failing guard blocks the emit
	StopFailAll                   // the emit is blocked only if every guard fails
)

func (p StopPolicy) String() string {
	switch p {
	case StopNever:
		return "never"
	case StopFailAny:
		return "fail-any"
	case StopFailAll:
		return "fail-all"
	default:
		return fmt.Sprintf("StopPolicy(%d)", uint8(p))
	}
}

func ParseStopPolicy(s string) (StopPolicy, error) {
	switch s {
	case "", "never":
		return StopNever, nil
	case "fail-any":
		return StopFailAny, nil
	case "fail-all":
		return StopFailAll, nil
	default:
		return StopNever, fmt.Errorf("unknown stop policy %q", s)
	}
}

type Handler[T any] func(next, prev T)

// Guard inspects a pending change. The result is either an Awaiter, whose
// settlement decides, or a plain value judged by the signal's success test.
type Guard[T any] func(ctx context.Context, next, prev T) any

type Awaiter interface {
	Await() (any, error)
}

var _ Awaiter = (*promise.Promise)(nil)

type Subscription interface {
	Suspend()
	Resume()
	Dispose()
	State() BindingState
}

// Source is anything a computed signal can recompute from.
type Source interface {
	Watch(fn func()) Subscription
}

type ReadonlySignal[T any] interface {
	Source
	Get() T
	Bind(h Handler[T], instant bool) *Binding[T]
	Once(h Handler[T], instant bool) *Binding[T]
	Suspend()
	Resume()
	Dispose()
	State() State
}

type WritableSignal[T any] interface {
	ReadonlySignal[T]
	Emit(ctx context.Context, next T) error
	EmitAsync(ctx context.Context, next T) *promise.Promise
	Guard(g Guard[T])
}

var (
	_ WritableSignal[int] = (*Signal[int])(nil)
	_ ReadonlySignal[int] = (*Computed[int])(nil)
	_ Subscription        = (*Binding[int])(nil)
)
