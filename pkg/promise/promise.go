// Package promise adapts github.com/asmsh/promise to the (value, error) shape
// used by signal guards. Promises are created in non-safe mode: a rejection
// nobody reads is dropped instead of panicking on the resolving goroutine.
package promise

import (
	"errors"
	"fmt"

	asmsh "github.com/asmsh/promise"
)

// ErrNilRejection replaces a nil error passed to Rejected.
var ErrNilRejection = errors.New("promise: rejected with nil error")

// ErrPanicked is returned by Await for a wrapped promise that panicked
// outside of Go, where the panic value is not available.
var ErrPanicked = errors.New("promise: panicked")

type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("promise: panic: %v", e.Value)
}

type Promise struct {
	p asmsh.Promise
}

// Go runs fn on its own goroutine. A non-nil error rejects the promise, a
// panic rejects it with a *PanicError.
func Go(fn func() (any, error)) *Promise {
	return &Promise{p: asmsh.NonSafeAPI.GoRes(func() (res asmsh.Res) {
		defer func() {
			if r := recover(); r != nil {
				res = asmsh.Res{nil, &PanicError{Value: r}}
			}
		}()
		v, err := fn()
		return asmsh.Res{v, err}
	})}
}

func Resolved(value any) *Promise {
	return &Promise{p: asmsh.NonSafeAPI.Fulfill(value, nil)}
}

func Rejected(err error) *Promise {
	if err == nil {
		err = ErrNilRejection
	}
	return &Promise{p: asmsh.NonSafeAPI.Reject(err, nil)}
}

// From wraps a promise created directly with asmsh. Its first result element
// is the value and a trailing non-nil error rejects it.
func From(p asmsh.Promise) *Promise {
	return &Promise{p: p}
}

// Await blocks until the promise settles.
func (p *Promise) Await() (any, error) {
	res, ok := p.p.GetRes()
	if !ok {
		return nil, ErrPanicked
	}
	if err := res.GetErr(); err != nil {
		return nil, err
	}
	v, _ := res.First()
	return v, nil
}

type Result struct {
	Value any
	Err   error
}

func (r Result) Fulfilled() bool {
	return r.Err == nil
}

// AllSettled waits for every promise and returns their results in input order.
// A rejection never short-circuits the others.
func AllSettled(promises ...*Promise) []Result {
	inner := make([]asmsh.Promise, len(promises))
	for i, p := range promises {
		inner[i] = p.p
	}
	asmsh.WaitAll(inner...)

	results := make([]Result, len(promises))
	for i, p := range promises {
		v, err := p.Await()
		results[i] = Result{Value: v, Err: err}
	}
	return results
}
