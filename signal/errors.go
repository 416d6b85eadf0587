package signal

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBlocked = errors.New("signal: emit blocked by guard")

// BlockedError is returned by Emit when the stop policy rejects the guard
// outcomes. Reasons holds one entry per failed guard, in registration order.
type BlockedError struct {
	Policy  StopPolicy
	Reasons []error
}

func (e *BlockedError) Error() string {
	reasons := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		reasons[i] = r.Error()
	}
	return fmt.Sprintf("%s (%s): [%s]", ErrBlocked, e.Policy, strings.Join(reasons, "; "))
}

func (e *BlockedError) Is(target error) bool {
	return target == ErrBlocked
}

func (e *BlockedError) Unwrap() []error {
	return e.Reasons
}

// RejectedError is the reason recorded for a guard whose plain result failed
// the success test.
type RejectedError struct {
	Result any
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("guard rejected with %v", e.Result)
}

type HandlerPanicError struct {
	Value any
}

func (e *HandlerPanicError) Error() string {
	return fmt.Sprintf("signal: handler panic: %v", e.Value)
}

func (e *HandlerPanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
