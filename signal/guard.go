package signal

import (
	"context"

	asmsh "github.com/asmsh/promise"
	"github.com/delaneyj/guardsignal/pkg/promise"
)

// checkGuards runs every guard on its own goroutine and waits for all of them
// before applying the stop policy.
func (s *Signal[T]) checkGuards(ctx context.Context, guards []Guard[T], next, prev T) error {
	pending := make([]*promise.Promise, len(guards))
	for i, g := range guards {
		pending[i] = promise.Go(func() (any, error) {
			return s.settleGuard(g(ctx, next, prev))
		})
	}

	var (
		successes int
		reasons   []error
	)
	for _, r := range promise.AllSettled(pending...) {
		if r.Fulfilled() {
			successes++
			continue
		}
		reasons = append(reasons, r.Err)
	}

	switch s.opts.stopEmit {
	case StopFailAny:
		if len(reasons) > 0 {
			return &BlockedError{Policy: StopFailAny, Reasons: reasons}
		}
	case StopFailAll:
		if successes == 0 {
			return &BlockedError{Policy: StopFailAll, Reasons: reasons}
		}
	}
	return nil
}

func (s *Signal[T]) settleGuard(result any) (any, error) {
	switch r := result.(type) {
	case Awaiter:
		return r.Await()
	case asmsh.Promise:
		return promise.From(r).Await()
	}
	if s.opts.guardSuccessTest(result) {
		return result, nil
	}
	if err, ok := result.(error); ok {
		return nil, err
	}
	return nil, &RejectedError{Result: result}
}
