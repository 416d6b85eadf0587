package signal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindingCount[T any](s *Signal[T]) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bindings)
}

func TestDisposedBindingsAreSweptOnEmit(t *testing.T) {
	ctx := context.Background()
	s := New(0)
	noop := func(next, prev int) {}

	b1 := s.Bind(noop, false)
	s.Bind(noop, false)
	once := s.Once(noop, false)
	assert.Equal(t, 3, bindingCount(s))

	b1.Dispose()
	assert.Equal(t, 3, bindingCount(s), "dispose alone must not touch the signal")

	require.NoError(t, s.Emit(ctx, 1))
	assert.Equal(t, 2, bindingCount(s))
	assert.Equal(t, BindingDisposed, once.State())

	require.NoError(t, s.Emit(ctx, 2))
	assert.Equal(t, 1, bindingCount(s))
}

func TestSweepRunsOnDisposedSignal(t *testing.T) {
	s := New("")
	b := s.Bind(func(next, prev string) {}, false)
	b.Dispose()
	s.Dispose()

	require.NoError(t, s.Emit(context.Background(), "x"))
	assert.Zero(t, bindingCount(s))
}

func TestInstantOnceIsNotRegistered(t *testing.T) {
	s := New(0)
	s.Once(func(next, prev int) {}, true)
	assert.Zero(t, bindingCount(s))
}

func TestDefaultGuardSuccessTest(t *testing.T) {
	assert.True(t, DefaultGuardSuccessTest(nil))
	assert.True(t, DefaultGuardSuccessTest(true))
	assert.False(t, DefaultGuardSuccessTest(false))
	assert.False(t, DefaultGuardSuccessTest("true"))
	assert.False(t, DefaultGuardSuccessTest(1))
}

func TestOptionsDefaults(t *testing.T) {
	o := newOptions(nil)
	assert.Equal(t, StopNever, o.stopEmit)
	assert.Nil(t, o.onError)

	o = newOptions([]Option{WithGuardSuccessTest(nil), WithStopEmit(StopFailAll)})
	assert.NotNil(t, o.guardSuccessTest)
	assert.Equal(t, StopFailAll, o.stopEmit)
}
