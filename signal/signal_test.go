package signal_test

import (
	"context"
	"testing"

	"github.com/delaneyj/guardsignal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestInitialValue(t *testing.T) {
	s := signal.New("Whatever")
	assert.Equal(t, "Whatever", s.Get())
	assert.Equal(t, signal.Working, s.State())

	empty := signal.New[any](nil)
	assert.Nil(t, empty.Get())
}

func TestEmitThenRead(t *testing.T) {
	s := signal.New("")
	require.NoError(t, s.Emit(ctx, "Whatever"))
	assert.Equal(t, "Whatever", s.Get())
}

func TestEmitSameValueStillNotifies(t *testing.T) {
	s := signal.New(1)
	callCount := 0
	s.Bind(func(next, prev int) {
		callCount++
	}, false)

	require.NoError(t, s.Emit(ctx, 1))
	require.NoError(t, s.Emit(ctx, 1))
	assert.Equal(t, 2, callCount)
}

func TestBind(t *testing.T) {
	t.Run("lazy", func(t *testing.T) {
		s := signal.New(0)
		var got []int
		b := s.Bind(func(next, prev int) {
			got = append(got, next)
		}, false)
		assert.Empty(t, got)
		assert.False(t, b.Once())
		assert.Equal(t, signal.BindingBound, b.State())

		require.NoError(t, s.Emit(ctx, 1))
		require.NoError(t, s.Emit(ctx, 2))
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("instant", func(t *testing.T) {
		s := signal.New(7)
		var got []int
		s.Bind(func(next, prev int) {
			got = append(got, next)
		}, true)
		assert.Equal(t, []int{7}, got)

		require.NoError(t, s.Emit(ctx, 8))
		assert.Equal(t, []int{7, 8}, got)
	})

	t.Run("prev value", func(t *testing.T) {
		s := signal.New("a")
		var prevs []string
		s.Bind(func(next, prev string) {
			prevs = append(prevs, prev)
		}, false)

		require.NoError(t, s.Emit(ctx, "b"))
		require.NoError(t, s.Emit(ctx, "c"))
		assert.Equal(t, []string{"a", "b"}, prevs)
	})

	t.Run("registration order", func(t *testing.T) {
		s := signal.New(0)
		var order []string
		for _, name := range []string{"first", "second", "third"} {
			s.Bind(func(next, prev int) {
				order = append(order, name)
			}, false)
		}

		require.NoError(t, s.Emit(ctx, 1))
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("same handler twice", func(t *testing.T) {
		s := signal.New(0)
		callCount := 0
		h := func(next, prev int) {
			callCount++
		}
		b1 := s.Bind(h, false)
		b2 := s.Bind(h, false)
		assert.NotSame(t, b1, b2)

		require.NoError(t, s.Emit(ctx, 1))
		assert.Equal(t, 2, callCount)

		b1.Dispose()
		require.NoError(t, s.Emit(ctx, 2))
		assert.Equal(t, 3, callCount)
	})

	t.Run("instant on suspended signal", func(t *testing.T) {
		s := signal.New(3)
		s.Suspend()
		var got []int
		s.Bind(func(next, prev int) {
			got = append(got, next)
		}, true)
		assert.Equal(t, []int{3}, got)
	})
}

func TestOnce(t *testing.T) {
	t.Run("instant", func(t *testing.T) {
		s := signal.New("x")
		var got []string
		b := s.Once(func(next, prev string) {
			got = append(got, next)
		}, true)

		assert.True(t, b.Once())
		assert.Equal(t, signal.BindingDisposed, b.State())
		assert.Equal(t, []string{"x"}, got)

		require.NoError(t, s.Emit(ctx, "y"))
		assert.Equal(t, []string{"x"}, got)
	})

	t.Run("lazy", func(t *testing.T) {
		s := signal.New("x")
		var got []string
		b := s.Once(func(next, prev string) {
			got = append(got, next)
		}, false)
		assert.Empty(t, got)
		assert.Equal(t, signal.BindingBound, b.State())

		require.NoError(t, s.Emit(ctx, "y"))
		require.NoError(t, s.Emit(ctx, "z"))
		assert.Equal(t, []string{"y"}, got)
		assert.Equal(t, signal.BindingDisposed, b.State())
	})

	t.Run("re-entrant emit fires once", func(t *testing.T) {
		s := signal.New(0)
		callCount := 0
		s.Once(func(next, prev int) {
			callCount++
			_ = s.Emit(ctx, next+1)
		}, false)

		require.NoError(t, s.Emit(ctx, 1))
		assert.Equal(t, 1, callCount)
		assert.Equal(t, 2, s.Get())
	})
}

func TestBindingLifecycle(t *testing.T) {
	t.Run("suspend skips emits", func(t *testing.T) {
		s := signal.New(0)
		var got []int
		b := s.Bind(func(next, prev int) {
			got = append(got, next)
		}, false)

		b.Suspend()
		b.Suspend()
		assert.Equal(t, signal.BindingSuspended, b.State())
		require.NoError(t, s.Emit(ctx, 1))
		assert.Empty(t, got)

		b.Resume()
		assert.Equal(t, signal.BindingBound, b.State())
		require.NoError(t, s.Emit(ctx, 2))
		assert.Equal(t, []int{2}, got)
	})

	t.Run("resume without suspend", func(t *testing.T) {
		s := signal.New(0)
		callCount := 0
		b := s.Bind(func(next, prev int) {
			callCount++
		}, false)
		b.Resume()

		require.NoError(t, s.Emit(ctx, 1))
		assert.Equal(t, 1, callCount)
	})

	t.Run("dispose is terminal", func(t *testing.T) {
		s := signal.New(0)
		callCount := 0
		b := s.Bind(func(next, prev int) {
			callCount++
		}, false)

		b.Dispose()
		b.Resume()
		b.Suspend()
		assert.Equal(t, signal.BindingDisposed, b.State())

		require.NoError(t, s.Emit(ctx, 1))
		require.NoError(t, s.Emit(ctx, 2))
		assert.Equal(t, 0, callCount)
	})

	t.Run("handler projection", func(t *testing.T) {
		s := signal.New(0)
		called := false
		b := s.Bind(func(next, prev int) {
			called = true
		}, false)
		b.Handler()(1, 0)
		assert.True(t, called)
	})
}

func TestSignalLifecycle(t *testing.T) {
	t.Run("suspend and resume", func(t *testing.T) {
		s := signal.New("start")
		callCount := 0
		s.Bind(func(next, prev string) {
			callCount++
		}, false)

		s.Suspend()
		assert.Equal(t, signal.Suspended, s.State())
		require.NoError(t, s.Emit(ctx, "ignored"))
		assert.Equal(t, "start", s.Get())
		assert.Equal(t, 0, callCount)

		s.Resume()
		assert.Equal(t, signal.Working, s.State())
		require.NoError(t, s.Emit(ctx, "next"))
		assert.Equal(t, "next", s.Get())
		assert.Equal(t, 1, callCount)
	})

	t.Run("dispose", func(t *testing.T) {
		s := signal.New("last")
		callCount := 0
		s.Bind(func(next, prev string) {
			callCount++
		}, false)

		s.Dispose()
		s.Dispose()
		s.Resume()
		s.Suspend()
		assert.Equal(t, signal.Disposed, s.State())

		require.NoError(t, s.Emit(ctx, "ignored"))
		assert.Equal(t, "last", s.Get())
		assert.Equal(t, 0, callCount)
	})
}

func TestHandlerPanicIsContained(t *testing.T) {
	var errs []error
	s := signal.New(0, signal.WithErrorHandler(func(err error) {
		errs = append(errs, err)
	}))

	var order []string
	s.Bind(func(next, prev int) {
		order = append(order, "first")
	}, false)
	s.Bind(func(next, prev int) {
		panic("boom")
	}, false)
	s.Bind(func(next, prev int) {
		order = append(order, "third")
	}, false)

	require.NoError(t, s.Emit(ctx, 1))
	assert.Equal(t, 1, s.Get())
	assert.Equal(t, []string{"first", "third"}, order)

	require.Len(t, errs, 1)
	var pe *signal.HandlerPanicError
	require.ErrorAs(t, errs[0], &pe)
	assert.Equal(t, "boom", pe.Value)
}

func TestHandlerPanicWithoutErrorHandler(t *testing.T) {
	s := signal.New(0)
	s.Bind(func(next, prev int) {
		panic("ignored")
	}, false)

	assert.NotPanics(t, func() {
		require.NoError(t, s.Emit(ctx, 1))
	})
	assert.Equal(t, 1, s.Get())
}

func TestInstantHandlerPanicPropagates(t *testing.T) {
	s := signal.New(0)
	callCount := 0
	assert.Panics(t, func() {
		s.Bind(func(next, prev int) {
			callCount++
			panic("instant")
		}, true)
	})

	require.NoError(t, s.Emit(ctx, 1))
	assert.Equal(t, 1, callCount, "binding must not be registered")
}

func TestEmitAsync(t *testing.T) {
	s := signal.New(0)
	got := make(chan int, 1)
	s.Bind(func(next, prev int) {
		got <- next
	}, false)

	_, err := s.EmitAsync(ctx, 5).Await()
	require.NoError(t, err)
	assert.Equal(t, 5, <-got)
	assert.Equal(t, 5, s.Get())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "working", signal.Working.String())
	assert.Equal(t, "suspended", signal.Suspended.String())
	assert.Equal(t, "disposed", signal.Disposed.String())
	assert.Equal(t, "bound", signal.BindingBound.String())
	assert.Equal(t, "suspended", signal.BindingSuspended.String())
	assert.Equal(t, "disposed", signal.BindingDisposed.String())

	for _, name := range []string{"never", "fail-any", "fail-all"} {
		p, err := signal.ParseStopPolicy(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.String())
	}
	_, err := signal.ParseStopPolicy("sometimes")
	assert.Error(t, err)
}
