package fragment

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolved(t *testing.T) {
	f := &Fragment{Name: "done", Kind: KindExample}
	e := Resolved(f, Success())

	assert.Same(t, f, e.Fragment())
	assert.Equal(t, Success(), e.Await())
	assert.Equal(t, Success(), e.Await())
}

func TestDeferred(t *testing.T) {
	t.Run("construction does not run the thunk", func(t *testing.T) {
		var runs atomic.Int32
		_ = Deferred(&Fragment{Name: "lazy"}, func() Outcome {
			runs.Add(1)
			return Success()
		})
		assert.Zero(t, runs.Load())
	})

	t.Run("await runs the thunk exactly once", func(t *testing.T) {
		var runs atomic.Int32
		e := Deferred(&Fragment{Name: "lazy"}, func() Outcome {
			runs.Add(1)
			return AssertionFailure("nope")
		})

		first := e.Await()
		second := e.Await()

		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), runs.Load())
	})

	t.Run("concurrent awaiters see the same outcome", func(t *testing.T) {
		var runs atomic.Int32
		e := Deferred(&Fragment{Name: "lazy"}, func() Outcome {
			runs.Add(1)
			return Success()
		})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.True(t, e.Await().IsOk())
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), runs.Load())
	})
}

func TestPending(t *testing.T) {
	t.Run("await blocks until resolved", func(t *testing.T) {
		e, resolve := Pending(&Fragment{Name: "pending"})

		got := make(chan Outcome, 1)
		go func() { got <- e.Await() }()

		resolve(Skipped())
		assert.Equal(t, Skipped(), <-got)
	})

	t.Run("second resolve is a no-op", func(t *testing.T) {
		e, resolve := Pending(&Fragment{Name: "pending"})
		resolve(Success())
		resolve(AssertionFailure("too late"))
		assert.Equal(t, Success(), e.Await())
	})
}

func TestAwaitAll(t *testing.T) {
	frags := []*Executing{
		Resolved(&Fragment{Name: "a"}, Success()),
		Resolved(&Fragment{Name: "b"}, Skipped()),
	}
	outcomes := AwaitAll(frags)
	require.Len(t, outcomes, 2)
	assert.Equal(t, StatusSuccess, outcomes[0].Status)
	assert.Equal(t, StatusSkipped, outcomes[1].Status)
}
