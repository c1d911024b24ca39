package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vk/specrungo/internal/fragment"
)

// counting returns a producer yielding the current attempt number.
func counting() (compute func() int, attempts *int) {
	attempts = new(int)
	compute = func() int {
		*attempts++
		return *attempts
	}
	return compute, attempts
}

func toResultAfter(succeedOn int) func(int) fragment.Outcome {
	return func(attempt int) fragment.Outcome {
		if attempt >= succeedOn {
			return fragment.Success()
		}
		return fragment.AssertionFailure("not yet")
	}
}

func TestEventually(t *testing.T) {
	t.Run("fail fail succeed returns success after exactly three attempts", func(t *testing.T) {
		compute, attempts := counting()
		out := Eventually(3, 10*time.Millisecond, compute, toResultAfter(3))
		assert.True(t, out.IsOk())
		assert.Equal(t, 3, *attempts)
	})

	t.Run("exhausted budget returns the final failure after exactly two attempts", func(t *testing.T) {
		compute, attempts := counting()
		out := Eventually(2, 10*time.Millisecond, compute, func(int) fragment.Outcome {
			return fragment.AssertionFailure("always")
		})
		assert.False(t, out.IsOk())
		assert.Equal(t, 2, *attempts, "no third attempt")
	})

	t.Run("no sleep after the last attempt", func(t *testing.T) {
		compute, _ := counting()
		start := time.Now()
		Eventually(2, 50*time.Millisecond, compute, func(int) fragment.Outcome {
			return fragment.AssertionFailure("always")
		})
		elapsed := time.Since(start)
		assert.Less(t, elapsed, 100*time.Millisecond, "two attempts mean one sleep")
	})

	t.Run("immediate success does not sleep", func(t *testing.T) {
		compute, attempts := counting()
		start := time.Now()
		out := Eventually(40, 100*time.Millisecond, compute, toResultAfter(1))
		assert.True(t, out.IsOk())
		assert.Equal(t, 1, *attempts)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("compute is re-invoked every attempt", func(t *testing.T) {
		compute, attempts := counting()
		Eventually(5, time.Millisecond, compute, func(int) fragment.Outcome {
			return fragment.AssertionFailure("always")
		})
		assert.Equal(t, 5, *attempts, "the producer must be recomputed, never memoized")
	})

	t.Run("retries below one still run once", func(t *testing.T) {
		compute, attempts := counting()
		out := Eventually(0, time.Millisecond, compute, func(int) fragment.Outcome {
			return fragment.AssertionFailure("always")
		})
		assert.False(t, out.IsOk())
		assert.Equal(t, 1, *attempts)
	})
}
