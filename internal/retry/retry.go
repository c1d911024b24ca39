// Package retry provides the bounded retry combinator consumed by
// assertions. It is a collaborator of the scheduler, not part of it: it
// performs no concurrency and blocks the calling goroutine for its whole
// duration.
package retry

import (
	"time"

	"github.com/vk/specrungo/internal/fragment"
)

// Default policy when the caller does not specify one.
const (
	DefaultRetries = 40
	DefaultSleep   = 100 * time.Millisecond
)

// Eventually repeatedly evaluates compute and converts the value via
// toResult. It returns as soon as the outcome is ok, or when the retry
// budget is exhausted (retries <= 1), in which case the final outcome is
// returned as-is. Between attempts it sleeps for the given duration; there
// is no sleep after the last attempt.
//
// compute is re-invoked on every attempt. Callers must pass the producer
// itself, not a precomputed value: memoizing the first attempt would
// silently defeat the retries.
func Eventually[T any](retries int, sleep time.Duration, compute func() T, toResult func(T) fragment.Outcome) fragment.Outcome {
	for {
		out := toResult(compute())
		if out.IsOk() || retries <= 1 {
			return out
		}
		time.Sleep(sleep)
		retries--
	}
}

// Default runs Eventually with the default budget of 40 attempts spaced
// 100ms apart.
func Default[T any](compute func() T, toResult func(T) fragment.Outcome) fragment.Outcome {
	return Eventually(DefaultRetries, DefaultSleep, compute, toResult)
}
