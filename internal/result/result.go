// Package result is the boundary to the matcher collaborator: it converts
// the opaque value a check returns into a fragment.Outcome. The scheduler
// never interprets check results itself; everything funnels through
// AsResult.
package result

import (
	"fmt"

	"github.com/vk/specrungo/internal/fragment"
)

// Resulter converts a computed value into an outcome. Checks that want
// full control over their outcome return a fragment.Outcome directly;
// AsResult passes it through untouched.
type Resulter interface {
	AsResult(v any) fragment.Outcome
}

// AsResult converts a check's return pair into an outcome:
//
//   - a non-nil error is an unexpected error, Failure(error)
//   - a fragment.Outcome value passes through unchanged
//   - false is an unmet expectation, Failure(assertion)
//   - everything else, including nil, is Success
func AsResult(v any, err error) fragment.Outcome {
	if err != nil {
		return fragment.ErrorFailure(err)
	}
	switch r := v.(type) {
	case fragment.Outcome:
		return r
	case bool:
		if !r {
			return fragment.AssertionFailure("check returned false")
		}
		return fragment.Success()
	case error:
		if r != nil {
			return fragment.ErrorFailure(r)
		}
		return fragment.Success()
	case Resulter:
		return r.AsResult(v)
	default:
		return fragment.Success()
	}
}

// Expectf builds an assertion outcome from a condition: Success when the
// condition holds, a formatted assertion failure otherwise.
func Expectf(ok bool, format string, args ...any) fragment.Outcome {
	if ok {
		return fragment.Success()
	}
	return fragment.AssertionFailure(fmt.Sprintf(format, args...))
}
