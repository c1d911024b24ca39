// Package testutil provides shared helpers for exercising the engine in
// tests: a recording check factory, fragment constructors, and a spec-file
// harness.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/vk/specrungo/internal/fragment"
)

// Span is the observed execution window of one recorded check.
type Span struct {
	Start time.Time
	End   time.Time
}

// Recorder builds checks that record when and in which order they ran.
// It is safe for concurrent checks.
type Recorder struct {
	mu    sync.Mutex
	order []string
	spans map[string]Span
	runs  map[string]int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{spans: make(map[string]Span), runs: make(map[string]int)}
}

// Check returns a check that sleeps for d, then returns (value, err),
// recording its execution window under name.
func (r *Recorder) Check(name string, d time.Duration, value any, err error) fragment.Check {
	return func(ctx context.Context) (any, error) {
		start := time.Now()
		if d > 0 {
			time.Sleep(d)
		}
		end := time.Now()

		r.mu.Lock()
		r.order = append(r.order, name)
		r.spans[name] = Span{Start: start, End: end}
		r.runs[name]++
		r.mu.Unlock()

		return value, err
	}
}

// Ok returns an instantly-succeeding recorded check.
func (r *Recorder) Ok(name string) fragment.Check {
	return r.Check(name, 0, true, nil)
}

// Fail returns an instantly-failing recorded check.
func (r *Recorder) Fail(name string, err error) fragment.Check {
	return r.Check(name, 0, nil, err)
}

// Order returns the names in actual execution order.
func (r *Recorder) Order() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Ran reports whether the named check executed at least once.
func (r *Recorder) Ran(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs[name] > 0
}

// Runs returns how many times the named check executed.
func (r *Recorder) Runs(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs[name]
}

// Span returns the execution window of the named check.
func (r *Recorder) Span(name string) (Span, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.spans[name]
	return s, ok
}

// Example builds an example fragment around a check.
func Example(name string, check fragment.Check) *fragment.Fragment {
	return &fragment.Fragment{Name: name, Kind: fragment.KindExample, Check: check}
}

// Action builds an action fragment around a check.
func Action(name string, check fragment.Check) *fragment.Fragment {
	return &fragment.Fragment{Name: name, Kind: fragment.KindAction, Check: check}
}

// Step builds a step fragment around a check.
func Step(name string, stopOnFail bool, check fragment.Check) *fragment.Fragment {
	return &fragment.Fragment{Name: name, Kind: fragment.KindStep, StopOnFail: stopOnFail, Check: check}
}

// Text builds an inert marker fragment.
func Text(name string) *fragment.Fragment {
	return &fragment.Fragment{Name: name, Kind: fragment.KindText}
}

// Group builds a group from fragments, with no overrides.
func Group(frags ...*fragment.Fragment) *fragment.Group {
	return &fragment.Group{Fragments: frags}
}
