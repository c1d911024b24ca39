package fragment

import "sync"

// Executing is a handle over a fragment's eventual outcome. It is created
// in one of three states: already resolved, deferred behind a thunk that
// runs on the first Await, or pending on work the scheduler submitted to
// the worker pool. In every state Await is idempotent: the outcome is
// computed at most once and cached, and concurrent awaiters are safe.
type Executing struct {
	frag *Fragment

	once  sync.Once
	thunk func() Outcome
	done  chan struct{}

	// outcome is written exactly once, before done is closed.
	outcome Outcome
}

// Resolved returns a handle whose outcome is already known.
func Resolved(f *Fragment, o Outcome) *Executing {
	e := &Executing{frag: f, done: make(chan struct{}), outcome: o}
	close(e.done)
	return e
}

// Deferred returns a handle that evaluates thunk on the first Await.
// Construction never runs the thunk.
func Deferred(f *Fragment, thunk func() Outcome) *Executing {
	return &Executing{frag: f, thunk: thunk, done: make(chan struct{})}
}

// Pending returns a handle whose outcome will be supplied by the returned
// resolve function, typically from a worker-pool task. Resolving more than
// once is a no-op.
func Pending(f *Fragment) (*Executing, func(Outcome)) {
	e := &Executing{frag: f, done: make(chan struct{})}
	resolve := func(o Outcome) {
		e.once.Do(func() {
			e.outcome = o
			close(e.done)
		})
	}
	return e, resolve
}

// Fragment returns the fragment this handle belongs to.
func (e *Executing) Fragment() *Fragment {
	return e.frag
}

// Await blocks until the outcome is available and returns it. A deferred
// handle evaluates its thunk on the awaiting goroutine; a pending handle
// waits for the pool task to resolve it.
func (e *Executing) Await() Outcome {
	if e.thunk != nil {
		e.once.Do(func() {
			e.outcome = e.thunk()
			close(e.done)
		})
	}
	<-e.done
	return e.outcome
}

// AwaitAll resolves every handle in order and returns the outcomes.
func AwaitAll(execs []*Executing) []Outcome {
	out := make([]Outcome, len(execs))
	for i, e := range execs {
		out[i] = e.Await()
	}
	return out
}
