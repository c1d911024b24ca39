package fragment

// Arguments is the run configuration the scheduler recognizes. The zero
// value is the default: concurrent execution, no stop propagation, worker
// count chosen by the pool.
type Arguments struct {
	// Sequential disables concurrency and preserves declaration order.
	Sequential bool
	// Random shuffles intra-group execution order while keeping group
	// boundaries and the caller-visible result order.
	Random bool
	// StopOnFail forces the group after a failing group to skip.
	StopOnFail bool
	// StopOnSkip forces the group after a group containing a skip to skip.
	StopOnSkip bool
	// SkipAll bypasses execution entirely; every fragment resolves Skipped.
	SkipAll bool
	// ThreadsNb is the worker-pool size for concurrent mode. Zero or
	// negative means the available parallelism.
	ThreadsNb int
}

// Overrides is the per-group configuration subset. Nil fields leave the
// run default untouched.
type Overrides struct {
	Sequential *bool
	Random     *bool
	StopOnFail *bool
	StopOnSkip *bool
	SkipAll    *bool
	ThreadsNb  *int
}

// Merge applies a group's overrides over the run defaults and returns the
// merged configuration. The receiver is not modified.
func (a Arguments) Merge(o *Overrides) Arguments {
	if o == nil {
		return a
	}
	if o.Sequential != nil {
		a.Sequential = *o.Sequential
	}
	if o.Random != nil {
		a.Random = *o.Random
	}
	if o.StopOnFail != nil {
		a.StopOnFail = *o.StopOnFail
	}
	if o.StopOnSkip != nil {
		a.StopOnSkip = *o.StopOnSkip
	}
	if o.SkipAll != nil {
		a.SkipAll = *o.SkipAll
	}
	if o.ThreadsNb != nil {
		a.ThreadsNb = *o.ThreadsNb
	}
	return a
}
