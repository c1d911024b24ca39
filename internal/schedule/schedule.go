package schedule

import (
	"context"
	"fmt"

	"github.com/vk/specrungo/internal/ctxlog"
	"github.com/vk/specrungo/internal/fragment"
)

// Run is the product of executing a specification: one handle per input
// fragment, in declaration order, plus the worker pool for the caller to
// observe after consuming the outcomes.
type Run struct {
	// Fragments holds one Executing handle per input fragment, in the
	// original declaration order.
	Fragments []*fragment.Executing
	// Pool is the run's worker pool. Its intake is already closed when
	// Execute returns; Wait blocks until queued work has drained.
	Pool *Pool
}

// state is the accumulator threaded across groups by the fold. It is only
// ever mutated by the folding goroutine, even while the handles it
// references are still resolving concurrently.
type state struct {
	all        []*fragment.Executing
	prev       []*fragment.Executing
	beforePrev []*fragment.Executing
	gate       *skipGate
}

// Execute schedules every group in order and returns the run. For each
// group it merges the run configuration with the group's override,
// dispatches to exactly one strategy (sequential, random, or concurrent),
// and updates the running state: the produced handles, the barrier for the
// next group, and the skip gate that may force the next group to resolve
// Skipped.
//
// The pool's intake is closed before Execute returns, on the success and
// on the panic path alike; already-submitted work drains in the
// background.
func Execute(ctx context.Context, args fragment.Arguments, groups []*fragment.Group) (*Run, error) {
	logger := ctxlog.FromContext(ctx)

	total := 0
	for i, g := range groups {
		if g == nil {
			return nil, fmt.Errorf("group %d is nil", i)
		}
		for _, f := range g.Fragments {
			if f == nil {
				return nil, fmt.Errorf("group %d contains a nil fragment", i)
			}
			total++
		}
	}

	pool := NewPool(ctx, args.ThreadsNb, total)
	defer pool.Shutdown()

	logger.Debug("Scheduling groups.", "groups", len(groups), "fragments", total)

	st := &state{}
	for i, group := range groups {
		merged := args.Merge(group.Overrides)
		gate := st.gate
		bar := barrier(st.prev)

		var execs []*fragment.Executing
		switch {
		case merged.Sequential:
			execs = executeSequential(ctx, merged, group, gate)
		case merged.Random:
			execs = executeRandom(ctx, merged, group, gate)
		default:
			execs = executeConcurrent(ctx, merged, group, gate, bar, pool)
		}
		logger.Debug("Group scheduled.", "group", i, "fragments", len(execs))

		st.all = append(st.all, execs...)
		st.beforePrev, st.prev = st.prev, execs

		// The gate for the next group closes over this group's handles;
		// the rules themselves only run when the gate is first consulted.
		finished, before, groupArgs := execs, st.beforePrev, merged
		st.gate = &skipGate{eval: func() bool {
			return nextMustSkip(groupArgs, finished, before)
		}}
	}

	return &Run{Fragments: st.all, Pool: pool}, nil
}
