package schedule

import (
	"context"
	"math/rand/v2"

	"github.com/vk/specrungo/internal/executor"
	"github.com/vk/specrungo/internal/fragment"
)

// effective returns the configuration a fragment actually runs under:
// the merged run/group arguments, with SkipAll forced when the group's
// gate fires. Consulting the gate resolves the previous groups, so this
// is only called from within a fragment's own evaluation.
func effective(merged fragment.Arguments, gate *skipGate) fragment.Arguments {
	if gate.MustSkip() {
		merged.SkipAll = true
	}
	return merged
}

// executeSequential produces one deferred handle per fragment. Nothing
// runs at construction time; awaiting the handles left to right yields
// strict declaration-order execution.
func executeSequential(ctx context.Context, merged fragment.Arguments, group *fragment.Group, gate *skipGate) []*fragment.Executing {
	out := make([]*fragment.Executing, 0, len(group.Fragments))
	for _, f := range group.Fragments {
		out = append(out, fragment.Deferred(f, func() fragment.Outcome {
			return executor.Execute(ctx, effective(merged, gate), f)
		}))
	}
	return out
}

// executeRandom builds the same lazy handles as the sequential strategy,
// then consumes them through a random permutation: awaiting the handle at
// visible position i forces every lazy handle up to and including i's slot
// in the permutation. Results keep their declared positions while actual
// execution order is scrambled.
func executeRandom(ctx context.Context, merged fragment.Arguments, group *fragment.Group, gate *skipGate) []*fragment.Executing {
	lazies := executeSequential(ctx, merged, group, gate)

	perm := rand.Perm(len(lazies))
	slot := make([]int, len(lazies))
	for p, idx := range perm {
		slot[idx] = p
	}

	out := make([]*fragment.Executing, len(lazies))
	for i, f := range group.Fragments {
		out[i] = fragment.Deferred(f, func() fragment.Outcome {
			for p := 0; p <= slot[i]; p++ {
				lazies[perm[p]].Await()
			}
			return lazies[i].Await()
		})
	}
	return out
}

// executeConcurrent dispatches fragments by kind: Examples and Actions go
// to the worker pool as pending computations that first wait on the group
// barrier; Steps and SpecEnds wait on the barrier and then run inline on
// the scheduling goroutine, so they never overlap with pool work on either
// side; markers resolve inline without touching the barrier.
func executeConcurrent(ctx context.Context, merged fragment.Arguments, group *fragment.Group, gate *skipGate, bar barrier, pool *Pool) []*fragment.Executing {
	out := make([]*fragment.Executing, 0, len(group.Fragments))
	for _, f := range group.Fragments {
		switch f.Kind.Placement() {
		case fragment.PlaceOnPool:
			exec, resolve := fragment.Pending(f)
			err := pool.Submit(func() {
				bar.Wait()
				resolve(executor.Execute(ctx, effective(merged, gate), f))
			})
			if err != nil {
				resolve(fragment.ErrorFailure(err))
			}
			out = append(out, exec)

		case fragment.PlaceInlineAfterBarrier:
			bar.Wait()
			out = append(out, fragment.Resolved(f, executor.Execute(ctx, effective(merged, gate), f)))

		default:
			// Markers carry no check and must not force the previous
			// group, so the gate is not consulted.
			out = append(out, fragment.Resolved(f, executor.Execute(ctx, merged, f)))
		}
	}
	return out
}
