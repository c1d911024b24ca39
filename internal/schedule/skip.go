package schedule

import (
	"sync"

	"github.com/vk/specrungo/internal/fragment"
)

// barrier gates the start of work in a group until every fragment of the
// previous group has resolved. Await is idempotent, so waiting from many
// goroutines is safe, and waiting on a lazy previous group forces it.
type barrier []*fragment.Executing

func (b barrier) Wait() {
	for _, e := range b {
		e.Await()
	}
}

// skipGate decides, at most once, whether the group it conditions must be
// forced to skip. The decision is deferred: evaluating it resolves the
// previous groups' outcomes, so the gate is only consulted from a
// fragment's own evaluation (or after a barrier wait), never at fold time.
type skipGate struct {
	once sync.Once
	skip bool
	eval func() bool
}

func (g *skipGate) MustSkip() bool {
	if g == nil {
		return false
	}
	g.once.Do(func() {
		g.skip = g.eval()
	})
	return g.skip
}

// nextMustSkip implements the skip propagation rules over the just-finished
// group and the group before it. It is a disjunction of three independent
// rules:
//
//   - stop-on-skip: the configuration asks to stop and the finished group
//     contains a Skipped fragment;
//   - stop-on-fail: the configuration asks to stop and the finished group
//     contains a Failure;
//   - stop-on-fail-step: the finished group's first fragment is a Step
//     (or a SpecEnd wrapping one) with StopOnFail set, and the group
//     before it contains any not-ok outcome.
//
// Only the first fragment of a group can make it a stop step; a Step
// declared later in the group deliberately does not trigger the rule.
// Each boundary derives its decision fresh from these rules; a group that
// was itself forced to skip propagates further only if a rule re-fires
// (e.g. stop-on-skip cascades, stop-on-fail does not).
func nextMustSkip(args fragment.Arguments, finished, before []*fragment.Executing) bool {
	var anySkipped, anyFailed bool
	for _, e := range finished {
		switch e.Await().Status {
		case fragment.StatusSkipped:
			anySkipped = true
		case fragment.StatusFailure:
			anyFailed = true
		}
	}
	if args.StopOnSkip && anySkipped {
		return true
	}
	if args.StopOnFail && anyFailed {
		return true
	}
	if isStopStepGroup(finished) {
		for _, e := range before {
			if !e.Await().IsOk() {
				return true
			}
		}
	}
	return false
}

// isStopStepGroup reports whether the group's first fragment is a
// stop-on-fail Step, looking through a wrapping SpecEnd.
func isStopStepGroup(group []*fragment.Executing) bool {
	if len(group) == 0 {
		return false
	}
	step := group[0].Fragment().AsStep()
	return step != nil && step.StopOnFail
}
