package fragment

import "context"

// Kind discriminates the declared role of a fragment.
type Kind int

const (
	// KindExample is a regular example: a named check expected to pass.
	KindExample Kind = iota
	// KindStep is a setup/teardown boundary between groups of examples.
	KindStep
	// KindAction is a side-effecting unit that runs like an example but
	// exists for its effect rather than its assertion.
	KindAction
	// KindSpecEnd marks the end of a specification. It may wrap a Step so
	// that teardown participates in stop-on-fail decisions.
	KindSpecEnd
	// KindText is an inert marker (titles, free text); it carries no check.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindExample:
		return "example"
	case KindStep:
		return "step"
	case KindAction:
		return "action"
	case KindSpecEnd:
		return "spec_end"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Placement describes where a fragment of a given kind runs when the
// scheduler is in concurrent mode.
type Placement int

const (
	// PlaceOnPool submits the fragment to the worker pool after the group
	// barrier resolves.
	PlaceOnPool Placement = iota
	// PlaceInlineAfterBarrier runs the fragment on the scheduling
	// goroutine, after waiting on the group barrier. Steps are full
	// synchronization points and must never overlap with pool work.
	PlaceInlineAfterBarrier
	// PlaceInline runs the fragment on the scheduling goroutine without
	// waiting on the barrier. Markers have no check and no ordering needs.
	PlaceInline
)

// Placement returns the concurrent-mode placement for the kind.
func (k Kind) Placement() Placement {
	switch k {
	case KindExample, KindAction:
		return PlaceOnPool
	case KindStep, KindSpecEnd:
		return PlaceInlineAfterBarrier
	default:
		return PlaceInline
	}
}

// Check is the opaque computation a fragment executes. The scheduler never
// interprets the returned value; it is handed to the result collaborator
// for conversion into an Outcome.
type Check func(ctx context.Context) (any, error)

// Fragment is the immutable description of one declared test unit.
type Fragment struct {
	// Name is the declared label, used for logging and reporting.
	Name string
	// Kind is the fragment's role.
	Kind Kind
	// StopOnFail marks a Step or Action whose failure must halt
	// subsequent groups.
	StopOnFail bool
	// Seq is the declaration-order sequence number of the group the
	// fragment belongs to.
	Seq int
	// Check is the computation to run. Nil for Text markers.
	Check Check
	// Wraps is set on a SpecEnd that wraps a teardown Step, so the
	// stop-on-fail-step rule can see through it.
	Wraps *Fragment
}

// AsStep returns the fragment itself when it is a Step, the wrapped Step
// when it is a SpecEnd around one, and nil otherwise.
func (f *Fragment) AsStep() *Fragment {
	if f.Kind == KindStep {
		return f
	}
	if f.Kind == KindSpecEnd && f.Wraps != nil && f.Wraps.Kind == KindStep {
		return f.Wraps
	}
	return nil
}

// Group is an ordered list of fragments declared without an intervening
// strict boundary. Groups are consumed strictly in declaration order;
// fragments within a group may run out of order depending on strategy.
type Group struct {
	Fragments []*Fragment
	// Overrides is the group's own configuration subset, merged over the
	// run defaults by the scheduler. Nil means no override.
	Overrides *Overrides
}
