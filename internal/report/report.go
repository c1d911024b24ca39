// Package report is the reporting collaborator: it awaits each Executing
// handle in declaration order and renders a plain-text pass/fail/skip
// summary. Awaiting left to right is what gives the caller the ordering
// guarantee the scheduler promises.
package report

import (
	"fmt"
	"io"

	"github.com/vk/specrungo/internal/fragment"
)

// Summary totals one rendered run.
type Summary struct {
	Examples int
	Failures int
	Skipped  int
}

// Failed reports whether the run contained at least one failure.
func (s Summary) Failed() bool {
	return s.Failures > 0
}

// Render awaits every handle in order, writes one line per check-bearing
// fragment plus the totals, and returns the summary. Markers render their
// name only; SpecEnd renders nothing.
func Render(w io.Writer, name string, execs []*fragment.Executing) Summary {
	var sum Summary
	fmt.Fprintf(w, "%s\n", name)
	for _, e := range execs {
		frag := e.Fragment()
		out := e.Await()

		switch frag.Kind {
		case fragment.KindSpecEnd:
			continue
		case fragment.KindText:
			fmt.Fprintf(w, "  -- %s\n", frag.Name)
			continue
		}

		sum.Examples++
		switch out.Status {
		case fragment.StatusSuccess:
			fmt.Fprintf(w, "  ✅ %s\n", frag.Name)
		case fragment.StatusSkipped:
			sum.Skipped++
			fmt.Fprintf(w, "  ⏭️ %s (skipped)\n", frag.Name)
		case fragment.StatusFailure:
			sum.Failures++
			if out.Failure == fragment.FailureError {
				fmt.Fprintf(w, "  ❌ %s: error: %v\n", frag.Name, out.Err)
			} else {
				fmt.Fprintf(w, "  ❌ %s: %s\n", frag.Name, out.Message)
			}
		}
	}
	fmt.Fprintf(w, "%d examples, %d failures, %d skipped\n", sum.Examples, sum.Failures, sum.Skipped)
	return sum
}
