// Package executor runs a single fragment and produces its outcome. It is
// the only place a check is actually invoked, and the only place a panic
// from a check is allowed to land.
package executor

import (
	"context"
	"fmt"

	"github.com/vk/specrungo/internal/ctxlog"
	"github.com/vk/specrungo/internal/fragment"
	"github.com/vk/specrungo/internal/result"
)

// Execute runs frag's check under the merged configuration and converts
// the result into an outcome.
//
// Markers (nil check) resolve Success without further ado. When SkipAll is
// set the check is bypassed and Skipped is returned. A panic raised by the
// check is recovered and converted to Failure(error); it never escapes
// into the scheduler.
func Execute(ctx context.Context, args fragment.Arguments, frag *fragment.Fragment) (out fragment.Outcome) {
	logger := ctxlog.FromContext(ctx).With("fragment", frag.Name, "kind", frag.Kind.String())

	if frag.Check == nil {
		return fragment.Success()
	}
	if args.SkipAll {
		logger.Debug("Skip forced, bypassing check.")
		return fragment.Skipped()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Check panicked.", "panic", r)
			out = fragment.ErrorFailure(fmt.Errorf("check panicked: %v", r))
		}
	}()

	logger.Debug("Running check.")
	v, err := frag.Check(ctx)
	out = result.AsResult(v, err)
	logger.Debug("Check finished.", "outcome", out.String())
	return out
}
