package app

import (
	"context"
	"fmt"

	"github.com/vk/specrungo/internal/ctxlog"
	"github.com/vk/specrungo/internal/fragment"
	"github.com/vk/specrungo/internal/report"
	"github.com/vk/specrungo/internal/schedule"
)

// Run executes the main application logic: load every specification under
// the configured path, schedule each in turn, and render the reports.
// It returns an error when any fragment failed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	specs, err := a.loader.Load(ctx, a.config.SpecPath)
	if err != nil {
		return fmt.Errorf("failed to load specifications: %w", err)
	}
	a.logger.Debug("Specifications loaded.", "count", len(specs))

	var failures int
	for _, spec := range specs {
		args := a.mergeFlags(spec.Arguments)
		a.logger.Info("🚀 Starting specification run.", "spec", spec.Name, "groups", len(spec.Groups))

		run, err := schedule.Execute(ctx, args, spec.Groups)
		if err != nil {
			return fmt.Errorf("scheduling %q failed: %w", spec.Name, err)
		}

		sum := report.Render(a.outW, spec.Name, run.Fragments)
		run.Pool.Wait()

		failures += sum.Failures
		a.logger.Info("🏁 Specification finished.", "spec", spec.Name, "examples", sum.Examples, "failures", sum.Failures, "skipped", sum.Skipped)
	}

	if failures > 0 {
		return fmt.Errorf("%d fragment(s) failed", failures)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// mergeFlags applies command-line run options over a spec's own config
// block. Boolean flags only force a mode on; they never unset what the
// spec declared.
func (a *App) mergeFlags(args fragment.Arguments) fragment.Arguments {
	if a.config.Sequential {
		args.Sequential = true
	}
	if a.config.Random {
		args.Random = true
	}
	if a.config.StopOnFail {
		args.StopOnFail = true
	}
	if a.config.StopOnSkip {
		args.StopOnSkip = true
	}
	if a.config.Workers > 0 {
		args.ThreadsNb = a.config.Workers
	}
	return args
}
