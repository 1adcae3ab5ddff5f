// Package saga runs a sequence of writes with explicit compensation.
// The backing store exposes no cross-entity transactions, so each
// orchestrator registers an inverse operation per step and this helper
// unwinds committed steps in reverse order on the first failure.
package saga

import (
	"context"
	"fmt"
	"log/slog"
)

// Step is one unit of work plus its inverse. Rollback may be nil when
// the step has nothing to undo (e.g. the last step of a sequence).
type Step struct {
	Name     string
	Commit   func(ctx context.Context) error
	Rollback func(ctx context.Context) error
}

// Run executes the steps in order. On the first Commit failure it rolls
// back every previously committed step, newest first, and returns the
// commit error wrapped with the failing step's name. Rollback failures
// are logged and swallowed; once unwinding starts it runs to the end.
func Run(ctx context.Context, steps []Step) error {
	for i, step := range steps {
		if err := step.Commit(ctx); err != nil {
			unwind(ctx, steps[:i])
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}

	return nil
}

func unwind(ctx context.Context, committed []Step) {
	for i := len(committed) - 1; i >= 0; i-- {
		step := committed[i]
		if step.Rollback == nil {
			continue
		}

		if err := step.Rollback(ctx); err != nil {
			slog.Warn("rollback failed, state may need manual cleanup",
				"step", step.Name, "error", err)
		}
	}
}
