package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// Stepper advances a simulation by one tick.
type Stepper interface {
	Step(in core.Controls) core.StepResult
}

// Run drives s at a fixed delay: poll input, step, present, wait.
// It returns nil once the simulation reports Finished and ctx.Err() when the
// context is cancelled first.
func Run(ctx context.Context, s Stepper, in core.InputSource, present func(core.StepResult), delay time.Duration) error {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res := s.Step(in.Poll())
		if present != nil {
			present(res)
		}
		if res.State.Finished {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
