package task

import (
	"context"
	"fmt"
	"log/slog"
)

// Runner executes tasks for a single invocation, running each task at
// most once no matter how many others depend on it. Use a fresh Runner
// per invocation.
type Runner struct {
	set  *Set
	done map[string]bool

	// Start, when set, is called right before a task's body runs
	Start func(t *Task)
}

// NewRunner creates a runner over the given set
func NewRunner(set *Set) *Runner {
	return &Runner{
		set:  set,
		done: make(map[string]bool),
	}
}

// Run executes the named task after its dependencies, in declared order.
// The first failure aborts the invocation, remaining tasks included.
func (r *Runner) Run(ctx context.Context, name string) error {
	t, ok := r.set.Get(name)
	if !ok {
		return fmt.Errorf("unknown task '%s'", name)
	}

	if r.done[name] {
		slog.Debug("task already ran", "component", "task", "task", name)
		return nil
	}

	for _, dep := range t.Deps {
		if err := r.Run(ctx, dep); err != nil {
			return err
		}
	}

	if t.Body != nil {
		if r.Start != nil {
			r.Start(t)
		}

		slog.Debug("running task", "component", "task", "task", name)
		if err := t.Body(ctx); err != nil {
			return &RunError{Task: name, Err: err}
		}
	}

	r.done[name] = true
	return nil
}

// RunError reports which task failed
type RunError struct {
	Task string
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("task %s: %v", e.Task, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
