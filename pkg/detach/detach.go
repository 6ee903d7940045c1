// Package detach runs named side effects that must not delay or fail the
// request that started them.
//
// A task gets a context that keeps the caller's values (correlation id) but
// is never cancelled by the caller. Errors and panics are logged and counted;
// nothing is reported back.
package detach

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var tasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "detached_tasks_total",
	Help: "Detached side-effect tasks by name and result.",
}, []string{"task", "result"})

// Func is the body of a detached task.
type Func func(ctx context.Context) error

// Runner starts detached tasks and tracks them until they finish.
type Runner struct {
	log *slog.Logger
	wg  sync.WaitGroup
}

// NewRunner creates a Runner that reports task failures to log.
func NewRunner(log *slog.Logger) *Runner {
	return &Runner{log: log.With("component", "detach")}
}

// Go starts fn in its own goroutine and returns immediately.
func (r *Runner) Go(ctx context.Context, name string, fn Func) {
	ctx = context.WithoutCancel(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		err := r.run(ctx, name, fn)
		if err == nil {
			tasksTotal.WithLabelValues(name, "ok").Inc()
			return
		}

		tasksTotal.WithLabelValues(name, "error").Inc()
		r.log.ErrorContext(ctx, "detached task failed",
			slog.String("task", name),
			slog.String("error", err.Error()),
		)
	}()
}

func (r *Runner) run(ctx context.Context, name string, fn Func) (err error) {
	defer func() {
		if p := recover(); p != nil {
			r.log.ErrorContext(ctx, "detached task panicked",
				slog.String("task", name),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn(ctx)
}

// Wait blocks until every started task has returned or ctx is done.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("detach: wait: %w", ctx.Err())
	}
}
