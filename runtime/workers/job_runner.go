package workers

import (
	"context"
	"dcbot/contract"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobRunner starts one goroutine per command that needs the chat platform.
// Jobs outlive the HTTP request that created them and the shutdown signal:
// their context keeps the values of the process context but not its
// cancellation, and only the per-job timeout ends them. Wait blocks until
// every started job returned, which is how shutdown drains them.
type JobRunner struct {
	ctx     context.Context
	log     *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

var _ contract.IJobRunner = (*JobRunner)(nil)

func NewJobRunner(ctx context.Context, log *slog.Logger, timeout time.Duration) *JobRunner {
	return &JobRunner{ctx: ctx, log: log, timeout: timeout}
}

// Go runs job in the background and returns its ID. A panicking job is
// logged and never takes the process down.
func (r *JobRunner) Go(name string, job func(ctx context.Context)) string {
	jobID := uuid.NewString()
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.ctx), r.timeout)
		defer cancel()
		defer func() {
			if p := recover(); p != nil {
				r.log.Error("Job panicked", "job", name, "job_id", jobID, "panic", p, "stack", string(debug.Stack()))
			}
		}()

		start := time.Now()
		r.log.Debug("Job started", "job", name, "job_id", jobID)
		job(ctx)
		r.log.Debug("Job finished", "job", name, "job_id", jobID, "duration", time.Since(start))
	}()

	return jobID
}

func (r *JobRunner) Wait() {
	r.wg.Wait()
}
