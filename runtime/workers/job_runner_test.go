package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJobRunner_Runs_And_Waits(t *testing.T) {
	req := require.New(t)
	runner := NewJobRunner(context.Background(), slog.Default(), time.Second)

	var done atomic.Int32
	for i := 0; i < 10; i++ {
		runner.Go("count", func(ctx context.Context) {
			time.Sleep(5 * time.Millisecond)
			done.Add(1)
		})
	}
	runner.Wait()

	req.Equal(int32(10), done.Load())
}

func TestJobRunner_Returns_Job_ID(t *testing.T) {
	req := require.New(t)
	runner := NewJobRunner(context.Background(), slog.Default(), time.Second)

	first := runner.Go("noop", func(ctx context.Context) {})
	second := runner.Go("noop", func(ctx context.Context) {})
	runner.Wait()

	_, err := uuid.Parse(first)
	req.NoError(err)
	req.NotEqual(first, second)
}

func TestJobRunner_Survives_Panic(t *testing.T) {
	req := require.New(t)
	runner := NewJobRunner(context.Background(), slog.Default(), time.Second)

	runner.Go("boom", func(ctx context.Context) { panic("boom") })
	var ran atomic.Bool
	runner.Go("after", func(ctx context.Context) { ran.Store(true) })
	runner.Wait()

	req.True(ran.Load())
}

func TestJobRunner_Applies_Timeout(t *testing.T) {
	req := require.New(t)
	runner := NewJobRunner(context.Background(), slog.Default(), 20*time.Millisecond)

	var err error
	runner.Go("slow", func(ctx context.Context) {
		<-ctx.Done()
		err = ctx.Err()
	})
	runner.Wait()

	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestJobRunner_Drains_After_Process_Cancel(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	runner := NewJobRunner(ctx, slog.Default(), time.Minute)

	// Given a job in flight when the shutdown signal arrives
	started := make(chan struct{})
	release := make(chan struct{})
	var delivered atomic.Bool
	var jobErr error
	runner.Go("reply", func(ctx context.Context) {
		close(started)
		<-release
		jobErr = ctx.Err()
		if jobErr == nil {
			delivered.Store(true)
		}
	})
	<-started

	// When the process context is cancelled before the job finishes
	cancel()
	close(release)
	runner.Wait()

	// Then the job still ran with a live context and delivered its reply
	req.NoError(jobErr)
	req.True(delivered.Load())
}
