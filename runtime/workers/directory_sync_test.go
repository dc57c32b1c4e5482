package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingSyncer struct {
	calls atomic.Int32
	err   error
}

func (s *countingSyncer) Sync(ctx context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestDirectorySyncWorker_Syncs_On_Every_Tick(t *testing.T) {
	req := require.New(t)
	syncer := &countingSyncer{err: fmt.Errorf("slack is down")}
	worker := NewDirectorySyncWorker(slog.Default(), syncer, 10*time.Millisecond, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// When the worker runs until the context expires, failures included
	err := worker.Run(ctx)

	// Then it returned cleanly after several rounds
	req.NoError(err)
	req.GreaterOrEqual(syncer.calls.Load(), int32(2))
}
