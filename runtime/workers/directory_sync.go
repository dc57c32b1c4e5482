package workers

import (
	"context"
	"log/slog"
	"time"
)

type syncer interface {
	Sync(ctx context.Context) error
}

// DirectorySyncWorker mirrors the chat platform into the directory at a fixed
// interval. A failed round is logged and retried on the next tick.
type DirectorySyncWorker struct {
	log      *slog.Logger
	syncer   syncer
	interval time.Duration
	timeout  time.Duration
}

func NewDirectorySyncWorker(log *slog.Logger, syncer syncer, interval, timeout time.Duration) *DirectorySyncWorker {
	return &DirectorySyncWorker{log: log, syncer: syncer, interval: interval, timeout: timeout}
}

func (w *DirectorySyncWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping directory sync")
			return nil
		case <-ticker.C:
			w.syncOnce(ctx)
		}
	}
}

func (w *DirectorySyncWorker) syncOnce(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.syncer.Sync(syncCtx); err != nil {
		w.log.Warn("Directory sync failed", "error", err)
	}
}
