package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthSnapshot is the last sample of the bot process.
type HealthSnapshot struct {
	PID           int32     `json:"pid"`
	Uptime        string    `json:"uptime"`
	Goroutines    int       `json:"goroutines"`
	CPUPercent    float64   `json:"cpu_percent"`
	MemoryPercent float32   `json:"memory_percent"`
	RSSBytes      uint64    `json:"rss_bytes"`
	SampledAt     time.Time `json:"sampled_at"`
}

// HealthMonitoringWorker samples the CPU and memory usage of the bot process
// at a fixed interval. The health endpoint serves the last sample.
type HealthMonitoringWorker struct {
	mu             sync.RWMutex
	log            *slog.Logger
	metricInterval time.Duration
	startedAt      time.Time
	last           HealthSnapshot
}

func NewHealthMonitoringWorker(log *slog.Logger, metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		metricInterval: metricInterval,
		startedAt:      time.Now(),
		last:           HealthSnapshot{PID: int32(os.Getpid())},
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	w.sample(p)

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health sampling")
			return nil
		case <-ticker.C:
			w.sample(p)
		}
	}
}

func (w *HealthMonitoringWorker) sample(p *process.Process) {
	snapshot := HealthSnapshot{PID: p.Pid, Goroutines: runtime.NumGoroutine(), SampledAt: time.Now().UTC()}

	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Debug("Error while finding process cpu usage", "err", err)
	}
	snapshot.CPUPercent = cpu

	ram, err := p.MemoryPercent()
	if err != nil {
		w.log.Debug("Error while finding process ram usage", "err", err)
	}
	snapshot.MemoryPercent = ram

	if info, err := p.MemoryInfo(); err == nil && info != nil {
		snapshot.RSSBytes = info.RSS
	}

	w.mu.Lock()
	w.last = snapshot
	w.mu.Unlock()
}

// Snapshot returns the last sample with a fresh uptime and goroutine count.
func (w *HealthMonitoringWorker) Snapshot() HealthSnapshot {
	w.mu.RLock()
	snapshot := w.last
	w.mu.RUnlock()
	snapshot.Uptime = time.Since(w.startedAt).Round(time.Second).String()
	snapshot.Goroutines = runtime.NumGoroutine()
	return snapshot
}
