package bootstrap

import (
	"log/slog"

	"github.com/osse101/AlbionStats_Go/internal/config"
	"github.com/osse101/AlbionStats_Go/internal/scheduler"
	"github.com/osse101/AlbionStats_Go/internal/server"
	"github.com/osse101/AlbionStats_Go/internal/worker"
)

// BackgroundJobs owns the worker pool and scheduler of the server process
type BackgroundJobs struct {
	pool      *worker.Pool
	scheduler *scheduler.Scheduler
}

// StartBackgroundJobs starts the periodic build audit. It returns nil when
// cfg.AuditInterval is zero.
func StartBackgroundJobs(cfg *config.Config, services server.Services) *BackgroundJobs {
	if cfg.AuditInterval <= 0 {
		slog.Info(LogMsgBuildAuditDisabled)
		return nil
	}

	pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.AuditInterval, worker.NewBuildAuditJob(services.Builds))
	slog.Info(LogMsgBuildAuditScheduled, "interval", cfg.AuditInterval)

	return &BackgroundJobs{pool: pool, scheduler: sched}
}

// Stop stops scheduling and then waits for the workers
func (j *BackgroundJobs) Stop() {
	if j == nil {
		return
	}
	j.scheduler.Stop()
	j.pool.Stop()
}
