package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/AlbionStats_Go/internal/worker"
)

// Enqueuer accepts jobs for execution. *worker.Pool satisfies it.
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler hands jobs to a worker pool at fixed intervals
type Scheduler struct {
	pool Enqueuer
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule enqueues job once immediately and then every interval until Stop.
// A tick that finds the pool queue full is skipped.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.pool.Enqueue(job)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.pool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
