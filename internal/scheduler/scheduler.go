package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/TierPlan_Go/internal/logger"
	"github.com/osse101/TierPlan_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgTickSkipped  = "Scheduled tick skipped, previous run still queued"
	LogMsgStopped      = "Scheduler stopped"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval, starting one interval
// from now. A tick is dropped rather than queued when the pool is saturated,
// so a slow job never builds a backlog of polls.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	logger.Info(LogMsgJobScheduled, "interval", interval.String())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					logger.Debug(LogMsgTickSkipped)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
		logger.Info(LogMsgStopped)
	})
}
