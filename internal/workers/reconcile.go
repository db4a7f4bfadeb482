package workers

import (
	"context"
	"sync"
	"time"

	"github.com/aulrahman/storyshare/internal/connectivity"
	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/internal/service"
)

const defaultReconcileInterval = 5 * time.Minute

type reconcileJob struct {
	stories service.StoryService
	monitor connectivity.Monitor
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	unsub  func()
	wg     sync.WaitGroup
}

// NewReconcileJob creates a job that replays pending stories through
// StoryService.SyncPending. The job is idle until Start is called.
func NewReconcileJob(stories service.StoryService, monitor connectivity.Monitor, log *logger.Logger) Job {
	return &reconcileJob{stories: stories, monitor: monitor, logger: log}
}

// Start implements Job. It stops any previously running job, then launches a
// background goroutine that runs one reconciliation pass on every transition
// from offline to online, plus a periodic pass every interval as a safety net
// for items that failed an earlier replay. If interval is zero or negative it
// defaults to 5 minutes. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *reconcileJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultReconcileInterval
	}

	j.Stop()

	jobCtx, cancel := context.WithCancel(ctx)
	wake := make(chan struct{}, 1)
	unsub := j.monitor.Subscribe(func(online bool) {
		if !online {
			return
		}
		select {
		case wake <- struct{}{}:
		default:
		}
	})

	j.mu.Lock()
	j.cancel = cancel
	j.unsub = unsub
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-wake:
				j.runPass(jobCtx)
			case <-t.C:
				j.runPass(jobCtx)
			}
		}
	}()
}

// Stop implements Job. It detaches the connectivity subscription, cancels the
// background goroutine's context, and blocks until the goroutine has fully
// exited. Safe to call when the job is not running (no-op in that case).
func (j *reconcileJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	unsub := j.unsub
	j.cancel = nil
	j.unsub = nil
	j.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *reconcileJob) runPass(ctx context.Context) {
	report, err := j.stories.SyncPending(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("reconciliation pass skipped")
		return
	}
	if report.Total == 0 {
		return
	}
	j.logger.Info().
		Int("succeeded", report.Succeeded).
		Int("total", report.Total).
		Msg("reconciliation pass finished")
}
