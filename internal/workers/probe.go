package workers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/aulrahman/storyshare/internal/connectivity"
	"github.com/aulrahman/storyshare/internal/logger"
)

const (
	defaultProbeInterval = 30 * time.Second
	probeTimeout         = 5 * time.Second
)

type probeJob struct {
	client *resty.Client
	sw     *connectivity.Switch
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProbeJob creates a job that flips the connectivity switch based on
// reachability of baseURL. The job is idle until Start is called.
func NewProbeJob(baseURL string, sw *connectivity.Switch, log *logger.Logger) Job {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(probeTimeout)

	return &probeJob{client: client, sw: sw, logger: log}
}

// Start implements Job. It runs one probe synchronously so the switch holds a
// fresh verdict before Start returns, then launches a background goroutine
// that re-probes every interval. If interval is zero or negative it defaults
// to 30 seconds. The goroutine exits when ctx is cancelled or Stop is called.
func (j *probeJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	j.Stop()

	jobCtx, cancel := context.WithCancel(ctx)

	j.mu.Lock()
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.probe(jobCtx)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.probe(jobCtx)
			}
		}
	}()
}

// Stop implements Job. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *probeJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *probeJob) probe(ctx context.Context) {
	resp, err := j.client.R().SetContext(ctx).Head("/")
	online := err == nil && resp.StatusCode() < http.StatusInternalServerError
	if err != nil {
		j.logger.Debug().Err(err).Msg("connectivity probe failed")
	}
	j.sw.SetOnline(online)
}
