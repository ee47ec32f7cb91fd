package bootstrap

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TierPlan_Go/internal/compensation"
	"github.com/osse101/TierPlan_Go/internal/event"
	"github.com/osse101/TierPlan_Go/internal/notice"
	"github.com/osse101/TierPlan_Go/internal/plan"
	"github.com/osse101/TierPlan_Go/internal/scheduler"
	"github.com/osse101/TierPlan_Go/internal/server"
	"github.com/osse101/TierPlan_Go/internal/sse"
	"github.com/osse101/TierPlan_Go/internal/worker"
)

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Process(ctx context.Context) error {
	j.runs.Add(1)
	return nil
}

func TestGracefulShutdown_StopsMonitor(t *testing.T) {
	pool := worker.NewPool(1, 4)
	pool.Start()
	sched := scheduler.New(pool)
	job := &countingJob{}
	sched.Schedule(5*time.Millisecond, job)

	hub := sse.NewHub()
	hub.Start()

	require.Eventually(t, func() bool { return job.runs.Load() > 0 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	GracefulShutdown(ctx, ShutdownComponents{Scheduler: sched, WorkerPool: pool, SSEHub: hub})

	after := job.runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, job.runs.Load())
	assert.False(t, pool.Enqueue(job))
}

func TestGracefulShutdown_WithOpenEventStream(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	svc := plan.NewService(compensation.DefaultConfig(), notice.NewBoard(), event.NewMemoryBus(), plan.Options{})
	srv := server.NewServer(server.Options{RateLimitRPS: 1000, RateLimitBurst: 1000}, svc, hub)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	served := make(chan error, 1)
	go func() { served <- srv.Serve(l) }()

	resp, err := http.Get("http://" + l.Addr().String() + "/api/v1/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// wait until the stream is live
	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: connected") {
			break
		}
	}
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	GracefulShutdown(ctx, ShutdownComponents{Server: srv, SSEHub: hub})

	assert.Less(t, time.Since(start), time.Second)
	assert.NoError(t, ctx.Err(), "shutdown ran into its deadline")
	assert.True(t, errors.Is(<-served, http.ErrServerClosed))

	// the stream ends instead of being cut off
	_, err = io.ReadAll(reader)
	assert.NoError(t, err)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestStopWithDeadline_TimesOut(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	release := make(chan struct{})
	defer close(release)

	start := time.Now()
	stopWithDeadline(ctx, "stuck", func() { <-release })
	assert.Less(t, time.Since(start), time.Second)
}
