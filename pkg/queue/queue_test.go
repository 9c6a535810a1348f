package queue_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bizdesk/pkg/queue"
)

// Handled counts are package level because the worker rebuilds jobs from
// JSON through the registered factory, so instance fields do not survive
// the round trip.
var (
	echoCalls    atomic.Int32
	failAttempts atomic.Int32
)

type echoJob struct {
	Val string `json:"val"`
}

func (j *echoJob) Handle() error {
	echoCalls.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	failAttempts.Add(1)
	return errors.New("always fails")
}

func init() {
	queue.Register("*queue_test.echoJob", func() queue.Job { return &echoJob{} })
	queue.Register("*queue_test.failJob", func() queue.Job { return &failJob{} })
	queue.StartWorkers(context.Background(), 2)
}

func TestDispatchAndProcess(t *testing.T) {
	before := echoCalls.Load()

	require.NoError(t, queue.Dispatch(&echoJob{Val: "hello"}))

	assert.Eventually(t, func() bool {
		return echoCalls.Load() > before
	}, 2*time.Second, 20*time.Millisecond, "job never handled")
}

func TestFailedJobRetry(t *testing.T) {
	queue.SetMaxRetry(1)
	defer queue.SetMaxRetry(3)

	before := len(queue.FailedJobs())
	require.NoError(t, queue.Dispatch(&failJob{}))

	assert.Eventually(t, func() bool {
		return len(queue.FailedJobs()) > before
	}, 3*time.Second, 50*time.Millisecond, "failure never persisted")
	assert.Positive(t, failAttempts.Load())
}

func TestDispatchConcurrent(t *testing.T) {
	before := echoCalls.Load()

	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		go func() {
			defer wg.Done()
			queue.Dispatch(&echoJob{Val: "c"}) //nolint:errcheck
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool {
		return echoCalls.Load() >= before+20
	}, 3*time.Second, 20*time.Millisecond, "not all jobs handled")
}
