package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/checkout/pkg/job"
)

func TestService_RunsUntilStopped(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	s := job.NewService().
		RegisterJob("count", time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		Start(context.Background())

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	s.Stop()

	stopped := calls.Load()

	time.Sleep(10 * time.Millisecond)
	require.Equal(t, stopped, calls.Load())

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("done channel was not closed")
	}
}

func TestService_ErrStopEndsJob(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	s := job.NewService().
		RegisterJob("finite", time.Millisecond, func(context.Context) error {
			if calls.Add(1) == 2 {
				return job.ErrStop
			}

			return errors.New("transient")
		}).
		Start(context.Background())

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}

	require.Equal(t, int32(2), calls.Load())
}

func TestService_RecoversPanic(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	s := job.NewService().
		RegisterJob("panics", time.Millisecond, func(context.Context) error {
			if calls.Add(1) == 1 {
				panic("boom")
			}

			return job.ErrStop
		}).
		Start(context.Background())

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("job did not recover")
	}

	require.Equal(t, int32(2), calls.Load())
}

func TestService_DisabledJobIsSkipped(t *testing.T) {
	t.Parallel()

	s := job.NewService().
		TryRegisterJob(false, "off", time.Millisecond, func(context.Context) error {
			t.Error("disabled job must not run")
			return nil
		}).
		Start(context.Background())

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("service without jobs must be done immediately")
	}
}
