package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// ErrStop ends the job loop when returned from a job func.
var ErrStop = errors.New("job stopped")

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

type Service struct {
	jobs   []job
	wg     *sync.WaitGroup
	cancel context.CancelFunc
	done   chan struct{}
}

func NewService() *Service {
	return &Service{
		wg:     &sync.WaitGroup{},
		cancel: func() {},
		done:   make(chan struct{}),
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled {
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

// Start runs every registered job immediately and then on its interval.
// The returned Service is the handle used to stop them.
func (s *Service) Start(ctx context.Context) *Service {
	ctx, s.cancel = context.WithCancel(ctx)

	for _, v := range s.jobs {
		s.wg.Add(1)

		go s.startJob(ctx, v)
	}

	go func() {
		s.wg.Wait()
		close(s.done)
	}()

	return s
}

func (s *Service) startJob(ctx context.Context, job job) {
	defer s.wg.Done()

	l := slog.Default().With("job", job.name)

	ticker := time.NewTicker(job.interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")

		err := s.withRecover(ctx, l, job)

		switch {
		case errors.Is(err, ErrStop):
			l.Debug("job finished")
			return
		case err != nil:
			l.Error("job failed", "error", err)
		default:
			l.Debug("job done")
		}

		select {
		case <-ctx.Done():
			l.Debug("context done")
			return

		case <-ticker.C:
		}
	}
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.Error("job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("job panic: %v", r)
		}
	}()

	return j.fn(ctx)
}

// Cancel signals every job to stop without waiting for them.
func (s *Service) Cancel() {
	s.cancel()
}

// Done is closed once every started job has returned.
func (s *Service) Done() <-chan struct{} {
	return s.done
}

func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}
