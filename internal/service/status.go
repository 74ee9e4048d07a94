package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/pkg/job"
)

type PollerConfig struct {
	Interval     time.Duration
	CycleTimeout time.Duration
}

// StatusPoller resolves the status of a payment by its reference id.
type StatusPoller struct {
	page     PaymentPage
	producer Producer
	cfg      PollerConfig
}

func NewStatusPoller(page PaymentPage, producer Producer, cfg PollerConfig) *StatusPoller {
	return &StatusPoller{
		page:     page,
		producer: producer,
		cfg:      cfg,
	}
}

// Resolve runs one poll cycle. The transaction, the merchant and the catalog are
// fetched concurrently and the cycle fails unless all three succeed.
func (p *StatusPoller) Resolve(ctx context.Context, merchant, referenceID string) (entity.StatusResolution, error) {
	if referenceID == "" {
		return entity.StatusResolution{}, fmt.Errorf("%w: reference id is required", entity.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.CycleTimeout)
	defer cancel()

	var (
		rec     entity.PaymentRecord
		m       entity.Merchant
		catalog entity.Catalog
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		rec, err = p.page.VerifyPayment(gCtx, merchant, referenceID)
		if err != nil {
			return fmt.Errorf("verify payment: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		m, err = p.page.MerchantPage(gCtx, merchant)
		if err != nil {
			return fmt.Errorf("get merchant: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		catalog, err = p.page.PaymentMethods(gCtx, merchant)
		if err != nil {
			return fmt.Errorf("get payment methods: %w", err)
		}

		return nil
	})

	err := g.Wait()
	if err != nil {
		return entity.StatusResolution{}, fmt.Errorf("%w: reference %q: %w", entity.ErrPollCycle, referenceID, err)
	}

	ref := firstNonEmpty(rec.ReferenceID, referenceID)

	at := rec.CreatedAt
	if rec.PaidAt != nil {
		at = *rec.PaidAt
	}

	method := entity.MethodCatalogEntry{
		MethodCode:   rec.Codes.MethodCode,
		ProviderCode: rec.Codes.ProviderCode,
		DisplayName:  catalog.MethodName(rec.Codes),
	}

	return entity.StatusResolution{
		Status:  rec.Status,
		View:    entity.StatusView(rec.Status),
		Summary: entity.NewPaymentSummary(entity.ComputeTotal(rec.Amount, rec.Fees), method, ref, at, m.Name),
		Record:  rec,
	}, nil
}

// StatusUpdate is the outcome of one scheduled cycle. Err is set, and wraps
// entity.ErrPollCycle, when the cycle failed and the next one will retry.
type StatusUpdate struct {
	Resolution entity.StatusResolution
	Err        error
}

// Watch polls until a terminal status is seen or the handle is stopped.
type Watch struct {
	jobs     *job.Service
	onUpdate func(StatusUpdate)

	mu      sync.Mutex
	stopped bool
}

// Watch starts polling immediately and then on every interval. onUpdate is called
// from the polling goroutine and must not call Stop.
func (p *StatusPoller) Watch(ctx context.Context, merchant, referenceID string, onUpdate func(StatusUpdate)) *Watch {
	w := &Watch{onUpdate: onUpdate}

	w.jobs = job.NewService().
		RegisterJob("poll status "+referenceID, p.cfg.Interval, func(ctx context.Context) error {
			return p.cycle(ctx, w, merchant, referenceID)
		}).
		Start(ctx)

	return w
}

func (p *StatusPoller) cycle(ctx context.Context, w *Watch, merchant, referenceID string) error {
	res, err := p.Resolve(ctx, merchant, referenceID)

	// Results of a cancelled cycle are stale.
	if ctx.Err() != nil {
		return job.ErrStop
	}

	if err != nil {
		slog.WarnContext(ctx, "status poll cycle failed", "reference_id", referenceID, "error", err)

		if !w.emit(ctx, StatusUpdate{Err: err}) {
			return job.ErrStop
		}

		return nil
	}

	if !w.emit(ctx, StatusUpdate{Resolution: res}) {
		return job.ErrStop
	}

	if !res.Status.IsTerminal() {
		return nil
	}

	slog.InfoContext(ctx, "payment reached terminal status", "reference_id", referenceID, "status", res.Status)

	p.producer.SendPaymentResolved(context.WithoutCancel(ctx), merchant, res.Summary.ReferenceNo, res.Status, res.Summary.TotalAmount)

	return job.ErrStop
}

func (w *Watch) emit(ctx context.Context, u StatusUpdate) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped || ctx.Err() != nil {
		return false
	}

	w.onUpdate(u)

	return true
}

// Stop cancels in-flight fetches. No update is delivered after Stop returns.
func (w *Watch) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()

	w.jobs.Cancel()
}

// Done is closed when polling has ended, either by Stop or after a terminal status.
func (w *Watch) Done() <-chan struct{} {
	return w.jobs.Done()
}

func (w *Watch) Wait() {
	w.jobs.Wait()
}
