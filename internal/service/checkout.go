package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

type CheckoutConfig struct {
	Fees             entity.FeeSchedule
	PayableThreshold decimal.Decimal
	FallbackCard     entity.ProviderCodes
	PublicURL        string
}

// Checkout prices selections and starts payments for a merchant page.
type Checkout struct {
	page PaymentPage
	cfg  CheckoutConfig
	now  func() time.Time
}

func NewCheckout(page PaymentPage, cfg CheckoutConfig) *Checkout {
	return &Checkout{
		page: page,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Page loads the merchant and its catalog. Any lookup failure is reported as not found.
func (s *Checkout) Page(ctx context.Context, merchant string) (entity.CheckoutPage, error) {
	name, catalog, err := s.lookup(ctx, merchant)
	if err != nil {
		return entity.CheckoutPage{}, err
	}

	return entity.CheckoutPage{
		Merchant: entity.Merchant{
			Username: merchant,
			Name:     name,
		},
		Categories:       catalog.Categories(),
		PayableThreshold: s.cfg.PayableThreshold,
	}, nil
}

// Select switches the method of a selection. Categories without an enabled
// provider cannot be selected.
func (s *Checkout) Select(
	ctx context.Context,
	merchant string,
	sel entity.CheckoutSelection,
	method entity.Category,
) (entity.CheckoutSelection, error) {
	catalog, err := s.catalog(ctx, merchant)
	if err != nil {
		return entity.CheckoutSelection{}, err
	}

	if !catalog.CategoryEnabled(method) && !s.cardFallback(catalog, method) {
		return entity.CheckoutSelection{}, fmt.Errorf("%w: %q has no enabled provider", entity.ErrResolution, method)
	}

	return catalog.Select(sel, method), nil
}

func (s *Checkout) Quote(ctx context.Context, merchant string, sel entity.CheckoutSelection) (entity.Quote, error) {
	catalog, err := s.catalog(ctx, merchant)
	if err != nil {
		return entity.Quote{}, err
	}

	entry, err := s.resolve(ctx, catalog, sel)
	if err != nil {
		return entity.Quote{}, err
	}

	amount := sel.Amount.Round(2)

	return entity.Quote{
		Breakdown:   entity.ComputeTotal(amount, s.cfg.Fees.Estimate(amount, entry)),
		Payable:     entity.Payable(amount, s.cfg.PayableThreshold),
		Codes:       entry.Codes(),
		MethodLabel: entry.DisplayName,
	}, nil
}

type CreatePaymentRequest struct {
	Selection          entity.CheckoutSelection
	SuccessRedirectURL string
	FailedRedirectURL  string
}

// CreatePayment submits the payment and builds the summary from the fees the
// backend confirmed. No summary is produced when the request fails.
func (s *Checkout) CreatePayment(ctx context.Context, merchant string, req CreatePaymentRequest) (entity.CheckoutOutcome, error) {
	sel := req.Selection

	// The threshold applies to the amount the backend is charged.
	amount := sel.Amount.Round(2)

	if !entity.Payable(amount, s.cfg.PayableThreshold) {
		return entity.CheckoutOutcome{}, fmt.Errorf("%w: amount %s must exceed %s",
			entity.ErrBelowMinimum, amount, s.cfg.PayableThreshold)
	}

	name, catalog, err := s.lookup(ctx, merchant)
	if err != nil {
		return entity.CheckoutOutcome{}, err
	}

	entry, err := s.resolve(ctx, catalog, sel)
	if err != nil {
		return entity.CheckoutOutcome{}, err
	}

	statusURL := s.statusURL(merchant)

	p := entity.PaymentRequest{
		Amount:             amount,
		Codes:              entry.Codes(),
		SuccessRedirectURL: firstNonEmpty(req.SuccessRedirectURL, statusURL),
		FailedRedirectURL:  firstNonEmpty(req.FailedRedirectURL, statusURL),
	}

	created, err := s.page.CreatePayment(ctx, merchant, p)
	if err != nil {
		return entity.CheckoutOutcome{}, fmt.Errorf("%w: create payment via %s: %w", entity.ErrPaymentRequest, entry.Codes(), err)
	}

	if created.ReferenceID == "" {
		return entity.CheckoutOutcome{}, fmt.Errorf("%w: response has no reference id", entity.ErrPaymentRequest)
	}

	view, ok := entity.CreationView(created.Status)
	if !ok {
		slog.WarnContext(ctx, "unexpected payment creation status",
			"status", created.Status, "reference_id", created.ReferenceID)
	}

	at := created.CreatedAt
	if at.IsZero() {
		at = s.now()
	}

	summary := entity.NewPaymentSummary(
		entity.ComputeTotal(amount, created.Fees),
		entry,
		created.ReferenceID,
		at,
		name,
	)

	slog.InfoContext(ctx, "payment created",
		"reference_id", created.ReferenceID,
		"status", created.Status,
		"method", entry.Codes(),
		"total", summary.TotalAmount.StringFixed(2),
	)

	return entity.CheckoutOutcome{
		View:        view,
		Summary:     summary,
		RedirectURL: created.RedirectURL,
	}, nil
}

func (s *Checkout) lookup(ctx context.Context, merchant string) (string, entity.Catalog, error) {
	var (
		name    string
		catalog entity.Catalog
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		name, err = s.page.MerchantName(gCtx, merchant)
		if err != nil {
			return fmt.Errorf("get merchant name: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		catalog, err = s.page.PaymentMethods(gCtx, merchant)
		if err != nil {
			return fmt.Errorf("get payment methods: %w", err)
		}

		return nil
	})

	err := g.Wait()
	if err != nil {
		return "", entity.Catalog{}, fmt.Errorf("%w: merchant %q: %w", entity.ErrNotFound, merchant, err)
	}

	return name, catalog, nil
}

func (s *Checkout) catalog(ctx context.Context, merchant string) (entity.Catalog, error) {
	catalog, err := s.page.PaymentMethods(ctx, merchant)
	if err != nil {
		return entity.Catalog{}, fmt.Errorf("%w: merchant %q: get payment methods: %w", entity.ErrNotFound, merchant, err)
	}

	return catalog, nil
}

func (s *Checkout) resolve(ctx context.Context, catalog entity.Catalog, sel entity.CheckoutSelection) (entity.MethodCatalogEntry, error) {
	entry, err := catalog.Resolve(sel, s.cfg.FallbackCard)
	if err != nil {
		return entity.MethodCatalogEntry{}, err
	}

	if s.cardFallback(catalog, sel.Method) {
		slog.InfoContext(ctx, "catalog has no card providers, using fallback card codes", "codes", entry.Codes())
	}

	return entry, nil
}

func (s *Checkout) cardFallback(catalog entity.Catalog, method entity.Category) bool {
	return method == entity.CategoryCard && !catalog.HasCategory(entity.CategoryCard) && !s.cfg.FallbackCard.IsZero()
}

func (s *Checkout) statusURL(merchant string) string {
	return strings.TrimRight(s.cfg.PublicURL, "/") + "/" + url.PathEscape(merchant) + "/status"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
