package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/service"
)

// @title Checkout API
// @version 1.0
// @description Checkout pricing, payment creation and status tracking for merchant payment pages, plus the merchant dashboard.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type CheckoutService interface {
	Page(ctx context.Context, merchant string) (entity.CheckoutPage, error)
	Select(ctx context.Context, merchant string, sel entity.CheckoutSelection, method entity.Category) (entity.CheckoutSelection, error)
	Quote(ctx context.Context, merchant string, sel entity.CheckoutSelection) (entity.Quote, error)
	CreatePayment(ctx context.Context, merchant string, req service.CreatePaymentRequest) (entity.CheckoutOutcome, error)
}

type StatusService interface {
	Resolve(ctx context.Context, merchant, referenceID string) (entity.StatusResolution, error)
	Watch(ctx context.Context, merchant, referenceID string, onUpdate func(service.StatusUpdate)) *service.Watch
}

type DashboardService interface {
	Login(ctx context.Context, username, password string) (string, error)
	ChangePassword(ctx context.Context, password, newPassword string) error
	Overview(ctx context.Context, day time.Time) (entity.Overview, error)
	Transactions(ctx context.Context, f entity.TransactionFilter) (entity.Page[entity.Transaction], error)
	DepositoryAccounts(ctx context.Context) ([]entity.DepositoryAccount, error)
	WithdrawalQuote(amount decimal.Decimal, service entity.WithdrawalService) (entity.WithdrawalQuote, error)
	Withdraw(ctx context.Context, r entity.WithdrawalRequest) (entity.WithdrawalResult, error)
	EnqueueDownload(ctx context.Context, f entity.TransactionFilter) (entity.DownloadJob, error)
	Downloads(ctx context.Context) ([]entity.DownloadJob, error)
	RemoveDownload(ctx context.Context, id uuid.UUID) error
	ClearDownloads(ctx context.Context) error
	ClearCompletedDownloads(ctx context.Context) error
	DownloadFile(ctx context.Context, id uuid.UUID) (entity.DownloadFile, error)
}

type Handler struct {
	checkout  CheckoutService
	status    StatusService
	dashboard DashboardService
}

func NewHandler(checkout CheckoutService, status StatusService, dashboard DashboardService) *Handler {
	return &Handler{
		checkout:  checkout,
		status:    status,
		dashboard: dashboard,
	}
}

// CheckoutPage returns the merchant and its payment methods
// @Summary Checkout page
// @Description Loads the merchant name and the method catalog for the checkout page
// @Tags checkout
// @Produce json
// @Param merchant path string true "Merchant username"
// @Success 200 {object} PageResponse
// @Failure 404 {object} ErrorResponse "Merchant not found"
// @Router /checkout/{merchant} [get]
func (h *Handler) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.checkout.Page(ctx, chi.URLParam(r, "merchant"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSON(ctx, w, http.StatusNotFound, ErrorResponse{
				Message:     "Merchant not found",
				Description: err.Error(),
				Redirect:    "/404",
			})

			return
		}

		sendServiceErr(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusOK, pageToAPI(page))
}

type SelectRequest struct {
	Selection Selection `json:"selection"`
	Method    string    `json:"method"`
}

// Select switches the payment method
// @Summary Select payment method
// @Description Switches the method and resets the provider to the first enabled one
// @Tags checkout
// @Accept json
// @Produce json
// @Param merchant path string true "Merchant username"
// @Param SelectRequest body SelectRequest true "Current selection and new method"
// @Success 200 {object} Selection
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Method has no enabled provider"
// @Router /checkout/{merchant}/selection [post]
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SelectRequest

	err := decodeJSON(r, &req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sel, err := h.checkout.Select(ctx, chi.URLParam(r, "merchant"), req.Selection.toEntity(), entity.ParseCategory(req.Method))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, selectionToAPI(sel))
}

// Quote prices a selection
// @Summary Quote
// @Description Estimates the fees and total of a selection before the payment is created
// @Tags checkout
// @Accept json
// @Produce json
// @Param merchant path string true "Merchant username"
// @Param Selection body Selection true "Selection"
// @Success 200 {object} QuoteResponse
// @Failure 422 {object} ErrorResponse "Selection does not resolve"
// @Router /checkout/{merchant}/quote [post]
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Selection

	err := decodeJSON(r, &req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	q, err := h.checkout.Quote(ctx, chi.URLParam(r, "merchant"), req.toEntity())
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, quoteToAPI(q))
}

type CreatePaymentRequest struct {
	Selection
	SuccessRedirectURL string `json:"success_redirect_url"`
	FailedRedirectURL  string `json:"failed_redirect_url"`
}

// CreatePayment starts a payment
// @Summary Create payment
// @Description Submits the payment and returns the status view with the confirmed summary
// @Tags checkout
// @Accept json
// @Produce json
// @Param merchant path string true "Merchant username"
// @Param CreatePaymentRequest body CreatePaymentRequest true "Payment request"
// @Success 201 {object} OutcomeResponse
// @Failure 422 {object} ErrorResponse "Amount below minimum or method not resolved"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 502 {object} ErrorResponse "Payment backend failed"
// @Router /checkout/{merchant}/payments [post]
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePaymentRequest

	err := decodeJSON(r, &req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	out, err := h.checkout.CreatePayment(ctx, chi.URLParam(r, "merchant"), service.CreatePaymentRequest{
		Selection:          req.Selection.toEntity(),
		SuccessRedirectURL: req.SuccessRedirectURL,
		FailedRedirectURL:  req.FailedRedirectURL,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, outcomeToAPI(out))
}

// Status resolves the payment once
// @Summary Payment status
// @Description Runs one status poll cycle
// @Tags checkout
// @Produce json
// @Param merchant path string true "Merchant username"
// @Param reference_id query string true "Payment reference id"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse "Reference id is missing"
// @Failure 503 {object} ErrorResponse "Poll cycle failed"
// @Router /checkout/{merchant}/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.status.Resolve(ctx, chi.URLParam(r, "merchant"), r.URL.Query().Get("reference_id"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, statusToAPI(res))
}

// StatusStream streams status updates until the payment resolves
// @Summary Payment status stream
// @Description Server-Sent Events: "status" events carry a StatusResponse, "error" events a failed cycle. The stream ends after a terminal status.
// @Tags checkout
// @Produce text/event-stream
// @Param merchant path string true "Merchant username"
// @Param reference_id query string true "Payment reference id"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse "Reference id is missing"
// @Router /checkout/{merchant}/status/stream [get]
func (h *Handler) StatusStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ref := r.URL.Query().Get("reference_id")
	if ref == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, nil, "reference_id is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		SendJSONErr(ctx, w, http.StatusInternalServerError, nil, "Streaming is not supported")
		return
	}

	// The stream outlives the server write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	watch := h.status.Watch(ctx, chi.URLParam(r, "merchant"), ref, func(u service.StatusUpdate) {
		event, data := updateEvent(u)

		err := writeEvent(w, event, data)
		if err != nil {
			return
		}

		flusher.Flush()
	})

	select {
	case <-watch.Done():
	case <-ctx.Done():
	}

	watch.Stop()
	watch.Wait()
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is unavailable")
		return
	}
}
