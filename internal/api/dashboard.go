package api

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/export"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login signs a merchant into the dashboard
// @Summary Dashboard login
// @Tags dashboard
// @Accept json
// @Produce json
// @Param LoginRequest body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Missing credentials"
// @Failure 401 {object} ErrorResponse "Wrong credentials"
// @Router /dashboard/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := decodeJSON(r, &req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	token, err := h.dashboard.Login(ctx, req.Username, req.Password)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, LoginResponse{AccessToken: token})
}

type ChangePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword
// @Summary Change dashboard password
// @Tags dashboard
// @Accept json
// @Param ChangePasswordRequest body ChangePasswordRequest true "Current and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse "Missing password"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /dashboard/password [post]
// @Security BearerAuth
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChangePasswordRequest

	err := decodeJSON(r, &req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	err = h.dashboard.ChangePassword(ctx, req.Password, req.NewPassword)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Overview
// @Summary Dashboard overview
// @Description Payment and fund transfer success rates of one day
// @Tags dashboard
// @Produce json
// @Param date query string false "Day in YYYY-MM-DD, today by default"
// @Success 200 {object} OverviewResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /dashboard/overview [get]
// @Security BearerAuth
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid date")
		return
	}

	o, err := h.dashboard.Overview(ctx, day)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, OverviewResponse{
		Date:          date,
		Payments:      successRateToAPI(o.Payments),
		FundTransfers: successRateToAPI(o.FundTransfers),
	})
}

// Transactions
// @Summary Dashboard transactions
// @Description Payments and fund transfers of one day, filtered and paged
// @Tags dashboard
// @Produce json
// @Param status query string false "Transaction status"
// @Param type query string false "PAYMENT or FUND_TRANSFER"
// @Param date query string false "Day in YYYY-MM-DD, today by default"
// @Param page query int false "1-based page"
// @Param limit query int false "Page size"
// @Success 200 {object} TransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /dashboard/transactions [get]
// @Security BearerAuth
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.dashboard.Transactions(ctx, parseTransactionFilter(r.URL.Query()))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, TransactionsResponse{
		Items:      transactionsToAPI(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	})
}

func parseTransactionFilter(q url.Values) entity.TransactionFilter {
	const maxLimit = 100

	f := entity.TransactionFilter{
		Status: entity.TransactionStatus(q.Get("status")),
		Type:   entity.TransactionType(q.Get("type")),
		Date:   q.Get("date"),
	}

	// Unparsable numbers fall back to the service defaults.
	f.Page, _ = strconv.Atoi(q.Get("page"))
	f.Limit, _ = strconv.Atoi(q.Get("limit"))

	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	return f
}

// DepositoryAccounts
// @Summary Withdrawal accounts
// @Description Bank accounts the merchant can withdraw to
// @Tags dashboard
// @Produce json
// @Success 200 {array} DepositoryAccountResponse
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /dashboard/withdrawals/accounts [get]
// @Security BearerAuth
func (h *Handler) DepositoryAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accounts, err := h.dashboard.DepositoryAccounts(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	res := make([]DepositoryAccountResponse, 0, len(accounts))

	for _, a := range accounts {
		res = append(res, DepositoryAccountResponse{
			ID:            a.ID,
			BankCode:      a.BankCode,
			AccountName:   a.AccountName,
			AccountNumber: a.AccountNumber,
		})
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

type WithdrawalQuoteRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Service string          `json:"service"`
}

// WithdrawalQuote
// @Summary Withdrawal quote
// @Description Fee and transfer count of a withdrawal
// @Tags dashboard
// @Accept json
// @Produce json
// @Param WithdrawalQuoteRequest body WithdrawalQuoteRequest true "Amount and service"
// @Success 200 {object} WithdrawalQuoteResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or service"
// @Router /dashboard/withdrawals/quote [post]
// @Security BearerAuth
func (h *Handler) WithdrawalQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req WithdrawalQuoteRequest

	err := decodeJSON(r, &req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	q, err := h.dashboard.WithdrawalQuote(req.Amount, entity.WithdrawalService(req.Service))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, WithdrawalQuoteResponse{
		Amount:    q.Amount.StringFixed(2),
		Fee:       q.Fee.StringFixed(2),
		Transfers: q.Transfers,
		Total:     q.Total.StringFixed(2),
	})
}

type WithdrawRequest struct {
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Service   string          `json:"service"`
}

// Withdraw
// @Summary Withdraw
// @Description Requests a withdrawal to a depository account
// @Tags dashboard
// @Accept json
// @Produce json
// @Param WithdrawRequest body WithdrawRequest true "Withdrawal"
// @Success 201 {object} WithdrawalResponse
// @Failure 400 {object} ErrorResponse "Invalid withdrawal"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /dashboard/withdrawals [post]
// @Security BearerAuth
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req WithdrawRequest

	err := decodeJSON(r, &req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	res, err := h.dashboard.Withdraw(ctx, entity.WithdrawalRequest{
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Service:   entity.WithdrawalService(req.Service),
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, WithdrawalResponse{
		ID:        res.ID,
		Status:    res.Status,
		Amount:    res.Amount.StringFixed(2),
		CreatedAt: res.CreatedAt,
	})
}

type EnqueueDownloadRequest struct {
	Status string `json:"status"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

// EnqueueDownload
// @Summary Queue a download
// @Description Queues the selected transactions page for export
// @Tags dashboard
// @Accept json
// @Produce json
// @Param EnqueueDownloadRequest body EnqueueDownloadRequest false "Transactions filter"
// @Success 201 {object} DownloadResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /dashboard/downloads [post]
// @Security BearerAuth
func (h *Handler) EnqueueDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EnqueueDownloadRequest

	err := decodeJSON(r, &req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	j, err := h.dashboard.EnqueueDownload(ctx, entity.TransactionFilter{
		Status: entity.TransactionStatus(req.Status),
		Type:   entity.TransactionType(req.Type),
		Date:   req.Date,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, downloadToAPI(j))
}

// Downloads
// @Summary Download queue
// @Tags dashboard
// @Produce json
// @Success 200 {array} DownloadResponse
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /dashboard/downloads [get]
// @Security BearerAuth
func (h *Handler) Downloads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobs, err := h.dashboard.Downloads(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	res := make([]DownloadResponse, 0, len(jobs))
	for _, j := range jobs {
		res = append(res, downloadToAPI(j))
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// RemoveDownload
// @Summary Remove a download
// @Tags dashboard
// @Param id path string true "Download id"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Download not found"
// @Router /dashboard/downloads/{id} [delete]
// @Security BearerAuth
func (h *Handler) RemoveDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, fmt.Errorf("parse id: %w", err), "Invalid id")
		return
	}

	err = h.dashboard.RemoveDownload(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DownloadFile
// @Summary Download a workbook
// @Description Returns the transactions of a ready download as an .xlsx file
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Download id"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Download not found"
// @Failure 409 {object} ErrorResponse "Download is not ready"
// @Router /dashboard/downloads/{id}/file [get]
// @Security BearerAuth
func (h *Handler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, fmt.Errorf("parse id: %w", err), "Invalid id")
		return
	}

	f, err := h.dashboard.DownloadFile(ctx, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Content)))
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(f.Content)
	if err != nil {
		slog.ErrorContext(ctx, "write download", "id", id, "error", err)
	}
}

// ClearDownloads
// @Summary Clear the download queue
// @Tags dashboard
// @Success 204
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /dashboard/downloads [delete]
// @Security BearerAuth
func (h *Handler) ClearDownloads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.dashboard.ClearDownloads(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearCompletedDownloads
// @Summary Clear finished downloads
// @Description Removes every download that is no longer queued
// @Tags dashboard
// @Success 204
// @Failure 401 {object} ErrorResponse "Session expired"
// @Router /dashboard/downloads/completed [delete]
// @Security BearerAuth
func (h *Handler) ClearCompletedDownloads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.dashboard.ClearCompletedDownloads(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
