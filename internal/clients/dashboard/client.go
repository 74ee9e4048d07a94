package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/pkg/config"
	"github.com/samandr77/microservices/checkout/pkg/transport"
)

// Client is the merchant dashboard backend. The bearer token is taken from the
// request context and forwarded as is.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.Dashboard) *Client {
	return &Client{
		baseURL: cfg.APIURL,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var data LoginResponse

	err := c.do(ctx, http.MethodPost, "/auth/login", LoginRequest{Username: username, Password: password}, &data)
	if err != nil {
		return "", err
	}

	if data.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", entity.ErrUnauthenticated)
	}

	return data.AccessToken, nil
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
	Password    string `json:"password"`
}

func (c *Client) ChangePassword(ctx context.Context, password, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/change-pass", ChangePasswordRequest{
		NewPassword: newPassword,
		Password:    password,
	}, nil)
}

type SuccessRateResponse struct {
	Count     int             `json:"COUNT"`
	Success   int             `json:"SUCCESS"`
	Failed    int             `json:"FAILED"`
	Pending   int             `json:"PENDING"`
	Closed    int             `json:"CLOSED"`
	Total     decimal.Decimal `json:"TOTAL"`
	Balance   decimal.Decimal `json:"BALANCE"`
	TrxPerMin decimal.Decimal `json:"TRX_PER_MIN"`
}

func (r SuccessRateResponse) toEntity() entity.SuccessRate {
	return entity.SuccessRate{
		Count:     r.Count,
		Success:   r.Success,
		Failed:    r.Failed,
		Pending:   r.Pending,
		Closed:    r.Closed,
		Total:     r.Total,
		Balance:   r.Balance,
		TrxPerMin: r.TrxPerMin,
	}
}

func (c *Client) PaymentSummary(ctx context.Context, start, end time.Time) (entity.SuccessRate, error) {
	var data SuccessRateResponse

	err := c.do(ctx, http.MethodGet, "/payment?"+dateRange(start, end).Encode(), nil, &data)
	if err != nil {
		return entity.SuccessRate{}, err
	}

	return data.toEntity(), nil
}

func (c *Client) FundTransferSummary(ctx context.Context, start, end time.Time) (entity.SuccessRate, error) {
	var data SuccessRateResponse

	err := c.do(ctx, http.MethodGet, "/fund-transfer?"+dateRange(start, end).Encode(), nil, &data)
	if err != nil {
		return entity.SuccessRate{}, err
	}

	return data.toEntity(), nil
}

type DepositoryAccountResponse struct {
	ID            int64  `json:"id"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	MerchantID    string `json:"merchant_id"`
}

func (c *Client) DepositoryAccounts(ctx context.Context) ([]entity.DepositoryAccount, error) {
	var data []DepositoryAccountResponse

	err := c.do(ctx, http.MethodGet, "/dashboard/account/wallet/depository-accounts", nil, &data)
	if err != nil {
		return nil, err
	}

	res := make([]entity.DepositoryAccount, 0, len(data))

	for _, v := range data {
		res = append(res, entity.DepositoryAccount{
			ID:            v.ID,
			BankCode:      v.BankCode,
			AccountName:   v.AccountName,
			AccountNumber: v.AccountNumber,
			MerchantID:    v.MerchantID,
		})
	}

	return res, nil
}

type TransactionResponse struct {
	TransactionID     string          `json:"transaction_id"`
	ReferenceID       string          `json:"reference_id"`
	InstapayReference string          `json:"instapay_reference"`
	MerchantID        string          `json:"merhant_id"`
	Type              string          `json:"type"`
	Status            string          `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	Fees              decimal.Decimal `json:"fees"`
	Error             string          `json:"error"`
	CreatedAt         time.Time       `json:"created_at"`
	PaidAt            *time.Time      `json:"paid_at"`
}

type TransactionsPage struct {
	Items []TransactionResponse `json:"items"`
	Total *int                  `json:"total"`
}

// UnmarshalJSON accepts both {items, total} and a bare array.
func (p *TransactionsPage) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &p.Items)
	}

	type page TransactionsPage

	return json.Unmarshal(b, (*page)(p))
}

// Transactions returns one backend page (0-based on the wire) and the total item count.
func (c *Client) Transactions(ctx context.Context, status entity.TransactionStatus, day time.Time, page, limit int) ([]entity.Transaction, int, error) {
	q := dateRange(day, day)
	q.Set("status", string(status))
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var data TransactionsPage

	err := c.do(ctx, http.MethodGet, "/dashboard/transactions?"+q.Encode(), nil, &data)
	if err != nil {
		return nil, 0, err
	}

	res := make([]entity.Transaction, 0, len(data.Items))

	for _, v := range data.Items {
		res = append(res, entity.Transaction{
			TransactionID:     v.TransactionID,
			ReferenceID:       v.ReferenceID,
			InstapayReference: v.InstapayReference,
			MerchantID:        v.MerchantID,
			Type:              entity.TransactionType(v.Type),
			Status:            entity.TransactionStatus(v.Status),
			Amount:            v.Amount,
			Fees:              v.Fees,
			Error:             v.Error,
			CreatedAt:         v.CreatedAt,
			PaidAt:            v.PaidAt,
		})
	}

	total := len(res)
	if data.Total != nil {
		total = *data.Total
	}

	return res, total, nil
}

type WithdrawalRequest struct {
	AccountID   int64       `json:"account_id"`
	Amount      json.Number `json:"amount"`
	ServiceType string      `json:"service_type"`
}

type WithdrawalResponse struct {
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     *time.Time      `json:"created_at"`
}

func (c *Client) Withdraw(ctx context.Context, r entity.WithdrawalRequest) (entity.WithdrawalResult, error) {
	var data WithdrawalResponse

	err := c.do(ctx, http.MethodPost, "/dashboard/account/wallet/withdrawal", WithdrawalRequest{
		AccountID:   r.AccountID,
		Amount:      json.Number(r.Amount.String()),
		ServiceType: string(r.Service),
	}, &data)
	if err != nil {
		return entity.WithdrawalResult{}, err
	}

	res := entity.WithdrawalResult{
		ID:     data.TransactionID,
		Status: data.Status,
		Amount: data.Amount,
	}

	if data.CreatedAt != nil {
		res.CreatedAt = *data.CreatedAt
	}

	return res, nil
}

type errorResponse struct {
	Detail any `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	jwt := entity.JWTFromCtx(ctx)
	if jwt != "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", entity.ErrUnauthenticated, detail(b))
	case resp.StatusCode == http.StatusNotFound:
		return entity.ErrNotFound
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, b)
	}

	// The backend answers an expired token with 200 and a detail message.
	if d := detail(b); d != "" {
		return fmt.Errorf("%w: %s", entity.ErrUnauthenticated, d)
	}

	if out == nil {
		return nil
	}

	err = json.Unmarshal(b, out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func detail(b []byte) string {
	var e errorResponse

	if json.Unmarshal(b, &e) != nil || e.Detail == nil {
		return ""
	}

	if s, ok := e.Detail.(string); ok {
		return s
	}

	return fmt.Sprint(e.Detail)
}

func dateRange(start, end time.Time) url.Values {
	return url.Values{
		"start": {start.Format(time.DateOnly)},
		"end":   {end.Format(time.DateOnly)},
	}
}
