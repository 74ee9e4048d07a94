package paymentpage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/pkg/config"
	"github.com/samandr77/microservices/checkout/pkg/transport"
)

const (
	retryWaitMin = 200 * time.Millisecond
	retryWaitMax = 2 * time.Second
)

// Client talks to the payment backend. Lookups are retried on transport errors,
// payment creation and verification are sent exactly once.
type Client struct {
	cfg    config.PaymentPage
	lookup *http.Client
	submit *http.Client
}

func NewClient(cfg config.PaymentPage) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)

	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		cfg:    cfg,
		lookup: retryClient.StandardClient(),
		submit: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type MerchantNameResponse struct {
	MerchantName string `json:"merchant_name"`
}

func (c *Client) MerchantName(ctx context.Context, username string) (string, error) {
	reqURL := strings.TrimRight(c.cfg.MerchantNameURL, "/") + "/" + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	var data MerchantNameResponse

	err = do(c.lookup, req, &data)
	if err != nil {
		return "", err
	}

	return data.MerchantName, nil
}

type MerchantPageResponse struct {
	MerchantName string   `json:"merchant_name"`
	LogoURL      string   `json:"logo_url"`
	Links        []string `json:"links"`
}

// MerchantPage returns the display metadata shown on the status page.
func (c *Client) MerchantPage(ctx context.Context, username string) (entity.Merchant, error) {
	reqURL := fmt.Sprintf("%s/payment-page/%s", c.cfg.BaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.Merchant{}, fmt.Errorf("create request: %w", err)
	}

	var data MerchantPageResponse

	err = do(c.lookup, req, &data)
	if err != nil {
		return entity.Merchant{}, err
	}

	return entity.Merchant{
		Username: username,
		Name:     data.MerchantName,
		LogoURL:  data.LogoURL,
		Links:    data.Links,
	}, nil
}

type CatalogItem struct {
	ProviderCode string              `json:"provider_code"`
	MethodCode   string              `json:"method_code"`
	Name         string              `json:"name"`
	ShortName    string              `json:"short_name"`
	MainLogoURL  string              `json:"main_logo_url"`
	Status       string              `json:"status"`
	CountryCode  string              `json:"country_code"`
	FeeValue     decimal.NullDecimal `json:"fee_value"`
	FeeType      string              `json:"fee_type"`
	Category     string              `json:"category"`
}

// PaymentMethods fetches the merchant catalog keyed by category.
func (c *Client) PaymentMethods(ctx context.Context, username string) (entity.Catalog, error) {
	reqURL := c.cfg.PaymentMethodsURL + "?" + url.Values{"username": {username}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.Catalog{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("username", username)

	var data map[string][]CatalogItem

	err = do(c.lookup, req, &data)
	if err != nil {
		return entity.Catalog{}, err
	}

	return toCatalog(data), nil
}

// toCatalog orders categories the way the page shows them, unknown keys last.
func toCatalog(data map[string][]CatalogItem) entity.Catalog {
	keys := make([]string, 0, len(data))

	for _, c := range entity.KnownCategories {
		if _, ok := data[string(c)]; ok {
			keys = append(keys, string(c))
		}
	}

	for _, k := range slices.Sorted(maps.Keys(data)) {
		if !slices.Contains(entity.KnownCategories, entity.Category(k)) {
			keys = append(keys, k)
		}
	}

	catalog := entity.Catalog{Groups: make([]entity.CatalogGroup, 0, len(keys))}

	for _, k := range keys {
		group := entity.CatalogGroup{
			Category: entity.Category(k),
			Entries:  make([]entity.MethodCatalogEntry, 0, len(data[k])),
		}

		for _, item := range data[k] {
			group.Entries = append(group.Entries, entity.MethodCatalogEntry{
				Category:     entity.Category(k),
				MethodCode:   item.MethodCode,
				ProviderCode: item.ProviderCode,
				DisplayName:  item.Name,
				ShortName:    item.ShortName,
				LogoURL:      item.MainLogoURL,
				CountryCode:  item.CountryCode,
				Status:       entity.ParseEntryStatus(item.Status),
				FeeValue:     item.FeeValue,
				FeeType:      entity.FeeType(item.FeeType),
			})
		}

		catalog.Groups = append(catalog.Groups, group)
	}

	return catalog
}

type CreatePaymentRequest struct {
	Amount             json.Number `json:"amount"`
	MethodCode         string      `json:"method_code"`
	ProviderCode       string      `json:"provider_code"`
	SuccessRedirectURL string      `json:"success_redirect_url"`
	FailedRedirectURL  string      `json:"failed_redirect_url"`
}

type FeesResponse struct {
	ProcessingFee decimal.NullDecimal `json:"processing_fee"`
	SystemFee     decimal.NullDecimal `json:"system_fee"`
}

type CreatePaymentResponse struct {
	TransactionID string       `json:"transaction_id"`
	ReferenceID   string       `json:"reference_id"`
	Status        string       `json:"status"`
	Fees          FeesResponse `json:"fees"`
	RedirectURL   *string      `json:"redirect_url"`
	CreatedAt     string       `json:"created_at"`
}

func (c *Client) CreatePayment(ctx context.Context, username string, p entity.PaymentRequest) (entity.PaymentCreation, error) {
	b, err := json.Marshal(CreatePaymentRequest{
		Amount:             json.Number(p.Amount.String()),
		MethodCode:         p.Codes.MethodCode,
		ProviderCode:       p.Codes.ProviderCode,
		SuccessRedirectURL: p.SuccessRedirectURL,
		FailedRedirectURL:  p.FailedRedirectURL,
	})
	if err != nil {
		return entity.PaymentCreation{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/payment-page/payment", bytes.NewReader(b))
	if err != nil {
		return entity.PaymentCreation{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("username", username)

	var data CreatePaymentResponse

	err = do(c.submit, req, &data)
	if err != nil {
		return entity.PaymentCreation{}, err
	}

	res := entity.PaymentCreation{
		TransactionID: data.TransactionID,
		ReferenceID:   data.ReferenceID,
		Status:        entity.TransactionStatus(data.Status),
		Fees:          data.Fees.toEntity(),
		CreatedAt:     parseTime(data.CreatedAt),
	}

	if data.RedirectURL != nil {
		res.RedirectURL = *data.RedirectURL
	}

	return res, nil
}

type PaymentMethodResponse struct {
	MethodCode   string `json:"method_code"`
	ProviderCode string `json:"provider_code"`
}

type VerifyPaymentResponse struct {
	TransactionID string                `json:"transaction_id"`
	ReferenceID   string                `json:"reference_id"`
	Status        string                `json:"status"`
	Type          string                `json:"type"`
	Error         *string               `json:"error"`
	Amount        decimal.Decimal       `json:"amount"`
	Currency      string                `json:"currency"`
	Fees          FeesResponse          `json:"fees"`
	PaymentMethod PaymentMethodResponse `json:"payment_method"`
	CreatedAt     string                `json:"created_at"`
	PaidAt        *string               `json:"paid_at"`
}

// VerifyPayment refreshes the transaction behind a reference id.
func (c *Client) VerifyPayment(ctx context.Context, username, referenceID string) (entity.PaymentRecord, error) {
	reqURL := fmt.Sprintf("%s/payment-page/%s/payment?%s",
		c.cfg.BaseURL, url.PathEscape(username), url.Values{"transaction_id": {referenceID}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return entity.PaymentRecord{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	var data VerifyPaymentResponse

	err = do(c.submit, req, &data)
	if err != nil {
		return entity.PaymentRecord{}, err
	}

	rec := entity.PaymentRecord{
		TransactionID: data.TransactionID,
		ReferenceID:   data.ReferenceID,
		Status:        entity.TransactionStatus(data.Status),
		Amount:        data.Amount,
		Currency:      data.Currency,
		Fees:          data.Fees.toEntity(),
		Codes: entity.ProviderCodes{
			MethodCode:   data.PaymentMethod.MethodCode,
			ProviderCode: data.PaymentMethod.ProviderCode,
		},
		CreatedAt: parseTime(data.CreatedAt),
	}

	if data.PaidAt != nil {
		if t := parseTime(*data.PaidAt); !t.IsZero() {
			rec.PaidAt = &t
		}
	}

	return rec, nil
}

// toEntity treats a missing fee as zero.
func (f FeesResponse) toEntity() entity.Fees {
	return entity.Fees{
		Processing: f.ProcessingFee.Decimal,
		System:     f.SystemFee.Decimal,
	}
}

func do(c *http.Client, req *http.Request, v any) error {
	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusNotFound {
			return entity.ErrNotFound
		}

		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	err = json.Unmarshal(body, v)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	time.DateTime,
}

// parseTime accepts the layouts the backend is known to send and returns zero otherwise.
func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t
		}
	}

	return time.Time{}
}
