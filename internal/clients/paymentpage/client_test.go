package paymentpage_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/checkout/internal/clients/paymentpage"
	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/pkg/config"
)

func newClient(t *testing.T, h http.Handler) *paymentpage.Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return paymentpage.NewClient(config.PaymentPage{
		BaseURL:           srv.URL,
		MerchantNameURL:   srv.URL + "/merchant-name/",
		PaymentMethodsURL: srv.URL + "/payment-page/payment/methods",
		Timeout:           time.Second,
		RetryAttempts:     2,
	})
}

func TestClient_MerchantName(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /merchant-name/{username}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("username") != "acme" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		_, _ = w.Write([]byte(`{"merchant_name":"Acme Store"}`))
	})

	c := newClient(t, mux)

	name, err := c.MerchantName(context.Background(), "acme")
	require.NoError(t, err)
	require.Equal(t, "Acme Store", name)

	_, err = c.MerchantName(context.Background(), "ghost")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestClient_MerchantPage_ServerErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.MerchantPage(context.Background(), "acme")
	require.Error(t, err)
	require.NotErrorIs(t, err, entity.ErrNotFound)
	require.Equal(t, int32(1), calls.Load())
}

func TestClient_PaymentMethods(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payment-page/payment/methods", r.URL.Path)
		require.Equal(t, "acme", r.URL.Query().Get("username"))
		require.Equal(t, "acme", r.Header.Get("username"))

		_, _ = w.Write([]byte(`{
			"qr": [{"method_code":"QR","provider_code":"qrph","name":"QR Ph","status":"on"}],
			"crypto": [{"method_code":"CRYPTO","provider_code":"btc","name":"Bitcoin","status":"on"}],
			"bank_transfer": [
				{"method_code":"BANK","provider_code":"bdo","name":"BDO","status":"off"},
				{"method_code":"BANK","provider_code":"bpi","name":"BPI","status":"on","fee_value":"2.5","fee_type":"percent"}
			],
			"card": [{"method_code":"CARD","provider_code":"visa","name":"Visa","status":"on","fee_value":15,"fee_type":"fixed"}]
		}`))
	}))

	catalog, err := c.PaymentMethods(context.Background(), "acme")
	require.NoError(t, err)

	categories := make([]entity.Category, 0, len(catalog.Groups))
	for _, g := range catalog.Groups {
		categories = append(categories, g.Category)
	}

	require.Equal(t, []entity.Category{
		entity.CategoryCard,
		entity.CategoryBankTransfer,
		entity.CategoryQR,
		"crypto",
	}, categories)

	bank := catalog.Entries(entity.CategoryBankTransfer)
	require.Len(t, bank, 2)
	require.False(t, bank[0].Enabled())
	require.True(t, bank[1].Enabled())
	require.Equal(t, "2.5", bank[1].FeeValue.Decimal.String())
	require.Equal(t, entity.FeeTypePercent, bank[1].FeeType)

	card := catalog.Entries(entity.CategoryCard)
	require.True(t, card[0].FeeValue.Valid)
	require.Equal(t, "15", card[0].FeeValue.Decimal.String())
	require.False(t, catalog.Entries(entity.CategoryQR)[0].FeeValue.Valid)
}

func TestClient_CreatePayment(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payment-page/payment", r.URL.Path)
		require.Equal(t, "acme", r.Header.Get("username"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"amount": 500,
			"method_code": "BANK",
			"provider_code": "bpi",
			"success_redirect_url": "https://checkout.example.com/acme/status",
			"failed_redirect_url": "https://checkout.example.com/acme/status"
		}`, string(body))

		_, _ = w.Write([]byte(`{
			"transaction_id": "T1",
			"reference_id": "R1",
			"status": "PENDING",
			"fees": {"processing_fee": "10"},
			"redirect_url": "https://provider.example.com/pay/R1",
			"created_at": "2026-03-14T10:00:00Z"
		}`))
	}))

	got, err := c.CreatePayment(context.Background(), "acme", entity.PaymentRequest{
		Amount:             decimal.NewFromInt(500),
		Codes:              entity.ProviderCodes{MethodCode: "BANK", ProviderCode: "bpi"},
		SuccessRedirectURL: "https://checkout.example.com/acme/status",
		FailedRedirectURL:  "https://checkout.example.com/acme/status",
	})
	require.NoError(t, err)

	require.Equal(t, "R1", got.ReferenceID)
	require.Equal(t, entity.TransactionStatusPending, got.Status)
	require.Equal(t, "10", got.Fees.Processing.String())
	require.True(t, got.Fees.System.IsZero(), "missing fee counts as zero")
	require.Equal(t, "https://provider.example.com/pay/R1", got.RedirectURL)
	require.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), got.CreatedAt.UTC())
}

func TestClient_CreatePayment_NotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.CreatePayment(context.Background(), "acme", entity.PaymentRequest{Amount: decimal.NewFromInt(500)})
	require.ErrorContains(t, err, "unexpected status code: 502")
	require.Equal(t, int32(1), calls.Load())
}

func TestClient_VerifyPayment(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payment-page/acme/payment", r.URL.Path)
		require.Equal(t, "R 1", r.URL.Query().Get("transaction_id"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"transaction_id": "T1",
			"reference_id":   "R 1",
			"status":         "SUCCESS",
			"amount":         "500.00",
			"currency":       "PHP",
			"fees":           map[string]any{"processing_fee": "10", "system_fee": "10"},
			"payment_method": map[string]any{"method_code": "BANK", "provider_code": "bpi"},
			"created_at":     "2026-03-14T10:00:00.123456",
			"paid_at":        "2026-03-14T10:05:00Z",
		})
	}))

	got, err := c.VerifyPayment(context.Background(), "acme", "R 1")
	require.NoError(t, err)

	require.Equal(t, entity.TransactionStatusSuccess, got.Status)
	require.Equal(t, "500", got.Amount.String())
	require.Equal(t, entity.ProviderCodes{MethodCode: "BANK", ProviderCode: "bpi"}, got.Codes)
	require.Equal(t, "10", got.Fees.System.String())
	require.False(t, got.CreatedAt.IsZero())
	require.NotNil(t, got.PaidAt)
}
