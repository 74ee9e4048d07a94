package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/mocks"
	"github.com/samandr77/microservices/checkout/internal/service"
)

const testMerchant = "acme"

func testCatalog() entity.Catalog {
	return entity.Catalog{
		Groups: []entity.CatalogGroup{
			{
				Category: entity.CategoryBankTransfer,
				Entries: []entity.MethodCatalogEntry{
					{Category: entity.CategoryBankTransfer, MethodCode: "BANK", ProviderCode: "bdo", DisplayName: "BDO", Status: entity.EntryStatusDisabled},
					{Category: entity.CategoryBankTransfer, MethodCode: "BANK", ProviderCode: "bpi", DisplayName: "BPI", Status: entity.EntryStatusEnabled},
				},
			},
			{
				Category: entity.CategoryEWallet,
				Entries: []entity.MethodCatalogEntry{
					{Category: entity.CategoryEWallet, MethodCode: "WALLET", ProviderCode: "gcash", DisplayName: "GCash", Status: entity.EntryStatusDisabled},
				},
			},
		},
	}
}

func testCheckoutConfig() service.CheckoutConfig {
	return service.CheckoutConfig{
		Fees: entity.FeeSchedule{
			ProcessingFee: decimal.NewFromInt(15),
			SystemFee:     decimal.NewFromInt(5),
		},
		PayableThreshold: decimal.NewFromInt(99),
		FallbackCard:     entity.ProviderCodes{MethodCode: "CARD", ProviderCode: "default"},
		PublicURL:        "https://pay.example.com/",
	}
}

func bankSelection(amount int64) entity.CheckoutSelection {
	return entity.CheckoutSelection{
		Amount:       decimal.NewFromInt(amount),
		Method:       entity.CategoryBankTransfer,
		SubSelection: "bpi",
	}
}

func TestCheckout_CreatePayment(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	createdAt := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	page.EXPECT().MerchantName(gomock.Any(), testMerchant).Return("Acme Store", nil)
	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil)
	page.EXPECT().CreatePayment(gomock.Any(), testMerchant, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p entity.PaymentRequest) (entity.PaymentCreation, error) {
			require.Equal(t, "500.00", p.Amount.StringFixed(2))
			require.Equal(t, entity.ProviderCodes{MethodCode: "BANK", ProviderCode: "bpi"}, p.Codes)
			require.Equal(t, "https://pay.example.com/acme/status", p.SuccessRedirectURL)
			require.Equal(t, "https://pay.example.com/acme/status", p.FailedRedirectURL)

			return entity.PaymentCreation{
				TransactionID: "tx-1",
				ReferenceID:   "REF-1",
				Status:        entity.TransactionStatusSuccess,
				Fees: entity.Fees{
					Processing: decimal.NewFromInt(15),
					System:     decimal.NewFromInt(5),
				},
				CreatedAt: createdAt,
			}, nil
		})

	s := service.NewCheckout(page, testCheckoutConfig())

	out, err := s.CreatePayment(context.Background(), testMerchant, service.CreatePaymentRequest{
		Selection: bankSelection(500),
	})
	require.NoError(t, err)

	require.Equal(t, entity.ViewSuccess, out.View)
	require.Equal(t, "520.00", out.Summary.TotalAmount.StringFixed(2))
	require.Equal(t, "500.00", out.Summary.SubTotal.StringFixed(2))
	require.Equal(t, "BPI", out.Summary.MethodLabel)
	require.Equal(t, "bpi", out.Summary.MethodID)
	require.Equal(t, "REF-1", out.Summary.ReferenceNo)
	require.Equal(t, "Acme Store", out.Summary.MerchantName)
	require.Equal(t, createdAt, out.Summary.DateTime)
}

func TestCheckout_CreatePayment_ServerFeesWin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().MerchantName(gomock.Any(), testMerchant).Return("Acme Store", nil)
	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil)
	page.EXPECT().CreatePayment(gomock.Any(), testMerchant, gomock.Any()).Return(entity.PaymentCreation{
		ReferenceID: "REF-2",
		Status:      entity.TransactionStatusPending,
		Fees:        entity.Fees{Processing: decimal.RequireFromString("12.5")},
		RedirectURL: "https://bank.example.com/confirm",
	}, nil)

	s := service.NewCheckout(page, testCheckoutConfig())

	out, err := s.CreatePayment(context.Background(), testMerchant, service.CreatePaymentRequest{
		Selection:          bankSelection(200),
		SuccessRedirectURL: "https://shop.example.com/ok",
	})
	require.NoError(t, err)

	require.Equal(t, entity.ViewPending, out.View)
	require.Equal(t, "212.50", out.Summary.TotalAmount.StringFixed(2))
	require.Equal(t, "https://bank.example.com/confirm", out.RedirectURL)
	require.False(t, out.Summary.DateTime.IsZero())
}

func TestCheckout_CreatePayment_UnknownStatusFailsClosed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().MerchantName(gomock.Any(), testMerchant).Return("Acme Store", nil)
	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil)
	page.EXPECT().CreatePayment(gomock.Any(), testMerchant, gomock.Any()).Return(entity.PaymentCreation{
		ReferenceID: "REF-3",
		Status:      "PROCESSING",
	}, nil)

	s := service.NewCheckout(page, testCheckoutConfig())

	out, err := s.CreatePayment(context.Background(), testMerchant, service.CreatePaymentRequest{Selection: bankSelection(500)})
	require.NoError(t, err)
	require.Equal(t, entity.ViewFailed, out.View)
}

func TestCheckout_CreatePayment_RequestFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().MerchantName(gomock.Any(), testMerchant).Return("Acme Store", nil)
	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil)
	page.EXPECT().CreatePayment(gomock.Any(), testMerchant, gomock.Any()).
		Return(entity.PaymentCreation{}, errors.New("unexpected status code: 502"))

	s := service.NewCheckout(page, testCheckoutConfig())

	out, err := s.CreatePayment(context.Background(), testMerchant, service.CreatePaymentRequest{Selection: bankSelection(500)})
	require.ErrorIs(t, err, entity.ErrPaymentRequest)
	require.Equal(t, entity.CheckoutOutcome{}, out)
}

func TestCheckout_CreatePayment_EmptyReference(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().MerchantName(gomock.Any(), testMerchant).Return("Acme Store", nil)
	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil)
	page.EXPECT().CreatePayment(gomock.Any(), testMerchant, gomock.Any()).
		Return(entity.PaymentCreation{Status: entity.TransactionStatusSuccess}, nil)

	s := service.NewCheckout(page, testCheckoutConfig())

	_, err := s.CreatePayment(context.Background(), testMerchant, service.CreatePaymentRequest{Selection: bankSelection(500)})
	require.ErrorIs(t, err, entity.ErrPaymentRequest)
}

func TestCheckout_CreatePayment_BelowMinimum(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	s := service.NewCheckout(page, testCheckoutConfig())

	for _, amount := range []string{"0", "50", "99", "99.004"} {
		sel := bankSelection(0)
		sel.Amount = decimal.RequireFromString(amount)

		_, err := s.CreatePayment(context.Background(), testMerchant, service.CreatePaymentRequest{Selection: sel})
		require.ErrorIs(t, err, entity.ErrBelowMinimum, "amount %s", amount)
	}
}

func TestCheckout_Quote_RoundsBeforeThreshold(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil)

	s := service.NewCheckout(page, testCheckoutConfig())

	sel := bankSelection(0)
	sel.Amount = decimal.RequireFromString("99.004")

	q, err := s.Quote(context.Background(), testMerchant, sel)
	require.NoError(t, err)
	require.False(t, q.Payable)
	require.Equal(t, "99.00", q.Breakdown.SubTotal.StringFixed(2))
}

func TestCheckout_CreatePayment_Unresolved(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().MerchantName(gomock.Any(), testMerchant).Return("Acme Store", nil)
	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil)

	s := service.NewCheckout(page, testCheckoutConfig())

	sel := bankSelection(500)
	sel.SubSelection = "bdo"

	_, err := s.CreatePayment(context.Background(), testMerchant, service.CreatePaymentRequest{Selection: sel})
	require.ErrorIs(t, err, entity.ErrResolution)
}

func TestCheckout_CreatePayment_CardFallback(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().MerchantName(gomock.Any(), testMerchant).Return("Acme Store", nil)
	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil)
	page.EXPECT().CreatePayment(gomock.Any(), testMerchant, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p entity.PaymentRequest) (entity.PaymentCreation, error) {
			require.Equal(t, entity.ProviderCodes{MethodCode: "CARD", ProviderCode: "default"}, p.Codes)

			return entity.PaymentCreation{ReferenceID: "REF-4", Status: entity.TransactionStatusPending}, nil
		})

	s := service.NewCheckout(page, testCheckoutConfig())

	sel := entity.CheckoutSelection{Amount: decimal.NewFromInt(150), Method: entity.CategoryCard}

	out, err := s.CreatePayment(context.Background(), testMerchant, service.CreatePaymentRequest{Selection: sel})
	require.NoError(t, err)
	require.Equal(t, "Credit/Debit Card", out.Summary.MethodLabel)
}

func TestCheckout_Page(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().MerchantName(gomock.Any(), testMerchant).Return("Acme Store", nil)
	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil)

	s := service.NewCheckout(page, testCheckoutConfig())

	p, err := s.Page(context.Background(), testMerchant)
	require.NoError(t, err)
	require.Equal(t, "Acme Store", p.Merchant.Name)
	require.Len(t, p.Categories, 2)
	require.Equal(t, "bpi", p.Categories[0].Default)
	require.False(t, p.Categories[1].Enabled)
}

func TestCheckout_Page_UnknownMerchant(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().MerchantName(gomock.Any(), "ghost").Return("", entity.ErrNotFound)
	page.EXPECT().PaymentMethods(gomock.Any(), "ghost").Return(entity.Catalog{}, nil).AnyTimes()

	s := service.NewCheckout(page, testCheckoutConfig())

	_, err := s.Page(context.Background(), "ghost")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCheckout_Select(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil).Times(3)

	s := service.NewCheckout(page, testCheckoutConfig())

	sel := entity.CheckoutSelection{Amount: decimal.NewFromInt(300), Method: entity.CategoryCard}

	got, err := s.Select(context.Background(), testMerchant, sel, entity.CategoryBankTransfer)
	require.NoError(t, err)
	require.Equal(t, "bpi", got.SubSelection)
	require.True(t, sel.Amount.Equal(got.Amount))

	_, err = s.Select(context.Background(), testMerchant, got, entity.CategoryEWallet)
	require.ErrorIs(t, err, entity.ErrResolution)

	got, err = s.Select(context.Background(), testMerchant, got, entity.CategoryCard)
	require.NoError(t, err)
	require.Equal(t, entity.CategoryCard, got.Method)
}

func TestCheckout_Quote(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	page := mocks.NewMockPaymentPage(ctrl)

	page.EXPECT().PaymentMethods(gomock.Any(), testMerchant).Return(testCatalog(), nil).Times(2)

	s := service.NewCheckout(page, testCheckoutConfig())

	q, err := s.Quote(context.Background(), testMerchant, bankSelection(500))
	require.NoError(t, err)
	require.True(t, q.Payable)
	require.Equal(t, "520.00", q.Breakdown.TotalAmount.StringFixed(2))
	require.Equal(t, "BANK/bpi", q.Codes.String())

	q, err = s.Quote(context.Background(), testMerchant, bankSelection(99))
	require.NoError(t, err)
	require.False(t, q.Payable)
}
