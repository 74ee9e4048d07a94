package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Merchant struct {
	Username string
	Name     string
	LogoURL  string
	Links    []string
}

type PaymentRequest struct {
	Amount             decimal.Decimal
	Codes              ProviderCodes
	SuccessRedirectURL string
	FailedRedirectURL  string
}

// PaymentCreation is the backend answer to a payment request.
type PaymentCreation struct {
	TransactionID string
	ReferenceID   string
	Status        TransactionStatus
	Fees          Fees
	RedirectURL   string // Set when the provider needs an off-site confirmation.
	CreatedAt     time.Time
}

// PaymentRecord is the verified transaction returned by the status endpoint.
type PaymentRecord struct {
	TransactionID string
	ReferenceID   string
	Status        TransactionStatus
	Amount        decimal.Decimal
	Currency      string
	Fees          Fees
	Codes         ProviderCodes
	CreatedAt     time.Time
	PaidAt        *time.Time
}

// PaymentSummary travels from checkout to the status screen. It is built once from
// server-confirmed figures and not modified afterwards.
type PaymentSummary struct {
	SubTotal      decimal.Decimal
	ProcessingFee decimal.Decimal
	SystemFee     decimal.Decimal
	TotalAmount   decimal.Decimal
	MethodLabel   string
	MethodID      string
	ReferenceNo   string
	DateTime      time.Time
	MerchantName  string
}

func NewPaymentSummary(b FeeBreakdown, method MethodCatalogEntry, referenceNo string, at time.Time, merchantName string) PaymentSummary {
	return PaymentSummary{
		SubTotal:      b.SubTotal,
		ProcessingFee: b.ProcessingFee,
		SystemFee:     b.SystemFee,
		TotalAmount:   b.TotalAmount,
		MethodLabel:   method.DisplayName,
		MethodID:      method.ID(),
		ReferenceNo:   referenceNo,
		DateTime:      at,
		MerchantName:  merchantName,
	}
}

// CheckoutOutcome is where the page goes after a successful creation call.
type CheckoutOutcome struct {
	View        View
	Summary     PaymentSummary
	RedirectURL string
}

// StatusResolution is one fully resolved poll cycle.
type StatusResolution struct {
	Status  TransactionStatus
	View    View
	Summary PaymentSummary
	Record  PaymentRecord
}

// CheckoutPage is what the checkout page needs on load.
type CheckoutPage struct {
	Merchant         Merchant
	Categories       []CategoryState
	PayableThreshold decimal.Decimal
}

// Quote is the optimistic pre-submission price of a selection.
type Quote struct {
	Breakdown   FeeBreakdown
	Payable     bool
	Codes       ProviderCodes
	MethodLabel string
}
