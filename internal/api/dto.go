package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/service"
)

type Selection struct {
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	SubSelection string          `json:"sub_selection"`
}

func (s Selection) toEntity() entity.CheckoutSelection {
	return entity.CheckoutSelection{
		Amount:       s.Amount,
		Method:       entity.ParseCategory(s.Method),
		SubSelection: s.SubSelection,
	}
}

func selectionToAPI(s entity.CheckoutSelection) Selection {
	return Selection{
		Amount:       s.Amount,
		Method:       s.Method.String(),
		SubSelection: s.SubSelection,
	}
}

type MerchantResponse struct {
	Username string   `json:"username"`
	Name     string   `json:"name"`
	LogoURL  string   `json:"logo_url,omitempty"`
	Links    []string `json:"links,omitempty"`
}

type MethodEntry struct {
	ID           string  `json:"id"`
	MethodCode   string  `json:"method_code"`
	ProviderCode string  `json:"provider_code"`
	DisplayName  string  `json:"display_name"`
	ShortName    string  `json:"short_name,omitempty"`
	LogoURL      string  `json:"logo_url,omitempty"`
	Enabled      bool    `json:"enabled"`
	FeeValue     *string `json:"fee_value,omitempty"`
	FeeType      string  `json:"fee_type,omitempty"`
}

type CategoryResponse struct {
	Category string        `json:"category"`
	Enabled  bool          `json:"enabled"`
	Default  string        `json:"default,omitempty"`
	Entries  []MethodEntry `json:"entries"`
}

type PageResponse struct {
	Merchant         MerchantResponse   `json:"merchant"`
	Categories       []CategoryResponse `json:"categories"`
	PayableThreshold string             `json:"payable_threshold"`
}

func pageToAPI(p entity.CheckoutPage) PageResponse {
	res := PageResponse{
		Merchant:         merchantToAPI(p.Merchant),
		Categories:       make([]CategoryResponse, 0, len(p.Categories)),
		PayableThreshold: p.PayableThreshold.StringFixed(2),
	}

	for _, c := range p.Categories {
		cat := CategoryResponse{
			Category: c.Category.String(),
			Enabled:  c.Enabled,
			Default:  c.Default,
			Entries:  make([]MethodEntry, 0, len(c.Entries)),
		}

		for _, e := range c.Entries {
			entry := MethodEntry{
				ID:           e.ID(),
				MethodCode:   e.MethodCode,
				ProviderCode: e.ProviderCode,
				DisplayName:  e.DisplayName,
				ShortName:    e.ShortName,
				LogoURL:      e.LogoURL,
				Enabled:      e.Enabled(),
				FeeType:      string(e.FeeType),
			}

			if e.FeeValue.Valid {
				v := e.FeeValue.Decimal.String()
				entry.FeeValue = &v
			}

			cat.Entries = append(cat.Entries, entry)
		}

		res.Categories = append(res.Categories, cat)
	}

	return res
}

func merchantToAPI(m entity.Merchant) MerchantResponse {
	return MerchantResponse{
		Username: m.Username,
		Name:     m.Name,
		LogoURL:  m.LogoURL,
		Links:    m.Links,
	}
}

type Breakdown struct {
	SubTotal      string `json:"sub_total"`
	ProcessingFee string `json:"processing_fee"`
	SystemFee     string `json:"system_fee"`
	TotalAmount   string `json:"total_amount"`
	Formatted     string `json:"total_formatted"`
}

func breakdownToAPI(b entity.FeeBreakdown) Breakdown {
	return Breakdown{
		SubTotal:      b.SubTotal.StringFixed(2),
		ProcessingFee: b.ProcessingFee.StringFixed(2),
		SystemFee:     b.SystemFee.StringFixed(2),
		TotalAmount:   b.TotalAmount.StringFixed(2),
		Formatted:     entity.FormatAmount(b.TotalAmount),
	}
}

type QuoteResponse struct {
	Breakdown
	Payable      bool   `json:"payable"`
	MethodCode   string `json:"method_code"`
	ProviderCode string `json:"provider_code"`
	MethodLabel  string `json:"method_label"`
}

func quoteToAPI(q entity.Quote) QuoteResponse {
	return QuoteResponse{
		Breakdown:    breakdownToAPI(q.Breakdown),
		Payable:      q.Payable,
		MethodCode:   q.Codes.MethodCode,
		ProviderCode: q.Codes.ProviderCode,
		MethodLabel:  q.MethodLabel,
	}
}

type Summary struct {
	Breakdown
	MethodLabel  string    `json:"method_label"`
	MethodID     string    `json:"method_id"`
	ReferenceNo  string    `json:"reference_no"`
	DateTime     time.Time `json:"date_time"`
	MerchantName string    `json:"merchant_name"`
}

func summaryToAPI(s entity.PaymentSummary) Summary {
	return Summary{
		Breakdown: breakdownToAPI(entity.FeeBreakdown{
			SubTotal:      s.SubTotal,
			ProcessingFee: s.ProcessingFee,
			SystemFee:     s.SystemFee,
			TotalAmount:   s.TotalAmount,
		}),
		MethodLabel:  s.MethodLabel,
		MethodID:     s.MethodID,
		ReferenceNo:  s.ReferenceNo,
		DateTime:     s.DateTime,
		MerchantName: s.MerchantName,
	}
}

type OutcomeResponse struct {
	View        string  `json:"view"`
	RedirectURL string  `json:"redirect_url,omitempty"`
	Summary     Summary `json:"summary"`
}

func outcomeToAPI(o entity.CheckoutOutcome) OutcomeResponse {
	return OutcomeResponse{
		View:        o.View.String(),
		RedirectURL: o.RedirectURL,
		Summary:     summaryToAPI(o.Summary),
	}
}

type StatusResponse struct {
	Status  string  `json:"status"`
	View    string  `json:"view"`
	Summary Summary `json:"summary"`
}

func statusToAPI(res entity.StatusResolution) StatusResponse {
	return StatusResponse{
		Status:  res.Status.String(),
		View:    res.View.String(),
		Summary: summaryToAPI(res.Summary),
	}
}

func updateEvent(u service.StatusUpdate) (string, any) {
	if u.Err != nil {
		return "error", ErrorResponse{
			Message:     "Payment status is temporarily unavailable",
			Description: u.Err.Error(),
		}
	}

	return "status", statusToAPI(u.Resolution)
}

type SuccessRateResponse struct {
	Count     int    `json:"count"`
	Success   int    `json:"success"`
	Failed    int    `json:"failed"`
	Pending   int    `json:"pending"`
	Closed    int    `json:"closed"`
	Total     string `json:"total"`
	Balance   string `json:"balance"`
	TrxPerMin string `json:"trx_per_min"`
	Rate      string `json:"success_rate"`
}

func successRateToAPI(r entity.SuccessRate) SuccessRateResponse {
	return SuccessRateResponse{
		Count:     r.Count,
		Success:   r.Success,
		Failed:    r.Failed,
		Pending:   r.Pending,
		Closed:    r.Closed,
		Total:     r.Total.StringFixed(2),
		Balance:   r.Balance.StringFixed(2),
		TrxPerMin: r.TrxPerMin.String(),
		Rate:      r.Rate().StringFixed(2),
	}
}

type OverviewResponse struct {
	Date          string              `json:"date"`
	Payments      SuccessRateResponse `json:"payments"`
	FundTransfers SuccessRateResponse `json:"fund_transfers"`
}

type TransactionResponse struct {
	TransactionID     string     `json:"transaction_id"`
	ReferenceID       string     `json:"reference_id"`
	InstapayReference string     `json:"instapay_reference,omitempty"`
	MerchantID        string     `json:"merchant_id,omitempty"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	Amount            string     `json:"amount"`
	Fees              string     `json:"fees"`
	Error             string     `json:"error,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}

type TransactionsResponse struct {
	Items      []TransactionResponse `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalItems int                   `json:"total_items"`
	TotalPages int                   `json:"total_pages"`
}

func transactionsToAPI(txs []entity.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, 0, len(txs))

	for _, tx := range txs {
		res = append(res, TransactionResponse{
			TransactionID:     tx.TransactionID,
			ReferenceID:       tx.ReferenceID,
			InstapayReference: tx.InstapayReference,
			MerchantID:        tx.MerchantID,
			Type:              string(tx.Type),
			Status:            tx.Status.String(),
			Amount:            tx.Amount.StringFixed(2),
			Fees:              tx.Fees.StringFixed(2),
			Error:             tx.Error,
			CreatedAt:         tx.CreatedAt,
			PaidAt:            tx.PaidAt,
		})
	}

	return res
}

type DepositoryAccountResponse struct {
	ID            int64  `json:"id"`
	BankCode      string `json:"bank_code"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

type WithdrawalQuoteResponse struct {
	Amount    string `json:"amount"`
	Fee       string `json:"fee"`
	Transfers int64  `json:"transfers"`
	Total     string `json:"total"`
}

type WithdrawalResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type DownloadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Items     int       `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

func downloadToAPI(j entity.DownloadJob) DownloadResponse {
	return DownloadResponse{
		ID:        j.ID.String(),
		Name:      j.Name,
		Status:    string(j.Status),
		Items:     len(j.Transactions),
		CreatedAt: j.CreatedAt,
	}
}
