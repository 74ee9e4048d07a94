package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypePayment      TransactionType = "PAYMENT"
	TransactionTypeFundTransfer TransactionType = "FUND_TRANSFER"
)

// Transaction is a merchant dashboard ledger row.
type Transaction struct {
	TransactionID     string
	ReferenceID       string
	InstapayReference string
	MerchantID        string
	Type              TransactionType
	Status            TransactionStatus
	Amount            decimal.Decimal
	Fees              decimal.Decimal
	Error             string
	CreatedAt         time.Time
	PaidAt            *time.Time
}

type TransactionFilter struct {
	Status TransactionStatus
	Type   TransactionType
	Date   string // YYYY-MM-DD, empty means today for the backend query.
	Page   int    // 1-based.
	Limit  int
}

// FilterTransactions keeps payments and fund transfers that match the filter.
// Status comparison ignores case the way the dashboard does.
func FilterTransactions(txs []Transaction, f TransactionFilter) []Transaction {
	res := make([]Transaction, 0, len(txs))

	for _, tx := range txs {
		if tx.Type != TransactionTypePayment && tx.Type != TransactionTypeFundTransfer {
			continue
		}

		if f.Status != "" && !strings.EqualFold(string(tx.Status), string(f.Status)) {
			continue
		}

		if f.Type != "" && tx.Type != f.Type {
			continue
		}

		if f.Date != "" && tx.CreatedAt.Format(time.DateOnly) != f.Date {
			continue
		}

		res = append(res, tx)
	}

	return res
}

type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Paginate slices one 1-based page out of items. There is always at least one page.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}

	totalPages := max(1, (len(items)+size-1)/size)
	page = min(max(page, 1), totalPages)

	start := min((page-1)*size, len(items))
	end := min(start+size, len(items))

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		TotalItems: len(items),
		TotalPages: totalPages,
	}
}

type WithdrawalService string

const (
	WithdrawalServiceInstapay WithdrawalService = "instapay"
	WithdrawalServicePesonet  WithdrawalService = "pesonet"
)

func (w WithdrawalService) Validate() error {
	switch w {
	case WithdrawalServiceInstapay, WithdrawalServicePesonet:
		return nil
	default:
		return fmt.Errorf("%w: unknown withdrawal service %q", ErrInvalidArgument, w)
	}
}

var (
	withdrawalBlock    = decimal.NewFromInt(50_000)
	withdrawalBlockFee = decimal.NewFromInt(5)
)

// WithdrawalTransfers is the number of transfers needed: one per started 50,000 block.
func WithdrawalTransfers(amount decimal.Decimal) int64 {
	if !amount.IsPositive() {
		return 0
	}

	return amount.Div(withdrawalBlock).Ceil().IntPart()
}

// WithdrawalFee is 5 per transfer; PESONet transfers are free.
func WithdrawalFee(amount decimal.Decimal, service WithdrawalService) decimal.Decimal {
	if service == WithdrawalServicePesonet {
		return decimal.Zero
	}

	return withdrawalBlockFee.Mul(decimal.NewFromInt(WithdrawalTransfers(amount)))
}

type WithdrawalRequest struct {
	AccountID int64
	Amount    decimal.Decimal
	Service   WithdrawalService
}

type WithdrawalQuote struct {
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	Transfers int64
	Total     decimal.Decimal
}

func NewWithdrawalQuote(amount decimal.Decimal, service WithdrawalService) WithdrawalQuote {
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	fee := WithdrawalFee(amount, service)

	return WithdrawalQuote{
		Amount:    amount.Round(moneyPlaces),
		Fee:       fee,
		Transfers: WithdrawalTransfers(amount),
		Total:     amount.Add(fee).Round(moneyPlaces),
	}
}

type WithdrawalResult struct {
	ID        string
	Status    string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

type DepositoryAccount struct {
	ID            int64
	BankCode      string
	AccountName   string
	AccountNumber string
	MerchantID    string
}

// SuccessRate is a dashboard summary for one transaction family over a date range.
type SuccessRate struct {
	Count     int
	Success   int
	Failed    int
	Pending   int
	Closed    int
	Total     decimal.Decimal
	Balance   decimal.Decimal
	TrxPerMin decimal.Decimal
}

// Rate is the share of successful transactions in percent, rounded to cents.
func (r SuccessRate) Rate() decimal.Decimal {
	if r.Count == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(r.Success)).
		Mul(oneHundred).
		Div(decimal.NewFromInt(int64(r.Count))).
		Round(moneyPlaces)
}

type Overview struct {
	Payments      SuccessRate
	FundTransfers SuccessRate
}

type JobStatus string

const (
	JobStatusQueued JobStatus = "queued"
	JobStatusReady  JobStatus = "ready"
	JobStatusError  JobStatus = "error"
)

// DownloadJob is a saved page of transactions. Jobs are queued on creation and
// become ready once their workbook is built, or error if it cannot be.
type DownloadJob struct {
	ID           uuid.UUID
	Owner        string
	Name         string
	Status       JobStatus
	Transactions []Transaction
	CreatedAt    time.Time
}

// DownloadFile is the built workbook of a download job.
type DownloadFile struct {
	Name    string
	Status  JobStatus
	Content []byte
}
