package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

func TestFilterTransactions(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	txs := []entity.Transaction{
		{TransactionID: "1", Type: entity.TransactionTypePayment, Status: entity.TransactionStatusSuccess, CreatedAt: day},
		{TransactionID: "2", Type: entity.TransactionTypePayment, Status: "success", CreatedAt: day},
		{TransactionID: "3", Type: entity.TransactionTypeFundTransfer, Status: entity.TransactionStatusPending, CreatedAt: day},
		{TransactionID: "4", Type: "REFUND", Status: entity.TransactionStatusSuccess, CreatedAt: day},
		{TransactionID: "5", Type: entity.TransactionTypePayment, Status: entity.TransactionStatusSuccess, CreatedAt: day.AddDate(0, 0, 1)},
	}

	ids := func(txs []entity.Transaction) []string {
		res := make([]string, 0, len(txs))
		for _, tx := range txs {
			res = append(res, tx.TransactionID)
		}

		return res
	}

	require.Equal(t, []string{"1", "2", "3", "5"}, ids(entity.FilterTransactions(txs, entity.TransactionFilter{})))
	require.Equal(t, []string{"1", "2", "5"}, ids(entity.FilterTransactions(txs, entity.TransactionFilter{
		Status: entity.TransactionStatusSuccess,
	})))
	require.Equal(t, []string{"3"}, ids(entity.FilterTransactions(txs, entity.TransactionFilter{
		Type: entity.TransactionTypeFundTransfer,
	})))
	require.Equal(t, []string{"1", "2"}, ids(entity.FilterTransactions(txs, entity.TransactionFilter{
		Status: entity.TransactionStatusSuccess,
		Date:   "2026-03-14",
	})))
	require.Empty(t, entity.FilterTransactions(txs, entity.TransactionFilter{Status: entity.TransactionStatusFailed}))
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6, 7}

	for _, tt := range []struct {
		name      string
		page      int
		size      int
		wantItems []int
		wantPage  int
		wantPages int
	}{
		{name: "first page", page: 1, size: 3, wantItems: []int{1, 2, 3}, wantPage: 1, wantPages: 3},
		{name: "last partial page", page: 3, size: 3, wantItems: []int{7}, wantPage: 3, wantPages: 3},
		{name: "page past the end is clamped", page: 9, size: 3, wantItems: []int{7}, wantPage: 3, wantPages: 3},
		{name: "page zero is clamped", page: 0, size: 5, wantItems: []int{1, 2, 3, 4, 5}, wantPage: 1, wantPages: 2},
		{name: "zero size", page: 2, size: 0, wantItems: []int{2}, wantPage: 2, wantPages: 7},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := entity.Paginate(items, tt.page, tt.size)
			require.Equal(t, tt.wantItems, got.Items)
			require.Equal(t, tt.wantPage, got.Page)
			require.Equal(t, tt.wantPages, got.TotalPages)
			require.Equal(t, len(items), got.TotalItems)
		})
	}

	empty := entity.Paginate([]int{}, 4, 10)
	require.Equal(t, 1, empty.TotalPages)
	require.Equal(t, 1, empty.Page)
	require.Empty(t, empty.Items)
}

func TestNewWithdrawalQuote(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name          string
		amount        string
		service       entity.WithdrawalService
		wantFee       string
		wantTransfers int64
		wantTotal     string
	}{
		{name: "single block", amount: "1000", service: entity.WithdrawalServiceInstapay, wantFee: "5", wantTransfers: 1, wantTotal: "1005.00"},
		{name: "exact block", amount: "50000", service: entity.WithdrawalServiceInstapay, wantFee: "5", wantTransfers: 1, wantTotal: "50005.00"},
		{name: "started second block", amount: "50000.01", service: entity.WithdrawalServiceInstapay, wantFee: "10", wantTransfers: 2, wantTotal: "50010.01"},
		{name: "pesonet is free", amount: "120000", service: entity.WithdrawalServicePesonet, wantFee: "0", wantTransfers: 3, wantTotal: "120000.00"},
		{name: "zero", amount: "0", service: entity.WithdrawalServiceInstapay, wantFee: "0", wantTransfers: 0, wantTotal: "0.00"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := entity.NewWithdrawalQuote(decimal.RequireFromString(tt.amount), tt.service)
			require.Equal(t, tt.wantFee, q.Fee.String())
			require.Equal(t, tt.wantTransfers, q.Transfers)
			require.Equal(t, tt.wantTotal, q.Total.StringFixed(2))
		})
	}
}

func TestSuccessRate_Rate(t *testing.T) {
	t.Parallel()

	require.True(t, entity.SuccessRate{}.Rate().IsZero())
	require.Equal(t, "66.67", entity.SuccessRate{Count: 3, Success: 2}.Rate().StringFixed(2))
	require.Equal(t, "100", entity.SuccessRate{Count: 4, Success: 4}.Rate().String())
}

func TestWithdrawalService_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, entity.WithdrawalServiceInstapay.Validate())
	require.NoError(t, entity.WithdrawalServicePesonet.Validate())
	require.ErrorIs(t, entity.WithdrawalService("swift").Validate(), entity.ErrInvalidArgument)
}
