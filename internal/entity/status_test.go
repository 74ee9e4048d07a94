package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

func TestStatusView(t *testing.T) {
	t.Parallel()

	for status, want := range map[entity.TransactionStatus]entity.View{
		entity.TransactionStatusSuccess: entity.ViewSuccess,
		entity.TransactionStatusFailed:  entity.ViewFailed,
		entity.TransactionStatusPending: entity.ViewPending,
		entity.TransactionStatusClosed:  entity.ViewExpired,
		"success":                       entity.ViewNeutral,
		"UNKNOWN_X":                     entity.ViewNeutral,
		"":                              entity.ViewNeutral,
	} {
		require.Equal(t, want, entity.StatusView(status), "status %q", status)
	}
}

func TestCreationView(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		status entity.TransactionStatus
		want   entity.View
		ok     bool
	}{
		{status: entity.TransactionStatusSuccess, want: entity.ViewSuccess, ok: true},
		{status: entity.TransactionStatusPending, want: entity.ViewPending, ok: true},
		{status: entity.TransactionStatusFailed, want: entity.ViewFailed, ok: true},
		{status: entity.TransactionStatusClosed, want: entity.ViewFailed, ok: false},
		{status: "REFUNDED", want: entity.ViewFailed, ok: false},
	} {
		got, ok := entity.CreationView(tt.status)
		require.Equal(t, tt.want, got, "status %q", tt.status)
		require.Equal(t, tt.ok, ok, "status %q", tt.status)
	}
}

func TestTransactionStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	require.True(t, entity.TransactionStatusSuccess.IsTerminal())
	require.True(t, entity.TransactionStatusFailed.IsTerminal())
	require.False(t, entity.TransactionStatusPending.IsTerminal())
	require.False(t, entity.TransactionStatusClosed.IsTerminal())
	require.False(t, entity.TransactionStatus("UNKNOWN_X").IsTerminal())
}
