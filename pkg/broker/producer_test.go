package broker

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

func TestProducer_PaymentResolvedMessage(t *testing.T) {
	t.Parallel()

	p := NewProducer(slog.Default(), []string{"localhost:9092"}, "payment.status.resolved")
	t.Cleanup(p.Close)

	p.now = func() time.Time {
		return time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	}

	msg, err := p.paymentResolvedMessage("acme", "REF-1", entity.TransactionStatusSuccess, decimal.RequireFromString("520"))
	require.NoError(t, err)

	require.Equal(t, "payment.status.resolved", msg.Topic)
	require.Equal(t, "acme:REF-1", string(msg.Key))
	require.JSONEq(t, `{
		"merchant": "acme",
		"reference_id": "REF-1",
		"status": "SUCCESS",
		"total_amount": "520",
		"resolved_at": "2026-10-15T09:30:00Z"
	}`, string(msg.Value))
}
