package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/checkout/internal/entity"
)

type Producer struct {
	l           *slog.Logger
	w           *kafka.Writer
	statusTopic string
	now         func() time.Time
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:           l,
		w:           w,
		statusTopic: topic,
		now:         time.Now,
	}
}

type PaymentResolvedEvent struct {
	Merchant    string          `json:"merchant"`
	ReferenceID string          `json:"reference_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ResolvedAt  time.Time       `json:"resolved_at"`
}

// SendPaymentResolved publishes the terminal status of a payment. Failures are
// logged and never reach the caller.
func (p *Producer) SendPaymentResolved(
	ctx context.Context,
	merchant, referenceID string,
	status entity.TransactionStatus,
	total decimal.Decimal,
) {
	msg, err := p.paymentResolvedMessage(merchant, referenceID, status, total)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, msg)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) paymentResolvedMessage(
	merchant, referenceID string,
	status entity.TransactionStatus,
	total decimal.Decimal,
) (kafka.Message, error) {
	event := PaymentResolvedEvent{
		Merchant:    merchant,
		ReferenceID: referenceID,
		Status:      status.String(),
		TotalAmount: total.Round(2),
		ResolvedAt:  p.now().UTC(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(merchant + ":" + referenceID),
		Value: b,
		Topic: p.statusTopic,
	}, nil
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
