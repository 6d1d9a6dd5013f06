package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/consultingshop/checkout-service/internal/config"
	"github.com/consultingshop/checkout-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// kafkaNotifier publishes paid-order events. The email worker that renders
// customer confirmations consumes the topic elsewhere, so a publish failure
// must never fail a payment confirmation: callers log and move on.
type kafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

type paidEvent struct {
	Event         string    `json:"event"`
	OrderCode     string    `json:"order_code"`
	AmountCents   int64     `json:"amount_cents"`
	CustomerEmail string    `json:"customer_email"`
	CustomerName  string    `json:"customer_name,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PaidAt        time.Time `json:"paid_at"`
}

func (n *kafkaNotifier) OrderPaid(ctx context.Context, notice entities.PaymentNotice) error {
	event := paidEvent{
		Event:         "order.paid",
		OrderCode:     notice.OrderCode,
		AmountCents:   notice.AmountCents,
		CustomerEmail: notice.CustomerEmail,
		CustomerName:  notice.CustomerName,
		TransactionID: notice.TransactionID,
		PaidAt:        notice.PaidAt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal paid event: %w", err)
	}

	// Keyed by order code so retries of the same order stay in one partition.
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notice.OrderCode),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write paid event: %w", err)
	}

	n.logger.DebugContext(ctx, "paid event published", slog.String("order_code", notice.OrderCode))
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
