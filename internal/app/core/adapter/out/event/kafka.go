package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
)

// kafkaEvent Kafka message 的 JSON payload
type kafkaEvent struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	AccountID   string    `json:"account_id"`
	ToAccountID string    `json:"to_account_id,omitempty"`
	Amount      string    `json:"amount"`
	NewBalance  string    `json:"new_balance,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// KafkaPublisher 把帳務事件寫進 Kafka
// key 用帳戶 ID，同一帳戶的事件落在同一 partition 保持順序
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) { logger.Debug(fmt.Sprintf(msg, args...)) }),
		ErrorLogger:  kafka.LoggerFunc(func(msg string, args ...any) { logger.Error(fmt.Sprintf(msg, args...)) }),
	}
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev domain.Event) error {
	payload := kafkaEvent{
		EventID:     ev.EventID.String(),
		Type:        ev.Type.String(),
		AccountID:   ev.AccountID,
		ToAccountID: ev.ToAccountID,
		Amount:      ev.Amount.String(),
		OccurredAt:  ev.OccurredAt,
	}
	// 轉帳事件不帶餘額
	if ev.Type != domain.EventTypeTransfer {
		payload.NewBalance = ev.NewBalance.String()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.writer.WriteTimeout)
	defer cancel()

	err = p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(ev.AccountID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to produce event to kafka: %w", err)
	}
	return nil
}

// Close 關閉 writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ usecase.EventPublisher = (*KafkaPublisher)(nil)
