package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/orinoco-shop/internal/config"
	"github.com/SergeyBogomolovv/orinoco-shop/internal/entities"

	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// PublishOrderPlaced пишет событие с ключом order_id.
// Доставка at-least-once, потребители дедуплицируют по order_id.
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, order entities.Order) error {
	event := NewOrderPlaced(order, time.Now())

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(order.ID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(OrderPlacedType)},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("order placed event published", slog.Int64("order_id", order.ID), slog.String("event_id", event.EventID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
