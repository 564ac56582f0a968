package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// AlertEvent carries one passenger alert for a flight on the board.
type AlertEvent struct {
	FlightID     string    `json:"flight_id"`
	FlightNumber string    `json:"flight_number"`
	Destination  string    `json:"destination"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	Airport      string    `json:"airport"`
	IssuedAt     time.Time `json:"issued_at"`
}

type Producer struct {
	brokers    []string
	writer     *kafka.Writer
	maxRetries int
}

type ProducerOption func(*Producer)

func WithMaxRetries(n int) ProducerOption {
	return func(p *Producer) {
		if n > 0 {
			p.maxRetries = n
		}
	}
}

func NewProducer(brokers []string, opts ...ProducerOption) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	p := &Producer{
		brokers:    brokers,
		writer:     writer,
		maxRetries: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish writes payload as JSON, retrying up to the configured number of attempts.
func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	var lastErr error
	for i := 0; i < p.maxRetries; i++ {
		if lastErr = p.writer.WriteMessages(ctx, message); lastErr == nil {
			return nil
		}
		log.Printf("publish to %s attempt %d failed: %v", topic, i+1, lastErr)

		if i < p.maxRetries-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(i+1) * 500 * time.Millisecond):
			}
		}
	}

	return fmt.Errorf("failed to write message to Kafka after %d attempts: %w", p.maxRetries, lastErr)
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and reads its partitions.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ReadPartitions(); err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}
	return nil
}
