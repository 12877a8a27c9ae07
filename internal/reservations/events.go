package reservations

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// EventType identifies a reservation lifecycle transition.
type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationCancelled EventType = "reservation.cancelled"
)

// LifecycleEvent is the message published after a reservation transition
// commits. Downstream consumers (notification delivery lives outside this
// service) key on the court so events for one court stay ordered.
type LifecycleEvent struct {
	Type          EventType `json:"type"`
	ReservationID string    `json:"reservation_id"`
	CourtID       string    `json:"court_id"`
	UserID        string    `json:"user_id"`
	Date          time.Time `json:"date"`
	Status        Status    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventProducer publishes reservation lifecycle events. Publication is
// best-effort: the reservation is already committed when Publish runs.
type EventProducer interface {
	Publish(event *LifecycleEvent) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaEventProducer creates a sync producer for reservation events.
func NewKafkaEventProducer(brokers []string, topic string) (EventProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *kafkaProducer) Publish(event *LifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.CourtID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("reservation_id"), Value: []byte(event.ReservationID)},
		},
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish reservation event: %w", err)
	}

	log.Printf("Reservation event published - Topic: %s, Partition: %d, Offset: %d, Type: %s",
		p.topic, partition, offset, event.Type)
	return nil
}

func (p *kafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// noopProducer is used when Kafka is disabled by configuration.
type noopProducer struct{}

// NewNoopEventProducer returns a producer that drops every event.
func NewNoopEventProducer() EventProducer {
	return noopProducer{}
}

func (noopProducer) Publish(*LifecycleEvent) error { return nil }
func (noopProducer) Close() error                  { return nil }
