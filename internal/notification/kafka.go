package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// DefaultTopic is used when NOTIFICATION_KAFKA_TOPIC is empty.
const DefaultTopic = "workspace-hub-invitations"

// KafkaPublisher implements Publisher using segmentio/kafka-go.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher returns a publisher writing to topic, or nil when brokers is empty
// (notifications disabled). Call Close when shutting down.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if len(brokers) == 0 {
		return nil
	}
	if topic == "" {
		topic = DefaultTopic
	}
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}}
}

// Publish writes the event as JSON keyed by workspace, so one workspace's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, event *InvitationCreated) error {
	if p == nil || p.writer == nil || event == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.WorkspaceID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	})
}

// Close closes the Kafka writer. Safe on a nil publisher.
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// NewKafkaReader returns the consumer-group reader the worker drains.
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	if topic == "" {
		topic = DefaultTopic
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		MaxWait:        time.Second,
		CommitInterval: time.Second,
	})
}

// Decode parses a queued message.
func Decode(msg kafka.Message) (*InvitationCreated, error) {
	var e InvitationCreated
	if err := json.Unmarshal(msg.Value, &e); err != nil {
		return nil, fmt.Errorf("decode notification at offset %d: %w", msg.Offset, err)
	}
	if e.Type != EventInvitationCreated {
		return nil, fmt.Errorf("unknown notification type %q at offset %d", e.Type, msg.Offset)
	}
	return &e, nil
}
