// Package publisher forwards appended clearing events to Kafka so downstream
// consumers (report generation, re-scans) learn about new decisions.
//
// Publishing happens after the event is durably appended. A failed publish
// never rolls the append back; the caller logs and counts it.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"clearview/internal/clearing/models"
)

// DefaultTopic receives clearing events when no topic is configured.
const DefaultTopic = "clearing-events"

// Publisher produces one Kafka record per clearing event, keyed by item so
// all events of an item land on the same partition in append order.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithTopic overrides DefaultTopic.
func WithTopic(topic string) Option {
	return func(p *Publisher) {
		if topic != "" {
			p.topic = topic
		}
	}
}

// New connects a producer to brokers.
func New(brokers []string, opts ...Option) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("publisher requires at least one broker")
	}
	p := &Publisher{topic: DefaultTopic}
	for _, opt := range opts {
		opt(p)
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(p.topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	p.client = client
	return p, nil
}

// EnsureTopic creates the topic when it does not exist yet.
func (p *Publisher) EnsureTopic(ctx context.Context, partitions int32, replication int16) error {
	adm := kadm.NewClient(p.client)
	resp, err := adm.CreateTopics(ctx, partitions, replication, nil, p.topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", p.topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

// Publish synchronously produces event and waits for broker acknowledgement.
// Failures are returned, not logged.
func (p *Publisher) Publish(ctx context.Context, event models.ClearingEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode clearing event: %w", err)
	}
	record := &kgo.Record{
		Key:   []byte(event.ItemID.String()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event_id", Value: []byte(event.ID.String())},
			{Key: "origin", Value: []byte(event.Origin)},
		},
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("publish clearing event to %s: %w", p.topic, err)
	}
	return nil
}

// Topic returns the topic events are produced to.
func (p *Publisher) Topic() string { return p.topic }

// Close flushes buffered records and closes the client.
func (p *Publisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := p.client.Flush(ctx)
	p.client.Close()
	return err
}
