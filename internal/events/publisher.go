package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Publisher fans domain events out to the two streams. Implementations are
// best-effort: publish failures are logged, never surfaced to the caller,
// because payment correctness does not depend on event delivery.
type Publisher interface {
	PublishTransactionEvent(ctx context.Context, ev TransactionEvent)
	PublishPaymentEvent(ctx context.Context, ev PaymentEvent)
	Close()
}

// KafkaPublisher publishes to Kafka through franz-go.
//
// Producer settings follow the stream contract: acks from all in-sync
// replicas, at most 3 retries, idempotent producer (the franz-go default
// when acks=all). Produce is asynchronous; the promise callback logs
// failures after retries are exhausted so a slow broker never holds a
// payment transaction.
type KafkaPublisher struct {
	client            *kgo.Client
	transactionsTopic string
	paymentsTopic     string
	log               zerolog.Logger
}

// NewKafkaPublisher connects to the brokers and validates the topic names.
func NewKafkaPublisher(brokers []string, transactionsTopic, paymentsTopic string, logger zerolog.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers provided")
	}
	if transactionsTopic == "" || paymentsTopic == "" {
		return nil, fmt.Errorf("both topics are required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.RecordRetries(3),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}

	return &KafkaPublisher{
		client:            client,
		transactionsTopic: transactionsTopic,
		paymentsTopic:     paymentsTopic,
		log:               logger.With().Str("component", "event_publisher").Logger(),
	}, nil
}

func (p *KafkaPublisher) PublishTransactionEvent(ctx context.Context, ev TransactionEvent) {
	p.produce(ctx, p.transactionsTopic, ev.TransactionID, ev.EventType, ev)
}

func (p *KafkaPublisher) PublishPaymentEvent(ctx context.Context, ev PaymentEvent) {
	p.produce(ctx, p.paymentsTopic, ev.PaymentID, ev.EventType, ev)
}

func (p *KafkaPublisher) produce(ctx context.Context, topic, key, eventType string, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		p.log.Error().Err(err).Str("event_type", eventType).Msg("event marshal failed, dropping")
		return
	}

	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(key), // partition key: per-entity ordering
		Value: b,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.log.Warn().Err(err).
				Str("topic", topic).
				Str("key", key).
				Str("event_type", eventType).
				Msg("event publish failed after retries, continuing")
			return
		}
		p.log.Debug().
			Str("topic", topic).
			Str("key", key).
			Str("event_type", eventType).
			Msg("event published")
	})
}

// Close flushes buffered records and releases the client.
func (p *KafkaPublisher) Close() {
	_ = p.client.Flush(context.Background())
	p.client.Close()
}

// Recorder captures events in memory. Tests assert on publish order.
type Recorder struct {
	mu           sync.Mutex
	transactions []TransactionEvent
	payments     []PaymentEvent
	order        []string // event types across both streams, publish order
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) PublishTransactionEvent(_ context.Context, ev TransactionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, ev)
	r.order = append(r.order, ev.EventType)
}

func (r *Recorder) PublishPaymentEvent(_ context.Context, ev PaymentEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, ev)
	r.order = append(r.order, ev.EventType)
}

func (r *Recorder) Close() {}

// TransactionEvents returns a copy of the captured transaction events.
func (r *Recorder) TransactionEvents() []TransactionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TransactionEvent, len(r.transactions))
	copy(out, r.transactions)
	return out
}

// PaymentEvents returns a copy of the captured payment events.
func (r *Recorder) PaymentEvents() []PaymentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PaymentEvent, len(r.payments))
	copy(out, r.payments)
	return out
}

// EventTypes lists the captured payment event types in publish order.
func (r *Recorder) EventTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, ev := range r.payments {
		out = append(out, ev.EventType)
	}
	return out
}

// AllEventTypes lists every captured event type, across both streams, in
// publish order.
func (r *Recorder) AllEventTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
