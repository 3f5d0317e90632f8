package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fooddrone/internal/core/ports"

	"github.com/IBM/sarama"
)

// KafkaBus is an EventBus over Kafka: a synchronous producer on the publish
// side and one consumer group on the subscribe side. Offsets are committed
// only after the handlers ran, so a crash mid-handling redelivers.
type KafkaBus struct {
	logger   *slog.Logger
	brokers  []string
	groupID  string
	config   *sarama.Config
	producer sarama.SyncProducer

	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler

	group  sarama.ConsumerGroup
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewKafkaBus creates a Kafka-backed bus and connects the producer.
func NewKafkaBus(brokers []string, groupID string, logger *slog.Logger) (*KafkaBus, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Net.DialTimeout = 30 * time.Second
	config.Net.ReadTimeout = 30 * time.Second
	config.Net.WriteTimeout = 30 * time.Second
	config.Consumer.Group.Session.Timeout = 45 * time.Second
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaBus{
		logger:   logger.With("component", "kafka_bus"),
		brokers:  brokers,
		groupID:  groupID,
		config:   config,
		producer: producer,
		handlers: make(map[string][]ports.EventHandler),
	}, nil
}

// Subscribe registers a handler for a topic. Must be called before Start.
func (b *KafkaBus) Subscribe(topic string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish sends a payload to a topic and waits for broker acknowledgement.
func (b *KafkaBus) Publish(_ context.Context, topic string, payload []byte) error {
	_, _, err := b.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Start joins the consumer group on every subscribed topic.
func (b *KafkaBus) Start(ctx context.Context) error {
	b.mu.RLock()
	topics := make([]string, 0, len(b.handlers))
	for topic := range b.handlers {
		topics = append(topics, topic)
	}
	b.mu.RUnlock()

	if len(topics) == 0 {
		return nil
	}

	group, err := sarama.NewConsumerGroup(b.brokers, b.groupID, b.config)
	if err != nil {
		return fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}
	b.group = group

	consumeCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			if err := b.group.Consume(consumeCtx, topics, &groupHandler{bus: b}); err != nil {
				b.logger.Error("consumer group session ended", "error", err)
			}
			if consumeCtx.Err() != nil {
				return
			}
		}
	}()

	return nil
}

// Close stops the consumer loop and closes producer and group.
func (b *KafkaBus) Close() error {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()

	var groupErr error
	if b.group != nil {
		groupErr = b.group.Close()
	}
	if err := b.producer.Close(); err != nil {
		return err
	}
	return groupErr
}

// dispatch runs every handler for the topic and returns the first failure.
// Remaining handlers still run; at-least-once delivery means an already
// succeeded handler will see the payload again on redelivery and must
// tolerate it.
func (b *KafkaBus) dispatch(ctx context.Context, topic string, payload []byte) error {
	b.mu.RLock()
	handlers := b.handlers[topic]
	b.mu.RUnlock()

	var firstErr error
	for _, handler := range handlers {
		if err := handler(ctx, payload); err != nil {
			b.logger.Warn("event handler failed",
				"topic", topic,
				"error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// groupHandler adapts the bus to sarama's consumer group callbacks.
type groupHandler struct {
	bus *KafkaBus
}

func (groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim marks an offset only after all handlers for the message
// succeeded. On a handler failure it returns the error without marking, so
// the session ends and the message is redelivered from the last committed
// offset.
func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := h.bus.dispatch(session.Context(), message.Topic, message.Value); err != nil {
			return err
		}
		session.MarkMessage(message, "")
	}
	return nil
}
