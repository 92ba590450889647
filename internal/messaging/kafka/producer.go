package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

// Producer публикует сообщения в Kafka.
type Producer struct {
	producer sarama.SyncProducer
	logger   *log.Entry
}

// NewProducer создает новый Kafka producer
func NewProducer(brokers []string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return newProducer(producer), nil
}

func newProducer(producer sarama.SyncProducer) *Producer {
	return &Producer{
		producer: producer,
		logger:   log.WithField("component", "kafka-producer"),
	}
}

// PublishEvent сериализует событие в JSON и отправляет его в topic.
func (p *Producer) PublishEvent(topic, key string, event any, headers ...sarama.RecordHeader) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(eventData),
		Headers:   headers,
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).WithFields(log.Fields{
			"topic": topic,
			"key":   key,
		}).Error("failed to send message to kafka")
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.WithFields(log.Fields{
		"topic":     topic,
		"key":       key,
		"partition": partition,
		"offset":    offset,
	}).Debug("message sent to kafka")

	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

// MenuPublisher публикует события меню в заданный topic.
type MenuPublisher struct {
	producer *Producer
	topic    string
}

// NewMenuPublisher создаёт Kafka-паблишер событий меню.
func NewMenuPublisher(producer *Producer, topic string) *MenuPublisher {
	if topic == "" {
		topic = TopicMenuEvents
	}
	return &MenuPublisher{
		producer: producer,
		topic:    topic,
	}
}

// Publish отправляет событие с id блюда в качестве ключа.
func (p *MenuPublisher) Publish(ctx context.Context, event domain.MenuEvent) error {
	if p == nil || p.producer == nil {
		return fmt.Errorf("kafka menu publisher is not initialized")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	headers := []sarama.RecordHeader{
		{Key: []byte(HeaderEventType), Value: []byte(event.Type)},
	}
	if event.DishID != "" {
		headers = append(headers, sarama.RecordHeader{Key: []byte(HeaderDishID), Value: []byte(event.DishID)})
	}
	return p.producer.PublishEvent(p.topic, eventKey(event), event, headers...)
}

var _ domain.MenuEventPublisher = (*MenuPublisher)(nil)
