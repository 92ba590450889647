package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

// ExchangeMenuEvents — topic exchange событий меню по умолчанию.
const ExchangeMenuEvents = "menu.events"

// channel — часть *amqp.Channel, нужная паблишеру.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события меню в topic exchange с типом события в качестве routing key.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	acks     <-chan amqp.Confirmation
	exchange string
	logger   *log.Entry

	// publisher confirms требуют последовательной публикации
	mu sync.Mutex
}

// Dial подключается к брокеру, включает publisher confirms и объявляет exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	p, err := newPublisher(ch, acks, exchange)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, acks <-chan amqp.Confirmation, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = ExchangeMenuEvents
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{
		ch:       ch,
		acks:     acks,
		exchange: exchange,
		logger:   log.WithField("component", "rabbitmq-publisher"),
	}, nil
}

// Publish отправляет событие и, если включены confirms, ждёт ack брокера.
func (p *Publisher) Publish(ctx context.Context, event domain.MenuEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal menu event: %w", err)
	}

	headers := amqp.Table{"event_type": string(event.Type)}
	if event.DishID != "" {
		headers["dish_id"] = event.DishID
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish menu event: %w", err)
	}

	if p.acks == nil {
		return nil
	}
	select {
	case conf, ok := <-p.acks:
		if !ok {
			return errors.New("rabbitmq confirms channel closed")
		}
		if !conf.Ack {
			return errors.New("publish NACK from broker")
		}
		p.logger.WithFields(log.Fields{
			"exchange":    p.exchange,
			"routing_key": event.Type,
			"tag":         conf.DeliveryTag,
		}).Debug("menu event confirmed")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ping проверяет, что соединение живо.
func (p *Publisher) Ping() error {
	if p.conn != nil && p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Close закрывает канал и соединение.
func (p *Publisher) Close() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}

var _ domain.MenuEventPublisher = (*Publisher)(nil)
