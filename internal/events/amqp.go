package events

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/haircut-scheduler/internal/audit"
	"github.com/BruksfildServices01/haircut-scheduler/internal/config"
)

// AMQPPublisher publishes to a durable topic exchange, keyed by
// RoutingKey.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *zap.Logger
}

func NewAMQPPublisher(cfg *config.Config, log *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		cfg.AMQP.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("amqp declare exchange %s: %w", cfg.AMQP.Exchange, err)
	}

	log.Info("amqp event publisher ready", zap.String("exchange", cfg.AMQP.Exchange))

	return &AMQPPublisher{
		conn:     conn,
		channel:  channel,
		exchange: cfg.AMQP.Exchange,
		log:      log,
	}, nil
}

func (p *AMQPPublisher) Handle(ctx context.Context, ev audit.Event) error {
	body, err := encode(ev)
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		RoutingKey(ev),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.ID.String(),
			Timestamp:    ev.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("amqp publish %s: %w", RoutingKey(ev), err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.log.Warn("amqp channel close", zap.Error(err))
	}
	return p.conn.Close()
}
