package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/xpkg/config"
	xerrors "smart-pos/internal/xpkg/errors"
	"smart-pos/internal/xpkg/logger"
)

const (
	ordersExchange     = "orders_topic"
	notificationsQueue = "notifications_queue"
	routingKeyPrefix   = "notifications."
)

// RabbitMQ publishes order status updates to the orders_topic exchange.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mylog   logger.Logger
}

// Connect dials the broker and declares the exchange and the notifications
// queue bound to it.
func Connect(cfg *config.RabbitMQ, mylog logger.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrMBConn, err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", xerrors.ErrMBCh, err)
	}

	err = channel.ExchangeDeclare(
		ordersExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		notificationsQueue, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		notificationsQueue,   // queue name
		routingKeyPrefix+"#", // routing key
		ordersExchange,       // exchange
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	mylog.Action("rabbitmq_connected").Info("Connected to RabbitMQ")
	return &RabbitMQ{
		conn:    conn,
		channel: channel,
		mylog:   mylog,
	}, nil
}

// PublishStatusUpdate sends one status-update message with the event as
// routing key suffix.
func (r *RabbitMQ) PublishStatusUpdate(ctx context.Context, msg core.StatusUpdateMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.channel.PublishWithContext(pubCtx,
		ordersExchange,             // exchange
		routingKeyPrefix+msg.Event, // routing key
		false,                      // mandatory
		false,                      // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
}

// Consume delivers notification messages; used by the subscriber mode.
func (r *RabbitMQ) Consume() (<-chan amqp.Delivery, error) {
	return r.channel.Consume(
		notificationsQueue, // queue
		"",                 // consumer
		false,              // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,                // args
	)
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
