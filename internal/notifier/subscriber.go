package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"smart-pos/internal/pos/adapter/broker"
	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/xpkg/config"
	"smart-pos/internal/xpkg/logger"
)

// Subscriber consumes order status updates from the notifications queue and
// renders them for the operator console.
type Subscriber struct {
	cfg   *config.Config
	mylog logger.Logger
	mb    *broker.RabbitMQ
}

func NewSubscriber(cfg *config.Config, mylog logger.Logger) *Subscriber {
	return &Subscriber{
		cfg:   cfg,
		mylog: mylog,
	}
}

// Start connects and consumes until the context is canceled.
func (s *Subscriber) Start(ctx context.Context) error {
	mb, err := broker.Connect(s.cfg.RMQ, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb

	deliveries, err := mb.Consume()
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	mylog := s.mylog.Action("subscribed")
	mylog.Info("Waiting for order notifications")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			var msg core.StatusUpdateMessage
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				s.mylog.Action("parse_failed").Error("Failed to parse notification", err)
				d.Nack(false, false)
				continue
			}

			s.mylog.Action("notification").Info(describe(msg),
				"order_id", msg.OrderID,
				"display_id", msg.DisplayID,
				"event", msg.Event,
			)
			d.Ack(false)
		}
	}
}

// Stop closes the broker connection.
func (s *Subscriber) Stop() {
	if s.mb != nil {
		s.mb.Close()
	}
}

func describe(msg core.StatusUpdateMessage) string {
	switch msg.Event {
	case core.EventOrderCreated:
		return fmt.Sprintf("Order #%d created, total %s", msg.DisplayID, msg.TotalAmount)
	case core.EventOrderReady:
		return fmt.Sprintf("Order #%d is ready for pickup", msg.DisplayID)
	case core.EventOrderPaid:
		return fmt.Sprintf("Order #%d paid, %s credited to register", msg.DisplayID, msg.TotalAmount)
	case core.EventOrderDeleted:
		return fmt.Sprintf("Order #%d deleted", msg.DisplayID)
	default:
		return fmt.Sprintf("Order #%d: %s -> %s", msg.DisplayID, msg.OldStatus, msg.NewStatus)
	}
}
