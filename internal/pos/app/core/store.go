package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"smart-pos/internal/pos/domain/models"
)

// Store runs a function inside a single database transaction. Every
// multi-step mutation in the lifecycle engine and the inkassa workflow goes
// through one WithTx call: all writes commit together or none do.
type Store interface {
	WithTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the set of row-level primitives available inside a transaction. The
// services own all business decisions; Tx implementations only read and
// write rows.
type Tx interface {
	// Collaborator lookups.
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)

	// Order rows.
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	// LastDisplayID locks the most recently created order row and returns
	// its display id. ok is false when no orders exist yet.
	LastDisplayID(ctx context.Context) (id int, ok bool, err error)
	InsertOrder(ctx context.Context, o *models.Order) error
	DeleteOrder(ctx context.Context, orderID int64) error
	UpdateOrderStatus(ctx context.Context, orderID int64, status string, readyAt *time.Time) error
	UpdateOrderTotal(ctx context.Context, orderID int64, total decimal.Decimal) error
	SetOrderCashier(ctx context.Context, orderID, cashierID int64) error
	MarkOrderPaid(ctx context.Context, orderID, cashierID int64, at time.Time) error

	// Order item rows.
	InsertItem(ctx context.Context, it *models.OrderItem) error
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error
	SetItemReady(ctx context.Context, itemID int64, at *time.Time) error
	SetItemsReady(ctx context.Context, orderID int64, at time.Time) error
	DeleteItem(ctx context.Context, itemID int64) error

	// Display views.
	ProcessingOrders(ctx context.Context) ([]models.OrderProgress, error)
	FinishedOrders(ctx context.Context, since time.Time) ([]models.Order, error)

	// Cash register and inkassa ledger.
	RegisterForUpdate(ctx context.Context) (models.CashRegister, error)
	UpdateRegisterBalance(ctx context.Context, balance decimal.Decimal) error
	LastInkassa(ctx context.Context) (models.Inkassa, bool, error)
	FirstOrderCreatedAt(ctx context.Context) (time.Time, bool, error)
	PeriodStats(ctx context.Context, periodStart time.Time) (models.PeriodStats, error)
	InsertInkassa(ctx context.Context, ink *models.Inkassa) error
	ListInkassa(ctx context.Context, limit, offset int) ([]models.Inkassa, error)
	GetInkassa(ctx context.Context, id int64) (models.Inkassa, error)
}

// StatusPublisher pushes order status updates to the message broker. A
// publish failure must never roll back the committed business transaction.
type StatusPublisher interface {
	PublishStatusUpdate(ctx context.Context, msg StatusUpdateMessage) error
}

// StatusUpdateMessage is the wire format fanned out to notification
// subscribers after every committed lifecycle change.
type StatusUpdateMessage struct {
	OrderID     int64     `json:"order_id"`
	DisplayID   int       `json:"display_id"`
	Event       string    `json:"event"`
	OldStatus   string    `json:"old_status,omitempty"`
	NewStatus   string    `json:"new_status"`
	TotalAmount string    `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}

// Notification events.
const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
	EventOrderReady    = "order_ready"
	EventOrderPaid     = "payment_received"
	EventOrderDeleted  = "order_deleted"
)
