package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/pos/domain/models"
)

// fakeStore runs the closure against a single in-memory transaction. There is
// no rollback: the services are expected to fail before writing anything when
// a precondition does not hold.
type fakeStore struct {
	tx *fakeTx
}

func (s *fakeStore) WithTx(ctx context.Context, fn func(tx core.Tx) error) error {
	return fn(s.tx)
}

type fakeTx struct {
	users    map[int64]models.User
	products map[int64]models.Product
	orders   map[int64]*models.Order

	nextOrderID int64
	nextItemID  int64
	lastDisplay int

	register     models.CashRegister
	registerInit bool

	inkassas     []models.Inkassa
	firstOrderAt *time.Time

	stats           models.PeriodStats
	gotPeriodStart  time.Time
	gotListLimit    int
	gotListOffset   int
	processingQueue []models.OrderProgress
	finishedQueue   []models.Order
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		users:    make(map[int64]models.User),
		products: make(map[int64]models.Product),
		orders:   make(map[int64]*models.Order),
	}
}

func (t *fakeTx) GetUser(_ context.Context, id int64) (models.User, error) {
	u, ok := t.users[id]
	if !ok {
		return models.User{}, core.ErrUserNotFound
	}
	return u, nil
}

func (t *fakeTx) GetProduct(_ context.Context, id int64) (models.Product, error) {
	p, ok := t.products[id]
	if !ok {
		return models.Product{}, core.ErrProductNotFound
	}
	return p, nil
}

func (t *fakeTx) GetOrder(_ context.Context, id int64) (models.Order, error) {
	o, ok := t.orders[id]
	if !ok {
		return models.Order{}, core.ErrOrderNotFound
	}
	cp := *o
	cp.Items = append([]models.OrderItem(nil), o.Items...)
	return cp, nil
}

func (t *fakeTx) LastDisplayID(_ context.Context) (int, bool, error) {
	if t.lastDisplay == 0 {
		return 0, false, nil
	}
	return t.lastDisplay, true, nil
}

func (t *fakeTx) InsertOrder(_ context.Context, o *models.Order) error {
	t.nextOrderID++
	o.ID = t.nextOrderID
	cp := *o
	t.orders[o.ID] = &cp
	t.lastDisplay = o.DisplayID
	return nil
}

func (t *fakeTx) DeleteOrder(_ context.Context, orderID int64) error {
	delete(t.orders, orderID)
	return nil
}

func (t *fakeTx) UpdateOrderStatus(_ context.Context, orderID int64, status string, readyAt *time.Time) error {
	o, ok := t.orders[orderID]
	if !ok {
		return core.ErrOrderNotFound
	}
	o.Status = status
	o.ReadyAt = readyAt
	return nil
}

func (t *fakeTx) UpdateOrderTotal(_ context.Context, orderID int64, total decimal.Decimal) error {
	o, ok := t.orders[orderID]
	if !ok {
		return core.ErrOrderNotFound
	}
	o.TotalAmount = total
	return nil
}

func (t *fakeTx) SetOrderCashier(_ context.Context, orderID, cashierID int64) error {
	o, ok := t.orders[orderID]
	if !ok {
		return core.ErrOrderNotFound
	}
	o.CashierID = &cashierID
	return nil
}

func (t *fakeTx) MarkOrderPaid(_ context.Context, orderID, cashierID int64, at time.Time) error {
	o, ok := t.orders[orderID]
	if !ok || o.IsPaid {
		return core.ErrAlreadyPaid
	}
	o.IsPaid = true
	o.PaidAt = &at
	o.CashierID = &cashierID
	return nil
}

func (t *fakeTx) InsertItem(_ context.Context, it *models.OrderItem) error {
	t.nextItemID++
	it.ID = t.nextItemID
	o, ok := t.orders[it.OrderID]
	if !ok {
		return core.ErrOrderNotFound
	}
	o.Items = append(o.Items, *it)
	return nil
}

func (t *fakeTx) UpdateItemQuantity(_ context.Context, itemID int64, quantity int) error {
	if it := t.findItem(itemID); it != nil {
		it.Quantity = quantity
		return nil
	}
	return core.ErrItemNotFound
}

func (t *fakeTx) SetItemReady(_ context.Context, itemID int64, at *time.Time) error {
	if it := t.findItem(itemID); it != nil {
		it.ReadyAt = at
		return nil
	}
	return core.ErrItemNotFound
}

func (t *fakeTx) SetItemsReady(_ context.Context, orderID int64, at time.Time) error {
	o, ok := t.orders[orderID]
	if !ok {
		return core.ErrOrderNotFound
	}
	for i := range o.Items {
		if o.Items[i].ReadyAt == nil {
			o.Items[i].ReadyAt = &at
		}
	}
	return nil
}

func (t *fakeTx) DeleteItem(_ context.Context, itemID int64) error {
	for _, o := range t.orders {
		for i := range o.Items {
			if o.Items[i].ID == itemID {
				o.Items = append(o.Items[:i], o.Items[i+1:]...)
				return nil
			}
		}
	}
	return core.ErrItemNotFound
}

func (t *fakeTx) ProcessingOrders(_ context.Context) ([]models.OrderProgress, error) {
	return t.processingQueue, nil
}

func (t *fakeTx) FinishedOrders(_ context.Context, _ time.Time) ([]models.Order, error) {
	return t.finishedQueue, nil
}

func (t *fakeTx) RegisterForUpdate(_ context.Context) (models.CashRegister, error) {
	if !t.registerInit {
		t.register = models.CashRegister{ID: 1, CurrentBalance: decimal.Zero, LastUpdated: time.Now()}
		t.registerInit = true
	}
	return t.register, nil
}

func (t *fakeTx) UpdateRegisterBalance(_ context.Context, balance decimal.Decimal) error {
	t.register.CurrentBalance = balance
	t.register.LastUpdated = time.Now()
	return nil
}

func (t *fakeTx) LastInkassa(_ context.Context) (models.Inkassa, bool, error) {
	if len(t.inkassas) == 0 {
		return models.Inkassa{}, false, nil
	}
	return t.inkassas[len(t.inkassas)-1], true, nil
}

func (t *fakeTx) FirstOrderCreatedAt(_ context.Context) (time.Time, bool, error) {
	if t.firstOrderAt == nil {
		return time.Time{}, false, nil
	}
	return *t.firstOrderAt, true, nil
}

func (t *fakeTx) PeriodStats(_ context.Context, periodStart time.Time) (models.PeriodStats, error) {
	t.gotPeriodStart = periodStart
	return t.stats, nil
}

func (t *fakeTx) InsertInkassa(_ context.Context, ink *models.Inkassa) error {
	ink.ID = int64(len(t.inkassas) + 1)
	t.inkassas = append(t.inkassas, *ink)
	return nil
}

func (t *fakeTx) ListInkassa(_ context.Context, limit, offset int) ([]models.Inkassa, error) {
	t.gotListLimit = limit
	t.gotListOffset = offset

	var result []models.Inkassa
	for i := len(t.inkassas) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		result = append(result, t.inkassas[i])
	}
	return result, nil
}

func (t *fakeTx) GetInkassa(_ context.Context, id int64) (models.Inkassa, error) {
	for _, ink := range t.inkassas {
		if ink.ID == id {
			return ink, nil
		}
	}
	return models.Inkassa{}, core.ErrInkassaNotFound
}

func (t *fakeTx) findItem(itemID int64) *models.OrderItem {
	for _, o := range t.orders {
		for i := range o.Items {
			if o.Items[i].ID == itemID {
				return &o.Items[i]
			}
		}
	}
	return nil
}

// fakePublisher records published status updates.
type fakePublisher struct {
	messages []core.StatusUpdateMessage
}

func (p *fakePublisher) PublishStatusUpdate(_ context.Context, msg core.StatusUpdateMessage) error {
	p.messages = append(p.messages, msg)
	return nil
}
