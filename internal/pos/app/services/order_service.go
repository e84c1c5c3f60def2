package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/pos/domain/dto"
	"smart-pos/internal/pos/domain/models"
	"smart-pos/internal/xpkg/logger"
)

// OrderService is the order lifecycle engine: creation, item mutation,
// readiness tracking, status transitions and payment. Every mutation runs in
// a single store transaction; totals are recomputed from the live items
// after each change.
type OrderService struct {
	store   core.Store
	broker  core.StatusPublisher
	mylog   logger.Logger
	nowFunc func() time.Time
}

func NewOrderService(store core.Store, broker core.StatusPublisher, mylog logger.Logger) *OrderService {
	return &OrderService{
		store:   store,
		broker:  broker,
		mylog:   mylog,
		nowFunc: time.Now,
	}
}

// Create validates the request, assigns the next rolling display id under an
// exclusive lock and persists the order with its items atomically.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResult, error) {
	mylog := s.mylog.Action("create_order")

	if len(req.Items) == 0 {
		return dto.CreateOrderResult{Result: dto.Fail(core.CodeValidation, "Order must have at least one item")}, nil
	}
	if !core.AllowedOrderTypes[req.OrderType] {
		return dto.CreateOrderResult{Result: dto.Fail(core.CodeValidation, "Order type must be HALL, DELIVERY, or PICKUP")}, nil
	}
	if req.OrderType == models.TypeDelivery && (req.PhoneNumber == nil || *req.PhoneNumber == "") {
		return dto.CreateOrderResult{Result: dto.Fail(core.CodeValidation, "Phone number is required for delivery orders")}, nil
	}
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return dto.CreateOrderResult{Result: dto.Fail(core.CodeValidation, fmt.Sprintf("Item %d: quantity must be greater than 0", i))}, nil
		}
	}

	var order models.Order
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		if _, err := tx.GetUser(ctx, req.UserID); err != nil {
			if errors.Is(err, core.ErrUserNotFound) {
				return core.ErrUserNotFound
			}
			return err
		}
		if req.CashierID != nil {
			cashier, err := tx.GetUser(ctx, *req.CashierID)
			if err != nil {
				if errors.Is(err, core.ErrUserNotFound) {
					return core.ErrInvalidCashier
				}
				return err
			}
			if cashier.Role != models.RoleCashier {
				return core.ErrInvalidCashier
			}
		}

		// Resolve products first so a missing product aborts before any
		// row is written.
		products := make([]models.Product, len(req.Items))
		total := decimal.Zero
		for i, item := range req.Items {
			product, err := tx.GetProduct(ctx, item.ProductID)
			if err != nil {
				return err
			}
			products[i] = product
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		prev, ok, err := tx.LastDisplayID(ctx)
		if err != nil {
			return err
		}
		displayID := 1
		if ok {
			displayID = prev%core.MaxDisplayID + 1
		}

		now := s.nowFunc()
		order = models.Order{
			DisplayID:   displayID,
			UserID:      req.UserID,
			CashierID:   req.CashierID,
			OrderType:   req.OrderType,
			Status:      models.StatusPreparing,
			TotalAmount: total,
			PhoneNumber: req.PhoneNumber,
			Description: req.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.InsertOrder(ctx, &order); err != nil {
			return err
		}
		for i, item := range req.Items {
			it := models.OrderItem{
				OrderID:   order.ID,
				ProductID: products[i].ID,
				Quantity:  item.Quantity,
				Price:     products[i].Price,
				Detail:    item.Detail,
				CreatedAt: now,
			}
			if err := tx.InsertItem(ctx, &it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if res, ok := failFrom(err); ok {
			return dto.CreateOrderResult{Result: res}, nil
		}
		mylog.Error("Failed to create order", err)
		return dto.CreateOrderResult{}, fmt.Errorf("create order: %w", err)
	}

	s.notify(ctx, core.StatusUpdateMessage{
		OrderID:     order.ID,
		DisplayID:   order.DisplayID,
		Event:       core.EventOrderCreated,
		NewStatus:   order.Status,
		TotalAmount: order.TotalAmount.StringFixed(2),
		Timestamp:   s.nowFunc(),
	})

	mylog.Info("Order created", "order_id", order.ID, "display_id", order.DisplayID)
	return dto.CreateOrderResult{
		Result:      dto.OK("Order created successfully"),
		OrderID:     order.ID,
		DisplayID:   order.DisplayID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount.StringFixed(2),
	}, nil
}

// AddItem adds a product to a preparing order. A not-yet-ready line for the
// same product is incremented instead of duplicated; adding work to an order
// that was already marked ready re-opens it.
func (s *OrderService) AddItem(ctx context.Context, orderID int64, req dto.AddItemRequest) (dto.ItemMutationResult, error) {
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 {
		return dto.ItemMutationResult{Result: dto.Fail(core.CodeValidation, "Quantity must be greater than 0")}, nil
	}

	var total decimal.Decimal
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		order, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status != models.StatusPreparing {
			return core.ErrOrderNotEditable
		}
		product, err := tx.GetProduct(ctx, req.ProductID)
		if err != nil {
			return err
		}

		if existing := order.UnreadyItemForProduct(product.ID); existing != nil {
			existing.Quantity += quantity
			if err := tx.UpdateItemQuantity(ctx, existing.ID, existing.Quantity); err != nil {
				return err
			}
		} else {
			it := models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  quantity,
				Price:     product.Price,
				Detail:    req.Detail,
				CreatedAt: s.nowFunc(),
			}
			if err := tx.InsertItem(ctx, &it); err != nil {
				return err
			}
			order.Items = append(order.Items, it)
		}

		// Adding work re-opens completed prep.
		if order.ReadyAt != nil {
			if err := tx.UpdateOrderStatus(ctx, order.ID, models.StatusPreparing, nil); err != nil {
				return err
			}
		}

		total = orderTotal(order.Items)
		return tx.UpdateOrderTotal(ctx, order.ID, total)
	})
	if err != nil {
		if res, ok := failFrom(err); ok {
			return dto.ItemMutationResult{Result: res}, nil
		}
		return dto.ItemMutationResult{}, fmt.Errorf("add item: %w", err)
	}

	return dto.ItemMutationResult{
		Result:      dto.OK("Item added to order successfully"),
		TotalAmount: total.StringFixed(2),
	}, nil
}

// UpdateItem changes an item's quantity on a preparing order.
func (s *OrderService) UpdateItem(ctx context.Context, orderID, itemID int64, req dto.UpdateItemRequest) (dto.ItemMutationResult, error) {
	if req.Quantity <= 0 {
		return dto.ItemMutationResult{Result: dto.Fail(core.CodeValidation, "Quantity must be greater than 0")}, nil
	}

	var total decimal.Decimal
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		order, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status != models.StatusPreparing {
			return core.ErrOrderNotEditable
		}
		item := order.Item(itemID)
		if item == nil {
			return core.ErrItemNotFound
		}
		item.Quantity = req.Quantity
		if err := tx.UpdateItemQuantity(ctx, item.ID, req.Quantity); err != nil {
			return err
		}
		total = orderTotal(order.Items)
		return tx.UpdateOrderTotal(ctx, order.ID, total)
	})
	if err != nil {
		if res, ok := failFrom(err); ok {
			return dto.ItemMutationResult{Result: res}, nil
		}
		return dto.ItemMutationResult{}, fmt.Errorf("update item: %w", err)
	}

	return dto.ItemMutationResult{
		Result:      dto.OK("Order item updated successfully"),
		TotalAmount: total.StringFixed(2),
	}, nil
}

// RemoveItem deletes an item from a preparing order. Removing the last item
// deletes the order itself: zero-item orders never persist.
func (s *OrderService) RemoveItem(ctx context.Context, orderID, itemID int64) (dto.ItemMutationResult, error) {
	var (
		orderDeleted bool
		displayID    int
		total        decimal.Decimal
	)
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		order, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status != models.StatusPreparing {
			return core.ErrOrderNotEditable
		}
		item := order.Item(itemID)
		if item == nil {
			return core.ErrItemNotFound
		}
		if err := tx.DeleteItem(ctx, item.ID); err != nil {
			return err
		}

		remaining := make([]models.OrderItem, 0, len(order.Items)-1)
		for _, it := range order.Items {
			if it.ID != item.ID {
				remaining = append(remaining, it)
			}
		}

		if len(remaining) == 0 {
			orderDeleted = true
			displayID = order.DisplayID
			return tx.DeleteOrder(ctx, order.ID)
		}

		// A removal can leave every remaining item ready.
		if order.Status != models.StatusReady && allReady(remaining) {
			now := s.nowFunc()
			if err := tx.UpdateOrderStatus(ctx, order.ID, models.StatusReady, &now); err != nil {
				return err
			}
		}

		total = orderTotal(remaining)
		return tx.UpdateOrderTotal(ctx, order.ID, total)
	})
	if err != nil {
		if res, ok := failFrom(err); ok {
			return dto.ItemMutationResult{Result: res}, nil
		}
		return dto.ItemMutationResult{}, fmt.Errorf("remove item: %w", err)
	}

	if orderDeleted {
		s.notify(ctx, core.StatusUpdateMessage{
			OrderID:   orderID,
			DisplayID: displayID,
			Event:     core.EventOrderDeleted,
			Timestamp: s.nowFunc(),
		})
		return dto.ItemMutationResult{
			Result:       dto.OK("Order deleted (no items remaining)"),
			OrderDeleted: true,
		}, nil
	}

	return dto.ItemMutationResult{
		Result:      dto.OK("Item removed from order successfully"),
		TotalAmount: total.StringFixed(2),
	}, nil
}

// MarkItemReady stamps one item as ready. When that closes the last open
// item the whole order is promoted to READY in the same transaction; this is
// the only automatic status promotion in the lifecycle.
func (s *OrderService) MarkItemReady(ctx context.Context, orderID, itemID int64) (dto.MarkItemReadyResult, error) {
	var (
		res      dto.MarkItemReadyResult
		promoted bool
		order    models.Order
	)
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		order, err = tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status == models.StatusCanceled {
			return core.ErrOrderCanceled
		}
		if order.Status == models.StatusReady {
			return core.ErrOrderReady
		}
		item := order.Item(itemID)
		if item == nil {
			return core.ErrItemNotFound
		}
		if item.ReadyAt != nil {
			return core.ErrItemReady
		}

		now := s.nowFunc()
		if err := tx.SetItemReady(ctx, item.ID, &now); err != nil {
			return err
		}
		item.ReadyAt = &now

		ready := 0
		for _, it := range order.Items {
			if it.ReadyAt != nil {
				ready++
			}
		}

		res = dto.MarkItemReadyResult{
			Result:       dto.OK("Item marked as ready"),
			ItemID:       item.ID,
			ItemPrepTime: formatDuration(now.Sub(item.CreatedAt)),
			OrderStatus:  order.Status,
			ItemsReady:   ready,
			ItemsTotal:   len(order.Items),
		}

		if ready == len(order.Items) {
			if err := tx.UpdateOrderStatus(ctx, order.ID, models.StatusReady, &now); err != nil {
				return err
			}
			promoted = true
			res.OrderStatus = models.StatusReady
			res.OrderReadyAt = &now
			res.OrderPrepTime = formatDuration(now.Sub(order.CreatedAt))
		}
		return nil
	})
	if err != nil {
		if fr, ok := failFrom(err); ok {
			return dto.MarkItemReadyResult{Result: fr}, nil
		}
		return dto.MarkItemReadyResult{}, fmt.Errorf("mark item ready: %w", err)
	}

	if promoted {
		s.notify(ctx, core.StatusUpdateMessage{
			OrderID:     order.ID,
			DisplayID:   order.DisplayID,
			Event:       core.EventOrderReady,
			OldStatus:   models.StatusPreparing,
			NewStatus:   models.StatusReady,
			TotalAmount: order.TotalAmount.StringFixed(2),
			Timestamp:   s.nowFunc(),
		})
	}
	return res, nil
}

// UnmarkItemReady clears an item's readiness. A READY order is demoted back
// to PREPARING unconditionally, without re-checking the remaining items.
func (s *OrderService) UnmarkItemReady(ctx context.Context, orderID, itemID int64) (dto.UnmarkItemReadyResult, error) {
	var status string
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		order, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status == models.StatusCanceled {
			return core.ErrOrderCanceled
		}
		item := order.Item(itemID)
		if item == nil {
			return core.ErrItemNotFound
		}
		if item.ReadyAt == nil {
			return core.ErrItemNotReady
		}

		if err := tx.SetItemReady(ctx, item.ID, nil); err != nil {
			return err
		}

		status = order.Status
		if order.Status == models.StatusReady {
			if err := tx.UpdateOrderStatus(ctx, order.ID, models.StatusPreparing, nil); err != nil {
				return err
			}
			status = models.StatusPreparing
		}
		return nil
	})
	if err != nil {
		if fr, ok := failFrom(err); ok {
			return dto.UnmarkItemReadyResult{Result: fr}, nil
		}
		return dto.UnmarkItemReadyResult{}, fmt.Errorf("unmark item ready: %w", err)
	}

	return dto.UnmarkItemReadyResult{
		Result:      dto.OK("Item readiness cleared"),
		ItemID:      itemID,
		OrderStatus: status,
	}, nil
}

// UpdateStatus applies an externally requested transition. CANCELED is
// terminal; a transition to READY bulk-closes every remaining open item.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, req dto.UpdateStatusRequest) (dto.UpdateStatusResult, error) {
	if !core.SettableStatuses[req.Status] {
		return dto.UpdateStatusResult{Result: dto.Fail(core.CodeValidation, "Invalid status")}, nil
	}

	var (
		order   models.Order
		readyAt *time.Time
	)
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		order, err = tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status == models.StatusCanceled {
			return core.ErrOrderCanceled
		}

		if req.CashierID != nil {
			if _, err := tx.GetUser(ctx, *req.CashierID); err != nil {
				if errors.Is(err, core.ErrUserNotFound) {
					return core.ErrInvalidCashier
				}
				return err
			}
			if err := tx.SetOrderCashier(ctx, order.ID, *req.CashierID); err != nil {
				return err
			}
		}

		if req.Status == models.StatusReady && order.Status != models.StatusReady {
			now := s.nowFunc()
			readyAt = &now
			if err := tx.SetItemsReady(ctx, order.ID, now); err != nil {
				return err
			}
			return tx.UpdateOrderStatus(ctx, order.ID, models.StatusReady, &now)
		}
		return tx.UpdateOrderStatus(ctx, order.ID, req.Status, order.ReadyAt)
	})
	if err != nil {
		if fr, ok := failFrom(err); ok {
			return dto.UpdateStatusResult{Result: fr}, nil
		}
		return dto.UpdateStatusResult{}, fmt.Errorf("update status: %w", err)
	}

	if order.Status != req.Status {
		s.notify(ctx, core.StatusUpdateMessage{
			OrderID:     order.ID,
			DisplayID:   order.DisplayID,
			Event:       core.EventStatusChanged,
			OldStatus:   order.Status,
			NewStatus:   req.Status,
			TotalAmount: order.TotalAmount.StringFixed(2),
			Timestamp:   s.nowFunc(),
		})
	}
	return dto.UpdateStatusResult{
		Result:  dto.OK(fmt.Sprintf("Order status updated to %s", req.Status)),
		Status:  req.Status,
		ReadyAt: readyAt,
	}, nil
}

// MarkOrderReady is the kitchen shortcut that forces READY, stamping the
// order and every still-open item.
func (s *OrderService) MarkOrderReady(ctx context.Context, orderID int64) (dto.MarkReadyResult, error) {
	var (
		order models.Order
		now   time.Time
	)
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		order, err = tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status == models.StatusCanceled {
			return core.ErrOrderCanceled
		}
		if order.Status == models.StatusReady {
			return core.ErrOrderReady
		}

		now = s.nowFunc()
		if err := tx.SetItemsReady(ctx, order.ID, now); err != nil {
			return err
		}
		return tx.UpdateOrderStatus(ctx, order.ID, models.StatusReady, &now)
	})
	if err != nil {
		if fr, ok := failFrom(err); ok {
			return dto.MarkReadyResult{Result: fr}, nil
		}
		return dto.MarkReadyResult{}, fmt.Errorf("mark order ready: %w", err)
	}

	s.notify(ctx, core.StatusUpdateMessage{
		OrderID:     order.ID,
		DisplayID:   order.DisplayID,
		Event:       core.EventOrderReady,
		OldStatus:   order.Status,
		NewStatus:   models.StatusReady,
		TotalAmount: order.TotalAmount.StringFixed(2),
		Timestamp:   s.nowFunc(),
	})

	prep := now.Sub(order.CreatedAt)
	return dto.MarkReadyResult{
		Result:             dto.OK("Order marked as ready"),
		Status:             models.StatusReady,
		ReadyAt:            &now,
		PreparationSeconds: int64(prep.Seconds()),
		PreparationTime:    formatDuration(prep),
	}, nil
}

// MarkAsPaid flags the order paid and credits the cash register by the order
// total. Both writes share one transaction: money is never credited without
// the order being marked paid, and vice versa.
func (s *OrderService) MarkAsPaid(ctx context.Context, orderID, payerID int64) (dto.PayOrderResult, error) {
	var (
		order  models.Order
		paidAt time.Time
	)
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		order, err = tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status == models.StatusCanceled {
			return core.ErrOrderCanceled
		}
		if order.IsPaid {
			return core.ErrAlreadyPaid
		}
		if _, err := tx.GetUser(ctx, payerID); err != nil {
			return err
		}

		paidAt = s.nowFunc()
		if err := tx.MarkOrderPaid(ctx, order.ID, payerID, paidAt); err != nil {
			return err
		}

		register, err := tx.RegisterForUpdate(ctx)
		if err != nil {
			return err
		}
		return tx.UpdateRegisterBalance(ctx, register.CurrentBalance.Add(order.TotalAmount))
	})
	if err != nil {
		if fr, ok := failFrom(err); ok {
			return dto.PayOrderResult{Result: fr}, nil
		}
		return dto.PayOrderResult{}, fmt.Errorf("mark as paid: %w", err)
	}

	s.notify(ctx, core.StatusUpdateMessage{
		OrderID:     order.ID,
		DisplayID:   order.DisplayID,
		Event:       core.EventOrderPaid,
		NewStatus:   order.Status,
		TotalAmount: order.TotalAmount.StringFixed(2),
		Timestamp:   s.nowFunc(),
	})

	return dto.PayOrderResult{
		Result: dto.OK("Order marked as paid"),
		IsPaid: true,
		PaidAt: &paidAt,
	}, nil
}

// GetOrderByID returns the order with its items.
func (s *OrderService) GetOrderByID(ctx context.Context, orderID int64) (dto.OrderResult, error) {
	var order models.Order
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		order, err = tx.GetOrder(ctx, orderID)
		return err
	})
	if err != nil {
		if fr, ok := failFrom(err); ok {
			return dto.OrderResult{Result: fr}, nil
		}
		return dto.OrderResult{}, fmt.Errorf("get order: %w", err)
	}

	view := orderView(order)
	return dto.OrderResult{Result: dto.OK("OK"), Order: &view}, nil
}

// ClientDisplay builds the customer screen: the FIFO queue of preparing
// orders with readiness progress, and orders finished within the last five
// minutes. The finished list is a sliding time window, not a stored flag.
func (s *OrderService) ClientDisplay(ctx context.Context) (dto.DisplayResult, error) {
	var (
		processing []models.OrderProgress
		finished   []models.Order
	)
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		processing, err = tx.ProcessingOrders(ctx)
		if err != nil {
			return err
		}
		finished, err = tx.FinishedOrders(ctx, s.nowFunc().Add(-core.FinishedWindow))
		return err
	})
	if err != nil {
		return dto.DisplayResult{}, fmt.Errorf("client display: %w", err)
	}

	res := dto.DisplayResult{
		Result:     dto.OK("OK"),
		Processing: make([]dto.ProcessingOrder, 0, len(processing)),
		Finished:   make([]dto.FinishedOrder, 0, len(finished)),
	}
	for _, p := range processing {
		percent := 0
		if p.ItemsTotal > 0 {
			percent = p.ItemsReady * 100 / p.ItemsTotal
		}
		res.Processing = append(res.Processing, dto.ProcessingOrder{
			ID:              p.Order.ID,
			DisplayID:       p.Order.DisplayID,
			TotalAmount:     p.Order.TotalAmount.StringFixed(2),
			Status:          p.Order.Status,
			ItemsReady:      p.ItemsReady,
			ItemsTotal:      p.ItemsTotal,
			ProgressPercent: percent,
			CreatedAt:       p.Order.CreatedAt,
		})
	}
	for _, o := range finished {
		completed := o.CreatedAt
		if o.ReadyAt != nil {
			completed = *o.ReadyAt
		}
		res.Finished = append(res.Finished, dto.FinishedOrder{
			ID:          o.ID,
			DisplayID:   o.DisplayID,
			TotalAmount: o.TotalAmount.StringFixed(2),
			CompletedAt: completed,
		})
	}
	return res, nil
}

func (s *OrderService) notify(ctx context.Context, msg core.StatusUpdateMessage) {
	if s.broker == nil {
		return
	}
	if err := s.broker.PublishStatusUpdate(ctx, msg); err != nil {
		s.mylog.Action("notify_failed").Warn("Failed to publish status update", "order_id", msg.OrderID, "event", msg.Event)
	}
}

func orderTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}
	return total
}

func allReady(items []models.OrderItem) bool {
	for i := range items {
		if items[i].ReadyAt == nil {
			return false
		}
	}
	return len(items) > 0
}

func orderView(o models.Order) dto.OrderView {
	items := make([]dto.OrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemView{
			ID:       it.ID,
			Product:  it.ProductID,
			Quantity: it.Quantity,
			Price:    it.Price.StringFixed(2),
			Subtotal: it.Subtotal().StringFixed(2),
			Detail:   it.Detail,
			ReadyAt:  it.ReadyAt,
		})
	}
	return dto.OrderView{
		ID:          o.ID,
		DisplayID:   o.DisplayID,
		UserID:      o.UserID,
		CashierID:   o.CashierID,
		OrderType:   o.OrderType,
		Status:      o.Status,
		IsPaid:      o.IsPaid,
		TotalAmount: o.TotalAmount.StringFixed(2),
		PhoneNumber: o.PhoneNumber,
		Description: o.Description,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		ReadyAt:     o.ReadyAt,
		PaidAt:      o.PaidAt,
	}
}
