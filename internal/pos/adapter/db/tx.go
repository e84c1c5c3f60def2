package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/pos/domain/models"
)

// posTx implements core.Tx over one pgx transaction. Row-not-found is mapped
// to the core sentinels so the services never see pgx.ErrNoRows.
type posTx struct {
	tx pgx.Tx
}

func (t *posTx) GetUser(ctx context.Context, id int64) (models.User, error) {
	q := `SELECT id, first_name, COALESCE(last_name, ''), role FROM users WHERE id = $1`

	var u models.User
	err := t.tx.QueryRow(ctx, q, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, core.ErrUserNotFound
	}
	return u, err
}

func (t *posTx) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	q := `SELECT id, name, category_id, price FROM products WHERE id = $1`

	var p models.Product
	err := t.tx.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.CategoryID, &p.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, core.ErrProductNotFound
	}
	return p, err
}

func (t *posTx) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	q1 := `
		SELECT id, display_id, user_id, cashier_id, order_type, status,
		       is_paid, total_amount, phone_number, description,
		       created_at, updated_at, ready_at, paid_at
		FROM orders
		WHERE id = $1`

	var o models.Order
	err := t.tx.QueryRow(ctx, q1, id).Scan(
		&o.ID, &o.DisplayID, &o.UserID, &o.CashierID, &o.OrderType, &o.Status,
		&o.IsPaid, &o.TotalAmount, &o.PhoneNumber, &o.Description,
		&o.CreatedAt, &o.UpdatedAt, &o.ReadyAt, &o.PaidAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Order{}, core.ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	q2 := `
		SELECT id, order_id, product_id, quantity, price, detail, ready_at, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := t.tx.Query(ctx, q2, id)
	if err != nil {
		return models.Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity,
			&it.Price, &it.Detail, &it.ReadyAt, &it.CreatedAt); err != nil {
			return models.Order{}, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

// LastDisplayID locks the most recently created order row so two concurrent
// creations never compute the same next display id.
func (t *posTx) LastDisplayID(ctx context.Context) (int, bool, error) {
	q := `SELECT display_id FROM orders ORDER BY id DESC LIMIT 1 FOR UPDATE`

	var id int
	err := t.tx.QueryRow(ctx, q).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (t *posTx) InsertOrder(ctx context.Context, o *models.Order) error {
	q := `
		INSERT INTO orders (
			display_id, user_id, cashier_id, order_type, status,
			is_paid, total_amount, phone_number, description,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id`

	return t.tx.QueryRow(ctx, q,
		o.DisplayID, o.UserID, o.CashierID, o.OrderType, o.Status,
		o.IsPaid, o.TotalAmount, o.PhoneNumber, o.Description, o.CreatedAt,
	).Scan(&o.ID)
}

func (t *posTx) DeleteOrder(ctx context.Context, orderID int64) error {
	q := `DELETE FROM orders WHERE id = $1`

	_, err := t.tx.Exec(ctx, q, orderID)
	return err
}

func (t *posTx) UpdateOrderStatus(ctx context.Context, orderID int64, status string, readyAt *time.Time) error {
	q := `UPDATE orders SET status = $2, ready_at = $3, updated_at = now() WHERE id = $1`

	tag, err := t.tx.Exec(ctx, q, orderID, status, readyAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrOrderNotFound
	}
	return nil
}

func (t *posTx) UpdateOrderTotal(ctx context.Context, orderID int64, total decimal.Decimal) error {
	q := `UPDATE orders SET total_amount = $2, updated_at = now() WHERE id = $1`

	tag, err := t.tx.Exec(ctx, q, orderID, total)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrOrderNotFound
	}
	return nil
}

func (t *posTx) SetOrderCashier(ctx context.Context, orderID, cashierID int64) error {
	q := `UPDATE orders SET cashier_id = $2, updated_at = now() WHERE id = $1`

	_, err := t.tx.Exec(ctx, q, orderID, cashierID)
	return err
}

func (t *posTx) MarkOrderPaid(ctx context.Context, orderID, cashierID int64, at time.Time) error {
	q := `
		UPDATE orders
		SET is_paid = TRUE, paid_at = $3, cashier_id = $2, updated_at = now()
		WHERE id = $1 AND is_paid = FALSE`

	tag, err := t.tx.Exec(ctx, q, orderID, cashierID, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrAlreadyPaid
	}
	return nil
}

func (t *posTx) InsertItem(ctx context.Context, it *models.OrderItem) error {
	q := `
		INSERT INTO order_items (order_id, product_id, quantity, price, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	return t.tx.QueryRow(ctx, q,
		it.OrderID, it.ProductID, it.Quantity, it.Price, it.Detail, it.CreatedAt,
	).Scan(&it.ID)
}

func (t *posTx) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	q := `UPDATE order_items SET quantity = $2 WHERE id = $1`

	tag, err := t.tx.Exec(ctx, q, itemID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrItemNotFound
	}
	return nil
}

func (t *posTx) SetItemReady(ctx context.Context, itemID int64, at *time.Time) error {
	q := `UPDATE order_items SET ready_at = $2 WHERE id = $1`

	tag, err := t.tx.Exec(ctx, q, itemID, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrItemNotFound
	}
	return nil
}

// SetItemsReady bulk-closes every item of the order that is still open.
func (t *posTx) SetItemsReady(ctx context.Context, orderID int64, at time.Time) error {
	q := `UPDATE order_items SET ready_at = $2 WHERE order_id = $1 AND ready_at IS NULL`

	_, err := t.tx.Exec(ctx, q, orderID, at)
	return err
}

func (t *posTx) DeleteItem(ctx context.Context, itemID int64) error {
	q := `DELETE FROM order_items WHERE id = $1`

	tag, err := t.tx.Exec(ctx, q, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrItemNotFound
	}
	return nil
}

// ProcessingOrders returns the FIFO kitchen queue: preparing orders oldest
// first, annotated with item readiness counts.
func (t *posTx) ProcessingOrders(ctx context.Context) ([]models.OrderProgress, error) {
	q := `
		SELECT o.id, o.display_id, o.status, o.total_amount, o.created_at,
		       COUNT(i.id) FILTER (WHERE i.ready_at IS NOT NULL),
		       COUNT(i.id)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = 'PREPARING'
		GROUP BY o.id
		ORDER BY o.created_at ASC`

	rows, err := t.tx.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.OrderProgress
	for rows.Next() {
		var p models.OrderProgress
		if err := rows.Scan(&p.Order.ID, &p.Order.DisplayID, &p.Order.Status,
			&p.Order.TotalAmount, &p.Order.CreatedAt, &p.ItemsReady, &p.ItemsTotal); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// FinishedOrders returns READY orders completed after the cutoff, newest
// first.
func (t *posTx) FinishedOrders(ctx context.Context, since time.Time) ([]models.Order, error) {
	q := `
		SELECT id, display_id, status, total_amount, created_at, ready_at
		FROM orders
		WHERE status = 'READY' AND ready_at >= $1
		ORDER BY ready_at DESC`

	rows, err := t.tx.Query(ctx, q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.DisplayID, &o.Status,
			&o.TotalAmount, &o.CreatedAt, &o.ReadyAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

// RegisterForUpdate locks the register row, creating it with a zero balance
// on first access.
func (t *posTx) RegisterForUpdate(ctx context.Context) (models.CashRegister, error) {
	q0 := `
		INSERT INTO cash_register (id, current_balance, last_updated)
		VALUES (1, 0, now())
		ON CONFLICT (id) DO NOTHING`
	if _, err := t.tx.Exec(ctx, q0); err != nil {
		return models.CashRegister{}, err
	}

	q1 := `SELECT id, current_balance, last_updated FROM cash_register WHERE id = 1 FOR UPDATE`

	var r models.CashRegister
	err := t.tx.QueryRow(ctx, q1).Scan(&r.ID, &r.CurrentBalance, &r.LastUpdated)
	return r, err
}

func (t *posTx) UpdateRegisterBalance(ctx context.Context, balance decimal.Decimal) error {
	q := `UPDATE cash_register SET current_balance = $1, last_updated = now() WHERE id = 1`

	_, err := t.tx.Exec(ctx, q, balance)
	return err
}

func (t *posTx) LastInkassa(ctx context.Context) (models.Inkassa, bool, error) {
	q := `
		SELECT id, cashier_id, inkass_type, amount, balance_before, balance_after,
		       period_start, period_end, total_orders, total_revenue, notes, created_at
		FROM inkassas
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	ink, err := scanInkassa(t.tx.QueryRow(ctx, q))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Inkassa{}, false, nil
	}
	if err != nil {
		return models.Inkassa{}, false, err
	}
	return ink, true, nil
}

func (t *posTx) FirstOrderCreatedAt(ctx context.Context) (time.Time, bool, error) {
	q := `SELECT created_at FROM orders ORDER BY created_at ASC LIMIT 1`

	var at time.Time
	err := t.tx.QueryRow(ctx, q).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

// PeriodStats aggregates the open period over orders updated since
// period_start that are paid or ready.
func (t *posTx) PeriodStats(ctx context.Context, periodStart time.Time) (models.PeriodStats, error) {
	var stats models.PeriodStats

	// Query 1: summary figures.
	q1 := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_paid),
		       COUNT(*) FILTER (WHERE status = 'READY'),
		       COALESCE(SUM(total_amount), 0),
		       COALESCE(AVG(total_amount), 0)
		FROM orders
		WHERE (is_paid OR status = 'READY') AND updated_at >= $1`
	err := t.tx.QueryRow(ctx, q1, periodStart).Scan(
		&stats.TotalOrders, &stats.PaidOrders, &stats.ReadyOrders,
		&stats.TotalRevenue, &stats.AverageOrderValue,
	)
	if err != nil {
		return models.PeriodStats{}, err
	}

	// Query 2: per-cashier performance.
	q2 := `
		SELECT o.cashier_id,
		       COALESCE(u.first_name || ' ' || COALESCE(u.last_name, ''), 'Unknown'),
		       COUNT(o.id),
		       COALESCE(SUM(o.total_amount), 0)
		FROM orders o
		LEFT JOIN users u ON u.id = o.cashier_id
		WHERE (o.is_paid OR o.status = 'READY') AND o.updated_at >= $1
		GROUP BY o.cashier_id, u.first_name, u.last_name
		ORDER BY COUNT(o.id) DESC`
	rows, err := t.tx.Query(ctx, q2, periodStart)
	if err != nil {
		return models.PeriodStats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var st models.CashierStat
		if err := rows.Scan(&st.CashierID, &st.CashierName, &st.OrderCount, &st.TotalRevenue); err != nil {
			return models.PeriodStats{}, err
		}
		stats.Cashiers = append(stats.Cashiers, st)
	}
	if err := rows.Err(); err != nil {
		return models.PeriodStats{}, err
	}

	// Query 3: top 10 products by quantity sold.
	q3 := `
		SELECT i.product_id, p.name,
		       SUM(i.quantity),
		       COALESCE(SUM(i.price * i.quantity), 0)
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		JOIN orders o ON o.id = i.order_id
		WHERE (o.is_paid OR o.status = 'READY') AND o.updated_at >= $1
		GROUP BY i.product_id, p.name
		ORDER BY SUM(i.quantity) DESC
		LIMIT 10`
	rows, err = t.tx.Query(ctx, q3, periodStart)
	if err != nil {
		return models.PeriodStats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var st models.ProductStat
		if err := rows.Scan(&st.ProductID, &st.ProductName, &st.QuantitySold, &st.Revenue); err != nil {
			return models.PeriodStats{}, err
		}
		stats.TopProducts = append(stats.TopProducts, st)
	}
	if err := rows.Err(); err != nil {
		return models.PeriodStats{}, err
	}

	// Query 4: revenue per category.
	q4 := `
		SELECT c.name,
		       COALESCE(SUM(i.price * i.quantity), 0),
		       SUM(i.quantity)
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		JOIN categories c ON c.id = p.category_id
		JOIN orders o ON o.id = i.order_id
		WHERE (o.is_paid OR o.status = 'READY') AND o.updated_at >= $1
		GROUP BY c.name
		ORDER BY SUM(i.price * i.quantity) DESC`
	rows, err = t.tx.Query(ctx, q4, periodStart)
	if err != nil {
		return models.PeriodStats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var st models.CategoryStat
		if err := rows.Scan(&st.Category, &st.Revenue, &st.ItemsSold); err != nil {
			return models.PeriodStats{}, err
		}
		stats.Categories = append(stats.Categories, st)
	}
	return stats, rows.Err()
}

func (t *posTx) InsertInkassa(ctx context.Context, ink *models.Inkassa) error {
	q := `
		INSERT INTO inkassas (
			cashier_id, inkass_type, amount, balance_before, balance_after,
			period_start, period_end, total_orders, total_revenue, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	return t.tx.QueryRow(ctx, q,
		ink.CashierID, ink.InkassType, ink.Amount, ink.BalanceBefore, ink.BalanceAfter,
		ink.PeriodStart, ink.PeriodEnd, ink.TotalOrders, ink.TotalRevenue, ink.Notes, ink.CreatedAt,
	).Scan(&ink.ID)
}

func (t *posTx) ListInkassa(ctx context.Context, limit, offset int) ([]models.Inkassa, error) {
	q := `
		SELECT id, cashier_id, inkass_type, amount, balance_before, balance_after,
		       period_start, period_end, total_orders, total_revenue, notes, created_at
		FROM inkassas
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := t.tx.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Inkassa
	for rows.Next() {
		ink, err := scanInkassa(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, ink)
	}
	return result, rows.Err()
}

func (t *posTx) GetInkassa(ctx context.Context, id int64) (models.Inkassa, error) {
	q := `
		SELECT id, cashier_id, inkass_type, amount, balance_before, balance_after,
		       period_start, period_end, total_orders, total_revenue, notes, created_at
		FROM inkassas
		WHERE id = $1`

	ink, err := scanInkassa(t.tx.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Inkassa{}, core.ErrInkassaNotFound
	}
	return ink, err
}

func scanInkassa(row pgx.Row) (models.Inkassa, error) {
	var ink models.Inkassa
	err := row.Scan(
		&ink.ID, &ink.CashierID, &ink.InkassType, &ink.Amount,
		&ink.BalanceBefore, &ink.BalanceAfter, &ink.PeriodStart, &ink.PeriodEnd,
		&ink.TotalOrders, &ink.TotalRevenue, &ink.Notes, &ink.CreatedAt,
	)
	return ink, err
}
