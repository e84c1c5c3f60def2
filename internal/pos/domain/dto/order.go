package dto

import "time"

type CreateOrderRequest struct {
	UserID      int64            `json:"user_id"`
	CashierID   *int64           `json:"cashier_id,omitempty"`
	OrderType   string           `json:"order_type"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Description *string          `json:"description,omitempty"`
	Items       []OrderItemInput `json:"items"`
}

type OrderItemInput struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Detail    *string `json:"detail,omitempty"`
}

type CreateOrderResult struct {
	Result
	OrderID     int64  `json:"order_id,omitempty"`
	DisplayID   int    `json:"display_id,omitempty"`
	Status      string `json:"status,omitempty"`
	TotalAmount string `json:"total_amount,omitempty"`
}

// AddItemRequest adds one product line. A nil Quantity means one; an explicit
// zero is a validation error.
type AddItemRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  *int    `json:"quantity,omitempty"`
	Detail    *string `json:"detail,omitempty"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// ItemMutationResult covers add/update/remove. OrderDeleted reports the
// distinct outcome where removing the last item deleted the whole order.
type ItemMutationResult struct {
	Result
	OrderDeleted bool   `json:"order_deleted,omitempty"`
	TotalAmount  string `json:"total_amount,omitempty"`
}

type UpdateStatusRequest struct {
	Status    string `json:"status"`
	CashierID *int64 `json:"cashier_id,omitempty"`
}

type UpdateStatusResult struct {
	Result
	Status  string     `json:"status,omitempty"`
	ReadyAt *time.Time `json:"ready_at,omitempty"`
}

type MarkItemReadyResult struct {
	Result
	ItemID        int64      `json:"item_id,omitempty"`
	ItemPrepTime  string     `json:"item_prep_time,omitempty"`
	OrderStatus   string     `json:"order_status,omitempty"`
	OrderReadyAt  *time.Time `json:"order_ready_at,omitempty"`
	OrderPrepTime string     `json:"order_prep_time,omitempty"`
	ItemsReady    int        `json:"items_ready"`
	ItemsTotal    int        `json:"items_total"`
}

type UnmarkItemReadyResult struct {
	Result
	ItemID      int64  `json:"item_id,omitempty"`
	OrderStatus string `json:"order_status,omitempty"`
}

type MarkReadyResult struct {
	Result
	Status             string     `json:"status,omitempty"`
	ReadyAt            *time.Time `json:"ready_at,omitempty"`
	PreparationSeconds int64      `json:"preparation_time_seconds,omitempty"`
	PreparationTime    string     `json:"preparation_time_formatted,omitempty"`
}

type PayOrderRequest struct {
	PayerID int64 `json:"payer_id"`
}

type PayOrderResult struct {
	Result
	IsPaid bool       `json:"is_paid"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

type OrderResult struct {
	Result
	Order *OrderView `json:"order,omitempty"`
}

type OrderView struct {
	ID          int64           `json:"id"`
	DisplayID   int             `json:"display_id"`
	UserID      int64           `json:"user_id"`
	CashierID   *int64          `json:"cashier_id,omitempty"`
	OrderType   string          `json:"order_type"`
	Status      string          `json:"status"`
	IsPaid      bool            `json:"is_paid"`
	TotalAmount string          `json:"total_amount"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Description *string         `json:"description,omitempty"`
	Items       []OrderItemView `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	ReadyAt     *time.Time      `json:"ready_at,omitempty"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
}

type OrderItemView struct {
	ID       int64      `json:"id"`
	Product  int64      `json:"product_id"`
	Quantity int        `json:"quantity"`
	Price    string     `json:"price"`
	Subtotal string     `json:"subtotal"`
	Detail   *string    `json:"detail,omitempty"`
	ReadyAt  *time.Time `json:"ready_at,omitempty"`
}

// DisplayResult feeds the customer-facing screen: orders still in
// preparation plus orders finished within the visibility window.
type DisplayResult struct {
	Result
	Processing []ProcessingOrder `json:"processing"`
	Finished   []FinishedOrder   `json:"finished"`
}

type ProcessingOrder struct {
	ID              int64     `json:"id"`
	DisplayID       int       `json:"display_id"`
	TotalAmount     string    `json:"total_amount"`
	Status          string    `json:"status"`
	ItemsReady      int       `json:"items_ready"`
	ItemsTotal      int       `json:"items_total"`
	ProgressPercent int       `json:"progress_percent"`
	CreatedAt       time.Time `json:"created_at"`
}

type FinishedOrder struct {
	ID          int64     `json:"id"`
	DisplayID   int       `json:"display_id"`
	TotalAmount string    `json:"total_amount"`
	CompletedAt time.Time `json:"completed_at"`
}
