package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. OPEN and COMPLETED exist in the schema for compatibility
// with older data but no operation produces them; the lifecycle moves among
// PREPARING, READY and CANCELED only.
const (
	StatusOpen      = "OPEN"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusCompleted = "COMPLETED"
	StatusCanceled  = "CANCELED"
)

// Order types.
const (
	TypeHall     = "HALL"
	TypeDelivery = "DELIVERY"
	TypePickup   = "PICKUP"
)

// User roles.
const (
	RoleAdmin    = "ADMIN"
	RoleCashier  = "CASHIER"
	RoleChef     = "CHEF"
	RoleCustomer = "CUSTOMER"
)

// Inkassa types.
const (
	InkassCash   = "CASH"
	InkassUzcard = "UZCARD"
	InkassHumo   = "HUMO"
	InkassPayme  = "PAYME"
)

type Order struct {
	ID          int64           `json:"id"`
	DisplayID   int             `json:"display_id"`
	UserID      int64           `json:"user_id"`
	CashierID   *int64          `json:"cashier_id,omitempty"`
	OrderType   string          `json:"order_type"`
	Status      string          `json:"status"`
	IsPaid      bool            `json:"is_paid"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	ReadyAt     *time.Time      `json:"ready_at,omitempty"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	Items       []OrderItem     `json:"items,omitempty"`
}

// Item returns the item with the given id, or nil.
func (o *Order) Item(itemID int64) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i]
		}
	}
	return nil
}

// UnreadyItemForProduct returns an existing not-yet-ready line for the
// product, or nil. Used to merge repeated adds into one row.
func (o *Order) UnreadyItemForProduct(productID int64) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ProductID == productID && o.Items[i].ReadyAt == nil {
			return &o.Items[i]
		}
	}
	return nil
}

type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Detail    *string         `json:"detail,omitempty"`
	ReadyAt   *time.Time      `json:"ready_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Subtotal is price x quantity at the captured price snapshot.
func (it *OrderItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	CategoryID int64           `json:"category_id"`
	Price      decimal.Decimal `json:"price"`
}
