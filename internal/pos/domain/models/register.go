package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashRegister is the single running cash balance. Exactly one row exists,
// created lazily with a zero balance on first access.
type CashRegister struct {
	ID             int64           `json:"id"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// Inkassa is one cash-withdrawal ledger entry. Immutable once written; its
// period_end anchors the start of the next reporting period.
type Inkassa struct {
	ID            int64           `json:"id"`
	CashierID     *int64          `json:"cashier_id,omitempty"`
	InkassType    string          `json:"inkass_type"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	TotalOrders   int             `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PeriodStats is the revenue snapshot for one open reporting period. The
// same computation backs both the operator preview and the figures stamped
// into the ledger entry when the period is closed.
type PeriodStats struct {
	TotalOrders       int
	PaidOrders        int
	ReadyOrders       int
	TotalRevenue      decimal.Decimal
	AverageOrderValue decimal.Decimal
	Cashiers          []CashierStat
	TopProducts       []ProductStat
	Categories        []CategoryStat
}

type CashierStat struct {
	CashierID    *int64
	CashierName  string
	OrderCount   int
	TotalRevenue decimal.Decimal
}

type ProductStat struct {
	ProductID    int64
	ProductName  string
	QuantitySold int64
	Revenue      decimal.Decimal
}

type CategoryStat struct {
	Category  string
	Revenue   decimal.Decimal
	ItemsSold int64
}

// OrderProgress annotates a preparing order with item readiness counts for
// the kitchen queue view.
type OrderProgress struct {
	Order      Order
	ItemsReady int
	ItemsTotal int
}
