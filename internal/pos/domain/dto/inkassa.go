package dto

import "time"

type BalanceResult struct {
	Result
	Balance     string    `json:"balance"`
	LastUpdated time.Time `json:"last_updated"`
}

type PeriodStatsResult struct {
	Result
	PeriodStart  time.Time      `json:"period_start"`
	CurrentTime  time.Time      `json:"current_time"`
	CashRegister RegisterView   `json:"cash_register"`
	Summary      PeriodSummary  `json:"summary"`
	Cashiers     []CashierStat  `json:"cashier_performance"`
	TopProducts  []ProductStat  `json:"top_products"`
	Categories   []CategoryStat `json:"category_revenue"`
}

type RegisterView struct {
	CurrentBalance string    `json:"current_balance"`
	LastUpdated    time.Time `json:"last_updated"`
}

type PeriodSummary struct {
	TotalOrders       int    `json:"total_orders"`
	PaidOrders        int    `json:"paid_orders"`
	ReadyOrders       int    `json:"ready_orders"`
	TotalRevenue      string `json:"total_revenue"`
	AverageOrderValue string `json:"average_order_value"`
}

type CashierStat struct {
	CashierID    *int64 `json:"cashier_id"`
	CashierName  string `json:"cashier_name"`
	OrderCount   int    `json:"order_count"`
	TotalRevenue string `json:"total_revenue"`
}

type ProductStat struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	QuantitySold int64  `json:"quantity_sold"`
	Revenue      string `json:"revenue"`
}

type CategoryStat struct {
	Category  string `json:"category"`
	Revenue   string `json:"revenue"`
	ItemsSold int64  `json:"items_sold"`
}

type PerformInkassaRequest struct {
	CashierID  int64   `json:"cashier_id"`
	Amount     *string `json:"amount,omitempty"`
	InkassType string  `json:"inkass_type,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type InkassaResult struct {
	Result
	Inkassa *InkassaView `json:"inkassa,omitempty"`
}

type InkassaView struct {
	ID            int64      `json:"id"`
	CashierID     *int64     `json:"cashier_id,omitempty"`
	InkassType    string     `json:"inkass_type"`
	Amount        string     `json:"amount_removed"`
	BalanceBefore string     `json:"balance_before"`
	BalanceAfter  string     `json:"balance_after"`
	PeriodStart   time.Time  `json:"period_start"`
	PeriodEnd     time.Time  `json:"period_end"`
	TotalOrders   int        `json:"total_orders"`
	TotalRevenue  string     `json:"total_revenue"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type InkassaHistoryResult struct {
	Result
	Inkassas []InkassaView `json:"inkassas"`
}
