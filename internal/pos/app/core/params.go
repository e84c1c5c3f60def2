package core

import "time"

const (
	// Display ids roll over a 1..100 cycle, independent of internal ids.
	MaxDisplayID = 100

	// READY orders stay on the customer display this long after completion.
	FinishedWindow = 5 * time.Minute

	// Graceful shutdown / request deadline, in seconds.
	WaitTime = 30
)

// AllowedOrderTypes is the accepted order_type set.
var AllowedOrderTypes = map[string]bool{
	"HALL":     true,
	"DELIVERY": true,
	"PICKUP":   true,
}

// SettableStatuses are the statuses accepted by update_order_status. OPEN
// and COMPLETED stay in the schema but are not reachable through the API.
var SettableStatuses = map[string]bool{
	"PREPARING": true,
	"READY":     true,
	"CANCELED":  true,
}

// AllowedInkassTypes is the accepted inkass_type set.
var AllowedInkassTypes = map[string]bool{
	"CASH":   true,
	"UZCARD": true,
	"HUMO":   true,
	"PAYME":  true,
}
