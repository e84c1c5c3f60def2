package core

import "errors"

// Business-rule sentinels. Services translate these into structured failure
// results; they never escape to the HTTP layer as raw errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrItemNotFound    = errors.New("order item not found")
	ErrInkassaNotFound = errors.New("inkassa not found")

	ErrInvalidCashier   = errors.New("invalid cashier")
	ErrOrderNotEditable = errors.New("cannot modify a closed or ready order")
	ErrOrderCanceled    = errors.New("order is canceled")
	ErrOrderReady       = errors.New("order is already marked as ready")
	ErrItemReady        = errors.New("item is already marked as ready")
	ErrItemNotReady     = errors.New("item is not marked as ready")
	ErrAlreadyPaid      = errors.New("order is already paid")

	ErrForbidden      = errors.New("only cashiers and admins can perform inkassa")
	ErrOverWithdraw   = errors.New("withdrawal exceeds register balance")
	ErrNegativeAmount = errors.New("amount must be positive")
)

// Result codes carried alongside the human-readable message so callers can
// branch without string-matching.
const (
	CodeNotFound      = "not_found"
	CodeValidation    = "validation_error"
	CodeInvalidState  = "invalid_state"
	CodeAlreadyDone   = "already_done"
	CodeNotReady      = "not_ready"
	CodeForbidden     = "forbidden"
	CodeInvalidAmount = "invalid_amount"
)
