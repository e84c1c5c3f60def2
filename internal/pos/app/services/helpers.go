package services

import (
	"errors"
	"fmt"
	"time"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/pos/domain/dto"
)

// failFrom maps a business-rule sentinel to a structured failure result.
// Infrastructure errors are not mapped and keep propagating.
func failFrom(err error) (dto.Result, bool) {
	switch {
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrProductNotFound),
		errors.Is(err, core.ErrOrderNotFound),
		errors.Is(err, core.ErrItemNotFound),
		errors.Is(err, core.ErrInkassaNotFound):
		return dto.Fail(core.CodeNotFound, capitalize(err.Error())), true
	case errors.Is(err, core.ErrInvalidCashier),
		errors.Is(err, core.ErrNegativeAmount):
		return dto.Fail(core.CodeValidation, capitalize(err.Error())), true
	case errors.Is(err, core.ErrOrderNotEditable),
		errors.Is(err, core.ErrOrderCanceled),
		errors.Is(err, core.ErrOrderReady):
		return dto.Fail(core.CodeInvalidState, capitalize(err.Error())), true
	case errors.Is(err, core.ErrItemReady),
		errors.Is(err, core.ErrAlreadyPaid):
		return dto.Fail(core.CodeAlreadyDone, capitalize(err.Error())), true
	case errors.Is(err, core.ErrItemNotReady):
		return dto.Fail(core.CodeNotReady, capitalize(err.Error())), true
	case errors.Is(err, core.ErrForbidden):
		return dto.Fail(core.CodeForbidden, capitalize(err.Error())), true
	case errors.Is(err, core.ErrOverWithdraw):
		return dto.Fail(core.CodeInvalidAmount, capitalize(err.Error())), true
	}
	return dto.Result{}, false
}

// formatDuration renders a preparation time as "{h}h {m}m {s}s", dropping
// leading zero units: 1h 2m 5s, 2m 5s, 59s.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
