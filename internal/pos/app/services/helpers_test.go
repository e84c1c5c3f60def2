package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smart-pos/internal/pos/app/core"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{-5 * time.Second, "0s"},
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m 0s"},
		{2*time.Minute + 5*time.Second, "2m 5s"},
		{time.Hour + 2*time.Minute + 5*time.Second, "1h 2m 5s"},
		{3 * time.Hour, "3h 0m 0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d), "formatDuration(%s)", tt.d)
	}
}

func TestFailFrom(t *testing.T) {
	res, ok := failFrom(core.ErrOrderNotFound)
	assert.True(t, ok)
	assert.Equal(t, core.CodeNotFound, res.Code)
	assert.False(t, res.Success)

	res, ok = failFrom(core.ErrOverWithdraw)
	assert.True(t, ok)
	assert.Equal(t, core.CodeInvalidAmount, res.Code)

	_, ok = failFrom(assert.AnError)
	assert.False(t, ok)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Order not found", capitalize("order not found"))
	assert.Equal(t, "Already Upper", capitalize("Already Upper"))
	assert.Equal(t, "", capitalize(""))
}
