package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/pos/domain/dto"
	"smart-pos/internal/pos/domain/models"
	"smart-pos/internal/xpkg/logger"
)

func newTestInkassaService(tx *fakeTx) *InkassaService {
	return NewInkassaService(&fakeStore{tx: tx}, logger.Nop())
}

func seedCashier(tx *fakeTx) {
	tx.users[2] = models.User{ID: 2, FirstName: "Dana", Role: models.RoleCashier}
	tx.users[3] = models.User{ID: 3, FirstName: "Aziz", Role: models.RoleCustomer}
	tx.users[4] = models.User{ID: 4, FirstName: "Olim", Role: models.RoleAdmin}
}

func TestGetBalanceCreatesRegister(t *testing.T) {
	tx := newFakeTx()
	svc := newTestInkassaService(tx)

	res, err := svc.GetBalance(context.Background())
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "0.00", res.Balance)
	assert.True(t, tx.registerInit)
}

func TestPerformInkassaDefaultsToFullBalance(t *testing.T) {
	tx := newFakeTx()
	seedCashier(tx)
	tx.register = models.CashRegister{ID: 1, CurrentBalance: d("100.00"), LastUpdated: time.Now()}
	tx.registerInit = true
	svc := newTestInkassaService(tx)

	res, err := svc.PerformInkassa(context.Background(), dto.PerformInkassaRequest{CashierID: 2})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, res.Inkassa)

	assert.Equal(t, "100.00", res.Inkassa.Amount)
	assert.Equal(t, "100.00", res.Inkassa.BalanceBefore)
	assert.Equal(t, "0.00", res.Inkassa.BalanceAfter)
	assert.Equal(t, models.InkassCash, res.Inkassa.InkassType)
	assert.True(t, tx.register.CurrentBalance.IsZero())
	require.Len(t, tx.inkassas, 1)
}

func TestPerformInkassaPartialWithdrawal(t *testing.T) {
	tx := newFakeTx()
	seedCashier(tx)
	tx.register = models.CashRegister{ID: 1, CurrentBalance: d("100.00"), LastUpdated: time.Now()}
	tx.registerInit = true
	svc := newTestInkassaService(tx)

	amount := "40.00"
	res, err := svc.PerformInkassa(context.Background(), dto.PerformInkassaRequest{
		CashierID:  2,
		Amount:     &amount,
		InkassType: models.InkassUzcard,
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "40.00", res.Inkassa.Amount)
	assert.Equal(t, "60.00", res.Inkassa.BalanceAfter)
	assert.Equal(t, models.InkassUzcard, res.Inkassa.InkassType)
	assert.True(t, tx.register.CurrentBalance.Equal(d("60.00")))

	// The whole statistics period closes even for a partial withdrawal: the
	// next period starts at this entry's period_end.
	stats, err := svc.CurrentPeriodStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, res.Inkassa.PeriodEnd, stats.PeriodStart)
}

func TestPerformInkassaOverWithdrawal(t *testing.T) {
	tx := newFakeTx()
	seedCashier(tx)
	tx.register = models.CashRegister{ID: 1, CurrentBalance: d("50.00"), LastUpdated: time.Now()}
	tx.registerInit = true
	svc := newTestInkassaService(tx)

	amount := "80.00"
	res, err := svc.PerformInkassa(context.Background(), dto.PerformInkassaRequest{CashierID: 2, Amount: &amount})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, core.CodeInvalidAmount, res.Code)

	assert.True(t, tx.register.CurrentBalance.Equal(d("50.00")), "balance changed on rejected inkassa")
	assert.Empty(t, tx.inkassas)
}

func TestPerformInkassaValidation(t *testing.T) {
	negative := "-5.00"
	garbage := "ten"
	tests := []struct {
		name string
		req  dto.PerformInkassaRequest
		code string
	}{
		{"negative amount", dto.PerformInkassaRequest{CashierID: 2, Amount: &negative}, core.CodeValidation},
		{"unparseable amount", dto.PerformInkassaRequest{CashierID: 2, Amount: &garbage}, core.CodeValidation},
		{"unknown inkass type", dto.PerformInkassaRequest{CashierID: 2, InkassType: "CRYPTO"}, core.CodeValidation},
		{"customer forbidden", dto.PerformInkassaRequest{CashierID: 3}, core.CodeForbidden},
		{"unknown cashier", dto.PerformInkassaRequest{CashierID: 99}, core.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := newFakeTx()
			seedCashier(tx)
			tx.register = models.CashRegister{ID: 1, CurrentBalance: d("50.00"), LastUpdated: time.Now()}
			tx.registerInit = true
			svc := newTestInkassaService(tx)

			res, err := svc.PerformInkassa(context.Background(), tt.req)
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tt.code, res.Code)
			assert.Empty(t, tx.inkassas)
		})
	}
}

func TestPerformInkassaAdminAllowed(t *testing.T) {
	tx := newFakeTx()
	seedCashier(tx)
	tx.register = models.CashRegister{ID: 1, CurrentBalance: d("10.00"), LastUpdated: time.Now()}
	tx.registerInit = true
	svc := newTestInkassaService(tx)

	res, err := svc.PerformInkassa(context.Background(), dto.PerformInkassaRequest{CashierID: 4})
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestPeriodAnchoredToLastInkassa(t *testing.T) {
	tx := newFakeTx()
	seedCashier(tx)
	tx.register = models.CashRegister{ID: 1, CurrentBalance: d("30.00"), LastUpdated: time.Now()}
	tx.registerInit = true

	anchor := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	tx.inkassas = []models.Inkassa{{ID: 1, Amount: d("10.00"), PeriodEnd: anchor, CreatedAt: anchor}}
	svc := newTestInkassaService(tx)

	res, err := svc.PerformInkassa(context.Background(), dto.PerformInkassaRequest{CashierID: 2})
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, anchor, res.Inkassa.PeriodStart)
	assert.Equal(t, anchor, tx.gotPeriodStart)
}

func TestPeriodFallsBackToFirstOrder(t *testing.T) {
	tx := newFakeTx()
	seedCashier(tx)
	first := time.Date(2026, 8, 25, 8, 30, 0, 0, time.UTC)
	tx.firstOrderAt = &first
	svc := newTestInkassaService(tx)

	res, err := svc.CurrentPeriodStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, res.PeriodStart)
	assert.Equal(t, first, tx.gotPeriodStart)
}

func TestPeriodFallsBackToNow(t *testing.T) {
	tx := newFakeTx()
	svc := newTestInkassaService(tx)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	svc.nowFunc = func() time.Time { return now }

	res, err := svc.CurrentPeriodStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, now, res.PeriodStart)
}

func TestPerformInkassaStampsPeriodStats(t *testing.T) {
	tx := newFakeTx()
	seedCashier(tx)
	tx.register = models.CashRegister{ID: 1, CurrentBalance: d("75.00"), LastUpdated: time.Now()}
	tx.registerInit = true
	tx.stats = models.PeriodStats{
		TotalOrders:  12,
		PaidOrders:   9,
		ReadyOrders:  3,
		TotalRevenue: d("75.00"),
	}
	svc := newTestInkassaService(tx)

	res, err := svc.PerformInkassa(context.Background(), dto.PerformInkassaRequest{CashierID: 2})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 12, res.Inkassa.TotalOrders)
	assert.Equal(t, "75.00", res.Inkassa.TotalRevenue)
}

func TestHistoryLimitDefaults(t *testing.T) {
	tx := newFakeTx()
	now := time.Now()
	for i := 1; i <= 3; i++ {
		tx.inkassas = append(tx.inkassas, models.Inkassa{
			ID: int64(i), Amount: d("10.00"), CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}
	svc := newTestInkassaService(tx)

	res, err := svc.History(context.Background(), 0, -1)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, 20, tx.gotListLimit)
	assert.Equal(t, 0, tx.gotListOffset)

	// Newest first.
	require.Len(t, res.Inkassas, 3)
	assert.Equal(t, int64(3), res.Inkassas[0].ID)

	_, err = svc.History(context.Background(), 500, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, tx.gotListLimit)
}

func TestGetInkassaByID(t *testing.T) {
	tx := newFakeTx()
	tx.inkassas = []models.Inkassa{{ID: 1, Amount: d("10.00")}}
	svc := newTestInkassaService(tx)

	res, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "10.00", res.Inkassa.Amount)

	missing, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, missing.Success)
	assert.Equal(t, core.CodeNotFound, missing.Code)
}
