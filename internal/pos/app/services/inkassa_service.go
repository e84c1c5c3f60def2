package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/pos/domain/dto"
	"smart-pos/internal/pos/domain/models"
	"smart-pos/internal/xpkg/logger"
)

// InkassaService owns the cash register and the withdrawal ledger. The
// register is a single row, locked for every mutation; periods are anchored
// by the ledger itself: each inkassa's period_end is the next period_start.
type InkassaService struct {
	store   core.Store
	mylog   logger.Logger
	nowFunc func() time.Time
}

func NewInkassaService(store core.Store, mylog logger.Logger) *InkassaService {
	return &InkassaService{
		store:   store,
		mylog:   mylog,
		nowFunc: time.Now,
	}
}

// GetBalance returns the current register balance, creating the register row
// on first access.
func (s *InkassaService) GetBalance(ctx context.Context) (dto.BalanceResult, error) {
	var register models.CashRegister
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		register, err = tx.RegisterForUpdate(ctx)
		return err
	})
	if err != nil {
		return dto.BalanceResult{}, fmt.Errorf("get balance: %w", err)
	}
	return dto.BalanceResult{
		Result:      dto.OK("OK"),
		Balance:     register.CurrentBalance.StringFixed(2),
		LastUpdated: register.LastUpdated,
	}, nil
}

// CurrentPeriodStats reports the open period: revenue, averages, cashier
// performance, top products and per-category revenue since the last inkassa.
// The same PeriodStats query backs PerformInkassa, so the preview always
// matches the figures stamped into the ledger.
func (s *InkassaService) CurrentPeriodStats(ctx context.Context) (dto.PeriodStatsResult, error) {
	var (
		register    models.CashRegister
		periodStart time.Time
		stats       models.PeriodStats
	)
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		register, err = tx.RegisterForUpdate(ctx)
		if err != nil {
			return err
		}
		periodStart, err = s.periodStart(ctx, tx)
		if err != nil {
			return err
		}
		stats, err = tx.PeriodStats(ctx, periodStart)
		return err
	})
	if err != nil {
		return dto.PeriodStatsResult{}, fmt.Errorf("period stats: %w", err)
	}

	return dto.PeriodStatsResult{
		Result:      dto.OK("OK"),
		PeriodStart: periodStart,
		CurrentTime: s.nowFunc(),
		CashRegister: dto.RegisterView{
			CurrentBalance: register.CurrentBalance.StringFixed(2),
			LastUpdated:    register.LastUpdated,
		},
		Summary:     summaryView(stats),
		Cashiers:    cashierViews(stats.Cashiers),
		TopProducts: productViews(stats.TopProducts),
		Categories:  categoryViews(stats.Categories),
	}, nil
}

// PerformInkassa withdraws cash from the register and closes the current
// statistics period. With no amount the entire balance is withdrawn. A
// partial withdrawal still closes the whole period: the remainder keeps
// accruing in the register against a now-closed period. That asymmetry is
// the historical ledger behavior and is kept as is.
func (s *InkassaService) PerformInkassa(ctx context.Context, req dto.PerformInkassaRequest) (dto.InkassaResult, error) {
	mylog := s.mylog.Action("perform_inkassa")

	inkassType := req.InkassType
	if inkassType == "" {
		inkassType = models.InkassCash
	}
	if !core.AllowedInkassTypes[inkassType] {
		return dto.InkassaResult{Result: dto.Fail(core.CodeValidation, "Invalid inkass type")}, nil
	}

	var amountReq *decimal.Decimal
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return dto.InkassaResult{Result: dto.Fail(core.CodeValidation, "Invalid amount")}, nil
		}
		amountReq = &amount
	}

	var (
		ink     models.Inkassa
		cashier models.User
	)
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		cashier, err = tx.GetUser(ctx, req.CashierID)
		if err != nil {
			return err
		}
		if cashier.Role != models.RoleCashier && cashier.Role != models.RoleAdmin {
			return core.ErrForbidden
		}

		register, err := tx.RegisterForUpdate(ctx)
		if err != nil {
			return err
		}
		periodStart, err := s.periodStart(ctx, tx)
		if err != nil {
			return err
		}
		stats, err := tx.PeriodStats(ctx, periodStart)
		if err != nil {
			return err
		}

		balanceBefore := register.CurrentBalance
		amount := balanceBefore
		if amountReq != nil {
			amount = *amountReq
		}
		if amount.GreaterThan(balanceBefore) {
			return fmt.Errorf("%w: cannot remove %s, only %s in register",
				core.ErrOverWithdraw, amount.StringFixed(2), balanceBefore.StringFixed(2))
		}
		if amount.IsNegative() {
			return core.ErrNegativeAmount
		}

		balanceAfter := balanceBefore.Sub(amount)
		now := s.nowFunc()

		ink = models.Inkassa{
			CashierID:     &cashier.ID,
			InkassType:    inkassType,
			Amount:        amount,
			BalanceBefore: balanceBefore,
			BalanceAfter:  balanceAfter,
			PeriodStart:   periodStart,
			PeriodEnd:     now,
			TotalOrders:   stats.TotalOrders,
			TotalRevenue:  stats.TotalRevenue,
			Notes:         req.Notes,
			CreatedAt:     now,
		}
		if err := tx.InsertInkassa(ctx, &ink); err != nil {
			return err
		}
		return tx.UpdateRegisterBalance(ctx, balanceAfter)
	})
	if err != nil {
		if fr, ok := failFrom(err); ok {
			return dto.InkassaResult{Result: fr}, nil
		}
		mylog.Error("Failed to perform inkassa", err)
		return dto.InkassaResult{}, fmt.Errorf("perform inkassa: %w", err)
	}

	mylog.Info("Inkassa performed",
		"inkassa_id", ink.ID,
		"cashier", cashier.FullName(),
		"amount", ink.Amount.StringFixed(2),
		"balance_after", ink.BalanceAfter.StringFixed(2),
	)

	view := inkassaView(ink)
	return dto.InkassaResult{
		Result:  dto.OK("Inkassa performed successfully"),
		Inkassa: &view,
	}, nil
}

// History lists ledger entries, newest first.
func (s *InkassaService) History(ctx context.Context, limit, offset int) (dto.InkassaHistoryResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var inkassas []models.Inkassa
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		inkassas, err = tx.ListInkassa(ctx, limit, offset)
		return err
	})
	if err != nil {
		return dto.InkassaHistoryResult{}, fmt.Errorf("inkassa history: %w", err)
	}

	views := make([]dto.InkassaView, 0, len(inkassas))
	for _, ink := range inkassas {
		views = append(views, inkassaView(ink))
	}
	return dto.InkassaHistoryResult{Result: dto.OK("OK"), Inkassas: views}, nil
}

// GetByID returns one ledger entry.
func (s *InkassaService) GetByID(ctx context.Context, id int64) (dto.InkassaResult, error) {
	var ink models.Inkassa
	err := s.store.WithTx(ctx, func(tx core.Tx) error {
		var err error
		ink, err = tx.GetInkassa(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, core.ErrInkassaNotFound) {
			return dto.InkassaResult{Result: dto.Fail(core.CodeNotFound, "Inkassa not found")}, nil
		}
		return dto.InkassaResult{}, fmt.Errorf("get inkassa: %w", err)
	}
	view := inkassaView(ink)
	return dto.InkassaResult{Result: dto.OK("OK"), Inkassa: &view}, nil
}

// periodStart resolves the open period anchor: the last inkassa's
// period_end, else the first order's creation time, else now.
func (s *InkassaService) periodStart(ctx context.Context, tx core.Tx) (time.Time, error) {
	last, ok, err := tx.LastInkassa(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return last.PeriodEnd, nil
	}
	first, ok, err := tx.FirstOrderCreatedAt(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return first, nil
	}
	return s.nowFunc(), nil
}

func summaryView(stats models.PeriodStats) dto.PeriodSummary {
	return dto.PeriodSummary{
		TotalOrders:       stats.TotalOrders,
		PaidOrders:        stats.PaidOrders,
		ReadyOrders:       stats.ReadyOrders,
		TotalRevenue:      stats.TotalRevenue.StringFixed(2),
		AverageOrderValue: stats.AverageOrderValue.StringFixed(2),
	}
}

func cashierViews(stats []models.CashierStat) []dto.CashierStat {
	views := make([]dto.CashierStat, 0, len(stats))
	for _, st := range stats {
		views = append(views, dto.CashierStat{
			CashierID:    st.CashierID,
			CashierName:  st.CashierName,
			OrderCount:   st.OrderCount,
			TotalRevenue: st.TotalRevenue.StringFixed(2),
		})
	}
	return views
}

func productViews(stats []models.ProductStat) []dto.ProductStat {
	views := make([]dto.ProductStat, 0, len(stats))
	for _, st := range stats {
		views = append(views, dto.ProductStat{
			ProductID:    st.ProductID,
			ProductName:  st.ProductName,
			QuantitySold: st.QuantitySold,
			Revenue:      st.Revenue.StringFixed(2),
		})
	}
	return views
}

func categoryViews(stats []models.CategoryStat) []dto.CategoryStat {
	views := make([]dto.CategoryStat, 0, len(stats))
	for _, st := range stats {
		views = append(views, dto.CategoryStat{
			Category:  st.Category,
			Revenue:   st.Revenue.StringFixed(2),
			ItemsSold: st.ItemsSold,
		})
	}
	return views
}

func inkassaView(ink models.Inkassa) dto.InkassaView {
	return dto.InkassaView{
		ID:            ink.ID,
		CashierID:     ink.CashierID,
		InkassType:    ink.InkassType,
		Amount:        ink.Amount.StringFixed(2),
		BalanceBefore: ink.BalanceBefore.StringFixed(2),
		BalanceAfter:  ink.BalanceAfter.StringFixed(2),
		PeriodStart:   ink.PeriodStart,
		PeriodEnd:     ink.PeriodEnd,
		TotalOrders:   ink.TotalOrders,
		TotalRevenue:  ink.TotalRevenue.StringFixed(2),
		Notes:         ink.Notes,
		CreatedAt:     ink.CreatedAt,
	}
}
