package review

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/vire-review/internal/common"
	"github.com/bobmcallan/vire-review/internal/models"
	"github.com/bobmcallan/vire-review/internal/storage/mock"
)

func newTestService() (*Service, *mock.Store) {
	store := mock.NewStore()
	return NewService(store, common.NewSilentLogger()), store
}

func TestService_ReviewStructured(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.ReviewStructured(context.Background(), "aapl")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", result.Symbol)
	assert.Equal(t, models.StatusProfit, result.Status)
	assert.Equal(t, 7000.0, result.TotalPnL)
	assert.Equal(t, 150.0, result.Cost)
	assert.Equal(t, int64(100), result.Shares)
	assert.InDelta(t, 46.67, result.PnLPercentage, 0.01)
	require.NotNil(t, result.TargetProgressPct)
	assert.Contains(t, result.Report, "AAPL")
}

func TestService_ReviewStructured_SellVerdict(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.ReviewStructured(context.Background(), "BABA")
	require.NoError(t, err)

	assert.Equal(t, models.VerdictValidated, result.VerdictKind)
	assert.Equal(t, models.StatusLoss, result.Status)
}

func TestService_ReviewText(t *testing.T) {
	svc, _ := newTestService()

	report, err := svc.ReviewText(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.Contains(t, report, "TSLA")
	assert.Contains(t, report, "PnL")

	_, err = svc.ReviewText(context.Background(), "MSFT")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestService_AnalyzePortfolio_ContinuesPastFailures(t *testing.T) {
	svc, store := newTestService()
	store.PositionTable["ZERO"] = models.NewPosition("ZERO", decimal.Zero, 10, models.AdviceBuy, decimal.NewFromInt(10))
	store.QuoteTable["ZERO"] = models.Quote{Symbol: "ZERO", Price: decimal.NewFromFloat(0.1)}

	summary := svc.AnalyzePortfolio(context.Background(), []string{"ZERO", "AAPL", "MSFT"})

	require.Len(t, summary.Reviews, 3)
	assert.True(t, errors.Is(summary.Reviews[0].Err, ErrInvalidData))
	assert.NoError(t, summary.Reviews[1].Err)
	assert.True(t, errors.Is(summary.Reviews[2].Err, ErrNotFound))
	assert.Len(t, summary.Failed(), 2)

	assert.True(t, summary.TotalInvestment.Equal(decimal.NewFromInt(15000)), "investment = %s", summary.TotalInvestment)
	assert.True(t, summary.TotalPnL.Equal(decimal.NewFromInt(7000)), "pnl = %s", summary.TotalPnL)
	assert.Equal(t, models.OutlookHold, summary.Outlook())
}

func TestService_AnalyzePortfolio_Totals(t *testing.T) {
	svc, _ := newTestService()

	summary := svc.AnalyzePortfolio(context.Background(), []string{"AAPL", "TSLA", "BABA"})

	// 15000 + 12000 + 20000 invested; 7000 - 3000 - 5000 PnL
	assert.True(t, summary.TotalInvestment.Equal(decimal.NewFromInt(47000)))
	assert.True(t, summary.TotalPnL.Equal(decimal.NewFromInt(-1000)))
	assert.Equal(t, models.OutlookReassess, summary.Outlook())

	pct, ok := summary.ReturnPct()
	require.True(t, ok)
	assert.Equal(t, "-2.13", pct.StringFixed(2))
}

func TestService_Symbols(t *testing.T) {
	svc, _ := newTestService()
	assert.Equal(t, []string{"AAPL", "BABA", "TSLA"}, svc.Symbols(context.Background()))
}
