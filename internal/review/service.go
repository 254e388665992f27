package review

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/vire-review/internal/common"
	"github.com/bobmcallan/vire-review/internal/interfaces"
	"github.com/bobmcallan/vire-review/internal/models"
)

// Service runs reviews against an injected data store.
type Service struct {
	store  interfaces.DataStore
	logger *common.Logger
}

// NewService creates a review service over store.
func NewService(store interfaces.DataStore, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Symbols lists every symbol the store holds a position for.
func (s *Service) Symbols(_ context.Context) []string {
	return s.store.Symbols()
}

// Insight computes the insight for a single symbol.
func (s *Service) Insight(_ context.Context, symbol string) (*models.Insight, error) {
	return Compute(symbol, s.store, s.store)
}

// ReviewText returns the plain-text review report for symbol.
func (s *Service) ReviewText(ctx context.Context, symbol string) (string, error) {
	in, err := s.Insight(ctx, symbol)
	if err != nil {
		return "", err
	}
	return RenderReport(in), nil
}

// ReviewStructured returns the insight fields together with the rendered report.
func (s *Service) ReviewStructured(ctx context.Context, symbol string) (*models.ReviewResult, error) {
	in, err := s.Insight(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return models.NewReviewResult(in, RenderReport(in)), nil
}

// AnalyzePortfolio reviews each symbol in turn. A failing symbol is recorded
// with its error and does not stop the remaining symbols; totals only cover
// the symbols that succeeded.
func (s *Service) AnalyzePortfolio(ctx context.Context, symbols []string) *models.PortfolioSummary {
	summary := &models.PortfolioSummary{
		Reviews:         make([]models.SymbolReview, 0, len(symbols)),
		TotalInvestment: decimal.Zero,
		TotalPnL:        decimal.Zero,
	}

	for _, symbol := range symbols {
		in, err := s.Insight(ctx, symbol)
		if err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Portfolio review skipped symbol")
			summary.Reviews = append(summary.Reviews, models.SymbolReview{Symbol: symbol, Err: err})
			continue
		}

		summary.Reviews = append(summary.Reviews, models.SymbolReview{
			Symbol:  in.Symbol,
			Insight: in,
			Report:  RenderReport(in),
		})
		summary.TotalInvestment = summary.TotalInvestment.Add(in.Investment())
		summary.TotalPnL = summary.TotalPnL.Add(in.TotalPnL)
	}

	s.logger.Debug().
		Int("symbols", len(symbols)).
		Int("failed", len(summary.Failed())).
		Str("total_pnl", summary.TotalPnL.String()).
		Msg("Portfolio review complete")

	return summary
}
