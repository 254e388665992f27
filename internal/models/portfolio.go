package models

import "github.com/shopspring/decimal"

// Outlook is the aggregate recommendation printed after a portfolio review
type Outlook string

const (
	OutlookHold     Outlook = "hold"
	OutlookReassess Outlook = "reassess"
)

// SymbolReview is the outcome for one symbol in a portfolio review.
// Exactly one of Insight and Err is set.
type SymbolReview struct {
	Symbol  string
	Insight *Insight
	Report  string
	Err     error
}

// PortfolioSummary aggregates the per-symbol reviews of a portfolio.
// Totals only include symbols that reviewed successfully.
type PortfolioSummary struct {
	Reviews         []SymbolReview
	TotalInvestment decimal.Decimal
	TotalPnL        decimal.Decimal
}

// ReturnPct is TotalPnL as a percentage of TotalInvestment.
// ok is false when nothing was invested.
func (s *PortfolioSummary) ReturnPct() (pct decimal.Decimal, ok bool) {
	if !s.TotalInvestment.IsPositive() {
		return decimal.Zero, false
	}
	return s.TotalPnL.Div(s.TotalInvestment).Mul(decimal.NewFromInt(100)), true
}

// Outlook recommends holding when the book is up overall, otherwise reassessing.
func (s *PortfolioSummary) Outlook() Outlook {
	if s.TotalPnL.IsPositive() {
		return OutlookHold
	}
	return OutlookReassess
}

// Failed returns the reviews that ended in an error.
func (s *PortfolioSummary) Failed() []SymbolReview {
	var out []SymbolReview
	for _, r := range s.Reviews {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
