package models

import "github.com/shopspring/decimal"

// Status is the coarse profit/loss classification of a position's total PnL
type Status string

const (
	StatusProfit Status = "profit"
	StatusLoss   Status = "loss"
	StatusFlat   Status = "flat"
)

// VerdictKind classifies how the historical advice held up against the current price
type VerdictKind string

const (
	VerdictValidated  VerdictKind = "validated"
	VerdictUndermined VerdictKind = "undermined"
	VerdictObserve    VerdictKind = "observe"
	VerdictUnknown    VerdictKind = "unknown"
)

// Insight is the derived profit/loss and advice verdict for one symbol.
// TargetProgressPct is nil when the position has a zero target.
type Insight struct {
	Symbol            string
	Cost              decimal.Decimal
	Shares            int64
	CurrentPrice      decimal.Decimal
	Advice            Advice
	Target            decimal.Decimal
	ProfitPerShare    decimal.Decimal
	TotalPnL          decimal.Decimal
	PnLPercentage     decimal.Decimal
	TargetGap         decimal.Decimal
	TargetProgressPct *decimal.Decimal
	Status            Status
	VerdictKind       VerdictKind
	Verdict           string
}

// Investment returns the capital committed to the position (cost * shares).
func (i *Insight) Investment() decimal.Decimal {
	return i.Cost.Mul(decimal.NewFromInt(i.Shares))
}

// ReviewResult is the structured review returned to tool callers:
// the insight flattened to JSON-friendly numbers plus the rendered report.
type ReviewResult struct {
	Symbol            string      `json:"symbol"`
	Cost              float64     `json:"cost"`
	Shares            int64       `json:"shares"`
	CurrentPrice      float64     `json:"current_price"`
	Advice            Advice      `json:"advice"`
	Target            float64     `json:"target"`
	ProfitPerShare    float64     `json:"profit_per_share"`
	TotalPnL          float64     `json:"total_pnl"`
	PnLPercentage     float64     `json:"pnl_percentage"`
	TargetGap         float64     `json:"target_gap"`
	TargetProgressPct *float64    `json:"target_progress_pct"`
	Status            Status      `json:"status"`
	VerdictKind       VerdictKind `json:"verdict_kind"`
	Verdict           string      `json:"verdict"`
	Report            string      `json:"report"`
}

// NewReviewResult flattens an insight and attaches its rendered report.
func NewReviewResult(in *Insight, report string) *ReviewResult {
	r := &ReviewResult{
		Symbol:         in.Symbol,
		Cost:           in.Cost.InexactFloat64(),
		Shares:         in.Shares,
		CurrentPrice:   in.CurrentPrice.InexactFloat64(),
		Advice:         in.Advice,
		Target:         in.Target.InexactFloat64(),
		ProfitPerShare: in.ProfitPerShare.InexactFloat64(),
		TotalPnL:       in.TotalPnL.InexactFloat64(),
		PnLPercentage:  in.PnLPercentage.Round(4).InexactFloat64(),
		TargetGap:      in.TargetGap.InexactFloat64(),
		Status:         in.Status,
		VerdictKind:    in.VerdictKind,
		Verdict:        in.Verdict,
		Report:         report,
	}
	if in.TargetProgressPct != nil {
		v := in.TargetProgressPct.Round(4).InexactFloat64()
		r.TargetProgressPct = &v
	}
	return r
}
