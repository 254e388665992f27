// Package review derives profit/loss insights and advice verdicts for stock positions
package review

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/vire-review/internal/interfaces"
	"github.com/bobmcallan/vire-review/internal/models"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidData = errors.New("invalid data")
)

var hundred = decimal.NewFromInt(100)

// Verdict texts, one per advice outcome.
const (
	VerdictBuyValidated   = "✅ Advice validated: price rose after buying, the strategy worked."
	VerdictBuyUndermined  = "❌ Advice undermined: price fell after buying, the position is under water."
	VerdictSellValidated  = "✅ Advice validated: selling was right, the decline was avoided."
	VerdictSellUndermined = "❌ Advice undermined: sold too early, the price kept rising."
	VerdictHoldObserve    = "ℹ️ Keep observing: the current price move is within the holding range."
	VerdictUnknownAdvice  = "❓ Unknown advice type, no verdict available."
)

// NormalizeSymbol trims and upper-cases a symbol for lookup.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Compute derives the insight for symbol from the supplied lookups.
// It fails with ErrNotFound when either lookup lacks the symbol and with
// ErrInvalidData when the position's cost or shares are unusable.
func Compute(symbol string, positions interfaces.PositionLookup, quotes interfaces.QuoteLookup) (*models.Insight, error) {
	symbol = NormalizeSymbol(symbol)

	position, ok := positions.Position(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: no position held for %s", ErrNotFound, symbol)
	}
	quote, ok := quotes.Quote(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: no market price for %s", ErrNotFound, symbol)
	}

	if !position.Cost.Valid {
		return nil, fmt.Errorf("%w: %s cost is missing", ErrInvalidData, symbol)
	}
	cost := position.Cost.Decimal
	if !cost.IsPositive() {
		return nil, fmt.Errorf("%w: %s cost must be positive (got %s)", ErrInvalidData, symbol, cost)
	}
	if position.Shares == nil {
		return nil, fmt.Errorf("%w: %s shares is missing", ErrInvalidData, symbol)
	}
	shares := *position.Shares
	if shares < 0 {
		return nil, fmt.Errorf("%w: %s shares must not be negative (got %d)", ErrInvalidData, symbol, shares)
	}

	price := quote.Price
	profitPerShare := price.Sub(cost)
	totalPnL := profitPerShare.Mul(decimal.NewFromInt(shares))

	in := &models.Insight{
		Symbol:         symbol,
		Cost:           cost,
		Shares:         shares,
		CurrentPrice:   price,
		Advice:         position.Advice,
		Target:         position.Target,
		ProfitPerShare: profitPerShare,
		TotalPnL:       totalPnL,
		PnLPercentage:  profitPerShare.Div(cost).Mul(hundred),
		TargetGap:      price.Sub(position.Target),
		Status:         statusOf(totalPnL),
	}
	if !position.Target.IsZero() {
		progress := price.Div(position.Target).Mul(hundred)
		in.TargetProgressPct = &progress
	}
	in.VerdictKind, in.Verdict = verdictFor(position.Advice, price, cost)

	return in, nil
}

func statusOf(totalPnL decimal.Decimal) models.Status {
	switch totalPnL.Sign() {
	case 1:
		return models.StatusProfit
	case -1:
		return models.StatusLoss
	default:
		return models.StatusFlat
	}
}

// verdictFor compares advice case-sensitively; unrecognized advice never guesses.
func verdictFor(advice models.Advice, price, cost decimal.Decimal) (models.VerdictKind, string) {
	switch advice {
	case models.AdviceBuy:
		if price.GreaterThan(cost) {
			return models.VerdictValidated, VerdictBuyValidated
		}
		return models.VerdictUndermined, VerdictBuyUndermined
	case models.AdviceSell:
		if price.LessThan(cost) {
			return models.VerdictValidated, VerdictSellValidated
		}
		return models.VerdictUndermined, VerdictSellUndermined
	case models.AdviceHold:
		return models.VerdictObserve, VerdictHoldObserve
	default:
		return models.VerdictUnknown, VerdictUnknownAdvice
	}
}
