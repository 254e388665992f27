// Package models defines data structures for vire-review
package models

import "github.com/shopspring/decimal"

// Advice is the historical recommendation recorded against a position.
// Values outside the known set are kept verbatim and reviewed as unknown.
type Advice string

const (
	AdviceBuy  Advice = "BUY"
	AdviceSell Advice = "SELL"
	AdviceHold Advice = "HOLD"
)

// Position is a held quantity of a symbol with its acquisition cost,
// historical advice and target price.
// Cost and Shares are optional so a record that omits them can be told
// apart from one that holds an explicit zero.
type Position struct {
	Symbol string              `json:"symbol"`
	Cost   decimal.NullDecimal `json:"cost"`
	Shares *int64              `json:"shares"`
	Advice Advice              `json:"advice"`
	Target decimal.Decimal     `json:"target"`
}

// NewPosition builds a fully populated position.
func NewPosition(symbol string, cost decimal.Decimal, shares int64, advice Advice, target decimal.Decimal) Position {
	return Position{
		Symbol: symbol,
		Cost:   decimal.NewNullDecimal(cost),
		Shares: &shares,
		Advice: advice,
		Target: target,
	}
}

// Quote is the current market price for a symbol.
type Quote struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}
