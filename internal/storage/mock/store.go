// Package mock provides the built-in demonstration positions and quotes
package mock

import (
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/vire-review/internal/models"
)

// Store serves a fixed set of positions and quotes from memory.
type Store struct {
	models.PositionTable
	models.QuoteTable
}

// NewStore returns a store seeded with the demonstration book.
// Every call builds fresh tables, so callers never share mutable state.
func NewStore() *Store {
	return &Store{
		PositionTable: models.PositionTable{
			"AAPL": models.NewPosition("AAPL", decimal.NewFromInt(150), 100, models.AdviceBuy, decimal.NewFromInt(180)),
			"TSLA": models.NewPosition("TSLA", decimal.NewFromInt(240), 50, models.AdviceHold, decimal.NewFromInt(300)),
			"BABA": models.NewPosition("BABA", decimal.NewFromInt(100), 200, models.AdviceSell, decimal.NewFromInt(80)),
		},
		QuoteTable: models.QuoteTable{
			"AAPL": {Symbol: "AAPL", Price: decimal.NewFromInt(220)},
			"TSLA": {Symbol: "TSLA", Price: decimal.NewFromInt(180)},
			"BABA": {Symbol: "BABA", Price: decimal.NewFromInt(75)},
		},
	}
}

// Name identifies the backend.
func (s *Store) Name() string { return "mock" }
