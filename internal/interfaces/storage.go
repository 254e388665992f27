package interfaces

import "github.com/bobmcallan/vire-review/internal/models"

// PositionLookup resolves a normalized (upper-case) symbol to its position.
type PositionLookup interface {
	Position(symbol string) (models.Position, bool)
}

// QuoteLookup resolves a normalized (upper-case) symbol to its current quote.
type QuoteLookup interface {
	Quote(symbol string) (models.Quote, bool)
}

// DataStore provides read-only position and quote data.
// Implementations can be swapped (built-in mock tables, TOML data file).
type DataStore interface {
	PositionLookup
	QuoteLookup

	// Symbols lists every symbol with a stored position, sorted.
	Symbols() []string

	// Name identifies the backend for logging.
	Name() string
}
