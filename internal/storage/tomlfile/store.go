// Package tomlfile loads positions and quotes from a TOML data file
package tomlfile

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/bobmcallan/vire-review/internal/common"
	"github.com/bobmcallan/vire-review/internal/models"
)

// positionRecord mirrors a [[positions]] entry. Pointer fields stay nil
// when the key is absent so the calculator can reject the record.
type positionRecord struct {
	Symbol string   `toml:"symbol"`
	Cost   *float64 `toml:"cost"`
	Shares *int64   `toml:"shares"`
	Advice string   `toml:"advice"`
	Target float64  `toml:"target"`
}

type quoteRecord struct {
	Symbol string  `toml:"symbol"`
	Price  float64 `toml:"price"`
}

type dataFile struct {
	Positions []positionRecord `toml:"positions"`
	Quotes    []quoteRecord    `toml:"quotes"`
}

// Store serves positions and quotes decoded from a TOML file.
// It is read-only after Load returns.
type Store struct {
	models.PositionTable
	models.QuoteTable
	path string
}

// Load reads and decodes the data file at path.
func Load(path string, logger *common.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	s.path = path

	logger.Info().
		Str("path", path).
		Int("positions", len(s.PositionTable)).
		Int("quotes", len(s.QuoteTable)).
		Msg("Loaded review data file")

	return s, nil
}

// Parse decodes TOML data into a store. Symbols are upper-cased and must be unique.
func Parse(data []byte) (*Store, error) {
	var f dataFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	s := &Store{
		PositionTable: make(models.PositionTable, len(f.Positions)),
		QuoteTable:    make(models.QuoteTable, len(f.Quotes)),
	}

	for i, rec := range f.Positions {
		sym := strings.ToUpper(strings.TrimSpace(rec.Symbol))
		if sym == "" {
			return nil, fmt.Errorf("position %d has no symbol", i+1)
		}
		if _, dup := s.PositionTable[sym]; dup {
			return nil, fmt.Errorf("duplicate position for %s", sym)
		}
		pos := models.Position{
			Symbol: sym,
			Shares: rec.Shares,
			Advice: models.Advice(rec.Advice),
			Target: decimal.NewFromFloat(rec.Target),
		}
		if rec.Cost != nil {
			pos.Cost = decimal.NewNullDecimal(decimal.NewFromFloat(*rec.Cost))
		}
		s.PositionTable[sym] = pos
	}

	for i, rec := range f.Quotes {
		sym := strings.ToUpper(strings.TrimSpace(rec.Symbol))
		if sym == "" {
			return nil, fmt.Errorf("quote %d has no symbol", i+1)
		}
		if _, dup := s.QuoteTable[sym]; dup {
			return nil, fmt.Errorf("duplicate quote for %s", sym)
		}
		s.QuoteTable[sym] = models.Quote{Symbol: sym, Price: decimal.NewFromFloat(rec.Price)}
	}

	return s, nil
}

// Name identifies the backend.
func (s *Store) Name() string { return "file" }

// Path returns the file the store was loaded from, empty when built by Parse.
func (s *Store) Path() string { return s.path }
