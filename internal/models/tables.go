package models

import "sort"

// PositionTable is an in-memory PositionLookup keyed by upper-case symbol.
type PositionTable map[string]Position

// Position returns the position stored under symbol.
func (t PositionTable) Position(symbol string) (Position, bool) {
	p, ok := t[symbol]
	return p, ok
}

// Symbols returns the table's keys in sorted order.
func (t PositionTable) Symbols() []string {
	out := make([]string, 0, len(t))
	for sym := range t {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// QuoteTable is an in-memory QuoteLookup keyed by upper-case symbol.
type QuoteTable map[string]Quote

// Quote returns the quote stored under symbol.
func (t QuoteTable) Quote(symbol string) (Quote, bool) {
	q, ok := t[symbol]
	return q, ok
}
