package mock

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/vire-review/internal/models"
)

func TestNewStore_Book(t *testing.T) {
	s := NewStore()

	assert.Equal(t, "mock", s.Name())
	assert.Equal(t, []string{"AAPL", "BABA", "TSLA"}, s.Symbols())

	pos, ok := s.Position("BABA")
	require.True(t, ok)
	assert.Equal(t, models.AdviceSell, pos.Advice)
	assert.Equal(t, int64(200), *pos.Shares)

	q, ok := s.Quote("TSLA")
	require.True(t, ok)
	assert.True(t, q.Price.Equal(decimal.NewFromInt(180)))

	_, ok = s.Position("aapl")
	assert.False(t, ok, "lookups expect normalized symbols")
}

func TestNewStore_TablesAreNotShared(t *testing.T) {
	a := NewStore()
	b := NewStore()

	a.QuoteTable["AAPL"] = models.Quote{Symbol: "AAPL", Price: decimal.NewFromInt(1)}
	delete(a.PositionTable, "TSLA")

	q, _ := b.Quote("AAPL")
	assert.True(t, q.Price.Equal(decimal.NewFromInt(220)))
	_, ok := b.Position("TSLA")
	assert.True(t, ok)
}
