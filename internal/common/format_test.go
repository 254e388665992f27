package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"150", "$150.00"},
		{"7000", "$7,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-5000", "-$5,000.00"},
		{"0.005", "$0.01"},
		{"999.999", "$1,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+$40.00", FormatSignedMoney(decimal.NewFromInt(40)))
	assert.Equal(t, "+$0.00", FormatSignedMoney(decimal.Zero))
	assert.Equal(t, "-$40.00", FormatSignedMoney(decimal.NewFromInt(-40)))

	assert.Equal(t, "46.67%", FormatPct(decimal.RequireFromString("46.666666")))
	assert.Equal(t, "+46.67%", FormatSignedPct(decimal.RequireFromString("46.666666")))
	assert.Equal(t, "-25.00%", FormatSignedPct(decimal.NewFromInt(-25)))
}
