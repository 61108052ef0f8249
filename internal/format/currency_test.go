package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"Whole amount gets two decimals", decimal.NewFromInt(100), "$100.00"},
		{"Thousands are grouped", decimal.NewFromInt(324569), "$324,569.00"},
		{"Cents are kept", decimal.RequireFromString("2500.5"), "$2,500.50"},
		{"Negative amounts keep the sign", decimal.NewFromInt(-20), "-$20.00"},
		{"Rounding carries into the whole part", decimal.RequireFromString("9.999"), "$10.00"},
		{"Cents above float precision are exact", decimal.RequireFromString("90071992547409.93"), "$90,071,992,547,409.93"},
		{"Largest transfer amount", decimal.RequireFromString("9999999999999999.99"), "$9,999,999,999,999,999.99"},
		{"Beyond int64 is grouped exactly", decimal.RequireFromString("123456789012345678901.5"), "$123,456,789,012,345,678,901.50"},
		{"Small amounts are not grouped", decimal.RequireFromString("0.05"), "$0.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, USD(tt.amount))
		})
	}
}
