package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Currency
		expectErr bool
	}{
		{name: "Upper case", input: "BTC", expected: CurrencyBTC},
		{name: "Lower case with spaces", input: " usdt ", expected: CurrencyUSDT},
		{name: "Ethereum", input: "eth", expected: CurrencyETH},
		{name: "Unknown", input: "DOGE", expectErr: true},
		{name: "Empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCurrency(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedCurrency))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestCurrencyPrecision(t *testing.T) {
	assert.Equal(t, int32(8), CurrencyBTC.Precision())
	assert.Equal(t, int32(8), CurrencyETH.Precision())
	assert.Equal(t, int32(6), CurrencyUSDT.Precision())
}

func TestParseFeeType(t *testing.T) {
	ft, err := ParseFeeType("withdrawal")
	assert.NoError(t, err)
	assert.Equal(t, FeeTypeWithdrawal, ft)

	_, err = ParseFeeType("")
	assert.ErrorIs(t, err, ErrInvalidFeeRule)

	_, err = ParseFeeType("TRADE")
	assert.ErrorIs(t, err, ErrInvalidFeeRule)
}

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		name      string
		currency  Currency
		amount    string
		expectErr bool
	}{
		{name: "Whole amount", currency: CurrencyBTC, amount: "1"},
		{name: "BTC satoshi", currency: CurrencyBTC, amount: "0.00000001"},
		{name: "Trailing zeros allowed", currency: CurrencyUSDT, amount: "1.50000000"},
		{name: "USDT smallest unit", currency: CurrencyUSDT, amount: "0.000001"},
		{name: "USDT below precision", currency: CurrencyUSDT, amount: "0.0000001", expectErr: true},
		{name: "ETH below precision", currency: CurrencyETH, amount: "1.000000001", expectErr: true},
		{name: "Zero", currency: CurrencyBTC, amount: "0", expectErr: true},
		{name: "Negative", currency: CurrencyETH, amount: "-1", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.currency.CheckAmount(decimal.RequireFromString(tt.amount))
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
		})
	}
}
